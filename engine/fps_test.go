package engine

import "testing"

func TestFPSCounterFirstSampleVerbatim(t *testing.T) {
	var c FPSCounter

	got := c.Count(58.7)
	if got != 58.7 {
		t.Errorf("first sample: got %v, want 58.7", got)
	}
}

func TestFPSCounterNeverNegative(t *testing.T) {
	var c FPSCounter

	samples := []float64{0, 120, 0, 0, 30, 0, 1000, 0}
	for _, s := range samples {
		if got := c.Count(s); got < 0 {
			t.Fatalf("Count(%v) = %v, want non-negative", s, got)
		}
	}
}

func TestFPSCounterConvergesToSteadyRate(t *testing.T) {
	var c FPSCounter

	var got float64
	for i := 0; i < 200; i++ {
		got = c.Count(60)
	}
	if got < 59.9 || got > 60.1 {
		t.Errorf("steady 60Hz input: estimate %v, want ~60", got)
	}
}

func TestFPSCounterReset(t *testing.T) {
	var c FPSCounter

	c.Count(60)
	c.Count(60)
	c.Reset()

	if got := c.Count(30); got != 30 {
		t.Errorf("first sample after reset: got %v, want 30", got)
	}
}
