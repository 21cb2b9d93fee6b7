package engine

import "github.com/lixenwraith/arcade/parameter"

// FPSCounter folds per-tick rate samples into a decaying average.
// Two independent instances track the host render cadence and the cost of
// the logic pipeline itself.
//
// The zero value is ready to use. Not safe for concurrent use; each
// counter is owned by the tick goroutine.
type FPSCounter struct {
	avg    float64
	primed bool
}

// Count folds one instantaneous rate sample (Hz) into the average and
// returns the updated estimate. The first sample is returned verbatim so
// the estimate is never polluted by an uninitialized history.
func (c *FPSCounter) Count(sample float64) float64 {
	if !c.primed {
		c.primed = true
		c.avg = sample
		return c.avg
	}
	c.avg += (sample - c.avg) * parameter.FPSSmoothing
	return c.avg
}

// Reset discards the history; the next sample is treated as the first
func (c *FPSCounter) Reset() {
	c.avg = 0
	c.primed = false
}
