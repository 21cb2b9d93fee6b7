package engine

import "time"

// Clock tracks simulated time for a running game. Unlike the wall clock it
// advances only when a tick is processed: exactly one quantum per frame,
// added after the frame's pipeline has run. While the driver is stopped no
// ticks arrive, so pause freezes the clock by construction.
//
// Owned by the tick goroutine; accessors are not synchronized.
type Clock struct {
	now     time.Duration
	tick    int64
	quantum time.Duration
}

// NewClock creates a clock that advances by quantum per processed frame
func NewClock(quantum time.Duration) (*Clock, error) {
	if quantum <= 0 {
		return nil, ErrNonPositiveQuantum
	}
	return &Clock{quantum: quantum}, nil
}

// Now returns the simulated time elapsed since the first tick.
// The value is stable for the whole duration of a tick.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Ticks returns the number of frames processed so far
func (c *Clock) Ticks() int64 {
	return c.tick
}

// Quantum returns the fixed simulated-time step per frame
func (c *Clock) Quantum() time.Duration {
	return c.quantum
}

// advance rolls the tick counter and moves simulated time forward by one
// quantum. Called once at the end of every processed frame, never while
// the driver is stopped.
func (c *Clock) advance() {
	c.tick++
	c.now += c.quantum
}
