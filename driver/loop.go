// Package driver provides the render-loop driver: a fixed-cadence loop on
// a dedicated goroutine that delivers monotonic host timestamps to the
// engine's tick function. Stopping the loop halts delivery entirely,
// which is what gives the engine its pause semantics.
package driver

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arcade/core"
)

// Loop invokes a tick callback at the host refresh cadence.
// Start and Stop may be called repeatedly; a stopped loop restarts from
// where it left off. Tick invocations are strictly serialized.
type Loop struct {
	interval time.Duration
	tick     func(hostTimestamp int64)

	// epoch anchors host timestamps so they are monotonic nanoseconds
	// relative to loop creation, independent of wall-clock jumps
	epoch time.Time

	mu      sync.Mutex
	stopc   chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// New creates a stopped loop targeting one tick per interval
func New(interval time.Duration, tick func(hostTimestamp int64)) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		interval: interval,
		tick:     tick,
		epoch:    time.Now(),
	}
}

// Start launches the loop goroutine. No-op if already running.
// The goroutine runs under the process crash handler: a panic escaping
// the tick callback terminates the process instead of being swallowed.
// Must not be called from within the tick callback; it waits for the
// previous loop goroutine to exit.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running.Load() {
		return
	}

	// Wait for a previous goroutine to fully exit before launching the
	// next, so two loops never deliver ticks concurrently
	l.wg.Wait()

	l.stopc = make(chan struct{})
	l.running.Store(true)

	stopc := l.stopc
	l.wg.Add(1)
	core.Go(func() { l.run(stopc) })
}

// Stop halts tick delivery. No-op if not running. Safe to call from
// within the tick callback itself: it only signals, the goroutine exits
// before its next tick.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running.Load() {
		return
	}

	l.running.Store(false)
	close(l.stopc)
}

// Running reports whether ticks are currently being delivered
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Wait blocks until the loop goroutine has exited. Useful on shutdown.
func (l *Loop) Wait() {
	l.wg.Wait()
}

func (l *Loop) run(stopc chan struct{}) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopc:
			return
		case t := <-ticker.C:
			// Re-check stop before ticking; Stop may have raced the
			// ticker channel
			select {
			case <-stopc:
				return
			default:
			}
			l.tick(t.Sub(l.epoch).Nanoseconds())
		}
	}
}
