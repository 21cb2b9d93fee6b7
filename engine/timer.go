package engine

import (
	"sync/atomic"
	"time"
)

// TimerKind selects what happens to an action after it fires
type TimerKind uint8

const (
	// TimerOnce fires a single time, then expires
	TimerOnce TimerKind = iota

	// TimerRepeating fires every interval until cancelled
	TimerRepeating

	// TimerWhile fires every interval as long as its condition polls true
	TimerWhile
)

// TimerAction is a callback scheduled against the simulated clock. It is
// created through the Game scheduling methods and advanced by the timer
// set once per tick. An expired action never fires again.
type TimerAction struct {
	// baseline is the simulated time of creation or of the last firing.
	// Owned by the tick goroutine.
	baseline time.Duration
	interval time.Duration
	action   func()
	kind     TimerKind
	while    func() bool

	expired atomic.Bool
}

func newTimerAction(now, interval time.Duration, action func(), kind TimerKind, while func() bool) *TimerAction {
	return &TimerAction{
		baseline: now,
		interval: interval,
		action:   action,
		kind:     kind,
		while:    while,
	}
}

// Cancel expires the action. Safe to call from any goroutine and at any
// point in its lifecycle; cancelling an already expired action is a no-op.
func (a *TimerAction) Cancel() {
	a.expired.Store(true)
}

// Expired reports whether the action will never fire again
func (a *TimerAction) Expired() bool {
	return a.expired.Load()
}

// update fires the action if its interval has elapsed since baseline.
// An action overdue by several intervals still fires only once: the
// baseline resets to now, so missed firings are dropped, not queued.
func (a *TimerAction) update(now time.Duration) {
	if a.expired.Load() {
		return
	}
	if now-a.baseline < a.interval {
		return
	}

	a.action()

	switch a.kind {
	case TimerOnce:
		a.expired.Store(true)
		return
	case TimerWhile:
		if !a.while() {
			a.expired.Store(true)
			return
		}
	}
	a.baseline = now
}

// timerSet holds the active actions in insertion order.
// Owned by the tick goroutine; scheduling from other goroutines is not
// supported (unlike the entity queues, which are).
type timerSet struct {
	actions []*TimerAction
}

func (ts *timerSet) add(a *TimerAction) {
	ts.actions = append(ts.actions, a)
}

// advance evaluates every active action once against the current simulated
// time, then purges expired actions in the same pass
func (ts *timerSet) advance(now time.Duration) {
	for _, a := range ts.actions {
		a.update(now)
	}

	kept := ts.actions[:0]
	for _, a := range ts.actions {
		if !a.Expired() {
			kept = append(kept, a)
		}
	}
	// Release dropped tails so expired closures can be collected
	for i := len(kept); i < len(ts.actions); i++ {
		ts.actions[i] = nil
	}
	ts.actions = kept
}

// size returns the number of active actions
func (ts *timerSet) size() int {
	return len(ts.actions)
}
