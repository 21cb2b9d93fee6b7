package engine

import "errors"

// Configuration errors are rejected at call time; silently misbehaving
// timers and viewports are far harder to debug than an early error.
var (
	// ErrNonPositiveInterval is returned when scheduling a timer action
	// with an interval or delay <= 0
	ErrNonPositiveInterval = errors.New("timer interval must be positive")

	// ErrNilCondition is returned when a condition-gated timer action is
	// scheduled without a condition to poll
	ErrNilCondition = errors.New("timer condition must not be nil")

	// ErrAxisBound is returned when binding a viewport axis that is
	// already bound to an entity
	ErrAxisBound = errors.New("viewport axis already bound")

	// ErrNonPositiveQuantum is returned by New when the configured
	// simulated-time step per tick is <= 0
	ErrNonPositiveQuantum = errors.New("frame quantum must be positive")
)
