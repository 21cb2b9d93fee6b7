package parameter

import "time"

// Game Loop & Engine Timing
const (
	// DefaultFrameRate is the host refresh cadence the driver targets (~60 FPS)
	DefaultFrameRate = 60

	// TimePerFrame is the fixed simulated-time quantum added to the game
	// clock on every processed tick
	TimePerFrame = time.Second / DefaultFrameRate
)

// FPSSmoothing is the weight of a new sample in the decaying rate average.
// Higher values react faster, lower values are steadier.
const FPSSmoothing = 0.1
