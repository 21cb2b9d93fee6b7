package engine

import (
	"math"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/entity"
	"github.com/lixenwraith/arcade/parameter"
	"github.com/lixenwraith/arcade/status"
	"github.com/lixenwraith/arcade/vmath"
)

// Config collects the dependencies of a Game. Only FrameQuantum has a
// default; collaborators left nil become no-ops and a nil logger is
// replaced with a nop logger.
type Config struct {
	// FrameQuantum is the simulated-time step per tick.
	// Defaults to parameter.TimePerFrame.
	FrameQuantum time.Duration

	Logger  *zap.Logger
	Metrics *status.Registry

	Physics Physics
	Input   Input

	// OnUpdate is the user's per-tick logic callback, invoked after the
	// input and physics hooks and before entity reconciliation
	OnUpdate func()
}

// Game is the frame scheduler: the sole authority over when the clock,
// timers, collaborators, user logic and entity reconciliation run. The
// attached driver invokes Tick once per host refresh; invocations are
// strictly serialized and never happen while paused.
type Game struct {
	log *zap.Logger

	clock    *Clock
	timers   *timerSet
	world    *World
	viewport *Viewport

	physics  Physics
	input    Input
	onUpdate func()

	driver Driver

	// render FPS estimation from host timestamp deltas
	fpsCounter  FPSCounter
	lastHost    int64
	hasLastHost bool

	// performance FPS estimation from pipeline wall time
	perfCounter FPSCounter

	fps            int
	fpsPerformance int

	// cached metric pointers, nil when no registry was configured
	statTicks   *atomic.Int64
	statFPS     *status.AtomicFloat
	statPerfFPS *status.AtomicFloat
}

// New validates the configuration and assembles a stopped game.
// Nothing ticks until a driver is attached and Resume is called, so all
// remaining setup (assets, initial entities, bindings) happens safely
// between New and the first frame. Setup failures simply mean never
// starting the driver.
func New(cfg Config) (*Game, error) {
	quantum := cfg.FrameQuantum
	if quantum == 0 {
		quantum = parameter.TimePerFrame
	}
	clock, err := NewClock(quantum)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	physics := cfg.Physics
	if physics == nil {
		physics = nopPhysics{}
	}
	input := cfg.Input
	if input == nil {
		input = nopInput{}
	}

	g := &Game{
		log:      log,
		clock:    clock,
		timers:   &timerSet{},
		world:    NewWorld(log, physics),
		viewport: NewViewport(),
		physics:  physics,
		input:    input,
		onUpdate: cfg.OnUpdate,
	}
	g.world.scheduleExpiry = g.scheduleExpiry

	if cfg.Metrics != nil {
		g.statTicks = cfg.Metrics.Ints.Get("engine.ticks")
		g.statFPS = cfg.Metrics.Floats.Get("engine.fps.render")
		g.statPerfFPS = cfg.Metrics.Floats.Get("engine.fps.logic")
	}

	log.Info("engine assembled", zap.Duration("frame_quantum", quantum))
	return g, nil
}

// AttachDriver wires the render-loop driver used by Pause and Resume.
// Must be called before the first Resume.
func (g *Game) AttachDriver(d Driver) {
	g.driver = d
}

// Tick processes one frame. It is invoked by the render-loop driver with
// a monotonically increasing host timestamp in nanoseconds and must never
// be invoked concurrently with itself.
//
// A panic from any hook or callback aborts the rest of the frame and
// propagates to the caller: continuing with timers advanced but entities
// unreconciled would corrupt the engine's invariants, so the driver
// goroutine routes it to the process crash handler instead.
func (g *Game) Tick(hostTimestamp int64) {
	start := time.Now()

	var renderRate float64
	haveRender := false
	if g.hasLastHost {
		if delta := hostTimestamp - g.lastHost; delta > 0 {
			renderRate = float64(time.Second) / float64(delta)
			haveRender = true
		}
	}
	g.lastHost = hostTimestamp
	g.hasLastHost = true

	now := g.clock.Now()

	g.timers.advance(now)

	g.input.OnUpdate(now)
	g.physics.OnUpdate(now)

	if g.onUpdate != nil {
		g.onUpdate()
	}

	g.world.reconcile()
	g.world.updateAll(now)

	if elapsed := time.Since(start); elapsed > 0 {
		perfRate := float64(time.Second) / float64(elapsed)
		g.fpsPerformance = int(math.Round(g.perfCounter.Count(perfRate)))
	}
	if haveRender {
		g.fps = int(math.Round(g.fpsCounter.Count(renderRate)))
	}

	g.clock.advance()

	if g.statTicks != nil {
		g.statTicks.Store(g.clock.Ticks())
		g.statFPS.Set(float64(g.fps))
		g.statPerfFPS.Set(float64(g.fpsPerformance))
	}
}

// Pause stops the render-loop driver. No ticks run while paused, so
// simulated time, timers and entities are all frozen in place.
func (g *Game) Pause() {
	if g.driver != nil {
		g.driver.Stop()
	}
	g.log.Debug("paused", zap.Int64("tick", g.clock.Ticks()))
}

// Resume restarts the render-loop driver from the exact frozen point
func (g *Game) Resume() {
	if g.driver != nil {
		g.driver.Start()
	}
	g.log.Debug("resumed", zap.Int64("tick", g.clock.Ticks()))
}

// Now returns the current simulated time
func (g *Game) Now() time.Duration {
	return g.clock.Now()
}

// TickCount returns the number of frames processed since start
func (g *Game) TickCount() int64 {
	return g.clock.Ticks()
}

// FPS returns the rounded render rate estimate
func (g *Game) FPS() int {
	return g.fps
}

// PerformanceFPS returns the rounded logic-pipeline rate estimate:
// how many ticks per second the pipeline could sustain
func (g *Game) PerformanceFPS() int {
	return g.fpsPerformance
}

// World returns the entity lifecycle manager
func (g *Game) World() *World {
	return g.world
}

// Viewport returns the camera binder
func (g *Game) Viewport() *Viewport {
	return g.viewport
}

// === Entity Operations ===

// AddEntities queues entities for admission; safe from any goroutine
func (g *Game) AddEntities(entities ...entity.Entity) {
	g.world.AddEntities(entities...)
}

// RemoveEntity queues an entity for removal; safe from any goroutine
func (g *Game) RemoveEntity(e entity.Entity) {
	g.world.RemoveEntity(e)
}

// AllEntities returns every live entity
func (g *Game) AllEntities() []entity.Entity {
	return g.world.AllEntities()
}

// Entities returns live entities matching any of the given types
func (g *Game) Entities(types ...entity.Type) []entity.Entity {
	return g.world.Entities(types...)
}

// EntitiesInRange returns matching live entities overlapping the selection
func (g *Game) EntitiesInRange(selection vmath.Rect, types ...entity.Type) []entity.Entity {
	return g.world.EntitiesInRange(selection, types...)
}

// === Viewport Operations ===

// SetViewportOrigin sets the camera origin; see Viewport.SetOrigin
func (g *Game) SetViewportOrigin(x, y float64) {
	g.viewport.SetOrigin(x, y)
}

// ViewportOrigin returns the current camera origin
func (g *Game) ViewportOrigin() (x, y float64) {
	return g.viewport.Origin()
}

// BindViewportOrigin binds both camera axes to the entity
func (g *Game) BindViewportOrigin(e entity.Entity, distX, distY float64) error {
	return g.viewport.Bind(e, distX, distY)
}

// BindViewportOriginX binds the horizontal camera axis to the entity
func (g *Game) BindViewportOriginX(e entity.Entity, distX float64) error {
	return g.viewport.BindX(e, distX)
}

// BindViewportOriginY binds the vertical camera axis to the entity
func (g *Game) BindViewportOriginY(e entity.Entity, distY float64) error {
	return g.viewport.BindY(e, distY)
}

// === Timer Scheduling (tick goroutine only) ===

// RunAtInterval schedules the action to fire every interval of simulated
// time, first firing one interval after now. Returns the action so the
// caller can cancel it.
func (g *Game) RunAtInterval(action func(), interval time.Duration) (*TimerAction, error) {
	if interval <= 0 {
		return nil, ErrNonPositiveInterval
	}
	a := newTimerAction(g.clock.Now(), interval, action, TimerRepeating, nil)
	g.timers.add(a)
	return a, nil
}

// RunAtIntervalWhile schedules a repeating action gated by a condition
// polled after each firing; the action expires when the condition turns
// false. A condition that is already false schedules nothing and returns
// a nil action.
func (g *Game) RunAtIntervalWhile(action func(), interval time.Duration, while func() bool) (*TimerAction, error) {
	if interval <= 0 {
		return nil, ErrNonPositiveInterval
	}
	if while == nil {
		return nil, ErrNilCondition
	}
	if !while() {
		return nil, nil
	}
	a := newTimerAction(g.clock.Now(), interval, action, TimerWhile, while)
	g.timers.add(a)
	return a, nil
}

// RunOnceAfter schedules the action to fire a single time once the given
// delay of simulated time has elapsed
func (g *Game) RunOnceAfter(action func(), delay time.Duration) (*TimerAction, error) {
	if delay <= 0 {
		return nil, ErrNonPositiveInterval
	}
	a := newTimerAction(g.clock.Now(), delay, action, TimerOnce, nil)
	g.timers.add(a)
	return a, nil
}

// scheduleExpiry installs the one-shot removal timer for an entity
// admitted with a positive lifetime
func (g *Game) scheduleExpiry(e entity.Entity, d time.Duration) {
	if _, err := g.RunOnceAfter(func() { g.world.RemoveEntity(e) }, d); err != nil {
		g.log.Warn("entity expiry not scheduled",
			zap.Uint64("entity", e.ID()), zap.Error(err))
	}
}
