package entity

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arcade/vmath"
)

// Type is the tag used for exact-match entity queries
type Type string

// Entity is a single game object owned by the engine world once admitted.
// Implementations other than Base are allowed as long as they keep Update
// and Clean cheap; both run on the tick goroutine every frame.
type Entity interface {
	// ID returns the process-unique identity used for removal matching
	ID() uint64

	// Type returns the query tag
	Type() Type

	// Position returns the top-left corner in world units
	Position() (x, y float64)

	// SetPosition moves the entity. Must only be called from the tick
	// goroutine; the viewport reads positions without synchronization.
	SetPosition(x, y float64)

	// Bounds returns position and size as a rectangle
	Bounds() vmath.Rect

	// ExpireAfter returns the lifetime after admission, <= 0 means never
	ExpireAfter() time.Duration

	// HasPhysicsBody reports whether the world must create and destroy a
	// body in the physics collaborator for this entity
	HasPhysicsBody() bool

	// Update runs the per-entity frame logic at the given simulated time
	Update(now time.Duration)

	// Clean runs removal cleanup. The world calls it exactly once.
	Clean()
}

// Composite is the capability of decomposing into constituent entities.
// A composite never enters the live set itself; its parts are queued in
// its place at enqueue time.
type Composite interface {
	Parts() []Entity
}

// nextID is the global identity counter, shared by all constructors
var nextID atomic.Uint64

// Base is the standard Entity implementation
type Base struct {
	id          uint64
	typ         Type
	x, y        float64
	w, h        float64
	expireAfter time.Duration
	physics     bool

	onUpdate func(e *Base, now time.Duration)
	onClean  func()
}

// Option configures a Base during construction
type Option func(*Base)

// WithPosition sets the initial top-left position
func WithPosition(x, y float64) Option {
	return func(b *Base) { b.x, b.y = x, y }
}

// WithSize sets the bounds size in world units
func WithSize(w, h float64) Option {
	return func(b *Base) { b.w, b.h = w, h }
}

// WithExpiry sets the lifetime after admission; the world removes the
// entity once the simulated clock has advanced past it
func WithExpiry(d time.Duration) Option {
	return func(b *Base) { b.expireAfter = d }
}

// WithPhysics marks the entity as owning a body in the physics collaborator
func WithPhysics() Option {
	return func(b *Base) { b.physics = true }
}

// WithUpdate sets the per-entity frame callback
func WithUpdate(fn func(e *Base, now time.Duration)) Option {
	return func(b *Base) { b.onUpdate = fn }
}

// WithClean sets the removal cleanup callback
func WithClean(fn func()) Option {
	return func(b *Base) { b.onClean = fn }
}

// New creates an entity with a fresh identity
func New(typ Type, opts ...Option) *Base {
	b := &Base{
		id:  nextID.Add(1),
		typ: typ,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Base) ID() uint64 { return b.id }

func (b *Base) Type() Type { return b.typ }

func (b *Base) Position() (x, y float64) { return b.x, b.y }

func (b *Base) SetPosition(x, y float64) { b.x, b.y = x, y }

func (b *Base) Bounds() vmath.Rect {
	return vmath.Rect{X: b.x, Y: b.y, W: b.w, H: b.h}
}

func (b *Base) ExpireAfter() time.Duration { return b.expireAfter }

func (b *Base) HasPhysicsBody() bool { return b.physics }

func (b *Base) Update(now time.Duration) {
	if b.onUpdate != nil {
		b.onUpdate(b, now)
	}
}

func (b *Base) Clean() {
	if b.onClean != nil {
		b.onClean()
	}
}
