// Package physics provides the playfield collision collaborator: solid
// entities own a body here and get clamped into the playfield every tick.
package physics

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/entity"
	"github.com/lixenwraith/arcade/vmath"
)

// Bounds keeps every registered body inside the playfield rectangle.
// Body registration and the per-tick update both run on the tick
// goroutine, so the body map needs no lock.
type Bounds struct {
	log   *zap.Logger
	field vmath.Rect
	body  map[uint64]entity.Entity
}

// NewBounds creates the collaborator for a playfield of the given size
func NewBounds(log *zap.Logger, width, height float64) *Bounds {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bounds{
		log:   log,
		field: vmath.R(0, 0, width, height),
		body:  make(map[uint64]entity.Entity),
	}
}

// OnUpdate clamps each body's position so its bounds stay inside the
// playfield
func (b *Bounds) OnUpdate(time.Duration) {
	for _, e := range b.body {
		r := e.Bounds()
		x := clamp(r.X, b.field.X, b.field.X+b.field.W-r.W)
		y := clamp(r.Y, b.field.Y, b.field.Y+b.field.H-r.H)
		if x != r.X || y != r.Y {
			e.SetPosition(x, y)
		}
	}
}

// CreateBody registers an entity at admission
func (b *Bounds) CreateBody(e entity.Entity) {
	b.body[e.ID()] = e
	b.log.Debug("body created", zap.Uint64("entity", e.ID()), zap.String("type", string(e.Type())))
}

// DestroyBody releases an entity's body at removal
func (b *Bounds) DestroyBody(e entity.Entity) {
	delete(b.body, e.ID())
	b.log.Debug("body destroyed", zap.Uint64("entity", e.ID()))
}

// BodyCount returns the number of registered bodies
func (b *Bounds) BodyCount() int {
	return len(b.body)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
