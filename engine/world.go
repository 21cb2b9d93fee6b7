package engine

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/entity"
	"github.com/lixenwraith/arcade/vmath"
)

// World owns the live entity set. Mutation requests from any goroutine
// land in pending queues and are applied to the live set at exactly one
// point per tick (reconcile), so per-entity update always iterates a
// stable snapshot while arbitrary code queues changes.
type World struct {
	log     *zap.Logger
	physics Physics

	// scheduleExpiry installs a one-shot removal timer for entities that
	// carry a positive lifetime. Wired by the Game that owns this world.
	scheduleExpiry func(e entity.Entity, d time.Duration)

	// mu guards only the pending queues. The live set is touched solely
	// by the tick goroutine and needs no lock.
	mu            sync.Mutex
	pendingAdd    []entity.Entity
	pendingRemove []entity.Entity

	live []entity.Entity
}

// NewWorld creates an empty world delegating body lifecycle to physics
func NewWorld(log *zap.Logger, physics Physics) *World {
	if log == nil {
		log = zap.NewNop()
	}
	if physics == nil {
		physics = nopPhysics{}
	}
	return &World{
		log:     log,
		physics: physics,
	}
}

// AddEntities queues entities for admission at the next reconciliation.
// Safe to call from any goroutine, including from callbacks running
// inside the current tick. A composite is decomposed here: its parts are
// queued and the composite itself never enters the live set.
func (w *World) AddEntities(entities ...entity.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, e := range entities {
		if c, ok := e.(entity.Composite); ok {
			w.pendingAdd = append(w.pendingAdd, c.Parts()...)
			continue
		}
		w.pendingAdd = append(w.pendingAdd, e)
	}
}

// RemoveEntity queues an entity for removal at the next reconciliation.
// Safe to call from any goroutine. Removing an entity that is not live by
// then, or queuing the same entity twice, ends up a no-op.
func (w *World) RemoveEntity(e entity.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pendingRemove = append(w.pendingRemove, e)
}

// reconcile drains both pending queues and applies them to the live set:
// admissions first, removals second. Requests queued by hooks running
// during reconciliation land in fresh queues and wait for the next tick.
//
// Tick goroutine only.
func (w *World) reconcile() {
	w.mu.Lock()
	adds, removes := w.pendingAdd, w.pendingRemove
	w.pendingAdd, w.pendingRemove = nil, nil
	w.mu.Unlock()

	for _, e := range adds {
		if e.HasPhysicsBody() {
			w.physics.CreateBody(e)
		}
		w.live = append(w.live, e)
		if d := e.ExpireAfter(); d > 0 && w.scheduleExpiry != nil {
			w.scheduleExpiry(e, d)
		}
	}

	for _, e := range removes {
		idx := w.indexOf(e.ID())
		if idx < 0 {
			continue
		}
		if e.HasPhysicsBody() {
			w.physics.DestroyBody(e)
		}
		e.Clean()
		w.live = append(w.live[:idx], w.live[idx+1:]...)
	}

	if len(adds) > 0 || len(removes) > 0 {
		w.log.Debug("entities reconciled",
			zap.Int("added", len(adds)),
			zap.Int("removed", len(removes)),
			zap.Int("live", len(w.live)))
	}
}

// updateAll invokes the per-entity update on the post-reconciliation live
// set. Callbacks may queue additions and removals; the set itself cannot
// change under the iteration.
func (w *World) updateAll(now time.Duration) {
	for _, e := range w.live {
		e.Update(now)
	}
}

// indexOf finds a live entity by identity, -1 if absent
func (w *World) indexOf(id uint64) int {
	for i, e := range w.live {
		if e.ID() == id {
			return i
		}
	}
	return -1
}

// Count returns the size of the live set
func (w *World) Count() int {
	return len(w.live)
}

// AllEntities returns a fresh ordered slice of every live entity.
// Pending queues are never visible to queries.
func (w *World) AllEntities() []entity.Entity {
	out := make([]entity.Entity, len(w.live))
	copy(out, w.live)
	return out
}

// Entities returns live entities whose type tag matches any argument
func (w *World) Entities(types ...entity.Type) []entity.Entity {
	out := make([]entity.Entity, 0)
	for _, e := range w.live {
		if matchesType(e, types) {
			out = append(out, e)
		}
	}
	return out
}

// EntitiesInRange returns live entities matching any of the given types
// whose bounds at least partially overlap the selection rectangle
func (w *World) EntitiesInRange(selection vmath.Rect, types ...entity.Type) []entity.Entity {
	out := make([]entity.Entity, 0)
	for _, e := range w.live {
		if matchesType(e, types) && e.Bounds().Intersects(selection) {
			out = append(out, e)
		}
	}
	return out
}

func matchesType(e entity.Entity, types []entity.Type) bool {
	for _, t := range types {
		if e.Type() == t {
			return true
		}
	}
	return false
}
