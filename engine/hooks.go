package engine

import (
	"time"

	"github.com/lixenwraith/arcade/entity"
)

// Physics is the collaborator that owns body simulation. The engine only
// drives its lifecycle: one OnUpdate per tick, and body creation and
// destruction paired with entity admission and removal.
type Physics interface {
	OnUpdate(now time.Duration)
	CreateBody(e entity.Entity)
	DestroyBody(e entity.Entity)
}

// Input is the collaborator that polls devices and dispatches bindings.
// OnUpdate runs once per tick, before user logic.
type Input interface {
	OnUpdate(now time.Duration)
}

// Driver is the render-loop driver that delivers Tick calls at the host
// refresh cadence. Stop halts delivery entirely; the engine relies on
// that for pause semantics.
type Driver interface {
	Start()
	Stop()
}

// Nil hooks in Config are replaced with these at construction so the tick
// pipeline never branches on presence.

type nopPhysics struct{}

func (nopPhysics) OnUpdate(time.Duration)    {}
func (nopPhysics) CreateBody(entity.Entity)  {}
func (nopPhysics) DestroyBody(entity.Entity) {}

type nopInput struct{}

func (nopInput) OnUpdate(time.Duration) {}
