package engine

import "github.com/lixenwraith/arcade/entity"

// Viewport maintains the 2D translation applied to the game-entity layer
// to simulate camera movement. Each axis is either set directly through
// SetOrigin or continuously derived from a tracked entity; a bound axis
// ignores manual origin values.
//
// UI-layer drawing is unaffected: only the frontend's game layer consumes
// Offset.
//
// Owned by the tick goroutine; bindings read entity positions without
// synchronization.
type Viewport struct {
	// manual translation per axis, used while the axis is unbound
	offsetX, offsetY float64

	bindX *axisBinding
	bindY *axisBinding
}

// axisBinding derives one translation component from a tracked entity:
// offset = dist - entity position on that axis
type axisBinding struct {
	e    entity.Entity
	dist float64
}

// NewViewport creates a viewport at the zero origin with no bindings
func NewViewport() *Viewport {
	return &Viewport{}
}

// SetOrigin sets the absolute camera origin. Entities appear shifted in
// the opposite direction. Has no visible effect on an axis that is bound
// to an entity; the binding silently wins.
func (v *Viewport) SetOrigin(x, y float64) {
	v.offsetX = -x
	v.offsetY = -y
}

// Origin returns the current camera origin, including bound axes
func (v *Viewport) Origin() (x, y float64) {
	ox, oy := v.Offset()
	return -ox, -oy
}

// Offset returns the translation to apply to the game-entity layer.
// Bound axes are derived from the tracked entity's position at call time,
// so the result always reflects the entity's latest position.
func (v *Viewport) Offset() (x, y float64) {
	x, y = v.offsetX, v.offsetY
	if v.bindX != nil {
		ex, _ := v.bindX.e.Position()
		x = v.bindX.dist - ex
	}
	if v.bindY != nil {
		_, ey := v.bindY.e.Position()
		y = v.bindY.dist - ey
	}
	return x, y
}

// BindX makes the horizontal translation follow the entity, keeping it
// distX world units from the viewport origin. Binding an already bound
// axis is a configuration error.
func (v *Viewport) BindX(e entity.Entity, distX float64) error {
	if v.bindX != nil {
		return ErrAxisBound
	}
	v.bindX = &axisBinding{e: e, dist: distX}
	return nil
}

// BindY makes the vertical translation follow the entity
func (v *Viewport) BindY(e entity.Entity, distY float64) error {
	if v.bindY != nil {
		return ErrAxisBound
	}
	v.bindY = &axisBinding{e: e, dist: distY}
	return nil
}

// Bind binds both axes to the same entity. Fails without side effects if
// either axis is already bound.
func (v *Viewport) Bind(e entity.Entity, distX, distY float64) error {
	if v.bindX != nil || v.bindY != nil {
		return ErrAxisBound
	}
	v.bindX = &axisBinding{e: e, dist: distX}
	v.bindY = &axisBinding{e: e, dist: distY}
	return nil
}
