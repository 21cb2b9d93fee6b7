package entity

// Combined groups entities so they can be queued for admission as one unit.
// Only the parts reach the live set; the Combined itself is discarded at
// enqueue time.
type Combined struct {
	Base
	parts []Entity
}

// NewCombined creates a composite holding the given parts
func NewCombined(typ Type, parts ...Entity) *Combined {
	c := &Combined{
		Base: Base{
			id:  nextID.Add(1),
			typ: typ,
		},
	}
	c.parts = append(c.parts, parts...)
	return c
}

// Attach appends more parts. Only meaningful before the composite is queued.
func (c *Combined) Attach(parts ...Entity) {
	c.parts = append(c.parts, parts...)
}

// Parts returns the constituent entities
func (c *Combined) Parts() []Entity {
	return c.parts
}
