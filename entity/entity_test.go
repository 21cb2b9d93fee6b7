package entity

import (
	"testing"
	"time"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		e := New("crate")
		if seen[e.ID()] {
			t.Fatalf("duplicate entity id %d", e.ID())
		}
		seen[e.ID()] = true
	}
}

func TestOptionsApply(t *testing.T) {
	e := New("crate",
		WithPosition(3, 4),
		WithSize(10, 20),
		WithExpiry(5*time.Second),
		WithPhysics())

	if x, y := e.Position(); x != 3 || y != 4 {
		t.Errorf("Position() = (%v, %v), want (3, 4)", x, y)
	}
	b := e.Bounds()
	if b.X != 3 || b.Y != 4 || b.W != 10 || b.H != 20 {
		t.Errorf("Bounds() = %+v, want {3 4 10 20}", b)
	}
	if e.ExpireAfter() != 5*time.Second {
		t.Errorf("ExpireAfter() = %v, want 5s", e.ExpireAfter())
	}
	if !e.HasPhysicsBody() {
		t.Errorf("HasPhysicsBody() = false, want true")
	}
	if e.Type() != "crate" {
		t.Errorf("Type() = %q, want crate", e.Type())
	}
}

func TestDefaultsAreInert(t *testing.T) {
	e := New("decal")
	if e.ExpireAfter() > 0 {
		t.Errorf("default ExpireAfter() = %v, want non-positive", e.ExpireAfter())
	}
	if e.HasPhysicsBody() {
		t.Errorf("default HasPhysicsBody() = true, want false")
	}
	// Nil callbacks must be safe to invoke
	e.Update(time.Second)
	e.Clean()
}

func TestUpdateCallbackReceivesEntityAndTime(t *testing.T) {
	var gotNow time.Duration
	e := New("mover",
		WithPosition(1, 1),
		WithUpdate(func(b *Base, now time.Duration) {
			gotNow = now
			x, y := b.Position()
			b.SetPosition(x+1, y)
		}))

	e.Update(42 * time.Millisecond)
	if gotNow != 42*time.Millisecond {
		t.Errorf("update callback now = %v, want 42ms", gotNow)
	}
	if x, _ := e.Position(); x != 2 {
		t.Errorf("position x = %v after update, want 2", x)
	}
}

func TestCombinedExposesParts(t *testing.T) {
	a := New("wing")
	b := New("hull")
	c := NewCombined("ship", a, b)
	c.Attach(New("wing"))

	parts := c.Parts()
	if len(parts) != 3 {
		t.Fatalf("Parts() = %d entities, want 3", len(parts))
	}
	if parts[0].ID() != a.ID() || parts[1].ID() != b.ID() {
		t.Errorf("Parts() order changed from attachment order")
	}
}
