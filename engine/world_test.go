package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/arcade/entity"
	"github.com/lixenwraith/arcade/vmath"
)

// recordingPhysics records body lifecycle calls for assertions
type recordingPhysics struct {
	mu        sync.Mutex
	created   []uint64
	destroyed []uint64
	updates   int
}

func (p *recordingPhysics) OnUpdate(time.Duration) {
	p.mu.Lock()
	p.updates++
	p.mu.Unlock()
}

func (p *recordingPhysics) CreateBody(e entity.Entity) {
	p.mu.Lock()
	p.created = append(p.created, e.ID())
	p.mu.Unlock()
}

func (p *recordingPhysics) DestroyBody(e entity.Entity) {
	p.mu.Lock()
	p.destroyed = append(p.destroyed, e.ID())
	p.mu.Unlock()
}

func TestWorldQueuedAddVisibleAfterReconcile(t *testing.T) {
	w := NewWorld(nil, nil)
	e := entity.New("crate")

	w.AddEntities(e)
	if w.Count() != 0 {
		t.Fatalf("entity live before reconcile")
	}

	w.reconcile()
	if w.Count() != 1 {
		t.Fatalf("live count = %d after reconcile, want 1", w.Count())
	}
	if got := w.AllEntities(); len(got) != 1 || got[0].ID() != e.ID() {
		t.Errorf("AllEntities() = %v, want the admitted entity", got)
	}
}

func TestWorldRemoveIsIdempotent(t *testing.T) {
	w := NewWorld(nil, nil)
	cleaned := 0
	e := entity.New("crate", entity.WithClean(func() { cleaned++ }))

	w.AddEntities(e)
	w.reconcile()

	// Double removal in one tick, plus a removal of a never-added entity
	w.RemoveEntity(e)
	w.RemoveEntity(e)
	w.RemoveEntity(entity.New("ghost"))
	w.reconcile()

	if w.Count() != 0 {
		t.Fatalf("live count = %d, want 0", w.Count())
	}
	if cleaned != 1 {
		t.Errorf("cleanup ran %d times, want exactly 1", cleaned)
	}

	// Removing again on a later tick is still a no-op
	w.RemoveEntity(e)
	w.reconcile()
	if cleaned != 1 {
		t.Errorf("cleanup ran %d times after repeat removal, want 1", cleaned)
	}
}

func TestWorldAddThenRemoveSameTickNetsToAbsent(t *testing.T) {
	w := NewWorld(nil, nil)
	cleaned := 0
	e := entity.New("spark", entity.WithClean(func() { cleaned++ }))

	// Removal queued while the entity is still only pending admission:
	// admissions are applied first, so the removal still lands
	w.AddEntities(e)
	w.RemoveEntity(e)
	w.reconcile()

	if w.Count() != 0 {
		t.Fatalf("live count = %d, want 0", w.Count())
	}
	if cleaned != 1 {
		t.Errorf("cleanup ran %d times, want 1", cleaned)
	}
}

func TestWorldPhysicsBodyLifecycle(t *testing.T) {
	phys := &recordingPhysics{}
	w := NewWorld(nil, phys)

	plain := entity.New("decal")
	solid := entity.New("crate", entity.WithPhysics())

	w.AddEntities(plain, solid)
	w.reconcile()

	if len(phys.created) != 1 || phys.created[0] != solid.ID() {
		t.Fatalf("CreateBody calls = %v, want exactly the physics entity", phys.created)
	}

	w.RemoveEntity(plain)
	w.RemoveEntity(solid)
	w.reconcile()

	if len(phys.destroyed) != 1 || phys.destroyed[0] != solid.ID() {
		t.Errorf("DestroyBody calls = %v, want exactly the physics entity", phys.destroyed)
	}
}

func TestWorldCompositeDecomposesOnEnqueue(t *testing.T) {
	w := NewWorld(nil, nil)
	left := entity.New("wing")
	right := entity.New("wing")
	body := entity.New("hull")
	ship := entity.NewCombined("ship", left, body, right)

	w.AddEntities(ship)
	w.reconcile()

	if w.Count() != 3 {
		t.Fatalf("live count = %d, want the 3 parts", w.Count())
	}
	for _, e := range w.AllEntities() {
		if e.ID() == ship.ID() {
			t.Fatalf("composite itself entered the live set")
		}
	}
}

func TestWorldMutationDuringReconcileDefersToNextTick(t *testing.T) {
	w := NewWorld(nil, nil)
	late := entity.New("debris")
	e := entity.New("crate", entity.WithClean(func() {
		// Queued from inside reconciliation: must not be drained
		// re-entrantly
		w.AddEntities(late)
	}))

	w.AddEntities(e)
	w.reconcile()
	w.RemoveEntity(e)
	w.reconcile()

	if w.Count() != 0 {
		t.Fatalf("entity queued during reconcile admitted in the same pass")
	}

	w.reconcile()
	if w.Count() != 1 {
		t.Errorf("entity queued during reconcile not admitted on the next pass")
	}
}

func TestWorldQueriesByTypeAndRange(t *testing.T) {
	w := NewWorld(nil, nil)
	a := entity.New("coin", entity.WithPosition(0, 0), entity.WithSize(2, 2))
	b := entity.New("coin", entity.WithPosition(50, 50), entity.WithSize(2, 2))
	c := entity.New("gem", entity.WithPosition(1, 1), entity.WithSize(2, 2))

	w.AddEntities(a, b, c)
	w.reconcile()

	if got := w.Entities("coin"); len(got) != 2 {
		t.Errorf("Entities(coin) returned %d entities, want 2", len(got))
	}
	if got := w.Entities("coin", "gem"); len(got) != 3 {
		t.Errorf("Entities(coin, gem) returned %d entities, want 3", len(got))
	}
	if got := w.Entities("zombie"); len(got) != 0 {
		t.Errorf("Entities(zombie) returned %d entities, want 0", len(got))
	}

	// Partial overlap counts: the selection clips the corner of c
	sel := vmath.R(2, 2, 10, 10)
	got := w.EntitiesInRange(sel, "coin", "gem")
	if len(got) != 1 || got[0].ID() != c.ID() {
		t.Errorf("EntitiesInRange = %d entities, want only the overlapping gem", len(got))
	}
}

func TestWorldQueryReturnsFreshSlice(t *testing.T) {
	w := NewWorld(nil, nil)
	w.AddEntities(entity.New("coin"))
	w.reconcile()

	got := w.AllEntities()
	got[0] = nil
	if w.AllEntities()[0] == nil {
		t.Errorf("query result aliases the live set")
	}
}

// TestWorldConcurrentEnqueue exercises the thread-safe append discipline:
// many producer goroutines queue mutations while the pending queues are
// live, then a single reconcile applies them. Run with -race.
func TestWorldConcurrentEnqueue(t *testing.T) {
	w := NewWorld(nil, nil)

	const goroutines = 8
	const perGoroutine = 200

	keep := make([][]entity.Entity, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				e := entity.New("spark")
				w.AddEntities(e)
				if j%2 == 0 {
					// Half are removed in the same batch they were added
					w.RemoveEntity(e)
				} else {
					keep[i] = append(keep[i], e)
				}
			}
		}()
	}
	wg.Wait()

	w.reconcile()

	want := goroutines * perGoroutine / 2
	if w.Count() != want {
		t.Fatalf("live count = %d after concurrent enqueue, want %d", w.Count(), want)
	}

	// Every kept entity is live regardless of interleaving order
	liveIDs := make(map[uint64]bool, w.Count())
	for _, e := range w.AllEntities() {
		liveIDs[e.ID()] = true
	}
	for i := range keep {
		for _, e := range keep[i] {
			if !liveIDs[e.ID()] {
				t.Fatalf("kept entity %d missing from live set", e.ID())
			}
		}
	}
}
