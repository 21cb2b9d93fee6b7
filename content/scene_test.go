package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSceneParses(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(s.Spawns) == 0 {
		t.Fatalf("embedded scene has no entities")
	}
	if s.Player.X <= 0 && s.Player.Y <= 0 {
		t.Errorf("embedded scene has no player start")
	}
}

func TestBuildMapsDefinitionsToEntities(t *testing.T) {
	s := &Scene{
		Spawns: []SpawnSpec{
			{Type: "coin", X: 1, Y: 2, W: 1, H: 1},
			{Type: "crate", X: 5, Y: 5, W: 2, H: 2, Solid: true},
			{Type: "spark", X: 0, Y: 0, W: 1, H: 1, Lifetime: Duration(3 * time.Second)},
		},
	}

	built := s.Build()
	if len(built) != 3 {
		t.Fatalf("Build() = %d entities, want 3", len(built))
	}
	if built[0].Type() != "coin" || built[0].HasPhysicsBody() {
		t.Errorf("plain entity built wrong: %v solid=%v", built[0].Type(), built[0].HasPhysicsBody())
	}
	if !built[1].HasPhysicsBody() {
		t.Errorf("solid entity has no physics body")
	}
	if built[2].ExpireAfter() != 3*time.Second {
		t.Errorf("lifetime = %v, want 3s", built[2].ExpireAfter())
	}
}

func TestLoadRejectsUntypedEntity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "entities:\n  - x: 1\n    y: 1\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("Load accepted an entity without a type")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Load of a missing file succeeded")
	}
}
