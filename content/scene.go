// Package content loads scene definitions: the initial entity layout a
// game starts from. Scenes are YAML files; a built-in scene is embedded
// so the binary runs without any data files installed.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/arcade/entity"
)

//go:embed scene.yaml
var defaultScene []byte

// Scene is a declarative entity layout
type Scene struct {
	Name   string      `yaml:"name"`
	Player SpawnPoint  `yaml:"player"`
	Spawns []SpawnSpec `yaml:"entities"`
}

// SpawnPoint is the player start position
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpawnSpec describes one entity to create at scene load
type SpawnSpec struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`

	// Lifetime removes the entity after the given simulated time, zero
	// means permanent
	Lifetime Duration `yaml:"lifetime"`

	// Solid entities get a body in the physics collaborator
	Solid bool `yaml:"solid"`
}

// Duration decodes "10s" style YAML values
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the embedded scene
func Default() (*Scene, error) {
	return parse(defaultScene)
}

// Load reads a scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

func parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	for i, sp := range s.Spawns {
		if sp.Type == "" {
			return nil, fmt.Errorf("entity %d has no type", i)
		}
	}
	return &s, nil
}

// Build materializes the scene's entity list. The player entity is not
// included; the frontend constructs it so it can wire its own movement.
func (s *Scene) Build() []entity.Entity {
	out := make([]entity.Entity, 0, len(s.Spawns))
	for _, sp := range s.Spawns {
		opts := []entity.Option{
			entity.WithPosition(sp.X, sp.Y),
			entity.WithSize(sp.W, sp.H),
		}
		if sp.Lifetime > 0 {
			opts = append(opts, entity.WithExpiry(time.Duration(sp.Lifetime)))
		}
		if sp.Solid {
			opts = append(opts, entity.WithPhysics())
		}
		out = append(out, entity.New(entity.Type(sp.Type), opts...))
	}
	return out
}
