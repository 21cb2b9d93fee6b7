package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings holds the static game configuration loaded at startup, before
// the frame driver starts. A load or validation failure here must abort
// the program; nothing may tick against unchecked settings.
type Settings struct {
	Title   string `toml:"title"`
	Version string `toml:"version"`

	// Width and Height are the playfield size in world cells
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// FrameRate is the host refresh cadence the driver targets. It also
	// fixes the simulated-time quantum: one tick advances the game clock
	// by exactly 1/FrameRate seconds.
	FrameRate int `toml:"frame_rate"`

	ShowFPS bool `toml:"show_fps"`

	Logging LoggingSettings `toml:"logging"`
}

type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty means stderr
}

func defaults() *Settings {
	return &Settings{
		Title:     "arcade",
		Version:   "0.1.0",
		Width:     200,
		Height:    60,
		FrameRate: 60,
		ShowFPS:   true,
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Default returns the built-in settings, used when no config file is given
func Default() *Settings {
	return defaults()
}

// Load reads a TOML settings file over the defaults
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (s *Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("playfield size %dx%d must be positive", s.Width, s.Height)
	}
	if s.FrameRate <= 0 {
		return fmt.Errorf("frame rate %d must be positive", s.FrameRate)
	}
	return nil
}

// FrameQuantum returns the simulated-time step added per tick
func (s *Settings) FrameQuantum() time.Duration {
	return time.Second / time.Duration(s.FrameRate)
}
