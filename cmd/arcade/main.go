package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/content"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/driver"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/entity"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/physics"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/status"
)

var (
	configFlag = flag.String("config", "", "TOML settings file, built-in defaults when empty")
	sceneFlag  = flag.String("scene", "", "YAML scene file, embedded scene when empty")
	logFlag    = flag.String("log", "arcade.log", "log file path")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arcade: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}

	// The screen owns the terminal, so the log goes to a file
	logger, err := core.NewLogger(cfg.Logging.Level, cfg.Logging.Format, *logFlag)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	scene, err := loadScene()
	if err != nil {
		return err
	}

	renderer, err := render.New(cfg)
	if err != nil {
		return err
	}
	// A panic anywhere must restore the terminal before the stack prints
	core.SetCleanup(renderer.Fini)
	defer renderer.Fini()

	handler := input.NewHandler(renderer.Screen())
	bounds := physics.NewBounds(logger, float64(cfg.Width), float64(cfg.Height))
	metrics := status.NewRegistry()

	var player *entity.Base
	game, err := engine.New(engine.Config{
		FrameQuantum: cfg.FrameQuantum(),
		Logger:       logger,
		Metrics:      metrics,
		Physics:      bounds,
		Input:        handler,
		OnUpdate: func() {
			for _, m := range handler.Moves() {
				x, y := player.Position()
				player.SetPosition(x+m.DX, y+m.DY)
			}
		},
	})
	if err != nil {
		return err
	}

	player = entity.New("player",
		entity.WithPosition(scene.Player.X, scene.Player.Y),
		entity.WithSize(1, 1),
		entity.WithPhysics())
	game.AddEntities(player)
	game.AddEntities(scene.Build()...)

	// Camera keeps the player centered in the playfield
	if err := game.BindViewportOrigin(player, float64(cfg.Width)/2, float64(cfg.Height)/2); err != nil {
		return err
	}

	loop := driver.New(cfg.FrameQuantum(), func(hostTime int64) {
		game.Tick(hostTime)
		renderer.Draw(game, false)
	})
	game.AttachDriver(loop)

	logger.Info("game starting",
		zap.String("title", cfg.Title),
		zap.String("version", cfg.Version),
		zap.String("scene", scene.Name))
	game.Resume()

	paused := false
	for c := range handler.Control() {
		switch c {
		case input.ControlTogglePause:
			if paused {
				paused = false
				game.Resume()
				continue
			}
			paused = true
			game.Pause()
			// The frozen frame gets the overlay once the loop goroutine
			// is fully out of its last tick
			loop.Wait()
			renderer.Draw(game, true)
		case input.ControlQuit:
			game.Pause()
			loop.Wait()
			logger.Info("game stopped",
				zap.Int64("ticks", game.TickCount()),
				zap.Int("metrics", metrics.TotalCount()))
			return nil
		}
	}
	return nil
}

func loadScene() (*content.Scene, error) {
	if *sceneFlag != "" {
		return content.Load(*sceneFlag)
	}
	return content.Default()
}
