// Package render draws the world to a terminal screen. One frame is one
// Draw call: playfield entities shifted by the viewport offset, then the
// HUD on top. Draw runs on whichever goroutine drives the frames; the
// screen itself is never touched from two goroutines at once.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/entity"
)

// glyphs maps entity types to their screen representation
var glyphs = map[entity.Type]rune{
	"player": '@',
	"coin":   '$',
	"crate":  '#',
	"spark":  '*',
}

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Reverse(true)
	stylePaused  = tcell.StyleDefault.Bold(true)
)

// Renderer owns the terminal screen for the lifetime of the program
type Renderer struct {
	screen   tcell.Screen
	settings *config.Settings
}

// New initializes the terminal screen
func New(settings *config.Settings) (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(styleDefault)
	screen.HideCursor()
	screen.Clear()
	return &Renderer{
		screen:   screen,
		settings: settings,
	}, nil
}

// Screen exposes the underlying screen for event polling
func (r *Renderer) Screen() tcell.Screen {
	return r.screen
}

// Fini restores the terminal. Also wired as the crash cleanup so a panic
// never leaves the terminal in raw mode.
func (r *Renderer) Fini() {
	r.screen.Fini()
}

// Draw renders one frame of the current world state
func (r *Renderer) Draw(g *engine.Game, paused bool) {
	r.screen.Clear()

	offX, offY := g.Viewport().Offset()
	width, height := r.screen.Size()

	// Row 0 is the HUD; the playfield starts below it
	for _, e := range g.AllEntities() {
		x, y := e.Position()
		col := int(x + offX)
		row := int(y+offY) + 1
		if col < 0 || col >= width || row < 1 || row >= height {
			continue
		}
		glyph, ok := glyphs[e.Type()]
		if !ok {
			glyph = '?'
		}
		r.screen.SetContent(col, row, glyph, nil, styleDefault)
	}

	r.drawHUD(g, width)

	if paused {
		r.drawCentered(width, height/2, " PAUSED ", stylePaused)
	}

	r.screen.Show()
}

func (r *Renderer) drawHUD(g *engine.Game, width int) {
	hud := fmt.Sprintf(" %s  entities:%d", r.settings.Title, g.World().Count())
	if r.settings.ShowFPS {
		hud += fmt.Sprintf("  fps:%d logic:%d tick:%d", g.FPS(), g.PerformanceFPS(), g.TickCount())
	}
	for col := 0; col < width; col++ {
		glyph := ' '
		if col < len(hud) {
			glyph = rune(hud[col])
		}
		r.screen.SetContent(col, 0, glyph, nil, styleHUD)
	}
}

func (r *Renderer) drawCentered(width, row int, text string, style tcell.Style) {
	col := (width - len(text)) / 2
	if col < 0 {
		col = 0
	}
	for i, glyph := range text {
		r.screen.SetContent(col+i, row, glyph, nil, style)
	}
}
