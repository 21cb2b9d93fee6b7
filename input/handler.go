// Package input turns terminal key events into per-tick movement batches
// and out-of-band control signals. Movement is consumed by the game's
// update callback through the engine's input hook; pause and quit go to
// the main goroutine over a channel, since no hook runs while paused.
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/core"
)

// Control is an out-of-band signal for the main goroutine
type Control int

const (
	ControlTogglePause Control = iota
	ControlQuit
)

// Move is one movement step in playfield cells
type Move struct {
	DX, DY float64
}

// Handler polls the screen on its own goroutine and queues what it sees.
// It implements the engine input hook: OnUpdate makes everything queued
// since the last tick visible to Moves.
type Handler struct {
	control chan Control

	// mu guards queued; the poll goroutine appends, the tick drains
	mu     sync.Mutex
	queued []Move

	// moves is the current tick's batch, tick goroutine only
	moves []Move
}

// NewHandler starts the poll goroutine for the given screen. The
// goroutine exits when the screen is finalized.
func NewHandler(screen tcell.Screen) *Handler {
	h := &Handler{
		control: make(chan Control, 8),
	}
	core.Go(func() { h.poll(screen) })
	return h
}

func (h *Handler) poll(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized, unblock a main goroutine still waiting
			h.send(ControlQuit)
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			h.handleKey(ev)
		}
	}
}

func (h *Handler) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.send(ControlQuit)
	case tcell.KeyLeft:
		h.enqueue(-1, 0)
	case tcell.KeyRight:
		h.enqueue(1, 0)
	case tcell.KeyUp:
		h.enqueue(0, -1)
	case tcell.KeyDown:
		h.enqueue(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			h.send(ControlQuit)
		case 'p', ' ':
			h.send(ControlTogglePause)
		case 'h':
			h.enqueue(-1, 0)
		case 'l':
			h.enqueue(1, 0)
		case 'k':
			h.enqueue(0, -1)
		case 'j':
			h.enqueue(0, 1)
		}
	}
}

func (h *Handler) send(c Control) {
	select {
	case h.control <- c:
	default:
	}
}

func (h *Handler) enqueue(dx, dy float64) {
	h.mu.Lock()
	h.queued = append(h.queued, Move{DX: dx, DY: dy})
	h.mu.Unlock()
}

// OnUpdate drains the queue into the current tick's batch. Keys pressed
// after this point wait for the next tick.
func (h *Handler) OnUpdate(time.Duration) {
	h.mu.Lock()
	h.moves, h.queued = h.queued, nil
	h.mu.Unlock()
}

// Moves returns the movement steps drained for the current tick
func (h *Handler) Moves() []Move {
	return h.moves
}

// Control delivers pause and quit signals to the main goroutine
func (h *Handler) Control() <-chan Control {
	return h.control
}
