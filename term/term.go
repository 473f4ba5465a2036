// Package term runs the bouncing logo in a terminal using tcell. Each cell
// stands for CellWidth x CellHeight logical units, so the same physics and
// logo size apply as in the windowed host.
package term

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/phanxgames/dvdsaver/bounce"
)

// ErrNoScreen is returned when Run is called without a terminal screen.
var ErrNoScreen = errors.New("term: no screen")

// Config holds optional settings for Run.
type Config struct {
	// CellWidth and CellHeight are the logical size of one terminal cell.
	// Zero selects 8 x 16.
	CellWidth, CellHeight float32
	// TPS is the number of ticks per second. Zero selects 30.
	TPS int
	// Background fills empty cells. The zero value leaves the terminal default.
	Background color.RGBA
	// Label is drawn centered in the logo. Empty selects "DVD".
	Label string
	// Sinks receive every bounce event.
	Sinks []bounce.EventSink
}

func (c *Config) defaults() {
	if c.CellWidth <= 0 {
		c.CellWidth = 8
	}
	if c.CellHeight <= 0 {
		c.CellHeight = 16
	}
	if c.TPS <= 0 {
		c.TPS = 30
	}
	if c.Label == "" {
		c.Label = "DVD"
	}
}

// Viewport converts a terminal size in cells to logical units.
func (c Config) Viewport(cols, rows int) bounce.Viewport {
	return bounce.Viewport{
		Width:  float32(cols) * c.CellWidth,
		Height: float32(rows) * c.CellHeight,
	}
}

// Host drives one bounce.State on a tcell screen.
type Host struct {
	screen tcell.Screen
	cfg    Config
	src    bounce.Source
	state  bounce.State
	sinks  bounce.Sinks
	frame  uint64
	last   time.Time
	now    func() time.Time
}

// New spawns the logo inside the screen's current size. The screen must
// already be initialized.
func New(screen tcell.Screen, cfg Config, src bounce.Source) (*Host, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}
	cfg.defaults()
	cols, rows := screen.Size()
	st, err := bounce.New(bounce.DefaultSize, cfg.Viewport(cols, rows), src)
	if err != nil {
		return nil, fmt.Errorf("spawn logo in %dx%d terminal: %w", cols, rows, err)
	}
	return &Host{
		screen: screen,
		cfg:    cfg,
		src:    src,
		state:  st,
		sinks:  bounce.Sinks(cfg.Sinks),
		now:    time.Now,
	}, nil
}

// State returns a copy of the current bounce state.
func (h *Host) State() bounce.State {
	return h.state
}

// Run ticks until the quit key is released or done is closed. Terminal events
// are read on a separate goroutine and handed to the loop over a channel; the
// state is only touched by the goroutine calling Run.
func (h *Host) Run(done <-chan struct{}) error {
	events := make(chan tcell.Event, 16)
	stop := make(chan struct{})
	defer close(stop)
	go h.pollEvents(events, stop)

	ticker := time.NewTicker(time.Second / time.Duration(h.cfg.TPS))
	defer ticker.Stop()

	h.last = h.now()
	h.draw()
	for {
		select {
		case <-done:
			return nil
		case ev := <-events:
			if h.handleEvent(ev) == bounce.CommandQuit {
				log.Println("exiting.")
				return nil
			}
		case <-ticker.C:
			h.Tick()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or stop
// is closed.
func (h *Host) pollEvents(events chan<- tcell.Event, stop <-chan struct{}) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

// Tick advances the simulation by the wall-clock time since the previous
// tick and redraws the screen.
func (h *Host) Tick() {
	now := h.now()
	dt := bounce.SanitizeDelta(float32(now.Sub(h.last).Seconds()))
	h.last = now
	h.step(dt)
	h.draw()
}

func (h *Host) step(dt float32) {
	h.frame++
	cols, rows := h.screen.Size()
	var hit bounce.Bounce
	h.state, hit = bounce.Step(h.state, h.cfg.Viewport(cols, rows), dt, h.src)
	if hit.Any() {
		h.sinks.EmitBounce(bounce.NewEvent(h.state, hit, h.frame))
	}
}

// handleEvent reacts to resizes and maps keys to commands. tcell has no key
// release events, so a key event counts as press and release together.
func (h *Host) handleEvent(ev tcell.Event) bounce.Command {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return bounce.CommandFor(ev.Rune())
		}
	}
	return bounce.CommandNone
}

// cellColor converts a bounce color to a 24-bit tcell color.
func cellColor(c bounce.Color) tcell.Color {
	r, g, b := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
