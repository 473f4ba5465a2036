package dvdsaver

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/phanxgames/dvdsaver/bounce"
)

// debugStatsInterval is the number of ticks between stats lines.
const debugStatsInterval = 600

// debugStats holds per-interval counters. Only populated in debug mode.
type debugStats struct {
	frames   uint64
	bounces  uint64
	drawTime time.Duration
}

// debugOut is where debug lines go.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, every bounce and
// a periodic frame summary are printed to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.stats = debugStats{}
}

// debugLogBounce prints a single bounce.
func (s *Scene) debugLogBounce(e bounce.Event) {
	if !s.debug {
		return
	}
	s.stats.bounces++
	_, _ = fmt.Fprintf(debugOut, "[dvdsaver] frame %d: bounce %s at (%.1f, %.1f) color %s\n",
		e.Frame, e.Axes, e.Position.X, e.Position.Y, hexColor(e.Color))
}

// debugTick counts a frame and prints the summary every debugStatsInterval frames.
func (s *Scene) debugTick() {
	if !s.debug {
		return
	}
	s.stats.frames++
	if s.stats.frames < debugStatsInterval {
		return
	}
	vp := s.cam.WorldViewport()
	avgDraw := s.stats.drawTime / time.Duration(s.stats.frames)
	_, _ = fmt.Fprintf(debugOut,
		"[dvdsaver] frames: %d | bounces: %d | viewport: %.0fx%.0f | avg draw: %v\n",
		s.stats.frames, s.stats.bounces, vp.Width, vp.Height, avgDraw)
	s.stats = debugStats{}
}

// hexColor formats a bounce color as #rrggbb.
func hexColor(c bounce.Color) string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}
