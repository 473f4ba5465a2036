package dvdsaver

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	hudWidth    = 120
	hudHeight   = 48
	hudMargin   = 4
	hudInterval = 0.5
)

// hud is a screen-space overlay showing FPS, TPS and the bounce count.
// It is redrawn every ~0.5 seconds.
type hud struct {
	img     *ebiten.Image
	elapsed float64
	op      ebiten.DrawImageOptions
}

func newHUD() *hud {
	h := &hud{img: ebiten.NewImage(hudWidth, hudHeight)}
	h.op.GeoM.Translate(hudMargin, hudMargin)
	h.elapsed = hudInterval // draw on the first tick
	return h
}

func (h *hud) update(dt float64, bounces, corners uint64) {
	h.elapsed += dt
	if h.elapsed < hudInterval {
		return
	}
	h.elapsed = 0

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), bounces, corners))
}

func (h *hud) draw(screen *ebiten.Image) {
	screen.DrawImage(h.img, &h.op)
}

func hudText(fps, tps float64, bounces, corners uint64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nBounces: %d\nCorners: %d", fps, tps, bounces, corners)
}

// ShowHUD enables or disables the FPS and bounce counter overlay.
func (s *Scene) ShowHUD(enabled bool) {
	if !enabled {
		s.hud = nil
		return
	}
	if s.hud == nil {
		s.hud = newHUD()
	}
}
