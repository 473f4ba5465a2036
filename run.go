package dvdsaver

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/dvdsaver/bounce"
)

// RunConfig holds optional settings for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height set the initial window size. The window is resizable;
	// the logo keeps bouncing inside whatever size it is given.
	Width, Height int
	// TPS sets ticks per second. Zero keeps ebiten's default of 60.
	TPS int
	// ShowHUD draws FPS, TPS and bounce counters in the top-left corner.
	ShowHUD bool
	// Debug prints bounces and frame stats to stderr.
	Debug bool
	// FadeIn fades the logo in over this many seconds at startup.
	FadeIn float32
	// Background is the clear color. The zero value means black.
	Background Color
}

// Viewport returns the initial viewport implied by the window size.
func (c RunConfig) Viewport() bounce.Viewport {
	return bounce.Viewport{Width: float32(c.Width), Height: float32(c.Height)}
}

// Run opens a window and runs the scene until the quit key is released or the
// window is closed. Quitting is not an error: Run returns nil.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	if cfg.Background != (Color{}) {
		scene.ClearColor = cfg.Background
	}
	scene.ShowHUD(cfg.ShowHUD)
	scene.SetDebugMode(cfg.Debug)
	scene.FadeIn(cfg.FadeIn)

	if err := ebiten.RunGame(scene); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
