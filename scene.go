package dvdsaver

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/dvdsaver/bounce"
)

// Scene owns the bouncing logo, its camera and the per-tick update. It
// implements ebiten.Game and can be passed to Run or ebiten.RunGame directly.
type Scene struct {
	// ClearColor fills the screen before the logo is drawn.
	ClearColor Color

	cam   *Camera
	logo  *Node
	state bounce.State
	src   bounce.Source
	sinks bounce.Sinks

	// delta reports the seconds elapsed since the previous tick.
	delta func() float32

	// Input
	keys        KeySource
	keyBuf      []rune
	injectQueue []rune

	tweens []*TweenGroup
	hud    *hud
	op     ebiten.DrawImageOptions

	frame   uint64
	bounces uint64
	corners uint64

	debug bool
	stats debugStats
}

// NewScene spawns the logo at a random position inside a viewport of the
// given size. src drives both the spawn and every color change.
func NewScene(logo *ebiten.Image, vp bounce.Viewport, src bounce.Source) (*Scene, error) {
	if logo == nil {
		return nil, ErrNoLogo
	}
	st, err := bounce.New(bounce.DefaultSize, vp, src)
	if err != nil {
		return nil, fmt.Errorf("spawn logo: %w", err)
	}

	node := NewSprite("logo", logo)
	size := st.Size()
	node.FitTo(float64(size.X), float64(size.Y))

	s := &Scene{
		ClearColor: ColorBlack,
		cam:        newCamera(Rect{Width: float64(vp.Width), Height: float64(vp.Height)}),
		logo:       node,
		state:      st,
		src:        src,
		delta:      tpsDelta,
		keys:       &ebitenKeys{},
	}
	s.syncLogo()
	return s, nil
}

// tpsDelta is the fixed tick length at the current TPS.
func tpsDelta() float32 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return float32(1.0 / float64(tps))
}

// State returns a copy of the current bounce state.
func (s *Scene) State() bounce.State {
	return s.state
}

// Logo returns the sprite node that mirrors the bounce state.
func (s *Scene) Logo() *Node {
	return s.logo
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.cam
}

// Bounces returns the number of frames in which the logo bounced.
func (s *Scene) Bounces() uint64 {
	return s.bounces
}

// Corners returns the number of frames in which both axes bounced.
func (s *Scene) Corners() uint64 {
	return s.corners
}

// AddEventSink registers a sink that receives every bounce event.
func (s *Scene) AddEventSink(sink bounce.EventSink) {
	s.sinks = append(s.sinks, sink)
}

// Update advances the simulation by one tick, then handles input. It returns
// ebiten.Termination once the quit key has been released, after the tick has
// been fully applied.
func (s *Scene) Update() error {
	dt := bounce.SanitizeDelta(s.delta())
	s.frame++

	var hit bounce.Bounce
	s.state, hit = bounce.Step(s.state, s.cam.WorldViewport(), dt, s.src)
	if hit.Any() {
		s.bounces++
		if hit.Corner() {
			s.corners++
		}
		e := bounce.NewEvent(s.state, hit, s.frame)
		s.debugLogBounce(e)
		s.sinks.EmitBounce(e)
	}
	s.syncLogo()
	s.updateTweens(dt)

	if s.hud != nil {
		s.hud.update(float64(dt), s.bounces, s.corners)
	}
	s.debugTick()

	if s.processInput() == bounce.CommandQuit {
		log.Println("exiting.")
		return ebiten.Termination
	}
	return nil
}

// syncLogo copies position and color from the bounce state onto the sprite.
func (s *Scene) syncLogo() {
	s.logo.SetPosition(float64(s.state.Position.X), float64(s.state.Position.Y))
	s.logo.Color = colorFromBounce(s.state.Color, 1)
}

// Draw clears the screen and draws the logo and overlay.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(s.ClearColor.toRGBA())
	drawSprite(screen, s.logo, s.cam.computeViewMatrix(), &s.op)
	if s.hud != nil {
		s.hud.draw(screen)
	}

	if s.debug {
		s.stats.drawTime += time.Since(t0)
	}
}

// Layout makes one world unit equal one device-independent pixel. The window
// size reported here is the viewport used by the next Update.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.cam.SetViewport(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}
