package bounce

import (
	"errors"
	"fmt"
	"math"
)

// Speed is the per-axis speed of a bouncer in units per second.
const Speed float32 = 100

// DefaultSize is the logical size of the logo sprite.
var DefaultSize = Vec2{X: 173.5, Y: 100}

var (
	// ErrInvalidSize is returned when a sprite size is not strictly positive.
	ErrInvalidSize = errors.New("bounce: sprite size must be positive")
	// ErrNoViewport is returned when the viewport is missing, non-finite or empty.
	ErrNoViewport = errors.New("bounce: no usable viewport")
	// ErrViewportTooSmall is returned when the sprite does not fit in the viewport.
	ErrViewportTooSmall = errors.New("bounce: viewport smaller than sprite")
)

// Vec2 is a 2D vector in viewport units.
type Vec2 struct {
	X, Y float32
}

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Viewport is the size of the drawing surface in logical units.
type Viewport struct {
	Width, Height float32
}

// Valid reports whether both dimensions are positive and finite.
func (v Viewport) Valid() bool {
	return finitePositive(v.Width) && finitePositive(v.Height)
}

func finitePositive(f float32) bool {
	return f > 0 && !math.IsInf(float64(f), 1)
}

// State is the mutable data of the bouncing sprite. The zero value is not
// useful; create one with New.
type State struct {
	// Position is the sprite center.
	Position Vec2
	// Velocity is in units per second. Only the signs ever change.
	Velocity Vec2
	// Color is replaced on every bounce.
	Color Color

	size Vec2
}

// New creates a State of the given size at a uniformly random position inside
// vp, moving diagonally at Speed with independently random signs, and with a
// random color.
func New(size Vec2, vp Viewport, src Source) (State, error) {
	if !finitePositive(size.X) || !finitePositive(size.Y) {
		return State{}, fmt.Errorf("size %vx%v: %w", size.X, size.Y, ErrInvalidSize)
	}
	if !vp.Valid() {
		return State{}, fmt.Errorf("viewport %vx%v: %w", vp.Width, vp.Height, ErrNoViewport)
	}
	if vp.Width <= size.X || vp.Height <= size.Y {
		return State{}, fmt.Errorf("viewport %vx%v, sprite %vx%v: %w",
			vp.Width, vp.Height, size.X, size.Y, ErrViewportTooSmall)
	}

	b := BoundsFor(vp, size)
	s := State{size: size}
	s.Position = Vec2{
		X: uniform(src, b.Left, b.Right),
		Y: uniform(src, b.Ground, b.Ceiling),
	}
	s.Velocity = Vec2{
		X: randomSign(src) * Speed,
		Y: randomSign(src) * Speed,
	}
	s.Color = RandomColor(src)
	return s, nil
}

// Size returns the fixed width and height of the sprite.
func (s State) Size() Vec2 {
	return s.size
}

// FlipX reverses horizontal motion.
func (s *State) FlipX() {
	s.Velocity.X = -s.Velocity.X
}

// FlipY reverses vertical motion.
func (s *State) FlipY() {
	s.Velocity.Y = -s.Velocity.Y
}

// Recolor replaces the color with a freshly sampled one.
func (s *State) Recolor(src Source) {
	s.Color = RandomColor(src)
}
