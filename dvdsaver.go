package dvdsaver

import (
	"errors"
	"image/color"

	"github.com/phanxgames/dvdsaver/bounce"
)

// ErrNoLogo is returned when the scene is created without a logo texture.
var ErrNoLogo = errors.New("dvdsaver: no logo texture")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default background.
var ColorBlack = Color{0, 0, 0, 1}

// colorFromBounce widens a bounce color and attaches an alpha.
func colorFromBounce(c bounce.Color, a float64) Color {
	return Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: a}
}

// ColorFromRGBA converts an 8-bit color (such as one from colornames) to a Color.
func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// toRGBA converts to a premultiplied 8-bit color suitable for Image.Fill.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Rect is an axis-aligned rectangle in screen space. The origin is at the
// top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
