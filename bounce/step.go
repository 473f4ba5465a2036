package bounce

import "math"

// Bounce is a bitmask of the axes that reflected during a Step.
type Bounce uint8

const (
	BounceX Bounce = 1 << iota // hit the left or right wall
	BounceY                    // hit the ground or ceiling

	BounceNone Bounce = 0
)

// Any reports whether either axis reflected.
func (b Bounce) Any() bool {
	return b != BounceNone
}

// Corner reports whether both axes reflected in the same frame.
func (b Bounce) Corner() bool {
	return b == BounceX|BounceY
}

func (b Bounce) String() string {
	switch b {
	case BounceNone:
		return "none"
	case BounceX:
		return "x"
	case BounceY:
		return "y"
	default:
		return "corner"
	}
}

// Bounds is the range of valid sprite centers for a viewport.
type Bounds struct {
	Left, Right     float32
	Ground, Ceiling float32
}

// BoundsFor computes the valid center range for a sprite of the given size.
// If the viewport is narrower or shorter than the sprite the corresponding
// range is inverted (Left > Right or Ground > Ceiling).
func BoundsFor(vp Viewport, size Vec2) Bounds {
	halfW, halfH := vp.Width/2, vp.Height/2
	return Bounds{
		Left:    -halfW + size.X/2,
		Right:   halfW - size.X/2,
		Ground:  -halfH + size.Y/2,
		Ceiling: halfH - size.Y/2,
	}
}

// Contains reports whether p lies inside the bounds. Edges are inside.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Left && p.X <= b.Right &&
		p.Y >= b.Ground && p.Y <= b.Ceiling
}

// SanitizeDelta clamps a frame delta to a finite, non-negative value.
// Negative, NaN and infinite deltas become 0.
func SanitizeDelta(dt float32) float32 {
	if !(dt > 0) || math.IsInf(float64(dt), 1) {
		return 0
	}
	return dt
}

// Step advances s by dt seconds inside viewport vp and returns the new state
// together with the axes that bounced. On a bounce the position is clamped to
// the edge, the velocity on that axis is negated and the color is resampled
// from src. Both axes may bounce in one call; the color is then sampled twice
// and the later sample is kept.
//
// An axis on which the sprite does not fit is pinned to the viewport center
// and never reflects. dt is passed through SanitizeDelta.
func Step(s State, vp Viewport, dt float32, src Source) (State, Bounce) {
	dt = SanitizeDelta(dt)
	b := BoundsFor(vp, s.size)
	hit := BounceNone

	s.Position.X += dt * s.Velocity.X
	s.Position.Y += dt * s.Velocity.Y

	switch {
	case b.Ground > b.Ceiling:
		s.Position.Y = 0
	case s.Position.Y > b.Ceiling:
		s.Position.Y = b.Ceiling
		s.FlipY()
		s.Recolor(src)
		hit |= BounceY
	case s.Position.Y < b.Ground:
		s.Position.Y = b.Ground
		s.FlipY()
		s.Recolor(src)
		hit |= BounceY
	}

	switch {
	case b.Left > b.Right:
		s.Position.X = 0
	case s.Position.X > b.Right:
		s.Position.X = b.Right
		s.FlipX()
		s.Recolor(src)
		hit |= BounceX
	case s.Position.X < b.Left:
		s.Position.X = b.Left
		s.FlipX()
		s.Recolor(src)
		hit |= BounceX
	}

	return s, hit
}
