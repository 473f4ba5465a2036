package dvdsaver

import "github.com/phanxgames/dvdsaver/bounce"

// Camera maps world space to a screen viewport. World space is centered on
// (X, Y) with +y pointing up; screen space has its origin at the top-left of
// the window with +y pointing down.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = one world unit per pixel).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// newCamera creates a Camera with default values and the given viewport.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// SetViewport updates the screen rectangle, typically after a window resize.
func (c *Camera) SetViewport(vp Rect) {
	if vp == c.Viewport {
		return
	}
	c.Viewport = vp
	c.dirty = true
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom, -zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	z := c.Zoom

	c.viewMatrix = [6]float64{z, 0, 0, -z, cx - z*c.X, cy + z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// WorldViewport returns the extent of the visible area in world units.
func (c *Camera) WorldViewport() bounce.Viewport {
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	return bounce.Viewport{
		Width:  float32(c.Viewport.Width / z),
		Height: float32(c.Viewport.Height / z),
	}
}
