package dvdsaver

import "github.com/hajimehoshi/ebiten/v2"

// Node is a textured sprite placed in world space. World space has its origin
// at the viewport center with +y up; the camera maps it to screen pixels.
type Node struct {
	Name string

	// Transform. X and Y locate the pivot in world space. PivotX and PivotY
	// are in image pixels.
	X, Y   float64
	ScaleX float64
	ScaleY float64
	PivotX float64
	PivotY float64

	Alpha   float64
	Visible bool

	// Color tints the texture.
	Color Color

	image *ebiten.Image

	localTransform [6]float64
	transformDirty bool
}

// NewSprite creates a visible sprite node drawing img, pivoted on its center.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Visible:        true,
		Color:          ColorWhite,
		transformDirty: true,
	}
	n.SetImage(img)
	return n
}

// SetImage replaces the texture and recenters the pivot on it.
func (n *Node) SetImage(img *ebiten.Image) {
	n.image = img
	if img != nil {
		b := img.Bounds()
		n.PivotX = float64(b.Dx()) / 2
		n.PivotY = float64(b.Dy()) / 2
	}
	n.transformDirty = true
}

// Image returns the node's texture, or nil if none is set.
func (n *Node) Image() *ebiten.Image {
	return n.image
}

// FitTo scales the node so its texture covers w x h world units.
func (n *Node) FitTo(w, h float64) {
	if n.image == nil {
		return
	}
	b := n.image.Bounds()
	n.SetScale(w/float64(b.Dx()), h/float64(b.Dy()))
}

// Size returns the node's extent in world units.
func (n *Node) Size() (w, h float64) {
	if n.image == nil {
		return 0, 0
	}
	b := n.image.Bounds()
	return float64(b.Dx()) * n.ScaleX, float64(b.Dy()) * n.ScaleY
}
