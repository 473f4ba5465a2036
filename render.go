package dvdsaver

import "github.com/hajimehoshi/ebiten/v2"

// spriteGeoM builds the image-to-screen matrix for a node seen through view.
func spriteGeoM(n *Node, view [6]float64) ebiten.GeoM {
	m := multiplyAffine(view, n.transform())
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// drawSprite draws a visible node onto target. op is reset and reused.
func drawSprite(target *ebiten.Image, n *Node, view [6]float64, op *ebiten.DrawImageOptions) {
	if !n.Visible || n.image == nil || n.Alpha <= 0 {
		return
	}

	op.GeoM = spriteGeoM(n, view)

	// Apply premultiplied color scale
	op.ColorScale.Reset()
	a := float32(n.Color.A * n.Alpha)
	op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
	op.Filter = ebiten.FilterLinear

	target.DrawImage(n.image, op)
}
