package dvdsaver

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors and call Update(dt) each frame.
// The group auto-applies values and marks the node dirty.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and marks the node dirty.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// FadeIn starts the logo fully transparent and eases it to opaque over
// duration seconds. Zero or negative durations leave the logo opaque.
func (s *Scene) FadeIn(duration float32) {
	if duration <= 0 {
		return
	}
	s.logo.Alpha = 0
	s.tweens = append(s.tweens, TweenAlpha(s.logo, 1, duration, ease.OutQuad))
}

// updateTweens advances running tweens and drops finished ones.
func (s *Scene) updateTweens(dt float32) {
	live := s.tweens[:0]
	for _, tw := range s.tweens {
		tw.Update(dt)
		if !tw.Done {
			live = append(live, tw)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}
