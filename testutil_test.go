package dvdsaver

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-6

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// seqSource replays a fixed sequence of values, wrapping around at the end.
type seqSource struct {
	vals []float32
	n    int
}

func (s *seqSource) Float32() float32 {
	v := s.vals[s.n%len(s.vals)]
	s.n++
	return v
}

// centered spawns at the origin moving up and right, colored red.
func centered() *seqSource {
	return &seqSource{vals: []float32{0.5, 0.5, 0.25, 0.25, 1, 0, 0}}
}

// newTestScene builds an 800x600 scene with a 347x200 logo, no keyboard and a
// fixed 1/60 s tick.
func newTestScene() *Scene {
	s, err := NewScene(ebiten.NewImage(347, 200), Viewport800x600, centered())
	if err != nil {
		panic(err)
	}
	s.SetKeySource(nil)
	s.delta = func() float32 { return 1.0 / 60 }
	return s
}
