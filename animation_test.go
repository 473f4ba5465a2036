package dvdsaver

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

func TestTweenAlphaReachesTarget(t *testing.T) {
	node := NewSprite("alpha", ebiten.NewImage(1, 1))
	node.Alpha = 0

	g := TweenAlpha(node, 1, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	if math.Abs(node.Alpha-0.5) > 0.01 {
		t.Errorf("midway Alpha = %f, want ~0.5", node.Alpha)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Alpha-1) > 0.01 {
		t.Errorf("Alpha = %f, want ~1", node.Alpha)
	}
}

func TestTweenGroupDoneIsSticky(t *testing.T) {
	node := NewSprite("alpha", ebiten.NewImage(1, 1))
	g := TweenAlpha(node, 0, 0.1, ease.Linear)
	g.Update(0.2)
	if !g.Done {
		t.Fatal("expected Done")
	}
	node.Alpha = 0.7
	g.Update(0.1)
	if node.Alpha != 0.7 {
		t.Errorf("finished tween wrote Alpha = %f", node.Alpha)
	}
}

func TestSceneFadeIn(t *testing.T) {
	s := newTestScene()
	s.FadeIn(0.5)
	if s.Logo().Alpha != 0 {
		t.Fatalf("Alpha = %f at start of fade, want 0", s.Logo().Alpha)
	}
	for i := 0; i < 31; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if math.Abs(s.Logo().Alpha-1) > 0.01 {
		t.Errorf("Alpha = %f after fade, want ~1", s.Logo().Alpha)
	}
	if len(s.tweens) != 0 {
		t.Errorf("%d tweens left after fade", len(s.tweens))
	}
}

func TestSceneFadeInZeroIsNoop(t *testing.T) {
	s := newTestScene()
	s.FadeIn(0)
	if s.Logo().Alpha != 1 || len(s.tweens) != 0 {
		t.Errorf("FadeIn(0) changed alpha to %f with %d tweens", s.Logo().Alpha, len(s.tweens))
	}
}
