package bounce

import "testing"

func TestCommandFor(t *testing.T) {
	tests := []struct {
		key  rune
		want Command
	}{
		{'q', CommandQuit},
		{'Q', CommandQuit},
		{'w', CommandNone},
		{' ', CommandNone},
		{0, CommandNone},
	}
	for _, tt := range tests {
		if got := CommandFor(tt.key); got != tt.want {
			t.Errorf("CommandFor(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestRandomColorRange(t *testing.T) {
	c := RandomColor(seq(0, 0.5, 0.999))
	if c != (Color{0, 0.5, 0.999}) {
		t.Errorf("RandomColor = %v", c)
	}
}

func TestSinksFanOut(t *testing.T) {
	var got []uint64
	sink := SinkFunc(func(e Event) { got = append(got, e.Frame) })
	Sinks{sink, sink}.EmitBounce(Event{Frame: 7})
	if len(got) != 2 || got[0] != 7 || got[1] != 7 {
		t.Errorf("fan-out delivered %v, want [7 7]", got)
	}
}

func TestNewEvent(t *testing.T) {
	s := newTestState(Vec2{45, 3}, Vec2{-Speed, Speed})
	e := NewEvent(s, BounceX, 12)
	if e.Axes != BounceX || e.Position != s.Position || e.Color != s.Color || e.Frame != 12 {
		t.Errorf("NewEvent = %+v", e)
	}
}
