package sound

import (
	"testing"

	"github.com/phanxgames/dvdsaver/bounce"
)

func TestPitch(t *testing.T) {
	tests := []struct {
		name string
		axes bounce.Bounce
		want float64
	}{
		{"wall", bounce.BounceX, freqWall},
		{"floor", bounce.BounceY, freqFloor},
		{"corner", bounce.BounceX | bounce.BounceY, freqCorner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pitch(tt.axes); got != tt.want {
				t.Errorf("pitch(%v) = %v, want %v", tt.axes, got, tt.want)
			}
		})
	}
}

func TestBlipLength(t *testing.T) {
	s, err := blip(bounce.BounceX)
	if err != nil {
		t.Fatalf("blip: %v", err)
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(blipLength); total != want {
		t.Errorf("blip streamed %d samples, want %d", total, want)
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	var p Player
	// Must not touch the speaker.
	p.EmitBounce(bounce.Event{Axes: bounce.BounceX})
	p.Close()
}
