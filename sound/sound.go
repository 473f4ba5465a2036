// Package sound plays a short tone on every bounce through the beep speaker.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/dvdsaver/bounce"
)

const (
	sampleRate = beep.SampleRate(44100)
	blipLength = 60 * time.Millisecond

	// Pitches per bounce kind; a corner gets the highest note.
	freqWall   = 440.0
	freqFloor  = 330.0
	freqCorner = 880.0
)

// Player is a bounce.EventSink that beeps on bounces.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

// NewPlayer initializes the speaker. Audio failure is reported but callers
// usually treat it as non-fatal.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{initialized: true}, nil
}

// EmitBounce queues a blip for e. It returns immediately.
func (p *Player) EmitBounce(e bounce.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := blip(e.Axes)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// pitch picks the tone for a bounce kind.
func pitch(axes bounce.Bounce) float64 {
	switch {
	case axes.Corner():
		return freqCorner
	case axes&bounce.BounceY != 0:
		return freqFloor
	default:
		return freqWall
	}
}

// blip returns a finite sine tone for the bounce kind.
func blip(axes bounce.Bounce) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, pitch(axes))
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(blipLength), sine), nil
}
