package ecs

import (
	"fmt"

	"github.com/phanxgames/dvdsaver/bounce"

	"github.com/yohamta/donburi"
)

// Stats counts bounce events delivered through a Donburi world.
type Stats struct {
	Walls   int // left/right only
	Floors  int // ground/ceiling only
	Corners int // both axes in one frame
	Last    bounce.Event
}

// NewStats subscribes a Stats to BounceEventType in world.
func NewStats(world donburi.World) *Stats {
	st := &Stats{}
	BounceEventType.Subscribe(world, st.onBounce)
	return st
}

func (st *Stats) onBounce(_ donburi.World, e bounce.Event) {
	switch {
	case e.Axes.Corner():
		st.Corners++
	case e.Axes&bounce.BounceX != 0:
		st.Walls++
	case e.Axes&bounce.BounceY != 0:
		st.Floors++
	default:
		return
	}
	st.Last = e
}

// Total returns the number of bounce frames counted.
func (st *Stats) Total() int {
	return st.Walls + st.Floors + st.Corners
}

func (st *Stats) String() string {
	return fmt.Sprintf("bounces: %d (walls %d, floors %d, corners %d)",
		st.Total(), st.Walls, st.Floors, st.Corners)
}
