package ecs

import (
	"github.com/phanxgames/dvdsaver/bounce"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BounceEventType is the Donburi event type for bounce events.
var BounceEventType = events.NewEventType[bounce.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on BounceEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) bounce.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitBounce(e bounce.Event) {
	BounceEventType.Publish(s.world, e)
}
