package bounce

// Event describes one frame in which the sprite bounced.
type Event struct {
	Axes     Bounce
	Position Vec2
	Color    Color
	Frame    uint64
}

// EventSink receives bounce events from a host loop. Sinks are called
// synchronously on the loop goroutine and must not block.
type EventSink interface {
	EmitBounce(Event)
}

// SinkFunc adapts a plain function to EventSink.
type SinkFunc func(Event)

// EmitBounce calls f(e).
func (f SinkFunc) EmitBounce(e Event) {
	f(e)
}

// Sinks fans an event out to several sinks in order.
type Sinks []EventSink

// EmitBounce forwards e to every sink.
func (ss Sinks) EmitBounce(e Event) {
	for _, s := range ss {
		s.EmitBounce(e)
	}
}

// NewEvent builds the event for a state that just bounced.
func NewEvent(s State, axes Bounce, frame uint64) Event {
	return Event{Axes: axes, Position: s.Position, Color: s.Color, Frame: frame}
}
