package ecs

import (
	"testing"

	"github.com/phanxgames/dvdsaver/bounce"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitBounce(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []bounce.Event
	BounceEventType.Subscribe(world, func(w donburi.World, e bounce.Event) {
		received = append(received, e)
	})

	sink.EmitBounce(bounce.Event{
		Axes:     bounce.BounceX,
		Position: bounce.Vec2{X: 313.25, Y: 10},
		Frame:    42,
	})
	sink.EmitBounce(bounce.Event{
		Axes:  bounce.BounceX | bounce.BounceY,
		Color: bounce.Color{R: 1},
		Frame: 43,
	})

	// Events are queued until processed.
	BounceEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Axes != bounce.BounceX || e0.Frame != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Position.X != 313.25 || e0.Position.Y != 10 {
		t.Errorf("event 0 position: %v", e0.Position)
	}

	e1 := received[1]
	if !e1.Axes.Corner() || e1.Color.R != 1 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink bounce.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestStats(t *testing.T) {
	world := donburi.NewWorld()
	stats := NewStats(world)
	sink := NewDonburiSink(world)

	for _, axes := range []bounce.Bounce{
		bounce.BounceX, bounce.BounceX, bounce.BounceY,
		bounce.BounceX | bounce.BounceY, bounce.BounceNone,
	} {
		sink.EmitBounce(bounce.Event{Axes: axes, Frame: uint64(axes)})
	}
	events.ProcessAllEvents(world)

	if stats.Walls != 2 || stats.Floors != 1 || stats.Corners != 1 {
		t.Errorf("stats = %+v, want 2 walls, 1 floor, 1 corner", stats)
	}
	if stats.Total() != 4 {
		t.Errorf("Total() = %d, want 4", stats.Total())
	}
	if !stats.Last.Axes.Corner() {
		t.Errorf("Last = %+v, want the corner event", stats.Last)
	}
	want := "bounces: 4 (walls 2, floors 1, corners 1)"
	if got := stats.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
