// Package ecs bridges bounce events into a [Donburi] world.
//
// [NewDonburiSink] returns a bounce.EventSink that publishes each event as
// [BounceEventType]. Subscribe to it in ECS systems; [Stats] is one such
// subscriber that keeps running totals.
//
// Usage:
//
//	world := donburi.NewWorld()
//	stats := ecs.NewStats(world)
//	scene.AddEventSink(ecs.NewDonburiSink(world))
//	// once per frame, or before reading stats:
//	ecs.BounceEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
