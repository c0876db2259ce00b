// Package ecs provides ECS adapters for the sandbox input event stream.
//
// The primary adapter is [NewDonburiSink], which bridges raw sandbox events
// (pointer motion, press, drag, release and keys) into a [Donburi] world as
// typed events. Subscribe to [InputEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	app.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
