package ecs

import (
	"github.com/phanxgames/sandbox"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for sandbox input events.
// Subscribe to this in your ECS systems to receive pointer and key events.
var InputEventType = events.NewEventType[sandbox.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Input events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sandbox.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sandbox.Event) {
	InputEventType.Publish(s.world, event)
}
