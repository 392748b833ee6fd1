package ecs

import (
	"github.com/phanxgames/zoomer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ZoomChangeEventType is the Donburi event type for zoomer zoom changes.
var ZoomChangeEventType = events.NewEventType[zoomer.ZoomChangeEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Zoom changes are published to ZoomChangeEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) zoomer.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitZoomChange(event zoomer.ZoomChangeEvent) {
	ZoomChangeEventType.Publish(s.world, event)
}
