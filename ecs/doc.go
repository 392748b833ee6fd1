// Package ecs provides ECS adapters for zoomer's zoom change signal.
//
// The primary adapter is [NewDonburiSink], which bridges zoomer zoom changes
// into a [Donburi] world as typed events. Subscribe to [ZoomChangeEventType]
// in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	z.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
