package zoomer

import "testing"

type recordingSink struct {
	events []ZoomChangeEvent
}

func (s *recordingSink) EmitZoomChange(e ZoomChangeEvent) {
	s.events = append(s.events, e)
}

func TestZoomChangeFiresOnBoundaryCrossings(t *testing.T) {
	z, _ := newTestZoomer(t)

	var events []ZoomChangeEvent
	z.OnZoomChange(func(e ZoomChangeEvent) { events = append(events, e) })

	z.setZoom(2) // 1 -> 2 crosses
	if len(events) != 1 || !events[0].IsZoomed {
		t.Fatalf("after 1->2: events = %+v, want [zoomed]", events)
	}
	z.setZoom(3) // 2 -> 3 does not
	if len(events) != 1 {
		t.Fatalf("after 2->3: %d events, want 1", len(events))
	}
	z.setZoom(1) // 3 -> 1 crosses
	if len(events) != 2 || events[1].IsZoomed {
		t.Fatalf("after 3->1: events = %+v, want [zoomed unzoomed]", events)
	}
	z.setZoom(0.5) // clamped to 1, no crossing
	if len(events) != 2 {
		t.Errorf("after clamped 1->1: %d events, want 2", len(events))
	}
}

func TestZoomChangeCallbackOrderAndSink(t *testing.T) {
	z, _ := newTestZoomer(t)
	sink := &recordingSink{}
	z.SetEventSink(sink)

	var order []string
	z.OnZoomChange(func(ZoomChangeEvent) { order = append(order, "first") })
	z.OnZoomChange(func(ZoomChangeEvent) { order = append(order, "second") })

	z.ZoomIn()
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("callback order = %v, want [first second]", order)
	}
	if len(sink.events) != 1 || !sink.events[0].IsZoomed {
		t.Errorf("sink events = %+v, want [zoomed]", sink.events)
	}

	z.SetEventSink(nil)
	z.Reset()
	if len(sink.events) != 1 {
		t.Errorf("detached sink received %d events, want 1", len(sink.events))
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	z, _ := newTestZoomer(t)

	var a, b int
	ha := z.OnZoomChange(func(ZoomChangeEvent) { a++ })
	z.OnZoomChange(func(ZoomChangeEvent) { b++ })

	z.ZoomIn()
	ha.Remove()
	ha.Remove() // second remove is a no-op
	z.Reset()

	if a != 1 || b != 2 {
		t.Errorf("calls = (%d, %d), want (1, 2)", a, b)
	}
	if len(z.handlers.zoomChange) != 1 {
		t.Errorf("registered handlers = %d, want 1", len(z.handlers.zoomChange))
	}

	var zero CallbackHandle
	zero.Remove() // must not panic
}

func TestIsMovingTracksBothModalities(t *testing.T) {
	z, _ := newTestZoomer(t)

	z.HandleEvent(Event{Type: EventMouseDown, X: 10, Y: 10})
	if !z.IsMoving() {
		t.Fatal("IsMoving = false after mouse down")
	}
	z.HandleEvent(Event{Type: EventTouchStart, Touches: []Vec2{{20, 20}}})
	z.HandleEvent(Event{Type: EventMouseUp})
	if !z.IsMoving() {
		t.Error("IsMoving = false while touch still active")
	}
	z.HandleEvent(Event{Type: EventTouchEnd})
	if z.IsMoving() {
		t.Error("IsMoving = true after both gestures ended")
	}
}

func TestMovingNeverEmitsZoomChange(t *testing.T) {
	z, _ := newTestZoomer(t)
	var fired int
	z.OnZoomChange(func(ZoomChangeEvent) { fired++ })

	z.HandleEvent(Event{Type: EventMouseDown})
	z.HandleEvent(Event{Type: EventMouseUp})
	z.HandleEvent(Event{Type: EventTouchStart, Touches: []Vec2{{1, 1}}})
	z.HandleEvent(Event{Type: EventTouchEnd})
	if fired != 0 {
		t.Errorf("zoom change fired %d times, want 0", fired)
	}
}
