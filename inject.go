package zoomer

import "math"

// Synthetic input is queued here and consumed one event per frame by
// Input.Update, ahead of real Ebitengine input. Coordinates are screen
// coordinates, identical to what real input would report.

func (in *Input) inject(ev Event) {
	if len(ev.Touches) > 0 {
		ev.Touches = append([]Vec2(nil), ev.Touches...)
	}
	in.injectQueue = append(in.injectQueue, ev)
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// InjectWheel queues a wheel event. Negative deltaY zooms in.
func (in *Input) InjectWheel(deltaY float64) {
	in.inject(Event{Type: EventWheel, DeltaY: deltaY})
}

// InjectDoubleClick queues a double click at (x, y).
func (in *Input) InjectDoubleClick(x, y float64) {
	in.inject(Event{Type: EventDoubleClick, X: x, Y: y})
}

// InjectDrag queues a full mouse drag: press at (fromX, fromY), frames-2
// evenly spaced moves ending at (toX, toY), and a release there. The
// sequence consumes frames frames. Minimum frames is 3.
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	in.inject(Event{Type: EventMouseDown, X: fromX, Y: fromY})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.inject(Event{
			Type: EventMouseMove,
			X:    fromX + (toX-fromX)*t,
			Y:    fromY + (toY-fromY)*t,
		})
	}
	in.inject(Event{Type: EventMouseUp, X: toX, Y: toY})
}

// InjectTouchPan queues a single-finger pan: contact at (fromX, fromY),
// frames-2 evenly spaced moves ending at (toX, toY), then the finger lifts.
// Minimum frames is 3.
func (in *Input) InjectTouchPan(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	in.inject(Event{Type: EventTouchStart, Touches: []Vec2{{fromX, fromY}}})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.inject(Event{Type: EventTouchMove, Touches: []Vec2{{
			fromX + (toX-fromX)*t,
			fromY + (toY-fromY)*t,
		}}})
	}
	in.inject(Event{Type: EventTouchEnd})
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy).
// The contact distance goes from fromDist to toDist over frames moves, then
// both fingers lift, for frames+2 frames in total. Growing distance zooms
// in. The first move only arms the pinch, so at least two moves are needed
// for any zoom to apply.
func (in *Input) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	pair := func(d float64) []Vec2 {
		h := math.Abs(d) / 2
		return []Vec2{{cx - h, cy}, {cx + h, cy}}
	}
	in.inject(Event{Type: EventTouchStart, Touches: pair(fromDist)})
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		in.inject(Event{Type: EventTouchMove, Touches: pair(fromDist + (toDist-fromDist)*t)})
	}
	in.inject(Event{Type: EventTouchEnd})
}

// processInjected pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed (real input should be skipped).
func (in *Input) processInjected() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	ev := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue[len(in.injectQueue)-1] = Event{}
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.dispatch(ev)
	return true
}
