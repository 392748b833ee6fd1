package zoomer

// EventType identifies a kind of raw input event.
type EventType uint8

const (
	EventWheel       EventType = iota // wheel or trackpad scroll
	EventDoubleClick                  // double click or double tap
	EventTouchStart                   // a contact went down
	EventTouchMove                    // one or more contacts moved
	EventTouchEnd                     // a contact went up
	EventMouseDown                    // a mouse button was pressed
	EventMouseMove                    // the cursor moved over the viewport
	EventMouseUp                      // a mouse button was released
	EventMouseLeave                   // the cursor left the viewport
)

var eventTypeNames = [...]string{
	EventWheel:       "wheel",
	EventDoubleClick: "dblclick",
	EventTouchStart:  "touchstart",
	EventTouchMove:   "touchmove",
	EventTouchEnd:    "touchend",
	EventMouseDown:   "mousedown",
	EventMouseMove:   "mousemove",
	EventMouseUp:     "mouseup",
	EventMouseLeave:  "mouseleave",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is one raw input event in screen coordinates.
type Event struct {
	Type EventType
	// X and Y locate the cursor for mouse events.
	X, Y float64
	// DeltaX and DeltaY are the scroll amounts of a wheel event. Negative
	// DeltaY scrolls up, which zooms in.
	DeltaX, DeltaY float64
	// Touches lists every contact currently on the surface, in the order
	// the host reports them.
	Touches []Vec2
}

// HandleEvent classifies ev and applies it. It returns true when the host
// should suppress its own default handling of the event (page scroll for
// wheel and touch moves). A disabled zoomer ignores every event and returns
// false.
func (z *Zoomer) HandleEvent(ev Event) bool {
	if z.disabled {
		return false
	}
	switch ev.Type {
	case EventWheel:
		return z.onWheel(ev.DeltaY)
	case EventDoubleClick:
		z.onDoubleClick()
	case EventTouchStart:
		z.onTouchStart(ev.Touches)
	case EventTouchMove:
		return z.onTouchMove(ev.Touches)
	case EventTouchEnd:
		z.onTouchEnd()
	case EventMouseDown:
		z.onMouseDown(Vec2{ev.X, ev.Y})
	case EventMouseMove:
		z.onMouseMove(Vec2{ev.X, ev.Y})
	case EventMouseUp:
		z.onMouseUp()
	case EventMouseLeave:
		z.onMouseLeave()
	}
	return false
}

// --- Wheel and double click ---

func (z *Zoomer) onWheel(deltaY float64) bool {
	if z.mouse != nil && z.mouse.validated {
		return true
	}
	switch {
	case deltaY < 0:
		z.ZoomIn()
	case deltaY > 0:
		z.ZoomOut()
	}
	return true
}

func (z *Zoomer) onDoubleClick() {
	if !z.isZoomed {
		z.setZoom(doubleClickZoom)
	} else {
		z.setZoom(MinZoom)
	}
}

// --- Touch ---

// onTouchStart fires for every new contact. A later start in the same
// sequence refreshes the baseline and may promote the gesture to a pinch.
func (z *Zoomer) onTouchStart(touches []Vec2) {
	if len(touches) == 0 {
		return
	}
	g := z.touch
	if g == nil {
		g = &touchGesture{}
	}
	g.baseline = z.translation
	g.start = touches[0]
	if len(touches) > 1 {
		if !g.pinch {
			// Pan validation says nothing about the pinch.
			g.validated = false
		}
		g.pinch = true
		g.prev = [2]Vec2{touches[0], touches[1]}
	}
	z.setTouchGesture(g)
}

func (z *Zoomer) onTouchMove(touches []Vec2) bool {
	g := z.touch
	if g == nil {
		return true
	}
	if g.pinch {
		z.pinchMove(g, touches)
	} else {
		z.touchPan(g, touches)
	}
	return true
}

// touchPan moves the content with a single finger. Validation is sticky for
// the rest of the gesture.
func (z *Zoomer) touchPan(g *touchGesture, touches []Vec2) {
	if len(touches) == 0 {
		return
	}
	delta := touches[0].Sub(g.start)
	if exceedsDeadZone(delta) {
		g.validated = true
	}
	if g.validated {
		p := panFrom(g.baseline, delta, z.zoom)
		z.setTranslation(p.X, p.Y)
	}
}

// pinchMove zooms by the change in contact distance since the previous tick
// and pans by the average contact movement. A tick only applies when the
// previous tick validated; validity is decided afresh on every tick.
func (z *Zoomer) pinchMove(g *touchGesture, touches []Vec2) {
	if len(touches) < 2 {
		g.validated = false
		return
	}
	c0, c1 := touches[0], touches[1]
	factor := pinchFactor(g.prev, c0, c1)

	if g.validated {
		z.setZoom(z.zoom * factor)
		p := panFrom(z.translation, pinchPan(g.prev, c0, c1), z.zoom)
		z.setTranslation(p.X, p.Y)
	}

	g.validated = z.over(c0) && z.over(c1) && factor != 1
	g.prev = [2]Vec2{c0, c1}
}

func (z *Zoomer) onTouchEnd() {
	z.setTouchGesture(nil)
}

// over reports whether p hits the viewport itself.
func (z *Zoomer) over(p Vec2) bool {
	return z.viewport != nil && z.viewport.Contains(p.X, p.Y)
}

// --- Mouse ---

func (z *Zoomer) onMouseDown(p Vec2) {
	z.setMouseGesture(&mouseGesture{
		baseline: z.translation,
		start:    p,
	})
}

// onMouseMove pans while a press is held. At zoom 1 the bounds collapse to
// the origin, so there is nothing to do.
func (z *Zoomer) onMouseMove(p Vec2) {
	g := z.mouse
	if g == nil || z.zoom == MinZoom {
		return
	}
	delta := p.Sub(g.start)
	if exceedsDeadZone(delta) {
		g.validated = true
	}
	if g.validated {
		t := panFrom(g.baseline, delta, z.zoom)
		z.setTranslation(t.X, t.Y)
	}
}

func (z *Zoomer) onMouseUp() {
	z.setMouseGesture(nil)
}

// onMouseLeave ends a drag that left the viewport. An unvalidated press
// survives until the button is released over the viewport.
func (z *Zoomer) onMouseLeave() {
	if z.mouse != nil && z.mouse.validated {
		z.setMouseGesture(nil)
	}
}
