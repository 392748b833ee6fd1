package zoomer

// ZoomChangeEvent is emitted when the content crosses between its
// unmagnified state (zoom 1) and any other zoom factor.
type ZoomChangeEvent struct {
	IsZoomed bool
}

// EventSink is the interface for optional external event delivery, such as
// an ECS world. When set on a Zoomer, zoom changes are forwarded to it after
// the registered callbacks.
type EventSink interface {
	EmitZoomChange(event ZoomChangeEvent)
}

// SetEventSink sets the sink that receives zoom changes. Pass nil to detach.
func (z *Zoomer) SetEventSink(sink EventSink) {
	z.sink = sink
}

// --- Handler registry ---

type zoomChangeHandler struct {
	id uint32
	fn func(ZoomChangeEvent)
}

type handlerRegistry struct {
	zoomChange []zoomChangeHandler
	nextID     uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.zoomChange
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zoomChangeHandler{}
			h.reg.zoomChange = s[:len(s)-1]
			return
		}
	}
}

// OnZoomChange registers a callback fired each time the zoom factor crosses
// into or out of 1. Callbacks run in registration order.
func (z *Zoomer) OnZoomChange(fn func(ZoomChangeEvent)) CallbackHandle {
	z.handlers.nextID++
	id := z.handlers.nextID
	z.handlers.zoomChange = append(z.handlers.zoomChange, zoomChangeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &z.handlers}
}

// --- Edge detection ---

// zoomChanged fires exactly one ZoomChangeEvent when exactly one of old and
// cur equals MinZoom.
func (z *Zoomer) zoomChanged(old, cur float64) {
	if (old == MinZoom) == (cur == MinZoom) {
		return
	}
	z.isZoomed = cur != MinZoom
	z.debugf("zoom %.4f -> %.4f, zoomed: %v", old, cur, z.isZoomed)

	ev := ZoomChangeEvent{IsZoomed: z.isZoomed}
	for _, h := range z.handlers.zoomChange {
		h.fn(ev)
	}
	if z.sink != nil {
		z.sink.EmitZoomChange(ev)
	}
}

func (z *Zoomer) setMouseGesture(g *mouseGesture) {
	z.mouse = g
	z.movingChanged()
}

func (z *Zoomer) setTouchGesture(g *touchGesture) {
	z.touch = g
	z.movingChanged()
}

// movingChanged recomputes IsMoving from both trackers. It never emits.
func (z *Zoomer) movingChanged() {
	moving := z.mouse != nil || z.touch != nil
	if moving == z.isMoving {
		return
	}
	z.isMoving = moving
	z.debugf("moving: %v", moving)
}
