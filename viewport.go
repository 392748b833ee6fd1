package zoomer

import "time"

// resizeDebounce is the quiet period before a size change re-clamps the
// translation.
const resizeDebounce = 200 * time.Millisecond

// Viewport is the host-side box the zoomer lives in.
type Viewport interface {
	// Bounds returns the rendered rectangle in screen coordinates.
	Bounds() Rect
	// Contains reports whether the viewport itself is the topmost target at
	// (x, y). Overlays or other widgets covering the point return false.
	Contains(x, y float64) bool
}

// ResizeNotifier is implemented by viewports that report size changes.
// OnResize registers fn and returns a function that releases the
// registration.
type ResizeNotifier interface {
	OnResize(fn func()) (release func())
}

type resizeListener struct {
	id uint32
	fn func()
}

// Box is a rectangular Viewport that notifies listeners when its size
// changes. Hosts update it from their layout pass.
type Box struct {
	rect      Rect
	listeners []resizeListener
	nextID    uint32
}

// NewBox creates a Box covering r.
func NewBox(r Rect) *Box {
	return &Box{rect: r}
}

// Bounds returns the current rectangle.
func (b *Box) Bounds() Rect { return b.rect }

// Contains reports whether (x, y) lies inside the box.
func (b *Box) Contains(x, y float64) bool { return b.rect.Contains(x, y) }

// SetRect moves or resizes the box. Listeners fire only when the width or
// height changes.
func (b *Box) SetRect(r Rect) {
	resized := r.Width != b.rect.Width || r.Height != b.rect.Height
	b.rect = r
	if !resized {
		return
	}
	for _, l := range b.listeners {
		l.fn()
	}
}

// OnResize registers fn to run after every size change. The returned
// release function is safe to call more than once.
func (b *Box) OnResize(fn func()) func() {
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, resizeListener{id: id, fn: fn})
	return func() {
		for i := range b.listeners {
			if b.listeners[i].id == id {
				copy(b.listeners[i:], b.listeners[i+1:])
				b.listeners[len(b.listeners)-1] = resizeListener{}
				b.listeners = b.listeners[:len(b.listeners)-1]
				return
			}
		}
	}
}

// debouncer coalesces bursts of calls into one call of fn after delay of
// quiet time. It holds at most one pending deadline; scheduling again
// replaces it. Time only moves when advance is called.
type debouncer struct {
	delay     time.Duration
	remaining time.Duration
	pending   bool
	fn        func()
}

func (d *debouncer) schedule() {
	d.pending = true
	d.remaining = d.delay
}

func (d *debouncer) cancel() {
	d.pending = false
	d.remaining = 0
}

func (d *debouncer) advance(dt time.Duration) {
	if !d.pending {
		return
	}
	d.remaining -= dt
	if d.remaining > 0 {
		return
	}
	d.pending = false
	if d.fn != nil {
		d.fn()
	}
}
