package zoomer

import "math"

// --- Constants ---

const (
	MinZoom         = 1.0  // unmagnified
	DefaultMaxZoom  = 10.0 // upper zoom bound when none is configured
	zoomInStep      = 1.25
	zoomOutStep     = 0.75
	doubleClickZoom = 3.0
)

// Vec2 is a 2D vector used for positions, offsets and deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Options configures a Zoomer at construction time.
type Options struct {
	// Disabled suppresses all gesture processing.
	Disabled bool
	// Max is the upper zoom bound. Values below 1 are raised to 1.
	Max float64
	// Debug writes state transitions to stderr.
	Debug bool
}

// DefaultOptions returns the options of a freshly placed widget: enabled,
// with a maximum zoom of 10.
func DefaultOptions() Options {
	return Options{Max: DefaultMaxZoom}
}

// Zoomer owns the zoom factor and translation of one viewport and the
// gesture state that drives them. It is not safe for concurrent use; call it
// from the goroutine that runs the game loop.
type Zoomer struct {
	viewport Viewport
	release  func() // resize subscription, nil once released

	disabled bool
	max      float64
	debug    bool

	zoom        float64
	translation Vec2
	isZoomed    bool
	isMoving    bool

	// Gesture trackers. nil means idle.
	mouse *mouseGesture
	touch *touchGesture

	resize   debouncer
	handlers handlerRegistry
	sink     EventSink
	display  display
}

// New creates a Zoomer for the given viewport. If the viewport also
// implements ResizeNotifier, the zoomer subscribes to its size changes until
// Close is called. A nil viewport behaves like a zero-size one.
func New(vp Viewport, opts Options) *Zoomer {
	z := &Zoomer{
		viewport: vp,
		disabled: opts.Disabled,
		max:      coerceMax(opts.Max),
		debug:    opts.Debug,
		zoom:     MinZoom,
	}
	z.resize = debouncer{delay: resizeDebounce, fn: z.onResize}
	if rn, ok := vp.(ResizeNotifier); ok {
		z.release = rn.OnResize(z.resize.schedule)
	}
	z.display.jump(z.target())
	return z
}

// Close releases the viewport resize subscription and drops any pending
// resize recomputation. Calling Close more than once is a no-op.
func (z *Zoomer) Close() {
	if z.release != nil {
		z.release()
		z.release = nil
	}
	z.resize.cancel()
}

// Zoom returns the current zoom factor.
func (z *Zoomer) Zoom() float64 { return z.zoom }

// Translation returns the current content offset in unscaled pixels.
func (z *Zoomer) Translation() Vec2 { return z.translation }

// IsZoomed reports whether the zoom factor differs from 1.
func (z *Zoomer) IsZoomed() bool { return z.isZoomed }

// IsMoving reports whether a mouse or touch gesture is in progress.
// Presentation uses it to suppress the transform transition.
func (z *Zoomer) IsMoving() bool { return z.isMoving }

// Disabled reports whether gesture processing is suppressed.
func (z *Zoomer) Disabled() bool { return z.disabled }

// SetDisabled enables or disables gesture processing. Disabling leaves the
// zoom, translation and any in-flight gesture exactly as they are; events
// are simply ignored until the zoomer is enabled again.
func (z *Zoomer) SetDisabled(disabled bool) {
	z.disabled = disabled
	z.debugf("disabled: %v", disabled)
}

// Max returns the effective upper zoom bound.
func (z *Zoomer) Max() float64 { return z.max }

// SetMax sets the upper zoom bound, raising values below 1 to 1, and clamps
// the current zoom into the new range.
func (z *Zoomer) SetMax(m float64) {
	z.max = coerceMax(m)
	z.setZoom(z.zoom)
}

// Viewport returns the viewport the zoomer was created with.
func (z *Zoomer) Viewport() Viewport { return z.viewport }

func coerceMax(m float64) float64 {
	if math.IsNaN(m) || m < MinZoom {
		return MinZoom
	}
	return m
}
