package zoomer

import "math"

const (
	dragDeadZone     = 50.0 // pixels on either axis before a pan is accepted
	pinchSensitivity = 0.01 // zoom change per pixel of contact distance change
)

// mouseGesture tracks one mouse press from down to up.
type mouseGesture struct {
	baseline  Vec2 // translation at press time
	start     Vec2
	validated bool // movement left the dead zone
}

// touchGesture tracks one touch sequence from the first contact until the
// touch ends. A single contact pans; two or more contacts pinch.
type touchGesture struct {
	baseline  Vec2 // translation at touch start
	start     Vec2 // first contact at touch start, the pan anchor
	validated bool

	// pinch is set once two contacts have been down together.
	pinch bool
	// prev holds the two contacts at the previous pinch tick.
	prev [2]Vec2
}

// exceedsDeadZone reports whether d leaves the drag dead zone on either axis.
func exceedsDeadZone(d Vec2) bool {
	return math.Abs(d.X) > dragDeadZone || math.Abs(d.Y) > dragDeadZone
}

// panFrom returns the translation reached by moving delta screen pixels
// from baseline at the given zoom.
func panFrom(baseline, delta Vec2, zoom float64) Vec2 {
	return baseline.Add(delta.Scale(1 / zoom))
}

func distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// pinchFactor converts the change in contact distance since the previous
// tick into a multiplicative zoom step.
func pinchFactor(prev [2]Vec2, c0, c1 Vec2) float64 {
	return 1 + pinchSensitivity*(distance(c0, c1)-distance(prev[0], prev[1]))
}

// pinchPan averages how far each contact moved since the previous tick.
func pinchPan(prev [2]Vec2, c0, c1 Vec2) Vec2 {
	return c0.Sub(prev[0]).Add(c1.Sub(prev[1])).Scale(0.5)
}
