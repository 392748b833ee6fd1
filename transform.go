package zoomer

import "math"

// ZoomIn multiplies the zoom factor by 1.25, clamped to the maximum.
func (z *Zoomer) ZoomIn() {
	z.setZoom(z.zoom * zoomInStep)
}

// ZoomOut multiplies the zoom factor by 0.75, clamped to 1.
func (z *Zoomer) ZoomOut() {
	z.setZoom(z.zoom * zoomOutStep)
}

// Reset returns to zoom 1, which also collapses the translation to the origin.
func (z *Zoomer) Reset() {
	z.setZoom(MinZoom)
}

// setZoom clamps v to [MinZoom, max], stores it, then re-applies the current
// translation because its valid range depends on the zoom.
func (z *Zoomer) setZoom(v float64) {
	old := z.zoom
	z.zoom = clamp(v, MinZoom, z.max)
	z.setTranslation(z.translation.X, z.translation.Y)
	z.zoomChanged(old, z.zoom)
}

// setTranslation clamps (x, y) to the zoom-dependent limits of the current
// viewport size and stores the result.
func (z *Zoomer) setTranslation(x, y float64) {
	lx, ly := z.limits()
	if math.IsNaN(x) {
		x = 0
	}
	if math.IsNaN(y) {
		y = 0
	}
	z.translation = Vec2{
		X: clamp(x, -lx, lx),
		Y: clamp(y, -ly, ly),
	}
}

// limits returns the per-axis translation bound (size - size/zoom) / 2.
// A missing or zero-size viewport yields 0 on both axes.
func (z *Zoomer) limits() (lx, ly float64) {
	r := z.bounds()
	w, h := r.Width, r.Height
	// NaN fails both comparisons and collapses to 0 along with negatives.
	if !(w > 0) {
		w = 0
	}
	if !(h > 0) {
		h = 0
	}
	return (w - w/z.zoom) / 2, (h - h/z.zoom) / 2
}

// bounds returns the viewport rectangle, or the zero Rect without a viewport.
func (z *Zoomer) bounds() Rect {
	if z.viewport == nil {
		return Rect{}
	}
	return z.viewport.Bounds()
}

// onResize runs once the resize debounce has been quiet long enough.
func (z *Zoomer) onResize() {
	before := z.translation
	z.setTranslation(z.translation.X, z.translation.Y)
	if z.translation != before {
		z.debugf("resize: translation (%.2f,%.2f) -> (%.2f,%.2f)",
			before.X, before.Y, z.translation.X, z.translation.Y)
	}
}

// clamp restricts v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// --- Affine helpers ---

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
