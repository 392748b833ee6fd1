package zoomer

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transitionDuration is how long the displayed transform takes to settle on
// a new target when no gesture is in progress, in seconds.
const transitionDuration = 0.3

// Transform is a zoom factor plus translation, as presented on screen.
type Transform struct {
	Zoom float64
	X, Y float64
}

// transformAnim holds the active tweens easing the displayed transform
// towards its target.
type transformAnim struct {
	tweens [3]*gween.Tween
	done   [3]bool
}

func newTransformAnim(from, to Transform) *transformAnim {
	return &transformAnim{tweens: [3]*gween.Tween{
		gween.New(float32(from.Zoom), float32(to.Zoom), transitionDuration, ease.OutCubic),
		gween.New(float32(from.X), float32(to.X), transitionDuration, ease.OutCubic),
		gween.New(float32(from.Y), float32(to.Y), transitionDuration, ease.OutCubic),
	}}
}

// update advances all tweens by dt seconds and writes their values into t.
func (a *transformAnim) update(dt float32, t *Transform) (finished bool) {
	fields := [3]*float64{&t.Zoom, &t.X, &t.Y}
	finished = true
	for i, tw := range a.tweens {
		if a.done[i] {
			continue
		}
		val, done := tw.Update(dt)
		*fields[i] = float64(val)
		a.done[i] = done
		if !done {
			finished = false
		}
	}
	return finished
}

// display is the transform the presentation layer shows, which trails the
// authoritative state by a short transition unless a gesture is active.
type display struct {
	current Transform
	target  Transform
	anim    *transformAnim
}

func (d *display) jump(t Transform) {
	d.current, d.target, d.anim = t, t, nil
}

func (d *display) update(target Transform, moving bool, dt float32) {
	if moving {
		d.jump(target)
		return
	}
	if target != d.target {
		d.target = target
		d.anim = newTransformAnim(d.current, target)
	}
	if d.anim == nil {
		return
	}
	if d.anim.update(dt, &d.current) {
		d.jump(target)
	}
}

// target returns the authoritative transform.
func (z *Zoomer) target() Transform {
	return Transform{Zoom: z.zoom, X: z.translation.X, Y: z.translation.Y}
}

// Update advances the resize debounce and the display transition by dt
// seconds. Call it once per frame.
func (z *Zoomer) Update(dt float32) {
	z.resize.advance(time.Duration(float64(dt) * float64(time.Second)))
	z.display.update(z.target(), z.isMoving, dt)
}

// Displayed returns the transform currently shown on screen.
func (z *Zoomer) Displayed() Transform {
	return z.display.current
}

// viewMatrix maps content coordinates (0,0 at the viewport's top-left, in
// unscaled pixels) to screen coordinates for t, scaling around the viewport
// center:
//
//	screen = origin + center + zoom * (p + translation - center)
func viewMatrix(t Transform, r Rect) [6]float64 {
	cx := r.Width / 2
	cy := r.Height / 2
	return [6]float64{
		t.Zoom, 0, 0, t.Zoom,
		r.X + cx + t.Zoom*(t.X-cx),
		r.Y + cy + t.Zoom*(t.Y-cy),
	}
}

// GeoM returns the displayed transform as an ebiten.GeoM mapping content
// coordinates to screen coordinates.
func (z *Zoomer) GeoM() ebiten.GeoM {
	m := viewMatrix(z.display.current, z.bounds())
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// ContentToScreen converts content coordinates to screen coordinates using
// the displayed transform.
func (z *Zoomer) ContentToScreen(x, y float64) (sx, sy float64) {
	return transformPoint(viewMatrix(z.display.current, z.bounds()), x, y)
}

// ScreenToContent converts screen coordinates to content coordinates using
// the displayed transform.
func (z *Zoomer) ScreenToContent(sx, sy float64) (x, y float64) {
	return transformPoint(invertAffine(viewMatrix(z.display.current, z.bounds())), sx, sy)
}

// Draw renders content stretched over the viewport with the displayed
// transform applied. Anything outside the viewport is clipped.
func (z *Zoomer) Draw(dst, content *ebiten.Image) {
	r := z.bounds()
	cb := content.Bounds()
	if r.Width <= 0 || r.Height <= 0 || cb.Dx() == 0 || cb.Dy() == 0 {
		return
	}
	clipped := dst.SubImage(image.Rect(
		int(r.X), int(r.Y),
		int(r.X+r.Width), int(r.Y+r.Height),
	)).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width/float64(cb.Dx()), r.Height/float64(cb.Dy()))
	op.GeoM.Concat(z.GeoM())
	op.Filter = ebiten.FilterLinear
	clipped.DrawImage(content, &op)
}
