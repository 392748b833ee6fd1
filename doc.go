// Package zoomer is an embeddable zoom and pan widget for [Ebitengine].
//
// A [Zoomer] turns raw mouse, wheel and touch input into a zoom factor and a
// bounded translation for content shown inside a fixed viewport. Wheel and
// double click zoom, a mouse drag or a single finger pans, and two fingers
// pinch to zoom while panning.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and hosts a
// single zoomer over an image:
//
//	box := zoomer.NewBox(zoomer.Rect{Width: 640, Height: 480})
//	z := zoomer.New(box, zoomer.DefaultOptions())
//	defer z.Close()
//	zoomer.Run(z, zoomer.NewInput(z, box), img, zoomer.RunConfig{
//		Title: "Zoom", Width: 640, Height: 480,
//	})
//
// For full control, drive the pieces from your own [ebiten.Game]:
//
//	func (g *Game) Update() error {
//		g.input.Update()           // poll Ebitengine, feed the zoomer
//		g.zoomer.Update(1.0 / 60)  // debounce + transition
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.zoomer.Draw(screen, g.content)
//	}
//
// Hosts that are not Ebitengine can skip [Input] entirely and call
// [Zoomer.HandleEvent] with their own events.
//
// # Bounds
//
// The zoom factor always stays in [MinZoom, max]. The translation is clamped
// per axis to (size - size/zoom) / 2, so at zoom 1 it is always the origin.
// Viewport size changes are coalesced with a 200 ms debounce and then the
// current translation is re-clamped once.
//
// # Zoom state
//
// Register a callback with [Zoomer.OnZoomChange] to learn when the content
// becomes zoomed or returns to its unmagnified state. Zoom changes that stay
// on one side of 1 (say 2 to 3) do not fire.
//
// [Ebitengine]: https://ebitengine.org
package zoomer
