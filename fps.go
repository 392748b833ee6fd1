package zoomer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS and TPS together with the zoom state.
// The text is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSOverlay() *fpsOverlay {
	// 140x48 is enough for four short lines.
	return &fpsOverlay{img: ebiten.NewImage(140, 48), lastUpdate: 0.5}
}

func (o *fpsOverlay) update(dt float64, z *Zoomer) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})

	t := z.Translation()
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nzoom: %.2f\nt: %.0f,%.0f",
		ebiten.ActualFPS(), ebiten.ActualTPS(), z.Zoom(), t.X, t.Y))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
