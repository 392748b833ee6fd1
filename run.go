package zoomer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background fills the screen behind the viewport.
	Background color.Color
	// ScreenshotDir receives captures queued with Input.Screenshot.
	// Defaults to "screenshots".
	ScreenshotDir string
	// Shortcuts enables the keyboard: +/= zoom in, - zoom out, 0 reset,
	// F12 screenshot.
	Shortcuts bool
}

// game hosts one zoomer that fills the window.
type game struct {
	z       *Zoomer
	in      *Input
	box     *Box // resized from Layout when the zoomer's viewport is a Box
	content *ebiten.Image
	bg      color.Color
	fps     *fpsOverlay
	shotDir string
	keys    bool
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.in.Update()
	if g.keys {
		g.handleKeys()
	}
	g.z.Update(dt)
	if g.fps != nil {
		g.fps.update(float64(dt), g.z)
	}
	return nil
}

// handleKeys maps keyboard shortcuts onto zoomer commands. Commands apply
// even while gestures are disabled.
func (g *game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.z.ZoomIn()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.z.ZoomOut()
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit0), inpututil.IsKeyJustPressed(ebiten.KeyNumpad0):
		g.z.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.in.Screenshot("manual")
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.bg != nil {
		screen.Fill(g.bg)
	}
	g.z.Draw(screen, g.content)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	writeScreenshots(screen, g.shotDir, g.in.takeScreenshots())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.box != nil {
		g.box.SetRect(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window showing content through z and blocks until
// the window closes. If z's viewport is a *Box it is kept in sync with the
// window size.
func Run(z *Zoomer, in *Input, content *ebiten.Image, cfg RunConfig) error {
	if z == nil || in == nil {
		return fmt.Errorf("run: nil zoomer or input")
	}
	if content == nil {
		return fmt.Errorf("run: nil content image")
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	g := &game{z: z, in: in, content: content, bg: cfg.Background, shotDir: cfg.ScreenshotDir, keys: cfg.Shortcuts}
	if box, ok := z.Viewport().(*Box); ok {
		g.box = box
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
