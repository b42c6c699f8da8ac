package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.handlePanic()

	// Pure black background; the geometry supplies all the light.
	screen.Fill(color.Black)

	g.screenW = float64(screen.Bounds().Dx())
	g.screenH = float64(screen.Bounds().Dy())

	switch g.state {
	case Running:
		g.DrawRunning(screen)
	case ErrorScreen:
		g.DrawErrorScreen(screen)
	default:
		panic("unhandled default case")
	}
}

func (g *Gui) DrawRunning(screen *ebiten.Image) {
	g.renderer.Begin(&g.camera, g.screenW, g.screenH)
	g.orchestrator.Submit(g.renderer)
	g.renderer.Flush(screen)

	g.DrawHud(screen)
}

func (g *Gui) DrawErrorScreen(screen *ebiten.Image) {
	msg := "the visualizer crashed"
	if g.lastError != nil {
		msg = g.lastError.Error()
	}
	g.DrawTextAt(screen, msg, g.screenW/2, g.screenH/2-20, true,
		Shade(PaletteMagenta, 0))
	g.DrawTextAt(screen, "press R or click to reload", g.screenW/2,
		g.screenH/2+20, true, Shade(PaletteWhite, 1))
}

// Layout requests a pixel buffer matching the window at the device's pixel
// density, capped at 2x. Beyond 2x the extra pixels cost GPU time without a
// visible gain for this kind of glow-on-black imagery.
func (g *Gui) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale > 2 {
		scale = 2
	}
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}
