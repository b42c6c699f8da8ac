package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// The HUD is a read-only view of the scheduler: frame counter, scene name,
// transition percentage and one clickable dot per scene. It never feeds
// anything back into the core except the dot clicks, which go through the
// scheduler's manual override.

// DotBound is a scene dot's screen hitbox, remembered during Draw so that
// Update can react when it is clicked.
type DotBound struct {
	SceneId int
	Bounds  image.Rectangle
}

const (
	dotSize    = 12.0
	dotGap     = 26.0
	dotHitPad  = 8
	hudMargin  = 16.0
	hudLineGap = 24.0
)

func (g *Gui) DrawHud(screen *ebiten.Image) {
	st := g.scheduler.State()

	// Top-left status block.
	line1 := fmt.Sprintf("FRAME %02d", g.scheduler.Frame())
	line2 := SceneTable[st.CurrentScene].Name
	g.DrawTextAt(screen, line1, hudMargin, hudMargin+hudLineGap, false,
		Shade(PaletteWhite, 1))
	g.DrawTextAt(screen, line2, hudMargin, hudMargin+2*hudLineGap, false,
		Shade(PaletteCyan, 0))
	if st.Transitioning {
		line3 := fmt.Sprintf("SHIFT %3.0f%%", st.Progress*100)
		g.DrawTextAt(screen, line3, hudMargin, hudMargin+3*hudLineGap, false,
			Shade(PaletteMagenta, 0))
	}
	if g.devModeEnabled && g.ShowDevHud {
		dev := fmt.Sprintf("tps %.0f  mounted %d", ebiten.ActualTPS(),
			g.orchestrator.MountedCount())
		g.DrawTextAt(screen, dev, hudMargin, g.screenH-hudMargin, false,
			Shade(PaletteWhite, 2))
	}

	// Scene dots, centered along the bottom edge.
	g.dotBounds = g.dotBounds[:0]
	total := float64(SceneCount-1) * dotGap
	startX := g.screenW/2 - total/2
	y := g.screenH - 40
	for id := 0; id < SceneCount; id++ {
		x := startX + float64(id)*dotGap

		c := Shade(PaletteWhite, 2)
		size := dotSize
		if id == st.CurrentScene {
			c = Shade(PaletteCyan, 0)
			size = dotSize * 1.4
		} else if st.Transitioning && id == st.PreviousScene {
			c = Shade(PaletteMagenta, 1)
		}
		drawDot(screen, x, y, size, c)

		g.dotBounds = append(g.dotBounds, DotBound{
			SceneId: id,
			Bounds: image.Rect(
				int(x-dotSize/2)-dotHitPad, int(y-dotSize/2)-dotHitPad,
				int(x+dotSize/2)+dotHitPad, int(y+dotSize/2)+dotHitPad),
		})
	}
}

var dotImage *ebiten.Image

// drawDot blits a small filled square glyph, tinted. A square reads as a
// dot at this size and saves a texture.
func drawDot(screen *ebiten.Image, cx float64, cy float64, size float64, c ColorF) {
	if dotImage == nil {
		dotImage = ebiten.NewImage(1, 1)
		dotImage.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(cx-size/2, cy-size/2)
	op.ColorScale.Scale(c.R, c.G, c.B, 1)
	screen.DrawImage(dotImage, op)
}

// DrawTextAt draws one line of HUD text with its left edge (or center, when
// centerX is set) at x and its baseline at y.
func (g *Gui) DrawTextAt(screen *ebiten.Image, message string, x float64,
	y float64, centerX bool, c ColorF) {
	if centerX {
		size := text.BoundString(g.hudFont, message)
		x -= float64(size.Dx()) / 2
	}
	clr := color.NRGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
	text.Draw(screen, message, g.hudFont, int(x), int(y), clr)
}
