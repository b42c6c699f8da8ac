package main

import "math"

// FieldScene is a sparse grid of arrow glyphs on the ground plane. The
// field itself is a static layout: direction and length are closed-form
// functions of the cell coordinates, and which cells get an arrow at all is
// a seeded random dropout fixed at mount time.
type FieldScene struct {
	sceneBase

	arrowBase [][]Vec3 // unscaled glyph polylines
	arrows    []*Drawable
}

const (
	fieldCols     = 13
	fieldRows     = 13
	fieldSpacing  = 0.55
	fieldDropout  = 0.3 // probability a cell stays empty
	fieldSeed     = 77
	arrowLength   = 0.3
	arrowHeadSize = 0.09
)

func NewFieldScene(desc SceneDescriptor) *FieldScene {
	s := &FieldScene{}
	s.desc = desc

	rnd := NewRand(fieldSeed)
	for gy := 0; gy < fieldRows; gy++ {
		for gx := 0; gx < fieldCols; gx++ {
			if rnd.RFloat(0, 1) < fieldDropout {
				continue
			}
			x := (float64(gx) - float64(fieldCols-1)/2) * fieldSpacing
			y := (float64(gy) - float64(fieldRows-1)/2) * fieldSpacing

			// Direction angle from the cell coordinates, scaled by pi so
			// the field sweeps through full turns across the grid.
			angle := (math.Sin(0.5*x) + math.Cos(0.5*y)) * math.Pi
			length := arrowLength * (1 + 0.5*math.Sin(x*y*0.1))

			s.arrowBase = append(s.arrowBase, arrowGlyph(x, y, angle, length))
			shade := (gx + gy) % 2
			d := NewDrawable(ModeLineStrip, 0.02)
			d.Buf.Resize(5)
			d.Buf.Fill(Shade(PaletteCyan, shade*2))
			s.arrows = append(s.arrows, s.add(d))
		}
	}
	return s
}

// arrowGlyph builds one arrow polyline on the XZ ground plane, from tail to
// tip with the two head strokes folded into the strip by revisiting the tip.
func arrowGlyph(x float64, z float64, angle float64, length float64) []Vec3 {
	sin, cos := math.Sincos(angle)
	tail := Vec3{x, 0, z}
	tip := Vec3{x + cos*length, 0, z + sin*length}

	sinL, cosL := math.Sincos(angle + math.Pi*5/6)
	sinR, cosR := math.Sincos(angle - math.Pi*5/6)
	left := tip.Plus(Vec3{cosL * arrowHeadSize, 0, sinL * arrowHeadSize})
	right := tip.Plus(Vec3{cosR * arrowHeadSize, 0, sinR * arrowHeadSize})
	return []Vec3{tail, tip, left, tip, right}
}

func (s *FieldScene) Step(now float64, opacity float64, scale float64) {
	s.setOpacity(opacity)

	// The layout is static; only the whole-field scale and a slow yaw of
	// the group change with time.
	spin := 0.05 * now
	for i, base := range s.arrowBase {
		for j, p := range base {
			s.arrows[i].Buf.Pos[j] = p.RotatedY(spin).Times(scale)
		}
	}
}
