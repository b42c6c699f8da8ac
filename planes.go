package main

import "math"

// PlanesScene stacks 5 concentric translucent planes of decreasing size,
// each on its own shade of magenta, with a per-layer opacity oscillation on
// top of the scene's crossfade opacity.
type PlanesScene struct {
	sceneBase

	planes []*Drawable
	sizes  []float64
}

const (
	planeCount     = 5
	planeMaxSize   = 2.4
	planeShrink    = 0.4 // size lost per layer
	planeGap       = 0.35
	planeBaseAlpha = 0.45
	planeAlphaOsc  = 0.25
	planeOscFreq   = 1.3
	planeOscPhase  = 0.8
)

func NewPlanesScene(desc SceneDescriptor) *PlanesScene {
	s := &PlanesScene{}
	s.desc = desc

	for i := 0; i < planeCount; i++ {
		size := planeMaxSize - planeShrink*float64(i)
		s.sizes = append(s.sizes, size)
		d := NewDrawable(ModeTriangles, 0)
		d.Buf.Resize(6) // two triangles per quad
		d.Buf.Fill(Shade(PaletteMagenta, i))
		s.planes = append(s.planes, s.add(d))
	}
	return s
}

func (s *PlanesScene) Step(now float64, opacity float64, scale float64) {
	for i, d := range s.planes {
		// Layer opacity oscillates independently per layer; the scene
		// opacity multiplies on top so the crossfade still wins.
		osc := planeBaseAlpha +
			planeAlphaOsc*math.Sin(now*planeOscFreq+float64(i)*planeOscPhase)
		d.SetOpacity(opacity * osc)

		half := s.sizes[i] / 2 * scale
		y := (float64(i) - float64(planeCount-1)/2) * planeGap * scale
		a := Vec3{-half, y, -half}
		b := Vec3{half, y, -half}
		c := Vec3{half, y, half}
		e := Vec3{-half, y, half}
		d.Buf.Pos[0], d.Buf.Pos[1], d.Buf.Pos[2] = a, b, c
		d.Buf.Pos[3], d.Buf.Pos[4], d.Buf.Pos[5] = a, c, e
	}
}
