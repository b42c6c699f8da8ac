package main

import "math"

// FlowerScene is the opening composition: a flower-of-life disc, an
// interlocking-triangle figure around it, a counter-rotating star pair and
// a torus-knot particle cloud wrapping the whole thing.
type FlowerScene struct {
	sceneBase

	// Unscaled layouts, fixed at mount time. Step only applies the frame's
	// rotation and scale on top of these.
	circleBase [][]Vec3
	triBase    [][]Vec3
	starBase   []Vec3

	circles  []*Drawable
	tris     []*Drawable
	dots     *Drawable
	starCW   *Drawable
	starCCW  *Drawable
	knot     *Drawable
	knotBase []float64 // parameter t per particle
}

const (
	flowerRadius    = 0.55
	flowerSegments  = 48
	merkabaUpCount  = 5
	merkabaDownQty  = 4
	starPoints      = 6
	starInner       = 0.6
	starOuter       = 1.2
	knotParticles   = 200
	knotTwist       = 2
	knotWind        = 3
	knotBaseRadius  = 2.5
	knotRadiusPulse = 0.3
)

func NewFlowerScene(desc SceneDescriptor) *FlowerScene {
	s := &FlowerScene{}
	s.desc = desc

	// Flower of life: 7 circles sharing one radius, cyan shades from the
	// center outwards.
	for i, center := range FlowerCenters(flowerRadius) {
		s.circleBase = append(s.circleBase,
			CirclePoints(center, flowerRadius, flowerSegments))
		d := NewDrawable(ModeLineStrip, 0.02)
		d.Buf.Resize(flowerSegments + 1)
		d.Buf.Fill(Shade(PaletteCyan, i/2))
		s.circles = append(s.circles, s.add(d))
	}

	// Interlocking triangles: 5 upward with growing radius in gold, 4
	// downward (rotated pi) in magenta.
	for i := 0; i < merkabaUpCount; i++ {
		radius := 0.5 + 0.28*float64(i)
		s.triBase = append(s.triBase, TrianglePoints(radius, 0))
		d := NewDrawable(ModeLineStrip, 0.025)
		d.Buf.Resize(4)
		d.Buf.Fill(Shade(PaletteGold, i))
		s.tris = append(s.tris, s.add(d))
	}
	for i := 0; i < merkabaDownQty; i++ {
		radius := 0.5 + 0.28*float64(i)
		s.triBase = append(s.triBase, TrianglePoints(radius, math.Pi))
		d := NewDrawable(ModeLineStrip, 0.025)
		d.Buf.Resize(4)
		d.Buf.Fill(Shade(PaletteMagenta, i))
		s.tris = append(s.tris, s.add(d))
	}

	// Two concentric center dots.
	s.dots = s.add(NewDrawable(ModePoints, 0.1))
	s.dots.Buf.Resize(2)
	s.dots.Buf.Col[0] = Shade(PaletteWhite, 0)
	s.dots.Buf.Col[1] = Shade(PaletteGold, 0)
	s.dots.Buf.Pos[0] = Vec3{}
	s.dots.Buf.Pos[1] = Vec3{0, 0, 0.05}

	// Counter-rotating star pair sharing the origin as pivot.
	s.starBase = StarPolyline(starPoints, starInner, starOuter)
	s.starCW = s.add(NewDrawable(ModeLineStrip, 0.02))
	s.starCW.Buf.Resize(len(s.starBase))
	s.starCW.Buf.Fill(Shade(PaletteCyan, 0))
	s.starCCW = s.add(NewDrawable(ModeLineStrip, 0.02))
	s.starCCW.Buf.Resize(len(s.starBase))
	s.starCCW.Buf.Fill(Shade(PaletteMagenta, 0))

	// Torus-knot particle cloud. The parameters per particle are fixed;
	// the radius oscillation makes every position a function of time.
	s.knot = s.add(NewDrawable(ModePoints, 0.06))
	s.knot.Buf.Resize(knotParticles)
	s.knotBase = make([]float64, knotParticles)
	for i := 0; i < knotParticles; i++ {
		s.knotBase[i] = float64(i) / knotParticles * 2 * math.Pi
		if i%2 == 0 {
			s.knot.Buf.Col[i] = Shade(PaletteCyan, 1)
		} else {
			s.knot.Buf.Col[i] = Shade(PaletteGold, 1)
		}
	}

	return s
}

func (s *FlowerScene) Step(now float64, opacity float64, scale float64) {
	s.setOpacity(opacity)

	// The flower disc and triangle figure share a slow common spin.
	spin := 0.1 * now
	for i, base := range s.circleBase {
		for j, p := range base {
			s.circles[i].Buf.Pos[j] = p.RotatedZ(spin).Times(scale)
		}
	}
	for i, base := range s.triBase {
		for j, p := range base {
			s.tris[i].Buf.Pos[j] = p.RotatedZ(-spin).Times(scale)
		}
	}

	// Counter-rotating stars: opposite spin directions, a phase offset so
	// the two outlines interleave, and a shared pulse on the uniform scale.
	pulse := (1 + 0.1*math.Sin(2*now)) * scale
	for j, p := range s.starBase {
		s.starCW.Buf.Pos[j] = p.RotatedZ(0.5 * now).Times(pulse)
		s.starCCW.Buf.Pos[j] = p.RotatedZ(-0.5*now + math.Pi/6).Times(pulse)
	}

	// Torus knot: the radius breathes along the parameter, so every
	// particle is recomputed every frame.
	for i, t := range s.knotBase {
		r := knotBaseRadius + knotRadiusPulse*math.Sin(5*t+now)
		s.knot.Buf.Pos[i] = TorusKnotPoint(t, knotTwist, knotWind, r).Times(scale)
	}
}
