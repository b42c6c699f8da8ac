package main

// SpiralScene is a logarithmic spiral of 100 points, alternating between
// two palette families by parity. The layout is static; the whole spiral
// spins slowly as a rigid body.
type SpiralScene struct {
	sceneBase

	base   []Vec3
	points *Drawable
}

const spiralCount = 100

func NewSpiralScene(desc SceneDescriptor) *SpiralScene {
	s := &SpiralScene{}
	s.desc = desc

	s.points = s.add(NewDrawable(ModePoints, 0.08))
	s.points.Buf.Resize(spiralCount)
	s.base = make([]Vec3, spiralCount)
	for i := 0; i < spiralCount; i++ {
		s.base[i] = SpiralPoint(i, spiralCount)
		if i%2 == 0 {
			s.points.Buf.Col[i] = Shade(PaletteGold, 0)
		} else {
			s.points.Buf.Col[i] = Shade(PaletteCyan, 0)
		}
	}
	return s
}

func (s *SpiralScene) Step(now float64, opacity float64, scale float64) {
	s.setOpacity(opacity)

	spin := 0.3 * now
	for i, p := range s.base {
		s.points.Buf.Pos[i] = p.RotatedZ(spin).Times(scale)
	}
}
