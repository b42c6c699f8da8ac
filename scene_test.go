package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScene_BuildsEveryComposition(t *testing.T) {
	for _, desc := range SceneTable {
		scene := NewScene(desc)
		require.NotNil(t, scene)
		assert.Equal(t, desc, scene.Descriptor())
		assert.NotEmpty(t, scene.Drawables())

		// A freshly built scene must survive its first Step.
		scene.Step(0, 1, 1)
		for _, d := range scene.Drawables() {
			assert.NotEmpty(t, d.Buf.Pos)
			assert.Equal(t, len(d.Buf.Pos), len(d.Buf.Col))
		}
	}
}

func TestFlowerScene_KnotParticleCount(t *testing.T) {
	s := NewFlowerScene(SceneTable[0])
	s.Step(0, 1, 1)
	assert.Equal(t, 200, len(s.knot.Buf.Pos))

	// At time 0 the first particle sits at the base radius on the X axis.
	assert.Equal(t, Vec3{2.5, 0, 0}, s.knot.Buf.Pos[0])
}

func TestFlowerScene_KnotBreathesWithTime(t *testing.T) {
	s := NewFlowerScene(SceneTable[0])
	s.Step(0, 1, 1)
	p0 := append([]Vec3(nil), s.knot.Buf.Pos...)
	s.Step(1.3, 1, 1)
	assert.NotEqual(t, p0, s.knot.Buf.Pos)
}

func TestSpiralScene_PointCountAndColors(t *testing.T) {
	s := NewSpiralScene(SceneTable[4])
	s.Step(0, 1, 1)
	require.Equal(t, 100, len(s.points.Buf.Pos))
	assert.Equal(t, Vec3{}, s.points.Buf.Pos[0])

	// Colors alternate between the two families by parity.
	for i := 0; i+1 < 100; i++ {
		assert.NotEqual(t, s.points.Buf.Col[i], s.points.Buf.Col[i+1])
	}
}

func TestFieldScene_DropoutIsSeeded(t *testing.T) {
	a := NewFieldScene(SceneTable[1])
	b := NewFieldScene(SceneTable[1])
	require.Equal(t, len(a.arrows), len(b.arrows))

	// Same seed, same dropout, same layout.
	a.Step(0.7, 1, 1)
	b.Step(0.7, 1, 1)
	for i := range a.arrows {
		assert.Equal(t, a.arrows[i].Buf.Pos, b.arrows[i].Buf.Pos)
	}

	// The dropout leaves holes but not an empty field.
	assert.Greater(t, len(a.arrows), fieldCols*fieldRows/2)
	assert.Less(t, len(a.arrows), fieldCols*fieldRows)
}

func TestVoxelScene_CheckerboardSelection(t *testing.T) {
	s := NewVoxelScene(SceneTable[3])
	for _, cell := range s.cells {
		assert.Equal(t, 0, (cell.x+cell.z)%2)
	}
	// Half the cells of an 8x8 board.
	assert.Equal(t, voxelCols*voxelRows/2, len(s.cells))

	// Heights are fixed at mount; bobbing moves the boxes, not their size.
	s.Step(0, 1, 1)
	h0 := s.boxes[0].Buf.Pos[0].Y - s.boxes[0].Buf.Pos[6].Y // top - bottom
	s.Step(2.1, 1, 1)
	h1 := s.boxes[0].Buf.Pos[0].Y - s.boxes[0].Buf.Pos[6].Y
	assert.InDelta(t, h0, h1, 1e-9)
}

func TestPlanesScene_LayerOpacityOscillates(t *testing.T) {
	s := NewPlanesScene(SceneTable[2])
	s.Step(0, 1, 1)
	o0 := s.planes[0].Opacity()
	s.Step(1, 1, 1)
	o1 := s.planes[0].Opacity()
	assert.NotEqual(t, o0, o1)

	// The scene opacity multiplies on top: at 0 everything vanishes.
	s.Step(2, 0, 1)
	for _, d := range s.planes {
		assert.Equal(t, 0.0, d.Opacity())
	}
}

func TestScene_OpacityPropagatesToAllDrawables(t *testing.T) {
	scene := NewScene(SceneTable[0])
	scene.Step(0, 0.37, 0.37)
	for _, d := range scene.Drawables() {
		assert.Equal(t, 0.37, d.Opacity())
	}
}

func TestScene_ScaleShrinksGeometry(t *testing.T) {
	a := NewScene(SceneTable[4]).(*SpiralScene)
	a.Step(0, 1, 1)
	full := a.points.Buf.Pos[99].Len()
	a.Step(0, 0.5, 0.5)
	assert.InDelta(t, full/2, a.points.Buf.Pos[99].Len(), 1e-9)
}
