package main

import "math"

// VoxelScene is a checkerboard of boxes with randomized heights, bobbing
// vertically out of phase with each other. The checkerboard selection and
// the heights are fixed at mount time from a seed; only the bob moves.
type VoxelScene struct {
	sceneBase

	heights Mat
	boxes   []*Drawable
	cells   []struct {
		x int
		z int
	}
}

const (
	voxelCols    = 8
	voxelRows    = 8
	voxelSpacing = 0.55
	voxelSize    = 0.4
	voxelSeed    = 31
	voxelBobAmp  = 0.12
)

func NewVoxelScene(desc SceneDescriptor) *VoxelScene {
	s := &VoxelScene{}
	s.desc = desc
	s.heights = NewMat(voxelCols, voxelRows)

	rnd := NewRand(voxelSeed)
	for z := 0; z < voxelRows; z++ {
		for x := 0; x < voxelCols; x++ {
			if (x+z)%2 != 0 {
				continue
			}
			s.heights.Set(x, z, rnd.RFloat(0.3, 1.4))
			s.cells = append(s.cells, struct {
				x int
				z int
			}{x, z})

			d := NewDrawable(ModeTriangles, 0)
			d.Buf.Resize(36) // 12 triangles per box
			shadeBoxColors(&d.Buf, Shade(PaletteGold, (x+z/2)%3))
			s.boxes = append(s.boxes, s.add(d))
		}
	}
	return s
}

// shadeBoxColors assigns the base color to all 36 box vertices, darkening
// the side and bottom faces so the box reads as lit from above.
func shadeBoxColors(buf *GeometryBuffer, c ColorF) {
	for i := range buf.Col {
		factor := float32(1.0)
		switch {
		case i < 6: // top
			factor = 1.0
		case i < 12: // bottom
			factor = 0.35
		default: // sides
			factor = 0.65
		}
		buf.Col[i] = ColorF{c.R * factor, c.G * factor, c.B * factor}
	}
}

func (s *VoxelScene) Step(now float64, opacity float64, scale float64) {
	s.setOpacity(opacity)

	for i, cell := range s.cells {
		cx := (float64(cell.x) - float64(voxelCols-1)/2) * voxelSpacing
		cz := (float64(cell.z) - float64(voxelRows-1)/2) * voxelSpacing
		height := s.heights.Get(cell.x, cell.z)
		bob := voxelBobAmp * math.Sin(now*2+float64(i))
		writeBox(&s.boxes[i].Buf,
			Vec3{cx * scale, bob * scale, cz * scale},
			voxelSize*scale, height*scale)
	}
}

// writeBox fills buf with the 12 triangles of an axis-aligned box whose
// bottom face is centered at base, with the given footprint and height.
func writeBox(buf *GeometryBuffer, base Vec3, size float64, height float64) {
	h := size / 2
	// The 8 corners: l=low, u=up per axis.
	lll := base.Plus(Vec3{-h, 0, -h})
	hll := base.Plus(Vec3{h, 0, -h})
	hlh := base.Plus(Vec3{h, 0, h})
	llh := base.Plus(Vec3{-h, 0, h})
	lul := base.Plus(Vec3{-h, height, -h})
	hul := base.Plus(Vec3{h, height, -h})
	huh := base.Plus(Vec3{h, height, h})
	luh := base.Plus(Vec3{-h, height, h})

	quads := [6][4]Vec3{
		{lul, hul, huh, luh}, // top
		{lll, llh, hlh, hll}, // bottom
		{lll, hll, hul, lul}, // back
		{llh, luh, huh, hlh}, // front
		{lll, lul, luh, llh}, // left
		{hll, hlh, huh, hul}, // right
	}
	i := 0
	for _, q := range quads {
		buf.Pos[i], buf.Pos[i+1], buf.Pos[i+2] = q[0], q[1], q[2]
		buf.Pos[i+3], buf.Pos[i+4], buf.Pos[i+5] = q[0], q[2], q[3]
		i += 6
	}
}
