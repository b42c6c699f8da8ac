package main

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawMode says how a drawable's geometry buffer is interpreted.
type DrawMode int

const (
	// ModePoints draws every buffer entry as a small camera-facing square.
	ModePoints DrawMode = iota
	// ModeLineStrip draws the buffer as a connected polyline.
	ModeLineStrip
	// ModeTriangles draws consecutive triples of entries as filled triangles.
	ModeTriangles
)

// Drawable is one renderable primitive batch: a geometry buffer, a draw
// mode and an opacity. The renderer blends with premultiplied alpha, so
// every color has to be multiplied by the opacity before it reaches the
// GPU. That multiplication is cached in premul and only redone when the
// drawable is invalidated. This is the transparency cache the scheduler's
// transition edges must explicitly invalidate: a stale cache draws the
// scene at the opacity of a previous frame.
type Drawable struct {
	Mode DrawMode
	Buf  GeometryBuffer
	// Thickness is the world-space size of a point or width of a line.
	// Ignored for ModeTriangles.
	Thickness float64

	opacity float64
	dirty   bool
	premul  [][4]float32
}

func NewDrawable(mode DrawMode, thickness float64) *Drawable {
	return &Drawable{Mode: mode, Thickness: thickness, opacity: 1, dirty: true}
}

func (d *Drawable) Opacity() float64 {
	return d.opacity
}

// SetOpacity updates the drawable's opacity, invalidating the premultiplied
// color cache only on an actual change.
func (d *Drawable) SetOpacity(o float64) {
	if o != d.opacity {
		d.opacity = o
		d.dirty = true
	}
}

// Invalidate forces the premultiplied color cache to be rebuilt on the next
// draw, regardless of whether the opacity value changed.
func (d *Drawable) Invalidate() {
	d.dirty = true
}

// colors returns the premultiplied per-vertex colors, rebuilding the cache
// if the drawable was invalidated or the buffer was resized.
func (d *Drawable) colors() [][4]float32 {
	if !d.dirty && len(d.premul) == len(d.Buf.Col) {
		return d.premul
	}
	if cap(d.premul) < len(d.Buf.Col) {
		d.premul = make([][4]float32, len(d.Buf.Col))
	}
	d.premul = d.premul[:len(d.Buf.Col)]
	a := float32(d.opacity)
	for i, c := range d.Buf.Col {
		d.premul[i] = [4]float32{c.R * a, c.G * a, c.B * a, a}
	}
	d.dirty = false
	return d.premul
}

// Renderer projects drawables through a camera and rasterizes them with
// ebiten. Everything becomes depth-sorted triangles against a single white
// source image, drawn back to front so alpha blending composes correctly
// across scenes during a crossfade.
type Renderer struct {
	white   *ebiten.Image
	tris    []renderTri
	verts   []ebiten.Vertex
	inds    []uint16
	cam     *Camera
	screenW float64
	screenH float64
}

// renderTri is one screen-space triangle queued for the painter's sort.
type renderTri struct {
	pts   [3]Pt
	cols  [3][4]float32
	depth float64
}

func NewRenderer() *Renderer {
	// A 3x3 white image sampled at its center texel, so that bilinear
	// filtering at triangle edges never bleeds in border texels.
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	r := &Renderer{}
	r.white = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	return r
}

// Begin starts a frame. All Submit calls until the next Flush project
// through cam onto a screen of the given size.
func (r *Renderer) Begin(cam *Camera, screenW float64, screenH float64) {
	r.cam = cam
	r.screenW = screenW
	r.screenH = screenH
	r.tris = r.tris[:0]
}

// Submit queues a drawable for this frame.
func (r *Renderer) Submit(d *Drawable) {
	cols := d.colors()
	switch d.Mode {
	case ModePoints:
		for i, p := range d.Buf.Pos {
			r.submitPoint(p, cols[i], d.Thickness)
		}
	case ModeLineStrip:
		for i := 0; i+1 < len(d.Buf.Pos); i++ {
			r.submitSegment(d.Buf.Pos[i], d.Buf.Pos[i+1],
				cols[i], cols[i+1], d.Thickness)
		}
	case ModeTriangles:
		for i := 0; i+2 < len(d.Buf.Pos); i += 3 {
			r.submitTriangle(
				d.Buf.Pos[i], d.Buf.Pos[i+1], d.Buf.Pos[i+2],
				cols[i], cols[i+1], cols[i+2])
		}
	}
}

func (r *Renderer) submitPoint(p Vec3, col [4]float32, size float64) {
	pt, depth, ok := r.cam.Project(p, r.screenW, r.screenH)
	if !ok {
		return
	}
	half := r.cam.PerspectiveScale(size, depth, r.screenH) / 2
	if half < 0.75 {
		half = 0.75
	}
	a := Pt{pt.X - half, pt.Y - half}
	b := Pt{pt.X + half, pt.Y - half}
	c := Pt{pt.X + half, pt.Y + half}
	d := Pt{pt.X - half, pt.Y + half}
	r.tris = append(r.tris,
		renderTri{[3]Pt{a, b, c}, [3][4]float32{col, col, col}, depth},
		renderTri{[3]Pt{a, c, d}, [3][4]float32{col, col, col}, depth})
}

func (r *Renderer) submitSegment(p1, p2 Vec3, c1, c2 [4]float32, width float64) {
	s1, d1, ok1 := r.cam.Project(p1, r.screenW, r.screenH)
	s2, d2, ok2 := r.cam.Project(p2, r.screenW, r.screenH)
	if !ok1 || !ok2 {
		return
	}
	dir := s2.Minus(s1)
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 {
		return
	}
	// Screen-space normal, scaled to half the perspective-correct width at
	// each endpoint's depth.
	nx, ny := -dir.Y/length, dir.X/length
	h1 := math.Max(r.cam.PerspectiveScale(width, d1, r.screenH)/2, 0.5)
	h2 := math.Max(r.cam.PerspectiveScale(width, d2, r.screenH)/2, 0.5)
	a := Pt{s1.X + nx*h1, s1.Y + ny*h1}
	b := Pt{s2.X + nx*h2, s2.Y + ny*h2}
	c := Pt{s2.X - nx*h2, s2.Y - ny*h2}
	d := Pt{s1.X - nx*h1, s1.Y - ny*h1}
	depth := (d1 + d2) / 2
	r.tris = append(r.tris,
		renderTri{[3]Pt{a, b, c}, [3][4]float32{c1, c2, c2}, depth},
		renderTri{[3]Pt{a, c, d}, [3][4]float32{c1, c2, c1}, depth})
}

func (r *Renderer) submitTriangle(p1, p2, p3 Vec3, c1, c2, c3 [4]float32) {
	s1, d1, ok1 := r.cam.Project(p1, r.screenW, r.screenH)
	s2, d2, ok2 := r.cam.Project(p2, r.screenW, r.screenH)
	s3, d3, ok3 := r.cam.Project(p3, r.screenW, r.screenH)
	if !ok1 || !ok2 || !ok3 {
		return
	}
	depth := (d1 + d2 + d3) / 3
	r.tris = append(r.tris,
		renderTri{[3]Pt{s1, s2, s3}, [3][4]float32{c1, c2, c3}, depth})
}

// Flush sorts all queued triangles far-to-near and draws them in one batch.
func (r *Renderer) Flush(screen *ebiten.Image) {
	sort.SliceStable(r.tris, func(i, j int) bool {
		return r.tris[i].depth > r.tris[j].depth
	})

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	for _, tri := range r.tris {
		base := uint16(len(r.verts))
		for k := 0; k < 3; k++ {
			r.verts = append(r.verts, ebiten.Vertex{
				DstX:   float32(tri.pts[k].X),
				DstY:   float32(tri.pts[k].Y),
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: tri.cols[k][0],
				ColorG: tri.cols[k][1],
				ColorB: tri.cols[k][2],
				ColorA: tri.cols[k][3],
			})
		}
		r.inds = append(r.inds, base, base+1, base+2)
	}
	if len(r.inds) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(r.verts, r.inds, r.white, op)
}
