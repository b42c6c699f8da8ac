package main

import "math"

// GeometryBuffer is a flat ordered sequence of world-space positions with a
// parallel color per position. Each generator instance owns its buffer
// exclusively. Static layouts fill it once, animated layouts overwrite it
// every tick, reusing the backing arrays.
type GeometryBuffer struct {
	Pos []Vec3
	Col []ColorF
}

// Resize makes the buffer hold exactly n entries, reusing backing arrays
// when they are large enough.
func (b *GeometryBuffer) Resize(n int) {
	if cap(b.Pos) < n {
		b.Pos = make([]Vec3, n)
		b.Col = make([]ColorF, n)
	}
	b.Pos = b.Pos[:n]
	b.Col = b.Col[:n]
}

// Fill sets every color in the buffer to c.
func (b *GeometryBuffer) Fill(c ColorF) {
	for i := range b.Col {
		b.Col[i] = c
	}
}

// CirclePoints approximates a circle of the given radius in the XY plane
// around center with a regular polygon. The polyline is closed: the first
// point is repeated at the end, so the result has segments+1 points.
func CirclePoints(center Vec3, radius float64, segments int) []Vec3 {
	pts := make([]Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		sin, cos := math.Sincos(angle)
		pts[i] = center.Plus(Vec3{radius * cos, radius * sin, 0})
	}
	return pts
}

// FlowerCenters gives the 7 circle centers of a flower-of-life layout: one
// at the origin and 6 around it at angle 2*pi*i/6, all at distance radius.
// All 7 circles share that same radius as well, which is what makes the
// neighbors pass through each other's centers.
func FlowerCenters(radius float64) []Vec3 {
	centers := make([]Vec3, 7)
	centers[0] = Vec3{}
	for i := 0; i < 6; i++ {
		angle := float64(i) / 6 * 2 * math.Pi
		sin, cos := math.Sincos(angle)
		centers[i+1] = Vec3{radius * cos, radius * sin, 0}
	}
	return centers
}

// StarPolyline builds an N-pointed star in the XY plane: 2N vertices
// alternating outer and inner radius at angle pi*i/N, followed by a repeat
// of the first vertex to close the outline. Total length is 2N+1.
func StarPolyline(points int, innerRadius float64, outerRadius float64) []Vec3 {
	pts := make([]Vec3, 2*points+1)
	for i := 0; i < 2*points; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := float64(i) * math.Pi / float64(points)
		sin, cos := math.Sincos(angle)
		pts[i] = Vec3{radius * cos, radius * sin, 0}
	}
	pts[2*points] = pts[0]
	return pts
}

// TrianglePoints is an equilateral triangle outline of the given circumradius
// in the XY plane, rotated by phase radians, closed (4 points).
func TrianglePoints(radius float64, phase float64) []Vec3 {
	pts := make([]Vec3, 4)
	for i := 0; i < 3; i++ {
		angle := float64(i)/3*2*math.Pi + math.Pi/2 + phase
		sin, cos := math.Sincos(angle)
		pts[i] = Vec3{radius * cos, radius * sin, 0}
	}
	pts[3] = pts[0]
	return pts
}

// TorusKnotPoint is the parametric torus-knot particle position for
// parameter t, twist/wind constants p and q and radius r.
func TorusKnotPoint(t float64, p float64, q float64, r float64) Vec3 {
	sinP, cosP := math.Sincos(p * t)
	sinQ, cosQ := math.Sincos(q * t)
	return Vec3{r * cosP * cosQ, r * cosP * sinQ, r * sinP}
}

// SpiralPoint is the i-th of n points on a flat logarithmic spiral: the
// angle sweeps 8*pi over the full point range while the radius grows
// linearly to 1.5. Point 0 is always at the origin.
func SpiralPoint(i int, n int) Vec3 {
	u := float64(i) / float64(n)
	angle := u * 8 * math.Pi
	radius := u * 1.5
	sin, cos := math.Sincos(angle)
	return Vec3{radius * cos, radius * sin, 0}
}
