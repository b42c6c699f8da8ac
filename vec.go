package main

import "math"

// Vec3 is a position or direction in the visualizer's world space.
// World space is right-handed: X right, Y up, Z towards the viewer.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func (v Vec3) Plus(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Minus(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3) Times(factor float64) Vec3 {
	return Vec3{v.X * factor, v.Y * factor, v.Z * factor}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) SquaredLen() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.SquaredLen())
}

func (v Vec3) To(other Vec3) Vec3 {
	return other.Minus(v)
}

// RotatedX rotates v around the X axis by angle radians.
func (v Vec3) RotatedX(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{v.X, v.Y*cos - v.Z*sin, v.Y*sin + v.Z*cos}
}

// RotatedY rotates v around the Y axis by angle radians.
func (v Vec3) RotatedY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{v.X*cos + v.Z*sin, v.Y, -v.X*sin + v.Z*cos}
}

// RotatedZ rotates v around the Z axis by angle radians.
func (v Vec3) RotatedZ(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos, v.Z}
}

// Pt is a position in screen space, in pixels. The top-left pixel of the
// screen is (0, 0).
type Pt struct {
	X float64
	Y float64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}
