package main

import "math"

// Camera is a perspective camera that slowly orbits the origin. The core
// never talks to it; it belongs entirely to the rendering side, together
// with projection and the orbit motion.
type Camera struct {
	Yaw   float64 // orbit angle around the Y axis, radians
	Pitch float64 // downward tilt, radians
	Dist  float64 // distance from the origin along the view axis
	Fov   float64 // vertical field of view, radians
}

func NewCamera() Camera {
	return Camera{
		Yaw:   0,
		Pitch: 0.35,
		Dist:  9,
		Fov:   50 * math.Pi / 180,
	}
}

// Step advances the automatic orbit. Orbit speed is deliberately slow so the
// per-scene motion reads as the subject rotating, not the viewer.
func (c *Camera) Step(dt float64) {
	c.Yaw += 0.1 * dt
	if c.Yaw > 2*math.Pi {
		c.Yaw -= 2 * math.Pi
	}
}

// nearPlane is the minimum view-space depth. Anything closer (or behind the
// camera) is culled before projection to avoid blowing up the perspective
// divide.
const nearPlane = 0.1

// Project maps a world-space position to screen space. The returned depth is
// the view-space distance used for perspective scale and painter's sorting.
// ok is false when the point is behind the near plane.
func (c *Camera) Project(v Vec3, screenW float64, screenH float64) (pt Pt, depth float64, ok bool) {
	// View transform: orbit, then tilt, then pull back.
	p := v.RotatedY(c.Yaw).RotatedX(-c.Pitch)
	depth = c.Dist - p.Z
	if depth < nearPlane {
		return Pt{}, 0, false
	}

	// The focal length in pixels follows from the vertical field of view:
	// a segment of height 2*tan(fov/2)*depth fills the screen vertically.
	focal := screenH / 2 / math.Tan(c.Fov/2)
	pt.X = screenW/2 + focal*p.X/depth
	pt.Y = screenH/2 - focal*p.Y/depth
	return pt, depth, true
}

// PerspectiveScale converts a world-space size at the given depth to pixels.
func (c *Camera) PerspectiveScale(size float64, depth float64, screenH float64) float64 {
	focal := screenH / 2 / math.Tan(c.Fov/2)
	return size * focal / depth
}
