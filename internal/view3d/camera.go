package view3d

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	DefaultFOV  = 75.0
	DefaultNear = 0.1
	DefaultFar  = 10000.0
)

// Camera is a perspective camera looking at Target. Y is up.
type Camera struct {
	Position r3.Vector
	Target   r3.Vector
	Up       r3.Vector
	FOV      float64 // vertical field of view, degrees
	Aspect   float64
	Near     float64
	Far      float64
}

func NewCamera(aspect float64) *Camera {
	return &Camera{
		Up:     r3.Vector{Y: 1},
		FOV:    DefaultFOV,
		Aspect: aspect,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// LookAt points the camera at t.
func (c *Camera) LookAt(t r3.Vector) {
	c.Target = t
}

// SetViewport updates the aspect ratio from pixel dimensions.
func (c *Camera) SetViewport(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float64(w) / float64(h)
}

// Basis returns the camera's right, up and forward unit vectors.
func (c *Camera) Basis() (right, up, forward r3.Vector) {
	forward = c.Target.Sub(c.Position).Normalize()
	if forward.Norm2() == 0 {
		forward = r3.Vector{Z: -1}
	}
	right = forward.Cross(c.Up).Normalize()
	if right.Norm2() == 0 {
		right = r3.Vector{X: 1}
	}
	up = right.Cross(forward)
	return right, up, forward
}

// ToView expresses a world point in camera space: X right, Y up, Z the depth
// along the viewing direction.
func (c *Camera) ToView(p r3.Vector) r3.Vector {
	right, up, forward := c.Basis()
	d := p.Sub(c.Position)
	return r3.Vector{X: d.Dot(right), Y: d.Dot(up), Z: d.Dot(forward)}
}

// ProjectView maps a camera-space point to normalised device coordinates in
// [-1,1]. Points outside [Near, Far] are rejected.
func (c *Camera) ProjectView(v r3.Vector) (x, y float64, ok bool) {
	if v.Z < c.Near || v.Z > c.Far {
		return 0, 0, false
	}
	f := 1 / math.Tan(c.FOV*math.Pi/360)
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return v.X * f / (v.Z * aspect), v.Y * f / v.Z, true
}

// Project is ToView followed by ProjectView.
func (c *Camera) Project(p r3.Vector) (x, y, depth float64, ok bool) {
	v := c.ToView(p)
	x, y, ok = c.ProjectView(v)
	return x, y, v.Z, ok
}
