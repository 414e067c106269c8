package view3d

import (
	"math"

	"github.com/golang/geo/r3"
)

const orbitEPS = 1e-6

// Orbit revolves a camera around Target. Input accumulates pending deltas;
// Update applies them, easing them out over several frames when damping is
// enabled.
type Orbit struct {
	Target r3.Vector

	EnableDamping bool
	DampingFactor float64

	MinDistance   float64
	MaxDistance   float64
	MinPolarAngle float64
	MaxPolarAngle float64

	// ScreenSpacePanning false keeps panning parallel to the ground plane.
	ScreenSpacePanning bool

	dTheta float64
	dPhi   float64
	scale  float64
	pan    r3.Vector
}

func NewOrbit(target r3.Vector) *Orbit {
	return &Orbit{
		Target:        target,
		DampingFactor: 0.05,
		MaxDistance:   math.Inf(1),
		MaxPolarAngle: math.Pi,
		scale:         1,
	}
}

// Rotate queues an azimuth (around the vertical axis) and polar rotation in
// radians. Positive dPhi tilts the camera towards the ground.
func (o *Orbit) Rotate(dTheta, dPhi float64) {
	o.dTheta += dTheta
	o.dPhi += dPhi
}

// Dolly queues a change of distance; factor < 1 moves closer.
func (o *Orbit) Dolly(factor float64) {
	if factor > 0 {
		o.scale *= factor
	}
}

// Pan queues a move of the target by (dx, dy) in units of the current camera
// distance. dy moves forward along the ground unless ScreenSpacePanning.
func (o *Orbit) Pan(cam *Camera, dx, dy float64) {
	dist := cam.Position.Sub(o.Target).Norm()
	right, up, _ := cam.Basis()
	fwd := up
	if !o.ScreenSpacePanning {
		fwd = cam.Up.Cross(right).Normalize()
	}
	o.pan = o.pan.Add(right.Mul(dx * dist)).Add(fwd.Mul(dy * dist))
}

// Distance is the current camera-to-target distance.
func (o *Orbit) Distance(cam *Camera) float64 {
	return cam.Position.Sub(o.Target).Norm()
}

// Polar is the current angle between the vertical axis and the camera offset.
func (o *Orbit) Polar(cam *Camera) float64 {
	off := cam.Position.Sub(o.Target)
	r := off.Norm()
	if r == 0 {
		return 0
	}
	return math.Acos(math.Max(-1, math.Min(1, off.Y/r)))
}

// Update applies pending input to cam and enforces the distance and polar
// limits. It reports whether the camera moved.
func (o *Orbit) Update(cam *Camera) bool {
	before := cam.Position
	off := cam.Position.Sub(o.Target)
	radius := off.Norm()
	theta := math.Atan2(off.X, off.Z)
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(math.Max(-1, math.Min(1, off.Y/radius)))
	}

	f := 1.0
	if o.EnableDamping {
		f = o.DampingFactor
	}
	theta += o.dTheta * f
	phi += o.dPhi * f
	phi = math.Max(math.Max(o.MinPolarAngle, orbitEPS), math.Min(math.Min(o.MaxPolarAngle, math.Pi-orbitEPS), phi))

	radius *= o.scale
	radius = math.Max(o.MinDistance, math.Min(o.MaxDistance, radius))

	o.Target = o.Target.Add(o.pan.Mul(f))

	sinPhi := math.Sin(phi)
	off = r3.Vector{
		X: radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	}
	cam.Position = o.Target.Add(off)
	cam.LookAt(o.Target)

	if o.EnableDamping {
		o.dTheta *= 1 - f
		o.dPhi *= 1 - f
		o.pan = o.pan.Mul(1 - f)
	} else {
		o.dTheta, o.dPhi = 0, 0
		o.pan = r3.Vector{}
	}
	o.scale = 1
	return cam.Position.Sub(before).Norm2() > orbitEPS*orbitEPS
}
