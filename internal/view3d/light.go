package view3d

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
)

// LightIntensity is used by both scene lights.
const LightIntensity = 0.5

var white = colorful.Color{R: 1, G: 1, B: 1}

type AmbientLight struct {
	Color     colorful.Color
	Intensity float64
}

// DirectionalLight shines from Direction towards the origin.
type DirectionalLight struct {
	Color     colorful.Color
	Intensity float64
	Direction r3.Vector
}

// Lights is the fixed lighting rig.
type Lights struct {
	Ambient     AmbientLight
	Directional DirectionalLight
}

func defaultLights() Lights {
	return Lights{
		Ambient:     AmbientLight{Color: white, Intensity: LightIntensity},
		Directional: DirectionalLight{Color: white, Intensity: LightIntensity, Direction: r3.Vector{X: 1, Y: 1, Z: 1}},
	}
}

// Shade applies Lambert lighting to base for a surface with unit normal n.
func (l Lights) Shade(base colorful.Color, n r3.Vector) colorful.Color {
	diffuse := math.Max(0, n.Dot(l.Directional.Direction.Normalize()))
	a, d := l.Ambient, l.Directional
	return colorful.Color{
		R: base.R * (a.Color.R*a.Intensity + d.Color.R*d.Intensity*diffuse),
		G: base.G * (a.Color.G*a.Intensity + d.Color.G*d.Intensity*diffuse),
		B: base.B * (a.Color.B*a.Intensity + d.Color.B*d.Intensity*diffuse),
	}.Clamped()
}
