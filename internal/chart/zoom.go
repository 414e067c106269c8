package chart

import (
	"math"

	"secview/internal/geom"
)

// Transform is a uniform scale K followed by a translation (X, Y), applied to
// screen coordinates.
type Transform struct {
	K float64
	X float64
	Y float64
}

// Identity is the transform that leaves screen coordinates unchanged.
var Identity = Transform{K: 1}

func (t Transform) Apply(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{p[0]*t.K + t.X, p[1]*t.K + t.Y}
}

func (t Transform) ApplyX(x float64) float64 { return x*t.K + t.X }
func (t Transform) ApplyY(y float64) float64 { return y*t.K + t.Y }

func (t Transform) Invert(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{t.InvertX(p[0]), t.InvertY(p[1])}
}

func (t Transform) InvertX(x float64) float64 { return (x - t.X) / t.K }
func (t Transform) InvertY(y float64) float64 { return (y - t.Y) / t.K }

// RescaleX returns a scale whose domain is what s shows through t, keeping
// the same range.
func (t Transform) RescaleX(s Linear) Linear {
	r := s.Range()
	return NewLinear([2]float64{s.Invert(t.InvertX(r[0])), s.Invert(t.InvertX(r[1]))}, r)
}

// RescaleY is RescaleX for the vertical axis.
func (t Transform) RescaleY(s Linear) Linear {
	r := s.Range()
	return NewLinear([2]float64{s.Invert(t.InvertY(r[0])), s.Invert(t.InvertY(r[1]))}, r)
}

// Zoom turns gestures into transforms while keeping K inside
// [MinScale, MaxScale].
type Zoom struct {
	MinScale float64
	MaxScale float64
}

// DefaultZoom is the 0.5x..10x extent used by the 2D view.
var DefaultZoom = Zoom{MinScale: 0.5, MaxScale: 10}

func (z Zoom) clamp(k float64) float64 {
	if math.IsNaN(k) || k <= 0 {
		return 1
	}
	return math.Max(z.MinScale, math.Min(z.MaxScale, k))
}

// Constrain clamps the scale of t, leaving its translation untouched.
func (z Zoom) Constrain(t Transform) Transform {
	t.K = z.clamp(t.K)
	return t
}

// ScaleTo sets the scale to k while keeping the screen point anchor fixed.
func (z Zoom) ScaleTo(t Transform, k float64, anchor geom.Vec2) Transform {
	p := t.Invert(anchor)
	k = z.clamp(k)
	return Transform{K: k, X: anchor[0] - p[0]*k, Y: anchor[1] - p[1]*k}
}

// ScaleBy multiplies the current scale by factor around anchor.
func (z Zoom) ScaleBy(t Transform, factor float64, anchor geom.Vec2) Transform {
	return z.ScaleTo(t, t.K*factor, anchor)
}

// TranslateBy pans by (dx, dy) screen units.
func (z Zoom) TranslateBy(t Transform, dx, dy float64) Transform {
	return Transform{K: t.K, X: t.X + dx, Y: t.Y + dy}
}
