package geom

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/paulmach/orb"
)

// MinSceneScale is used when the 3D extent has no usable span.
const MinSceneScale = 1.0

// Bounds2D scans every vertex of the given rings once. With no vertices the
// result keeps its +Inf/-Inf sentinels; check Empty before building scales.
func Bounds2D(rings ...[]Vec2) BBox {
	inf := math.Inf(1)
	b := BBox{MinX: inf, MinY: inf, MaxX: -inf, MaxY: -inf}
	for _, ring := range rings {
		for _, p := range ring {
			b.MinX = math.Min(b.MinX, p[0])
			b.MinY = math.Min(b.MinY, p[1])
			b.MaxX = math.Max(b.MaxX, p[0])
			b.MaxY = math.Max(b.MaxY, p[1])
		}
	}
	return b
}

// Empty reports whether the box contains no points.
func (b BBox) Empty() bool {
	return !(b.MinX <= b.MaxX && b.MinY <= b.MaxY)
}

// Domain returns finite x and y domains for scale construction. Axes with no
// points fall back to [0,1]; an axis where every point shares one coordinate
// is widened by half a unit each way.
func (b BBox) Domain() (x, y [2]float64) {
	return finiteDomain(b.MinX, b.MaxX), finiteDomain(b.MinY, b.MaxY)
}

func finiteDomain(lo, hi float64) [2]float64 {
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return [2]float64{0, 1}
	}
	if lo == hi {
		return [2]float64{lo - 0.5, lo + 0.5}
	}
	return [2]float64{lo, hi}
}

// Bound converts to orb's representation.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.MinX, b.MinY}, Max: orb.Point{b.MaxX, b.MaxY}}
}

// Bounds3D is Bounds2D for spatial rings.
func Bounds3D(rings ...[]r3.Vector) BBox3 {
	inf := math.Inf(1)
	b := BBox3{
		Min: r3.Vector{X: inf, Y: inf, Z: inf},
		Max: r3.Vector{X: -inf, Y: -inf, Z: -inf},
	}
	for _, ring := range rings {
		for _, p := range ring {
			b.Min.X = math.Min(b.Min.X, p.X)
			b.Min.Y = math.Min(b.Min.Y, p.Y)
			b.Min.Z = math.Min(b.Min.Z, p.Z)
			b.Max.X = math.Max(b.Max.X, p.X)
			b.Max.Y = math.Max(b.Max.Y, p.Y)
			b.Max.Z = math.Max(b.Max.Z, p.Z)
		}
	}
	return b
}

// Empty reports whether the box contains no points.
func (b BBox3) Empty() bool {
	return !(b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z)
}

// Size returns the per-axis span.
func (b BBox3) Size() r3.Vector {
	if b.Empty() {
		return r3.Vector{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the per-axis midpoint, or the origin for an empty box.
func (b BBox3) Center() r3.Vector {
	if b.Empty() {
		return r3.Vector{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Floor returns the lowest vertical coordinate, or 0 for an empty box.
func (b BBox3) Floor() float64 {
	if b.Empty() {
		return 0
	}
	return b.Min.Y
}

// SceneScale is the largest span of the box. Degenerate boxes (empty, a
// single point, non-finite) yield MinSceneScale.
func SceneScale(b BBox3) float64 {
	s := b.Size()
	scale := math.Max(s.X, math.Max(s.Y, s.Z))
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return MinSceneScale
	}
	return scale
}
