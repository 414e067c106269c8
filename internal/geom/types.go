package geom

import (
	"github.com/golang/geo/r3"
	"github.com/paulmach/orb"
)

// Vec2 is a planar vertex. It shares orb's layout so rings feed straight into
// orb/planar.
type Vec2 = orb.Point

// BBox is an axis-aligned 2D extent.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// BBox3 is an axis-aligned 3D extent.
type BBox3 struct {
	Min r3.Vector
	Max r3.Vector
}

// Triangle holds three vertex indices into a ring.
type Triangle [3]int
