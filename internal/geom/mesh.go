package geom

import (
	"github.com/golang/geo/r3"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// FanTriangulate returns the fan (0, i, i+1) for i in [1, n-2]. Rings with
// fewer than three vertices produce no triangles.
func FanTriangulate(n int) []Triangle {
	if n < 3 {
		return nil
	}
	tris := make([]Triangle, 0, n-2)
	for i := 1; i < n-1; i++ {
		tris = append(tris, Triangle{0, i, i + 1})
	}
	return tris
}

// FaceNormal is the unit normal of triangle abc using the right-hand rule.
// Degenerate triangles return the zero vector.
func FaceNormal(a, b, c r3.Vector) r3.Vector {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// VertexNormals averages the area-weighted normals of every triangle touching
// a vertex. Vertices not referenced by any triangle get the zero vector.
func VertexNormals(pos []r3.Vector, tris []Triangle) []r3.Vector {
	normals := make([]r3.Vector, len(pos))
	for _, t := range tris {
		if t[0] >= len(pos) || t[1] >= len(pos) || t[2] >= len(pos) {
			continue
		}
		a, b, c := pos[t[0]], pos[t[1]], pos[t[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		for _, i := range t {
			normals[i] = normals[i].Add(n)
		}
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}

// RingContains reports whether p lies inside the closed ring.
func RingContains(ring []Vec2, p Vec2) bool {
	if len(ring) < 3 {
		return false
	}
	r := make(orb.Ring, 0, len(ring)+1)
	r = append(r, ring...)
	if !r.Closed() {
		r = append(r, r[0])
	}
	return planar.RingContains(r, orb.Point(p))
}
