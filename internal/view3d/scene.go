// Package view3d renders every section at once as lit triangle meshes over a
// labelled ground grid, seen through an orbiting perspective camera.
package view3d

import (
	"github.com/golang/geo/r3"

	"secview/internal/dataset"
	"secview/internal/geom"
)

// Scene is everything drawn by the 3D view. It is built once per dataset.
type Scene struct {
	Bounds geom.BBox3
	Center r3.Vector
	Scale  float64

	Meshes []Mesh
	Grid   Grid
	Labels []Label
	Lights Lights
}

// BuildScene computes the global extent and builds grid, labels, meshes and
// lights for the whole dataset.
func BuildScene(ds *dataset.Dataset) *Scene {
	b := geom.Bounds3D(ds.Rings3D()...)
	s := &Scene{
		Bounds: b,
		Center: b.Center(),
		Scale:  geom.SceneScale(b),
		Lights: defaultLights(),
	}
	floor := b.Floor()
	s.Grid = NewGrid(r3.Vector{X: s.Center.X, Y: floor, Z: s.Center.Z}, s.Scale, GridDivisions, gridCentreColor, gridColor)
	s.Labels = append(s.Grid.Labels(s.Scale/20), axisLabels(s.Center, floor, s.Scale)...)
	ds.Walk(func(sec *dataset.Section, p *dataset.Polygon) {
		s.Meshes = append(s.Meshes, NewMesh(sec.SectionID, p))
	})
	return s
}

// TriangleCount sums the triangles of every mesh.
func (s *Scene) TriangleCount() int {
	n := 0
	for _, m := range s.Meshes {
		n += m.TriangleCount()
	}
	return n
}
