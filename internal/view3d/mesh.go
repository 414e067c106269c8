package view3d

import (
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"secview/internal/dataset"
	"secview/internal/geom"
)

// fallbackColor paints polygons whose hex colour does not parse.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Material describes how a mesh surface is shaded.
type Material struct {
	Color       colorful.Color
	DoubleSided bool
	FlatShading bool
}

// Mesh is an indexed triangle set built from one polygon's spatial ring.
type Mesh struct {
	SectionID string
	Polygon   *dataset.Polygon
	Positions []r3.Vector
	Indices   []geom.Triangle
	Normals   []r3.Vector
	Material  Material
}

// NewMesh fan-triangulates the polygon's 3D ring. Rings with fewer than three
// vertices yield a mesh without triangles.
func NewMesh(sectionID string, p *dataset.Polygon) Mesh {
	pos := p.Ring3D()
	tris := geom.FanTriangulate(len(pos))
	c, err := colorful.Hex(p.HexColor())
	if err != nil {
		c = fallbackColor
	}
	return Mesh{
		SectionID: sectionID,
		Polygon:   p,
		Positions: pos,
		Indices:   tris,
		Normals:   geom.VertexNormals(pos, tris),
		Material:  Material{Color: c, DoubleSided: true, FlatShading: true},
	}
}

func (m Mesh) TriangleCount() int { return len(m.Indices) }
