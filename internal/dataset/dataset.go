// Package dataset holds the sectioned polygon model that both views read.
// A Dataset is populated once and never mutated afterwards.
package dataset

import (
	"errors"

	"github.com/golang/geo/r3"

	"secview/internal/geom"
)

// ErrNoSection is returned when a section id is unknown or the dataset has
// no sections to pick from.
var ErrNoSection = errors.New("dataset: unknown section")

// Point is one vertex; Vertex has two components in a planar ring and three
// in a spatial ring.
type Point struct {
	Vertex []float64 `json:"vertex"`
}

func (p Point) at(i int) float64 {
	if i < len(p.Vertex) {
		return p.Vertex[i]
	}
	return 0
}

// Polygon is a coloured ring with parallel planar and spatial vertex lists.
// Color is hex without the leading '#'.
type Polygon struct {
	Color    string  `json:"color"`
	Points2D []Point `json:"points2D"`
	Points3D []Point `json:"points3D"`
}

// Ring2D returns the planar ring in source order.
func (p *Polygon) Ring2D() []geom.Vec2 {
	ring := make([]geom.Vec2, len(p.Points2D))
	for i, pt := range p.Points2D {
		ring[i] = geom.Vec2{pt.at(0), pt.at(1)}
	}
	return ring
}

// Ring3D returns the spatial ring in source order.
func (p *Polygon) Ring3D() []r3.Vector {
	ring := make([]r3.Vector, len(p.Points3D))
	for i, pt := range p.Points3D {
		ring[i] = r3.Vector{X: pt.at(0), Y: pt.at(1), Z: pt.at(2)}
	}
	return ring
}

// HexColor returns the fill colour with a leading '#'.
func (p *Polygon) HexColor() string {
	return "#" + p.Color
}

// Section is a named group of polygons.
type Section struct {
	SectionID   string    `json:"sectionId"`
	SectionName string    `json:"sectionName"`
	Polygons    []Polygon `json:"polygons"`
}

// Dataset is the whole payload plus lookup tables built at load time.
type Dataset struct {
	PolygonsBySection []Section `json:"polygonsBySection"`

	index  map[string]int
	colors map[string]string
}

// New wraps sections into an indexed Dataset.
func New(sections []Section) *Dataset {
	d := &Dataset{PolygonsBySection: sections}
	d.buildIndex()
	return d
}

func (d *Dataset) buildIndex() {
	d.index = make(map[string]int, len(d.PolygonsBySection))
	d.colors = make(map[string]string, len(d.PolygonsBySection))
	for i, s := range d.PolygonsBySection {
		d.index[s.SectionID] = i
		d.colors[s.SectionID] = SectionColor(i)
	}
}

// Sections returns the sections in source order.
func (d *Dataset) Sections() []Section {
	return d.PolygonsBySection
}

// Section looks a section up by id.
func (d *Dataset) Section(id string) (*Section, bool) {
	i, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return &d.PolygonsBySection[i], true
}

// Index returns the position of a section, or -1.
func (d *Dataset) Index(id string) int {
	if i, ok := d.index[id]; ok {
		return i
	}
	return -1
}

// Color returns the display colour assigned to a section id.
func (d *Dataset) Color(id string) string {
	return d.colors[id]
}

// Walk calls fn for every polygon of every section in source order. The
// polygon pointer is stable for the lifetime of the dataset.
func (d *Dataset) Walk(fn func(s *Section, p *Polygon)) {
	for i := range d.PolygonsBySection {
		s := &d.PolygonsBySection[i]
		for j := range s.Polygons {
			fn(s, &s.Polygons[j])
		}
	}
}

// Rings3D collects every spatial ring across all sections.
func (d *Dataset) Rings3D() [][]r3.Vector {
	var rings [][]r3.Vector
	d.Walk(func(_ *Section, p *Polygon) {
		rings = append(rings, p.Ring3D())
	})
	return rings
}
