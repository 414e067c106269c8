// Package view2d is the planar chart of one section: scaled polygons, axes,
// pan/zoom, hover and click selection.
package view2d

import (
	"math"

	"secview/internal/chart"
	"secview/internal/dataset"
	"secview/internal/geom"
)

const (
	DefaultMargin  = 40.0
	DefaultStroke  = 1.0
	SelectedStroke = 3.0
	HoverOpacity   = 0.7
	StrokeColor    = "#000000"
)

// Size is the drawing area in pixels.
type Size struct {
	W float64
	H float64
}

// Shape is one rendered polygon.
type Shape struct {
	Polygon     *dataset.Polygon
	Data        []geom.Vec2 // ring in data space
	Points      []geom.Vec2 // ring in screen space, current transform applied
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

// State is everything about the view that input can change.
type State struct {
	SectionID string
	Transform chart.Transform
	Selected  *dataset.Polygon
	Hovered   *dataset.Polygon
}

// DetailSink receives the serialised selection.
type DetailSink interface {
	SetDetail(string)
}

type View struct {
	Margin float64
	Zoom   chart.Zoom

	size   Size
	state  State
	x, y   chart.Linear // base scales, identity transform
	shapes []Shape
	xAxis  chart.Axis
	yAxis  chart.Axis
	sink   DetailSink
}

// New returns an empty view publishing selections to sink (which may be nil).
func New(sink DetailSink) *View {
	return &View{
		Margin: DefaultMargin,
		Zoom:   chart.DefaultZoom,
		state:  State{Transform: chart.Identity},
		sink:   sink,
	}
}

// Render replaces whatever was drawn with the given section's polygons laid
// out for size. The zoom transform resets to identity; the selection is kept.
func (v *View) Render(sectionID string, polygons []dataset.Polygon, size Size) {
	v.size = size
	v.state.SectionID = sectionID
	v.state.Transform = chart.Identity
	v.state.Hovered = nil
	v.shapes = make([]Shape, 0, len(polygons))
	for i := range polygons {
		p := &polygons[i]
		if len(p.Points2D) == 0 {
			continue
		}
		v.shapes = append(v.shapes, Shape{
			Polygon:     p,
			Data:        p.Ring2D(),
			Fill:        p.HexColor(),
			Stroke:      StrokeColor,
			StrokeWidth: v.strokeFor(p),
			Opacity:     1,
		})
	}
	v.layout()
}

// Resize lays the current section out for a new size, keeping the transform.
func (v *View) Resize(size Size) {
	v.size = size
	v.layout()
}

// layout rebuilds the base scales from the shapes' bounds and the size.
func (v *View) layout() {
	rings := make([][]geom.Vec2, len(v.shapes))
	for i := range v.shapes {
		rings[i] = v.shapes[i].Data
	}
	dx, dy := geom.Bounds2D(rings...).Domain()
	// Small sizes shrink the margin so the ranges never invert.
	mx := math.Min(v.Margin, math.Max(0, (v.size.W-1)/2))
	my := math.Min(v.Margin, math.Max(0, (v.size.H-1)/2))
	v.x = chart.NewLinear(dx, [2]float64{mx, v.size.W - mx})
	v.y = chart.NewLinear(dy, [2]float64{v.size.H - my, my})
	v.project()
}

// project recomputes screen rings and axes from the transform-adjusted
// scales, so stroke width stays constant under zoom.
func (v *View) project() {
	rx, ry := v.XScale(), v.YScale()
	for i := range v.shapes {
		s := &v.shapes[i]
		s.Points = make([]geom.Vec2, len(s.Data))
		for j, d := range s.Data {
			s.Points[j] = geom.Vec2{rx.Map(d[0]), ry.Map(d[1])}
		}
	}
	v.xAxis = chart.NewAxis(chart.Bottom, rx, v.y.Range()[0], chart.DefaultTickCount)
	v.yAxis = chart.NewAxis(chart.Left, ry, v.x.Range()[0], chart.DefaultTickCount)
}

// XScale is the horizontal scale with the current transform applied.
func (v *View) XScale() chart.Linear { return v.state.Transform.RescaleX(v.x) }

// YScale is the vertical scale with the current transform applied.
func (v *View) YScale() chart.Linear { return v.state.Transform.RescaleY(v.y) }

// ScreenPoint maps a data point to the screen under the current transform.
func (v *View) ScreenPoint(d geom.Vec2) geom.Vec2 {
	return geom.Vec2{v.XScale().Map(d[0]), v.YScale().Map(d[1])}
}

// DataPoint maps a screen point back into data space.
func (v *View) DataPoint(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{v.XScale().Invert(p[0]), v.YScale().Invert(p[1])}
}

func (v *View) Shapes() []Shape            { return v.shapes }
func (v *View) Axes() (x, y chart.Axis)    { return v.xAxis, v.yAxis }
func (v *View) State() State               { return v.state }
func (v *View) Size() Size                 { return v.size }
func (v *View) Transform() chart.Transform { return v.state.Transform }
func (v *View) Selected() *dataset.Polygon { return v.state.Selected }

func (v *View) strokeFor(p *dataset.Polygon) float64 {
	if p == v.state.Selected {
		return SelectedStroke
	}
	return DefaultStroke
}

// SetTransform replaces the zoom transform, clamping its scale.
func (v *View) SetTransform(t chart.Transform) {
	v.state.Transform = v.Zoom.Constrain(t)
	v.project()
}

// ZoomBy scales by factor keeping the screen point anchor fixed.
func (v *View) ZoomBy(factor float64, anchor geom.Vec2) {
	v.state.Transform = v.Zoom.ScaleBy(v.state.Transform, factor, anchor)
	v.project()
}

// PanBy shifts the view by (dx, dy) screen pixels.
func (v *View) PanBy(dx, dy float64) {
	v.state.Transform = v.Zoom.TranslateBy(v.state.Transform, dx, dy)
	v.project()
}

// ResetZoom returns to the identity transform.
func (v *View) ResetZoom() {
	v.SetTransform(chart.Identity)
}

// HitTest returns the topmost polygon under the screen point, or nil.
func (v *View) HitTest(p geom.Vec2) *dataset.Polygon {
	for i := len(v.shapes) - 1; i >= 0; i-- {
		if geom.RingContains(v.shapes[i].Points, p) {
			return v.shapes[i].Polygon
		}
	}
	return nil
}

// Hover marks the polygon under p and reports whether the hover changed.
func (v *View) Hover(p geom.Vec2) bool {
	return v.SetHovered(v.HitTest(p))
}

// SetHovered dims poly and restores the previously hovered shape.
func (v *View) SetHovered(poly *dataset.Polygon) bool {
	if poly == v.state.Hovered {
		return false
	}
	v.state.Hovered = poly
	for i := range v.shapes {
		if v.shapes[i].Polygon == poly {
			v.shapes[i].Opacity = HoverOpacity
		} else {
			v.shapes[i].Opacity = 1
		}
	}
	return true
}

// Click selects the polygon under p, if any.
func (v *View) Click(p geom.Vec2) (*dataset.Polygon, error) {
	hit := v.HitTest(p)
	if hit == nil {
		return nil, nil
	}
	return hit, v.Select(hit)
}
