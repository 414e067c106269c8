package view2d

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"secview/internal/chart"
	"secview/internal/dataset"
	"secview/internal/geom"
)

type recordSink struct{ got []string }

func (r *recordSink) SetDetail(s string) { r.got = append(r.got, s) }

var size = Size{W: 480, H: 300}

func triangle(color string, off float64) dataset.Polygon {
	return dataset.Polygon{
		Color: color,
		Points2D: []dataset.Point{
			{Vertex: []float64{off, off}},
			{Vertex: []float64{off + 10, off}},
			{Vertex: []float64{off, off + 10}},
		},
		Points3D: []dataset.Point{
			{Vertex: []float64{off, 0, off}},
			{Vertex: []float64{off + 10, 0, off}},
			{Vertex: []float64{off, 0, off + 10}},
		},
	}
}

func TestRenderSingleTriangle(t *testing.T) {
	polys := []dataset.Polygon{triangle("ff0000", 0)}
	v := New(nil)
	v.Render("s1", polys, size)

	shapes := v.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	s := shapes[0]
	if s.Fill != "#ff0000" || s.Stroke != StrokeColor || s.StrokeWidth != DefaultStroke || s.Opacity != 1 {
		t.Errorf("unexpected shape style %+v", s)
	}
	want := []geom.Vec2{{40, 260}, {440, 260}, {40, 40}}
	if !reflect.DeepEqual(s.Points, want) {
		t.Errorf("screen ring = %v, want %v", s.Points, want)
	}
	if s.Polygon != &polys[0] {
		t.Errorf("shape should reference the source polygon")
	}
	x, y := v.Axes()
	if x.Offset != 260 || y.Offset != 40 || len(x.Ticks) == 0 || len(y.Ticks) == 0 {
		t.Errorf("axes not laid out: %+v %+v", x, y)
	}
}

func TestRenderIdempotent(t *testing.T) {
	polys := []dataset.Polygon{triangle("ff0000", 0), triangle("00ff00", 5)}
	v := New(nil)
	v.Render("s1", polys, size)
	first := append([]Shape(nil), v.Shapes()...)
	v.Render("s1", polys, size)
	if !reflect.DeepEqual(first, v.Shapes()) {
		t.Errorf("second render differs from first")
	}
}

func TestRenderDegenerateSection(t *testing.T) {
	v := New(nil)
	v.Render("empty", nil, size)
	if len(v.Shapes()) != 0 {
		t.Fatalf("expected no shapes")
	}
	if d := v.XScale().Domain(); d != [2]float64{0, 1} {
		t.Errorf("x domain = %v, want [0 1]", d)
	}
	x, _ := v.Axes()
	for _, tick := range x.Ticks {
		if math.IsNaN(tick.Pos) {
			t.Fatalf("NaN tick position")
		}
	}
	// polygons without a planar ring are skipped
	v.Render("no2d", []dataset.Polygon{{Color: "abcdef"}}, size)
	if len(v.Shapes()) != 0 {
		t.Errorf("polygon without points2D should not render")
	}
}

func TestSmallSizeKeepsOrientation(t *testing.T) {
	v := New(nil)
	v.Margin = 16
	v.Render("s1", []dataset.Polygon{triangle("ff0000", 0)}, Size{W: 28, H: 20})

	if r := v.XScale().Range(); !(r[0] < r[1]) || r[0] < 0 || r[1] > 28 {
		t.Errorf("x range = %v, want ascending inside [0 28]", r)
	}
	if r := v.YScale().Range(); !(r[0] > r[1]) || r[1] < 0 || r[0] > 20 {
		t.Errorf("y range = %v, want flipped inside [0 20]", r)
	}
	a, b := v.ScreenPoint(geom.Vec2{0, 0}), v.ScreenPoint(geom.Vec2{10, 10})
	if !(a[0] < b[0]) || !(a[1] > b[1]) {
		t.Errorf("data (0,0)->%v and (10,10)->%v are mirrored", a, b)
	}
	x, y := v.Axes()
	for _, tick := range append(x.Ticks, y.Ticks...) {
		if math.IsNaN(tick.Pos) {
			t.Fatalf("NaN tick position")
		}
	}
}

func TestSelection(t *testing.T) {
	polys := []dataset.Polygon{triangle("ff0000", 0), triangle("0000ff", 20)}
	sink := &recordSink{}
	v := New(sink)
	v.Render("s1", polys, size)
	a, b := &polys[0], &polys[1]

	if err := v.Select(a); err != nil {
		t.Fatal(err)
	}
	if err := v.Select(a); err != nil {
		t.Fatal(err)
	}
	if len(sink.got) != 1 {
		t.Errorf("reselecting should be a no-op, published %d times", len(sink.got))
	}
	if v.Shapes()[0].StrokeWidth != SelectedStroke {
		t.Errorf("A should be emphasised")
	}

	if err := v.Select(b); err != nil {
		t.Fatal(err)
	}
	if v.Selected() != b {
		t.Errorf("B should be selected")
	}
	if got := v.Shapes()[0].StrokeWidth; got != DefaultStroke {
		t.Errorf("A stroke = %v, want %v", got, DefaultStroke)
	}
	if got := v.Shapes()[1].StrokeWidth; got != SelectedStroke {
		t.Errorf("B stroke = %v, want %v", got, SelectedStroke)
	}
	want, _ := dataset.MarshalDetail(b)
	if sink.got[len(sink.got)-1] != want {
		t.Errorf("detail = %q, want %q", sink.got[len(sink.got)-1], want)
	}
}

func TestClickAndHover(t *testing.T) {
	polys := []dataset.Polygon{triangle("ff0000", 0)}
	v := New(&recordSink{})
	v.Render("s1", polys, size)

	inside := geom.Vec2{60, 240}
	if !v.Hover(inside) {
		t.Fatalf("hover should change")
	}
	if v.Shapes()[0].Opacity != HoverOpacity {
		t.Errorf("hovered opacity = %v", v.Shapes()[0].Opacity)
	}
	if v.Hover(inside) {
		t.Errorf("same hover should report no change")
	}
	v.Hover(geom.Vec2{470, 10})
	if v.Shapes()[0].Opacity != 1 {
		t.Errorf("opacity should restore on leave")
	}

	hit, err := v.Click(inside)
	if err != nil || hit != &polys[0] {
		t.Fatalf("Click = %v, %v", hit, err)
	}
	if hit, _ := v.Click(geom.Vec2{470, 10}); hit != nil {
		t.Errorf("click on background should not select")
	}
	if v.Selected() != &polys[0] {
		t.Errorf("background click must not clear selection")
	}
}

func TestZoomConsistency(t *testing.T) {
	polys := []dataset.Polygon{triangle("ff0000", 0), triangle("00ff00", 7)}
	v := New(nil)
	v.Render("s1", polys, size)
	before := make([][]geom.Vec2, len(v.Shapes()))
	for i, s := range v.Shapes() {
		before[i] = append([]geom.Vec2(nil), s.Points...)
	}

	v.ZoomBy(2, geom.Vec2{200, 150})
	v.PanBy(-30, 12)
	tr := v.Transform()
	for i, s := range v.Shapes() {
		for j, p := range s.Points {
			want := tr.Apply(before[i][j])
			if math.Abs(p[0]-want[0]) > 1e-9 || math.Abs(p[1]-want[1]) > 1e-9 {
				t.Fatalf("shape %d vertex %d: %v, want %v", i, j, p, want)
			}
			if got := v.ScreenPoint(s.Data[j]); math.Abs(got[0]-p[0]) > 1e-9 || math.Abs(got[1]-p[1]) > 1e-9 {
				t.Fatalf("axis scales disagree with shapes: %v vs %v", got, p)
			}
		}
		if s.StrokeWidth != DefaultStroke {
			t.Errorf("stroke width must not change with zoom")
		}
	}
	d := v.DataPoint(v.ScreenPoint(geom.Vec2{3, 4}))
	if math.Abs(d[0]-3) > 1e-9 || math.Abs(d[1]-4) > 1e-9 {
		t.Errorf("DataPoint round trip = %v", d)
	}

	v.ZoomBy(1000, geom.Vec2{})
	if v.Transform().K != 10 {
		t.Errorf("zoom should clamp at 10, got %v", v.Transform().K)
	}
	v.ResetZoom()
	if v.Transform() != chart.Identity {
		t.Errorf("ResetZoom = %+v", v.Transform())
	}
}

func TestSectionSwitchResetsTransform(t *testing.T) {
	s1 := []dataset.Polygon{triangle("ff0000", 0)}
	s2 := []dataset.Polygon{triangle("00ff00", 100), triangle("0000ff", 120)}
	v := New(&recordSink{})
	v.Render("s1", s1, size)
	v.Select(&s1[0])
	v.ZoomBy(3, geom.Vec2{100, 100})

	v.Render("s2", s2, size)
	if v.Transform() != chart.Identity {
		t.Errorf("transform should reset on section switch, got %+v", v.Transform())
	}
	if v.State().SectionID != "s2" || len(v.Shapes()) != 2 {
		t.Errorf("section not switched: %+v", v.State())
	}
	if d := v.XScale().Domain(); d != [2]float64{100, 130} {
		t.Errorf("x domain = %v, want [100 130]", d)
	}
	if v.Selected() != &s1[0] {
		t.Errorf("selection should survive a section switch")
	}
}

func TestResizeKeepsTransform(t *testing.T) {
	polys := []dataset.Polygon{triangle("ff0000", 0)}
	v := New(nil)
	v.Render("s1", polys, size)
	v.ZoomBy(2, geom.Vec2{0, 0})
	tr := v.Transform()
	v.Resize(Size{W: 800, H: 600})
	if v.Transform() != tr {
		t.Errorf("Resize changed the transform")
	}
	if r := v.x.Range(); r != [2]float64{40, 760} {
		t.Errorf("base x range = %v", r)
	}
}

func TestCycleHover(t *testing.T) {
	polys := []dataset.Polygon{triangle("ff0000", 0), triangle("00ff00", 5)}
	v := New(nil)
	v.Render("s1", polys, size)
	if got := v.CycleHover(1); got != &polys[0] {
		t.Errorf("first step should hover the first shape")
	}
	if got := v.CycleHover(1); got != &polys[1] {
		t.Errorf("second step should hover the second shape")
	}
	if got := v.CycleHover(1); got != &polys[0] {
		t.Errorf("cycle should wrap")
	}
	if got := v.CycleHover(-1); got != &polys[1] {
		t.Errorf("backwards step should wrap")
	}
}

func TestWriteSVG(t *testing.T) {
	polys := []dataset.Polygon{triangle("ff0000", 0)}
	v := New(nil)
	v.Render("s1", polys, size)
	var buf bytes.Buffer
	if err := v.WriteSVG(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`<svg`, `<polygon points="40,260 440,260 40,40`, `fill:#ff0000;stroke:#000000;stroke-width:1;opacity:1`, `</svg>`} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q:\n%s", want, out)
		}
	}
}
