package view3d

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"

	"secview/internal/dataset"
)

func pts(vs ...[]float64) []dataset.Point {
	out := make([]dataset.Point, len(vs))
	for i, v := range vs {
		out[i] = dataset.Point{Vertex: v}
	}
	return out
}

func redTriangle() dataset.Polygon {
	return dataset.Polygon{
		Color:    "ff0000",
		Points2D: pts([]float64{0, 0}, []float64{1, 0}, []float64{0, 1}),
		Points3D: pts([]float64{0, 0, 0}, []float64{1, 0, 0}, []float64{0, 1, 0}),
	}
}

func TestSingleTriangleScene(t *testing.T) {
	ds := dataset.New([]dataset.Section{{SectionID: "s1", Polygons: []dataset.Polygon{redTriangle()}}})
	s := BuildScene(ds)
	if len(s.Meshes) != 1 || s.TriangleCount() != 1 {
		t.Fatalf("meshes=%d triangles=%d, want 1/1", len(s.Meshes), s.TriangleCount())
	}
	m := s.Meshes[0]
	if m.Material.Color.Hex() != "#ff0000" || !m.Material.DoubleSided || !m.Material.FlatShading {
		t.Errorf("unexpected material %+v", m.Material)
	}
	if m.SectionID != "s1" || m.Polygon != &ds.Sections()[0].Polygons[0] {
		t.Errorf("mesh should reference its source polygon")
	}
	if s.Scale != 1 || s.Center != (r3.Vector{X: 0.5, Y: 0.5}) {
		t.Errorf("scale=%v center=%v", s.Scale, s.Center)
	}
}

func TestShortRingContributesNoTriangles(t *testing.T) {
	short := dataset.Polygon{Color: "00ff00", Points3D: pts([]float64{0, 0, 0}, []float64{1, 1, 1})}
	ds := dataset.New([]dataset.Section{
		{SectionID: "a", Polygons: []dataset.Polygon{short, redTriangle()}},
	})
	s := BuildScene(ds)
	if len(s.Meshes) != 2 {
		t.Fatalf("got %d meshes", len(s.Meshes))
	}
	if s.Meshes[0].TriangleCount() != 0 || s.Meshes[1].TriangleCount() != 1 {
		t.Errorf("triangle counts %d/%d, want 0/1", s.Meshes[0].TriangleCount(), s.Meshes[1].TriangleCount())
	}
	v := NewSceneView(s, 40, 40)
	v.Frame()
}

func TestPentagonFan(t *testing.T) {
	p := dataset.Polygon{Color: "123456", Points3D: pts(
		[]float64{0, 0, 0}, []float64{2, 0, 0}, []float64{3, 0, 2}, []float64{1, 0, 3}, []float64{-1, 0, 2},
	)}
	m := NewMesh("s", &p)
	if m.TriangleCount() != 3 {
		t.Fatalf("got %d triangles", m.TriangleCount())
	}
	for i, tri := range m.Indices {
		if tri[0] != 0 || tri[1] != i+1 || tri[2] != i+2 {
			t.Errorf("triangle %d = %v", i, tri)
		}
	}
	for i, n := range m.Normals {
		if math.Abs(n.Norm()-1) > 1e-9 {
			t.Errorf("normal %d not unit: %v", i, n)
		}
	}
}

func TestBadColorFallsBack(t *testing.T) {
	p := dataset.Polygon{Color: "zz", Points3D: pts([]float64{0, 0, 0}, []float64{1, 0, 0}, []float64{0, 1, 0})}
	if got := NewMesh("s", &p).Material.Color; got != fallbackColor {
		t.Errorf("colour = %v, want fallback", got)
	}
}

func TestDegenerateDatasetScale(t *testing.T) {
	one := dataset.Polygon{Points3D: pts([]float64{5, 5, 5})}
	s := BuildScene(dataset.New([]dataset.Section{{SectionID: "x", Polygons: []dataset.Polygon{one}}}))
	if s.Scale <= 0 || math.IsInf(s.Scale, 0) || math.IsNaN(s.Scale) {
		t.Fatalf("scale = %v", s.Scale)
	}
	v := NewSceneView(s, 20, 20)
	if d := v.Orbit.Distance(v.Camera); d <= 0 || math.IsNaN(d) {
		t.Errorf("camera distance = %v", d)
	}
	v.Frame()

	empty := BuildScene(dataset.New([]dataset.Section{{SectionID: "e"}}))
	if empty.Scale != 1 || empty.TriangleCount() != 0 {
		t.Errorf("empty scene scale=%v", empty.Scale)
	}
}

func TestCameraAndOrbitSetup(t *testing.T) {
	ds := dataset.New([]dataset.Section{{SectionID: "s", Polygons: []dataset.Polygon{{
		Points3D: pts([]float64{0, 0, 0}, []float64{10, 4, 0}, []float64{0, 2, 6}),
	}}}})
	v := NewView(ds, 80, 40)
	c := v.Scene.Center
	want := c.Add(r3.Vector{Z: 15})
	if v.Camera.Position != want || v.Camera.Target != c {
		t.Errorf("camera at %v looking at %v, want %v -> %v", v.Camera.Position, v.Camera.Target, want, c)
	}
	o := v.Orbit
	if o.Target != c || !o.EnableDamping || o.DampingFactor != 0.05 || o.ScreenSpacePanning {
		t.Errorf("orbit config %+v", o)
	}
	if o.MinDistance != 1 || o.MaxDistance != 30 || o.MaxPolarAngle != math.Pi/2 {
		t.Errorf("orbit limits %v %v %v", o.MinDistance, o.MaxDistance, o.MaxPolarAngle)
	}
	if v.Camera.Aspect != 2 {
		t.Errorf("aspect = %v", v.Camera.Aspect)
	}
	v.Resize(30, 60)
	if v.Camera.Aspect != 0.5 || v.Framebuffer().W != 30 || v.Framebuffer().H != 60 {
		t.Errorf("resize not applied")
	}
}

func TestOrbitLimits(t *testing.T) {
	cam := NewCamera(1)
	cam.Position = r3.Vector{Z: 15}
	o := NewOrbit(r3.Vector{})
	o.EnableDamping = true
	o.DampingFactor = 0.05
	o.MinDistance, o.MaxDistance = 1, 30
	o.MaxPolarAngle = math.Pi / 2

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		switch r.Intn(3) {
		case 0:
			o.Rotate(r.Float64()*4-2, r.Float64()*4-2)
		case 1:
			o.Dolly(math.Exp(r.Float64()*4 - 2))
		case 2:
			o.Pan(cam, r.Float64()-0.5, r.Float64()-0.5)
		}
		o.Update(cam)
		d := o.Distance(cam)
		if d < 1-1e-9 || d > 30+1e-9 {
			t.Fatalf("step %d: distance %v outside [1,30]", i, d)
		}
		if p := o.Polar(cam); p > math.Pi/2+1e-9 {
			t.Fatalf("step %d: polar %v above horizon limit", i, p)
		}
		if math.Abs(o.Target.Y) > 1e-9 {
			t.Fatalf("step %d: ground-plane panning moved target height to %v", i, o.Target.Y)
		}
	}
}

func TestOrbitDamping(t *testing.T) {
	cam := NewCamera(1)
	cam.Position = r3.Vector{Z: 10}
	o := NewOrbit(r3.Vector{})
	o.EnableDamping = true
	o.DampingFactor = 0.05
	o.MaxPolarAngle = math.Pi / 2

	o.Rotate(1, 0)
	o.Update(cam)
	theta := math.Atan2(cam.Position.X, cam.Position.Z)
	if math.Abs(theta-0.05) > 1e-9 {
		t.Errorf("first damped step turned %v, want 0.05", theta)
	}
	for i := 0; i < 400; i++ {
		o.Update(cam)
	}
	theta = math.Atan2(cam.Position.X, cam.Position.Z)
	if math.Abs(theta-1) > 1e-6 {
		t.Errorf("damped rotation converged to %v, want 1", theta)
	}
	if o.Update(cam) {
		t.Errorf("settled controls should not move the camera")
	}
}

func TestGrid(t *testing.T) {
	ds := dataset.New([]dataset.Section{{SectionID: "s", Polygons: []dataset.Polygon{{
		Points3D: pts([]float64{0, -2, 0}, []float64{10, 4, 0}, []float64{0, 2, 6}),
	}}}})
	s := BuildScene(ds)
	g := s.Grid
	if g.Center != (r3.Vector{X: 5, Y: -2, Z: 3}) || g.Size != 10 || g.Divisions != GridDivisions {
		t.Fatalf("grid %+v", g)
	}
	if len(g.Lines) != 2*(GridDivisions+1) {
		t.Fatalf("got %d gridlines", len(g.Lines))
	}
	mid := 2 * (GridDivisions / 2)
	for i, l := range g.Lines {
		if accent := i == mid || i == mid+1; accent != (l.Color == gridCentreColor) {
			t.Errorf("gridline %d colour %v, centre pair is %d/%d", i, l.Color, mid, mid+1)
		}
	}
	if c := g.Lines[mid]; c.A.Z != 3 || c.B.Z != 3 || g.Lines[mid+1].A.X != 5 {
		t.Errorf("centre pair %+v %+v does not pass through the centre", c, g.Lines[mid+1])
	}
	for _, l := range g.Lines {
		if l.A.Y != -2 || l.B.Y != -2 {
			t.Fatalf("gridline off the floor: %+v", l)
		}
	}
	if len(s.Labels) != 2*(GridDivisions+1)+3 {
		t.Fatalf("got %d labels", len(s.Labels))
	}
	first := s.Labels[0]
	if first.Text != "0.000" || first.Pos.Y <= -2 {
		t.Errorf("first label %+v should read 0.000 and sit above the grid", first)
	}
	if s.Labels[GridDivisions].Text != "10.000" {
		t.Errorf("last x label = %q", s.Labels[GridDivisions].Text)
	}
}

func TestRenderFrame(t *testing.T) {
	ds := dataset.New([]dataset.Section{{SectionID: "s1", Polygons: []dataset.Polygon{redTriangle()}}})
	v := NewView(ds, 40, 40)
	fb := v.Frame()
	if fb.Covered() == 0 {
		t.Fatalf("nothing rendered")
	}
	c, ok := fb.At(17, 22)
	if !ok {
		t.Fatalf("triangle interior not drawn")
	}
	if c.R < 0.5 || c.G != 0 || c.B != 0 {
		t.Errorf("interior colour %v, want lit red", c)
	}
	if len(fb.Labels) == 0 {
		t.Errorf("expected projected labels")
	}
}

func TestShade(t *testing.T) {
	l := defaultLights()
	base := white
	lit := l.Shade(base, r3.Vector{X: 1, Y: 1, Z: 1}.Normalize())
	dark := l.Shade(base, r3.Vector{X: -1, Y: -1, Z: -1}.Normalize())
	if math.Abs(lit.R-1) > 1e-9 {
		t.Errorf("fully lit = %v, want 1", lit.R)
	}
	if math.Abs(dark.R-0.5) > 1e-9 {
		t.Errorf("ambient only = %v, want 0.5", dark.R)
	}
}
