package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r3"

	"secview/internal/geom"
)

const twoSections = `{"polygonsBySection": [
  {"sectionId": "s1", "sectionName": "First", "polygons": [
    {"color": "ff0000",
     "points2D": [{"vertex": [0, 0]}, {"vertex": [1, 0]}, {"vertex": [0, 1]}],
     "points3D": [{"vertex": [0, 0, 0]}, {"vertex": [1, 0, 0]}, {"vertex": [0, 1, 0]}]}
  ]},
  {"sectionId": "s2", "sectionName": "Second", "polygons": []}
]}`

func TestDecode(t *testing.T) {
	d, err := Decode(strings.NewReader(twoSections))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	secs := d.Sections()
	if len(secs) != 2 || secs[0].SectionID != "s1" || secs[1].SectionName != "Second" {
		t.Fatalf("unexpected sections %+v", secs)
	}
	s, ok := d.Section("s1")
	if !ok || len(s.Polygons) != 1 {
		t.Fatalf("Section(s1) = %v, %v", s, ok)
	}
	p := &s.Polygons[0]
	if p.HexColor() != "#ff0000" {
		t.Errorf("HexColor = %q", p.HexColor())
	}
	if got := p.Ring2D(); len(got) != 3 || got[1] != (geom.Vec2{1, 0}) {
		t.Errorf("Ring2D = %v", got)
	}
	if got := p.Ring3D(); got[2] != (r3.Vector{X: 0, Y: 1, Z: 0}) {
		t.Errorf("Ring3D = %v", got)
	}
	if _, ok := d.Section("nope"); ok {
		t.Errorf("unknown id should not resolve")
	}
	if d.Index("s2") != 1 || d.Index("nope") != -1 {
		t.Errorf("Index mismatch")
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, in := range []string{`{"polygonsBySection": []}`, `{}`} {
		d, err := Decode(strings.NewReader(in))
		if err != nil {
			t.Fatalf("Decode(%s): %v", in, err)
		}
		if len(d.Sections()) != 0 || d.Index("s1") != -1 {
			t.Errorf("Decode(%s) = %d sections", in, len(d.Sections()))
		}
		if _, ok := d.Section("s1"); ok {
			t.Errorf("empty dataset resolved a section")
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{`)); err == nil {
		t.Errorf("want decode error")
	}
}

func TestSectionColorDeterministic(t *testing.T) {
	var secs []Section
	for i := 0; i < 23; i++ {
		secs = append(secs, Section{SectionID: string(rune('a' + i))})
	}
	d := New(secs)
	for round := 0; round < 2; round++ {
		for i, s := range d.Sections() {
			if got, want := d.Color(s.SectionID), Palette[i%len(Palette)]; got != want {
				t.Fatalf("section %d colour %q, want %q", i, got, want)
			}
		}
	}
	if SectionColor(-1) != Palette[len(Palette)-1] {
		t.Errorf("negative index should wrap")
	}
}

func TestMalformedVertexDoesNotPanic(t *testing.T) {
	p := Polygon{Points2D: []Point{{Vertex: []float64{4}}}, Points3D: []Point{{}}}
	if got := p.Ring2D()[0]; got != (geom.Vec2{4, 0}) {
		t.Errorf("Ring2D = %v", got)
	}
	if got := p.Ring3D()[0]; got != (r3.Vector{}) {
		t.Errorf("Ring3D = %v", got)
	}
}

func TestWalkAndRings(t *testing.T) {
	d := New([]Section{
		{SectionID: "a", Polygons: []Polygon{{Color: "1"}, {Color: "2"}}},
		{SectionID: "b", Polygons: []Polygon{{Color: "3"}}},
	})
	var got []string
	d.Walk(func(s *Section, p *Polygon) { got = append(got, s.SectionID+p.Color) })
	if strings.Join(got, ",") != "a1,a2,b3" {
		t.Errorf("Walk order = %v", got)
	}
	if len(d.Rings3D()) != 3 {
		t.Errorf("Rings3D should return one ring per polygon")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vertices.json")
	if err := os.WriteFile(path, []byte(twoSections), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(d.Sections()) != 2 {
		t.Errorf("got %d sections", len(d.Sections()))
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("missing file should fail")
	}
}

func TestFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(twoSections))
		default:
			http.Error(w, "Error reading JSON file", http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	d, err := Fetch(context.Background(), ts.Client(), ts.URL+"/data")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if d.Color("s2") != Palette[1] {
		t.Errorf("colour index not built after fetch")
	}

	_, err = Fetch(context.Background(), ts.Client(), ts.URL+"/broken")
	if err == nil || !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "Error reading JSON file") {
		t.Errorf("want status error with body, got %v", err)
	}
}

func TestMarshalDetail(t *testing.T) {
	d, _ := Decode(strings.NewReader(twoSections))
	s, _ := d.Section("s1")
	out, err := MarshalDetail(&s.Polygons[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "{\n  \"color\": \"ff0000\",\n  \"points2D\": [") {
		t.Errorf("unexpected detail output:\n%s", out)
	}
}
