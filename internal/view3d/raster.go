package view3d

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"secview/internal/geom"
)

// ScreenLabel is a Label after projection, in framebuffer pixels.
type ScreenLabel struct {
	X, Y  int
	Text  string
	Color colorful.Color
}

// Framebuffer is a colour buffer with a depth buffer holding 1/z of the
// nearest fragment (0 means nothing drawn).
type Framebuffer struct {
	W, H   int
	Pix    []colorful.Color
	Depth  []float64
	Labels []ScreenLabel
}

func NewFramebuffer(w, h int) *Framebuffer {
	f := &Framebuffer{}
	f.Resize(w, h)
	return f
}

// Resize reallocates the buffers; contents are cleared.
func (f *Framebuffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.W, f.H = w, h
	f.Pix = make([]colorful.Color, w*h)
	f.Depth = make([]float64, w*h)
	f.Labels = nil
}

// Clear empties the colour, depth and label buffers.
func (f *Framebuffer) Clear() {
	for i := range f.Pix {
		f.Pix[i] = colorful.Color{}
		f.Depth[i] = 0
	}
	f.Labels = f.Labels[:0]
}

// At returns the pixel colour and whether anything was drawn there.
func (f *Framebuffer) At(x, y int) (colorful.Color, bool) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return colorful.Color{}, false
	}
	i := y*f.W + x
	return f.Pix[i], f.Depth[i] > 0
}

// Covered counts drawn pixels.
func (f *Framebuffer) Covered() int {
	n := 0
	for _, d := range f.Depth {
		if d > 0 {
			n++
		}
	}
	return n
}

func (f *Framebuffer) plot(x, y int, invZ float64, c colorful.Color) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	i := y*f.W + x
	if invZ > f.Depth[i] {
		f.Depth[i] = invZ
		f.Pix[i] = c
	}
}

type fragment struct {
	x, y float64
	invZ float64
}

func (f *Framebuffer) toScreen(cam *Camera, v r3.Vector) (fragment, bool) {
	nx, ny, ok := cam.ProjectView(v)
	if !ok {
		return fragment{}, false
	}
	return fragment{
		x:    (nx + 1) / 2 * float64(f.W),
		y:    (1 - ny) / 2 * float64(f.H),
		invZ: 1 / v.Z,
	}, true
}

// Render clears fb and draws the scene from cam.
func Render(fb *Framebuffer, s *Scene, cam *Camera) {
	fb.Clear()
	if fb.W == 0 || fb.H == 0 {
		return
	}
	for _, seg := range s.Grid.Lines {
		drawSegment(fb, cam, seg)
	}
	for i := range s.Meshes {
		drawMesh(fb, cam, &s.Meshes[i], s.Lights)
	}
	for _, l := range s.Labels {
		p, ok := fb.toScreen(cam, cam.ToView(l.Pos))
		if !ok {
			continue
		}
		x, y := int(math.Floor(p.x)), int(math.Floor(p.y))
		if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
			continue
		}
		fb.Labels = append(fb.Labels, ScreenLabel{X: x, Y: y, Text: l.Text, Color: l.Color})
	}
}

// clipNear moves a towards b until it sits on the near plane.
func clipNear(a, b r3.Vector, near float64) r3.Vector {
	t := (near - a.Z) / (b.Z - a.Z)
	return a.Add(b.Sub(a).Mul(t))
}

func drawSegment(fb *Framebuffer, cam *Camera, seg Segment) {
	va, vb := cam.ToView(seg.A), cam.ToView(seg.B)
	if va.Z < cam.Near && vb.Z < cam.Near {
		return
	}
	if va.Z < cam.Near {
		va = clipNear(va, vb, cam.Near)
	} else if vb.Z < cam.Near {
		vb = clipNear(vb, va, cam.Near)
	}
	a, okA := fb.toScreen(cam, va)
	b, okB := fb.toScreen(cam, vb)
	if !okA || !okB {
		return
	}
	steps := int(math.Ceil(math.Max(math.Abs(b.x-a.x), math.Abs(b.y-a.y))))
	if steps > 4*(fb.W+fb.H) {
		steps = 4 * (fb.W + fb.H)
	}
	if steps == 0 {
		fb.plot(int(a.x), int(a.y), a.invZ, seg.Color)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := a.x + (b.x-a.x)*t
		y := a.y + (b.y-a.y)*t
		fb.plot(int(math.Floor(x)), int(math.Floor(y)), a.invZ+(b.invZ-a.invZ)*t, seg.Color)
	}
}

func edge(a, b fragment, x, y float64) float64 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

func drawMesh(fb *Framebuffer, cam *Camera, m *Mesh, lights Lights) {
	mat := m.Material
	for _, tri := range m.Indices {
		a, b, c := m.Positions[tri[0]], m.Positions[tri[1]], m.Positions[tri[2]]
		var frags [3]fragment
		visible := true
		for k, p := range [3]r3.Vector{a, b, c} {
			f, ok := fb.toScreen(cam, cam.ToView(p))
			if !ok {
				visible = false
				break
			}
			frags[k] = f
		}
		if !visible {
			continue
		}
		n := geom.FaceNormal(a, b, c)
		sign := 1.0
		if n.Dot(cam.Position.Sub(a)) < 0 {
			if !mat.DoubleSided {
				continue
			}
			sign = -1
		}
		var cols [3]colorful.Color
		if mat.FlatShading {
			flat := lights.Shade(mat.Color, n.Mul(sign))
			cols = [3]colorful.Color{flat, flat, flat}
		} else {
			for k, vi := range tri {
				cols[k] = lights.Shade(mat.Color, m.Normals[vi].Mul(sign))
			}
		}
		fillTriangle(fb, frags, cols, mat.FlatShading)
	}
}

func fillTriangle(fb *Framebuffer, p [3]fragment, cols [3]colorful.Color, flat bool) {
	area := edge(p[0], p[1], p[2].x, p[2].y)
	if area == 0 {
		return
	}
	minX := int(math.Max(0, math.Floor(math.Min(p[0].x, math.Min(p[1].x, p[2].x)))))
	maxX := int(math.Min(float64(fb.W-1), math.Ceil(math.Max(p[0].x, math.Max(p[1].x, p[2].x)))))
	minY := int(math.Max(0, math.Floor(math.Min(p[0].y, math.Min(p[1].y, p[2].y)))))
	maxY := int(math.Min(float64(fb.H-1), math.Ceil(math.Max(p[0].y, math.Max(p[1].y, p[2].y)))))
	for y := minY; y <= maxY; y++ {
		cy := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			cx := float64(x) + 0.5
			w0 := edge(p[1], p[2], cx, cy) / area
			w1 := edge(p[2], p[0], cx, cy) / area
			w2 := edge(p[0], p[1], cx, cy) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			invZ := w0*p[0].invZ + w1*p[1].invZ + w2*p[2].invZ
			c := cols[0]
			if !flat {
				c = colorful.Color{
					R: w0*cols[0].R + w1*cols[1].R + w2*cols[2].R,
					G: w0*cols[0].G + w1*cols[1].G + w2*cols[2].G,
					B: w0*cols[0].B + w1*cols[1].B + w2*cols[2].B,
				}
			}
			fb.plot(x, y, invZ, c)
		}
	}
}
