package view3d

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
)

const GridDivisions = 10

var (
	gridCentreColor = colorful.Color{R: 0.27, G: 0.27, B: 0.27}
	gridColor       = colorful.Color{R: 0.53, G: 0.53, B: 0.53}
	labelColor      = colorful.Color{R: 0, G: 0, B: 1}
	axisXColor      = colorful.Color{R: 1, G: 0, B: 0}
	axisYColor      = colorful.Color{R: 0, G: 0.5, B: 0}
	axisZColor      = colorful.Color{R: 0, G: 0, B: 1}
)

// Segment is a coloured line in world space.
type Segment struct {
	A, B  r3.Vector
	Color colorful.Color
}

// Label is text anchored at a world position.
type Label struct {
	Text  string
	Pos   r3.Vector
	Color colorful.Color
}

// Grid is a square of Divisions x Divisions cells lying in the horizontal
// plane through Center.
type Grid struct {
	Center    r3.Vector
	Size      float64
	Divisions int
	Lines     []Segment
}

// NewGrid builds the gridlines. The centre pair (index divisions/2, through
// center) uses centre, the rest use rest.
func NewGrid(center r3.Vector, size float64, divisions int, centre, rest colorful.Color) Grid {
	g := Grid{Center: center, Size: size, Divisions: divisions}
	if divisions <= 0 {
		return g
	}
	half := size / 2
	step := size / float64(divisions)
	for i := 0; i <= divisions; i++ {
		k := -half + float64(i)*step
		c := rest
		if i == divisions/2 {
			c = centre
		}
		g.Lines = append(g.Lines,
			Segment{
				A:     center.Add(r3.Vector{X: -half, Z: k}),
				B:     center.Add(r3.Vector{X: half, Z: k}),
				Color: c,
			},
			Segment{
				A:     center.Add(r3.Vector{X: k, Z: -half}),
				B:     center.Add(r3.Vector{X: k, Z: half}),
				Color: c,
			},
		)
	}
	return g
}

// Marks returns the coordinates of the division marks along X and Z.
func (g Grid) Marks() (xs, zs []float64) {
	if g.Divisions <= 0 {
		return nil, nil
	}
	half := g.Size / 2
	step := g.Size / float64(g.Divisions)
	for i := 0; i <= g.Divisions; i++ {
		xs = append(xs, g.Center.X-half+float64(i)*step)
		zs = append(zs, g.Center.Z-half+float64(i)*step)
	}
	return xs, zs
}

// Labels places a coordinate label at every division mark along the grid's
// near X edge and near Z edge, lifted off the plane.
func (g Grid) Labels(lift float64) []Label {
	xs, zs := g.Marks()
	if len(xs) == 0 {
		return nil
	}
	y := g.Center.Y + lift
	x0, z0 := xs[0], zs[0]
	labels := make([]Label, 0, len(xs)+len(zs))
	for _, x := range xs {
		labels = append(labels, Label{Text: fmt.Sprintf("%.3f", x), Pos: r3.Vector{X: x, Y: y, Z: z0}, Color: labelColor})
	}
	for _, z := range zs {
		labels = append(labels, Label{Text: fmt.Sprintf("%.3f", z), Pos: r3.Vector{X: x0, Y: y, Z: z}, Color: labelColor})
	}
	return labels
}

// axisLabels names the three axes half a scene width out from the centre,
// standing on the floor.
func axisLabels(center r3.Vector, floor, scale float64) []Label {
	half := scale / 2
	return []Label{
		{Text: "X", Pos: r3.Vector{X: center.X + half, Y: floor, Z: center.Z}, Color: axisXColor},
		{Text: "Y", Pos: r3.Vector{X: center.X, Y: floor + half, Z: center.Z}, Color: axisYColor},
		{Text: "Z", Pos: r3.Vector{X: center.X, Y: floor, Z: center.Z + half}, Color: axisZColor},
	}
}
