package view2d

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"secview/internal/chart"
)

const tickSize = 6

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws the current shapes and axes as an SVG document.
func (v *View) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(int(math.Round(v.size.W)), int(math.Round(v.size.H)))
	for _, s := range v.shapes {
		xs := make([]int, len(s.Points))
		ys := make([]int, len(s.Points))
		for i, p := range s.Points {
			xs[i] = int(math.Round(p[0]))
			ys[i] = int(math.Round(p[1]))
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g;opacity:%g",
			s.Fill, s.Stroke, s.StrokeWidth, s.Opacity))
	}
	writeAxisSVG(canvas, v.xAxis)
	writeAxisSVG(canvas, v.yAxis)
	canvas.End()
	return ew.err
}

func writeAxisSVG(canvas *svg.SVG, a chart.Axis) {
	r := a.Scale.Range()
	off := int(math.Round(a.Offset))
	canvas.Gstyle("stroke:black;font-size:10px;font-family:sans-serif")
	switch a.Orient {
	case chart.Bottom:
		canvas.Line(int(r[0]), off, int(r[1]), off)
		for _, t := range a.Ticks {
			x := int(math.Round(t.Pos))
			canvas.Line(x, off, x, off+tickSize)
			canvas.Text(x, off+tickSize+10, t.Label, "stroke:none;text-anchor:middle")
		}
	case chart.Left:
		canvas.Line(off, int(r[0]), off, int(r[1]))
		for _, t := range a.Ticks {
			y := int(math.Round(t.Pos))
			canvas.Line(off-tickSize, y, off, y)
			canvas.Text(off-tickSize-2, y+3, t.Label, "stroke:none;text-anchor:end")
		}
	}
	canvas.Gend()
}
