package tui

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"

	"secview/internal/chart"
	"secview/internal/geom"
)

// renderPlot draws the 2D view into a w x h cell canvas. Fills are resolved
// per cell; strokes and axes go on the braille micro grid, where one view
// pixel is one micro-pixel.
func (m Model) renderPlot(w, h int) string {
	c := newCanvas(w, h)
	if m.plot == nil {
		return c.String()
	}
	br := newBrailleBuf(w, h)
	shapes := m.plot.Shapes()
	for i := range shapes {
		s := &shapes[i]
		fillRing(c, s.Points, blendHex(s.Fill, canvasBg, s.Opacity))
	}
	// strokes may run far off screen when zoomed in
	bound := geom.BBox{MinX: -4, MinY: -4, MaxX: float64(w*2 + 4), MaxY: float64(h*4 + 4)}.Bound()
	for i := range shapes {
		s := &shapes[i]
		br.pen = s.Stroke
		strokeRing(br, bound, s.Points, int(math.Round(s.StrokeWidth)))
	}
	xa, ya := m.plot.Axes()
	br.pen = axisColor
	drawAxisLines(br, xa)
	drawAxisLines(br, ya)
	br.overlay(c)
	drawAxisLabels(c, xa)
	drawAxisLabels(c, ya)
	return c.String()
}

// fillRing paints every cell whose centre lies inside ring, even-odd rule.
func fillRing(c *canvas, ring []geom.Vec2, bg string) {
	n := len(ring)
	if n < 3 {
		return
	}
	for cy := 0; cy < c.h; cy++ {
		yc := float64(cy*4 + 2)
		var xs []float64
		for i := 0; i < n; i++ {
			a, b := ring[i], ring[(i+1)%n]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			if (yc >= a[1] && yc < b[1]) || (yc >= b[1] && yc < a[1]) {
				t := (yc - a[1]) / (b[1] - a[1])
				xs = append(xs, a[0]+t*(b[0]-a[0]))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			// cells whose centre x = 2*cx+1 falls in the span
			x0 := int(math.Ceil((xs[i] - 1) / 2))
			x1 := int(math.Floor((xs[i+1] - 1) / 2))
			for cx := max(0, x0); cx <= min(c.w-1, x1); cx++ {
				c.setBg(cx, cy, bg)
			}
		}
	}
}

// strokeRing outlines the closed ring, clipped to bound.
func strokeRing(br *brailleBuf, bound orb.Bound, ring []geom.Vec2, width int) {
	if len(ring) < 2 {
		return
	}
	ls := make(orb.LineString, 0, len(ring)+1)
	ls = append(ls, ring...)
	ls = append(ls, ring[0])
	for _, part := range clip.LineString(bound, ls) {
		for i := 0; i+1 < len(part); i++ {
			a, b := part[i], part[i+1]
			br.drawLine(int(math.Floor(a[0])), int(math.Floor(a[1])), int(math.Floor(b[0])), int(math.Floor(b[1])), width)
		}
	}
}

func drawAxisLines(br *brailleBuf, a chart.Axis) {
	r := a.Scale.Range()
	off := int(math.Floor(a.Offset))
	lo, hi := int(math.Floor(math.Min(r[0], r[1]))), int(math.Floor(math.Max(r[0], r[1])))
	switch a.Orient {
	case chart.Bottom:
		br.drawLine(lo, off, hi, off, 1)
		for _, t := range a.Ticks {
			x := int(math.Floor(t.Pos))
			br.drawLine(x, off, x, off+2, 1)
		}
	case chart.Left:
		br.drawLine(off, lo, off, hi, 1)
		for _, t := range a.Ticks {
			y := int(math.Floor(t.Pos))
			br.drawLine(off-2, y, off, y, 1)
		}
	}
}

// drawAxisLabels writes tick labels below a bottom axis and to the left of
// a left axis, skipping labels that would overlap the previous one.
func drawAxisLabels(c *canvas, a chart.Axis) {
	off := int(math.Floor(a.Offset))
	next := math.MinInt
	for _, t := range a.Ticks {
		switch a.Orient {
		case chart.Bottom:
			x := int(math.Floor(t.Pos))/2 - len(t.Label)/2
			if x < next {
				continue
			}
			c.text(x, off/4+1, t.Label, axisColor)
			next = x + len(t.Label) + 1
		case chart.Left:
			x := off/2 - 1 - len(t.Label)
			c.text(max(0, x), int(math.Floor(t.Pos))/4, t.Label, axisColor)
		}
	}
}
