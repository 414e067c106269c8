package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r      rune
	fg, bg string
}

// canvas is a grid of styled terminal cells.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	w, h = max(0, w), max(0, h)
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

func (c *canvas) in(x, y int) bool { return x >= 0 && y >= 0 && x < c.w && y < c.h }

func (c *canvas) at(x, y int) *cell { return &c.cells[y*c.w+x] }

func (c *canvas) set(x, y int, r rune, fg string) {
	if !c.in(x, y) {
		return
	}
	p := c.at(x, y)
	p.r, p.fg = r, fg
}

func (c *canvas) setBg(x, y int, bg string) {
	if c.in(x, y) {
		c.at(x, y).bg = bg
	}
}

// text writes s starting at (x, y), clipped to the canvas.
func (c *canvas) text(x, y int, s string, fg string) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, fg)
	}
}

// String renders rows, styling runs of cells that share colours together.
func (c *canvas) String() string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		row := c.cells[y*c.w : (y+1)*c.w]
		for i := 0; i < len(row); {
			j := i
			var run []rune
			for j < len(row) && row[j].fg == row[i].fg && row[j].bg == row[i].bg {
				run = append(run, row[j].r)
				j++
			}
			sb.WriteString(styleFor(row[i].fg, row[i].bg).Render(string(run)))
			i = j
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func styleFor(fg, bg string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	return s
}
