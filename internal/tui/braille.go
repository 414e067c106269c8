package tui

type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	fg   [][]string // per-cell colour of the last dot set
	pen  string
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	fg := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		fg[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, fg: fg}
}

var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) in the pen colour.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
	b.fg[cy][cx] = b.pen
}

// dot sets a square brush of the given width centred on (mx, my).
func (b *brailleBuf) dot(mx, my, width int) {
	r := (width - 1) / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			b.setPixel(mx+dx, my+dy)
		}
	}
}

// drawLine draws a line on the microgrid using Bresenham.
func (b *brailleBuf) drawLine(x0, y0, x1, y1, width int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.dot(x0, y0, width)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// overlay copies every non-empty braille cell onto c.
func (b *brailleBuf) overlay(c *canvas) {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if mask := b.m[y][x]; mask != 0 {
				c.set(x, y, rune(0x2800+int(mask)), b.fg[y][x])
			}
		}
	}
}
