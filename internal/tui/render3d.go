package tui

// renderScene shows the last 3D frame using half blocks: each cell holds
// two vertically stacked framebuffer pixels.
func (m Model) renderScene(w, h int) string {
	c := newCanvas(w, h)
	if m.scene == nil {
		return c.String()
	}
	fb := m.scene.Framebuffer()
	for cy := 0; cy < h; cy++ {
		for x := 0; x < w; x++ {
			top, okT := fb.At(x, 2*cy)
			bot, okB := fb.At(x, 2*cy+1)
			switch {
			case okT && okB:
				c.set(x, cy, '▀', top.Hex())
				c.setBg(x, cy, bot.Hex())
			case okT:
				c.set(x, cy, '▀', top.Hex())
			case okB:
				c.set(x, cy, '▄', bot.Hex())
			}
		}
	}
	for _, l := range fb.Labels {
		c.text(l.X, l.Y/2, l.Text, l.Color.Hex())
	}
	return c.String()
}
