package tui

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// blendHex mixes hex colour fg over bg at the given opacity. Colours that do
// not parse fall back to bg.
func blendHex(fg, bg string, opacity float64) string {
	b, err := colorful.Hex(bg)
	if err != nil {
		return bg
	}
	f, err := colorful.Hex(fg)
	if err != nil {
		return bg
	}
	if opacity >= 1 {
		return f.Hex()
	}
	return b.BlendRgb(f, opacity).Clamped().Hex()
}

// safeName keeps letters, digits, '-' and '_' so an id can name a file.
func safeName(s string) string {
	if s == "" {
		return "section"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
