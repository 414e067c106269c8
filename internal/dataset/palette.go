package dataset

// Palette is the ten-colour categorical scheme sections cycle through.
var Palette = []string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// SectionColor returns the colour for the section at position i.
func SectionColor(i int) string {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}
