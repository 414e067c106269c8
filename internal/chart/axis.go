package chart

// Orient says which side of the plot an axis is drawn on.
type Orient int

const (
	Bottom Orient = iota
	Left
)

// DefaultTickCount is the tick density axes ask their scale for.
const DefaultTickCount = 10

// Tick is one labelled mark along an axis. Pos is in range units.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// Axis is a ticked line at Offset: the y position of a bottom axis or the x
// position of a left axis.
type Axis struct {
	Orient Orient
	Scale  Linear
	Offset float64
	Ticks  []Tick
}

// NewAxis lays out ticks for scale. Ticks that fall outside the range are
// dropped.
func NewAxis(orient Orient, scale Linear, offset float64, count int) Axis {
	a := Axis{Orient: orient, Scale: scale, Offset: offset}
	d := scale.Domain()
	step := TickStep(d[0], d[1], count)
	r := scale.Range()
	lo, hi := r[0], r[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	const eps = 1e-9
	for _, v := range scale.Ticks(count) {
		pos := scale.Map(v)
		if pos < lo-eps || pos > hi+eps {
			continue
		}
		a.Ticks = append(a.Ticks, Tick{Value: v, Pos: pos, Label: TickFormat(v, step)})
	}
	return a
}
