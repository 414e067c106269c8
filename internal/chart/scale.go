// Package chart provides the planar chart primitives the 2D view is built
// on: linear domain->range scales, tick generation, axes and zoom transforms.
package chart

import (
	"math"
	"strconv"
)

// Linear maps a continuous domain onto a continuous range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a scale mapping domain[0]->rng[0] and domain[1]->rng[1].
func NewLinear(domain, rng [2]float64) Linear {
	return Linear{d0: domain[0], d1: domain[1], r0: rng[0], r1: rng[1]}
}

func (s Linear) Domain() [2]float64 { return [2]float64{s.d0, s.d1} }
func (s Linear) Range() [2]float64  { return [2]float64{s.r0, s.r1} }

// Map projects a domain value into the range. A collapsed domain maps every
// value to the middle of the range.
func (s Linear) Map(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// Invert maps a range value back into the domain.
func (s Linear) Invert(px float64) float64 {
	if s.r1 == s.r0 {
		return (s.d0 + s.d1) / 2
	}
	return s.d0 + (px-s.r0)/(s.r1-s.r0)*(s.d1-s.d0)
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// TickStep returns a 1, 2 or 5 times power-of-ten step that splits
// [start, stop] into roughly count intervals.
func TickStep(start, stop float64, count int) float64 {
	if count <= 0 || stop == start {
		return 0
	}
	step := math.Abs(stop-start) / float64(count)
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	return factor * math.Pow(10, power)
}

// Ticks returns round values inside the domain, ascending.
func (s Linear) Ticks(count int) []float64 {
	lo, hi := math.Min(s.d0, s.d1), math.Max(s.d0, s.d1)
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	step := TickStep(lo, hi, count)
	if step == 0 || math.IsNaN(step) {
		return nil
	}
	// dividing by the inverse keeps 0.1-style steps free of 0.30000000000000004
	power := math.Floor(math.Log10(step))
	var ticks []float64
	if power < 0 {
		inv := math.Round(1 / step)
		for i := math.Ceil(lo * inv); i <= math.Floor(hi*inv); i++ {
			ticks = append(ticks, i/inv)
		}
		return ticks
	}
	for i := math.Ceil(lo / step); i <= math.Floor(hi/step); i++ {
		ticks = append(ticks, i*step)
	}
	return ticks
}

// TickFormat formats a tick value with just enough precision for step.
func TickFormat(v, step float64) string {
	prec := 0
	if step > 0 && !math.IsInf(step, 0) {
		if p := -int(math.Floor(math.Log10(step) + 1e-9)); p > 0 {
			prec = p
		}
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
