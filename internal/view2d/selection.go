package view2d

import (
	"fmt"

	"secview/internal/dataset"
)

// Select makes poly the single selection: the previous shape reverts to the
// default stroke, poly gets the emphasised stroke, and its JSON goes to the
// detail sink. Selecting the current selection again does nothing.
func (v *View) Select(poly *dataset.Polygon) error {
	if poly == nil || poly == v.state.Selected {
		return nil
	}
	prev := v.state.Selected
	v.state.Selected = poly
	for i := range v.shapes {
		switch v.shapes[i].Polygon {
		case prev:
			v.shapes[i].StrokeWidth = DefaultStroke
		case poly:
			v.shapes[i].StrokeWidth = SelectedStroke
		}
	}
	detail, err := dataset.MarshalDetail(poly)
	if err != nil {
		return fmt.Errorf("serialise selection: %w", err)
	}
	if v.sink != nil {
		v.sink.SetDetail(detail)
	}
	return nil
}

// hoveredIndex returns the index of the hovered shape, or -1.
func (v *View) hoveredIndex() int {
	for i := range v.shapes {
		if v.shapes[i].Polygon == v.state.Hovered {
			return i
		}
	}
	return -1
}

// CycleHover moves the hover to the next (or previous) shape in draw order,
// for keyboard-only navigation.
func (v *View) CycleHover(step int) *dataset.Polygon {
	n := len(v.shapes)
	if n == 0 {
		return nil
	}
	i := v.hoveredIndex()
	if i < 0 {
		if step < 0 {
			i = 0
		} else {
			i = -1
		}
	}
	i = ((i+step)%n + n) % n
	v.SetHovered(v.shapes[i].Polygon)
	return v.shapes[i].Polygon
}
