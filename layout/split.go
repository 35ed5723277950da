// Package layout computes cell rectangles from fixed, percentage and minimum
// sizing rules.
//
// A split lays bands out back to back from the start of the area. Whatever
// space the rules do not claim falls into an implicit zero-length trailing
// band, unless a Min rule is present, in which case Min bands grow to take it.
// A split whose rules need more space than the area offers fails with
// ErrNotEnoughLength instead of producing negative sizes.
package layout

import (
	"errors"
	"fmt"
)

// ErrNotEnoughLength is returned when the declared rules exceed the available span
var ErrNotEnoughLength = errors.New("not enough length")

// Direction selects the split axis
type Direction uint8

const (
	Vertical   Direction = iota // Bands stacked top to bottom
	Horizontal                  // Bands placed left to right
)

// Resolve converts constraints to lengths within span
// When grow is set, slack is shared between Min constraints, leftmost first for the remainder
func Resolve(constraints []Constraint, span int, grow bool) ([]int, error) {
	lengths := make([]int, len(constraints))
	sum := 0
	mins := 0
	for i, c := range constraints {
		lengths[i] = c.Apply(span)
		sum += lengths[i]
		if c.Kind == KindMin {
			mins++
		}
	}

	if sum > span {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughLength, sum, span)
	}

	slack := span - sum
	if !grow || mins == 0 || slack == 0 {
		return lengths, nil
	}

	share := slack / mins
	extra := slack % mins
	for i, c := range constraints {
		if c.Kind != KindMin {
			continue
		}
		lengths[i] += share
		if extra > 0 {
			lengths[i]++
			extra--
		}
	}
	return lengths, nil
}

// Split divides area along dir, one rectangle per constraint
func Split(area Rect, dir Direction, constraints []Constraint) ([]Rect, error) {
	lengths, err := Resolve(constraints, area.Span(dir), true)
	if err != nil {
		return nil, err
	}
	return place(area, dir, 0, lengths), nil
}

// SplitCentered divides area along dir with the bands centered as a group
// Min constraints keep their minimum so the group stays centered
// The leading pad is floor(slack/2); an odd cell lands in the trailing pad
func SplitCentered(area Rect, dir Direction, constraints []Constraint) ([]Rect, error) {
	lengths, err := Resolve(constraints, area.Span(dir), false)
	if err != nil {
		return nil, err
	}
	used := 0
	for _, l := range lengths {
		used += l
	}
	pad := (area.Span(dir) - used) / 2
	return place(area, dir, pad, lengths), nil
}

// place lays lengths back to back starting offset cells into area
func place(area Rect, dir Direction, offset int, lengths []int) []Rect {
	rects := make([]Rect, len(lengths))
	pos := offset
	for i, l := range lengths {
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + pos, Y: area.Y, W: l, H: area.H}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + pos, W: area.W, H: l}
		}
		pos += l
	}
	return rects
}
