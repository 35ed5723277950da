package framework

import (
	"fmt"
	"math"
)

// Direction is a cursor movement step
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// CursorKind is the cursor state
type CursorKind uint8

const (
	CursorNone CursorKind = iota
	CursorHover
	CursorSelected
)

func (k CursorKind) String() string {
	switch k {
	case CursorNone:
		return "none"
	case CursorHover:
		return "hover"
	case CursorSelected:
		return "selected"
	default:
		return fmt.Sprintf("cursor(%d)", uint8(k))
	}
}

// Cursor tracks hover and selection in selectables-index coordinates
// X and Y are meaningless while Kind is CursorNone
type Cursor struct {
	Kind CursorKind
	X, Y int
}

// HoverAt returns a hover cursor at index coordinates x, y
func HoverAt(x, y int) Cursor { return Cursor{Kind: CursorHover, X: x, Y: y} }

// SelectedAt returns a selected cursor at index coordinates x, y
func SelectedAt(x, y int) Cursor { return Cursor{Kind: CursorSelected, X: x, Y: y} }

func (c Cursor) IsNone() bool     { return c.Kind == CursorNone }
func (c Cursor) IsHover() bool    { return c.Kind == CursorHover }
func (c Cursor) IsSelected() bool { return c.Kind == CursorSelected }

func (c Cursor) String() string {
	if c.Kind == CursorNone {
		return "none"
	}
	return fmt.Sprintf("%s(%d,%d)", c.Kind, c.X, c.Y)
}

// Move steps the cursor and clamps it to sel
// Entering from none, left/up land on the origin while right/down land on the far edge
func (c *Cursor) Move(dir Direction, sel Selectables) error {
	switch c.Kind {
	case CursorSelected:
		return ErrMoveSelected
	case CursorNone:
		switch dir {
		case DirLeft, DirUp:
			*c = HoverAt(0, 0)
		case DirRight:
			*c = HoverAt(math.MaxInt, 0)
		case DirDown:
			*c = HoverAt(0, math.MaxInt)
		}
	case CursorHover:
		switch dir {
		case DirLeft:
			if c.X > 0 {
				c.X--
			}
		case DirUp:
			if c.Y > 0 {
				c.Y--
			}
		case DirRight:
			if c.X < math.MaxInt {
				c.X++
			}
		case DirDown:
			if c.Y < math.MaxInt {
				c.Y++
			}
		}
	}
	c.clamp(sel)
	return nil
}

// clamp caps the row first, then the column against that row
func (c *Cursor) clamp(sel Selectables) {
	if c.Kind == CursorNone {
		return
	}
	if len(sel) == 0 {
		c.X, c.Y = 0, 0
		return
	}
	c.Y = min(max(c.Y, 0), len(sel)-1)
	c.X = min(max(c.X, 0), len(sel[c.Y])-1)
}

// Select promotes hover to selected
func (c *Cursor) Select() error {
	if c.Kind != CursorHover {
		return fmt.Errorf("select from %s: %w", c.Kind, ErrCursorStateMismatch)
	}
	c.Kind = CursorSelected
	return nil
}

// Deselect demotes selected to hover
func (c *Cursor) Deselect() error {
	if c.Kind != CursorSelected {
		return fmt.Errorf("deselect from %s: %w", c.Kind, ErrCursorStateMismatch)
	}
	c.Kind = CursorHover
	return nil
}

// Hover resolves the hovered grid location
func (c Cursor) Hover(sel Selectables) (Location, bool) {
	if c.Kind != CursorHover {
		return Location{}, false
	}
	return sel.At(c.X, c.Y)
}

// Selected resolves the selected grid location
func (c Cursor) Selected(sel Selectables) (Location, bool) {
	if c.Kind != CursorSelected {
		return Location{}, false
	}
	return sel.At(c.X, c.Y)
}
