package framework

import (
	"fmt"

	"github.com/lixenwraith/gridui/layout"
)

// Location addresses a grid slot, X is the column and Y the row
type Location struct {
	X, Y int
}

// Selectables is the compacted index of selectable items
// Rows keep grid order; a row with no selectable item is omitted entirely
type Selectables [][]Location

// Clone returns an independent copy
func (s Selectables) Clone() Selectables {
	if s == nil {
		return nil
	}
	out := make(Selectables, len(s))
	for i, row := range s {
		out[i] = append([]Location(nil), row...)
	}
	return out
}

// At resolves index coordinates to a grid location, ok is false when out of bounds
func (s Selectables) At(x, y int) (Location, bool) {
	if y < 0 || y >= len(s) || x < 0 || x >= len(s[y]) {
		return Location{}, false
	}
	return s[y][x], true
}

// RowItem is one item and its width rule
type RowItem struct {
	Item  Item
	Width layout.Constraint
}

// Row is an ordered run of items sharing a height rule
type Row struct {
	Items    []RowItem
	Centered bool
	Height   layout.Constraint
}

// State is the grid: rows of items plus their sizing rules
type State struct {
	Rows []Row
}

// NewState builds a grid from rows
func NewState(rows ...Row) State {
	return State{Rows: rows}
}

// Len returns the number of items across all rows
func (s *State) Len() int {
	n := 0
	for _, row := range s.Rows {
		n += len(row.Items)
	}
	return n
}

// Get returns the item at grid column x, row y
func (s *State) Get(x, y int) (Item, bool) {
	if y < 0 || y >= len(s.Rows) || x < 0 || x >= len(s.Rows[y].Items) {
		return nil, false
	}
	return s.Rows[y].Items[x].Item, true
}

// Item returns the item at loc, panics if loc is not a grid slot
// Callers resolve loc through Selectables, which only holds existing slots
func (s *State) Item(loc Location) Item {
	return s.Rows[loc.Y].Items[loc.X].Item
}

// Selectables derives the compacted selectables index in one pass
func (s *State) Selectables() Selectables {
	var sel Selectables
	for y, row := range s.Rows {
		var rowSel []Location
		for x, ri := range row.Items {
			if IsSelectable(ri.Item) {
				rowSel = append(rowSel, Location{X: x, Y: y})
			}
		}
		if len(rowSel) > 0 {
			sel = append(sel, rowSel)
		}
	}
	return sel
}

// Chunks computes one rectangle per item
// Rows stack from the top of area; unclaimed height falls to an invisible trailing band
// A centered row pads its left by floor((width - Σ widths)/2), the odd cell goes right
// Fails with layout.ErrNotEnoughLength when the rules need more space than area offers
func (s *State) Chunks(area layout.Rect) ([][]layout.Rect, error) {
	heights := make([]layout.Constraint, len(s.Rows))
	for i, row := range s.Rows {
		heights[i] = row.Height
	}

	bands, err := layout.Split(area, layout.Vertical, heights)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	chunks := make([][]layout.Rect, len(s.Rows))
	for y, row := range s.Rows {
		widths := make([]layout.Constraint, len(row.Items))
		for x, ri := range row.Items {
			widths[x] = ri.Width
		}

		var rects []layout.Rect
		if row.Centered {
			rects, err = layout.SplitCentered(bands[y], layout.Horizontal, widths)
		} else {
			rects, err = layout.Split(bands[y], layout.Horizontal, widths)
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		chunks[y] = rects
	}
	return chunks, nil
}

// Clone deep-copies the grid through each item's Clone
func (s *State) Clone() State {
	rows := make([]Row, len(s.Rows))
	for y, row := range s.Rows {
		items := make([]RowItem, len(row.Items))
		for x, ri := range row.Items {
			items[x] = RowItem{Width: ri.Width}
			if ri.Item != nil {
				items[x].Item = ri.Item.Clone()
			}
		}
		rows[y] = Row{Items: items, Centered: row.Centered, Height: row.Height}
	}
	return State{Rows: rows}
}
