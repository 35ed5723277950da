package widgets

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
)

// Grid draws a ruled table; cells between the lines can carry labels
type Grid struct {
	Widths  []layout.Constraint
	Heights []layout.Constraint
	Labels  [][]string // Labels[row][col], missing entries are blank
	Line    tui.LineType
	Fg      terminal.RGB
	Theme   tui.Theme
}

// NewGrid fails with ErrZeroLength when either axis has no constraints
func NewGrid(widths, heights []layout.Constraint) (*Grid, error) {
	if len(widths) == 0 || len(heights) == 0 {
		return nil, ErrZeroLength
	}
	return &Grid{
		Widths:  widths,
		Heights: heights,
		Line:    tui.LineSingle,
		Fg:      tui.DefaultTheme.Border,
		Theme:   tui.DefaultTheme,
	}, nil
}

func (g *Grid) Clone() framework.Item {
	c := *g
	c.Widths = slices.Clone(g.Widths)
	c.Heights = slices.Clone(g.Heights)
	c.Labels = make([][]string, len(g.Labels))
	for i, row := range g.Labels {
		c.Labels[i] = slices.Clone(row)
	}
	return &c
}

func (g *Grid) Selectable() bool { return false }

// Lengths sizes cells along one axis of length cells, line cells excluded
// One cell per gap is reserved for the separating line, the last cell takes any remainder
func Lengths(constraints []layout.Constraint, length int) ([]int, error) {
	n := len(constraints)
	if n == 0 {
		return nil, ErrZeroLength
	}
	if length < n+1 {
		return nil, fmt.Errorf("length %d for %d cells: %w", length, n, ErrNotEnoughLength)
	}
	length -= n

	lengths := make([]int, n)
	sum := 0
	for i, c := range constraints {
		lengths[i] = c.Apply(length)
		sum += lengths[i]
	}
	if sum > length {
		return nil, fmt.Errorf("cells need %d, have %d: %w", sum, length, ErrNotEnoughLength)
	}
	lengths[n-1] += length - sum
	return lengths, nil
}

// Lines returns the positions of the ruling lines around cells of the given lengths
func Lines(pos int, lengths []int) []int {
	lines := make([]int, 0, len(lengths)+1)
	for _, l := range lengths {
		lines = append(lines, pos)
		pos += l + 1
	}
	return append(lines, pos)
}

// sizes returns cell widths and heights for an area of w by h
// Both axes drop one cell for the closing line
func (g *Grid) sizes(w, h int) (widths, heights []int, err error) {
	if widths, err = Lengths(g.Widths, w-1); err != nil {
		return nil, nil, fmt.Errorf("widths: %w", err)
	}
	if heights, err = Lengths(g.Heights, h-1); err != nil {
		return nil, nil, fmt.Errorf("heights: %w", err)
	}
	return widths, heights, nil
}

// Chunks returns the content rectangle of every cell, rows first
func (g *Grid) Chunks(area layout.Rect) ([][]layout.Rect, error) {
	widths, heights, err := g.sizes(area.W, area.H)
	if err != nil {
		return nil, err
	}
	xs := Lines(area.X, widths)
	ys := Lines(area.Y, heights)

	chunks := make([][]layout.Rect, len(heights))
	for row, h := range heights {
		chunks[row] = make([]layout.Rect, len(widths))
		for col, w := range widths {
			chunks[row][col] = layout.NewRect(xs[col]+1, ys[row]+1, w, h)
		}
	}
	return chunks, nil
}

// junction picks the glyph where a vertical and horizontal line meet
func junction(x, y, left, right, top, bottom int) tui.Junction {
	switch {
	case y == top && x == left:
		return tui.JunctionTopLeft
	case y == top && x == right:
		return tui.JunctionTopRight
	case y == top:
		return tui.JunctionDown
	case y == bottom && x == left:
		return tui.JunctionBottomLeft
	case y == bottom && x == right:
		return tui.JunctionBottomRight
	case y == bottom:
		return tui.JunctionUp
	case x == left:
		return tui.JunctionRight
	case x == right:
		return tui.JunctionLeft
	default:
		return tui.JunctionCross
	}
}

// Draw rules the grid over the whole of r
func (g *Grid) Draw(r tui.Region) error {
	widths, heights, err := g.sizes(r.W, r.H)
	if err != nil {
		return err
	}
	vs := Lines(0, widths)
	hs := Lines(0, heights)
	left, right := vs[0], vs[len(vs)-1]
	top, bottom := hs[0], hs[len(hs)-1]

	vertical := tui.JunctionRune(g.Line, tui.JunctionVertical)
	horizontal := tui.JunctionRune(g.Line, tui.JunctionHorizontal)

	for _, x := range vs {
		for y := top; y <= bottom; y++ {
			if !slices.Contains(hs, y) {
				r.Cell(x, y, vertical, g.Fg, terminal.RGB{}, terminal.AttrNone)
			}
		}
	}
	for _, y := range hs {
		for x := left; x <= right; x++ {
			ch := horizontal
			if slices.Contains(vs, x) {
				ch = tui.JunctionRune(g.Line, junction(x, y, left, right, top, bottom))
			}
			r.Cell(x, y, ch, g.Fg, terminal.RGB{}, terminal.AttrNone)
		}
	}
	return nil
}

func (g *Grid) Render(surface tui.Region, _ *framework.Context, area layout.Rect, popup bool, _ framework.ItemInfo) {
	if popup {
		return
	}
	r := surface.Abs(area.X, area.Y, area.W, area.H)
	if err := g.Draw(r); err != nil {
		r.Text(0, 0, "grid too small", g.Theme.Error, terminal.RGB{}, terminal.AttrNone)
		return
	}
	chunks, _ := g.Chunks(area)
	for row, cells := range chunks {
		if row >= len(g.Labels) {
			break
		}
		for col, rect := range cells {
			if col >= len(g.Labels[row]) || rect.H == 0 {
				continue
			}
			cell := surface.Abs(rect.X, rect.Y, rect.W, rect.H)
			cell.TextCenter((rect.H-1)/2, tui.Truncate(g.Labels[row][col], rect.W, "…"), g.Theme.Fg, terminal.RGB{}, terminal.AttrNone)
		}
	}
}
