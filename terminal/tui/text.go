package tui

import (
	"strings"

	"github.com/lixenwraith/gridui/terminal"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Text renders text at position, truncates at region edge
// Each grapheme cluster occupies its display width; wide clusters take two cells
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		w := runewidth.StringWidth(g.Str())
		if w == 0 {
			continue
		}
		if x+col+w > r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, runes[0], fg, bg, attr)
			for i := 1; i < w; i++ {
				r.Cell(x+col+i, y, 0, fg, bg, attr)
			}
		}
		col += w
	}
	return col
}

// TextStyled renders text using Style struct
func (r Region) TextStyled(x, y int, s string, style Style) int {
	return r.Text(x, y, s, style.Fg, style.Bg, style.Attr)
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	r.Text(r.W-RuneLen(s), y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	r.Text((r.W-RuneLen(s))/2, y, s, fg, bg, attr)
}

// RuneLen returns display width in cells
func RuneLen(s string) int {
	return runewidth.StringWidth(s)
}

// GraphemeLen returns the number of user-perceived characters
func GraphemeLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into grapheme clusters
func Graphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Truncate cuts s to at most maxW cells, appending tail when cut
// tail counts toward maxW; an empty tail hard-cuts
func Truncate(s string, maxW int, tail string) string {
	if maxW <= 0 {
		return ""
	}
	if RuneLen(s) <= maxW {
		return s
	}
	tailW := RuneLen(tail)
	if tailW >= maxW {
		return runewidth.Truncate(tail, maxW, "")
	}

	var b strings.Builder
	w := 0
	for _, cluster := range Graphemes(s) {
		cw := runewidth.StringWidth(cluster)
		if w+cw > maxW-tailW {
			break
		}
		b.WriteString(cluster)
		w += cw
	}
	b.WriteString(tail)
	return b.String()
}

// PadRight pads s with spaces to width cells
func PadRight(s string, width int) string {
	w := RuneLen(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
