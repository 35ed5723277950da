package tui

import (
	"github.com/lixenwraith/gridui/terminal"
)

// TextFieldOpts configures text field rendering
type TextFieldOpts struct {
	Placeholder string // Shown when empty and unfocused
	Prefix      string // Left prompt (e.g., "> ")
	Mask        rune   // Password mask, 0 = none
	Focused     bool   // Show cursor
	Style       TextFieldStyle
}

// TextFieldStyle defines text field colors
type TextFieldStyle struct {
	TextFg        terminal.RGB
	TextBg        terminal.RGB
	CursorFg      terminal.RGB
	CursorBg      terminal.RGB
	PlaceholderFg terminal.RGB
	PrefixFg      terminal.RGB
}

// TextFieldStyleFrom derives field colors from a theme
func TextFieldStyleFrom(t Theme) TextFieldStyle {
	return TextFieldStyle{
		TextFg:        t.Fg,
		TextBg:        t.Bg,
		CursorFg:      t.Bg,
		CursorBg:      t.Fg,
		PlaceholderFg: t.Dim,
		PrefixFg:      t.Accent,
	}
}

// TextField renders one line of state on row 0 and returns the viewport width in clusters
// Scroll is adjusted so the cursor stays visible
func (r Region) TextField(state *TextFieldState, opts TextFieldOpts) int {
	if r.W < 1 || r.H < 1 {
		return 0
	}
	style := opts.Style

	for x := 0; x < r.W; x++ {
		r.Cell(x, 0, ' ', style.TextFg, style.TextBg, terminal.AttrNone)
	}

	x := r.Text(0, 0, opts.Prefix, style.PrefixFg, style.TextBg, terminal.AttrNone)
	viewportW := r.W - x
	if viewportW < 1 {
		return 0
	}
	state.AdjustScroll(viewportW)

	if state.Len() == 0 && opts.Placeholder != "" && !opts.Focused {
		r.Sub(x, 0, viewportW, 1).Text(0, 0, Truncate(opts.Placeholder, viewportW, "…"), style.PlaceholderFg, style.TextBg, terminal.AttrDim)
		return viewportW
	}

	if state.Scroll > 0 && x > 0 {
		r.Cell(x-1, 0, '◀', style.PlaceholderFg, style.TextBg, terminal.AttrNone)
	}

	col := x
	for i := state.Scroll; i <= state.Len() && col < r.W; i++ {
		fg, bg := style.TextFg, style.TextBg
		if opts.Focused && i == state.Cursor {
			fg, bg = style.CursorFg, style.CursorBg
		}
		cluster := " "
		if i < state.Len() {
			cluster = state.Text[i]
			if opts.Mask != 0 {
				cluster = string(opts.Mask)
			}
		} else if !opts.Focused {
			break
		}
		w := r.Text(col, 0, cluster, fg, bg, terminal.AttrNone)
		if w == 0 {
			break
		}
		col += w
	}

	if state.Scroll+viewportW < state.Len() {
		r.Cell(r.W-1, 0, '▶', style.PlaceholderFg, style.TextBg, terminal.AttrNone)
	}
	return viewportW
}
