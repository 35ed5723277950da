package tui

import "github.com/lixenwraith/gridui/terminal"

// Theme defines semantic colors for grid items
type Theme struct {
	Bg       terminal.RGB
	Fg       terminal.RGB
	Dim      terminal.RGB
	Border   terminal.RGB
	Hover    terminal.RGB // Border of the hovered item
	Selected terminal.RGB // Border of the selected item
	CursorBg terminal.RGB // Highlight behind a list or field cursor
	Accent   terminal.RGB
	Error    terminal.RGB
	PopupBg  terminal.RGB

	Line LineType
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:       terminal.RGB{R: 20, G: 20, B: 30},
	Fg:       terminal.RGB{R: 200, G: 200, B: 200},
	Dim:      terminal.RGB{R: 100, G: 100, B: 100},
	Border:   terminal.RGB{R: 60, G: 80, B: 100},
	Hover:    terminal.RGB{R: 220, G: 90, B: 90},
	Selected: terminal.RGB{R: 100, G: 180, B: 240},
	CursorBg: terminal.RGB{R: 50, G: 50, B: 70},
	Accent:   terminal.RGB{R: 100, G: 200, B: 220},
	Error:    terminal.RGB{R: 255, G: 80, B: 80},
	PopupBg:  terminal.RGB{R: 30, G: 35, B: 45},
	Line:     LineRounded,
}

// BorderColor picks the border color for an item's cursor state
// Selected wins over hover
func (t Theme) BorderColor(hover, selected bool) terminal.RGB {
	switch {
	case selected:
		return t.Selected
	case hover:
		return t.Hover
	default:
		return t.Border
	}
}

// Tint returns the item background for a cursor state, a light blend toward the border color
func (t Theme) Tint(hover, selected bool) terminal.RGB {
	if !hover && !selected {
		return t.Bg
	}
	return t.Bg.Blend(t.BorderColor(hover, selected), 0.12)
}
