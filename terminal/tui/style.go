package tui

import (
	"github.com/lixenwraith/gridui/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// DefaultStyle returns style with zero values (transparent bg)
func DefaultStyle(fg terminal.RGB) Style {
	return Style{Fg: fg}
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s.Fg.IsZero() && s.Bg.IsZero() && s.Attr == terminal.AttrNone
}

// Patch overlays the non-zero fields of other onto s
func (s Style) Patch(other Style) Style {
	if !other.Fg.IsZero() {
		s.Fg = other.Fg
	}
	if !other.Bg.IsZero() {
		s.Bg = other.Bg
	}
	s.Attr |= other.Attr
	return s
}
