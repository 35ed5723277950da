package widgets

import (
	"strings"

	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
)

// TextBox is a bordered block of static text
type TextBox struct {
	Title     string
	Text      string
	Focusable bool
	Theme     tui.Theme
}

// NewTextBox returns a text box with the default theme
func NewTextBox(title, text string, focusable bool) *TextBox {
	return &TextBox{Title: title, Text: text, Focusable: focusable, Theme: tui.DefaultTheme}
}

func (b *TextBox) Clone() framework.Item {
	c := *b
	return &c
}

func (b *TextBox) Selectable() bool { return b.Focusable }

func (b *TextBox) Render(surface tui.Region, _ *framework.Context, area layout.Rect, popup bool, info framework.ItemInfo) {
	if popup {
		return
	}
	r := surface.Abs(area.X, area.Y, area.W, area.H)
	bg := b.Theme.Tint(info.Hover, info.Selected)
	r.Fill(bg)
	inner := r.Card(b.Title, b.Theme.Line, b.Theme.BorderColor(info.Hover, info.Selected))
	for y, line := range strings.Split(b.Text, "\n") {
		if y >= inner.H {
			break
		}
		inner.Text(0, y, tui.Truncate(line, inner.W, "…"), b.Theme.Fg, bg, terminal.AttrNone)
	}
}
