package widgets

import (
	"maps"

	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
)

// Choices maps a menu title to the option last committed in it
// It lives in the per-state store so history restores it
type Choices map[string]string

func (c Choices) CloneValue() any { return maps.Clone(c) }

// Menu is a drop-down: selecting it opens a floating option list drawn on the popup pass
type Menu struct {
	Title   string
	Options []string
	Chosen  int
	Theme   tui.Theme

	cursor int
}

func NewMenu(title string, options ...string) *Menu {
	return &Menu{Title: title, Options: options, Theme: tui.DefaultTheme}
}

func (m *Menu) Clone() framework.Item {
	c := *m
	c.Options = append([]string(nil), m.Options...)
	return &c
}

// Value returns the committed option
func (m *Menu) Value() string {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

func (m *Menu) Selectable() bool { return len(m.Options) > 0 }

// Select opens the list on the committed option
func (m *Menu) Select(_ *framework.Context) bool {
	m.cursor = m.Chosen
	return true
}

func (m *Menu) Render(surface tui.Region, _ *framework.Context, area layout.Rect, popup bool, info framework.ItemInfo) {
	th := m.Theme
	if !popup {
		r := surface.Abs(area.X, area.Y, area.W, area.H)
		bg := th.Tint(info.Hover, info.Selected)
		r.Fill(bg)
		inner := r.Card(m.Title, th.Line, th.BorderColor(info.Hover, info.Selected))
		inner.Text(0, 0, tui.Truncate(m.Value(), inner.W-2, "…"), th.Fg, bg, terminal.AttrNone)
		inner.TextRight(0, "▾", th.Accent, bg, terminal.AttrNone)
		return
	}
	if !info.Selected {
		return
	}

	// Below the item when it fits, otherwise above
	h := len(m.Options) + 2
	y := area.Bottom()
	if y+h > surface.Y+surface.H && area.Y-h >= surface.Y {
		y = area.Y - h
	}
	pop := surface.Abs(area.X, y, area.W, h)
	pop.BoxFilled(th.Line, th.Selected, th.PopupBg)

	items := make([]tui.ListItem, len(m.Options))
	for i, opt := range m.Options {
		items[i] = tui.ListItem{Text: opt, TextStyle: tui.Style{Fg: th.Fg}}
		if i == m.Chosen {
			items[i].Icon = '•'
			items[i].IconFg = th.Accent
		}
	}
	inner := pop.Inset(1)
	scroll := max(m.cursor-inner.H+1, 0)
	inner.List(items, m.cursor, scroll, tui.ListOpts{CursorBg: th.CursorBg, DefaultBg: th.PopupBg})
}

// KeyEvent moves through the options; enter commits and closes, escape is left to the host
func (m *Menu) KeyEvent(ctx *framework.Context, ev terminal.Event, _ framework.ItemInfo) error {
	switch ev.Key {
	case terminal.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case terminal.KeyDown:
		if m.cursor < len(m.Options)-1 {
			m.cursor++
		}
	case terminal.KeyEnter:
		m.Chosen = m.cursor
		choices := framework.GetOr(ctx.Data.State, Choices{})
		choices = maps.Clone(choices)
		if choices == nil {
			choices = Choices{}
		}
		choices[m.Title] = m.Value()
		framework.Set(ctx.Data.State, choices)
		return ctx.Cursor.Deselect()
	}
	return nil
}
