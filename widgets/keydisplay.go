package widgets

import (
	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
)

// LastKey is the description of the most recent key, kept in the per-state store
type LastKey string

const noKey LastKey = "No keys pressed"

// RecordKey stores ev as the last key in the per-state tier
func RecordKey(data *framework.Data, ev terminal.Event) {
	framework.Set(data.State, LastKey(ev.String()))
}

// KeyDisplay shows the last key the host recorded
type KeyDisplay struct {
	Title string
	Theme tui.Theme
}

func NewKeyDisplay() *KeyDisplay {
	return &KeyDisplay{Title: "Key pressed", Theme: tui.DefaultTheme}
}

func (k *KeyDisplay) Clone() framework.Item {
	c := *k
	return &c
}

func (k *KeyDisplay) Selectable() bool { return false }

// LoadItem seeds the store so the first frame has something to show
func (k *KeyDisplay) LoadItem(ctx *framework.Context, _ framework.ItemInfo) error {
	if !framework.Has[LastKey](ctx.Data.State) {
		framework.Set(ctx.Data.State, noKey)
	}
	return nil
}

func (k *KeyDisplay) Render(surface tui.Region, ctx *framework.Context, area layout.Rect, popup bool, info framework.ItemInfo) {
	if popup {
		return
	}
	r := surface.Abs(area.X, area.Y, area.W, area.H)
	r.Fill(k.Theme.Bg)
	inner := r.Card(k.Title, k.Theme.Line, k.Theme.Border)
	text := string(framework.GetOr(ctx.Data.State, noKey))
	inner.Text(0, 0, tui.Truncate(text, inner.W, "…"), k.Theme.Accent, k.Theme.Bg, terminal.AttrBold)
}
