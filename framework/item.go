package framework

import (
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
)

// ItemInfo is the cursor-state snapshot handed to item callbacks
// Column and Row are grid coordinates, not selectables-index coordinates
type ItemInfo struct {
	Selected bool
	Hover    bool
	Column   int
	Row      int
}

// Item is anything placed in the grid
// Clone must return an independent deep copy; history snapshots rely on it
// Items should be pointer types so hook mutations persist in the grid
type Item interface {
	Clone() Item
}

// Selectable reports whether the cursor may rest on the item, default true
type Selectable interface {
	Selectable() bool
}

// SelectHook is consulted before the cursor selects the item
// Returning false rejects the selection without error
type SelectHook interface {
	Select(ctx *Context) bool
}

// DeselectHook is consulted before the cursor deselects the item
type DeselectHook interface {
	Deselect(ctx *Context) bool
}

// Renderer paints the item
// surface is the whole frame; area is the item's rectangle in absolute cells
// popup is true on the second pass, items without overlays return immediately
type Renderer interface {
	Render(surface tui.Region, ctx *Context, area layout.Rect, popup bool, info ItemInfo)
}

// Loader runs on Framework.Load and its variants
type Loader interface {
	LoadItem(ctx *Context, info ItemInfo) error
}

// KeyHandler receives key events while the item is selected
type KeyHandler interface {
	KeyEvent(ctx *Context, ev terminal.Event, info ItemInfo) error
}

// MouseHandler receives clicks inside the item while it is selected
// rel coordinates are relative to the item's rectangle, abs to the frame
type MouseHandler interface {
	MouseEvent(ctx *Context, relX, relY, absX, absY int) bool
}

// IsSelectable applies the Selectable default
func IsSelectable(it Item) bool {
	if s, ok := it.(Selectable); ok {
		return s.Selectable()
	}
	return true
}

func acceptSelect(it Item, ctx *Context) bool {
	if h, ok := it.(SelectHook); ok {
		return h.Select(ctx)
	}
	return true
}

func acceptDeselect(it Item, ctx *Context) bool {
	if h, ok := it.(DeselectHook); ok {
		return h.Deselect(ctx)
	}
	return true
}
