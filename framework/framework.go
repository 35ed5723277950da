package framework

import (
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
)

// Framework owns the grid, cursor, stores and history, and dispatches to items
// Not safe for concurrent use; the host drives it from one goroutine
type Framework struct {
	state       State
	selectables Selectables
	cursor      Cursor
	data        *Data
	history     History

	area    layout.Rect
	hasArea bool

	dispatching bool
	logger      *log.Logger
}

// Option configures a Framework at construction
type Option func(*Framework)

// WithLogger routes engine diagnostics to l
func WithLogger(l *log.Logger) Option {
	return func(f *Framework) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithGlobal seeds the global store tier
func WithGlobal(s *Store) Option {
	return func(f *Framework) {
		if s != nil {
			f.data.Global = s
		}
	}
}

// New builds an engine over state with the cursor at none
func New(state State, opts ...Option) *Framework {
	f := &Framework{
		state:  state,
		data:   NewData(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.selectables = f.state.Selectables()
	return f
}

// SetState replaces the grid and rebuilds the selectables index
// Cursor and both store tiers are left as they are
func (f *Framework) SetState(state State) {
	f.state = state
	f.selectables = f.state.Selectables()
}

func (f *Framework) Cursor() Cursor           { return f.cursor }
func (f *Framework) Selectables() Selectables { return f.selectables }
func (f *Framework) State() *State            { return &f.state }
func (f *Framework) Data() *Data              { return f.data }

// FrameArea returns the area of the last Render, ok is false before the first
func (f *Framework) FrameArea() (layout.Rect, bool) { return f.area, f.hasArea }

// info builds the callback snapshot for the item at loc
func (f *Framework) info(loc Location) ItemInfo {
	info := ItemInfo{Column: loc.X, Row: loc.Y}
	if h, ok := f.cursor.Hover(f.selectables); ok && h == loc {
		info.Hover = true
	}
	if s, ok := f.cursor.Selected(f.selectables); ok && s == loc {
		info.Selected = true
	}
	return info
}

// dispatch runs fn against the single item at loc with a context handle
func (f *Framework) dispatch(loc Location, fn func(ctx *Context, it Item)) {
	ctx, state, release := f.split()
	defer release()
	fn(ctx, state.Item(loc))
}

// Render records area and paints every item twice, base pass then popup pass
// A layout failure skips the frame and is returned after logging
func (f *Framework) Render(surface tui.Region, area layout.Rect) error {
	f.area = area
	f.hasArea = true

	chunks, err := f.state.Chunks(area)
	if err != nil {
		f.logger.Printf("render: skipping frame %dx%d: %v", area.W, area.H, err)
		return fmt.Errorf("render: %w", err)
	}

	for _, popup := range [2]bool{false, true} {
		for y, row := range f.state.Rows {
			for x, ri := range row.Items {
				r, ok := ri.Item.(Renderer)
				if !ok {
					continue
				}
				loc := Location{X: x, Y: y}
				info := f.info(loc)
				rect := chunks[y][x]
				f.dispatch(loc, func(ctx *Context, _ Item) {
					r.Render(surface, ctx, rect, popup, info)
				})
			}
		}
	}
	return nil
}

// KeyInput routes ev to the selected item, nothing happens when none is selected
func (f *Framework) KeyInput(ev terminal.Event) error {
	loc, ok := f.cursor.Selected(f.selectables)
	if !ok {
		return nil
	}
	var err error
	f.dispatch(loc, func(ctx *Context, it Item) {
		if h, ok := it.(KeyHandler); ok {
			err = h.KeyEvent(ctx, ev, ItemInfo{Selected: true, Column: loc.X, Row: loc.Y})
		}
	})
	if err != nil {
		return fmt.Errorf("key %s at (%d,%d): %w", ev, loc.X, loc.Y, err)
	}
	return nil
}

// MouseEvent resolves a click at absolute col, row against the last frame
// A click on the selected item goes to its handler, on the hovered item selects it,
// on another selectable item hovers it, and anywhere else clears the cursor
func (f *Framework) MouseEvent(col, row int) bool {
	if !f.hasArea {
		return false
	}
	chunks, err := f.state.Chunks(f.area)
	if err != nil {
		f.logger.Printf("mouse: layout of last frame failed: %v", err)
		return false
	}

	if loc, ok := f.cursor.Selected(f.selectables); ok {
		rect := chunks[loc.Y][loc.X]
		if rect.Contains(col, row) {
			handled := false
			f.dispatch(loc, func(ctx *Context, it Item) {
				if h, ok := it.(MouseHandler); ok {
					handled = h.MouseEvent(ctx, col-rect.X, row-rect.Y, col, row)
				}
			})
			return handled
		}
	}

	if loc, ok := f.cursor.Hover(f.selectables); ok && chunks[loc.Y][loc.X].Contains(col, row) {
		if err := f.Select(); err != nil {
			f.logger.Printf("mouse: select (%d,%d): %v", loc.X, loc.Y, err)
		}
		return true
	}

	for iy, selRow := range f.selectables {
		for ix, loc := range selRow {
			if chunks[loc.Y][loc.X].Contains(col, row) {
				f.cursor = HoverAt(ix, iy)
				return true
			}
		}
	}

	f.cursor = Cursor{}
	return false
}

// Move steps the cursor, fails with ErrMoveSelected while an item is selected
func (f *Framework) Move(dir Direction) error {
	return f.cursor.Move(dir, f.selectables)
}

// Select asks the hovered item to accept selection, then selects it
// A rejecting item leaves the cursor as it was
func (f *Framework) Select() error {
	loc, ok := f.cursor.Hover(f.selectables)
	if !ok {
		return fmt.Errorf("select: %w", ErrCursorStateMismatch)
	}
	accepted := true
	f.dispatch(loc, func(ctx *Context, it Item) {
		accepted = acceptSelect(it, ctx)
	})
	if !accepted {
		return nil
	}
	return f.cursor.Select()
}

// Deselect asks the selected item to release selection, then hovers it
// A selection left pointing past a replaced grid has no item to ask and is released directly
func (f *Framework) Deselect() error {
	if !f.cursor.IsSelected() {
		return fmt.Errorf("deselect: %w", ErrCursorStateMismatch)
	}
	loc, ok := f.cursor.Selected(f.selectables)
	if !ok {
		f.logger.Printf("deselect: %s no longer resolves, releasing", f.cursor)
		return f.cursor.Deselect()
	}
	accepted := true
	f.dispatch(loc, func(ctx *Context, it Item) {
		accepted = acceptDeselect(it, ctx)
	})
	if !accepted {
		return nil
	}
	return f.cursor.Deselect()
}

// Load runs every item's loader in grid order and stops at the first error
func (f *Framework) Load() error {
	for y, row := range f.state.Rows {
		for x := range row.Items {
			if err := f.loadAt(Location{X: x, Y: y}); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadOnly runs the loader of the item at grid column x, row y
func (f *Framework) LoadOnly(x, y int) error {
	if _, ok := f.state.Get(x, y); !ok {
		return fmt.Errorf("load (%d,%d): %w", x, y, ErrNoSuchItem)
	}
	return f.loadAt(Location{X: x, Y: y})
}

// LoadOnlyMultiple runs the loaders at locs, failures are logged and skipped
func (f *Framework) LoadOnlyMultiple(locs []Location) {
	for _, loc := range locs {
		if err := f.LoadOnly(loc.X, loc.Y); err != nil {
			f.logger.Printf("load: %v", err)
		}
	}
}

func (f *Framework) loadAt(loc Location) error {
	var err error
	info := f.info(loc)
	f.dispatch(loc, func(ctx *Context, it Item) {
		if l, ok := it.(Loader); ok {
			err = l.LoadItem(ctx, info)
		}
	})
	if err != nil {
		return fmt.Errorf("load (%d,%d): %w", loc.X, loc.Y, err)
	}
	return nil
}

// PushHistory saves a deep copy of grid, selectables, per-state store and cursor
func (f *Framework) PushHistory() {
	f.history.Push(Snapshot{
		Selectables: f.selectables.Clone(),
		State:       f.state.Clone(),
		Data:        f.data.State.Clone(),
		Cursor:      f.cursor,
	})
}

// PopHistory removes the newest snapshot without restoring it
func (f *Framework) PopHistory() (Snapshot, bool) {
	return f.history.Pop()
}

// RevertLastHistory restores and discards the newest snapshot
func (f *Framework) RevertLastHistory() error {
	s, ok := f.history.Pop()
	if !ok {
		return fmt.Errorf("revert last: %w", ErrNoSuchSave)
	}
	f.restore(s)
	return nil
}

// RevertHistory restores and discards the snapshot at index, oldest first
func (f *Framework) RevertHistory(index int) error {
	s, ok := f.history.Remove(index)
	if !ok {
		return fmt.Errorf("revert %d of %d: %w", index, f.history.Len(), ErrNoSuchSave)
	}
	f.restore(s)
	return nil
}

func (f *Framework) ClearHistory()   { f.history.Clear() }
func (f *Framework) HistoryLen() int { return f.history.Len() }

func (f *Framework) restore(s Snapshot) {
	f.selectables = s.Selectables
	f.state = s.State
	f.data.State = s.Data
	f.cursor = s.Cursor
	if f.data.State == nil {
		f.data.State = NewStore()
	}
}
