package widgets

import (
	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
)

// TextField is a single-line editor
// Positions count grapheme clusters; Width must be known before editing scrolls
type TextField struct {
	Title       string
	Placeholder string
	Theme       tui.Theme

	// Validate, when set, must accept the value before the field can be deselected
	Validate func(string) bool

	state    *tui.TextFieldState
	width    int
	hasWidth bool
}

// NewTextField returns an empty field
func NewTextField(title string) *TextField {
	return &TextField{Title: title, Theme: tui.DefaultTheme, state: &tui.TextFieldState{}}
}

func (f *TextField) Clone() framework.Item {
	c := *f
	c.state = f.st().Clone()
	return &c
}

func (f *TextField) st() *tui.TextFieldState {
	if f.state == nil {
		f.state = &tui.TextFieldState{}
	}
	return f.state
}

// Value returns the text
func (f *TextField) Value() string { return f.st().Value() }

// SetValue replaces the text and puts the cursor at the end
func (f *TextField) SetValue(s string) { f.st().SetValue(s) }

// Cursor returns the cursor cluster index
func (f *TextField) Cursor() int { return f.st().Cursor }

// Scroll returns the first visible cluster index
func (f *TextField) Scroll() int { return f.st().Scroll }

// SetWidth records the clusters visible at once
func (f *TextField) SetWidth(w int) {
	f.width = w
	f.hasWidth = true
}

// Update scrolls so the cursor is visible
func (f *TextField) Update() error {
	if !f.hasWidth {
		return ErrUnknownWidth
	}
	f.st().AdjustScroll(f.width)
	return nil
}

// Insert places s at cluster index and advances the cursor
func (f *TextField) Insert(index int, s string) error {
	f.st().InsertAt(index, s)
	return f.Update()
}

// Remove deletes the cluster before index
func (f *TextField) Remove(index int) error {
	if !f.st().RemoveBefore(index) {
		return nil
	}
	return f.Update()
}

// Push types r at the cursor
func (f *TextField) Push(r rune) error { return f.Insert(f.st().Cursor, string(r)) }

// Pop deletes the cluster before the cursor
func (f *TextField) Pop() error { return f.Remove(f.st().Cursor) }

func (f *TextField) Left() error {
	if f.st().Cursor == 0 {
		return nil
	}
	f.st().MoveLeft()
	return f.Update()
}

func (f *TextField) Right() error {
	if f.st().Cursor == f.st().Len() {
		return nil
	}
	f.st().MoveRight()
	return f.Update()
}

func (f *TextField) First() error {
	f.st().MoveToStart()
	return f.Update()
}

func (f *TextField) Last() error {
	f.st().MoveToEnd()
	return f.Update()
}

// Deselect refuses to release focus while Validate rejects the value
func (f *TextField) Deselect(_ *framework.Context) bool {
	return f.Validate == nil || f.Validate(f.Value())
}

func (f *TextField) Render(surface tui.Region, _ *framework.Context, area layout.Rect, popup bool, info framework.ItemInfo) {
	if popup {
		return
	}
	th := f.Theme
	r := surface.Abs(area.X, area.Y, area.W, area.H)
	bg := th.Tint(info.Hover, info.Selected)
	r.Fill(bg)
	border := th.BorderColor(info.Hover, info.Selected)
	if info.Selected && f.Validate != nil && !f.Validate(f.Value()) {
		border = th.Error
	}
	inner := r.Card(f.Title, th.Line, border)
	if inner.H < 1 {
		return
	}

	style := tui.TextFieldStyleFrom(th)
	style.TextBg = bg
	style.CursorBg = th.CursorBg
	style.CursorFg = th.Fg
	f.SetWidth(inner.W)
	inner.TextField(f.st(), tui.TextFieldOpts{
		Placeholder: f.Placeholder,
		Focused:     info.Selected,
		Style:       style,
	})
}

// KeyEvent edits the text; ctrl and word motions come from the shared field state
func (f *TextField) KeyEvent(_ *framework.Context, ev terminal.Event, _ framework.ItemInfo) error {
	switch ev.Key {
	case terminal.KeyRune, terminal.KeySpace:
		if ev.Modifiers&(terminal.ModCtrl|terminal.ModAlt) != 0 {
			return nil
		}
		return f.Push(ev.Rune)
	case terminal.KeyBackspace:
		return f.Pop()
	case terminal.KeyLeft:
		if ev.Modifiers&terminal.ModCtrl == 0 {
			return f.Left()
		}
	case terminal.KeyRight:
		if ev.Modifiers&terminal.ModCtrl == 0 {
			return f.Right()
		}
	case terminal.KeyHome:
		return f.First()
	case terminal.KeyEnd:
		return f.Last()
	}
	if f.st().HandleKey(ev) {
		return f.Update()
	}
	return nil
}
