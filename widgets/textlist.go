package widgets

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
)

// TrimMode controls how rows wider than the list are cut
type TrimMode uint8

const (
	TrimFullTripleDot  TrimMode = iota // "..."
	TrimShortTripleDot                 // "…"
	TrimNone                           // hard cut
)

func (m TrimMode) tail() string {
	switch m {
	case TrimFullTripleDot:
		return "..."
	case TrimShortTripleDot:
		return "…"
	default:
		return ""
	}
}

// minListHeight fits the three-row cursor box
const minListHeight = 3

// TextList is a scrolling list whose current row is drawn inside a box
// Height must be set before moving; the host sets it every frame from the inner area
type TextList struct {
	Title string
	Items []string

	Selected int // Index of the current row
	Scroll   int // Index of the first visible row

	AsciiOnly       bool
	NonASCIIReplace rune
	Trim            TrimMode

	Style         tui.Style
	CursorStyle   tui.Style
	SelectedStyle tui.Style
	Theme         tui.Theme

	height    int
	hasHeight bool
}

// NewTextList returns a list over items with the default theme
func NewTextList(title string, items []string) *TextList {
	return &TextList{
		Title:           title,
		Items:           items,
		NonASCIIReplace: '?',
		Trim:            TrimFullTripleDot,
		Theme:           tui.DefaultTheme,
	}
}

func (l *TextList) Clone() framework.Item {
	c := *l
	c.Items = append([]string(nil), l.Items...)
	return &c
}

// SetHeight records the rows available to the list
func (l *TextList) SetHeight(h int) {
	l.height = h
	l.hasHeight = true
}

// Height returns the recorded height, ok is false until SetHeight
func (l *TextList) Height() (int, bool) {
	return l.height, l.hasHeight
}

// visibleRows is how many items fit with the cursor box taking three rows
func (l *TextList) visibleRows() (int, error) {
	if !l.hasHeight {
		return 0, ErrUnknownHeight
	}
	rows := l.height - 2
	if rows <= 0 {
		return 0, fmt.Errorf("height %d: %w", l.height, ErrNotEnoughHeight)
	}
	return rows, nil
}

// Update scrolls so the selected row is on screen
func (l *TextList) Update() error {
	rows, err := l.visibleRows()
	if err != nil {
		return err
	}
	if l.Selected < l.Scroll {
		l.Scroll = l.Selected
	} else if l.Scroll+rows <= l.Selected {
		l.Scroll = l.Selected - rows + 1
	}
	return nil
}

// SetItems replaces the rows, keeping the selection on an existing row
func (l *TextList) SetItems(items []string) error {
	l.Items = items
	if l.Selected >= len(items) {
		l.Selected = max(len(items)-1, 0)
	}
	if l.Scroll > l.Selected {
		l.Scroll = l.Selected
	}
	if l.hasHeight {
		return l.Update()
	}
	return nil
}

// SetSelected moves the cursor to index
func (l *TextList) SetSelected(index int) error {
	if index < 0 || index >= len(l.Items) {
		return fmt.Errorf("select %d of %d: %w", index, len(l.Items), ErrIndexOutOfRange)
	}
	l.Selected = index
	return l.Update()
}

// Up moves the cursor one row up
func (l *TextList) Up() error {
	if l.Selected == 0 {
		return nil
	}
	l.Selected--
	return l.Update()
}

// Down moves the cursor one row down
func (l *TextList) Down() error {
	if l.Selected >= len(l.Items)-1 {
		return nil
	}
	l.Selected++
	return l.Update()
}

// PageUp moves a page up keeping the cursor's screen row where possible
func (l *TextList) PageUp() error {
	if !l.hasHeight {
		return ErrUnknownHeight
	}
	if l.Selected == 0 {
		return nil
	}
	shift := max(l.height-2, 0)
	if l.Selected < shift {
		l.Selected = 0
	} else {
		l.Selected -= shift
		l.Scroll = max(l.Scroll-shift, 0)
	}
	return l.Update()
}

// PageDown moves a page down keeping the cursor's screen row where possible
func (l *TextList) PageDown() error {
	if !l.hasHeight {
		return ErrUnknownHeight
	}
	last := len(l.Items) - 1
	if l.Selected >= last {
		return nil
	}
	shift := max(l.height-2, 0)
	if l.Selected+shift > last {
		l.Selected = last
	} else {
		l.Selected += shift
		if l.Scroll+shift+l.height-2 < len(l.Items) {
			l.Scroll += shift
		} else {
			l.Scroll = max(last-l.height+2, 0)
		}
	}
	return l.Update()
}

// First moves the cursor to the first row
func (l *TextList) First() error {
	if l.Selected == 0 {
		return nil
	}
	l.Selected = 0
	return l.Update()
}

// Last moves the cursor to the last row
func (l *TextList) Last() error {
	last := len(l.Items) - 1
	if last < 0 || l.Selected == last {
		return nil
	}
	l.Selected = last
	return l.Update()
}

// Current returns the selected row text
func (l *TextList) Current() (string, bool) {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return "", false
	}
	return l.Items[l.Selected], true
}

func (l *TextList) prepare(s string, width int) string {
	if l.AsciiOnly {
		s = strings.Map(func(r rune) rune {
			if r > 0x7f {
				return l.NonASCIIReplace
			}
			return r
		}, s)
	}
	return tui.Truncate(s, width, l.Trim.tail())
}

// Draw paints the list into r, whose height must equal the recorded height
func (l *TextList) Draw(r tui.Region) error {
	if !l.hasHeight {
		return ErrUnknownHeight
	}
	if l.height != r.H {
		return fmt.Errorf("list height %d, region %d: %w", l.height, r.H, ErrHeightMismatch)
	}
	if r.H < minListHeight {
		return fmt.Errorf("height %d: %w", r.H, ErrNotEnoughHeight)
	}
	width := r.W - 2
	if width < tui.RuneLen(l.Trim.tail()) || width < 1 {
		return fmt.Errorf("width %d: %w", r.W, ErrNotEnoughWidth)
	}

	r.Fill(l.Style.Bg)

	end := min(l.Scroll+r.H-2, len(l.Items))
	y := 0
	for i := l.Scroll; i < end; i++ {
		text := l.prepare(l.Items[i], width)
		if i == l.Selected {
			box := r.Sub(0, y, r.W, 3)
			box.Box(l.Theme.Line, l.CursorStyle.Fg)
			box.TextStyled(1, 1, text, l.Style.Patch(l.SelectedStyle))
			y += 3
			continue
		}
		r.TextStyled(1, y, text, l.Style)
		y++
	}
	return nil
}

// rowAt maps a row inside the drawn list to an item index
func (l *TextList) rowAt(y int) (int, bool) {
	if y < 0 {
		return 0, false
	}
	row := 0
	end := min(l.Scroll+l.height-2, len(l.Items))
	for i := l.Scroll; i < end; i++ {
		h := 1
		if i == l.Selected {
			h = 3
		}
		if y < row+h {
			return i, true
		}
		row += h
	}
	return 0, false
}

func (l *TextList) Render(surface tui.Region, _ *framework.Context, area layout.Rect, popup bool, info framework.ItemInfo) {
	if popup {
		return
	}
	th := l.Theme
	r := surface.Abs(area.X, area.Y, area.W, area.H)
	bg := th.Tint(info.Hover, info.Selected)
	r.Fill(bg)
	inner := r.Card(l.Title, th.Line, th.BorderColor(info.Hover, info.Selected))

	l.Style = tui.Style{Fg: th.Dim, Bg: bg}
	l.CursorStyle = tui.Style{Fg: th.Border}
	l.SelectedStyle = tui.Style{Fg: th.Fg}
	if info.Selected {
		l.Style.Fg = th.Fg
		l.CursorStyle.Fg = th.Selected
		l.SelectedStyle = tui.Style{Fg: th.Accent, Attr: terminal.AttrBold}
	}

	l.SetHeight(inner.H)
	if err := l.Update(); err != nil {
		inner.Text(0, 0, "too small", th.Error, bg, terminal.AttrNone)
		return
	}
	if err := l.Draw(inner); err != nil {
		inner.Text(0, 0, "too small", th.Error, bg, terminal.AttrNone)
	}
}

// KeyEvent moves the cursor; shift+up and shift+down jump to the ends
func (l *TextList) KeyEvent(_ *framework.Context, ev terminal.Event, _ framework.ItemInfo) error {
	shift := ev.Modifiers&terminal.ModShift != 0
	switch ev.Key {
	case terminal.KeyUp:
		if shift {
			return l.First()
		}
		return l.Up()
	case terminal.KeyDown:
		if shift {
			return l.Last()
		}
		return l.Down()
	case terminal.KeyHome:
		return l.First()
	case terminal.KeyEnd:
		return l.Last()
	case terminal.KeyPageUp:
		return l.PageUp()
	case terminal.KeyPageDown:
		return l.PageDown()
	}
	return nil
}

// MouseEvent moves the cursor to the clicked row
func (l *TextList) MouseEvent(_ *framework.Context, _, relY, _, _ int) bool {
	if !l.hasHeight {
		return false
	}
	i, ok := l.rowAt(relY - 1)
	if !ok {
		return false
	}
	return l.SetSelected(i) == nil
}
