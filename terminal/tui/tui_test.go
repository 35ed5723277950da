package tui

import (
	"testing"

	"github.com/lixenwraith/gridui/terminal"
	"github.com/stretchr/testify/assert"
)

func TestSubClipsToParent(t *testing.T) {
	root := NewCanvas(10, 5)
	sub := root.Sub(8, 3, 5, 5)
	assert.Equal(t, 8, sub.X)
	assert.Equal(t, 3, sub.Y)
	assert.Equal(t, 2, sub.W)
	assert.Equal(t, 2, sub.H)

	abs := root.Sub(2, 1, 6, 3).Abs(3, 2, 2, 2)
	assert.Equal(t, 3, abs.X)
	assert.Equal(t, 2, abs.Y)
	assert.Equal(t, 2, abs.W)
	assert.Equal(t, 2, abs.H)
}

func TestTextTruncatesAtEdge(t *testing.T) {
	root := NewCanvas(5, 1)
	n := root.Text(1, 0, "abcdef", terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	assert.Equal(t, 4, n)
	assert.Equal(t, " abcd", root.Row(0))
}

func TestTextWideRunes(t *testing.T) {
	root := NewCanvas(6, 1)
	n := root.Text(0, 0, "日本語", terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	assert.Equal(t, 6, n)
	assert.Equal(t, '日', root.At(0, 0).Rune)
	assert.Equal(t, rune(0), root.At(1, 0).Rune)
	assert.Equal(t, '本', root.At(2, 0).Rune)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5, "..."))
	assert.Equal(t, "he...", Truncate("hello world", 5, "..."))
	assert.Equal(t, "hell…", Truncate("hello world", 5, "…"))
	assert.Equal(t, "hello", Truncate("hello world", 5, ""))
	assert.Equal(t, "..", Truncate("hello world", 2, "..."))
	assert.Equal(t, "", Truncate("hello", 0, "..."))
}

func TestGraphemes(t *testing.T) {
	s := "e\u0301x" // e + combining acute, x
	assert.Equal(t, 2, GraphemeLen(s))
	assert.Equal(t, []string{"e\u0301", "x"}, Graphemes(s))
}

func TestBoxAndCard(t *testing.T) {
	root := NewCanvas(8, 3)
	inner := root.Card("T", LineSingle, terminal.RGB{R: 1})
	assert.Equal(t, "┌─ T ──┐", root.Row(0))
	assert.Equal(t, "│      │", root.Row(1))
	assert.Equal(t, "└──────┘", root.Row(2))
	assert.Equal(t, 6, inner.W)
	assert.Equal(t, 1, inner.H)
}

func TestJunctionRune(t *testing.T) {
	assert.Equal(t, '┼', JunctionRune(LineSingle, JunctionCross))
	assert.Equal(t, '╦', JunctionRune(LineDouble, JunctionDown))
	assert.Equal(t, '╭', JunctionRune(LineRounded, JunctionTopLeft))
	assert.Equal(t, '─', JunctionRune(LineType(42), JunctionHorizontal))
}

func TestThemeBorderColor(t *testing.T) {
	th := DefaultTheme
	assert.Equal(t, th.Selected, th.BorderColor(true, true))
	assert.Equal(t, th.Hover, th.BorderColor(true, false))
	assert.Equal(t, th.Border, th.BorderColor(false, false))
	assert.Equal(t, th.Bg, th.Tint(false, false))
	assert.NotEqual(t, th.Bg, th.Tint(true, false))
}

func TestTextFieldStateGraphemes(t *testing.T) {
	s := NewTextFieldState("e\u0301ab")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Cursor)

	s.MoveToStart()
	s.MoveRight()
	assert.True(t, s.DeleteBackward())
	assert.Equal(t, "ab", s.Value())

	s.InsertAt(99, "!")
	assert.Equal(t, "ab!", s.Value())
	assert.Equal(t, 1, s.Cursor, "cursor advances by one wherever the insert lands")

	before, at, after := s.Visible()
	assert.Equal(t, "a", before)
	assert.Equal(t, "b", at)
	assert.Equal(t, "!", after)

	s.MoveToEnd()
	_, at, _ = s.Visible()
	assert.Equal(t, " ", at)
}

func TestTextFieldStateWords(t *testing.T) {
	s := NewTextFieldState("foo bar_baz")
	s.MoveWordLeft()
	assert.Equal(t, 4, s.Cursor)
	s.MoveWordLeft()
	assert.Equal(t, 0, s.Cursor)
	s.MoveWordRight()
	assert.Equal(t, 4, s.Cursor)

	s.MoveToEnd()
	assert.True(t, s.DeleteWordBackward())
	assert.Equal(t, "foo ", s.Value())
	assert.True(t, s.HandleKey(terminal.KeyEvent(terminal.KeyCtrlU, 0, terminal.ModCtrl)))
	assert.Equal(t, "", s.Value())
}

func TestTextFieldStateScroll(t *testing.T) {
	s := NewTextFieldState("abcdefgh")
	s.AdjustScroll(4)
	assert.Equal(t, 5, s.Scroll)
	s.MoveToStart()
	s.AdjustScroll(4)
	assert.Equal(t, 0, s.Scroll)
}

func TestRegionTextField(t *testing.T) {
	root := NewCanvas(6, 1)
	s := NewTextFieldState("abcdefgh")
	n := root.TextField(s, TextFieldOpts{Prefix: "> ", Focused: true})
	assert.Equal(t, 4, n)
	assert.Equal(t, 5, s.Scroll)
	assert.Equal(t, ">◀fgh ", root.Row(0))

	root = NewCanvas(8, 1)
	root.TextField(NewTextFieldState(""), TextFieldOpts{Placeholder: "name"})
	assert.Equal(t, "name    ", root.Row(0))
}

func TestRegionList(t *testing.T) {
	root := NewCanvas(8, 2)
	items := []ListItem{{Text: "alpha", Icon: '>'}, {Text: "a very long row"}}
	n := root.List(items, 1, 0, ListOpts{CursorBg: terminal.RGB{R: 9}})
	assert.Equal(t, 2, n)
	assert.Equal(t, "> alpha ", root.Row(0))
	assert.Equal(t, "  a ver…", root.Row(1))
	assert.Equal(t, terminal.RGB{R: 9}, root.At(0, 1).Bg)
}
