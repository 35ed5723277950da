package widgets

import (
	"fmt"
	"testing"

	"github.com/lixenwraith/gridui/terminal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	return items
}

func TestTextList_NeedsHeight(t *testing.T) {
	l := NewTextList("", numbered(5))
	assert.ErrorIs(t, l.Down(), ErrUnknownHeight)
	assert.ErrorIs(t, l.PageDown(), ErrUnknownHeight)

	l = NewTextList("", numbered(5))
	l.SetHeight(2)
	assert.ErrorIs(t, l.Down(), ErrNotEnoughHeight)
}

func TestTextList_Navigation(t *testing.T) {
	l := NewTextList("", numbered(20))
	l.SetHeight(5)

	require.NoError(t, l.PageDown())
	assert.Equal(t, 3, l.Selected)
	assert.Equal(t, 3, l.Scroll)

	require.NoError(t, l.PageUp())
	assert.Equal(t, 0, l.Selected)
	assert.Equal(t, 0, l.Scroll)

	require.NoError(t, l.Last())
	assert.Equal(t, 19, l.Selected)
	assert.Equal(t, 17, l.Scroll)

	require.NoError(t, l.PageDown())
	require.NoError(t, l.Down())
	assert.Equal(t, 19, l.Selected)

	require.NoError(t, l.Up())
	assert.Equal(t, 18, l.Selected)
	assert.Equal(t, 17, l.Scroll)

	require.NoError(t, l.First())
	assert.Equal(t, 0, l.Selected)
	assert.Equal(t, 0, l.Scroll)
	require.NoError(t, l.Up())
	assert.Equal(t, 0, l.Selected)
}

func TestTextList_PageDownNearEnd(t *testing.T) {
	l := NewTextList("", numbered(20))
	l.SetHeight(5)
	l.Selected, l.Scroll = 15, 15

	require.NoError(t, l.PageDown())
	assert.Equal(t, 18, l.Selected)
	assert.Equal(t, 16, l.Scroll)

	require.NoError(t, l.PageDown())
	assert.Equal(t, 19, l.Selected)
}

func TestTextList_EmptyIsSafe(t *testing.T) {
	l := NewTextList("", nil)
	l.SetHeight(5)
	require.NoError(t, l.Down())
	require.NoError(t, l.Last())
	require.NoError(t, l.PageDown())
	_, ok := l.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, l.SetSelected(0), ErrIndexOutOfRange)
}

func TestTextList_SetItemsKeepsSelectionInRange(t *testing.T) {
	l := NewTextList("", numbered(10))
	l.SetHeight(5)
	require.NoError(t, l.Last())
	require.NoError(t, l.SetItems(numbered(4)))
	assert.Equal(t, 3, l.Selected)
	cur, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "item 3", cur)
}

func TestTextList_Draw(t *testing.T) {
	l := NewTextList("", []string{"a", "b", "c", "d"})
	l.Theme.Line = tui.LineSingle
	canvas := tui.NewCanvas(10, 5)

	assert.ErrorIs(t, l.Draw(canvas), ErrUnknownHeight)
	l.SetHeight(4)
	assert.ErrorIs(t, l.Draw(canvas), ErrHeightMismatch)

	l.SetHeight(5)
	require.NoError(t, l.Draw(canvas))
	assert.Equal(t, "┌────────┐", canvas.Row(0))
	assert.Equal(t, "│a       │", canvas.Row(1))
	assert.Equal(t, "└────────┘", canvas.Row(2))
	assert.Equal(t, " b        ", canvas.Row(3))
	assert.Equal(t, " c        ", canvas.Row(4))

	assert.True(t, l.MouseEvent(nil, 0, 4, 0, 4))
	assert.Equal(t, 1, l.Selected)
}

func TestTextList_Trim(t *testing.T) {
	tests := []struct {
		mode TrimMode
		want string
	}{
		{TrimFullTripleDot, "abc..."},
		{TrimShortTripleDot, "abcde…"},
		{TrimNone, "abcdef"},
	}
	for _, tt := range tests {
		l := NewTextList("", []string{"abcdefghij"})
		l.Trim = tt.mode
		l.SetHeight(3)
		canvas := tui.NewCanvas(8, 3)
		require.NoError(t, l.Draw(canvas))
		assert.Equal(t, tt.want, canvas.Sub(1, 1, 6, 1).Row(0))
	}
}

func TestTextList_AsciiOnly(t *testing.T) {
	l := NewTextList("", []string{"h\u00e9llo"})
	l.AsciiOnly = true
	l.SetHeight(3)
	canvas := tui.NewCanvas(10, 3)
	require.NoError(t, l.Draw(canvas))
	assert.Equal(t, "h?llo", canvas.Sub(1, 1, 5, 1).Row(0))
}

func TestTextList_DrawNeedsWidthForTail(t *testing.T) {
	l := NewTextList("", []string{"x"})
	l.SetHeight(3)
	assert.ErrorIs(t, l.Draw(tui.NewCanvas(4, 3)), ErrNotEnoughWidth)
}

func TestTextList_CloneIsIndependent(t *testing.T) {
	l := NewTextList("", []string{"a", "b"})
	c := l.Clone().(*TextList)
	c.Items[0] = "z"
	assert.Equal(t, "a", l.Items[0])
}
