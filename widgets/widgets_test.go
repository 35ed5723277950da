package widgets

import (
	"strings"
	"testing"

	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_PopupDrawsOverLaterRows(t *testing.T) {
	menu := NewMenu("mode", "one", "two")
	box := NewTextBox("", "under", false)
	fw := framework.New(framework.NewState(
		framework.Row{Height: layout.Length(3), Items: []framework.RowItem{{Item: menu, Width: layout.Length(12)}}},
		framework.Row{Height: layout.Length(5), Items: []framework.RowItem{{Item: box, Width: layout.Length(12)}}},
	))
	area := layout.NewRect(0, 0, 20, 10)

	canvas := tui.NewCanvas(20, 10)
	require.NoError(t, fw.Render(canvas, area))
	assert.True(t, strings.HasPrefix(canvas.Row(4), "│under"))
	assert.True(t, strings.HasPrefix(canvas.Row(1), "│one"))

	require.NoError(t, fw.Move(framework.DirDown))
	require.NoError(t, fw.Select())

	canvas = tui.NewCanvas(20, 10)
	require.NoError(t, fw.Render(canvas, area))
	assert.True(t, strings.HasPrefix(canvas.Row(4), "│• one"), canvas.Row(4))
	assert.True(t, strings.HasPrefix(canvas.Row(5), "│  two"), canvas.Row(5))

	require.NoError(t, fw.KeyInput(terminal.KeyEvent(terminal.KeyDown, 0, 0)))
	require.NoError(t, fw.KeyInput(terminal.KeyEvent(terminal.KeyEnter, 0, 0)))
	assert.Equal(t, "two", menu.Value())
	assert.True(t, fw.Cursor().IsHover(), "enter closes the menu")

	choices, ok := framework.Get[Choices](fw.Data().State)
	require.True(t, ok)
	assert.Equal(t, "two", choices["mode"])
}

func TestMenu_HistoryRestoresChoice(t *testing.T) {
	menu := NewMenu("mode", "one", "two")
	fw := framework.New(framework.NewState(
		framework.Row{Height: layout.Length(3), Items: []framework.RowItem{{Item: menu, Width: layout.Length(12)}}},
	))
	require.NoError(t, fw.Move(framework.DirUp))
	fw.PushHistory()

	require.NoError(t, fw.Select())
	require.NoError(t, fw.KeyInput(terminal.KeyEvent(terminal.KeyDown, 0, 0)))
	require.NoError(t, fw.KeyInput(terminal.KeyEvent(terminal.KeyEnter, 0, 0)))

	require.NoError(t, fw.RevertLastHistory())
	restored, ok := fw.State().Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, "one", restored.(*Menu).Value())
	assert.False(t, framework.Has[Choices](fw.Data().State))
}

func TestKeyDisplay(t *testing.T) {
	kd := NewKeyDisplay()
	kd.Theme.Line = tui.LineSingle
	fw := framework.New(framework.NewState(
		framework.Row{Height: layout.Length(3), Items: []framework.RowItem{{Item: kd, Width: layout.Length(30)}}},
	))
	assert.Empty(t, fw.Selectables())
	require.NoError(t, fw.Load())

	canvas := tui.NewCanvas(30, 3)
	require.NoError(t, fw.Render(canvas, layout.NewRect(0, 0, 30, 3)))
	assert.True(t, strings.HasPrefix(canvas.Row(1), "│No keys pressed"))

	RecordKey(fw.Data(), terminal.KeyEvent(terminal.KeyUp, 0, terminal.ModCtrl))
	require.NoError(t, fw.Load())
	require.NoError(t, fw.Render(canvas, layout.NewRect(0, 0, 30, 3)))
	assert.True(t, strings.HasPrefix(canvas.Row(1), "│ctrl+up "), canvas.Row(1))
}

func TestTextBox(t *testing.T) {
	b := NewTextBox("T", "line one\nline two\nline three", true)
	b.Theme.Line = tui.LineSingle
	assert.True(t, b.Selectable())

	canvas := tui.NewCanvas(8, 4)
	b.Render(canvas, nil, layout.NewRect(0, 0, 8, 4), false, framework.ItemInfo{})
	assert.Equal(t, "┌─ T ──┐", canvas.Row(0))
	assert.Equal(t, "│line …│", canvas.Row(1))
	assert.Equal(t, "└──────┘", canvas.Row(3))

	before := canvas.Row(1)
	b.Render(canvas, nil, layout.NewRect(0, 0, 8, 4), true, framework.ItemInfo{})
	assert.Equal(t, before, canvas.Row(1), "popup pass draws nothing")
}

func TestGridLengths(t *testing.T) {
	half := []layout.Constraint{layout.Percentage(50), layout.Percentage(50)}

	got, err := Lengths(half, 11)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, got)

	_, err = Lengths(half, 2)
	assert.ErrorIs(t, err, ErrNotEnoughLength)
	_, err = Lengths([]layout.Constraint{layout.Length(5)}, 4)
	assert.ErrorIs(t, err, ErrNotEnoughLength)
	_, err = Lengths(nil, 10)
	assert.ErrorIs(t, err, ErrZeroLength)

	assert.Equal(t, []int{0, 5, 11}, Lines(0, []int{4, 5}))
	assert.Equal(t, []int{3}, Lines(3, nil))
}

func TestGridDraw(t *testing.T) {
	_, err := NewGrid(nil, []layout.Constraint{layout.Length(1)})
	assert.ErrorIs(t, err, ErrZeroLength)

	g, err := NewGrid(
		[]layout.Constraint{layout.Percentage(50), layout.Percentage(50)},
		[]layout.Constraint{layout.Length(1), layout.Length(1)},
	)
	require.NoError(t, err)

	canvas := tui.NewCanvas(12, 5)
	require.NoError(t, g.Draw(canvas))
	assert.Equal(t, "┌────┬─────┐", canvas.Row(0))
	assert.Equal(t, "│    │     │", canvas.Row(1))
	assert.Equal(t, "├────┼─────┤", canvas.Row(2))
	assert.Equal(t, "└────┴─────┘", canvas.Row(4))

	chunks, err := g.Chunks(layout.NewRect(0, 0, 12, 5))
	require.NoError(t, err)
	assert.Equal(t, [][]layout.Rect{
		{layout.NewRect(1, 1, 4, 1), layout.NewRect(6, 1, 5, 1)},
		{layout.NewRect(1, 3, 4, 1), layout.NewRect(6, 3, 5, 1)},
	}, chunks)

	assert.ErrorIs(t, g.Draw(tui.NewCanvas(2, 5)), ErrNotEnoughLength)
}

func TestGridLabels(t *testing.T) {
	g, err := NewGrid(
		[]layout.Constraint{layout.Length(3), layout.Length(3)},
		[]layout.Constraint{layout.Length(1)},
	)
	require.NoError(t, err)
	g.Labels = [][]string{{"a", "bc"}}

	canvas := tui.NewCanvas(9, 3)
	g.Render(canvas, nil, layout.NewRect(0, 0, 9, 3), false, framework.ItemInfo{})
	assert.Equal(t, "│ a │bc │", canvas.Row(1))

	c := g.Clone().(*Grid)
	c.Labels[0][0] = "z"
	assert.Equal(t, "a", g.Labels[0][0])
}
