package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/lixenwraith/gridui/config"
	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGrid = `
[[rows]]
height = 3

  [[rows.items]]
  kind = "field"
  width = "20"
  title = "Name"

  [[rows.items]]
  kind = "textbox"
  width = "10"
  text = "b"

[[rows]]
height = 3

  [[rows.items]]
  kind = "keys"
  width = "30"
`

func newTestApp(t *testing.T) *app {
	t.Helper()
	cfg, err := config.Parse(testGrid)
	require.NoError(t, err)
	a, err := newApp(cfg, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	a.resize(40, 10)
	a.draw()
	return a
}

func key(k terminal.Key) terminal.Event { return terminal.KeyEvent(k, 0, terminal.ModNone) }

func TestAppMoveSelectDeselect(t *testing.T) {
	a := newTestApp(t)

	require.True(t, a.handle(key(terminal.KeyRight)))
	assert.Equal(t, framework.HoverAt(1, 0), a.fw.Cursor())

	a.handle(key(terminal.KeyLeft))
	a.handle(key(terminal.KeyEnter))
	assert.Equal(t, framework.SelectedAt(0, 0), a.fw.Cursor())

	a.handle(key(terminal.KeyEscape))
	assert.Equal(t, framework.HoverAt(0, 0), a.fw.Cursor())
}

func TestAppKeysReachSelectedField(t *testing.T) {
	a := newTestApp(t)
	a.handle(key(terminal.KeyLeft))
	a.handle(key(terminal.KeyEnter))

	// Bound runes pass through to the selected item
	for _, r := range "qj" {
		require.True(t, a.handle(terminal.RuneEvent(r)))
	}
	a.handle(key(terminal.KeyLeft))
	a.handle(terminal.RuneEvent('x'))

	field := a.fw.State().Rows[0].Items[0].Item.(*widgets.TextField)
	assert.Equal(t, "qxj", field.Value())
	assert.True(t, a.fw.Cursor().IsSelected())

	// Ctrl+C still quits
	assert.False(t, a.handle(terminal.KeyEvent(terminal.KeyCtrlC, 0, terminal.ModCtrl)))
}

func TestAppQuitRune(t *testing.T) {
	a := newTestApp(t)
	assert.False(t, a.handle(terminal.RuneEvent('q')))
}

func TestAppHistory(t *testing.T) {
	a := newTestApp(t)
	a.handle(key(terminal.KeyLeft))
	a.handle(terminal.KeyEvent(terminal.KeyCtrlS, 0, terminal.ModCtrl))
	require.Equal(t, 1, a.fw.HistoryLen())

	a.handle(key(terminal.KeyEnter))
	a.handle(terminal.RuneEvent('z'))
	a.handle(key(terminal.KeyEscape))
	a.handle(terminal.KeyEvent(terminal.KeyCtrlZ, 0, terminal.ModCtrl))

	field := a.fw.State().Rows[0].Items[0].Item.(*widgets.TextField)
	assert.Equal(t, "", field.Value())
	assert.Equal(t, framework.HoverAt(0, 0), a.fw.Cursor())
	assert.Equal(t, 0, a.fw.HistoryLen())
}

func TestAppMouse(t *testing.T) {
	a := newTestApp(t)

	click := terminal.Event{
		Type:        terminal.EventMouse,
		MouseX:      22,
		MouseY:      1,
		MouseBtn:    terminal.MouseBtnLeft,
		MouseAction: terminal.MouseActionPress,
	}
	a.handle(click)
	assert.Equal(t, framework.HoverAt(1, 0), a.fw.Cursor())

	a.handle(click)
	assert.Equal(t, framework.SelectedAt(1, 0), a.fw.Cursor())

	// Releases and disabled mouse are ignored
	a.mouse = false
	click.MouseX = 2
	a.handle(click)
	assert.Equal(t, framework.SelectedAt(1, 0), a.fw.Cursor())
}

func TestAppRecordsKeys(t *testing.T) {
	a := newTestApp(t)
	a.handle(key(terminal.KeyDown))
	got, ok := framework.Get[widgets.LastKey](a.fw.Data().State)
	require.True(t, ok)
	assert.Equal(t, widgets.LastKey("down"), got)

	frame := a.draw()
	assert.Contains(t, frame.Row(4), "down")
}

func TestAppTooSmall(t *testing.T) {
	a := newTestApp(t)
	a.handle(terminal.Event{Type: terminal.EventResize, Width: 12, Height: 2})
	frame := a.draw()
	assert.True(t, strings.HasPrefix(frame.Row(0), "terminal to"))
}

func TestLayoutCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"layout", "--width", "100", "--height", "30"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "(0,0) *widgets.TextBox")

	cmd = newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"layout", "--width", "10", "--height", "3"})
	assert.Error(t, cmd.Execute())
}
