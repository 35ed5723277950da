package terminal

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTerm(t *testing.T, w, h int) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewFromScreen(sim)
	require.NoError(t, term.Init())
	sim.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, sim
}

func TestFlushWritesCells(t *testing.T) {
	term, sim := newSimTerm(t, 4, 2)

	cells := make([]Cell, 4*2)
	cells[0] = Cell{Rune: 'h', Fg: RGB{R: 255}}
	cells[1] = Cell{Rune: 'i'}
	cells[5] = Cell{Rune: 'x', Attrs: AttrBold}
	term.Flush(cells, 4, 2)

	contents, w, h := sim.GetContents()
	require.Equal(t, 4, w)
	require.Equal(t, 2, h)
	assert.Equal(t, []rune{'h'}, contents[0].Runes)
	assert.Equal(t, []rune{'i'}, contents[1].Runes)
	assert.Equal(t, []rune{'x'}, contents[5].Runes)
	assert.Equal(t, []rune{' '}, contents[2].Runes)

	_, _, attrs := contents[5].Style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)
}

func TestPollEventTranslatesKeys(t *testing.T) {
	term, sim := newSimTerm(t, 10, 5)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	ev := term.PollEvent()
	assert.Equal(t, EventKey, ev.Type)
	assert.Equal(t, KeyUp, ev.Key)

	ev = term.PollEvent()
	assert.Equal(t, KeyRune, ev.Key)
	assert.Equal(t, 'q', ev.Rune)

	ev = term.PollEvent()
	assert.Equal(t, KeyCtrlC, ev.Key)
	assert.Equal(t, "ctrl_c", ev.String())
}

func TestPollEventTranslatesMouse(t *testing.T) {
	term, sim := newSimTerm(t, 10, 5)
	require.NoError(t, term.SetMouseMode(MouseModeClick))

	sim.InjectMouse(3, 2, tcell.Button1, tcell.ModNone)
	sim.InjectMouse(3, 2, tcell.ButtonNone, tcell.ModNone)

	ev := term.PollEvent()
	require.Equal(t, EventMouse, ev.Type)
	assert.Equal(t, 3, ev.MouseX)
	assert.Equal(t, 2, ev.MouseY)
	assert.Equal(t, MouseBtnLeft, ev.MouseBtn)
	assert.Equal(t, MouseActionPress, ev.MouseAction)

	ev = term.PollEvent()
	assert.Equal(t, MouseBtnLeft, ev.MouseBtn)
	assert.Equal(t, MouseActionRelease, ev.MouseAction)
}

func TestPostEventRoundTrip(t *testing.T) {
	term, _ := newSimTerm(t, 10, 5)

	term.PostEvent(KeyEvent(KeyF5, 0, ModNone))
	ev := term.PollEvent()
	assert.Equal(t, KeyF5, ev.Key)
}

func TestServiceDeliversEvents(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	svc := NewService(NewFromScreen(sim))
	require.NoError(t, svc.Start())

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	ev := <-svc.Events()
	assert.Equal(t, KeyEnter, ev.Key)

	require.NoError(t, svc.Stop())
	require.NoError(t, svc.Stop())
}

func TestKeyNames(t *testing.T) {
	k, ok := KeyByName("page_down")
	require.True(t, ok)
	assert.Equal(t, KeyPageDown, k)

	k, ok = KeyByName("shift_tab")
	require.True(t, ok)
	assert.Equal(t, KeyBacktab, k)

	_, ok = KeyByName("nope")
	assert.False(t, ok)

	assert.Equal(t, "shift+up", KeyEvent(KeyUp, 0, ModShift).String())
	assert.Equal(t, "a", RuneEvent('a').String())
	assert.Equal(t, KeySpace, RuneEvent(' ').Key)
}

func TestKeyNameTableRoundTrip(t *testing.T) {
	for k, name := range keyToName {
		got, ok := KeyByName(name)
		require.True(t, ok, name)
		assert.Equal(t, k, got, name)
		assert.Equal(t, name, k.String())
	}
}

func TestSourcesAreFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, name := range files {
		src, err := os.ReadFile(name)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-clean", name)
	}
}

func TestBlend(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	assert.Equal(t, black, black.Blend(white, 0))
	assert.Equal(t, white, black.Blend(white, 1))

	mid := black.Blend(white, 0.5)
	assert.Greater(t, mid.R, uint8(0))
	assert.Less(t, mid.R, uint8(255))

	c, ok := ParseHex("#3c5064")
	require.True(t, ok)
	assert.Equal(t, RGB{R: 0x3c, G: 0x50, B: 0x64}, c)
	assert.Equal(t, "#3c5064", c.Hex())

	_, ok = ParseHex("zz")
	assert.False(t, ok)
}
