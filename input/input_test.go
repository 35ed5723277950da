package input

import (
	"testing"

	"github.com/lixenwraith/gridui/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()
	assert.Equal(t, ActionMoveUp, kt.Lookup(terminal.KeyEvent(terminal.KeyUp, 0, 0)))
	assert.Equal(t, ActionMoveLeft, kt.Lookup(terminal.RuneEvent('h')))
	assert.Equal(t, ActionSelect, kt.Lookup(terminal.KeyEvent(terminal.KeyEnter, 0, 0)))
	assert.Equal(t, ActionNone, kt.Lookup(terminal.RuneEvent('z')))
	assert.Equal(t, ActionNone, kt.Lookup(terminal.Event{Type: terminal.EventMouse}))
}

func TestPassthrough(t *testing.T) {
	kt := DefaultKeyTable()
	assert.False(t, kt.Passthrough(terminal.KeyEvent(terminal.KeyEscape, 0, 0)))
	assert.False(t, kt.Passthrough(terminal.KeyEvent(terminal.KeyCtrlC, 0, terminal.ModCtrl)))
	assert.True(t, kt.Passthrough(terminal.RuneEvent('q')), "typed q reaches a selected field")
	assert.True(t, kt.Passthrough(terminal.KeyEvent(terminal.KeyUp, 0, 0)))
}

func TestParseBindings(t *testing.T) {
	override, err := ParseBindings(map[string]string{
		"w":      "move_up",
		"space":  "select",
		"ctrl_s": "none",
		"F2":     " Undo ",
	})
	require.NoError(t, err)
	assert.Equal(t, ActionMoveUp, override.Runes['w'])
	assert.Equal(t, ActionSelect, override.SpecialKeys[terminal.KeySpace])
	assert.Equal(t, ActionUndo, override.SpecialKeys[terminal.KeyF2])

	merged := MergeKeyTable(DefaultKeyTable(), override)
	assert.Equal(t, ActionMoveUp, merged.Lookup(terminal.RuneEvent('w')))
	assert.Equal(t, ActionMoveUp, merged.Lookup(terminal.RuneEvent('k')), "defaults survive")
	_, bound := merged.SpecialKeys[terminal.KeyCtrlS]
	assert.False(t, bound, "none unbinds")

	_, stillBound := DefaultKeyTable().SpecialKeys[terminal.KeyCtrlS]
	assert.True(t, stillBound)
}

func TestParseBindingsErrors(t *testing.T) {
	_, err := ParseBindings(map[string]string{"w": "fly"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = ParseBindings(map[string]string{"hyper_x": "quit"})
	assert.ErrorContains(t, err, "unknown key name")
}

func TestActionNames(t *testing.T) {
	for name, a := range actionRegistry {
		assert.Equal(t, name, a.String())
		got, ok := ActionByName(name)
		require.True(t, ok)
		assert.Equal(t, a, got)
	}
}
