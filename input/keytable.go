package input

import (
	"maps"

	"github.com/lixenwraith/gridui/terminal"
)

// KeyTable maps keys to navigation actions
// Bindings apply only while no item is selected; a selected item receives keys itself
type KeyTable struct {
	// Special keys (arrows, enter, ctrl+*)
	SpecialKeys map[terminal.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: arrows and hjkl move, enter selects
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]Action{
			terminal.KeyUp:     ActionMoveUp,
			terminal.KeyDown:   ActionMoveDown,
			terminal.KeyLeft:   ActionMoveLeft,
			terminal.KeyRight:  ActionMoveRight,
			terminal.KeyEnter:  ActionSelect,
			terminal.KeyEscape: ActionDeselect,
			terminal.KeyCtrlS:  ActionSave,
			terminal.KeyCtrlZ:  ActionUndo,
			terminal.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'k': ActionMoveUp,
			'j': ActionMoveDown,
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			'q': ActionQuit,
		},
	}
}

// Clone returns an independent copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup returns the action bound to a key event
func (kt *KeyTable) Lookup(ev terminal.Event) Action {
	if ev.Type != terminal.EventKey {
		return ActionNone
	}
	if ev.Key == terminal.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.SpecialKeys[ev.Key]
}

// Passthrough reports keys that must reach a selected item even when bound
// Escape and quit stay with the host so a selected item can always be left
func (kt *KeyTable) Passthrough(ev terminal.Event) bool {
	switch kt.Lookup(ev) {
	case ActionDeselect:
		return false
	case ActionQuit:
		return ev.Key == terminal.KeyRune
	}
	return true
}
