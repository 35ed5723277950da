package input

// Action is a navigation command the host applies to the engine
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionSelect
	ActionDeselect
	ActionSave // Push a history snapshot
	ActionUndo // Revert the newest snapshot
	ActionQuit
)

// actionRegistry maps canonical action names to actions
// Used by the key config loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	"none":       ActionNone, // Unbind sentinel
	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"select":     ActionSelect,
	"deselect":   ActionDeselect,
	"save":       ActionSave,
	"undo":       ActionUndo,
	"quit":       ActionQuit,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}
