package framework

import "errors"

var (
	// ErrMoveSelected is returned when the cursor is moved while an item is selected
	ErrMoveSelected = errors.New("cannot move while an item is selected")

	// ErrCursorStateMismatch is returned by select/deselect from the wrong cursor state
	ErrCursorStateMismatch = errors.New("cursor state mismatch")

	// ErrNoSuchSave is returned when reverting history that does not exist
	ErrNoSuchSave = errors.New("no such history save")

	// ErrNoSuchItem is returned when a grid location does not address an item
	ErrNoSuchItem = errors.New("no such item")
)
