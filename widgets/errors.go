package widgets

import (
	"errors"

	"github.com/lixenwraith/gridui/layout"
)

var (
	ErrUnknownHeight   = errors.New("height not set")
	ErrNotEnoughHeight = errors.New("not enough height")
	ErrHeightMismatch  = errors.New("height does not match region")
	ErrNotEnoughWidth  = errors.New("not enough width")
	ErrUnknownWidth    = errors.New("width not set")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrZeroLength      = errors.New("grid needs at least one row and one column")

	// ErrNotEnoughLength is the layout error, re-exported for grid callers
	ErrNotEnoughLength = layout.ErrNotEnoughLength
)
