package terminal

import "github.com/gdamore/tcell/v2"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
	MouseBtnBack    // Button 4 (if supported)
	MouseBtnForward // Button 5 (if supported)
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// MouseMode controls which mouse events are reported (bitmask)
type MouseMode uint8

const (
	MouseModeNone   MouseMode = 0
	MouseModeClick  MouseMode = 1 << 0 // Press/release events
	MouseModeDrag   MouseMode = 1 << 1 // Drag events (button held + motion)
	MouseModeMotion MouseMode = 1 << 2 // All motion events
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	case MouseBtnBack:
		return "Back"
	case MouseBtnForward:
		return "Forward"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// mouseFromTcell resolves the reported button mask into a single button
// tcell reports state, not transitions, so an empty mask after a press is a release
func mouseFromTcell(mask tcell.ButtonMask, prev MouseButton) (MouseButton, MouseAction) {
	switch {
	case mask&tcell.WheelUp != 0:
		return MouseBtnWheelUp, MouseActionPress
	case mask&tcell.WheelDown != 0:
		return MouseBtnWheelDown, MouseActionPress
	case mask&tcell.Button1 != 0:
		return pressOrDrag(MouseBtnLeft, prev)
	case mask&tcell.Button3 != 0:
		return pressOrDrag(MouseBtnMiddle, prev)
	case mask&tcell.Button2 != 0:
		return pressOrDrag(MouseBtnRight, prev)
	case mask&tcell.Button4 != 0:
		return pressOrDrag(MouseBtnBack, prev)
	case mask&tcell.Button5 != 0:
		return pressOrDrag(MouseBtnForward, prev)
	}
	if prev != MouseBtnNone && prev != MouseBtnWheelUp && prev != MouseBtnWheelDown {
		return prev, MouseActionRelease
	}
	return MouseBtnNone, MouseActionMove
}

func pressOrDrag(btn, prev MouseButton) (MouseButton, MouseAction) {
	if btn == prev {
		return btn, MouseActionDrag
	}
	return btn, MouseActionPress
}

// mouseFlags converts MouseMode to tcell capture flags
func (m MouseMode) mouseFlags() tcell.MouseFlags {
	var flags tcell.MouseFlags
	if m&MouseModeClick != 0 {
		flags |= tcell.MouseButtonEvents
	}
	if m&MouseModeDrag != 0 {
		flags |= tcell.MouseDragEvents
	}
	if m&MouseModeMotion != 0 {
		flags |= tcell.MouseMotionEvents
	}
	return flags
}
