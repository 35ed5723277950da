package terminal

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventPaste
	EventMouse
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError

	// Mouse event fields
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// KeyEvent builds a synthetic key event
func KeyEvent(k Key, r rune, mod Modifier) Event {
	return Event{Type: EventKey, Key: k, Rune: r, Modifiers: mod}
}

// RuneEvent builds a synthetic printable key event
func RuneEvent(r rune) Event {
	if r == ' ' {
		return Event{Type: EventKey, Key: KeySpace, Rune: ' '}
	}
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// String describes key events as "ctrl+shift+up" or "a", other events by type
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		var prefix string
		if e.Modifiers&ModCtrl != 0 && (e.Key < KeyCtrlA || e.Key > KeyCtrlZ) {
			prefix += "ctrl+"
		}
		if e.Modifiers&ModAlt != 0 {
			prefix += "alt+"
		}
		if e.Modifiers&ModShift != 0 {
			prefix += "shift+"
		}
		if e.Key == KeyRune {
			return prefix + string(e.Rune)
		}
		return prefix + e.Key.String()
	case EventMouse:
		return "mouse " + e.MouseBtn.String() + " " + e.MouseAction.String() +
			" (" + itoa(e.MouseX) + "," + itoa(e.MouseY) + ")"
	case EventResize:
		return "resize " + itoa(e.Width) + "x" + itoa(e.Height)
	case EventPaste:
		return "paste"
	case EventError:
		if e.Err != nil {
			return "error: " + e.Err.Error()
		}
		return "error"
	default:
		return "closed"
	}
}

// eventTranslator converts tcell events, tracking the last mouse button to derive release/drag
type eventTranslator struct {
	lastBtn MouseButton
}

// translate converts a tcell event, ok is false for events the engine does not consume
func (t *eventTranslator) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, r, mod := keyFromTcell(ev)
		if k == KeyNone {
			return Event{}, false
		}
		return Event{Type: EventKey, Key: k, Rune: r, Modifiers: mod}, true
	case *tcell.EventMouse:
		x, y := ev.Position()
		btn, action := mouseFromTcell(ev.Buttons(), t.lastBtn)
		t.lastBtn = btn
		if action == MouseActionRelease {
			t.lastBtn = MouseBtnNone
		}
		return Event{
			Type:        EventMouse,
			Modifiers:   modFromTcell(ev.Modifiers()),
			MouseX:      x,
			MouseY:      y,
			MouseBtn:    btn,
			MouseAction: action,
		}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventPaste:
		return Event{Type: EventPaste}, true
	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	case *tcell.EventInterrupt:
		if e, ok := ev.Data().(Event); ok {
			return e, true
		}
		return Event{}, false
	case nil:
		return Event{Type: EventClosed}, true
	}
	return Event{}, false
}

// itoa converts int to string without fmt dependency
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
