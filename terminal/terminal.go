package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides screen access for the host loop
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns detected color capability
	ColorMode() ColorMode

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Clear fills screen with specified background color
	Clear(bg RGB)

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool)

	// MoveCursor positions cursor (0-indexed)
	MoveCursor(x, y int)

	// Sync forces full redraw
	Sync()

	// PollEvent blocks until next input event
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)

	// SetMouseMode enables/disables mouse event reporting
	SetMouseMode(mode MouseMode) error

	// Beep rings the terminal bell
	Beep()
}

// tcellTerm implements Terminal on top of a tcell screen
type tcellTerm struct {
	screen tcell.Screen
	events eventTranslator

	mu          sync.Mutex
	initialized bool
	finalized   bool
	cursorX     int
	cursorY     int
	cursorShown bool
}

// New creates a Terminal bound to the controlling tty
func New() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return &tcellTerm{screen: screen}, nil
}

// NewFromScreen wraps an existing tcell screen, tests pass a simulation screen
func NewFromScreen(screen tcell.Screen) Terminal {
	return &tcellTerm{screen: screen}
}

// Init enters raw mode and sets up terminal
func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

// Fini restores the terminal, later calls are no-ops
func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()
}

func (t *tcellTerm) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerm) ColorMode() ColorMode {
	if t.screen.Colors() >= 1<<24 {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// Flush copies the cell buffer to the screen and shows it
// Wide runes occupy two columns; the cell after one is skipped
func (t *tcellTerm) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			idx := row + x
			if idx >= len(cells) {
				break
			}
			c := cells[idx]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			t.screen.SetContent(x, y, ch, nil, cellStyle(c))
			if runewidth.RuneWidth(ch) == 2 {
				x++
			}
		}
	}
	t.screen.Show()
}

func (t *tcellTerm) Clear(bg RGB) {
	t.screen.Fill(' ', tcell.StyleDefault.Background(bg.tcellColor()))
	t.screen.Show()
}

func (t *tcellTerm) SetCursorVisible(visible bool) {
	t.mu.Lock()
	t.cursorShown = visible
	x, y := t.cursorX, t.cursorY
	t.mu.Unlock()

	if visible {
		t.screen.ShowCursor(x, y)
	} else {
		t.screen.HideCursor()
	}
}

func (t *tcellTerm) MoveCursor(x, y int) {
	t.mu.Lock()
	t.cursorX, t.cursorY = x, y
	shown := t.cursorShown
	t.mu.Unlock()

	if shown {
		t.screen.ShowCursor(x, y)
	}
}

func (t *tcellTerm) Sync() {
	t.screen.Sync()
}

// PollEvent blocks until an event the engine understands arrives
func (t *tcellTerm) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if e, ok := t.events.translate(ev); ok {
			return e
		}
	}
}

// PostEvent delivers a synthetic event through the screen's queue
func (t *tcellTerm) PostEvent(e Event) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(e))
}

func (t *tcellTerm) SetMouseMode(mode MouseMode) error {
	if mode == MouseModeNone {
		t.screen.DisableMouse()
		return nil
	}
	t.screen.EnableMouse(mode.mouseFlags())
	return nil
}

func (t *tcellTerm) Beep() {
	_ = t.screen.Beep()
}

// cellStyle converts cell colors and attributes to a tcell style
func cellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(c.Fg.tcellColor()).
		Background(c.Bg.tcellColor()).
		Bold(c.Attrs&AttrBold != 0).
		Dim(c.Attrs&AttrDim != 0).
		Italic(c.Attrs&AttrItalic != 0).
		Underline(c.Attrs&AttrUnderline != 0).
		Blink(c.Attrs&AttrBlink != 0).
		Reverse(c.Attrs&AttrReverse != 0)
}
