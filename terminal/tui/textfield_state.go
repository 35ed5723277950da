package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lixenwraith/gridui/terminal"
)

// isWordCluster returns true when a grapheme starts with a word-constituent rune
func isWordCluster(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// TextFieldState holds single-line edit state over grapheme clusters
// Cursor and Scroll count clusters, so a combining sequence moves as one character
type TextFieldState struct {
	Text   []string
	Cursor int // Cluster before which the cursor sits (0 = before first)
	Scroll int // First visible cluster
}

// NewTextFieldState creates state with the cursor at the end of initial
func NewTextFieldState(initial string) *TextFieldState {
	t := &TextFieldState{}
	t.SetValue(initial)
	return t
}

// --- Value access ---

// Value returns current text as string
func (t *TextFieldState) Value() string {
	return strings.Join(t.Text, "")
}

// Len returns the number of clusters
func (t *TextFieldState) Len() int {
	return len(t.Text)
}

// SetValue replaces text and moves cursor to end
func (t *TextFieldState) SetValue(s string) {
	t.Text = Graphemes(s)
	t.Cursor = len(t.Text)
	t.Scroll = 0
}

// Clear empties the field
func (t *TextFieldState) Clear() {
	t.Text = nil
	t.Cursor = 0
	t.Scroll = 0
}

// Clone returns an independent copy
func (t *TextFieldState) Clone() *TextFieldState {
	c := *t
	c.Text = append([]string(nil), t.Text...)
	return &c
}

// --- Insertion and deletion ---

// InsertAt places s at cluster index and advances the cursor by one
// index is clamped to the text
func (t *TextFieldState) InsertAt(index int, s string) {
	index = min(max(index, 0), len(t.Text))
	t.Text = append(t.Text[:index], append([]string{s}, t.Text[index:]...)...)
	t.Cursor++
	t.clampCursor()
}

// Insert adds s at the cursor
func (t *TextFieldState) Insert(s string) {
	t.InsertAt(t.Cursor, s)
}

// RemoveBefore removes the cluster before index and steps the cursor back
// Nothing happens when the cursor is at the start or index is out of range
func (t *TextFieldState) RemoveBefore(index int) bool {
	if t.Cursor == 0 || index <= 0 || index > len(t.Text) {
		return false
	}
	t.Text = append(t.Text[:index-1], t.Text[index:]...)
	t.Cursor--
	return true
}

// DeleteBackward removes the cluster before the cursor
func (t *TextFieldState) DeleteBackward() bool {
	return t.RemoveBefore(t.Cursor)
}

// DeleteForward removes the cluster at the cursor
func (t *TextFieldState) DeleteForward() bool {
	if t.Cursor < len(t.Text) {
		t.Text = append(t.Text[:t.Cursor], t.Text[t.Cursor+1:]...)
		return true
	}
	return false
}

// DeleteWordBackward removes the word before the cursor
func (t *TextFieldState) DeleteWordBackward() bool {
	if t.Cursor == 0 {
		return false
	}
	start := t.wordStart()
	if start == t.Cursor {
		start = t.Cursor - 1
	}
	t.Text = append(t.Text[:start], t.Text[t.Cursor:]...)
	t.Cursor = start
	return true
}

// DeleteToEnd removes from cursor to end
func (t *TextFieldState) DeleteToEnd() bool {
	if t.Cursor < len(t.Text) {
		t.Text = t.Text[:t.Cursor]
		return true
	}
	return false
}

// DeleteToStart removes from start to cursor
func (t *TextFieldState) DeleteToStart() bool {
	if t.Cursor > 0 {
		t.Text = t.Text[t.Cursor:]
		t.Cursor = 0
		t.Scroll = 0
		return true
	}
	return false
}

// --- Movement ---

func (t *TextFieldState) MoveLeft() {
	if t.Cursor > 0 {
		t.Cursor--
	}
}

func (t *TextFieldState) MoveRight() {
	if t.Cursor < len(t.Text) {
		t.Cursor++
	}
}

func (t *TextFieldState) MoveToStart() { t.Cursor = 0 }

func (t *TextFieldState) MoveToEnd() { t.Cursor = len(t.Text) }

// MoveWordLeft moves cursor to previous word boundary
func (t *TextFieldState) MoveWordLeft() {
	t.Cursor = t.wordStart()
}

// MoveWordRight moves cursor past the next word
func (t *TextFieldState) MoveWordRight() {
	for t.Cursor < len(t.Text) && isWordCluster(t.Text[t.Cursor]) {
		t.Cursor++
	}
	for t.Cursor < len(t.Text) && !isWordCluster(t.Text[t.Cursor]) {
		t.Cursor++
	}
}

func (t *TextFieldState) wordStart() int {
	i := t.Cursor
	for i > 0 && !isWordCluster(t.Text[i-1]) {
		i--
	}
	for i > 0 && isWordCluster(t.Text[i-1]) {
		i--
	}
	return i
}

func (t *TextFieldState) clampCursor() {
	t.Cursor = min(max(t.Cursor, 0), len(t.Text))
}

// --- Scroll management ---

// AdjustScroll keeps the cursor inside a viewport of width clusters
func (t *TextFieldState) AdjustScroll(width int) {
	if width <= 0 {
		return
	}
	if t.Scroll > t.Cursor {
		t.Scroll = t.Cursor
	} else if t.Scroll+width-1 < t.Cursor {
		t.Scroll = t.Cursor - width + 1
	}
	t.clampCursor()
}

// Visible returns the clusters before, at and after the cursor starting from Scroll
// at is a space when the cursor sits past the last cluster
func (t *TextFieldState) Visible() (before, at, after string) {
	scroll := min(t.Scroll, t.Cursor)
	before = strings.Join(t.Text[scroll:t.Cursor], "")
	if t.Cursor >= len(t.Text) {
		return before, " ", ""
	}
	return before, t.Text[t.Cursor], strings.Join(t.Text[t.Cursor+1:], "")
}

// --- Input handling ---

// HandleKey processes keyboard input, returns true if state changed
func (t *TextFieldState) HandleKey(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyLeft:
		if ev.Modifiers&terminal.ModCtrl != 0 {
			t.MoveWordLeft()
		} else {
			t.MoveLeft()
		}
		return true
	case terminal.KeyRight:
		if ev.Modifiers&terminal.ModCtrl != 0 {
			t.MoveWordRight()
		} else {
			t.MoveRight()
		}
		return true
	case terminal.KeyHome, terminal.KeyCtrlA:
		t.MoveToStart()
		return true
	case terminal.KeyEnd, terminal.KeyCtrlE:
		t.MoveToEnd()
		return true
	case terminal.KeyBackspace:
		return t.DeleteBackward()
	case terminal.KeyDelete:
		return t.DeleteForward()
	case terminal.KeyCtrlK:
		return t.DeleteToEnd()
	case terminal.KeyCtrlU:
		return t.DeleteToStart()
	case terminal.KeyCtrlW:
		return t.DeleteWordBackward()
	case terminal.KeySpace:
		t.Insert(" ")
		return true
	case terminal.KeyRune:
		if ev.Rune >= 32 {
			t.Insert(string(ev.Rune))
			return true
		}
	}
	return false
}
