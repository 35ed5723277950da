// Package widgets provides grid items for the framework: text boxes, a
// scrolling list, a single-line editor, a drop-down menu, a last-key display
// and a bordered grid.
//
// Every widget draws itself from the ItemInfo it receives, so border and tint
// follow hover and selection without the widget tracking the cursor itself.
package widgets
