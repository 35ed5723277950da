// Package tui provides immediate-mode drawing primitives over a terminal cell buffer.
//
// Core abstraction is Region, a rectangular window into a []terminal.Cell.
// All drawing is relative to the region and clipped to it, so an item can be
// handed the full frame and draw into a Sub or Abs region of it.
//
// Usage pattern:
//
//	root := tui.NewCanvas(w, h)
//	root.Fill(theme.Bg)
//
//	card := root.Abs(area.X, area.Y, area.W, area.H).Card("TITLE", tui.LineRounded, fg)
//	card.Text(0, 0, "Hello", fg, bg, terminal.AttrNone)
//
//	term.Flush(root.Cells, w, h)
package tui
