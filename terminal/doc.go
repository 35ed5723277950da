// Package terminal is the host-side screen layer: cells, colors, keys, mouse
// events and a Terminal backed by tcell.
//
// Features:
//   - 24-bit RGB cells flushed to a tcell screen, tcell picks the palette
//   - Key and mouse events normalized into a single Event value
//   - Service polls input on its own goroutine and hands events over a channel
//   - Simulation screens plug in through NewFromScreen for tests
package terminal
