package layout

// Rect is an axis-aligned cell rectangle in absolute screen coordinates
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle, negative sizes collapse to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty returns true if the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the first column past the rectangle
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span returns the rectangle's length along the given direction
func (r Rect) Span(dir Direction) int {
	if dir == Horizontal {
		return r.W
	}
	return r.H
}
