package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color, the zero value means "terminal default"
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// IsZero returns true for the default (unset) color
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Blend mixes c toward other by t (0.0-1.0) in Lab space
func (c RGB) Blend(other RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return RGB{R: r, G: g, B: bl}
}

// ParseHex parses "#rrggbb" or "rrggbb"
func ParseHex(s string) (RGB, bool) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

// Hex formats as "#rrggbb"
func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// tcellColor converts to a tcell color, zero maps to the terminal default
func (c RGB) tcellColor() tcell.Color {
	if c.IsZero() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// UnmarshalText accepts "#rrggbb", "rrggbb" or "#rgb"
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, ok := ParseHex(string(text))
	if !ok {
		return fmt.Errorf("invalid color %q", text)
	}
	*c = parsed
	return nil
}

// MarshalText writes "#rrggbb"
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}
