package tui

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/gridui/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Junction sets for grids: tee pieces and cross, indexed by LineType
// Order: down-tee ┬, up-tee ┴, right-tee ├, left-tee ┤, cross ┼
var junctionChars = [...][5]rune{
	LineSingle:  {'┬', '┴', '├', '┤', '┼'},
	LineDouble:  {'╦', '╩', '╠', '╣', '╬'},
	LineRounded: {'┬', '┴', '├', '┤', '┼'},
	LineHeavy:   {'┳', '┻', '┣', '┫', '╋'},
	LineNone:    {' ', ' ', ' ', ' ', ' '},
}

// Junction identifies a grid line crossing
type Junction uint8

const (
	JunctionTopLeft Junction = iota
	JunctionTopRight
	JunctionBottomLeft
	JunctionBottomRight
	JunctionDown  // ┬
	JunctionUp    // ┴
	JunctionRight // ├
	JunctionLeft  // ┤
	JunctionCross // ┼
	JunctionHorizontal
	JunctionVertical
)

// JunctionRune returns the glyph for a crossing in the given line style
func JunctionRune(line LineType, j Junction) rune {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	switch j {
	case JunctionTopLeft:
		return boxChars[line][boxTL]
	case JunctionTopRight:
		return boxChars[line][boxTR]
	case JunctionBottomLeft:
		return boxChars[line][boxBL]
	case JunctionBottomRight:
		return boxChars[line][boxBR]
	case JunctionHorizontal:
		return boxChars[line][boxH]
	case JunctionVertical:
		return boxChars[line][boxV]
	default:
		return junctionChars[line][j-JunctionDown]
	}
}

// Box draws border around region edge
func (r Region) Box(line LineType, fg terminal.RGB) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]
	bg := terminal.RGB{} // Transparent (use existing bg)

	// Corners
	r.Cell(0, 0, chars[boxTL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, 0, chars[boxTR], fg, bg, terminal.AttrNone)
	r.Cell(0, r.H-1, chars[boxBL], fg, bg, terminal.AttrNone)
	r.Cell(r.W-1, r.H-1, chars[boxBR], fg, bg, terminal.AttrNone)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], fg, bg, terminal.AttrNone)
		r.Cell(x, r.H-1, chars[boxH], fg, bg, terminal.AttrNone)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], fg, bg, terminal.AttrNone)
		r.Cell(r.W-1, y, chars[boxV], fg, bg, terminal.AttrNone)
	}
}

// BoxFilled draws border and fills interior with background
func (r Region) BoxFilled(line LineType, fg, bg terminal.RGB) {
	r.Inset(1).Fill(bg)
	r.Box(line, fg)
}

// Card draws titled border and returns inner content region
func (r Region) Card(title string, line LineType, fg terminal.RGB) Region {
	r.Box(line, fg)

	if title != "" && r.W > 4 {
		displayTitle := Truncate(title, r.W-4, "…")
		titleX := (r.W - RuneLen(displayTitle) - 2) / 2
		r.Text(titleX, 0, " "+displayTitle+" ", fg, terminal.RGB{}, terminal.AttrBold)
	}

	return r.Inset(1)
}

// HLine draws horizontal line across region width at row y
func (r Region) HLine(y int, line LineType, fg terminal.RGB) {
	if y < 0 || y >= r.H {
		return
	}
	ch := JunctionRune(line, JunctionHorizontal)
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, fg, terminal.RGB{}, terminal.AttrNone)
	}
}

// VLine draws vertical line across region height at column x
func (r Region) VLine(x int, line LineType, fg terminal.RGB) {
	if x < 0 || x >= r.W {
		return
	}
	ch := JunctionRune(line, JunctionVertical)
	for y := 0; y < r.H; y++ {
		r.Cell(x, y, ch, fg, terminal.RGB{}, terminal.AttrNone)
	}
}

var lineNames = map[string]LineType{
	"single":  LineSingle,
	"double":  LineDouble,
	"rounded": LineRounded,
	"heavy":   LineHeavy,
	"none":    LineNone,
}

// String returns the line style name
func (l LineType) String() string {
	for name, lt := range lineNames {
		if lt == l {
			return name
		}
	}
	return "unknown"
}

// UnmarshalText accepts single, double, rounded, heavy or none
func (l *LineType) UnmarshalText(text []byte) error {
	lt, ok := lineNames[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("unknown line style %q", text)
	}
	*l = lt
	return nil
}
