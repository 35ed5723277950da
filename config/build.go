package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal/tui"
	"github.com/lixenwraith/gridui/widgets"
)

// Item kinds accepted in [[rows.items]]
const (
	KindTextBox = "textbox"
	KindList    = "list"
	KindKeys    = "keys"
	KindField   = "field"
	KindMenu    = "menu"
	KindGrid    = "grid"
)

var trimModes = map[string]widgets.TrimMode{
	"":      widgets.TrimFullTripleDot,
	"full":  widgets.TrimFullTripleDot,
	"short": widgets.TrimShortTripleDot,
	"none":  widgets.TrimNone,
}

// Build turns the row descriptions into a grid of widgets painted with theme
func (c *Config) Build(theme tui.Theme) (framework.State, error) {
	rows := make([]framework.Row, 0, len(c.Rows))
	for y, rc := range c.Rows {
		row := framework.Row{Height: rc.Height, Centered: rc.Centered}
		for x, ic := range rc.Items {
			it, err := ic.build(theme)
			if err != nil {
				return framework.State{}, fmt.Errorf("rows[%d].items[%d]: %w", y, x, err)
			}
			row.Items = append(row.Items, framework.RowItem{Item: it, Width: ic.Width})
		}
		rows = append(rows, row)
	}
	return framework.NewState(rows...), nil
}

func (ic ItemConfig) build(theme tui.Theme) (framework.Item, error) {
	switch ic.Kind {
	case KindTextBox:
		focusable := true
		if ic.Focusable != nil {
			focusable = *ic.Focusable
		}
		b := widgets.NewTextBox(ic.Title, ic.Text, focusable)
		b.Theme = theme
		return b, nil

	case KindList:
		mode, ok := trimModes[strings.ToLower(ic.Trim)]
		if !ok {
			return nil, fmt.Errorf("list: unknown trim %q", ic.Trim)
		}
		l := widgets.NewTextList(ic.Title, append([]string(nil), ic.Entries...))
		l.Trim = mode
		l.AsciiOnly = ic.Ascii
		l.Theme = theme
		return l, nil

	case KindKeys:
		k := widgets.NewKeyDisplay()
		if ic.Title != "" {
			k.Title = ic.Title
		}
		k.Theme = theme
		return k, nil

	case KindField:
		f := widgets.NewTextField(ic.Title)
		f.Placeholder = ic.Placeholder
		f.Theme = theme
		if ic.Text != "" {
			f.SetValue(ic.Text)
		}
		if ic.Required {
			f.Validate = func(s string) bool { return strings.TrimSpace(s) != "" }
		}
		return f, nil

	case KindMenu:
		m := widgets.NewMenu(ic.Title, ic.Entries...)
		m.Theme = theme
		return m, nil

	case KindGrid:
		g, err := widgets.NewGrid(ic.Columns, ic.Cells)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		g.Labels = ic.Labels
		g.Theme = theme
		g.Fg = theme.Border
		g.Line = theme.Line
		return g, nil
	}
	return nil, fmt.Errorf("unknown kind %q", ic.Kind)
}

// DemoRows is the grid shown when the configuration declares none
func DemoRows() []RowConfig {
	numbers := make([]string, 99)
	for i := range numbers {
		numbers[i] = strconv.Itoa(i + 1)
	}
	return []RowConfig{
		{
			Height:   layout.Length(5),
			Centered: true,
			Items: []ItemConfig{
				{Kind: KindTextBox, Width: layout.Length(20), Title: "Left", Text: "Use the arrows\nto move"},
				{Kind: KindTextBox, Width: layout.Length(20), Title: "Right", Text: "Enter selects\nEscape leaves"},
			},
		},
		{
			Height: layout.Min(8),
			Items: []ItemConfig{
				{Kind: KindList, Width: layout.Percentage(30), Title: "Numbers", Entries: numbers},
				{Kind: KindKeys, Width: layout.Min(20), Title: "Last key"},
			},
		},
		{
			Height: layout.Length(3),
			Items: []ItemConfig{
				{Kind: KindField, Width: layout.Percentage(50), Title: "Name", Placeholder: "type here", Required: true},
				{Kind: KindMenu, Width: layout.Min(16), Title: "Color", Entries: []string{"red", "green", "blue"}},
			},
		},
	}
}
