// Package config loads the host configuration and the declarative grid from TOML.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/gridui/input"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
)

// Config is the full host configuration
type Config struct {
	Mouse bool              `toml:"mouse"`
	Log   LogConfig         `toml:"log"`
	Keys  map[string]string `toml:"keys"`
	Theme ThemeConfig       `toml:"theme"`
	Rows  []RowConfig       `toml:"rows"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Debug      bool   `toml:"debug"` // Route engine diagnostics to the log
}

// ThemeConfig overrides theme colors, unset fields keep the default
type ThemeConfig struct {
	Bg       *terminal.RGB `toml:"bg"`
	Fg       *terminal.RGB `toml:"fg"`
	Dim      *terminal.RGB `toml:"dim"`
	Border   *terminal.RGB `toml:"border"`
	Hover    *terminal.RGB `toml:"hover"`
	Selected *terminal.RGB `toml:"selected"`
	CursorBg *terminal.RGB `toml:"cursor_bg"`
	Accent   *terminal.RGB `toml:"accent"`
	Error    *terminal.RGB `toml:"error"`
	PopupBg  *terminal.RGB `toml:"popup_bg"`
	Line     *tui.LineType `toml:"line"`
}

// RowConfig describes one grid row
type RowConfig struct {
	Height   layout.Constraint `toml:"height"`
	Centered bool              `toml:"centered"`
	Items    []ItemConfig      `toml:"items"`
}

// ItemConfig describes one widget; fields apply per Kind
type ItemConfig struct {
	Kind  string            `toml:"kind"`
	Width layout.Constraint `toml:"width"`
	Title string            `toml:"title"`

	// textbox
	Text      string `toml:"text"`
	Focusable *bool  `toml:"focusable"`

	// list and menu
	Entries []string `toml:"entries"`
	Trim    string   `toml:"trim"`
	Ascii   bool     `toml:"ascii_only"`

	// field
	Placeholder string `toml:"placeholder"`
	Required    bool   `toml:"required"`

	// grid
	Columns []layout.Constraint `toml:"columns"`
	Cells   []layout.Constraint `toml:"cells"`
	Labels  [][]string          `toml:"labels"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Mouse: true,
		Log: LogConfig{
			File:       "gridui.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return finish(cfg, md)
}

// Parse reads TOML text over the defaults and validates the result
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return finish(cfg, md)
}

func finish(cfg *Config, md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(cfg.Rows) == 0 {
		cfg.Rows = DemoRows()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	var errs []error
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		errs = append(errs, errors.New("log: sizes must not be negative"))
	}
	if _, err := input.ParseBindings(c.Keys); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}
	if len(c.Rows) == 0 {
		errs = append(errs, errors.New("rows: at least one row is required"))
	}
	for y, row := range c.Rows {
		for x, it := range row.Items {
			if err := it.validate(); err != nil {
				errs = append(errs, fmt.Errorf("rows[%d].items[%d]: %w", y, x, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (it ItemConfig) validate() error {
	switch it.Kind {
	case KindTextBox, KindKeys, KindField:
	case KindList:
		if _, ok := trimModes[strings.ToLower(it.Trim)]; !ok {
			return fmt.Errorf("list: unknown trim %q", it.Trim)
		}
	case KindMenu:
		if len(it.Entries) == 0 {
			return errors.New("menu: entries required")
		}
	case KindGrid:
		if len(it.Columns) == 0 || len(it.Cells) == 0 {
			return errors.New("grid: columns and cells required")
		}
	default:
		return fmt.Errorf("unknown kind %q", it.Kind)
	}
	return nil
}

// KeyTable returns the default bindings overridden by [keys]
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.ParseBindings(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// ThemeValue applies overrides to the default theme
func (c *Config) ThemeValue() tui.Theme {
	th := tui.DefaultTheme
	t := c.Theme
	for _, o := range []struct {
		src *terminal.RGB
		dst *terminal.RGB
	}{
		{t.Bg, &th.Bg}, {t.Fg, &th.Fg}, {t.Dim, &th.Dim}, {t.Border, &th.Border},
		{t.Hover, &th.Hover}, {t.Selected, &th.Selected}, {t.CursorBg, &th.CursorBg},
		{t.Accent, &th.Accent}, {t.Error, &th.Error}, {t.PopupBg, &th.PopupBg},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	if t.Line != nil {
		th.Line = *t.Line
	}
	return th
}
