package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/gridui/config"
	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/layout"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	configPath string
	logPath    string
	debug      bool
	noMouse    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "gridui",
		Short:        "Run a declarative grid of widgets in the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("gridui needs an interactive terminal")
			}
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "log file, overrides [log] file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log engine diagnostics")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse reporting")

	cmd.AddCommand(newLayoutCmd(opts))
	return cmd
}

func (o *options) load() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.Parse("")
	}
	if err != nil {
		return nil, err
	}
	if o.logPath != "" {
		cfg.Log.File = o.logPath
	}
	if o.debug {
		cfg.Log.Debug = true
	}
	if o.noMouse {
		cfg.Mouse = false
	}
	return cfg, nil
}

func newLayoutCmd(opts *options) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the item rectangles for a frame size without starting the UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			state, err := cfg.Build(cfg.ThemeValue())
			if err != nil {
				return err
			}
			return printLayout(cmd, &state, layout.NewRect(0, 0, width, height))
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "frame width")
	cmd.Flags().IntVar(&height, "height", 24, "frame height")
	return cmd
}

func printLayout(cmd *cobra.Command, state *framework.State, area layout.Rect) error {
	chunks, err := state.Chunks(area)
	if err != nil {
		return fmt.Errorf("layout %dx%d: %w", area.W, area.H, err)
	}
	out := cmd.OutOrStdout()
	for y, row := range chunks {
		for x, r := range row {
			it, _ := state.Get(x, y)
			fmt.Fprintf(out, "(%d,%d) %-12T x=%d y=%d w=%d h=%d selectable=%t\n",
				x, y, it, r.X, r.Y, r.W, r.H, framework.IsSelectable(it))
		}
	}
	return nil
}
