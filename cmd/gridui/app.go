package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/gridui/config"
	"github.com/lixenwraith/gridui/framework"
	"github.com/lixenwraith/gridui/input"
	"github.com/lixenwraith/gridui/layout"
	"github.com/lixenwraith/gridui/terminal"
	"github.com/lixenwraith/gridui/terminal/tui"
	"github.com/lixenwraith/gridui/widgets"
)

// app routes terminal events into the framework and owns the frame buffer
type app struct {
	fw     *framework.Framework
	keys   *input.KeyTable
	theme  tui.Theme
	mouse  bool
	logger *log.Logger

	width, height int
	canvas        tui.Region
}

func newApp(cfg *config.Config, logger *log.Logger) (*app, error) {
	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, err
	}
	theme := cfg.ThemeValue()
	state, err := cfg.Build(theme)
	if err != nil {
		return nil, err
	}

	fw := framework.New(state, framework.WithLogger(logger))
	if err := fw.Load(); err != nil {
		logger.Printf("load: %v", err)
	}
	return &app{fw: fw, keys: keys, theme: theme, mouse: cfg.Mouse, logger: logger}, nil
}

// handle applies one event, false means quit
func (a *app) handle(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventKey:
		return a.key(ev)
	case terminal.EventMouse:
		if a.mouse && ev.MouseBtn == terminal.MouseBtnLeft && ev.MouseAction == terminal.MouseActionPress {
			a.fw.MouseEvent(ev.MouseX, ev.MouseY)
		}
	case terminal.EventResize:
		a.resize(ev.Width, ev.Height)
	case terminal.EventError:
		a.logger.Printf("input: %v", ev.Err)
	case terminal.EventClosed:
		return false
	}
	return true
}

func (a *app) key(ev terminal.Event) bool {
	widgets.RecordKey(a.fw.Data(), ev)
	action := a.keys.Lookup(ev)

	if a.fw.Cursor().IsSelected() && a.keys.Passthrough(ev) {
		if err := a.fw.KeyInput(ev); err != nil {
			a.logger.Printf("key %s: %v", ev, err)
		}
		return true
	}

	var err error
	switch action {
	case input.ActionMoveUp:
		err = a.fw.Move(framework.DirUp)
	case input.ActionMoveDown:
		err = a.fw.Move(framework.DirDown)
	case input.ActionMoveLeft:
		err = a.fw.Move(framework.DirLeft)
	case input.ActionMoveRight:
		err = a.fw.Move(framework.DirRight)
	case input.ActionSelect:
		err = a.fw.Select()
	case input.ActionDeselect:
		if a.fw.Cursor().IsSelected() {
			err = a.fw.Deselect()
		}
	case input.ActionSave:
		a.fw.PushHistory()
	case input.ActionUndo:
		err = a.fw.RevertLastHistory()
	case input.ActionQuit:
		return false
	}
	if err != nil {
		a.logger.Printf("%s: %v", action, err)
	}
	return true
}

func (a *app) resize(w, h int) {
	if w == a.width && h == a.height {
		return
	}
	a.width, a.height = w, h
	a.canvas = tui.NewCanvas(w, h)
}

// draw renders one frame into the canvas
func (a *app) draw() tui.Region {
	a.canvas.Fill(a.theme.Bg)
	if err := a.fw.Render(a.canvas, layout.NewRect(0, 0, a.width, a.height)); err != nil {
		a.canvas.Text(0, 0, "terminal too small", a.theme.Error, a.theme.Bg, terminal.AttrNone)
	}
	return a.canvas
}

// exit is swapped in tests
var exit = os.Exit

// crash reports a recovered panic, closes the log file and exits
// os.Exit skips deferred calls, so the log is closed here
func crash(r any, logger *log.Logger, closer io.Closer, stderr io.Writer) {
	stack := debug.Stack()
	logger.Printf("crash: %v\n%s", r, stack)
	closer.Close()
	fmt.Fprintf(stderr, "gridui crashed: %v\n%s\n", r, stack)
	exit(1)
}

func run(cfg *config.Config) error {
	logger, closer := setupLogging(cfg.Log)
	defer closer.Close()

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	tt, err := terminal.New()
	if err != nil {
		return err
	}
	svc := terminal.NewService(tt)
	if err = svc.Start(); err != nil {
		return err
	}
	defer func() {
		r := recover()
		svc.Stop()
		if r != nil {
			crash(r, logger, closer, os.Stderr)
		}
	}()

	if a.mouse {
		if err = tt.SetMouseMode(terminal.MouseModeClick); err != nil {
			logger.Printf("mouse: %v", err)
			a.mouse = false
		}
	}

	a.resize(tt.Size())
	for {
		frame := a.draw()
		tt.Flush(frame.Cells, a.width, a.height)

		ev, ok := <-svc.Events()
		if !ok || !a.handle(ev) {
			return nil
		}
	}
}
