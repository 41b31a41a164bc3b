package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/example/sketchpad/internal/fyneui"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/shell"
	"github.com/example/sketchpad/internal/sketch"
)

var (
	runShiny = func(a *shell.App) { a.Run() }
	runFyne  = fyneui.Run
)

type runCmd struct {
	*root
	fs         *flag.FlagSet
	toolkit    string
	surfaces   string
	width      int
	height     int
	lineWidth  int
	color      string
	background string
	noReadout  bool
}

func parseRunCmd(args []string, r *root) (*runCmd, error) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	cmd := &runCmd{root: r.subcommand("run"), fs: fs}
	cv := r.config.Canvas
	fs.StringVar(&cmd.toolkit, "toolkit", "", "window toolkit (shiny, fyne)")
	fs.StringVar(&cmd.surfaces, "surfaces", strings.Join(r.config.Layout.Surfaces, ","), "comma separated surface modes, top to bottom")
	fs.IntVar(&cmd.width, "width", cv.Width, "surface width in pixels")
	fs.IntVar(&cmd.height, "height", cv.Height, "surface height in pixels")
	fs.IntVar(&cmd.lineWidth, "line-width", cv.LineWidth, "initial line width (1-10)")
	fs.StringVar(&cmd.color, "color", cv.Color, "initial line color (name or #RRGGBB)")
	fs.StringVar(&cmd.background, "background", palette.Color{Value: cv.Background}.Hex(), "surface background (name or #RRGGBB)")
	fs.BoolVar(&cmd.noReadout, "no-readout", !cv.Readout, "hide the position and color readouts")
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *runCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

// app converts the flags into a shell configuration.
func (c *runCmd) app() (*shell.App, error) {
	var modes []sketch.Mode
	for _, name := range strings.Split(c.surfaces, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		m, err := sketch.ParseMode(name)
		if err != nil {
			return nil, fmt.Errorf("-surfaces: %w", err)
		}
		modes = append(modes, m)
	}
	if len(modes) == 0 {
		return nil, fmt.Errorf("-surfaces: at least one surface is required")
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("surface size must be positive, got %dx%d", c.width, c.height)
	}
	lineColor, err := palette.Lookup(c.color)
	if err != nil {
		return nil, fmt.Errorf("-color: %w", err)
	}
	bg, err := palette.Lookup(c.background)
	if err != nil {
		return nil, fmt.Errorf("-background: %w", err)
	}
	opts := []shell.Option{
		shell.WithModes(modes...),
		shell.WithSize(c.width, c.height),
		shell.WithBackground(bg),
		shell.WithLineColor(lineColor),
		shell.WithLineWidth(palette.ClampWidth(c.lineWidth)),
		shell.WithReadouts(!c.noReadout),
		shell.WithDoubleClick(c.config.DoubleClick()),
		shell.WithNotifier(c.notifier),
		shell.WithOnClose(func() { log.Print("sketchpad closed") }),
	}
	if c.activeTheme != nil {
		opts = append(opts, shell.WithTheme(c.activeTheme))
	}
	return shell.New(opts...), nil
}

func (c *runCmd) Run() error {
	toolkit, err := c.resolveToolkit(c.toolkit)
	if err != nil {
		return err
	}
	a, err := c.app()
	if err != nil {
		return err
	}
	log.Printf("starting %s window with %d surfaces", toolkit, len(a.Modes))
	switch toolkit {
	case "fyne":
		runFyne(a)
	default:
		runShiny(a)
	}
	return nil
}
