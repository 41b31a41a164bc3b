package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/example/sketchpad/internal/clipboard"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/raster"
	"github.com/example/sketchpad/internal/script"
	"github.com/example/sketchpad/internal/sketch"
)

var copyImage = clipboard.WriteImage

type replayCmd struct {
	*root
	fs          *flag.FlagSet
	script      string
	output      string
	mode        string
	toClipboard bool
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	cmd := &replayCmd{root: r.subcommand("replay"), fs: fs}
	fs.StringVar(&cmd.script, "script", "", "event script to apply")
	fs.StringVar(&cmd.output, "output", "replay.png", "PNG file to write")
	fs.StringVar(&cmd.mode, "mode", "polyline", "surface mode when the script does not name one")
	fs.BoolVar(&cmd.toClipboard, "to-clipboard", false, "also copy the result to the clipboard")
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	if cmd.script == "" {
		return nil, fmt.Errorf("-script is required")
	}
	return cmd, nil
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *replayCmd) Run() error {
	f, err := os.Open(c.script)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	sc, err := script.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", c.script, err)
	}

	mode, err := sketch.ParseMode(c.mode)
	if err != nil {
		return fmt.Errorf("-mode: %w", err)
	}
	cv := c.config.Canvas
	width, height := cv.Width, cv.Height
	if sc.Width > 0 && sc.Height > 0 {
		width, height = sc.Width, sc.Height
	}
	lineColor, err := palette.Lookup(cv.Color)
	if err != nil {
		lineColor = palette.DefaultColor()
	}

	canvas := raster.New(width, height, cv.Background)
	opts := []sketch.Option{
		sketch.WithMode(mode),
		sketch.WithSize(width, height),
		sketch.WithBackground(cv.Background),
		sketch.WithLineColor(lineColor),
		sketch.WithLineWidth(palette.ClampWidth(cv.LineWidth)),
		sketch.WithReadouts(cv.Readout),
	}
	s := sketch.New(canvas, append(opts, sc.Options()...)...)
	sc.Apply(s, canvas)

	img, _ := canvas.Snapshot()
	out, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	lines := canvas.Lines()
	w := c.out()
	fmt.Fprintf(w, "%s surface, %d events, %d segments\n", s.Mode(), len(sc.Events), len(lines))
	for _, seg := range lines {
		fmt.Fprintf(w, "  %s\n", seg)
	}
	if s.Open() {
		fmt.Fprintf(w, "shape open: %d points, pen %s\n", len(s.Points()), s.PenState())
	}
	fmt.Fprintf(w, "wrote %s\n", c.output)
	c.notifier.Render(c.output)

	if c.toClipboard {
		if err := copyImage(img); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		log.Printf("copied %s to clipboard", c.output)
		c.notifier.Copy(c.output, img)
	}
	return nil
}
