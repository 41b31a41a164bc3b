// Package script reads line-oriented event scripts and plays them against a
// sketch.Surface without a window.
//
//	# comment
//	mode polyline
//	size 300 300
//	background #FFFF00
//	press 10 10
//	drag 20 10
//	release 20 10
//	dblclick 20 20
//	undo
//	move 5 5
//	leave
//	color blue
//	width 4
//
// mode and size configure the surface and must precede every event.
package script

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/sketch"
)

// Kind identifies a scripted event.
type Kind int

const (
	Press Kind = iota
	Drag
	Release
	DoubleClick
	Undo
	Move
	Leave
	SetColor
	SetWidth
	SetBackground
)

var kindNames = map[string]Kind{
	"press":      Press,
	"drag":       Drag,
	"release":    Release,
	"dblclick":   DoubleClick,
	"undo":       Undo,
	"move":       Move,
	"leave":      Leave,
	"color":      SetColor,
	"width":      SetWidth,
	"background": SetBackground,
}

func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one scripted action.
type Event struct {
	Line  int
	Kind  Kind
	At    sketch.Point
	Color palette.Color
	Width int
}

// Script is a parsed event script.
type Script struct {
	Mode    sketch.Mode
	HasMode bool
	Width   int
	Height  int
	Events  []Event
}

// Parse reads a script. Errors name the offending line.
func Parse(r io.Reader) (*Script, error) {
	sc := &Script{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := stripComment(strings.Fields(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		if err := sc.parseLine(lineNo, fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return sc, nil
}

// stripComment drops a trailing comment. The argument of color and
// background may itself start with # as a hex value.
func stripComment(fields []string) []string {
	for i, f := range fields {
		if !strings.HasPrefix(f, "#") {
			continue
		}
		if i == 1 && takesColor(fields[0]) {
			continue
		}
		return fields[:i]
	}
	return fields
}

func takesColor(cmd string) bool {
	k, ok := kindNames[strings.ToLower(cmd)]
	return ok && (k == SetColor || k == SetBackground)
}

func (sc *Script) parseLine(lineNo int, f []string) error {
	cmd := strings.ToLower(f[0])
	args := f[1:]
	switch cmd {
	case "mode":
		if len(sc.Events) > 0 {
			return fmt.Errorf("mode must come before the first event")
		}
		if len(args) != 1 {
			return fmt.Errorf("mode takes one argument")
		}
		m, err := sketch.ParseMode(args[0])
		if err != nil {
			return err
		}
		sc.Mode, sc.HasMode = m, true
		return nil
	case "size":
		if len(sc.Events) > 0 {
			return fmt.Errorf("size must come before the first event")
		}
		w, h, err := pair(args)
		if err != nil {
			return fmt.Errorf("size: %w", err)
		}
		if w < 1 || h < 1 {
			return fmt.Errorf("size must be positive")
		}
		sc.Width, sc.Height = w, h
		return nil
	}

	kind, ok := kindNames[cmd]
	if !ok {
		return fmt.Errorf("unknown command %q", f[0])
	}
	ev := Event{Line: lineNo, Kind: kind}
	switch kind {
	case Press, Drag, Release, DoubleClick, Move:
		x, y, err := pair(args)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		ev.At = sketch.Pt(x, y)
	case Undo, Leave:
		if len(args) != 0 {
			return fmt.Errorf("%s takes no arguments", cmd)
		}
	case SetColor, SetBackground:
		if len(args) != 1 {
			return fmt.Errorf("%s takes one argument", cmd)
		}
		c, err := palette.Lookup(args[0])
		if err != nil {
			return err
		}
		ev.Color = c
	case SetWidth:
		if len(args) != 1 {
			return fmt.Errorf("width takes one argument")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("width: %w", err)
		}
		ev.Width = n
	}
	sc.Events = append(sc.Events, ev)
	return nil
}

func pair(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("want two integers, got %d arguments", len(args))
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// Options returns the surface options the script's header asks for.
func (sc *Script) Options() []sketch.Option {
	var opts []sketch.Option
	if sc.HasMode {
		opts = append(opts, sketch.WithMode(sc.Mode))
	}
	if sc.Width > 0 && sc.Height > 0 {
		opts = append(opts, sketch.WithSize(sc.Width, sc.Height))
	}
	return opts
}

// Backgrounder is implemented by canvases that can change their fill color.
type Backgrounder interface {
	SetBackground(color.RGBA)
}

// Apply plays every event against s in order. When bg is not nil it also
// receives background changes.
func (sc *Script) Apply(s *sketch.Surface, bg Backgrounder) {
	for _, ev := range sc.Events {
		switch ev.Kind {
		case Press:
			s.PrimaryPress(ev.At)
		case Drag:
			s.PrimaryDrag(ev.At)
		case Release:
			s.PrimaryRelease(ev.At)
		case DoubleClick:
			s.DoubleClick(ev.At)
		case Undo:
			s.SecondaryClick()
		case Move:
			s.PointerMove(ev.At)
		case Leave:
			s.PointerLeave()
		case SetColor:
			s.SetLineColor(ev.Color)
		case SetWidth:
			s.SetLineWidth(ev.Width)
		case SetBackground:
			s.SetBackground(ev.Color.Value)
			if bg != nil {
				bg.SetBackground(ev.Color.Value)
			}
		}
	}
}
