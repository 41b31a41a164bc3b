package sketch

import (
	"fmt"
	"strings"
)

// Mode selects how a surface interprets pointer input. It is fixed when the
// surface is created.
type Mode int

const (
	// Freehand draws continuously while the primary button is held.
	Freehand Mode = iota
	// Polyline commits one segment per click and closes on double-click.
	Polyline
)

func (m Mode) String() string {
	switch m {
	case Freehand:
		return "freehand"
	case Polyline:
		return "polyline"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String. "path" and "lines"
// are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "freehand", "path":
		return Freehand, nil
	case "polyline", "lines":
		return Polyline, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// PenState reports whether a polyline surface is extending an open shape.
type PenState int

const (
	PenUp PenState = iota
	PenDown
)

func (p PenState) String() string {
	if p == PenDown {
		return "down"
	}
	return "up"
}

// behavior is the per-mode half of the state machine.
type behavior interface {
	press(s *Surface, p Point)
	drag(s *Surface, p Point)
	release(s *Surface, p Point)
	doubleClick(s *Surface, p Point)
	undo(s *Surface)
}

func behaviorFor(m Mode) behavior {
	if m == Polyline {
		return polyline{}
	}
	return freehand{}
}
