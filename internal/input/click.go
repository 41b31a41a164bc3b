// Package input turns raw pointer events into the gestures a surface reacts to.
package input

import (
	"image"
	"time"
)

const (
	// DefaultInterval is the longest gap between two presses of a double-click.
	DefaultInterval = 500 * time.Millisecond
	// DefaultSlop is how far in pixels the pointer may move between them.
	DefaultSlop = 4
)

// ClickTracker recognises double-clicks from a stream of button presses.
// The shiny mouse events carry no click count, so hosts feed every press
// through Press and route the press to a double-click handler when it
// reports true.
type ClickTracker struct {
	Interval time.Duration
	Slop     int

	last   image.Point
	button int
	at     time.Time
	armed  bool
}

// NewClickTracker returns a tracker using interval, or DefaultInterval when
// interval is not positive.
func NewClickTracker(interval time.Duration) *ClickTracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &ClickTracker{Interval: interval, Slop: DefaultSlop}
}

// Press records a press of button at p and reports whether it completes a
// double-click. A third press starts over, so it is never a double-click.
func (t *ClickTracker) Press(button int, p image.Point, now time.Time) bool {
	if t.armed && button == t.button && now.Sub(t.at) <= t.Interval && near(p, t.last, t.Slop) {
		t.armed = false
		return true
	}
	t.last, t.button, t.at, t.armed = p, button, now, true
	return false
}

// Reset forgets the pending press.
func (t *ClickTracker) Reset() { t.armed = false }

func near(a, b image.Point, slop int) bool {
	d := a.Sub(b)
	return abs(d.X) <= slop && abs(d.Y) <= slop
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
