package sketch

import (
	"fmt"
	"image"

	"github.com/example/sketchpad/internal/palette"
)

// Point is a position in surface-local pixel coordinates.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// FromImage converts an image.Point.
func FromImage(p image.Point) Point { return Point{X: p.X, Y: p.Y} }

// Image returns p as an image.Point.
func (p Point) Image() image.Point { return image.Pt(p.X, p.Y) }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// SegmentID identifies a segment for the lifetime of the surface that drew it.
type SegmentID uint64

// Segment is one straight line drawn on a surface.
type Segment struct {
	ID    SegmentID
	From  Point
	To    Point
	Color palette.Color
	Width int
}

func (s Segment) String() string {
	return fmt.Sprintf("#%d %v-%v %s %dpx", s.ID, s.From, s.To, s.Color, s.Width)
}

// anchor is an optional point.
type anchor struct {
	p   Point
	set bool
}

func (a *anchor) put(p Point) { a.p, a.set = p, true }

func (a *anchor) clear() { *a = anchor{} }

func (a anchor) get() (Point, bool) { return a.p, a.set }
