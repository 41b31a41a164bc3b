package sketch

import (
	"fmt"
	"image/color"

	"github.com/example/sketchpad/internal/palette"
)

const (
	positionTag = "position"
	colorTag    = "color"

	// readoutInset keeps readouts clear of the surface border.
	readoutInset = 4
)

// DefaultBackground is the canvas color used when none is configured.
var DefaultBackground = color.RGBA{255, 255, 0, 255}

// Surface is an interactive drawing canvas. See the package documentation.
type Surface struct {
	canvas     Canvas
	width      int
	height     int
	background color.RGBA
	readouts   bool

	mode     Mode
	behavior behavior
	pen      PenState

	first    anchor
	start    anchor
	previous anchor
	points   []Point
	segments []Segment
	nextID   SegmentID

	lineColor palette.Color
	lineWidth int
}

// Option modifies a Surface during creation.
type Option func(*Surface)

// WithSize sets the surface dimensions in pixels.
func WithSize(width, height int) Option {
	return func(s *Surface) { s.width, s.height = width, height }
}

// WithMode selects freehand or polyline drawing.
func WithMode(m Mode) Option { return func(s *Surface) { s.mode = m } }

// WithBackground sets the canvas color.
func WithBackground(c color.RGBA) Option { return func(s *Surface) { s.background = c } }

// WithLineWidth sets the initial line width.
func WithLineWidth(w int) Option { return func(s *Surface) { s.lineWidth = w } }

// WithLineColor sets the initial line color.
func WithLineColor(c palette.Color) Option { return func(s *Surface) { s.lineColor = c } }

// WithReadouts toggles the position and color readouts.
func WithReadouts(enabled bool) Option { return func(s *Surface) { s.readouts = enabled } }

// New creates a Surface drawing into canvas. A nil canvas discards output.
func New(canvas Canvas, opts ...Option) *Surface {
	if canvas == nil {
		canvas = Discard
	}
	s := &Surface{
		canvas:     canvas,
		width:      300,
		height:     300,
		background: DefaultBackground,
		readouts:   true,
		mode:       Polyline,
		lineColor:  palette.DefaultColor(),
		lineWidth:  palette.DefaultWidth(),
		nextID:     1,
	}
	for _, o := range opts {
		o(s)
	}
	if s.width < 1 {
		s.width = 1
	}
	if s.height < 1 {
		s.height = 1
	}
	if s.lineWidth < 1 {
		s.lineWidth = 1
	}
	s.behavior = behaviorFor(s.mode)
	return s
}

// PrimaryPress handles a press of the primary button at p.
func (s *Surface) PrimaryPress(p Point) {
	s.behavior.press(s, p)
	s.PointerMove(p)
}

// PrimaryDrag handles pointer motion while the primary button is held.
// Drags before any press are ignored.
func (s *Surface) PrimaryDrag(p Point) {
	s.behavior.drag(s, p)
	s.PointerMove(p)
}

// PrimaryRelease handles the primary button being released at p. It ends a
// freehand stroke; polyline shapes stay open until double-clicked.
func (s *Surface) PrimaryRelease(p Point) {
	s.behavior.release(s, p)
}

// DoubleClick handles a primary double-click at p. On a polyline surface it
// closes the open shape back to its first point.
func (s *Surface) DoubleClick(p Point) {
	s.behavior.doubleClick(s, p)
	s.PointerMove(p)
}

// SecondaryClick undoes the most recent segment of the open polyline shape.
func (s *Surface) SecondaryClick() {
	s.behavior.undo(s)
}

// PointerMove refreshes the position readout.
func (s *Surface) PointerMove(p Point) {
	if !s.readouts {
		return
	}
	s.canvas.DrawText(positionTag, Pt(s.width-readoutInset, s.height-readoutInset), AnchorSE,
		fmt.Sprintf("%d, %d", p.X, p.Y), color.Black)
}

// PointerLeave clears the position readout.
func (s *Surface) PointerLeave() {
	if !s.readouts {
		return
	}
	s.canvas.DeleteText(positionTag)
}

// SetLineColor changes the color of segments drawn from now on.
func (s *Surface) SetLineColor(c palette.Color) {
	s.lineColor = c
	s.showColor()
}

// SetLineWidth changes the width of segments drawn from now on.
func (s *Surface) SetLineWidth(w int) {
	s.lineWidth = palette.ClampWidth(w)
	s.showColor()
}

func (s *Surface) showColor() {
	if !s.readouts {
		return
	}
	s.canvas.DrawText(colorTag, Pt(readoutInset, s.height-readoutInset), AnchorSW,
		fmt.Sprintf("%s %dpx", s.lineColor, s.lineWidth), s.lineColor)
}

// draw issues a new segment with the current attributes.
func (s *Surface) draw(from, to Point) Segment {
	seg := Segment{ID: s.nextID, From: from, To: to, Color: s.lineColor, Width: s.lineWidth}
	s.nextID++
	s.canvas.DrawLine(seg)
	return seg
}

func (s *Surface) open(p Point) {
	s.first.put(p)
	s.start.put(p)
	s.previous.clear()
}

func (s *Surface) close() {
	s.first.clear()
	s.start.clear()
	s.previous.clear()
	s.points = nil
	s.segments = nil
	s.pen = PenUp
}

// Mode reports the drawing mode fixed at creation.
func (s *Surface) Mode() Mode { return s.mode }

// PenState reports whether a polyline shape is being extended.
func (s *Surface) PenState() PenState { return s.pen }

// Open reports whether a stroke or shape is in progress.
func (s *Surface) Open() bool { return s.first.set }

// FirstPoint returns the anchor of the open stroke or shape.
func (s *Surface) FirstPoint() (Point, bool) { return s.first.get() }

// StartPoint returns the point the next segment will be drawn from.
func (s *Surface) StartPoint() (Point, bool) { return s.start.get() }

// PreviousPoint returns the anchor before StartPoint.
func (s *Surface) PreviousPoint() (Point, bool) { return s.previous.get() }

// Points returns the committed clicks of the open polyline shape.
func (s *Surface) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Segments returns the undoable segments of the open polyline shape.
func (s *Surface) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// LineColor returns the color used for new segments.
func (s *Surface) LineColor() palette.Color { return s.lineColor }

// LineWidth returns the width used for new segments.
func (s *Surface) LineWidth() int { return s.lineWidth }

// Size returns the surface dimensions.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// Background returns the canvas color.
func (s *Surface) Background() color.RGBA { return s.background }

// SetBackground changes the canvas color. It is cosmetic and does not touch
// drawn segments.
func (s *Surface) SetBackground(c color.RGBA) { s.background = c }
