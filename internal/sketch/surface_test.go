package sketch

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/example/sketchpad/internal/palette"
)

// recorder keeps the live lines and texts of a surface.
type recorder struct {
	lines   []Segment
	texts   map[string]string
	deleted []SegmentID
}

func newRecorder() *recorder { return &recorder{texts: map[string]string{}} }

func (r *recorder) DrawLine(seg Segment) { r.lines = append(r.lines, seg) }

func (r *recorder) DeleteLine(id SegmentID) {
	r.deleted = append(r.deleted, id)
	for i, l := range r.lines {
		if l.ID == id {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return
		}
	}
}

func (r *recorder) DrawText(tag string, _ Point, _ Anchor, text string, _ color.Color) {
	r.texts[tag] = text
}

func (r *recorder) DeleteText(tag string) { delete(r.texts, tag) }

func ends(segs []Segment) [][2]Point {
	out := make([][2]Point, len(segs))
	for i, s := range segs {
		out[i] = [2]Point{s.From, s.To}
	}
	return out
}

func clickAll(s *Surface, pts ...Point) {
	for _, p := range pts {
		s.PrimaryPress(p)
		s.PrimaryRelease(p)
	}
}

func TestPolylineClicksScenario(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Polyline))
	clickAll(s, Pt(0, 0), Pt(10, 0), Pt(10, 10))

	want := [][2]Point{{Pt(0, 0), Pt(10, 0)}, {Pt(10, 0), Pt(10, 10)}}
	if got := ends(rec.lines); !reflect.DeepEqual(got, want) {
		t.Fatalf("drawn %v, want %v", got, want)
	}
	if got := s.Points(); !reflect.DeepEqual(got, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}) {
		t.Fatalf("points %v", got)
	}
	if got := ends(s.Segments()); !reflect.DeepEqual(got, want) {
		t.Fatalf("segment history %v", got)
	}
	if s.PenState() != PenDown {
		t.Fatalf("pen %v, want down", s.PenState())
	}
	if prev, ok := s.PreviousPoint(); !ok || prev != Pt(10, 0) {
		t.Fatalf("previous %v %v", prev, ok)
	}
}

func TestPolylineUndoScenario(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Polyline))
	clickAll(s, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	last := s.Segments()[1]

	s.SecondaryClick()

	if !reflect.DeepEqual(rec.deleted, []SegmentID{last.ID}) {
		t.Fatalf("deleted %v, want [%d]", rec.deleted, last.ID)
	}
	if got := ends(rec.lines); !reflect.DeepEqual(got, [][2]Point{{Pt(0, 0), Pt(10, 0)}}) {
		t.Fatalf("remaining lines %v", got)
	}
	if got := s.Points(); !reflect.DeepEqual(got, []Point{Pt(0, 0), Pt(10, 0)}) {
		t.Fatalf("points %v", got)
	}
	if start, _ := s.StartPoint(); start != Pt(10, 0) {
		t.Fatalf("start %v, want (10,0)", start)
	}

	// The next click resumes from the restored anchor.
	clickAll(s, Pt(20, 0))
	if got := ends(rec.lines); !reflect.DeepEqual(got[len(got)-1], [2]Point{Pt(10, 0), Pt(20, 0)}) {
		t.Fatalf("resumed segment %v", got[len(got)-1])
	}
}

func TestPolylineDoubleClickClosesScenario(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Polyline))
	clickAll(s, Pt(0, 0), Pt(10, 0), Pt(10, 10))

	s.DoubleClick(Pt(10, 10))

	last := rec.lines[len(rec.lines)-1]
	if last.From != Pt(10, 10) || last.To != Pt(0, 0) {
		t.Fatalf("closing segment %v", last)
	}
	if len(s.Points()) != 0 || len(s.Segments()) != 0 {
		t.Fatalf("histories not cleared: %v %v", s.Points(), s.Segments())
	}
	if _, ok := s.FirstPoint(); ok {
		t.Fatal("first point still set")
	}
	if s.Open() || s.PenState() != PenUp {
		t.Fatal("shape still open")
	}

	// Undo cannot reach into a closed shape.
	s.SecondaryClick()
	if len(rec.deleted) != 0 {
		t.Fatalf("undo after close deleted %v", rec.deleted)
	}
}

func TestFreehandDragScenario(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Freehand))
	s.PrimaryPress(Pt(5, 5))
	s.PrimaryDrag(Pt(8, 5))
	s.PrimaryDrag(Pt(8, 9))

	want := [][2]Point{{Pt(5, 5), Pt(8, 5)}, {Pt(8, 5), Pt(8, 9)}}
	if got := ends(rec.lines); !reflect.DeepEqual(got, want) {
		t.Fatalf("drawn %v, want %v", got, want)
	}
	if len(s.Points()) != 0 || len(s.Segments()) != 0 {
		t.Fatal("freehand kept history")
	}
	s.SecondaryClick()
	if len(rec.deleted) != 0 || len(rec.lines) != 2 {
		t.Fatal("secondary click changed a freehand surface")
	}
}

func TestFreehandReleaseEndsStroke(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Freehand))
	s.PrimaryPress(Pt(1, 1))
	s.PrimaryDrag(Pt(2, 2))
	s.PrimaryRelease(Pt(2, 2))
	if s.Open() {
		t.Fatal("stroke open after release")
	}
	s.PrimaryDrag(Pt(3, 3))
	if len(rec.lines) != 1 {
		t.Fatalf("drag after release drew: %v", rec.lines)
	}
	s.PrimaryPress(Pt(50, 50))
	s.PrimaryDrag(Pt(51, 50))
	if got := rec.lines[len(rec.lines)-1]; got.From != Pt(50, 50) {
		t.Fatalf("second stroke starts at %v", got.From)
	}
}

func TestPolylineHistoryLengths(t *testing.T) {
	for n := 0; n < 6; n++ {
		s := New(nil, WithMode(Polyline))
		for i := 0; i <= n; i++ {
			clickAll(s, Pt(i*3, i*7))
		}
		if got := len(s.Points()); got != n+1 {
			t.Errorf("n=%d: %d points", n, got)
		}
		if got := len(s.Segments()); got != n {
			t.Errorf("n=%d: %d segments", n, got)
		}
	}
}

func TestUndoEveryClickKeepsShapeOpen(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Polyline))
	clickAll(s, Pt(0, 0), Pt(5, 0))
	s.SecondaryClick()
	s.SecondaryClick()
	s.SecondaryClick()

	if len(rec.lines) != 0 {
		t.Fatalf("lines left: %v", rec.lines)
	}
	if got := s.Points(); !reflect.DeepEqual(got, []Point{Pt(0, 0)}) || len(s.Segments()) != 0 {
		t.Fatalf("history after undoing everything: %v %v", got, s.Segments())
	}
	first, ok := s.FirstPoint()
	if !ok || first != Pt(0, 0) {
		t.Fatalf("first %v %v", first, ok)
	}
	if start, _ := s.StartPoint(); start != Pt(0, 0) {
		t.Fatalf("start %v", start)
	}
	s.DoubleClick(Pt(3, 3))
	if got := rec.lines[len(rec.lines)-1]; got.From != Pt(3, 3) || got.To != Pt(0, 0) {
		t.Fatalf("closing segment %v", got)
	}
}

func TestClickAfterUndoingEverything(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Polyline))
	clickAll(s, Pt(0, 0), Pt(5, 0))
	s.SecondaryClick()
	s.SecondaryClick()
	clickAll(s, Pt(7, 7), Pt(9, 1))

	if got := s.Points(); !reflect.DeepEqual(got, []Point{Pt(0, 0), Pt(7, 7), Pt(9, 1)}) {
		t.Fatalf("points %v", got)
	}
	if got := ends(s.Segments()); !reflect.DeepEqual(got, [][2]Point{{Pt(0, 0), Pt(7, 7)}, {Pt(7, 7), Pt(9, 1)}}) {
		t.Fatalf("segments %v", got)
	}

	s.SecondaryClick()
	if prev, ok := s.PreviousPoint(); !ok || prev != Pt(0, 0) {
		t.Fatalf("previous %v %v, want first point", prev, ok)
	}
	if start, _ := s.StartPoint(); start != Pt(7, 7) {
		t.Fatalf("start %v", start)
	}
	s.SecondaryClick()
	if _, ok := s.PreviousPoint(); ok {
		t.Fatal("previous set with only the first point left")
	}
	if start, _ := s.StartPoint(); start != Pt(0, 0) {
		t.Fatalf("start %v", start)
	}
}

func TestSegmentIDsNeverReused(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Polyline))
	var ids []SegmentID
	collect := func() {
		for _, l := range rec.lines {
			ids = append(ids, l.ID)
		}
		rec.lines = nil
	}
	clickAll(s, Pt(0, 0), Pt(1, 0), Pt(1, 1))
	s.SecondaryClick()
	clickAll(s, Pt(2, 2))
	s.PrimaryDrag(Pt(3, 3))
	s.DoubleClick(Pt(3, 3))
	collect()
	clickAll(s, Pt(9, 9), Pt(8, 8))
	s.DoubleClick(Pt(8, 8))
	collect()

	undone := map[SegmentID]bool{}
	for _, id := range rec.deleted {
		undone[id] = true
	}
	for i, id := range ids {
		if undone[id] {
			t.Fatalf("undone id %d reused", id)
		}
		if i > 0 && id <= ids[i-1] {
			t.Fatalf("ids not increasing: %v", ids)
		}
	}
}

func TestNoOpsWithoutOpenShape(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Polyline), WithReadouts(false))
	s.SecondaryClick()
	s.DoubleClick(Pt(1, 1))
	s.PrimaryDrag(Pt(2, 2))
	if len(rec.lines) != 0 || len(rec.deleted) != 0 || len(rec.texts) != 0 {
		t.Fatalf("unexpected output %+v", rec)
	}
}

func TestPolylineDragDrawsFromAnchor(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Polyline))
	clickAll(s, Pt(0, 0))
	s.PrimaryDrag(Pt(4, 0))
	s.PrimaryDrag(Pt(8, 0))
	clickAll(s, Pt(8, 8))

	want := [][2]Point{{Pt(0, 0), Pt(4, 0)}, {Pt(4, 0), Pt(8, 0)}, {Pt(8, 0), Pt(8, 8)}}
	if got := ends(rec.lines); !reflect.DeepEqual(got, want) {
		t.Fatalf("drawn %v, want %v", got, want)
	}
	if got := len(s.Segments()); got != 1 {
		t.Fatalf("drag segments entered history: %d", got)
	}
}

func TestAttributesApplyToLaterSegments(t *testing.T) {
	rec := newRecorder()
	s := New(rec, WithMode(Freehand))
	s.PrimaryPress(Pt(0, 0))
	s.PrimaryDrag(Pt(1, 0))
	blue, _ := palette.Lookup("blue")
	s.SetLineColor(blue)
	s.SetLineWidth(7)
	s.PrimaryDrag(Pt(2, 0))

	if rec.lines[0].Color != palette.DefaultColor() || rec.lines[0].Width != palette.DefaultWidth() {
		t.Fatalf("first segment changed: %v", rec.lines[0])
	}
	if rec.lines[1].Color != blue || rec.lines[1].Width != 7 {
		t.Fatalf("second segment %v", rec.lines[1])
	}
	if got := rec.texts[colorTag]; got != "Blue 7px" {
		t.Fatalf("color readout %q", got)
	}
}

func TestPositionReadout(t *testing.T) {
	rec := newRecorder()
	s := New(rec)
	s.PointerMove(Pt(12, 34))
	if got := rec.texts[positionTag]; got != "12, 34" {
		t.Fatalf("readout %q", got)
	}
	s.PrimaryPress(Pt(-5, 400))
	if got := rec.texts[positionTag]; got != "-5, 400" {
		t.Fatalf("readout after press %q", got)
	}
	s.PointerLeave()
	if _, ok := rec.texts[positionTag]; ok {
		t.Fatal("readout not cleared on leave")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"freehand": Freehand, "Path": Freehand, "polyline": Polyline, " lines ": Polyline}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("spiral"); err == nil {
		t.Error("expected error")
	}
}
