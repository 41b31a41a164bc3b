package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/sketch"
)

var yellow = color.RGBA{255, 255, 0, 255}

func TestLineIsPainted(t *testing.T) {
	c := New(20, 20, yellow)
	red := palette.DefaultColor()
	c.DrawLine(sketch.Segment{ID: 1, From: sketch.Pt(2, 5), To: sketch.Pt(15, 5), Color: red, Width: 1})
	img := c.Image()
	for x := 2; x <= 15; x++ {
		if got := img.RGBAAt(x, 5); got != red.Value {
			t.Fatalf("pixel (%d,5) = %v, want %v", x, got, red.Value)
		}
	}
	if got := img.RGBAAt(1, 5); got != yellow {
		t.Fatalf("pixel before line = %v", got)
	}
}

func TestThickLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Line(img, image.Pt(5, 1), image.Pt(5, 8), color.Black, 3)
	for _, x := range []int{4, 5, 6} {
		if got := img.RGBAAt(x, 4); got != (color.RGBA{0, 0, 0, 255}) {
			t.Fatalf("pixel (%d,4) = %v", x, got)
		}
	}
	if got := img.RGBAAt(7, 4); got.A != 0 {
		t.Fatalf("pixel (7,4) painted: %v", got)
	}
}

func TestDeleteLineRestoresBackground(t *testing.T) {
	c := New(20, 20, yellow)
	blue, _ := palette.Lookup("blue")
	c.DrawLine(sketch.Segment{ID: 1, From: sketch.Pt(0, 10), To: sketch.Pt(19, 10), Color: blue, Width: 1})
	c.DrawLine(sketch.Segment{ID: 2, From: sketch.Pt(10, 0), To: sketch.Pt(10, 19), Color: blue, Width: 1})
	c.DeleteLine(2)

	img := c.Image()
	if got := img.RGBAAt(10, 3); got != yellow {
		t.Fatalf("deleted line still visible: %v", got)
	}
	if got := img.RGBAAt(3, 10); got != blue.Value {
		t.Fatalf("remaining line lost: %v", got)
	}
	if got := c.Lines(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("lines %v", got)
	}
	c.DeleteLine(42)
	if len(c.Lines()) != 1 {
		t.Fatal("unknown id removed a line")
	}
}

func TestTextReplacesByTag(t *testing.T) {
	c := New(100, 40, yellow)
	c.DrawText("position", sketch.Pt(96, 36), sketch.AnchorSE, "1, 2", color.Black)
	c.DrawText("position", sketch.Pt(96, 36), sketch.AnchorSE, "3, 4", color.Black)
	if got, _ := c.Text("position"); got != "3, 4" {
		t.Fatalf("text %q", got)
	}
	c.DeleteText("position")
	if _, ok := c.Text("position"); ok {
		t.Fatal("text still present")
	}
	img := c.Image()
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) != yellow {
				t.Fatalf("leftover pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := New(10, 10, yellow)
	snap, gen := c.Snapshot()
	c.DrawLine(sketch.Segment{ID: 1, From: sketch.Pt(0, 0), To: sketch.Pt(9, 9), Color: palette.DefaultColor(), Width: 1})
	if snap.RGBAAt(0, 0) != yellow {
		t.Fatal("snapshot changed after drawing")
	}
	if c.Generation() == gen {
		t.Fatal("generation did not advance")
	}
}

func TestSetBackground(t *testing.T) {
	c := New(4, 4, yellow)
	white := color.RGBA{255, 255, 255, 255}
	c.SetBackground(white)
	if got := c.Image().RGBAAt(2, 2); got != white {
		t.Fatalf("background %v", got)
	}
}

func TestReadoutDoesNotRerenderLines(t *testing.T) {
	c := New(300, 300, yellow)
	s := sketch.New(c, sketch.WithMode(sketch.Freehand))
	s.PrimaryPress(sketch.Pt(0, 0))
	for i := 1; i <= 500; i++ {
		s.PrimaryDrag(sketch.Pt(i%300, (i*7)%300))
	}
	c.Snapshot()
	before := c.renders

	for i := 0; i < 50; i++ {
		s.PointerMove(sketch.Pt(i, i))
		c.Snapshot()
		c.Image()
	}
	s.PointerLeave()
	c.Snapshot()
	if c.renders != before {
		t.Fatalf("pointer moves re-rendered the lines %d times", c.renders-before)
	}
	if got, _ := c.Text("position"); got != "" {
		t.Fatalf("readout %q left after leave", got)
	}

	c.DeleteLine(c.Lines()[0].ID)
	c.Snapshot()
	if c.renders != before+1 {
		t.Fatalf("delete caused %d renders, want 1", c.renders-before)
	}
}

func TestTextIsOverlaidOnLines(t *testing.T) {
	c := New(100, 40, yellow)
	black := color.RGBA{0, 0, 0, 255}
	c.DrawText("position", sketch.Pt(96, 36), sketch.AnchorSE, "8888", black)
	hasText := func(img *image.RGBA) bool {
		for y := 0; y < 40; y++ {
			for x := 0; x < 100; x++ {
				if img.RGBAAt(x, y) == black {
					return true
				}
			}
		}
		return false
	}
	if !hasText(c.Image()) {
		t.Fatal("text not drawn")
	}
	c.DrawLine(sketch.Segment{ID: 1, From: sketch.Pt(0, 2), To: sketch.Pt(99, 2), Color: palette.DefaultColor(), Width: 1})
	img, _ := c.Snapshot()
	if !hasText(img) || img.RGBAAt(50, 2) != palette.DefaultColor().Value {
		t.Fatal("line or text missing after drawing a line")
	}
	c.DeleteText("position")
	if hasText(c.Image()) {
		t.Fatal("text still drawn after delete")
	}
}
