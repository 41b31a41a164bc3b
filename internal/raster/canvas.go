// Package raster renders surface output into an in-memory image.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/example/sketchpad/internal/sketch"
)

type overlay struct {
	tag    string
	at     sketch.Point
	anchor sketch.Anchor
	text   string
	col    color.Color
}

// Canvas is a sketch.Canvas backed by an *image.RGBA.
//
// Segments are painted incrementally into a base image that holds the
// background and every live line. Only DeleteLine and SetBackground force the
// base to be re-rendered from the line list. Text overlays never touch the
// base; they are drawn on top whenever the canvas is read.
type Canvas struct {
	mu    sync.Mutex
	bg    color.RGBA
	base  *image.RGBA
	img   *image.RGBA
	lines []sketch.Segment
	texts []overlay
	stale bool
	// gen increases on every change so hosts can skip identical frames.
	gen    uint64
	imgGen uint64
	// renders counts full re-renders of the base.
	renders int
}

var _ sketch.Canvas = (*Canvas)(nil)

// New returns a w×h canvas filled with bg.
func New(w, h int, bg color.RGBA) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r := image.Rect(0, 0, w, h)
	c := &Canvas{bg: bg, base: image.NewRGBA(r), img: image.NewRGBA(r)}
	c.render()
	c.compose(c.img)
	return c
}

// DrawLine implements sketch.Canvas.
func (c *Canvas) DrawLine(seg sketch.Segment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, seg)
	if !c.stale {
		paintLine(c.base, seg)
	}
	c.gen++
}

// DeleteLine implements sketch.Canvas. Unknown ids are ignored.
func (c *Canvas) DeleteLine(id sketch.SegmentID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, seg := range c.lines {
		if seg.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.stale = true
			c.gen++
			return
		}
	}
}

// DrawText implements sketch.Canvas. Text already shown under tag is
// replaced.
func (c *Canvas) DrawText(tag string, at sketch.Point, anchor sketch.Anchor, text string, col color.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o := overlay{tag: tag, at: at, anchor: anchor, text: text, col: col}
	c.gen++
	for i := range c.texts {
		if c.texts[i].tag == tag {
			c.texts[i] = o
			return
		}
	}
	c.texts = append(c.texts, o)
}

// DeleteText implements sketch.Canvas.
func (c *Canvas) DeleteText(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, o := range c.texts {
		if o.tag == tag {
			c.texts = append(c.texts[:i], c.texts[i+1:]...)
			c.gen++
			return
		}
	}
}

// SetBackground changes the fill color beneath all items.
func (c *Canvas) SetBackground(bg color.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if bg == c.bg {
		return
	}
	c.bg = bg
	c.stale = true
	c.gen++
}

// Image returns the rendered canvas. The returned image is owned by the
// canvas and changes with later drawing; use Snapshot to keep a copy.
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale || c.imgGen != c.gen {
		c.compose(c.img)
		c.imgGen = c.gen
	}
	return c.img
}

// Snapshot returns a copy of the rendered canvas and its generation.
func (c *Canvas) Snapshot() (*image.RGBA, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := image.NewRGBA(c.base.Bounds())
	c.compose(out)
	return out, c.gen
}

// Generation reports how many changes the canvas has seen.
func (c *Canvas) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Lines returns the live segments in drawing order.
func (c *Canvas) Lines() []sketch.Segment {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]sketch.Segment, len(c.lines))
	copy(out, c.lines)
	return out
}

// Text returns the string currently shown under tag.
func (c *Canvas) Text(tag string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range c.texts {
		if o.tag == tag {
			return o.text, true
		}
	}
	return "", false
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.base.Bounds() }

// compose copies the base into dst and draws the overlays on top.
func (c *Canvas) compose(dst *image.RGBA) {
	if c.stale {
		c.render()
	}
	draw.Draw(dst, dst.Bounds(), c.base, c.base.Bounds().Min, draw.Src)
	for _, o := range c.texts {
		paintText(dst, o)
	}
}

func (c *Canvas) render() {
	Fill(c.base, c.base.Bounds(), c.bg)
	for _, seg := range c.lines {
		paintLine(c.base, seg)
	}
	c.stale = false
	c.renders++
}

func paintLine(dst *image.RGBA, seg sketch.Segment) {
	Line(dst, seg.From.Image(), seg.To.Image(), seg.Color.Value, seg.Width)
}

func paintText(dst *image.RGBA, o overlay) {
	x := o.at.X
	if o.anchor == sketch.AnchorSE {
		x -= MeasureText(o.text)
	}
	y := o.at.Y - Face.Metrics().Descent.Ceil()
	Text(dst, x, y, o.text, o.col)
}
