package widget

import (
	"image"
	"strconv"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/raster"
	"github.com/example/sketchpad/internal/theme"
)

const widthBoxWidth = 36

type widthBox struct {
	width    int
	sel      *WidthSelector
	rect     image.Rectangle
	onSelect func()
}

func (b *widthBox) Draw(dst *image.RGBA, state ButtonState) {
	th := b.sel.th
	c := th.ButtonBackground
	switch state {
	case StateHover:
		c = th.ButtonBackgroundHover
	case StatePressed:
		c = th.ButtonBackgroundPress
	}
	raster.Fill(dst, b.rect, c)
	raster.Text(dst, b.rect.Min.X+3, b.rect.Min.Y+16, strconv.Itoa(b.width), th.ButtonText)
	lineY := (b.rect.Min.Y + b.rect.Max.Y) / 2
	x0 := b.rect.Min.X + 8 + raster.MeasureText(strconv.Itoa(b.width))
	raster.Line(dst, image.Pt(x0, lineY), image.Pt(b.rect.Max.X-4, lineY), b.sel.col.Value, b.width)
}

func (b *widthBox) Rect() image.Rectangle     { return b.rect }
func (b *widthBox) SetRect(r image.Rectangle) { b.rect = r }

func (b *widthBox) Activate() {
	if b.onSelect != nil {
		b.onSelect()
	}
}

// WidthSelector is a row of boxes, one per line width, each showing a
// sample stroke in the current color.
type WidthSelector struct {
	group
	widths []int
	th     *theme.Theme
	col    palette.Color
	// OnChange is called with the newly selected width.
	OnChange func(int)
}

// NewWidthSelector returns a selector offering widths with selected highlighted.
func NewWidthSelector(th *theme.Theme, widths []int, selected int, col palette.Color) *WidthSelector {
	w := &WidthSelector{widths: widths, th: th, col: col}
	w.hover = -1
	w.selected = -1
	for i, width := range widths {
		idx := i
		if width == selected {
			w.selected = i
		}
		w.buttons = append(w.buttons, &CacheButton{Button: &widthBox{width: width, sel: w, onSelect: func() {
			w.selected = idx
			if w.OnChange != nil {
				w.OnChange(w.widths[idx])
			}
		}}})
	}
	return w
}

// Layout places the boxes left to right starting at origin.
func (w *WidthSelector) Layout(origin image.Point) {
	x := origin.X + 4
	for _, b := range w.buttons {
		b.SetRect(image.Rect(x, origin.Y+2, x+widthBoxWidth, origin.Y+BarHeight-2))
		x += widthBoxWidth + cellGap
	}
}

// Width is the horizontal space the selector needs.
func (w *WidthSelector) Width() int { return 8 + len(w.buttons)*(widthBoxWidth+cellGap) }

// Draw renders the selector into dst.
func (w *WidthSelector) Draw(dst *image.RGBA) { w.draw(dst) }

// SetColor changes the color of the sample strokes.
func (w *WidthSelector) SetColor(c palette.Color) {
	if c == w.col {
		return
	}
	w.col = c
	w.invalidate()
}

// Selected returns the highlighted width, or 0 when none is.
func (w *WidthSelector) Selected() int {
	if w.selected < 0 {
		return 0
	}
	return w.widths[w.selected]
}
