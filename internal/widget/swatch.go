package widget

import (
	"image"
	"image/color"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/raster"
	"github.com/example/sketchpad/internal/theme"
)

const (
	// BarHeight is the height of every horizontal bar.
	BarHeight = 24
	cellSize  = 16
	cellGap   = 2
)

type swatchCell struct {
	col   palette.Color
	th    *theme.Theme
	rect  image.Rectangle
	onPick func()
}

func (c *swatchCell) Draw(dst *image.RGBA, state ButtonState) {
	raster.Fill(dst, c.rect, c.col.Value)
	switch state {
	case StateHover:
		raster.Fill(dst, c.rect, color.RGBA{255, 255, 255, 80})
		raster.Fill(dst, c.rect.Inset(2), c.col.Value)
	case StatePressed:
		raster.Rect(dst, c.rect, c.th.Selection, 2)
		return
	}
	raster.Rect(dst, c.rect, c.th.SwatchBorder, 1)
}

func (c *swatchCell) Rect() image.Rectangle     { return c.rect }
func (c *swatchCell) SetRect(r image.Rectangle) { c.rect = r }

func (c *swatchCell) Activate() {
	if c.onPick != nil {
		c.onPick()
	}
}

// Swatch is a strip of clickable colored rectangles.
type Swatch struct {
	group
	colors []palette.Color
	th     *theme.Theme
	// OnPick is called with the newly selected color.
	OnPick func(palette.Color)
}

// NewSwatch returns a swatch offering colors with selected highlighted.
func NewSwatch(th *theme.Theme, colors []palette.Color, selected int) *Swatch {
	s := &Swatch{colors: colors, th: th}
	s.hover = -1
	s.selected = selected
	for i, c := range colors {
		idx := i
		s.buttons = append(s.buttons, &CacheButton{Button: &swatchCell{col: c, th: th, onPick: func() {
			s.selected = idx
			if s.OnPick != nil {
				s.OnPick(s.colors[idx])
			}
		}}})
	}
	return s
}

// Layout places the cells left to right starting at origin.
func (s *Swatch) Layout(origin image.Point) {
	x := origin.X + 4
	y := origin.Y + (BarHeight-cellSize)/2
	for _, b := range s.buttons {
		b.SetRect(image.Rect(x, y, x+cellSize, y+cellSize))
		x += cellSize + cellGap
	}
}

// Width is the horizontal space the swatch needs.
func (s *Swatch) Width() int { return 8 + len(s.buttons)*(cellSize+cellGap) }

// Draw renders the swatch into dst.
func (s *Swatch) Draw(dst *image.RGBA) { s.draw(dst) }

// At returns the color under p.
func (s *Swatch) At(p image.Point) (palette.Color, bool) {
	idx := s.index(p)
	if idx < 0 {
		return palette.Color{}, false
	}
	return s.colors[idx], true
}

// Selected returns the highlighted color.
func (s *Swatch) Selected() (palette.Color, bool) {
	if s.selected < 0 || s.selected >= len(s.colors) {
		return palette.Color{}, false
	}
	return s.colors[s.selected], true
}

// Select highlights c without calling OnPick. Colors outside the swatch
// leave nothing highlighted.
func (s *Swatch) Select(c palette.Color) {
	s.selected = -1
	for i, existing := range s.colors {
		if existing.Value == c.Value {
			s.selected = i
			return
		}
	}
}
