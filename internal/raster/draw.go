package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face is the font used for readouts and widget labels.
var Face font.Face = basicfont.Face7x13

func setThickPixel(img *image.RGBA, x, y, thick int, col color.RGBA) {
	r := thick / 2
	b := img.Bounds()
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(b) {
				img.SetRGBA(px, py, col)
			}
		}
	}
}

// clip trims the segment p0-p1 to r (Liang-Barsky). ok is false when the
// segment misses r entirely.
func clip(p0, p1 image.Point, r image.Rectangle) (a, b image.Point, ok bool) {
	if p0.In(r) && p1.In(r) {
		return p0, p1, true
	}
	x0, y0 := float64(p0.X), float64(p0.Y)
	dx, dy := float64(p1.X)-x0, float64(p1.Y)-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - float64(r.Min.X)},
		{dx, float64(r.Max.X-1) - x0},
		{-dy, y0 - float64(r.Min.Y)},
		{dy, float64(r.Max.Y-1) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	a = image.Pt(int(math.Round(x0+t0*dx)), int(math.Round(y0+t0*dy)))
	b = image.Pt(int(math.Round(x0+t1*dx)), int(math.Round(y0+t1*dy)))
	return a, b, true
}

// Line draws a line of the given thickness from p0 to p1 inclusive. The
// segment is clipped to the image, widened by the pen radius, before it is
// walked, so far out-of-range endpoints cost no more than visible ones.
func Line(img *image.RGBA, p0, p1 image.Point, col color.Color, thick int) {
	if thick < 1 {
		thick = 1
	}
	p0, p1, ok := clip(p0, p1, img.Bounds().Inset(-(thick/2 + 1)))
	if !ok {
		return
	}
	c := color.RGBAModel.Convert(col).(color.RGBA)
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect outlines rect with lines of the given thickness.
func Rect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	Line(img, rect.Min, image.Pt(rect.Max.X-1, rect.Min.Y), col, thick)
	Line(img, image.Pt(rect.Max.X-1, rect.Min.Y), image.Pt(rect.Max.X-1, rect.Max.Y-1), col, thick)
	Line(img, image.Pt(rect.Max.X-1, rect.Max.Y-1), image.Pt(rect.Min.X, rect.Max.Y-1), col, thick)
	Line(img, image.Pt(rect.Min.X, rect.Max.Y-1), rect.Min, col, thick)
}

// Fill paints rect with col.
func Fill(img *image.RGBA, rect image.Rectangle, col color.Color) {
	draw.Draw(img, rect, &image.Uniform{col}, image.Point{}, draw.Src)
}

// MeasureText returns the advance width of text in Face.
func MeasureText(text string) int {
	d := &font.Drawer{Face: Face}
	return d.MeasureString(text).Ceil()
}

// Text draws text with its baseline starting at (x, y).
func Text(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{Dst: img, Src: image.NewUniform(col), Face: Face, Dot: fixed.P(x, y)}
	d.DrawString(text)
}
