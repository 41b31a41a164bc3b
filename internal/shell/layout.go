package shell

import (
	"image"

	"github.com/example/sketchpad/internal/widget"
)

const (
	padding = 8
	border  = 1
)

// layout positions the chrome and every surface inside the window.
type layout struct {
	swatch image.Point
	widths image.Point
	panes  []image.Rectangle
	bar    image.Rectangle
	size   image.Point
	chrome int // height of the top bars
}

// computeLayout stacks n surfaces of w×h vertically between the top bars
// and the shortcut bar. minWidth is the widest bar.
func computeLayout(n, w, h, minWidth int) layout {
	var l layout
	l.swatch = image.Pt(0, 0)
	l.widths = image.Pt(0, widget.BarHeight)
	l.chrome = 2 * widget.BarHeight

	width := w + 2*padding
	if width < minWidth {
		width = minWidth
	}
	x := (width - w) / 2
	y := l.chrome + padding
	for i := 0; i < n; i++ {
		l.panes = append(l.panes, image.Rect(x, y, x+w, y+h))
		y += h + padding
	}
	l.bar = image.Rect(0, y, width, y+widget.BarHeight)
	l.size = image.Pt(width, y+widget.BarHeight)
	return l
}

// resize keeps surfaces where they are and moves the shortcut bar to the
// bottom edge of a window of the given size.
func (l layout) resize(width, height int) layout {
	out := l
	out.panes = append([]image.Rectangle(nil), l.panes...)
	out.size = image.Pt(width, height)
	top := height - widget.BarHeight
	if len(l.panes) > 0 {
		if last := l.panes[len(l.panes)-1].Max.Y + padding; top < last {
			top = last
		}
	}
	out.bar = image.Rect(0, top, width, top+widget.BarHeight)
	return out
}
