// Package fyneui hosts drawing surfaces in a fyne window.
package fyneui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/example/sketchpad/internal/input"
	"github.com/example/sketchpad/internal/raster"
	"github.com/example/sketchpad/internal/sketch"
)

// SurfaceWidget shows one drawing surface and feeds it pointer events.
type SurfaceWidget struct {
	widget.BaseWidget
	ID      string
	Surface *sketch.Surface
	Canvas  *raster.Canvas

	// OnUse is called whenever the surface receives a button press.
	OnUse func(*SurfaceWidget)

	clicks  *input.ClickTracker
	pressed bool
	border  color.Color
	now     func() time.Time
}

var _ fyne.Widget = (*SurfaceWidget)(nil)
var _ fyne.Draggable = (*SurfaceWidget)(nil)
var _ desktop.Mouseable = (*SurfaceWidget)(nil)
var _ desktop.Hoverable = (*SurfaceWidget)(nil)

// NewSurfaceWidget wraps a surface drawing into c.
func NewSurfaceWidget(s *sketch.Surface, c *raster.Canvas, doubleClick time.Duration, border color.Color) *SurfaceWidget {
	w := &SurfaceWidget{
		ID:      uuid.NewString()[:8],
		Surface: s,
		Canvas:  c,
		clicks:  input.NewClickTracker(doubleClick),
		border:  border,
		now:     time.Now,
	}
	w.ExtendBaseWidget(w)
	w.logf("created")
	return w
}

func (w *SurfaceWidget) logf(format string, args ...any) {
	log.Printf("surface %s (%s): %s", w.ID, w.Surface.Mode(), fmt.Sprintf(format, args...))
}

func toPoint(p fyne.Position) sketch.Point { return sketch.Pt(int(p.X), int(p.Y)) }

func (w *SurfaceWidget) MouseDown(e *desktop.MouseEvent) {
	p := toPoint(e.Position)
	switch e.Button {
	case desktop.MouseButtonPrimary:
		w.pressed = true
		if w.clicks.Press(int(e.Button), p.Image(), w.now()) {
			wasOpen := w.Surface.Open()
			w.Surface.DoubleClick(p)
			if wasOpen && !w.Surface.Open() {
				w.logf("shape closed")
			}
		} else {
			w.Surface.PrimaryPress(p)
		}
	case desktop.MouseButtonSecondary:
		before := len(w.Surface.Segments())
		w.Surface.SecondaryClick()
		if after := len(w.Surface.Segments()); after < before {
			w.logf("undo, %d segments left", after)
		}
	default:
		return
	}
	if w.OnUse != nil {
		w.OnUse(w)
	}
	w.Refresh()
}

func (w *SurfaceWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !w.pressed {
		return
	}
	w.pressed = false
	w.Surface.PrimaryRelease(toPoint(e.Position))
	w.Refresh()
}

// Dragged positions are relative to the widget and may lie outside it.
func (w *SurfaceWidget) Dragged(e *fyne.DragEvent) {
	if !w.pressed {
		return
	}
	w.Surface.PrimaryDrag(toPoint(e.Position))
	w.Refresh()
}

func (w *SurfaceWidget) DragEnd() {}

func (w *SurfaceWidget) MouseIn(e *desktop.MouseEvent) { w.MouseMoved(e) }

func (w *SurfaceWidget) MouseMoved(e *desktop.MouseEvent) {
	w.Surface.PointerMove(toPoint(e.Position))
	w.Refresh()
}

func (w *SurfaceWidget) MouseOut() {
	w.Surface.PointerLeave()
	w.Refresh()
}

// Snapshot returns a copy of the rendered surface.
func (w *SurfaceWidget) Snapshot() *image.RGBA {
	img, _ := w.Canvas.Snapshot()
	return img
}

func (w *SurfaceWidget) CreateRenderer() fyne.WidgetRenderer {
	img, gen := w.Canvas.Snapshot()
	r := &surfaceRenderer{w: w, gen: gen}
	r.image = canvas.NewImageFromImage(img)
	r.image.FillMode = canvas.ImageFillOriginal
	r.image.ScaleMode = canvas.ImageScalePixels
	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = w.border
	frame.StrokeWidth = 1
	r.objects = []fyne.CanvasObject{container.NewStack(r.image, frame)}
	return r
}

type surfaceRenderer struct {
	w       *SurfaceWidget
	image   *canvas.Image
	objects []fyne.CanvasObject
	gen     uint64
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *surfaceRenderer) Layout(size fyne.Size) { r.objects[0].Resize(size) }

func (r *surfaceRenderer) MinSize() fyne.Size {
	w, h := r.w.Surface.Size()
	return fyne.NewSize(float32(w), float32(h))
}

func (r *surfaceRenderer) Refresh() {
	if r.w.Canvas.Generation() == r.gen {
		return
	}
	r.image.Image, r.gen = r.w.Canvas.Snapshot()
	r.image.Refresh()
}

func (r *surfaceRenderer) Destroy() {}
