package fyneui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/example/sketchpad/internal/clipboard"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/raster"
	"github.com/example/sketchpad/internal/shell"
	"github.com/example/sketchpad/internal/sketch"
)

// window holds the surfaces of one fyne window and the controls shared by
// all of them.
type window struct {
	cfg      *shell.App
	surfaces []*SurfaceWidget
	lastUsed *SurfaceWidget
	status   *widget.Label
	widthLbl *widget.Label
}

func newWindow(cfg *shell.App) *window {
	w := &window{cfg: cfg, status: widget.NewLabel("Ready"), widthLbl: widget.NewLabel("")}
	for _, m := range cfg.Modes {
		c := raster.New(cfg.Width, cfg.Height, cfg.Background.Value)
		s := sketch.New(c,
			sketch.WithMode(m),
			sketch.WithSize(cfg.Width, cfg.Height),
			sketch.WithBackground(cfg.Background.Value),
			sketch.WithLineColor(cfg.LineColor),
			sketch.WithLineWidth(palette.ClampWidth(cfg.LineWidth)),
			sketch.WithReadouts(cfg.Readouts),
		)
		sw := NewSurfaceWidget(s, c, cfg.DoubleClick, cfg.Theme.SurfaceBorder)
		sw.OnUse = func(used *SurfaceWidget) { w.lastUsed = used }
		w.surfaces = append(w.surfaces, sw)
	}
	w.showWidth(palette.ClampWidth(cfg.LineWidth))
	return w
}

func (w *window) setColor(c palette.Color) {
	for _, s := range w.surfaces {
		s.Surface.SetLineColor(c)
		s.Refresh()
	}
	log.Printf("line color %s", c)
}

func (w *window) setWidth(width int) {
	for _, s := range w.surfaces {
		s.Surface.SetLineWidth(width)
		s.Refresh()
	}
	w.showWidth(width)
	log.Printf("line width %dpx", width)
}

func (w *window) showWidth(width int) { w.widthLbl.SetText(fmt.Sprintf("%dpx", width)) }

func (w *window) copy() {
	s := w.lastUsed
	if s == nil && len(w.surfaces) > 0 {
		s = w.surfaces[0]
	}
	if s == nil {
		return
	}
	img := s.Snapshot()
	if err := clipboard.WriteImage(img); err != nil {
		log.Printf("copy: %v", err)
		w.status.SetText(fmt.Sprintf("copy failed: %v", err))
		return
	}
	detail := fmt.Sprintf("%s surface", s.Surface.Mode())
	s.logf("copied to clipboard")
	w.status.SetText(detail + " copied to clipboard")
	w.cfg.Notifier.Copy(detail, img)
}

func (w *window) content() fyne.CanvasObject {
	slider := widget.NewSlider(palette.MinWidth, palette.MaxWidth)
	slider.Step = 1
	slider.SetValue(float64(palette.ClampWidth(w.cfg.LineWidth)))
	slider.OnChanged = func(v float64) { w.setWidth(int(v)) }
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), slider)

	top := container.NewVBox(
		container.NewHBox(widget.NewLabel("Color:"), newSwatchBar(w.cfg.Theme.SwatchBorder, w.setColor), layout.NewSpacer()),
		container.NewHBox(widget.NewLabel("Width:"), sliderBox, w.widthLbl, layout.NewSpacer()),
	)

	surfaces := container.NewVBox()
	for _, s := range w.surfaces {
		surfaces.Add(container.NewCenter(s))
	}
	bottom := container.NewHBox(widget.NewLabel("^C:copy  Right:undo  Q:quit"), layout.NewSpacer(), w.status)
	return container.NewBorder(top, bottom, nil, nil, container.NewVScroll(surfaces))
}

// Run opens the surfaces described by cfg in a fyne window and blocks until
// it is closed.
func Run(cfg *shell.App) {
	a := app.New()
	win := a.NewWindow("Sketchpad")
	w := newWindow(cfg)
	win.SetContent(w.content())

	win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyC, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { w.copy() })
	win.Canvas().SetOnTypedRune(func(r rune) {
		if r == 'q' || r == 'Q' {
			log.Print("quit")
			win.Close()
		}
	})
	win.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		if e.Name == fyne.KeyEscape {
			for _, s := range w.surfaces {
				s.MouseOut()
			}
		}
	})
	win.SetOnClosed(func() { log.Print("window closed") })
	win.ShowAndRun()
}
