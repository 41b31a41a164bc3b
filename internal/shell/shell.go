// Package shell hosts drawing surfaces in a shiny window.
package shell

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/clipboard"
	"github.com/example/sketchpad/internal/input"
	"github.com/example/sketchpad/internal/notify"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

// App holds the configuration of a window of drawing surfaces.
type App struct {
	Theme       *theme.Theme
	Modes       []sketch.Mode
	Width       int
	Height      int
	Background  palette.Color
	LineColor   palette.Color
	LineWidth   int
	Readouts    bool
	DoubleClick time.Duration
	Notifier    *notify.Notifier

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an App during creation.
type Option func(*App)

// WithTheme sets the chrome colors.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.Theme = t } }

// WithModes sets one surface per mode, top to bottom.
func WithModes(modes ...sketch.Mode) Option { return func(a *App) { a.Modes = modes } }

// WithSize sets the size of every surface.
func WithSize(w, h int) Option { return func(a *App) { a.Width, a.Height = w, h } }

// WithBackground sets the surface background.
func WithBackground(c palette.Color) Option { return func(a *App) { a.Background = c } }

// WithLineColor sets the initial line color.
func WithLineColor(c palette.Color) Option { return func(a *App) { a.LineColor = c } }

// WithLineWidth sets the initial line width.
func WithLineWidth(w int) Option { return func(a *App) { a.LineWidth = w } }

// WithReadouts toggles the position and color readouts.
func WithReadouts(enabled bool) Option { return func(a *App) { a.Readouts = enabled } }

// WithDoubleClick sets the double-click interval.
func WithDoubleClick(d time.Duration) Option { return func(a *App) { a.DoubleClick = d } }

// WithNotifier sets the notifier used after copying.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.Notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App with the two surfaces of the classic layout.
func New(opts ...Option) *App {
	a := &App{
		Theme:       theme.Default(),
		Modes:       []sketch.Mode{sketch.Freehand, sketch.Polyline},
		Width:       300,
		Height:      300,
		Background:  palette.Color{Value: sketch.DefaultBackground},
		LineColor:   palette.DefaultColor(),
		LineWidth:   palette.DefaultWidth(),
		Readouts:    true,
		DoubleClick: input.DefaultInterval,
	}
	for _, o := range opts {
		o(a)
	}
	if len(a.Modes) == 0 {
		a.Modes = []sketch.Mode{sketch.Polyline}
	}
	return a
}

func (a *App) session() *session {
	s := newSession(sessionConfig{
		theme:       a.Theme,
		modes:       a.Modes,
		width:       a.Width,
		height:      a.Height,
		background:  a.Background,
		lineColor:   a.LineColor,
		lineWidth:   palette.ClampWidth(a.LineWidth),
		readouts:    a.Readouts,
		doubleClick: a.DoubleClick,
	})
	s.copyImage = clipboard.WriteImage
	s.onCopy = a.Notifier.Copy
	return s
}

func (a *App) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

func (a *App) Main(s screen.Screen) {
	sess := a.session()
	width, height := sess.layout.size.X, sess.layout.size.Y
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Sketchpad"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	defer a.notifyClose()

	// Registered after Release so the painter is gone before the window is.
	p := newPainter(func(ctx context.Context, st paintState) { drawFrame(ctx, s, w, st) })
	defer p.close()

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				log.Print("window closed")
				return
			}
		case size.Event:
			if e.WidthPx > 0 && e.HeightPx > 0 {
				sess.resize(e.WidthPx, e.HeightPx)
			}
			w.Send(paint.Event{})
		case paint.Event:
			p.submit(sess.frame())
		case mouse.Event:
			if sess.handleMouse(e, time.Now()) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if sess.handleKey(e) {
				if sess.quit {
					log.Print("quit")
					return
				}
				w.Send(paint.Event{})
			}
		case error:
			log.Printf("window: %v", e)
		}
	}
}
