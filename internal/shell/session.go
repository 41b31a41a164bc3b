package shell

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/input"
	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/raster"
	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
	"github.com/example/sketchpad/internal/widget"
)

// pane is one drawing surface placed in the window.
type pane struct {
	id      string
	surface *sketch.Surface
	canvas  *raster.Canvas
	rect    image.Rectangle

	// last frame handed to the painter
	frame *image.RGBA
	gen   uint64
}

func (p *pane) local(pt image.Point) sketch.Point { return sketch.FromImage(pt.Sub(p.rect.Min)) }

func (p *pane) logf(format string, args ...any) {
	log.Printf("surface %s (%s): %s", p.id, p.surface.Mode(), fmt.Sprintf(format, args...))
}

// session owns the surfaces and widgets and translates window events into
// surface operations. It only runs on the event goroutine.
type session struct {
	th     *theme.Theme
	panes  []*pane
	swatch *widget.Swatch
	widths *widget.WidthSelector
	bar    *widget.ShortcutBar
	clicks *input.ClickTracker
	layout layout
	chrome *image.RGBA
	stale  bool

	hover    *pane
	dragging *pane
	lastUsed *pane

	message      string
	messageUntil time.Time
	quit         bool

	copyImage func(image.Image) error
	onCopy    func(detail string, img image.Image)
}

type sessionConfig struct {
	theme       *theme.Theme
	modes       []sketch.Mode
	width       int
	height      int
	background  palette.Color
	lineColor   palette.Color
	lineWidth   int
	readouts    bool
	doubleClick time.Duration
}

func newSession(cfg sessionConfig) *session {
	s := &session{th: cfg.theme, clicks: input.NewClickTracker(cfg.doubleClick), stale: true}

	colIdx := palette.IndexOf(cfg.lineColor)
	s.swatch = widget.NewSwatch(cfg.theme, palette.Colors(), colIdx)
	s.swatch.OnPick = s.setColor
	s.widths = widget.NewWidthSelector(cfg.theme, palette.Widths(), cfg.lineWidth, cfg.lineColor)
	s.widths.OnChange = s.setWidth
	s.bar = widget.NewShortcutBar(cfg.theme,
		&widget.Shortcut{Label: "^C:copy", Keys: []widget.KeyShortcut{{Rune: 'c', Modifiers: key.ModControl}}, Action: s.copy},
		&widget.Shortcut{Label: "Esc:clear readout", Keys: []widget.KeyShortcut{{Code: key.CodeEscape}}, Action: s.clearReadout},
		&widget.Shortcut{Label: "Right:undo", Action: s.undo},
		&widget.Shortcut{Label: "Q:quit", Keys: []widget.KeyShortcut{{Rune: 'q'}}, Action: func() { s.quit = true }},
	)

	minWidth := s.widths.Width()
	if w := s.swatch.Width(); w > minWidth {
		minWidth = w
	}
	s.layout = computeLayout(len(cfg.modes), cfg.width, cfg.height, minWidth)

	for i, m := range cfg.modes {
		c := raster.New(cfg.width, cfg.height, cfg.background.Value)
		surface := sketch.New(c,
			sketch.WithMode(m),
			sketch.WithSize(cfg.width, cfg.height),
			sketch.WithBackground(cfg.background.Value),
			sketch.WithLineColor(cfg.lineColor),
			sketch.WithLineWidth(cfg.lineWidth),
			sketch.WithReadouts(cfg.readouts),
		)
		p := &pane{id: uuid.NewString()[:8], surface: surface, canvas: c, rect: s.layout.panes[i]}
		s.panes = append(s.panes, p)
		p.logf("created %dx%d", cfg.width, cfg.height)
	}
	s.relayout(s.layout)
	return s
}

func (s *session) relayout(l layout) {
	s.layout = l
	s.swatch.Layout(l.swatch)
	s.widths.Layout(l.widths)
	s.bar.Layout(l.bar)
	s.chrome = nil
	s.stale = true
}

func (s *session) resize(width, height int) {
	s.relayout(s.layout.resize(width, height))
}

func (s *session) paneAt(pt image.Point) *pane {
	for _, p := range s.panes {
		if pt.In(p.rect) {
			return p
		}
	}
	return nil
}

func (s *session) setColor(c palette.Color) {
	for _, p := range s.panes {
		p.surface.SetLineColor(c)
	}
	s.widths.SetColor(c)
	s.stale = true
	log.Printf("line color %s", c)
}

func (s *session) setWidth(w int) {
	for _, p := range s.panes {
		p.surface.SetLineWidth(w)
	}
	s.stale = true
	log.Printf("line width %dpx", w)
}

func (s *session) undo() {
	p := s.lastUsed
	if p == nil {
		return
	}
	before := len(p.surface.Segments())
	p.surface.SecondaryClick()
	if after := len(p.surface.Segments()); after < before {
		p.logf("undo, %d segments left", after)
	}
}

func (s *session) clearReadout() {
	if p := s.hover; p != nil {
		p.surface.PointerLeave()
	}
}

func (s *session) copy() {
	p := s.lastUsed
	if p == nil {
		p = s.hover
	}
	if p == nil && len(s.panes) > 0 {
		p = s.panes[0]
	}
	if p == nil {
		return
	}
	img, _ := p.canvas.Snapshot()
	if err := s.copyImage(img); err != nil {
		log.Printf("copy: %v", err)
		s.flash(fmt.Sprintf("copy failed: %v", err))
		return
	}
	detail := fmt.Sprintf("%s surface", p.surface.Mode())
	s.flash(detail + " copied to clipboard")
	p.logf("copied to clipboard")
	if s.onCopy != nil {
		s.onCopy(detail, img)
	}
}

func (s *session) flash(msg string) {
	s.message = msg
	s.messageUntil = time.Now().Add(2 * time.Second)
}

// handleMouse routes a mouse event and reports whether a repaint is needed.
func (s *session) handleMouse(e mouse.Event, now time.Time) bool {
	pt := image.Pt(int(e.X), int(e.Y))

	if e.Direction == mouse.DirPress && s.message != "" && now.Before(s.messageUntil) {
		s.messageUntil = time.Time{}
	}

	if s.dragging == nil {
		if repaint, handled := s.handleChrome(e, pt); handled {
			s.track(nil)
			return repaint
		}
	}

	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		p := s.paneAt(pt)
		if p == nil {
			return false
		}
		s.lastUsed, s.dragging = p, p
		if s.clicks.Press(int(e.Button), pt, now) {
			wasOpen := p.surface.Open()
			p.surface.DoubleClick(p.local(pt))
			if wasOpen && !p.surface.Open() {
				p.logf("shape closed")
			}
		} else {
			p.surface.PrimaryPress(p.local(pt))
		}
		return true
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		if s.dragging == nil {
			return false
		}
		s.dragging.surface.PrimaryRelease(s.dragging.local(pt))
		s.dragging = nil
		s.track(s.paneAt(pt))
		return true
	case e.Button == mouse.ButtonRight && e.Direction == mouse.DirPress:
		p := s.paneAt(pt)
		if p == nil {
			return false
		}
		s.lastUsed = p
		s.undo()
		return true
	case e.Direction == mouse.DirNone:
		if s.dragging != nil {
			s.dragging.surface.PrimaryDrag(s.dragging.local(pt))
			return true
		}
		s.track(s.paneAt(pt))
		if s.hover != nil {
			s.hover.surface.PointerMove(s.hover.local(pt))
		}
		return true
	}
	return false
}

// track updates the hovered surface, clearing the readout of the one left.
func (s *session) track(p *pane) {
	if p == s.hover {
		return
	}
	if s.hover != nil {
		s.hover.surface.PointerLeave()
	}
	s.hover = p
	s.stale = true
}

func (s *session) handleChrome(e mouse.Event, pt image.Point) (repaint, handled bool) {
	press := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress
	switch {
	case pt.Y < s.layout.widths.Y:
		repaint = s.swatch.Hover(pt)
		if press && s.swatch.Click(pt) {
			repaint = true
		}
	case pt.Y < s.layout.chrome:
		repaint = s.widths.Hover(pt)
		if press && s.widths.Click(pt) {
			repaint = true
		}
	case pt.In(s.layout.bar):
		repaint = s.bar.Hover(pt)
		if press && s.bar.Click(pt) {
			repaint = true
		}
	default:
		a, b, c := s.swatch.Hover(pt), s.widths.Hover(pt), s.bar.Hover(pt)
		repaint = a || b || c
		if repaint {
			s.stale = true
		}
		return repaint, false
	}
	if repaint {
		s.stale = true
	}
	return repaint, true
}

// handleKey runs the shortcut bound to a key press.
func (s *session) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	sc, ok := s.bar.Match(e)
	if !ok {
		return false
	}
	sc.Activate()
	return true
}
