package shell

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchpad/internal/raster"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// painter runs drawFrame on its own goroutine. A new frame cancels the one in
// flight unless frameDropThreshold frames in a row were already dropped.
type painter struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	drops  int

	ch   chan paintState
	done chan struct{}
	root context.Context
	stop context.CancelFunc
}

func newPainter(draw func(context.Context, paintState)) *painter {
	p := &painter{ch: make(chan paintState, 1), done: make(chan struct{})}
	p.root, p.stop = context.WithCancel(context.Background())
	go func() {
		defer close(p.done)
		for st := range p.ch {
			ctx, cancel := context.WithCancel(p.root)
			p.mu.Lock()
			p.cancel = cancel
			p.mu.Unlock()
			draw(ctx, st)
			p.mu.Lock()
			p.cancel = nil
			if ctx.Err() == nil {
				p.drops = 0
			}
			p.mu.Unlock()
			cancel()
		}
	}()
	return p
}

// submit replaces any queued frame with st.
func (p *painter) submit(st paintState) {
	p.mu.Lock()
	if p.cancel != nil && p.drops < frameDropThreshold {
		p.cancel()
		p.drops++
	}
	p.mu.Unlock()
	select {
	case <-p.ch:
	default:
	}
	p.ch <- st
}

// close cancels every pending frame and waits for the goroutine to exit.
// submit must not be called afterwards.
func (p *painter) close() {
	p.stop()
	close(p.ch)
	<-p.done
}

type paneFrame struct {
	rect image.Rectangle
	img  *image.RGBA
}

// paintState is an immutable view of the window handed to the painter.
type paintState struct {
	size         image.Point
	chrome       *image.RGBA
	panes        []paneFrame
	message      string
	messageUntil time.Time
}

// frame returns the current paint state. Images in it are never modified
// afterwards, so the painter may use them on another goroutine.
func (s *session) frame() paintState {
	if s.stale || s.chrome == nil || s.chrome.Bounds().Size() != s.layout.size {
		s.chrome = s.renderChrome()
		s.stale = false
	}
	st := paintState{size: s.layout.size, chrome: s.chrome, message: s.message, messageUntil: s.messageUntil}
	for _, p := range s.panes {
		if p.frame == nil || p.canvas.Generation() != p.gen {
			p.frame, p.gen = p.canvas.Snapshot()
		}
		st.panes = append(st.panes, paneFrame{rect: p.rect, img: p.frame})
	}
	return st
}

func (s *session) renderChrome() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: s.layout.size})
	raster.Fill(img, img.Bounds(), s.th.Background)
	raster.Fill(img, image.Rect(0, 0, s.layout.size.X, s.layout.chrome), s.th.BarBackground)
	s.swatch.Draw(img)
	s.widths.Draw(img)
	s.bar.Draw(img)
	for _, p := range s.panes {
		col := s.th.SurfaceBorder
		if p == s.hover {
			col = s.th.SurfaceActive
		}
		raster.Rect(img, p.rect.Inset(-border), col, border)
	}
	return img
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(st.size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	dst := b.RGBA()
	draw.Draw(dst, dst.Bounds(), st.chrome, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}

	for _, p := range st.panes {
		draw.Draw(dst, p.rect, p.img, image.Point{}, draw.Src)
		if ctx.Err() != nil {
			return
		}
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		drawMessage(dst, st.message)
	}

	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func drawMessage(dst *image.RGBA, msg string) {
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: basicfont.Face7x13}
	wmsg := d.MeasureString(msg).Ceil()
	size := dst.Bounds().Size()
	px := (size.X - wmsg) / 2
	py := size.Y / 2
	rect := image.Rect(px-8, py-13-8, px+wmsg+8, py+8)
	draw.Draw(dst, rect, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
	raster.Rect(dst, rect, color.Black, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}
