package shell

import (
	"context"
	"image"
	"sync/atomic"
	"testing"
)

func TestPainterCloseWaitsForFrame(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool
	p := newPainter(func(ctx context.Context, _ paintState) {
		close(started)
		<-ctx.Done()
		finished.Store(true)
	})
	p.submit(paintState{})
	<-started
	p.close()
	if !finished.Load() {
		t.Fatal("close returned while a frame was still drawing")
	}
}

func TestPainterCancelsFrameInFlight(t *testing.T) {
	started := make(chan int, 2)
	canceled := make(chan int, 1)
	p := newPainter(func(ctx context.Context, st paintState) {
		id := st.size.X
		started <- id
		if id == 1 {
			<-ctx.Done()
			canceled <- id
		}
	})
	defer p.close()

	p.submit(paintState{size: image.Pt(1, 1)})
	if got := <-started; got != 1 {
		t.Fatalf("first frame %d", got)
	}
	p.submit(paintState{size: image.Pt(2, 2)})
	if got := <-canceled; got != 1 {
		t.Fatalf("canceled frame %d", got)
	}
	if got := <-started; got != 2 {
		t.Fatalf("second frame %d", got)
	}
}
