package widget

import (
	"image"
	"testing"

	"golang.org/x/mobile/event/key"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/theme"
)

type countingButton struct {
	rect  image.Rectangle
	draws int
}

func (b *countingButton) Draw(dst *image.RGBA, state ButtonState) { b.draws++ }
func (b *countingButton) Rect() image.Rectangle                    { return b.rect }
func (b *countingButton) SetRect(r image.Rectangle)                { b.rect = r }
func (b *countingButton) Activate()                                {}

func TestCacheButtonCachesPerState(t *testing.T) {
	inner := &countingButton{rect: image.Rect(0, 0, 4, 4)}
	cb := &CacheButton{Button: inner}
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	cb.Draw(dst, StateDefault)
	cb.Draw(dst, StateDefault)
	cb.Draw(dst, StateHover)
	if inner.draws != 2 {
		t.Fatalf("draws = %d, want 2", inner.draws)
	}
	cb.SetRect(image.Rect(1, 1, 5, 5))
	cb.Draw(dst, StateDefault)
	if inner.draws != 3 {
		t.Fatalf("cache not dropped after SetRect: %d draws", inner.draws)
	}
}

func TestSwatchPick(t *testing.T) {
	colors := palette.Colors()
	s := NewSwatch(theme.Default(), colors, palette.DefaultColorIndex())
	s.Layout(image.Pt(0, 0))
	var picked palette.Color
	s.OnPick = func(c palette.Color) { picked = c }

	// Fifth cell: 4 + 4*(16+2) = 76.
	p := image.Pt(80, 10)
	if c, ok := s.At(p); !ok || c.Name != "Blue" {
		t.Fatalf("At = %v, %v", c, ok)
	}
	if !s.Click(p) {
		t.Fatal("click missed")
	}
	if picked.Name != "Blue" {
		t.Fatalf("picked %v", picked)
	}
	if sel, _ := s.Selected(); sel.Name != "Blue" {
		t.Fatalf("selected %v", sel)
	}
	if s.Click(image.Pt(1000, 10)) {
		t.Fatal("click outside reported a hit")
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.Width(), BarHeight))
	s.Draw(dst)
}

func TestSwatchSelectUnknown(t *testing.T) {
	s := NewSwatch(theme.Default(), palette.Colors(), 0)
	orange, err := palette.Lookup("orange")
	if err != nil {
		t.Fatal(err)
	}
	s.Select(orange)
	if _, ok := s.Selected(); ok {
		t.Fatal("non-swatch color selected")
	}
}

func TestWidthSelector(t *testing.T) {
	w := NewWidthSelector(theme.Default(), palette.Widths(), 2, palette.DefaultColor())
	w.Layout(image.Pt(0, 30))
	if w.Selected() != 2 {
		t.Fatalf("selected %d", w.Selected())
	}
	var got int
	w.OnChange = func(v int) { got = v }
	// Seventh box: 4 + 6*(36+2) = 232.
	if !w.Click(image.Pt(240, 40)) {
		t.Fatal("click missed")
	}
	if got != 7 || w.Selected() != 7 {
		t.Fatalf("changed to %d, selected %d", got, w.Selected())
	}
	if w.Hover(image.Pt(240, 40)) != true || w.Hover(image.Pt(241, 40)) != false {
		t.Fatal("hover change not reported once")
	}
	blue, _ := palette.Lookup("blue")
	w.SetColor(blue)
	dst := image.NewRGBA(image.Rect(0, 0, w.Width(), 60))
	w.Draw(dst)
}

func TestShortcutBarMatch(t *testing.T) {
	var copied, quit int
	bar := NewShortcutBar(theme.Default(),
		&Shortcut{Label: "^C:copy", Keys: []KeyShortcut{{Rune: 'c', Modifiers: key.ModControl}}, Action: func() { copied++ }},
		&Shortcut{Label: "Q:quit", Keys: []KeyShortcut{{Rune: 'Q'}}, Action: func() { quit++ }},
		&Shortcut{Label: "Esc:clear", Keys: []KeyShortcut{{Code: key.CodeEscape}}},
	)
	bar.Layout(image.Rect(0, 100, 400, 124))

	if s, ok := bar.Match(key.Event{Rune: 'c', Code: key.CodeC, Modifiers: key.ModControl}); !ok {
		t.Fatal("ctrl+c not matched")
	} else {
		s.Activate()
	}
	if s, ok := bar.Match(key.Event{Rune: 'q', Code: key.CodeQ}); !ok {
		t.Fatal("q not matched")
	} else {
		s.Activate()
	}
	if _, ok := bar.Match(key.Event{Rune: 'c', Code: key.CodeC}); ok {
		t.Fatal("plain c matched ctrl+c")
	}
	if _, ok := bar.Match(key.Event{Rune: -1, Code: key.CodeEscape}); !ok {
		t.Fatal("escape not matched")
	}
	if copied != 1 || quit != 1 {
		t.Fatalf("copied=%d quit=%d", copied, quit)
	}
	if !bar.Click(image.Pt(10, 110)) || copied != 2 {
		t.Fatal("clicking the first shortcut did not copy")
	}
	dst := image.NewRGBA(image.Rect(0, 0, 400, 130))
	bar.Draw(dst)
}
