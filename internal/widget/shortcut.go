package widget

import (
	"image"
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/sketchpad/internal/raster"
	"github.com/example/sketchpad/internal/theme"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// Shortcut is a labelled action in the shortcut bar.
type Shortcut struct {
	Label  string
	Keys   []KeyShortcut
	Action func()

	th   *theme.Theme
	rect image.Rectangle
}

func (s *Shortcut) Draw(dst *image.RGBA, state ButtonState) {
	col := s.th.ButtonBackground
	switch state {
	case StateHover:
		col = s.th.ButtonBackgroundHover
	case StatePressed:
		col = s.th.ButtonBackgroundPress
	}
	raster.Fill(dst, s.rect, col)
	raster.Rect(dst, s.rect, s.th.ButtonBorder, 1)
	raster.Text(dst, s.rect.Min.X+2, s.rect.Min.Y+14, s.Label, s.th.ButtonText)
}

func (s *Shortcut) Rect() image.Rectangle { return s.rect }

func (s *Shortcut) SetRect(r image.Rectangle) {
	if r != s.rect {
		s.rect = r
	}
}

func (s *Shortcut) Activate() {
	if s.Action != nil {
		s.Action()
	}
}

// ShortcutBar is the bar of labelled actions along the bottom of the window.
type ShortcutBar struct {
	group
	th    *theme.Theme
	items []*Shortcut
	keys  map[KeyShortcut]*Shortcut
	rect  image.Rectangle
}

// NewShortcutBar returns a bar showing items in order.
func NewShortcutBar(th *theme.Theme, items ...*Shortcut) *ShortcutBar {
	b := &ShortcutBar{th: th, items: items, keys: map[KeyShortcut]*Shortcut{}}
	b.hover = -1
	b.selected = -1
	for _, it := range items {
		it.th = th
		b.buttons = append(b.buttons, &CacheButton{Button: it})
		for _, k := range it.Keys {
			k.Rune = unicode.ToLower(k.Rune)
			b.keys[k] = it
		}
	}
	return b
}

// Layout places the bar along the top edge of rect.
func (b *ShortcutBar) Layout(rect image.Rectangle) {
	b.rect = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+BarHeight)
	x := rect.Min.X + 4
	y := rect.Min.Y + 16
	for _, cb := range b.buttons {
		w := raster.MeasureText(cb.Button.(*Shortcut).Label)
		cb.SetRect(image.Rect(x-2, y-14, x+w+2, y+4))
		x = cb.Rect().Max.X + 8
	}
}

// Draw renders the bar into dst.
func (b *ShortcutBar) Draw(dst *image.RGBA) {
	raster.Fill(dst, b.rect, b.th.BarBackground)
	b.draw(dst)
}

// Match returns the shortcut bound to a key press. Bindings without a
// Code match on the rune alone and bindings without a Rune on the code alone.
func (b *ShortcutBar) Match(e key.Event) (*Shortcut, bool) {
	r := unicode.ToLower(e.Rune)
	for _, ks := range []KeyShortcut{
		{Rune: r, Code: e.Code, Modifiers: e.Modifiers},
		{Rune: r, Modifiers: e.Modifiers},
		{Code: e.Code, Modifiers: e.Modifiers},
	} {
		if s, ok := b.keys[ks]; ok {
			return s, true
		}
	}
	return nil, false
}
