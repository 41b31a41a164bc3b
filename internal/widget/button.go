// Package widget draws the window chrome of the shiny host: the color
// swatch, the width selector and the shortcut bar.
package widget

import (
	"image"
	"image/draw"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
// It delegates all interface methods to the wrapped Button while
// caching the result of Draw for each state.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.Invalidate()
	}
}

// Invalidate drops the cached renderings.
func (cb *CacheButton) Invalidate() { cb.cache = [3]*image.RGBA{} }

func (cb *CacheButton) Activate() { cb.Button.Activate() }

// group is a row of cached buttons with one hovered and one selected entry.
type group struct {
	buttons  []*CacheButton
	hover    int
	selected int
}

func (g *group) draw(dst *image.RGBA) {
	for i, b := range g.buttons {
		state := StateDefault
		if i == g.selected {
			state = StatePressed
		} else if i == g.hover {
			state = StateHover
		}
		b.Draw(dst, state)
	}
}

func (g *group) index(p image.Point) int {
	for i, b := range g.buttons {
		if p.In(b.Rect()) {
			return i
		}
	}
	return -1
}

// Hover updates the hovered entry and reports whether it changed.
func (g *group) Hover(p image.Point) bool {
	idx := g.index(p)
	if idx == g.hover {
		return false
	}
	g.hover = idx
	return true
}

// Click activates the entry under p and reports whether there was one.
func (g *group) Click(p image.Point) bool {
	idx := g.index(p)
	if idx < 0 {
		return false
	}
	g.buttons[idx].Activate()
	return true
}

func (g *group) invalidate() {
	for _, b := range g.buttons {
		b.Invalidate()
	}
}
