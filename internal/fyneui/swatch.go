package fyneui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/example/sketchpad/internal/palette"
)

// colorSwatch is one tappable color cell.
type colorSwatch struct {
	widget.BaseWidget
	Color    palette.Color
	OnTapped func(palette.Color)
	border   color.Color
}

func newColorSwatch(c palette.Color, border color.Color, tapped func(palette.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped, border: border}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.Value)
	rect.SetMinSize(fyne.NewSize(20, 20))

	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = s.border
	frame.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, frame))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// newSwatchBar lays out one cell per palette color.
func newSwatchBar(border color.Color, onPick func(palette.Color)) fyne.CanvasObject {
	box := container.NewHBox()
	for _, c := range palette.Colors() {
		box.Add(newColorSwatch(c, border, onPick))
	}
	return box
}
