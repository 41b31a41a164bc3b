package theme

import (
	"embed"
	"image/color"
)

// EmbeddedThemes holds the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the colors of the window chrome around the drawing surfaces.
// Surfaces keep their own background.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background between surfaces
	Foreground color.RGBA // Bar text color

	// Bars
	BarBackground color.RGBA // Swatch, width and shortcut bars

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Swatch
	SwatchBorder color.RGBA
	Selection    color.RGBA // Outline of the selected color

	// Surfaces
	SurfaceBorder color.RGBA
	SurfaceActive color.RGBA // Border of the surface holding the pointer
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		BarBackground:         color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		SwatchBorder:          color.RGBA{96, 96, 96, 255},
		Selection:             color.RGBA{255, 255, 255, 255},
		SurfaceBorder:         color.RGBA{128, 128, 128, 255},
		SurfaceActive:         color.RGBA{0, 0, 0, 255},
	}
}
