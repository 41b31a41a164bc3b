package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const (
	// MinWidth and MaxWidth bound the line widths offered by the width selector.
	MinWidth = 1
	MaxWidth = 10

	defaultColorIndex = 2
	defaultWidth      = 2
)

// Color is a named drawing color as reported by the color swatch.
type Color struct {
	Name  string
	Value color.RGBA
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) { return c.Value.RGBA() }

// Hex returns the color as #RRGGBB, or #RRGGBBAA when not opaque.
func (c Color) Hex() string {
	if c.Value.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.Value.R, c.Value.G, c.Value.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.Value.R, c.Value.G, c.Value.B, c.Value.A)
}

// String returns the display name, falling back to the hex value.
func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Hex()
}

var colors = []Color{
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Lime", color.RGBA{0, 255, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Cyan", color.RGBA{0, 255, 255, 255}},
	{"Magenta", color.RGBA{255, 0, 255, 255}},
	{"Maroon", color.RGBA{128, 0, 0, 255}},
	{"Green", color.RGBA{0, 128, 0, 255}},
	{"Navy", color.RGBA{0, 0, 128, 255}},
	{"Olive", color.RGBA{128, 128, 0, 255}},
	{"Teal", color.RGBA{0, 128, 128, 255}},
	{"Purple", color.RGBA{128, 0, 128, 255}},
	{"Silver", color.RGBA{192, 192, 192, 255}},
	{"Gray", color.RGBA{128, 128, 128, 255}},
}

// Colors returns a copy of the swatch colors in display order.
func Colors() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

// At returns the swatch color at idx, clamped to the palette.
func At(idx int) Color {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(colors) {
		idx = len(colors) - 1
	}
	return colors[idx]
}

// IndexOf returns the swatch index of c or -1 when c is not a swatch color.
func IndexOf(c Color) int {
	for i, existing := range colors {
		if existing.Value == c.Value {
			return i
		}
	}
	return -1
}

// DefaultColor is the color a new surface draws with.
func DefaultColor() Color { return colors[defaultColorIndex] }

// DefaultColorIndex returns the swatch index of DefaultColor.
func DefaultColorIndex() int { return defaultColorIndex }

// DefaultWidth is the line width a new surface draws with.
func DefaultWidth() int { return defaultWidth }

// Widths returns the values offered by the width selector.
func Widths() []int {
	out := make([]int, 0, MaxWidth-MinWidth+1)
	for w := MinWidth; w <= MaxWidth; w++ {
		out = append(out, w)
	}
	return out
}

// ClampWidth forces w into the selector range.
func ClampWidth(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

// Lookup resolves a palette name, an SVG color name or a #RRGGBB[AA] value.
func Lookup(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Color{}, fmt.Errorf("color cannot be empty")
	}
	for _, entry := range colors {
		if strings.EqualFold(entry.Name, name) {
			return entry, nil
		}
	}
	if c, ok := colornames.Map[name]; ok {
		return Color{Name: name, Value: c}, nil
	}
	if strings.HasPrefix(name, "#") {
		c, err := ParseHex(name)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return Color{Value: c}, nil
	}
	return Color{}, fmt.Errorf("invalid color %q", s)
}

// ParseHex parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseHex(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("color must start with #")
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		// #RGB shorthand
		val, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return color.RGBA{}, err
		}
		r := uint8(val>>8) & 0xF
		g := uint8(val>>4) & 0xF
		b := uint8(val) & 0xF
		return color.RGBA{R: r<<4 | r, G: g<<4 | g, B: b<<4 | b, A: 255}, nil
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 16),
			G: uint8((val >> 8) & 0xFF),
			B: uint8(val & 0xFF),
			A: 255,
		}, nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid hex length")
}
