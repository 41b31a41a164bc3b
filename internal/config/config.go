package config

import (
	"fmt"
	"image/color"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Copy   bool
	Render bool
}

// Canvas holds the settings every drawing surface starts with.
type Canvas struct {
	Width      int
	Height     int
	Background color.RGBA
	LineWidth  int
	Color      string
	Readout    bool
}

// Layout lists the drawing mode of each surface shown in the window.
type Layout struct {
	Surfaces []string
}

// Config holds the application configuration.
type Config struct {
	Theme         string
	Toolkit       string
	DoubleClickMS int
	Canvas        Canvas
	Layout        Layout
	Notify        Notify
	Themes        map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:         "", // Default to empty to allow fallback to Env/Default
		DoubleClickMS: 500,
		Canvas: Canvas{
			Width:      300,
			Height:     300,
			Background: color.RGBA{255, 255, 0, 255},
			LineWidth:  palette.DefaultWidth(),
			Color:      palette.DefaultColor().Name,
			Readout:    true,
		},
		Layout: Layout{Surfaces: []string{"freehand", "polyline"}},
		Themes: make(map[string]*theme.Theme),
	}
}

// DoubleClick returns the double-click interval.
func (c *Config) DoubleClick() time.Duration {
	return time.Duration(c.DoubleClickMS) * time.Millisecond
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.Toolkit != "" {
		fmt.Fprintf(&sb, "toolkit = %s\n", c.Toolkit)
	}
	fmt.Fprintf(&sb, "double_click_ms = %d\n", c.DoubleClickMS)
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "background = %s\n", toHex(c.Canvas.Background))
	fmt.Fprintf(&sb, "line_width = %d\n", c.Canvas.LineWidth)
	if c.Canvas.Color != "" {
		fmt.Fprintf(&sb, "color = %s\n", c.Canvas.Color)
	}
	fmt.Fprintf(&sb, "readout = %v\n", c.Canvas.Readout)
	sb.WriteString("\n")

	sb.WriteString("[layout]\n")
	fmt.Fprintf(&sb, "surfaces = %s\n", strings.Join(c.Layout.Surfaces, ","))
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "render = %v\n", c.Notify.Render)
	sb.WriteString("\n")

	// Themes sections
	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		val := reflect.ValueOf(t).Elem()
		typ := val.Type()
		for i := 0; i < typ.NumField(); i++ {
			if col, ok := val.Field(i).Interface().(color.RGBA); ok {
				fmt.Fprintf(&sb, "%s: %s\n", typ.Field(i).Name, toHex(col))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	return palette.Color{Value: c}.Hex()
}
