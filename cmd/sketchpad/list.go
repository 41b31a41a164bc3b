package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/example/sketchpad/internal/palette"
	"github.com/example/sketchpad/internal/theme"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r.subcommand("colors"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	w := c.out()
	fmt.Fprintln(w, "available swatch colors (* marks the default color):")
	for idx, entry := range palette.Colors() {
		marker := " "
		if idx == palette.DefaultColorIndex() {
			marker = "*"
		}
		v := entry.Value
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", v.R, v.G, v.B)
		fmt.Fprintf(w, "%s %2d: %-12s %s %s\n", marker, idx, entry, entry.Hex(), block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type widthsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseWidthsCmd(args []string, r *root) (*widthsCmd, error) {
	fs := flag.NewFlagSet("widths", flag.ExitOnError)
	cmd := &widthsCmd{root: r.subcommand("widths"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *widthsCmd) Run() error {
	w := c.out()
	fmt.Fprintln(w, "available line widths (* marks the default width):")
	for _, width := range palette.Widths() {
		marker := " "
		if width == palette.DefaultWidth() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %3dpx\n", marker, width)
	}
	return nil
}

func (c *widthsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ExitOnError)
	cmd := &themesCmd{root: r.subcommand("themes"), fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *themesCmd) Run() error {
	w := c.out()
	active := ""
	if c.activeTheme != nil {
		active = c.activeTheme.Name
	}
	show := func(name, source string, t *theme.Theme) {
		marker := " "
		if t.Name == active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-16s %s\n", marker, name, source)
	}

	fmt.Fprintln(w, "available themes (* marks the active theme):")
	loader := theme.NewLoader(c.themeDir)
	for _, name := range loader.Names() {
		t, err := loader.Load(name)
		if err != nil {
			fmt.Fprintf(w, "  %-16s %v\n", name, err)
			continue
		}
		show(name, "", t)
	}
	var names []string
	for name := range c.config.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		show(name, "(config)", c.config.Themes[name])
	}
	return nil
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
