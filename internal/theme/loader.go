package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const ext = ".theme"

// Loader resolves theme names against the embedded themes and a list of
// directories.
type Loader struct {
	// Dirs are searched in order after the embedded themes.
	Dirs []string
}

// NewLoader searches extra first, then the per-user and system theme
// directories. Empty entries in extra are skipped.
func NewLoader(extra ...string) *Loader {
	var dirs []string
	for _, d := range extra {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return &Loader{Dirs: append(dirs, filepath.Join(userDir(), "themes"), "/usr/share/sketchpad/themes")}
}

func userDir() string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "sketchpad")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sketchpad")
}

// Load returns the theme called name. name may also be a path to a theme
// file. An empty name yields Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if isFile(name) {
		return loadFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ext) {
		filename += ext
	}
	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}
	for _, dir := range l.Dirs {
		if path := filepath.Join(dir, filename); isFile(path) {
			return loadFile(path)
		}
	}
	return nil, fmt.Errorf("theme '%s' not found", name)
}

// Names lists every theme Load can find by name, sorted.
func (l *Loader) Names() []string {
	seen := map[string]bool{}
	if entries, err := fs.ReadDir(EmbeddedThemes, "defaults"); err == nil {
		for _, e := range entries {
			seen[strings.TrimSuffix(e.Name(), ext)] = true
		}
	}
	for _, dir := range l.Dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
				seen[strings.TrimSuffix(e.Name(), ext)] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

func loadFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
