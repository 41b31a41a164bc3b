package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader finds and reads the configuration file.
type Loader struct {
	Version      string // "dev" also searches the working directory
	OverridePath string // Set at compile time if needed

	// Path is the file read by the last Load, empty when defaults were used.
	Path string
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Dir returns the per-user config directory, honouring XDG_CONFIG_HOME.
func Dir() string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "sketchpad")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sketchpad")
}

// Candidates lists the files Load tries, in order.
func (l *Loader) Candidates() []string {
	var paths []string
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	if env := os.Getenv("SKETCHPAD_CONFIG"); env != "" {
		paths = append(paths, env)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, ".sketchpadrc"))
		}
	}
	dir := Dir()
	return append(paths, filepath.Join(dir, "config.rc"), filepath.Join(dir, "sketchpad.rc"))
}

// GetConfigPath returns the first existing candidate, or "" if none exists.
func (l *Loader) GetConfigPath() string {
	for _, p := range l.Candidates() {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}

// Load reads the first config file found, or returns defaults.
func (l *Loader) Load() (*Config, error) {
	l.Path = l.GetConfigPath()
	if l.Path == "" {
		return New(), nil
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path, err)
	}
	return cfg, nil
}

// ThemeDir returns the themes directory beside the loaded config file.
func (l *Loader) ThemeDir() string {
	if l.Path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(l.Path), "themes")
}
