// Package prefs stores the theme choice between runs in a small TOML file.
// Workspace state such as selections, panels, and filters is not persisted.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/genpozi/poziverse/internal/config"
)

const (
	defaultPath  = "~/.config/poziverse/prefs.toml"
	defaultTheme = "Nightfox"
)

// Prefs is the saved preference set.
type Prefs struct {
	Theme string `toml:"theme"`
}

// DefaultPath is used when no path is given.
func DefaultPath() string { return defaultPath }

// Default is what a first run starts with.
func Default() Prefs { return Prefs{Theme: defaultTheme} }

func (p Prefs) normalized() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Path resolves path, or the default location when it is blank.
func Path(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPath
	}
	return config.ExpandPath(path)
}

// Load returns the saved preferences. A missing file is not an error. A file
// that cannot be read or decoded yields Default together with the error, so
// callers can warn and carry on.
func Load(path string) (Prefs, error) {
	resolved, err := Path(path)
	if err != nil {
		return Default(), fmt.Errorf("prefs path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Default(), nil
	case err != nil:
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("decode prefs %s: %w", resolved, err)
	}
	return p.normalized(), nil
}

// Save writes p to path through a temp file in the same directory, so a
// crash never leaves a truncated prefs file behind.
func Save(path string, p Prefs) error {
	resolved, err := Path(path)
	if err != nil {
		return fmt.Errorf("prefs path: %w", err)
	}

	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
