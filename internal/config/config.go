package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Layout selects how the workspace is arranged.
type Layout string

const (
	LayoutAuto    Layout = "auto"
	LayoutDesktop Layout = "desktop"
	LayoutCompact Layout = "compact"
)

// ParseLayout validates a layout name. Empty means auto.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case "", LayoutAuto:
		return LayoutAuto, nil
	case LayoutDesktop, LayoutCompact:
		return l, nil
	default:
		return "", fmt.Errorf("unknown layout %q (want auto, desktop, or compact)", s)
	}
}

// Config holds the poziverse settings.
type Config struct {
	// CatalogPath is the YAML dataset to load. Empty uses the built-in data.
	CatalogPath string
	Layout      Layout
	LogFile     string
	LogLevel    string
	// Hide lists "<domain>/<id>" glob patterns removed from the catalog.
	Hide []string
}

const (
	defaultConfigPath = "~/.config/poziverse/config.toml"
	defaultLogFile    = "~/.local/state/poziverse/poziverse.log"
	defaultLogLevel   = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Layout:   LayoutAuto,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog  string   `toml:"catalog"`
		Layout   string   `toml:"layout"`
		LogFile  *string  `toml:"log_file"`
		LogLevel string   `toml:"log_level"`
		Hide     []string `toml:"hide"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if catalog := strings.TrimSpace(raw.Catalog); catalog != "" {
		cfg.CatalogPath = mustExpand(catalog)
	}

	cfg.Layout, err = ParseLayout(raw.Layout)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// log_file = "" disables logging; an absent key keeps the default.
	if raw.LogFile != nil {
		cfg.LogFile = ""
		if trimmed := strings.TrimSpace(*raw.LogFile); trimmed != "" {
			cfg.LogFile = mustExpand(trimmed)
		}
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	for _, pattern := range raw.Hide {
		if p := strings.TrimSpace(pattern); p != "" {
			cfg.Hide = append(cfg.Hide, p)
		}
	}

	return cfg, nil
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// ExpandPath resolves "~" and relative paths to an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
