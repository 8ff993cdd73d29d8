package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genpozi/poziverse/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestResolveConfig_FileValues(t *testing.T) {
	path := writeConfig(t, "catalog = \"/data/catalog.yaml\"\nlayout = \"compact\"\n")

	cfg, err := ResolveConfig(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "/data/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, config.LayoutCompact, cfg.Layout)
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "catalog = \"/data/catalog.yaml\"\nlayout = \"compact\"\n")

	cfg, err := ResolveConfig(Options{
		ConfigPath:  path,
		CatalogPath: "/override.yaml",
		Layout:      "Desktop",
	})
	require.NoError(t, err)
	assert.Equal(t, "/override.yaml", cfg.CatalogPath)
	assert.Equal(t, config.LayoutDesktop, cfg.Layout)
}

func TestResolveConfig_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")

	_, err := ResolveConfig(Options{ConfigPath: missing, Layout: "sideways"})
	assert.ErrorContains(t, err, "unknown layout")

	bad := writeConfig(t, "layout = [")
	_, err = ResolveConfig(Options{ConfigPath: bad})
	assert.ErrorContains(t, err, "load config")
}

func TestResolveConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := ResolveConfig(Options{ConfigPath: filepath.Join(t.TempDir(), "absent.toml")})
	require.NoError(t, err)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, config.LayoutAuto, cfg.Layout)
}
