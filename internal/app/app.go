package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/genpozi/poziverse/internal/config"
	"github.com/genpozi/poziverse/internal/logging"
	"github.com/genpozi/poziverse/internal/prefs"
	"github.com/genpozi/poziverse/internal/state"
	"github.com/genpozi/poziverse/internal/ui"
)

// Options configure the poziverse application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath  string
	CatalogPath string
	Layout      string
	PrefsPath   string // empty uses ~/.config/poziverse/prefs.toml
}

// ResolveConfig loads the config file and applies the command line overrides.
func ResolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if path := strings.TrimSpace(opts.CatalogPath); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("catalog path: %w", err)
		}
		cfg.CatalogPath = expanded
	}
	if opts.Layout != "" {
		layout, err := config.ParseLayout(opts.Layout)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Layout = layout
	}
	return cfg, nil
}

// Run boots the workspace TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := ResolveConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("preferences ignored", zap.Error(err))
	}

	cat, hidden, err := LoadCatalog(cfg.CatalogPath, cfg.Hide)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.String("path", catalogLabel(cfg.CatalogPath)),
		zap.Int("projects", len(cat.Projects)),
		zap.Int("hidden", hidden),
	)

	store := &state.Store{}
	store.Update(cat, nil)

	if cfg.CatalogPath != "" {
		w, err := StartWatcher(ctx, store, WatchOptions{
			Path:   cfg.CatalogPath,
			Hide:   cfg.Hide,
			Logger: logger,
		})
		if err != nil {
			// The workspace still works from the initial load.
			logger.Warn("catalog watch disabled", zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Logger:    logger,
		Layout:    cfg.Layout,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

func catalogLabel(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
