package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/genpozi/poziverse/internal/catalog"
	"github.com/genpozi/poziverse/internal/state"
)

const (
	defaultDebounce = 250 * time.Millisecond
	maxBackoff      = 30 * time.Second
)

// calculateBackoff returns the retry delay after a failed reload: the base
// interval doubled per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}

// LoadCatalog loads the dataset at path (empty for the built-in one) and drops
// entities matching the hide patterns. It returns the number hidden.
func LoadCatalog(path string, hide []string) (*catalog.Catalog, int, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, 0, err
	}
	hidden, err := cat.Prune(hide)
	if err != nil {
		return nil, 0, err
	}
	return cat, hidden, nil
}

// WatchOptions configure StartWatcher.
type WatchOptions struct {
	Path     string
	Hide     []string
	Debounce time.Duration // zero uses 250ms
	Logger   *zap.Logger
}

// Watcher reloads the catalog file into a store whenever it changes.
type Watcher struct {
	path     string
	hide     []string
	debounce time.Duration
	store    *state.Store
	logger   *zap.Logger
	fsw      *fsnotify.Watcher

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// StartWatcher watches the directory holding opts.Path. Editors often replace
// files instead of writing them in place, so the directory is watched and
// events are filtered by name. It returns once the watch is registered.
func StartWatcher(ctx context.Context, store *state.Store, opts WatchOptions) (*Watcher, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("watch catalog: path is empty")
	}
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("watch catalog: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch catalog: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch catalog: %w", err)
	}

	w := &Watcher{
		path:     path,
		hide:     append([]string(nil), opts.Hide...),
		debounce: debounce,
		store:    store,
		logger:   logger.With(zap.String("catalog", path)),
		fsw:      fsw,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run(ctx)
	w.logger.Debug("watching catalog")
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stop)
		<-w.done
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	var (
		timer    *time.Timer
		fire     <-chan time.Time
		failures int
	)
	schedule := func(d time.Duration) {
		if timer != nil {
			timer.Stop()
		}
		timer = time.NewTimer(d)
		fire = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("catalog changed", zap.String("op", event.Op.String()))
			failures = 0
			schedule(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watch error", zap.Error(err))

		case <-fire:
			fire = nil
			if err := w.reload(); err != nil {
				failures++
				retry := calculateBackoff(failures, w.debounce)
				w.logger.Warn("catalog reload failed",
					zap.Error(err),
					zap.Int("failures", failures),
					zap.Duration("retry_in", retry))
				schedule(retry)
				continue
			}
			failures = 0
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}

func (w *Watcher) reload() error {
	cat, hidden, err := LoadCatalog(w.path, w.hide)
	w.store.Update(cat, err)
	if err != nil {
		return err
	}
	w.logger.Info("catalog reloaded",
		zap.Int("projects", len(cat.Projects)),
		zap.Int("hidden", hidden))
	return nil
}
