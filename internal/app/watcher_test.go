package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/genpozi/poziverse/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	cat, hidden, err := LoadCatalog("", []string{"projects/p[12]"})
	require.NoError(t, err)
	assert.Equal(t, 2, hidden)
	assert.Len(t, cat.Projects, 2)

	_, _, err = LoadCatalog("", []string{"projects/[p"})
	assert.Error(t, err)
}

const (
	oneProject  = "projects:\n  - {id: a, title: Alpha, status: active, color: blue}\n"
	twoProjects = oneProject + "  - {id: b, title: Beta, status: active, color: pink}\n"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(oneProject), 0o644))

	store := &state.Store{}
	cat, _, err := LoadCatalog(path, nil)
	require.NoError(t, err)
	store.Update(cat, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := StartWatcher(ctx, store, WatchOptions{
		Path:     path,
		Debounce: 20 * time.Millisecond,
		Logger:   zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(twoProjects), 0o644))

	waitFor(t, func() bool { return len(store.Snapshot().Catalog.Projects) == 2 })
	snap := store.Snapshot()
	require.NoError(t, snap.LastError)
	assert.GreaterOrEqual(t, snap.Version, uint64(2))

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWatcher_InvalidFileKeepsPreviousCatalog(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(oneProject), 0o644))

	store := &state.Store{}
	cat, _, err := LoadCatalog(path, nil)
	require.NoError(t, err)
	store.Update(cat, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := StartWatcher(ctx, store, WatchOptions{Path: path, Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("projects: [\n"), 0o644))

	waitFor(t, func() bool { return store.Snapshot().LastError != nil })
	snap := store.Snapshot()
	assert.Equal(t, uint64(1), snap.Version)
	assert.Len(t, snap.Catalog.Projects, 1)
}

func TestWatcher_HidesPatterns(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(oneProject), 0o644))

	store := &state.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := StartWatcher(ctx, store, WatchOptions{
		Path:     path,
		Hide:     []string{"projects/b"},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(twoProjects), 0o644))

	waitFor(t, func() bool { return store.Version() >= 1 })
	snap := store.Snapshot()
	require.Len(t, snap.Catalog.Projects, 1)
	assert.Equal(t, "a", snap.Catalog.Projects[0].ID)
}

func TestStartWatcher_Errors(t *testing.T) {
	_, err := StartWatcher(context.Background(), &state.Store{}, WatchOptions{})
	assert.Error(t, err)

	_, err = StartWatcher(context.Background(), &state.Store{}, WatchOptions{
		Path: filepath.Join(t.TempDir(), "missing-dir", "catalog.yaml"),
	})
	assert.Error(t, err)
}
