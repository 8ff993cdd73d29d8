package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/genpozi/poziverse/internal/catalog"
)

// ErrNoCatalog is returned by Apply before the first successful load.
var ErrNoCatalog = errors.New("catalog not loaded")

// Snapshot represents the latest catalog available to the UI.
type Snapshot struct {
	Catalog             *catalog.Catalog
	Version             uint64 // bumped on every successful load or edit
	LoadedAt            time.Time
	LastError           error
	ConsecutiveFailures int // reload failures since the last good load
}

// HasCatalog reports whether a catalog has been loaded.
func (s Snapshot) HasCatalog() bool {
	return s.Catalog != nil
}

// IsStale returns true when the catalog file has failed to reload more than
// once in a row.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(cat *catalog.Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Catalog = cat.Clone()
	s.snapshot.Version++
	s.snapshot.LoadedAt = time.Now()
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Apply runs fn against the stored catalog under the write lock. The version
// is bumped only when fn succeeds; on error the catalog is left untouched.
func (s *Store) Apply(fn func(*catalog.Catalog) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Catalog == nil {
		return ErrNoCatalog
	}
	work := s.snapshot.Catalog.Clone()
	if err := fn(work); err != nil {
		return err
	}
	s.snapshot.Catalog = work
	s.snapshot.Version++
	return nil
}

// Version returns the current version without copying the catalog.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Version
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = s.snapshot.Catalog.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
