package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/genpozi/poziverse/internal/catalog"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(catalog.Default(), nil)

	snap := s.Snapshot()
	if !snap.HasCatalog() || len(snap.Catalog.Projects) != 4 {
		t.Fatalf("snapshot catalog = %#v, want 4 projects", snap.Catalog)
	}
	if snap.Version != 1 {
		t.Fatalf("Version = %d, want 1", snap.Version)
	}
	if snap.LoadedAt.Before(before) {
		t.Fatalf("LoadedAt = %v, want >= %v", snap.LoadedAt, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Catalog.Projects[0].Title = "changed"
	snap2 := s.Snapshot()
	if snap2.Catalog.Projects[0].Title == "changed" {
		t.Fatalf("Snapshot should clone catalog")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(catalog.Default(), nil)
	prev := s.Snapshot()

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.Version != prev.Version {
		t.Fatalf("Version changed on error: got %d want %d", snap.Version, prev.Version)
	}
	if len(snap.Catalog.Projects) != len(prev.Catalog.Projects) {
		t.Fatalf("catalog changed on error")
	}
	if !snap.LoadedAt.Equal(prev.LoadedAt) {
		t.Fatalf("LoadedAt = %v, want %v", snap.LoadedAt, prev.LoadedAt)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("zero store: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(nil, errors.New("fail 1"))
	if snap = s.Snapshot(); snap.IsStale() {
		t.Fatal("IsStale() = true, want false with 1 failure")
	}

	s.Update(nil, errors.New("fail 2"))
	if snap = s.Snapshot(); !snap.IsStale() || snap.ConsecutiveFailures != 2 {
		t.Fatalf("after 2 failures: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}

	s.Update(catalog.Default(), nil)
	if snap = s.Snapshot(); snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("after success: failures=%d stale=%v", snap.ConsecutiveFailures, snap.IsStale())
	}
}

func TestStore_Apply(t *testing.T) {
	var s Store

	if err := s.Apply(func(*catalog.Catalog) error { return nil }); !errors.Is(err, ErrNoCatalog) {
		t.Fatalf("Apply on empty store = %v, want ErrNoCatalog", err)
	}

	s.Update(catalog.Default(), nil)
	if err := s.Apply(func(c *catalog.Catalog) error {
		c.RemoveProject("p1")
		return nil
	}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := s.Version(); got != 2 {
		t.Fatalf("Version = %d, want 2", got)
	}
	if _, ok := s.Snapshot().Catalog.Project("p1"); ok {
		t.Fatalf("p1 still present after Apply")
	}

	wantErr := errors.New("rejected")
	err := s.Apply(func(c *catalog.Catalog) error {
		c.RemoveProject("p2")
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Apply error = %v, want %v", err, wantErr)
	}
	if _, ok := s.Snapshot().Catalog.Project("p2"); !ok {
		t.Fatalf("failed Apply must not modify the catalog")
	}
	if got := s.Version(); got != 2 {
		t.Fatalf("Version = %d after failed Apply, want 2", got)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	s.Update(catalog.Default(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Update(catalog.Default(), nil)
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	if got := s.Version(); got != 9 {
		t.Fatalf("Version = %d, want 9", got)
	}
}
