// Package state holds the catalog shared between the file watcher and the UI.
//
// # Overview
//
// The watcher goroutine reloads the catalog file and writes the result into a
// Store; the UI pulls a Snapshot on every tick and rebuilds its views when the
// Version changes. Edits made from the UI (new project, deletes) go through
// Store.Apply so they land in the same place as reloads.
//
//	Watcher:                        UI:
//	┌──────────────────┐           ┌──────────────────┐
//	│ catalog.Load()   │           │ store.Version()  │
//	│      ↓           │           │      ↓ changed   │
//	│ store.Update()   │──(mutex)─→│ store.Snapshot() │
//	└──────────────────┘           │      ↓           │
//	                               │ store.Apply()    │
//	                               └──────────────────┘
//
// # Update Semantics
//
//	// Success: replace the catalog, bump Version, clear the error.
//	store.Update(cat, nil)
//
//	// Failure: keep the previous catalog, record the error.
//	store.Update(nil, err)
//
// A reload that fails leaves the last good catalog on screen and the error in
// the status bar. Two or more failures in a row mark the snapshot stale.
//
// # Copying
//
// Update and Snapshot clone the catalog slices, and Apply edits a clone that is
// swapped in only when the callback succeeds. A Snapshot can be read and
// modified by the UI without holding any lock.
//
// The zero Store is ready to use.
package state
