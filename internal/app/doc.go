// Package app is the composition root for poziverse.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> ResolveConfig()   config.toml plus flag overrides
//	       ├─────> logging.New()     zap logger writing to the log file
//	       ├─────> prefs.Load()      saved theme
//	       ├─────> LoadCatalog()     dataset minus hidden entities
//	       ├─────> state.Store{}     shared catalog snapshot
//	       ├─────> StartWatcher()    reload on file change (file catalogs only)
//	       └─────> ui.Run()          TUI (blocks)
//
// # Reloading
//
// The watcher observes the directory holding the catalog file and debounces
// bursts of events. A reload that fails to read or parse keeps the previous
// catalog in the store and records the error; the next attempt is scheduled
// with exponential backoff until the file loads again.
//
// # Errors
//
// Run returns an error for an invalid config file, an unknown layout, a
// catalog that cannot be loaded at startup, or a log file that cannot be
// opened. A failure to start the watcher is logged and the workspace runs on
// the initial load.
package app
