// Package config loads the poziverse configuration file.
//
// # Configuration Discovery
//
// Load resolves the file as follows:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/poziverse/config.toml
//  3. If the file does not exist, fall back to defaults
//  4. Missing or blank keys keep their defaults
//
// # TOML Format
//
//	catalog   = "~/poziverse/catalog.yaml"
//	layout    = "auto"        # auto, desktop, or compact
//	log_file  = "~/.local/state/poziverse/poziverse.log"
//	log_level = "info"        # debug, info, warn, error
//	hide      = ["launchpad/infra-*", "resources/s1"]
//
// All keys are optional. An empty catalog uses the built-in dataset, and
// log_file = "" turns logging off. Hide entries are "<domain>/<id>" globs
// applied by catalog.Prune; they are validated when the catalog is loaded.
//
// # Path Expansion
//
// The config path, catalog, and log_file accept "~" and relative paths; both
// are turned into absolute paths.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors, and unknown
// layout names. A missing file is not an error.
package config
