// Package config handles loading and parsing tzsync configuration files.
//
// # Overview
//
// The config file decides which locations the clock starts with, where the
// log goes and which calendar day edits are anchored to. Everything is
// optional: tzsync runs with no config file at all.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tzsync/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/tzsync/config.toml
//   - Locations: ["melbourne"]
//   - Log file: ~/.local/state/tzsync/tzsync.log
//   - Log level: info
//   - Reference day: today
//   - Follow now: true
//
// # TOML Format
//
//	locations = ["melbourne", "london", "new-york"]
//	log_file = "~/.local/state/tzsync/tzsync.log"
//	log_level = "debug"
//	reference_day = "displayed"
//	follow_now = false
//
// Locations are catalog slugs; the first one is home. An explicit empty list
// starts with no locations. reference_day is "today" (anchor edits to the
// local calendar date) or "displayed" (anchor to the date the edited zone is
// showing). follow_now keeps the clock on the current half hour until the
// first edit. Values are validated by the packages that consume them.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
package config
