// Package app wires configuration, the time engine, the shared store and the
// UI into the tzsync application.
//
// # Startup
//
//  1. Load ~/.config/tzsync/config.toml and ~/.config/tzsync/prefs.toml
//  2. Open the log file (the TUI owns the terminal)
//  3. Build zone.Database, timemath.Calculator and anchor.Synchronizer
//  4. Resolve configured slugs against the city catalog
//  5. Initialize the shared instant to the current slot in home
//  6. Start the follower, then run the TUI until the user quits
//
// # Follower
//
// With follow_now enabled a background goroutine re-runs Initialize every
// interval (default 15 seconds) while the stored state is Live. Initialize
// sets Live and every time edit clears it, so an edit parks the follower and
// only jumping back to now resumes it. The follower never moves the instant
// backwards and skips the store entirely when the slot has not changed, so
// Store revisions count real transitions.
package app
