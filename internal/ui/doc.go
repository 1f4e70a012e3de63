// Package ui provides the terminal user interface for tzsync.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds presentation state only: the
// selected row, the search box, the theme and the 12/24 hour mode. The shared
// instant and the location list live in state.Store and change exclusively
// through anchor.Synchronizer transitions passed to Store.Apply. After every
// transition the model re-derives its rows with Synchronizer.Rows.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key dispatch and transitions
//   - header.go: status bar, command bar and footer
//   - rows.go: location rows, the scrolling list and the timeline bar
//   - search.go: add-location search box over the city catalog
//   - help.go: help overlay generated from the key map
//   - theme.go: color palettes and Lipgloss styles
//   - style_helpers.go: background-preserving render helpers
//
// # Rows
//
// Each location renders as three lines:
//
//	▸ Melbourne, VIC  HOME  GMT+11                    Thu, Oct 16     14:30
//	  ·····▂▂▂▂▂▂▂▂▂▂▂▂▂   ┃      ·········································
//	  Working Hours  ☀ Day  ↑06:12 ↓19:48
//
// The timeline spans 24 hours centred on the row's current wall clock, so
// the cursor stays still and the day scrolls under it as time is edited.
//
// # Key Bindings
//
//	j/k        select row            J/K       move row (reorder)
//	H          make selected home    h/l       selected row -/+30m
//	+/-        home -/+30m           n         jump to now
//	/ or a     add location          x         remove location
//	f          12/24 hour            T         cycle theme
//	?          help                  q         quit
//
// Theme and clock format are saved to the prefs file when changed.
package ui
