// Package state provides thread-safe state management for tzsync.
//
// # Overview
//
// The Store holds the two values the whole application revolves around: the
// shared instant and the ordered location list, wrapped together in an
// anchor.State. The UI never edits either value directly. It hands the Store
// a transition built from an anchor.Synchronizer operation and renders the
// snapshot that comes back.
//
// # Architecture
//
//	UI event (key press):          Store:
//	┌──────────────────────┐       ┌─────────────────────────┐
//	│ sync.Reorder(st,i,0) │──────→│ Apply(fn)               │
//	│ sync.EditNon...(...) │ (mutex)│   next := fn(current)   │
//	│         ↓            │       │   replace wholesale     │
//	│ render Snapshot()    │←──────│   Revision++            │
//	└──────────────────────┘       └─────────────────────────┘
//
// # Atomic Transitions
//
// A reorder must re-anchor the instant using the instant that was on screen
// before the reorder. Apply guarantees this by running the transition under
// the write lock against a single copy of the current state and replacing
// both values at once:
//
//	store.Apply(func(st anchor.State) anchor.State {
//		return sync.Reorder(st, from, to)
//	})
//
// Reads made while a transition is running block until it finishes, so a
// reader never sees a new list with the old instant or the reverse.
//
// Update is the declinable form: a transition that reports no change stores
// nothing, so Revision only moves when the state did.
//
// # Defensive Copying
//
// Location slices are cloned on the way in and on the way out. Callers may
// keep and modify snapshots freely without affecting the Store.
//
// # Core Types
//
// Store:
//   - Holds the latest anchor.State
//   - sync.RWMutex, single writer per transition, many readers
//
// Snapshot:
//   - State, Revision and LastUpdated
//   - Returned by value
package state
