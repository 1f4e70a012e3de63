package state

import (
	"sync"
	"time"

	"github.com/five82/tzsync/internal/anchor"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	State       anchor.State
	Revision    uint64 // incremented on every applied transition
	LastUpdated time.Time
}

// Transition derives the next state from the current one.
type Transition func(anchor.State) anchor.State

// Store coordinates concurrent access to the shared instant and location
// list.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	now      func() time.Time
}

// NewStore returns a Store holding initial.
func NewStore(initial anchor.State) *Store {
	s := &Store{now: time.Now}
	s.snapshot = Snapshot{State: initial.Clone(), LastUpdated: s.now()}
	return s
}

// Apply runs fn against the current state under the write lock and stores
// its result. The list order and the instant are therefore always derived
// from the same pre-update snapshot.
func (s *Store) Apply(fn Transition) Snapshot {
	snap, _ := s.Update(func(st anchor.State) (anchor.State, bool) {
		return fn(st), true
	})
	return snap
}

// Update is Apply for transitions that may decline. When fn reports false
// nothing is stored and Revision is unchanged.
func (s *Store) Update(fn func(anchor.State) (anchor.State, bool)) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(s.snapshot.State.Clone())
	if !changed {
		return s.copyLocked(), false
	}
	s.snapshot = Snapshot{
		State:       next.Clone(),
		Revision:    s.snapshot.Revision + 1,
		LastUpdated: s.clock(),
	}
	return s.copyLocked(), true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() Snapshot {
	snap := s.snapshot
	snap.State = s.snapshot.State.Clone()
	return snap
}

func (s *Store) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
