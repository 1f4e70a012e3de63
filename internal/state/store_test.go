package state

import (
	"sync"
	"testing"
	"time"

	"github.com/five82/tzsync/internal/anchor"
	"github.com/five82/tzsync/internal/catalog"
)

var (
	locA = catalog.Location{ID: "a", TimeZone: "UTC+10"}
	locB = catalog.Location{ID: "b", TimeZone: "UTC+1"}
)

func TestStore_ApplyReplacesState(t *testing.T) {
	t0 := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	store := NewStore(anchor.State{Instant: t0, Locations: []catalog.Location{locA}})

	snap := store.Apply(func(st anchor.State) anchor.State {
		st.Instant = st.Instant.Add(time.Hour)
		st.Locations = append(st.Locations, locB)
		return st
	})

	if snap.Revision != 1 {
		t.Fatalf("Revision = %d, want 1", snap.Revision)
	}
	if !snap.State.Instant.Equal(t0.Add(time.Hour)) {
		t.Fatalf("Instant = %s, want %s", snap.State.Instant, t0.Add(time.Hour))
	}
	if len(snap.State.Locations) != 2 {
		t.Fatalf("len(Locations) = %d, want 2", len(snap.State.Locations))
	}
	if got := store.Snapshot(); got.Revision != 1 || len(got.State.Locations) != 2 {
		t.Fatalf("Snapshot = %+v", got)
	}
}

func TestStore_UpdateDeclined(t *testing.T) {
	t0 := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	store := NewStore(anchor.State{Instant: t0, Locations: []catalog.Location{locA}})

	snap, changed := store.Update(func(st anchor.State) (anchor.State, bool) {
		st.Instant = st.Instant.Add(time.Hour)
		return st, false
	})
	if changed || snap.Revision != 0 {
		t.Fatalf("declined Update: changed=%v Revision=%d, want false 0", changed, snap.Revision)
	}
	if got := store.Snapshot().State.Instant; !got.Equal(t0) {
		t.Fatalf("Instant = %s, want %s", got, t0)
	}

	snap, changed = store.Update(func(st anchor.State) (anchor.State, bool) {
		st.Live = true
		return st, true
	})
	if !changed || snap.Revision != 1 || !snap.State.Live {
		t.Fatalf("accepted Update: changed=%v snapshot=%+v", changed, snap)
	}
}

func TestStore_SnapshotIsDefensiveCopy(t *testing.T) {
	store := NewStore(anchor.State{Locations: []catalog.Location{locA, locB}})

	snap := store.Snapshot()
	snap.State.Locations[0].ID = "mutated"

	if got := store.Snapshot().State.Locations[0].ID; got != "a" {
		t.Fatalf("store location ID = %q, want %q", got, "a")
	}
}

func TestStore_InitialSliceNotShared(t *testing.T) {
	locs := []catalog.Location{locA}
	store := NewStore(anchor.State{Locations: locs})
	locs[0].ID = "mutated"

	if got := store.Snapshot().State.Locations[0].ID; got != "a" {
		t.Fatalf("store location ID = %q, want %q", got, "a")
	}
}

func TestStore_ConcurrentApplyIsSerialised(t *testing.T) {
	store := NewStore(anchor.State{Instant: time.Unix(0, 0).UTC()})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Apply(func(st anchor.State) anchor.State {
				st.Instant = st.Instant.Add(time.Minute)
				return st
			})
			_ = store.Snapshot()
		}()
	}
	wg.Wait()

	snap := store.Snapshot()
	if snap.Revision != 50 {
		t.Fatalf("Revision = %d, want 50", snap.Revision)
	}
	if want := time.Unix(0, 0).UTC().Add(50 * time.Minute); !snap.State.Instant.Equal(want) {
		t.Fatalf("Instant = %s, want %s", snap.State.Instant, want)
	}
}

func TestStore_ZeroValueUsable(t *testing.T) {
	var store Store
	snap := store.Apply(func(st anchor.State) anchor.State {
		st.Locations = []catalog.Location{locA}
		return st
	})
	if snap.LastUpdated.IsZero() {
		t.Fatal("LastUpdated not set")
	}
}
