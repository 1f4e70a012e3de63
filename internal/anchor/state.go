package anchor

import (
	"time"

	"github.com/five82/tzsync/internal/catalog"
)

// State is the shared instant together with the ordered location list.
// Locations[0] is home. A State is never mutated in place: every transition
// returns a new value.
type State struct {
	Instant   time.Time
	Locations []catalog.Location
	// Live is set by Initialize and cleared by any time edit. Only a live
	// State may be moved forward to follow the real clock.
	Live bool
}

// Home returns the authoritative location.
func (s State) Home() (catalog.Location, bool) {
	if len(s.Locations) == 0 {
		return catalog.Location{}, false
	}
	return s.Locations[0], true
}

// Index returns the position of id, or -1.
func (s State) Index(id string) int {
	for i, l := range s.Locations {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no backing array with s.
func (s State) Clone() State {
	return State{Instant: s.Instant, Locations: cloneLocations(s.Locations), Live: s.Live}
}

func cloneLocations(in []catalog.Location) []catalog.Location {
	if len(in) == 0 {
		return nil
	}
	out := make([]catalog.Location, len(in))
	copy(out, in)
	return out
}

// move relocates the element at from to position to, shifting the rest.
func move(in []catalog.Location, from, to int) []catalog.Location {
	out := cloneLocations(in)
	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]catalog.Location{item}, out[to:]...)...)
	return out
}
