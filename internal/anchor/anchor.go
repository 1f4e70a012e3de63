// Package anchor keeps one shared instant consistent with the wall clock of
// every location in an ordered list.
//
// The first location is authoritative: every edit, wherever it originates,
// is re-expressed through the authoritative zone and snapped to the picker
// grid. When a different location becomes authoritative the instant on
// screen is preserved; only the zone that drives future edits changes.
package anchor

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/five82/tzsync/internal/catalog"
	"github.com/five82/tzsync/internal/clock"
	"github.com/five82/tzsync/internal/timemath"
)

// DayPolicy selects the calendar day instants are synthesized on.
type DayPolicy int

const (
	// DayToday anchors every synthesis to today's date in the local zone.
	DayToday DayPolicy = iota
	// DayDisplayed anchors to the date the synthesizing zone currently shows,
	// so edits never move the instant across a day boundary.
	DayDisplayed
)

func (p DayPolicy) String() string {
	if p == DayDisplayed {
		return "displayed"
	}
	return "today"
}

// ParseDayPolicy accepts "today", "displayed" or an empty string.
func ParseDayPolicy(s string) (DayPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return DayToday, nil
	case "displayed":
		return DayDisplayed, nil
	default:
		return DayToday, fmt.Errorf("unknown reference day %q (want today or displayed)", s)
	}
}

// Synchronizer implements the state transitions. It holds no State itself
// and is safe for concurrent use.
type Synchronizer struct {
	calc   *timemath.Calculator
	clock  clock.Clock
	logger *slog.Logger
	policy DayPolicy
	local  *time.Location
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithClock replaces the wall clock.
func WithClock(c clock.Clock) Option {
	return func(s *Synchronizer) { s.clock = c }
}

// WithLogger sets the transition logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Synchronizer) { s.logger = l }
}

// WithDayPolicy sets the reference day policy.
func WithDayPolicy(p DayPolicy) Option {
	return func(s *Synchronizer) { s.policy = p }
}

// WithLocalZone sets the zone used for "today" and for an empty list.
func WithLocalZone(loc *time.Location) Option {
	return func(s *Synchronizer) {
		if loc != nil {
			s.local = loc
		}
	}
}

// New returns a Synchronizer using calc for conversions.
func New(calc *timemath.Calculator, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		calc:  calc,
		clock: clock.RealClock{},
		local: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Calculator exposes the conversions the Synchronizer uses.
func (s *Synchronizer) Calculator() *timemath.Calculator {
	return s.calc
}

// Initialize anchors locs at the present: home's current wall clock rounded
// to the grid. An empty list rounds the local wall clock instead. The result
// is Live.
func (s *Synchronizer) Initialize(locs []catalog.Location) State {
	now := s.clock.Now()
	next := State{Locations: cloneLocations(locs), Live: true}

	home, ok := next.Home()
	if !ok {
		local := now.In(s.local)
		m := timemath.RoundToGrid(local.Hour()*60 + local.Minute())
		next.Instant = s.localInstant(m)
		s.logger.Debug("initialized without locations", "minutes", m)
		return next
	}

	m := timemath.RoundToGrid(s.calc.LocalMinutes(now, home.TimeZone))
	next.Instant = s.synthesize(m, home.TimeZone, now)
	s.logger.Debug("initialized", "home", home.ID, "minutes", m, "instant", next.Instant)
	return next
}

// EditAuthoritativeTime sets home's wall clock to minutes. The value is used
// as given, without grid rounding.
func (s *Synchronizer) EditAuthoritativeTime(st State, minutes int) State {
	next := st.Clone()
	next.Live = false
	home, ok := st.Home()
	if !ok {
		next.Instant = s.localInstant(minutes)
		return next
	}
	next.Instant = s.synthesize(minutes, home.TimeZone, st.Instant)
	s.logger.Debug("authoritative edit", "home", home.ID, "minutes", minutes, "instant", next.Instant)
	return next
}

// EditNonAuthoritativeTime sets location id's wall clock to minutes, then
// re-anchors through home: the implied instant is read in home's zone,
// rounded to the grid and synthesized again there. Editing home itself is an
// authoritative edit. Unknown ids leave st unchanged.
func (s *Synchronizer) EditNonAuthoritativeTime(st State, id string, minutes int) State {
	idx := st.Index(id)
	switch {
	case idx < 0:
		s.logger.Debug("edit for unknown location ignored", "id", id)
		return st
	case idx == 0:
		return s.EditAuthoritativeTime(st, minutes)
	}

	loc := st.Locations[idx]
	home := st.Locations[0]
	implied := s.synthesize(minutes, loc.TimeZone, st.Instant)
	homeMinutes := timemath.RoundToGrid(s.calc.LocalMinutes(implied, home.TimeZone))

	next := st.Clone()
	next.Live = false
	next.Instant = s.synthesize(homeMinutes, home.TimeZone, implied)
	s.logger.Debug("non-authoritative edit",
		"location", id,
		"minutes", minutes,
		"home_minutes", homeMinutes,
		"instant", next.Instant,
	)
	return next
}

// Reorder moves the location at from to position to. When position 0
// changes identity the shared instant is re-anchored on the new home.
// Out-of-range indexes leave st unchanged.
func (s *Synchronizer) Reorder(st State, from, to int) State {
	n := len(st.Locations)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return st
	}
	return s.withLocations(st, move(st.Locations, from, to))
}

// Promote makes location id authoritative by moving it to position 0.
func (s *Synchronizer) Promote(st State, id string) State {
	idx := st.Index(id)
	if idx <= 0 {
		return st
	}
	return s.Reorder(st, idx, 0)
}

// Add appends loc. A location whose ID is already listed is ignored.
func (s *Synchronizer) Add(st State, loc catalog.Location) State {
	if st.Index(loc.ID) >= 0 {
		return st
	}
	locs := append(cloneLocations(st.Locations), loc)
	if st.Instant.IsZero() {
		return s.Initialize(locs)
	}
	return s.withLocations(st, locs)
}

// Remove drops location id. Removing home promotes the next location,
// preserving the shared instant.
func (s *Synchronizer) Remove(st State, id string) State {
	idx := st.Index(id)
	if idx < 0 {
		return st
	}
	locs := make([]catalog.Location, 0, len(st.Locations)-1)
	locs = append(locs, st.Locations[:idx]...)
	locs = append(locs, st.Locations[idx+1:]...)
	return s.withLocations(st, locs)
}

// withLocations swaps in locs, re-anchoring when home changed. Both values
// are derived from st, never from a partially updated State.
func (s *Synchronizer) withLocations(st State, locs []catalog.Location) State {
	next := State{Instant: st.Instant, Locations: locs, Live: st.Live}
	if len(locs) == 0 {
		next.Locations = nil
		return next
	}
	oldHome, hadHome := st.Home()
	newHome := locs[0]
	if hadHome && oldHome.ID == newHome.ID {
		return next
	}

	m := timemath.RoundToGrid(s.calc.LocalMinutes(st.Instant, newHome.TimeZone))
	next.Instant = s.synthesize(m, newHome.TimeZone, st.Instant)
	s.logger.Debug("home changed",
		"from", oldHome.ID,
		"to", newHome.ID,
		"minutes", m,
		"before", st.Instant,
		"after", next.Instant,
	)
	return next
}

func (s *Synchronizer) synthesize(minutes int, tz string, current time.Time) time.Time {
	return s.calc.Synthesize(minutes, tz, s.referenceDay(current, tz)).UTC()
}

func (s *Synchronizer) referenceDay(current time.Time, tz string) timemath.CalendarDate {
	if s.policy == DayDisplayed {
		if p := s.calc.LocalParts(current, tz); p.Valid {
			return timemath.DateOf(p)
		}
	}
	return timemath.Today(s.clock.Now().In(s.local))
}

// localInstant places minutes on today in the local zone.
func (s *Synchronizer) localInstant(minutes int) time.Time {
	m := timemath.NormalizeMinutes(minutes)
	d := timemath.Today(s.clock.Now().In(s.local))
	return time.Date(d.Year, d.Month, d.Day, m/60, m%60, 0, 0, s.local).UTC()
}
