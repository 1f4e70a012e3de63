package anchor

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/tzsync/internal/catalog"
	"github.com/five82/tzsync/internal/clock"
	"github.com/five82/tzsync/internal/timemath"
	"github.com/five82/tzsync/internal/zone"
)

var (
	cityA = catalog.Location{ID: "a", Name: "A", TimeZone: "UTC+10", Lat: -37.8}
	cityB = catalog.Location{ID: "b", Name: "B", TimeZone: "UTC+1", Lat: 51.5}
	cityC = catalog.Location{ID: "c", Name: "C", TimeZone: "UTC-5", Lat: 40.7}
)

func newSync(now time.Time, opts ...Option) *Synchronizer {
	calc := timemath.New(zone.New(), nil)
	base := []Option{WithClock(clock.NewMockClock(now)), WithLocalZone(time.UTC)}
	return New(calc, append(base, opts...)...)
}

func utc(month time.Month, day, hour, minute int) time.Time {
	return time.Date(2025, month, day, hour, minute, 0, 0, time.UTC)
}

func TestInitialize_RoundsHomeClock(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 7))
	st := s.Initialize([]catalog.Location{cityA, cityB})

	// 22:07 in UTC+10 rounds to 22:00.
	if want := utc(time.June, 10, 12, 0); !st.Instant.Equal(want) {
		t.Fatalf("Instant = %s, want %s", st.Instant, want)
	}
	if len(st.Locations) != 2 || st.Locations[0].ID != "a" {
		t.Fatalf("Locations = %+v", st.Locations)
	}
}

func TestInitialize_EmptyListUsesLocalClock(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 16))
	st := s.Initialize(nil)
	if want := utc(time.June, 10, 12, 30); !st.Instant.Equal(want) {
		t.Fatalf("Instant = %s, want %s", st.Instant, want)
	}
	if st.Locations != nil {
		t.Fatalf("Locations = %+v, want nil", st.Locations)
	}
}

func TestInitialize_WrapsPastMidnight(t *testing.T) {
	// 23:50 in UTC+10 rounds to 1440 and wraps to 00:00 of the reference day.
	s := newSync(utc(time.June, 10, 13, 50))
	st := s.Initialize([]catalog.Location{cityA})
	if want := utc(time.June, 9, 14, 0); !st.Instant.Equal(want) {
		t.Fatalf("Instant = %s, want %s", st.Instant, want)
	}
}

func TestEditAuthoritativeTime_Scenario(t *testing.T) {
	s := newSync(utc(time.June, 10, 0, 0))
	home := catalog.Location{ID: "home", TimeZone: "UTC+10"}
	other := catalog.Location{ID: "other", TimeZone: "UTC+2"}

	st := s.EditAuthoritativeTime(State{Locations: []catalog.Location{home, other}}, 9*60)
	before := st.Instant
	if got := s.calc.LocalMinutes(before, "UTC+10"); got != 540 {
		t.Fatalf("home reads %d, want 540", got)
	}

	st = s.EditAuthoritativeTime(st, 14*60)
	if d := st.Instant.Sub(before); d != 5*time.Hour {
		t.Fatalf("instant moved %s, want 5h", d)
	}
	if got := s.calc.LocalMinutes(st.Instant, "UTC+2"); got != 6*60 {
		t.Fatalf("UTC+2 reads %d, want 360", got)
	}
}

func TestEditAuthoritativeTime_NotRounded(t *testing.T) {
	s := newSync(utc(time.June, 10, 0, 0))
	st := s.EditAuthoritativeTime(State{Locations: []catalog.Location{cityA}}, 9*60+7)
	if got := s.calc.LocalMinutes(st.Instant, cityA.TimeZone); got != 547 {
		t.Fatalf("home reads %d, want 547", got)
	}
}

func TestEditNonAuthoritativeTime_ReanchorsThroughHome(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 0))
	st := State{Instant: utc(time.June, 10, 10, 0), Locations: []catalog.Location{cityA, cityB, cityC}}

	// B to 13:10 implies 12:10Z; A reads 22:10 and snaps to 22:00.
	next := s.EditNonAuthoritativeTime(st, "b", 13*60+10)
	if want := utc(time.June, 10, 12, 0); !next.Instant.Equal(want) {
		t.Fatalf("Instant = %s, want %s", next.Instant, want)
	}
	if got := s.calc.LocalMinutes(next.Instant, cityB.TimeZone); got != 13*60 {
		t.Fatalf("B reads %d, want 780", got)
	}
	if !st.Instant.Equal(utc(time.June, 10, 10, 0)) {
		t.Fatal("input state was mutated")
	}
}

func TestEditNonAuthoritativeTime_HomeAndUnknown(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 0))
	st := State{Instant: utc(time.June, 10, 10, 0), Locations: []catalog.Location{cityA, cityB}}

	viaHome := s.EditNonAuthoritativeTime(st, "a", 9*60+7)
	direct := s.EditAuthoritativeTime(st, 9*60+7)
	if !viaHome.Instant.Equal(direct.Instant) {
		t.Fatalf("editing home = %s, want %s", viaHome.Instant, direct.Instant)
	}

	if got := s.EditNonAuthoritativeTime(st, "missing", 600); !got.Instant.Equal(st.Instant) {
		t.Fatalf("unknown id changed instant to %s", got.Instant)
	}
}

func TestReorder_Scenario(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 0))
	T := utc(time.June, 10, 10, 0)
	st := State{Instant: T, Locations: []catalog.Location{cityA, cityB, cityC}}

	next := s.Reorder(st, 2, 0)

	want := State{Instant: T, Locations: []catalog.Location{cityC, cityA, cityB}}
	if diff := cmp.Diff(want, next); diff != "" {
		t.Fatalf("Reorder mismatch (-want +got):\n%s", diff)
	}
	if got := s.calc.LocalMinutes(next.Instant, cityB.TimeZone); got != 11*60 {
		t.Fatalf("B reads %d, want 660", got)
	}
	if got := s.calc.LocalMinutes(next.Instant, cityA.TimeZone); got != 20*60 {
		t.Fatalf("A reads %d, want 1200", got)
	}
	if st.Locations[0].ID != "a" {
		t.Fatal("input order was mutated")
	}
}

func TestReorder_HomeUnchangedKeepsInstant(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 0))
	T := utc(time.June, 10, 10, 7)
	st := State{Instant: T, Locations: []catalog.Location{cityA, cityB, cityC}}

	next := s.Reorder(st, 1, 2)
	if !next.Instant.Equal(T) {
		t.Fatalf("Instant = %s, want %s", next.Instant, T)
	}
	if next.Locations[1].ID != "c" || next.Locations[2].ID != "b" {
		t.Fatalf("order = %+v", next.Locations)
	}

	for _, bad := range [][2]int{{-1, 0}, {0, 3}, {1, 1}} {
		if got := s.Reorder(st, bad[0], bad[1]); !cmp.Equal(got, st) {
			t.Fatalf("Reorder(%d, %d) changed state", bad[0], bad[1])
		}
	}
}

func TestReorder_DriftBoundedByGrid(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 0))
	kathmandu := catalog.Location{ID: "k", TimeZone: "UTC+5:45"}
	T := utc(time.June, 10, 10, 0)
	st := State{Instant: T, Locations: []catalog.Location{cityA, kathmandu}}

	next := s.Promote(st, "k")
	d := next.Instant.Sub(T)
	if d < -15*time.Minute || d > 15*time.Minute {
		t.Fatalf("promotion moved instant by %s", d)
	}
	if got := s.calc.LocalMinutes(next.Instant, kathmandu.TimeZone); got%timemath.GridMinutes != 0 {
		t.Fatalf("new home reads %d, want a grid value", got)
	}
}

func TestReferenceDay_DisplayedAcrossDateLine(t *testing.T) {
	// A shows 09:00 on 10 June while C still shows 18:00 on 9 June.
	T := utc(time.June, 9, 23, 0)
	st := State{Instant: T, Locations: []catalog.Location{cityA, cityB, cityC}}

	displayed := newSync(utc(time.June, 10, 0, 0), WithDayPolicy(DayDisplayed))
	if got := displayed.Reorder(st, 2, 0).Instant; !got.Equal(T) {
		t.Fatalf("displayed policy: Instant = %s, want %s", got, T)
	}

	// The today policy synthesizes 18:00 on the local date, one day later.
	today := newSync(utc(time.June, 10, 0, 0))
	if got := today.Reorder(st, 2, 0).Instant; !got.Equal(T.Add(24 * time.Hour)) {
		t.Fatalf("today policy: Instant = %s, want %s", got, T.Add(24*time.Hour))
	}
}

func TestPromote(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 0))
	T := utc(time.June, 10, 10, 0)
	st := State{Instant: T, Locations: []catalog.Location{cityA, cityB, cityC}}

	next := s.Promote(st, "b")
	ids := []string{next.Locations[0].ID, next.Locations[1].ID, next.Locations[2].ID}
	if diff := cmp.Diff([]string{"b", "a", "c"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if !next.Instant.Equal(T) {
		t.Fatalf("Instant = %s, want %s", next.Instant, T)
	}
	if got := s.Promote(st, "a"); !cmp.Equal(got, st) {
		t.Fatal("promoting home changed state")
	}
	if got := s.Promote(st, "zzz"); !cmp.Equal(got, st) {
		t.Fatal("promoting unknown id changed state")
	}
}

func TestAddAndRemove(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 7))
	st := s.Initialize(nil)
	T := st.Instant

	st = s.Add(st, cityA)
	if !st.Instant.Equal(T) {
		t.Fatalf("first Add moved instant to %s, want %s", st.Instant, T)
	}
	st = s.Add(st, cityB)
	st = s.Add(st, cityC)
	st = s.Add(st, cityB)
	if len(st.Locations) != 3 {
		t.Fatalf("len = %d, want 3 (duplicate ignored)", len(st.Locations))
	}

	removed := s.Remove(st, "b")
	if !removed.Instant.Equal(T) || len(removed.Locations) != 2 {
		t.Fatalf("Remove(b) = %+v", removed)
	}

	rehomed := s.Remove(st, "a")
	if rehomed.Locations[0].ID != "b" || !rehomed.Instant.Equal(T) {
		t.Fatalf("Remove(home) = %+v, want b home at %s", rehomed, T)
	}

	empty := s.Remove(s.Remove(rehomed, "b"), "c")
	if empty.Locations != nil || !empty.Instant.Equal(T) {
		t.Fatalf("removing all = %+v", empty)
	}
}

func TestAdd_ZeroInstantInitializes(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 7))
	st := s.Add(State{}, cityA)
	if want := utc(time.June, 10, 12, 0); !st.Instant.Equal(want) {
		t.Fatalf("Instant = %s, want %s", st.Instant, want)
	}
}

func TestLive_SetByInitializeClearedByEdits(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 7))
	st := s.Initialize([]catalog.Location{cityA, cityB})
	if !st.Live {
		t.Fatal("Initialize result is not live")
	}

	if got := s.Promote(st, "b"); !got.Live {
		t.Fatal("Promote cleared Live")
	}
	if got := s.Remove(st, "b"); !got.Live {
		t.Fatal("Remove cleared Live")
	}
	if got := s.EditNonAuthoritativeTime(st, "zzz", 60); !got.Live {
		t.Fatal("no-op edit cleared Live")
	}

	if got := s.EditAuthoritativeTime(st, 23*60); got.Live {
		t.Fatal("authoritative edit left state live")
	}
	if got := s.EditNonAuthoritativeTime(st, "b", 9*60); got.Live {
		t.Fatal("non-authoritative edit left state live")
	}
}

func TestIdempotence(t *testing.T) {
	s := newSync(utc(time.June, 10, 12, 0))
	T := utc(time.June, 10, 10, 30)
	a := s.calc.LocalParts(T, "Europe/Berlin")
	b := s.calc.LocalParts(T, "Europe/Berlin")
	if a != b {
		t.Fatalf("LocalParts not stable: %+v vs %+v", a, b)
	}

	st := State{Instant: T, Locations: []catalog.Location{{ID: "berlin", TimeZone: "Europe/Berlin"}}}
	again := s.EditAuthoritativeTime(st, a.TotalMinutes)
	if !again.Instant.Equal(T) {
		t.Fatalf("re-synthesizing read value = %s, want %s", again.Instant, T)
	}
}

func TestParseDayPolicy(t *testing.T) {
	tests := map[string]DayPolicy{"": DayToday, "today": DayToday, " Displayed ": DayDisplayed}
	for in, want := range tests {
		got, err := ParseDayPolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseDayPolicy(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDayPolicy("yesterday"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
