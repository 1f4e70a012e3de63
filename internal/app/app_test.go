package app

import (
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/tzsync/internal/clock"
	"github.com/five82/tzsync/internal/config"
)

func TestResolveLocations(t *testing.T) {
	locs := ResolveLocations([]string{"tokyo", "atlantis", "london"}, nil)

	var names []string
	for _, l := range locs {
		names = append(names, l.Name)
		if !strings.HasPrefix(l.ID, strings.ToLower(l.Name)+"-") {
			t.Fatalf("ID %q not derived from slug", l.ID)
		}
	}
	if diff := cmp.Diff([]string{"Tokyo", "London"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestNewEngine(t *testing.T) {
	cfg := config.Default()
	cfg.Locations = []string{"london", "tokyo"}

	now := time.Date(2025, 1, 15, 9, 10, 0, 0, time.UTC)
	engine, err := NewEngine(cfg, clock.NewMockClock(now), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if len(engine.Locations) != 2 {
		t.Fatalf("Locations = %d, want 2", len(engine.Locations))
	}

	st := engine.Sync.Initialize(engine.Locations)
	calc := engine.Sync.Calculator()
	if got := calc.LocalMinutes(st.Instant, "Europe/London"); got != 9*60 {
		t.Fatalf("home minutes = %d, want 540", got)
	}
	if got := calc.LocalMinutes(st.Instant, "Asia/Tokyo"); got != 18*60 {
		t.Fatalf("Tokyo minutes = %d, want 1080", got)
	}
}

func TestNewEngine_BadReferenceDay(t *testing.T) {
	cfg := config.Default()
	cfg.ReferenceDay = "yesterday"
	if _, err := NewEngine(cfg, nil, nil); err == nil || !strings.Contains(err.Error(), "reference_day") {
		t.Fatalf("NewEngine error = %v, want reference_day error", err)
	}
}
