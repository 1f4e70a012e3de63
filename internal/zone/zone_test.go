package zone

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestLookup_FixedOffsets(t *testing.T) {
	tests := []struct {
		id         string
		wantOffset int // seconds
	}{
		{"UTC", 0},
		{"GMT", 0},
		{"utc", 0},
		{"UTC+0", 0},
		{"UTC+10", 10 * 3600},
		{"UTC-5", -5 * 3600},
		{"UTC+05:30", 5*3600 + 30*60},
		{"UTC+0545", 5*3600 + 45*60},
		{"GMT-3:30", -(3*3600 + 30*60)},
		{" UTC+2 ", 2 * 3600},
	}

	db := New()
	instant := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			loc, err := db.Lookup(tt.id)
			if err != nil {
				t.Fatalf("Lookup(%q) returned error: %v", tt.id, err)
			}
			_, got := instant.In(loc).Zone()
			if got != tt.wantOffset {
				t.Fatalf("Lookup(%q) offset = %d, want %d", tt.id, got, tt.wantOffset)
			}
		})
	}
}

func TestLookup_IANA(t *testing.T) {
	db := New()
	loc, err := db.Lookup("Australia/Melbourne")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if loc.String() != "Australia/Melbourne" {
		t.Fatalf("loc = %q, want Australia/Melbourne", loc.String())
	}
}

func TestLookup_Unknown(t *testing.T) {
	db := New()
	for _, id := range []string{"", "   ", "Mars/Olympus_Mons", "UTC+99", "UTC+5:7", "UTC+", "Local", "UTC++5", "UTC+-5", "GMT-+3", "UTC+5:+3", "UTC+5: 30"} {
		_, err := db.Lookup(id)
		if err == nil {
			t.Fatalf("Lookup(%q) returned nil error", id)
		}
		if !errors.Is(err, ErrUnknownZone) {
			t.Fatalf("Lookup(%q) error = %v, want ErrUnknownZone", id, err)
		}
		var lookupErr *LookupError
		if !errors.As(err, &lookupErr) {
			t.Fatalf("Lookup(%q) error type = %T, want *LookupError", id, err)
		}
	}
}

func TestLookup_MemoisesMisses(t *testing.T) {
	db := New()
	_, first := db.Lookup("Nowhere/Special")
	_, second := db.Lookup("Nowhere/Special")
	if first == nil || second == nil {
		t.Fatalf("errors = %v, %v; want both non-nil", first, second)
	}
	if first != second {
		t.Fatalf("second lookup should return the memoised error")
	}
}

func TestFormat(t *testing.T) {
	db := New()
	instant := time.Date(2025, 1, 15, 23, 30, 15, 0, time.UTC)

	wc, err := db.Format(instant, "UTC+10")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	want := WallClock{Year: 2025, Month: time.January, Day: 16, Hour: 9, Minute: 30, Second: 15, Weekday: time.Thursday}
	if wc != want {
		t.Fatalf("Format = %+v, want %+v", wc, want)
	}

	if _, err := db.Format(instant, "Bogus/Zone"); !errors.Is(err, ErrUnknownZone) {
		t.Fatalf("Format(bogus) error = %v, want ErrUnknownZone", err)
	}
}

func TestFormatUTC(t *testing.T) {
	instant := time.Date(2025, 7, 4, 0, 5, 0, 0, time.FixedZone("x", 3600))
	got := FormatUTC(instant)
	if got.Day != 3 || got.Hour != 23 || got.Minute != 5 {
		t.Fatalf("FormatUTC = %+v, want Jul 3 23:05", got)
	}
}
