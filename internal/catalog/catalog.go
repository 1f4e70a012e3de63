// Package catalog holds the built-in city list used to add locations.
package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Entry is a catalog city before it is added to the list.
type Entry struct {
	Slug     string
	Name     string
	Country  string
	State    string // state, province or territory; optional
	TimeZone string // IANA name or UTC±hh[:mm]
	Lat      float64
	Lng      float64
}

// Location is a city placed in the user's list. Two Locations built from the
// same Entry have distinct IDs.
type Location struct {
	ID       string
	Name     string
	Country  string
	State    string
	TimeZone string
	Lat      float64
	Lng      float64
}

// DisplayName renders "Name, State" or "Name, Country".
func (l Location) DisplayName() string {
	if l.State != "" {
		return l.Name + ", " + l.State
	}
	return l.Name + ", " + l.Country
}

// DefaultSlug is the home location used when nothing is configured.
const DefaultSlug = "melbourne"

// DefaultSearchLimit caps search results.
const DefaultSearchLimit = 5

// NewLocation turns e into a Location with a fresh ID.
func NewLocation(e Entry) Location {
	id := uuid.NewString()
	return Location{
		ID:       e.Slug + "-" + id[:8],
		Name:     e.Name,
		Country:  e.Country,
		State:    e.State,
		TimeZone: e.TimeZone,
		Lat:      e.Lat,
		Lng:      e.Lng,
	}
}

// All returns a copy of the built-in entries.
func All() []Entry {
	out := make([]Entry, len(cities))
	copy(out, cities)
	return out
}

// BySlug finds an entry by slug, case-insensitively.
func BySlug(slug string) (Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(slug))
	for _, c := range cities {
		if c.Slug == key {
			return c, true
		}
	}
	return Entry{}, false
}

// Search matches query against name, country and state. A blank query
// matches nothing; limit <= 0 uses DefaultSearchLimit.
func Search(query string, limit int) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var out []Entry
	for _, c := range cities {
		if matches(c, q) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func matches(e Entry, q string) bool {
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Country), q) ||
		(e.State != "" && strings.Contains(strings.ToLower(e.State), q))
}
