package anchor

import (
	"github.com/five82/tzsync/internal/catalog"
	"github.com/five82/tzsync/internal/timemath"
)

// Working hours, minutes from local midnight.
const (
	WorkStartMinutes = 9 * 60
	WorkEndMinutes   = 18 * 60
)

// Row is one location rendered at the shared instant.
type Row struct {
	Location    catalog.Location
	IsHome      bool
	Parts       timemath.LocalParts
	PickerValue int // Parts.TotalMinutes snapped to the grid
	Offset      int // minutes east of UTC
	DiffMinutes int // Offset minus home's offset; 0 for home
	Solar       timemath.SolarCycle
	Working     bool
	Daytime     bool

	TimeLabel   string
	DateLabel   string
	OffsetLabel string
	DiffLabel   string // empty for home
}

// Progress is the row's position through its local day, 0..1.
func (r Row) Progress() float64 {
	return float64(r.Parts.TotalMinutes) / timemath.MinutesPerDay
}

// Rows derives the per-location view of st. It is recomputed on every call
// and never cached.
func (s *Synchronizer) Rows(st State, mode timemath.DisplayFormat) []Row {
	if len(st.Locations) == 0 {
		return nil
	}
	homeOffset := s.calc.OffsetMinutes(st.Instant, st.Locations[0].TimeZone)

	rows := make([]Row, 0, len(st.Locations))
	for i, loc := range st.Locations {
		parts := s.calc.LocalParts(st.Instant, loc.TimeZone)
		offset := s.calc.OffsetMinutes(st.Instant, loc.TimeZone)
		solar := s.calc.SolarCycle(loc.Lat, st.Instant, loc.TimeZone)
		m := parts.TotalMinutes

		row := Row{
			Location:    loc,
			IsHome:      i == 0,
			Parts:       parts,
			PickerValue: timemath.RoundToGrid(m),
			Offset:      offset,
			Solar:       solar,
			Working:     m >= WorkStartMinutes && m < WorkEndMinutes,
			Daytime:     solar.IsDaytime(m),
			TimeLabel:   s.calc.TimeLabel(st.Instant, loc.TimeZone, mode),
			DateLabel:   s.calc.DateLabel(st.Instant, loc.TimeZone),
			OffsetLabel: s.calc.OffsetLabel(st.Instant, loc.TimeZone),
		}
		if i > 0 {
			row.DiffMinutes = offset - homeOffset
			row.DiffLabel = timemath.DiffLabel(row.DiffMinutes)
		}
		rows = append(rows, row)
	}
	return rows
}
