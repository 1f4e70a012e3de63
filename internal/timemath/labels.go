package timemath

import (
	"fmt"
	"time"
)

// GridMinutes is the granularity of the time picker.
const GridMinutes = 30

// RoundToGrid rounds a minute of day to the nearest grid slot, halves going
// up. A result of 1440 wraps to 0, which moves the time back to the start of
// the same calendar day rather than forward into the next.
func RoundToGrid(m int) int {
	m = NormalizeMinutes(m)
	r := (m + GridMinutes/2) / GridMinutes * GridMinutes
	if r >= MinutesPerDay {
		return 0
	}
	return r
}

// DisplayFormat selects 24-hour or 12-hour clock labels.
type DisplayFormat int

const (
	Format24Hour DisplayFormat = iota
	Format12Hour
)

// FormatFor maps a twenty-four-hour preference onto a DisplayFormat.
func FormatFor(twentyFourHour bool) DisplayFormat {
	if twentyFourHour {
		return Format24Hour
	}
	return Format12Hour
}

// FormatClock renders a minute of day as "14:30" or "2:30 PM".
func FormatClock(minutes int, mode DisplayFormat) string {
	m := NormalizeMinutes(minutes)
	h, mm := m/60, m%60
	if mode == Format24Hour {
		return fmt.Sprintf("%02d:%02d", h, mm)
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, mm, suffix)
}

// TimeLabel renders the wall-clock time of instant in tz, or "--:--".
func (c *Calculator) TimeLabel(instant time.Time, tz string, mode DisplayFormat) string {
	p := c.LocalParts(instant, tz)
	if !p.Valid {
		return "--:--"
	}
	return FormatClock(p.TotalMinutes, mode)
}

// DateLabel renders the calendar day of instant in tz as "Thu, Oct 16".
func (c *Calculator) DateLabel(instant time.Time, tz string) string {
	p := c.LocalParts(instant, tz)
	if !p.Valid {
		return "Invalid Date"
	}
	return fmt.Sprintf("%s, %s %d", p.Weekday.String()[:3], p.Month.String()[:3], p.Day)
}

// OffsetLabel renders the UTC offset of tz at instant as "GMT+11",
// "GMT-3:30" or "GMT". Unknown zones render empty.
func (c *Calculator) OffsetLabel(instant time.Time, tz string) string {
	offset, err := c.Offset(instant, tz)
	if err != nil {
		return ""
	}
	if offset == 0 {
		return "GMT"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	if offset%60 == 0 {
		return fmt.Sprintf("GMT%s%d", sign, offset/60)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, offset/60, offset%60)
}

// DiffLabel renders an offset difference as "Same time", "+5h" or "-3h 30m".
func DiffLabel(diffMinutes int) string {
	if diffMinutes == 0 {
		return "Same time"
	}
	sign := "+"
	abs := diffMinutes
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	if abs%60 == 0 {
		return fmt.Sprintf("%s%dh", sign, abs/60)
	}
	return fmt.Sprintf("%s%dh %dm", sign, abs/60, abs%60)
}

// TimeOption is one slot of the time picker.
type TimeOption struct {
	Value int
	Label string
}

// TimeOptions returns the picker slots from 00:00 to 23:30.
func TimeOptions(mode DisplayFormat) []TimeOption {
	opts := make([]TimeOption, 0, MinutesPerDay/GridMinutes)
	for m := 0; m < MinutesPerDay; m += GridMinutes {
		opts = append(opts, TimeOption{Value: m, Label: FormatClock(m, mode)})
	}
	return opts
}
