// Package timemath converts between absolute instants and zone wall clocks.
//
// Offsets are never read from zone metadata directly: the same instant is
// rendered in the target zone and in UTC and the two wall clocks are
// differenced. This keeps DST and historical offsets exactly as the zone
// database reports them for that instant.
package timemath

import (
	"errors"
	"log/slog"
	"time"

	"github.com/five82/tzsync/internal/zone"
)

// MinutesPerDay is the size of the minute-of-day domain.
const MinutesPerDay = 24 * 60

// Formatter renders an instant in a named zone.
type Formatter interface {
	Format(instant time.Time, tz string) (zone.WallClock, error)
}

// Calculator bundles the offset calculator, wall-clock reader and instant
// synthesizer over one zone database.
type Calculator struct {
	zones  Formatter
	logger *slog.Logger
}

// New returns a Calculator backed by zones.
func New(zones Formatter, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Calculator{zones: zones, logger: logger}
}

// LocalParts are the wall-clock fields of an instant in one zone.
type LocalParts struct {
	Hour         int
	Minute       int
	TotalMinutes int
	Weekday      time.Weekday
	Month        time.Month
	Day          int
	Year         int
	Valid        bool
}

// PlaceholderParts is returned when a zone cannot be resolved.
var PlaceholderParts = LocalParts{
	Weekday: time.Monday,
	Month:   time.January,
	Day:     1,
	Year:    2024,
}

// CalendarDate is a day on the proleptic Gregorian calendar.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of p.
func DateOf(p LocalParts) CalendarDate {
	return CalendarDate{Year: p.Year, Month: p.Month, Day: p.Day}
}

// Today returns the calendar day of now in now's own location.
func Today(now time.Time) CalendarDate {
	y, m, d := now.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Offset returns the UTC offset of tz at instant in minutes, positive east of
// UTC. Offsets with a seconds part (historical local mean time) are rounded
// to the nearest minute.
func (c *Calculator) Offset(instant time.Time, tz string) (int, error) {
	local, err := c.zones.Format(instant, tz)
	if err != nil {
		return 0, err
	}
	utc := zone.FormatUTC(instant)
	diff := naive(local).Sub(naive(utc))
	return int(diff.Round(time.Minute) / time.Minute), nil
}

// OffsetMinutes is Offset with lookup failures contained: the zone is treated
// as UTC so the display stays neutral.
func (c *Calculator) OffsetMinutes(instant time.Time, tz string) int {
	offset, err := c.Offset(instant, tz)
	if err != nil {
		c.logFailure("offset", tz, err)
		return 0
	}
	return offset
}

// LocalParts reads the wall clock of instant in tz. Failures yield
// PlaceholderParts.
func (c *Calculator) LocalParts(instant time.Time, tz string) LocalParts {
	wc, err := c.zones.Format(instant, tz)
	if err != nil {
		c.logFailure("local parts", tz, err)
		return PlaceholderParts
	}
	return LocalParts{
		Hour:         wc.Hour,
		Minute:       wc.Minute,
		TotalMinutes: wc.Hour*60 + wc.Minute,
		Weekday:      wc.Weekday,
		Month:        wc.Month,
		Day:          wc.Day,
		Year:         wc.Year,
		Valid:        true,
	}
}

// LocalMinutes returns the minute of day instant shows in tz.
func (c *Calculator) LocalMinutes(instant time.Time, tz string) int {
	return c.LocalParts(instant, tz).TotalMinutes
}

// Synthesize returns the instant at which tz shows desiredMinutes on ref.
//
// The offset is first sampled at the naive UTC reading of the target and then
// rechecked at the corrected instant; when the two differ (a DST boundary lies
// between them) the correction is redone once with the second offset. Times
// that do not exist on ref because a transition skips them resolve to a
// nearby valid instant.
func (c *Calculator) Synthesize(desiredMinutes int, tz string, ref CalendarDate) time.Time {
	m := NormalizeMinutes(desiredMinutes)
	guess := time.Date(ref.Year, ref.Month, ref.Day, m/60, m%60, 0, 0, time.UTC)

	approx := c.OffsetMinutes(guess, tz)
	refined := guess.Add(-time.Duration(approx) * time.Minute)

	final := c.OffsetMinutes(refined, tz)
	if final != approx {
		return guess.Add(-time.Duration(final) * time.Minute)
	}
	return refined
}

// NormalizeMinutes folds m into 0..MinutesPerDay-1.
func NormalizeMinutes(m int) int {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}

func naive(wc zone.WallClock) time.Time {
	return time.Date(wc.Year, wc.Month, wc.Day, wc.Hour, wc.Minute, wc.Second, 0, time.UTC)
}

func (c *Calculator) logFailure(op, tz string, err error) {
	if errors.Is(err, zone.ErrUnknownZone) {
		c.logger.Debug("zone unavailable, using fallback", "op", op, "zone", tz)
		return
	}
	c.logger.Warn("time conversion failed", "op", op, "zone", tz, "error", err)
}
