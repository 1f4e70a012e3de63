// Package zone is the timezone database capability used by the time math.
//
// It resolves IANA identifiers through the Go tz database and fixed offsets
// written as UTC+10, UTC-5 or UTC+05:30. Resolutions, including failures, are
// memoised so the render path never reparses zone data.
package zone

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"
)

// ErrUnknownZone is the sentinel wrapped by every LookupError.
var ErrUnknownZone = errors.New("unknown time zone")

// LookupError reports an identifier the database could not resolve.
type LookupError struct {
	ID  string
	Err error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lookup zone %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("lookup zone %q: %v", e.ID, ErrUnknownZone)
}

// Unwrap lets errors.Is match ErrUnknownZone.
func (e *LookupError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnknownZone}
	}
	return []error{ErrUnknownZone, e.Err}
}

// WallClock is an instant rendered in a zone.
type WallClock struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int // 0..23
	Minute  int
	Second  int
	Weekday time.Weekday
}

// maxFixedOffset bounds UTC±hh[:mm] identifiers to real-world offsets.
const maxFixedOffset = 14 * time.Hour

const defaultCapacity = 1024

type entry struct {
	loc *time.Location
	err error
}

// Database resolves zone identifiers. It is safe for concurrent use.
type Database struct {
	cache  *otter.Cache[string, entry]
	logger *slog.Logger
}

// Option configures a Database.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	capacity int
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCapacity bounds the number of memoised identifiers.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// New creates a Database.
func New(opts ...Option) *Database {
	o := options{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	cache := otter.Must(&otter.Options[string, entry]{
		MaximumSize:     o.capacity,
		InitialCapacity: 64,
	})
	return &Database{cache: cache, logger: o.logger}
}

// Lookup resolves id to a location. Unknown or blank identifiers fail with a
// *LookupError.
func (d *Database) Lookup(id string) (*time.Location, error) {
	key := strings.TrimSpace(id)
	if cached, ok := d.cache.GetIfPresent(key); ok {
		return cached.loc, cached.err
	}

	loc, err := resolve(key)
	if err != nil {
		d.logger.Warn("zone lookup failed", "zone", id, "error", err)
	}
	d.cache.Set(key, entry{loc: loc, err: err})
	return loc, err
}

// Format renders instant as wall-clock components in zone id.
func (d *Database) Format(instant time.Time, id string) (WallClock, error) {
	loc, err := d.Lookup(id)
	if err != nil {
		return WallClock{}, err
	}
	return wallClock(instant.In(loc)), nil
}

// FormatUTC renders instant as UTC wall-clock components.
func FormatUTC(instant time.Time) WallClock {
	return wallClock(instant.UTC())
}

// Size reports how many identifiers are memoised.
func (d *Database) Size() int {
	return d.cache.EstimatedSize()
}

func wallClock(t time.Time) WallClock {
	hour := t.Hour()
	if hour == 24 {
		hour = 0
	}
	return WallClock{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Hour:    hour,
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: t.Weekday(),
	}
}

func resolve(id string) (*time.Location, error) {
	if id == "" {
		return nil, &LookupError{ID: id}
	}
	if loc, ok, err := parseFixed(id); ok {
		if err != nil {
			return nil, &LookupError{ID: id, Err: err}
		}
		return loc, nil
	}
	if strings.EqualFold(id, "local") {
		// The process zone is not a location identifier.
		return nil, &LookupError{ID: id}
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, &LookupError{ID: id, Err: err}
	}
	return loc, nil
}

// parseFixed handles UTC, GMT and UTC±h, UTC±hh:mm, UTC±hhmm. ok reports
// whether id used the fixed-offset syntax at all.
func parseFixed(id string) (loc *time.Location, ok bool, err error) {
	upper := strings.ToUpper(id)
	var rest string
	switch {
	case strings.HasPrefix(upper, "UTC"):
		rest = id[3:]
	case strings.HasPrefix(upper, "GMT"):
		rest = id[3:]
	default:
		return nil, false, nil
	}
	if rest == "" {
		return time.UTC, true, nil
	}

	sign := 1
	switch rest[0] {
	case '+':
	case '-':
		sign = -1
	default:
		// Something like "UTCfoo" is not ours; let the tz database decide.
		return nil, false, nil
	}
	body := rest[1:]

	var hoursStr, minutesStr string
	switch {
	case strings.Contains(body, ":"):
		hoursStr, minutesStr, _ = strings.Cut(body, ":")
	case len(body) == 4:
		hoursStr, minutesStr = body[:2], body[2:]
	default:
		hoursStr = body
	}

	if !digits(hoursStr) {
		return nil, true, fmt.Errorf("invalid offset hours %q", hoursStr)
	}
	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		return nil, true, fmt.Errorf("invalid offset hours %q", hoursStr)
	}
	minutes := 0
	if minutesStr != "" {
		minutes, err = strconv.Atoi(minutesStr)
		if err != nil || !digits(minutesStr) || minutes < 0 || minutes >= 60 || len(minutesStr) != 2 {
			return nil, true, fmt.Errorf("invalid offset minutes %q", minutesStr)
		}
	}

	offset := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if hours < 0 || offset > maxFixedOffset {
		return nil, true, fmt.Errorf("offset %s out of range", rest)
	}
	return time.FixedZone(fixedName(sign, hours, minutes), sign*int(offset/time.Second)), true, nil
}

// digits reports whether s is non-empty and all ASCII digits. strconv.Atoi
// alone would accept a sign.
func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func fixedName(sign, hours, minutes int) string {
	if hours == 0 && minutes == 0 {
		return "UTC"
	}
	prefix := "+"
	if sign < 0 {
		prefix = "-"
	}
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", prefix, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", prefix, hours, minutes)
}
