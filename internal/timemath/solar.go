package timemath

import (
	"math"
	"time"
)

// SolarCycle holds approximate sunrise and sunset as minutes from local
// midnight. Solar noon is taken as 12:00.
type SolarCycle struct {
	SunriseMinutes float64
	SunsetMinutes  float64
}

// FallbackSolarCycle is 06:00 to 18:00.
var FallbackSolarCycle = SolarCycle{SunriseMinutes: 360, SunsetMinutes: 1080}

// IsDaytime reports whether minute-of-day m falls between sunrise and sunset.
func (s SolarCycle) IsDaytime(m int) bool {
	f := float64(m)
	return f >= s.SunriseMinutes && f < s.SunsetMinutes
}

// EstimateSolarCycle approximates daylight for latitude lat on the calendar
// day of instant, read in instant's own location. Polar day and night clamp to
// a full or empty span instead of failing.
func EstimateSolarCycle(lat float64, instant time.Time) SolarCycle {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.Abs(lat) > 90 {
		return FallbackSolarCycle
	}

	doy := float64(instant.YearDay())
	declination := 23.45 * math.Sin(2*math.Pi/365*(doy-81))

	cosH := -math.Tan(lat*math.Pi/180) * math.Tan(declination*math.Pi/180)
	cosH = math.Max(-1, math.Min(1, cosH))
	if math.IsNaN(cosH) {
		return FallbackSolarCycle
	}

	h := math.Acos(cosH) * 180 / math.Pi
	half := h / 15 * 60
	return SolarCycle{SunriseMinutes: 720 - half, SunsetMinutes: 720 + half}
}

// SolarCycle estimates daylight for lat on the day instant shows in tz. An
// unresolvable zone falls back to the UTC calendar day.
func (c *Calculator) SolarCycle(lat float64, instant time.Time, tz string) SolarCycle {
	p := c.LocalParts(instant, tz)
	day := instant.UTC()
	if p.Valid {
		day = time.Date(p.Year, p.Month, p.Day, p.Hour, p.Minute, 0, 0, time.UTC)
	}
	return EstimateSolarCycle(lat, day)
}
