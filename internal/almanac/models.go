// Package almanac assembles the per-instant sun and moon report served to
// the UI and the export writers.
package almanac

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Report is a complete almanac snapshot for one instant and one observer.
type Report struct {
	Timestamp time.Time
	Observer  astro.Observer

	SunPosition astro.SunPosition
	SunTimes    astro.SunTimes

	MoonPosition astro.MoonPosition
	MoonPhase    astro.MoonPhase
	MoonTimes    astro.MoonTimes
}

// Compute evaluates the full almanac for an instant and observer.
func Compute(t time.Time, obs astro.Observer) *Report {
	return &Report{
		Timestamp:    t,
		Observer:     obs,
		SunPosition:  astro.SunPositionAt(t, obs),
		SunTimes:     astro.SunTimesAt(t, obs),
		MoonPosition: astro.MoonPositionAt(t, obs),
		MoonPhase:    astro.MoonPhaseAt(t),
		MoonTimes:    astro.MoonTimesAt(t, obs),
	}
}

// DayLength returns the sunrise-to-sunset duration, or 0 and false when the
// sun never crosses the horizon that day.
func (r *Report) DayLength() (time.Duration, bool) {
	if !r.SunTimes.Sunrise.Valid || !r.SunTimes.Sunset.Valid {
		return 0, false
	}
	return r.SunTimes.Sunset.End.Sub(r.SunTimes.Sunrise.Start), true
}

// SunUp reports whether the sun's center is above the geometric horizon.
func (r *Report) SunUp() bool {
	return r.SunPosition.Altitude > 0
}

// MoonUp reports whether the moon's refracted altitude is above the horizon.
func (r *Report) MoonUp() bool {
	return r.MoonPosition.Altitude > 0
}

// AltitudeSample is one point of a body's altitude track over a day.
type AltitudeSample struct {
	Time    time.Time
	SunAlt  float64 // radians
	MoonAlt float64 // radians
}

// AltitudeTrack samples sun and moon altitudes across the UTC day containing
// t at the given step. Used by the dashboard sparkline and the sky view.
func AltitudeTrack(t time.Time, obs astro.Observer, step time.Duration) []AltitudeSample {
	if step <= 0 {
		step = 30 * time.Minute
	}
	day := t.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var samples []AltitudeSample
	for at := start; !at.After(end); at = at.Add(step) {
		samples = append(samples, AltitudeSample{
			Time:    at,
			SunAlt:  astro.SunPositionAt(at, obs).Altitude,
			MoonAlt: astro.MoonPositionAt(at, obs).Altitude,
		})
	}
	return samples
}
