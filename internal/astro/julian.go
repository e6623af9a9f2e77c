// Package astro implements the positional models for the sun and moon: time
// scale conversions, ecliptic and equatorial coordinates, the horizontal
// projection for a ground observer, and the rise/set solvers built on them.
//
// All formulas target sub-degree accuracy over roughly 1900-2100 and trade
// precision for simplicity. Angles are radians unless a name says degrees.
package astro

import (
	"math"
	"time"
)

const (
	// J1970 is the Julian Date of the Unix epoch plus half a day.
	J1970 = 2440588.0
	// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00 UTC).
	J2000 = 2451545.0

	dayMs = 86400000.0

	// transitEpoch is the mean offset of solar transit from the Julian day
	// boundary.
	transitEpoch = 0.0009
)

// ToJulian converts an instant to a Julian Date.
func ToJulian(t time.Time) float64 {
	return float64(t.UnixMilli())/dayMs - 0.5 + J1970
}

// FromJulian converts a Julian Date back to an instant, rounded to the
// nearest millisecond.
func FromJulian(j float64) time.Time {
	ms := (j + 0.5 - J1970) * dayMs
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

// DaysSinceJ2000 returns the fractional days elapsed since the J2000.0
// epoch, the time argument of every positional model in this package.
func DaysSinceJ2000(t time.Time) float64 {
	return ToJulian(t) - J2000
}

// julianCycle returns the solar day number at west longitude lw containing
// days-since-J2000 d.
func julianCycle(d, lw float64) float64 {
	return math.Round(d - transitEpoch - lw/(2*math.Pi))
}

// approxTransit estimates the days-since-J2000 of a transit for hour angle
// ht, west longitude lw, and solar day n.
func approxTransit(ht, lw, n float64) float64 {
	return transitEpoch + (ht+lw)/(2*math.Pi) + n
}

// ShiftByHours returns t moved by a fractional number of hours, rounded to
// the nearest millisecond.
func ShiftByHours(t time.Time, hours float64) time.Time {
	return time.UnixMilli(t.UnixMilli() + int64(math.Round(hours*dayMs/24))).UTC()
}

// JulianDayNumber returns the integer Julian Day Number of a Gregorian civil
// date. The JDN labels the whole day; it equals the Julian Date at noon.
func JulianDayNumber(year int, month time.Month, day int) int {
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// startOfDayUTC returns UTC midnight of the day containing t.
func startOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
