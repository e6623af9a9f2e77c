package astro

import (
	"math"
	"time"
)

// rad converts degrees to radians when multiplied.
const rad = math.Pi / 180

// obliquity is Earth's axial tilt in radians, held fixed for all epochs.
// No secular drift is modeled; the error is negligible at the targeted
// sub-degree accuracy.
const obliquity = rad * 23.4397

// Observer is a ground-based observer location.
// Latitude north positive, longitude east positive, both in degrees.
// The engine does not range-check coordinates; callers own their validity.
type Observer struct {
	LatDeg float64
	LonDeg float64
	Name   string
}

// phiLw returns the observer latitude in radians and the west-positive
// longitude in radians, the two quantities every projection needs.
func (o Observer) phiLw() (phi, lw float64) {
	return rad * o.LatDeg, rad * -o.LonDeg
}

// EquatorialCoord is a position on the celestial sphere in the equatorial
// frame. Both angles in radians.
type EquatorialCoord struct {
	RA  float64 // right ascension
	Dec float64 // declination
}

// rightAscension converts ecliptic longitude/latitude (radians) to right
// ascension via the fixed obliquity rotation.
func rightAscension(lon, lat float64) float64 {
	return math.Atan2(math.Sin(lon)*math.Cos(obliquity)-math.Tan(lat)*math.Sin(obliquity), math.Cos(lon))
}

// declination converts ecliptic longitude/latitude (radians) to declination.
func declination(lon, lat float64) float64 {
	return math.Asin(math.Sin(lat)*math.Cos(obliquity) + math.Cos(lat)*math.Sin(obliquity)*math.Sin(lon))
}

// siderealTime returns the local sidereal time in radians for days-since-J2000
// d and west-positive longitude lw.
func siderealTime(d, lw float64) float64 {
	return rad*(280.16+360.9856235*d) - lw
}

// azimuth returns the azimuth for hour angle H, observer latitude phi, and
// declination dec (all radians). Measured from south, positive westward.
func azimuth(H, phi, dec float64) float64 {
	return math.Atan2(math.Sin(H), math.Cos(H)*math.Sin(phi)-math.Tan(dec)*math.Cos(phi))
}

// altitude returns the altitude above the horizon for hour angle H, observer
// latitude phi, and declination dec (all radians).
func altitude(H, phi, dec float64) float64 {
	return math.Asin(math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(H))
}

// refraction returns the atmospheric refraction correction in radians for an
// apparent altitude h (radians). Valid for non-negative altitudes; negative
// input is clamped to avoid the singularity at h = -0.08901179.
// Formula 16.4 of Meeus, Astronomical Algorithms (2nd ed.), converted to
// radians.
func refraction(h float64) float64 {
	if h < 0 {
		h = 0
	}
	return 0.0002967 / math.Tan(h+0.00312536/(h+0.08901179))
}

// parallacticAngle returns the parallactic angle (radians) for hour angle H,
// observer latitude phi, and declination dec: the tilt between the celestial
// pole direction and the local zenith direction as seen at the body.
func parallacticAngle(H, phi, dec float64) float64 {
	return math.Atan2(math.Sin(H), math.Tan(phi)*math.Cos(dec)-math.Sin(dec)*math.Cos(H))
}

// Horizontal projects an equatorial position into the observer's sky at time
// t. Returns azimuth (from south, westward positive) and altitude, both in
// radians. No refraction is applied.
func Horizontal(eq EquatorialCoord, obs Observer, t time.Time) (az, alt float64) {
	phi, lw := obs.phiLw()
	d := DaysSinceJ2000(t)
	H := siderealTime(d, lw) - eq.RA
	return azimuth(H, phi, eq.Dec), altitude(H, phi, eq.Dec)
}

// CompassAzimuth converts an engine azimuth (from south, westward positive)
// to a compass bearing in degrees (0 = north, 90 = east).
func CompassAzimuth(az float64) float64 {
	deg := az/rad + 180
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
