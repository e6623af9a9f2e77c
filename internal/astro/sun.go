package astro

import (
	"math"
	"time"
)

// Horizon-relative angles, in degrees, at which sun crossing times are
// solved. The sunrise pair differs by the sun's apparent diameter so the
// rise/set spans cover the disc clearing the horizon.
const (
	angleHorizon      = -0.83         // upper limb at the apparent horizon, refraction included
	angleHorizonDisc  = -0.83 - 0.53  // horizon angle offset by the solar diameter
	angleCivil        = -6
	angleNautical     = -12
	angleAstronomical = -18
)

// solarMeanAnomaly returns the sun's mean anomaly in radians for
// days-since-J2000 d.
func solarMeanAnomaly(d float64) float64 {
	return rad * (357.5291 + 0.98560028*d)
}

// equationOfCenter returns the correction from mean to true anomaly, radians.
func equationOfCenter(m float64) float64 {
	return rad * (1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))
}

// eclipticLongitude returns the sun's ecliptic longitude in radians for mean
// anomaly m. The constant is Earth's perihelion longitude; pi flips the
// Earth-centered direction.
func eclipticLongitude(m float64) float64 {
	return m + equationOfCenter(m) + rad*102.9372 + math.Pi
}

// sunCoords returns the sun's equatorial coordinates for days-since-J2000 d.
func sunCoords(d float64) EquatorialCoord {
	m := solarMeanAnomaly(d)
	l := eclipticLongitude(m)
	return EquatorialCoord{
		RA:  rightAscension(l, 0),
		Dec: declination(l, 0),
	}
}

// SunPosition is the sun's apparent place in an observer's sky.
// Azimuth is measured from south, positive westward; both angles radians.
type SunPosition struct {
	Azimuth  float64
	Altitude float64
}

// SunPositionAt computes the sun's position for an instant and observer.
func SunPositionAt(t time.Time, obs Observer) SunPosition {
	phi, lw := obs.phiLw()
	d := DaysSinceJ2000(t)

	c := sunCoords(d)
	H := siderealTime(d, lw) - c.RA

	return SunPosition{
		Azimuth:  azimuth(H, phi, c.Dec),
		Altitude: altitude(H, phi, c.Dec),
	}
}

// TimeSpan is a pair of instants bounding a transition band such as a
// twilight stage or the sun's disc clearing the horizon. Start never follows
// End. Valid is false when the band does not occur on the given day (polar
// day or night for its horizon angles); Start and End are then zero.
type TimeSpan struct {
	Start time.Time
	End   time.Time
	Valid bool
}

// Duration returns the span length, or zero for an invalid span.
func (s TimeSpan) Duration() time.Duration {
	if !s.Valid {
		return 0
	}
	return s.End.Sub(s.Start)
}

// SunTimes holds the sun crossing times for one day at one location.
// All spans are chained horizon bands, morning then evening:
//
//	AstronomicalDawn  [-18, -12]     AstronomicalDusk  [-12, -18]
//	NauticalDawn      [-12,  -6]     NauticalDusk      [ -6, -12]
//	CivilDawn         [ -6, -1.36]   CivilDusk         [-1.36, -6]
//	Sunrise           [-1.36, -0.83] Sunset            [-0.83, -1.36]
//
// Dawn and Dusk are the conventional civil twilight instants (the -6°
// crossings). A band that does not occur at the given latitude and date has
// Valid=false rather than a sentinel time.
type SunTimes struct {
	Transit time.Time // solar transit (local solar noon)

	Sunrise TimeSpan
	Sunset  TimeSpan

	CivilDawn        TimeSpan
	NauticalDawn     TimeSpan
	AstronomicalDawn TimeSpan

	CivilDusk        TimeSpan
	NauticalDusk     TimeSpan
	AstronomicalDusk TimeSpan

	Dawn    time.Time
	Dusk    time.Time
	HasDawn bool
	HasDusk bool
}

// solarTransitJ refines an approximate transit (days-since-J2000) into a
// Julian Date using the equation-of-time correction.
func solarTransitJ(ds, m, l float64) float64 {
	return J2000 + ds + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*l)
}

// hourAngle solves the hour angle at which a body with declination dec
// reaches altitude h for an observer at latitude phi (all radians). Returns
// NaN when no crossing exists (polar day or night for that altitude).
func hourAngle(h, phi, dec float64) float64 {
	return math.Acos((math.Sin(h) - math.Sin(phi)*math.Sin(dec)) / (math.Cos(phi) * math.Cos(dec)))
}

// SunTimesAt computes the sun crossing times for the day containing t at the
// observer's location.
func SunTimesAt(t time.Time, obs Observer) SunTimes {
	phi, lw := obs.phiLw()

	d := DaysSinceJ2000(t)
	n := julianCycle(d, lw)
	ds := approxTransit(0, lw, n)

	m := solarMeanAnomaly(ds)
	l := eclipticLongitude(m)
	dec := declination(l, 0)

	jnoon := solarTransitJ(ds, m, l)

	// cross solves the symmetric rise/set pair around transit for one
	// horizon angle. ok is false when the sun never reaches that angle.
	cross := func(hDeg float64) (rise, set time.Time, ok bool) {
		w := hourAngle(rad*hDeg, phi, dec)
		if math.IsNaN(w) {
			return time.Time{}, time.Time{}, false
		}
		jset := solarTransitJ(approxTransit(w, lw, n), m, l)
		jrise := jnoon - (jset - jnoon)
		return FromJulian(jrise), FromJulian(jset), true
	}

	rH, sH, okH := cross(angleHorizon)
	rD, sD, okD := cross(angleHorizonDisc)
	r6, s6, ok6 := cross(angleCivil)
	r12, s12, ok12 := cross(angleNautical)
	r18, s18, ok18 := cross(angleAstronomical)

	st := SunTimes{Transit: FromJulian(jnoon)}

	st.Sunrise = span(rD, rH, okD && okH)
	st.Sunset = span(sH, sD, okH && okD)

	st.CivilDawn = span(r6, rD, ok6 && okD)
	st.CivilDusk = span(sD, s6, okD && ok6)
	st.NauticalDawn = span(r12, r6, ok12 && ok6)
	st.NauticalDusk = span(s6, s12, ok6 && ok12)
	st.AstronomicalDawn = span(r18, r12, ok18 && ok12)
	st.AstronomicalDusk = span(s12, s18, ok12 && ok18)

	if ok6 {
		st.Dawn, st.HasDawn = r6, true
		st.Dusk, st.HasDusk = s6, true
	}

	return st
}

func span(start, end time.Time, ok bool) TimeSpan {
	if !ok {
		return TimeSpan{}
	}
	return TimeSpan{Start: start, End: end, Valid: true}
}
