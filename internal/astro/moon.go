package astro

import (
	"math"
	"time"
)

// sunDistanceKm is the mean Earth-Sun distance used by the illumination
// model.
const sunDistanceKm = 149598000.0

// moonRiseOffset is the standard parallax allowance, in radians, subtracted
// from the moon's apparent altitude when scanning for horizon crossings.
const moonRiseOffset = rad * 0.133

// eclipticMoon is the moon's geocentric ecliptic position.
type eclipticMoon struct {
	lon  float64 // radians
	lat  float64 // radians
	dist float64 // km
}

// moonCoords returns the moon's ecliptic position for days-since-J2000 d,
// from the three dominant periodic terms.
func moonCoords(d float64) eclipticMoon {
	l := rad * (218.316 + 13.176396*d) // mean longitude
	m := rad * (134.963 + 13.064993*d) // mean anomaly
	f := rad * (93.272 + 13.229350*d)  // mean distance (argument of latitude)

	return eclipticMoon{
		lon:  l + rad*6.289*math.Sin(m),
		lat:  rad * 5.128 * math.Sin(f),
		dist: 385001 - 20905*math.Cos(m),
	}
}

// moonEquatorial returns the moon's equatorial coordinates and distance.
func moonEquatorial(d float64) (EquatorialCoord, float64) {
	ecl := moonCoords(d)
	return EquatorialCoord{
		RA:  rightAscension(ecl.lon, ecl.lat),
		Dec: declination(ecl.lon, ecl.lat),
	}, ecl.dist
}

// MoonPosition is the moon's apparent place in an observer's sky. Azimuth is
// measured from south, positive westward; angles in radians; altitude is
// refraction-corrected. Sign is the zodiac sign for the moon's
// astrologically-normalized ecliptic longitude.
type MoonPosition struct {
	Azimuth          float64
	Altitude         float64
	DistanceKm       float64
	ParallacticAngle float64
	EclipticLon      float64
	EclipticLat      float64
	Sign             Sign
}

// MoonPositionAt computes the moon's position for an instant and observer.
func MoonPositionAt(t time.Time, obs Observer) MoonPosition {
	phi, lw := obs.phiLw()
	d := DaysSinceJ2000(t)

	ecl := moonCoords(d)
	ra := rightAscension(ecl.lon, ecl.lat)
	dec := declination(ecl.lon, ecl.lat)
	H := siderealTime(d, lw) - ra

	h := altitude(H, phi, dec)
	h += refraction(h)

	y, m, day := t.UTC().Date()

	return MoonPosition{
		Azimuth:          azimuth(H, phi, dec),
		Altitude:         h,
		DistanceKm:       ecl.dist,
		ParallacticAngle: parallacticAngle(H, phi, dec),
		EclipticLon:      ecl.lon,
		EclipticLat:      ecl.lat,
		Sign:             SignForLongitude(zodiacLongitude(JulianDayNumber(y, m, day))),
	}
}

// MoonPhase describes the moon's illumination at an instant. Fraction is the
// illuminated fraction of the disc in [0,1]; Phase runs [0,1] with 0 and 1
// at new moon and 0.5 at full moon; Angle is the position angle of the
// bright limb in radians, its sign separating waxing from waning.
type MoonPhase struct {
	Fraction float64
	Phase    float64
	Angle    float64
}

// Waxing reports whether the moon is gaining illumination.
func (p MoonPhase) Waxing() bool {
	return p.Angle < 0
}

// MoonPhaseAt computes the moon's phase and illuminated fraction at an
// instant. Location-independent.
func MoonPhaseAt(t time.Time) MoonPhase {
	d := DaysSinceJ2000(t)
	s := sunCoords(d)
	m, dist := moonEquatorial(d)

	// Geocentric angular separation of sun and moon.
	phi := math.Acos(math.Sin(s.Dec)*math.Sin(m.Dec) +
		math.Cos(s.Dec)*math.Cos(m.Dec)*math.Cos(s.RA-m.RA))

	// Phase angle magnitude from the sun-moon-earth triangle.
	inc := math.Atan2(sunDistanceKm*math.Sin(phi), dist-sunDistanceKm*math.Cos(phi))

	// Position angle of the bright limb; sign carries waxing/waning.
	angle := math.Atan2(math.Cos(s.Dec)*math.Sin(s.RA-m.RA),
		math.Sin(s.Dec)*math.Cos(m.Dec)-math.Cos(s.Dec)*math.Sin(m.Dec)*math.Cos(s.RA-m.RA))

	sign := 1.0
	if angle < 0 {
		sign = -1
	}

	return MoonPhase{
		Fraction: (1 + math.Cos(inc)) / 2,
		Phase:    0.5 + 0.5*inc*sign/math.Pi,
		Angle:    angle,
	}
}

// MoonTimes holds the moon's horizon crossings for one UTC day at one
// location. Either crossings are reported (HasRise/HasSet, zero, one, or
// both) or exactly one of AlwaysUp/AlwaysDown is set when the moon never
// crosses the horizon in the 24-hour window; the two representations are
// mutually exclusive.
type MoonTimes struct {
	Rise    time.Time
	Set     time.Time
	HasRise bool
	HasSet  bool

	AlwaysUp   bool
	AlwaysDown bool
}

// MoonTimesAt computes moonrise and moonset for the UTC day containing t.
//
// The moon's altitude curve is sampled every two hours from local midnight
// and a parabola is fitted through each overlapping three-sample window in
// the normalized coordinate x in [-1,1]. Real roots inside the window are
// horizon crossings; the vertex altitude decides which root is the rise and
// which the set when both fall in one window.
func MoonTimesAt(t time.Time, obs Observer) MoonTimes {
	start := startOfDayUTC(t)

	alt := func(h float64) float64 {
		return MoonPositionAt(ShiftByHours(start, h), obs).Altitude - moonRiseOffset
	}

	h0 := alt(0)
	var rise, set, ye float64

	for i := 1.0; i <= 23; i += 2 {
		h1 := alt(i)
		h2 := alt(i + 1)

		a := (h0+h2)/2 - h1
		b := (h2 - h0) / 2
		xe := -b / (2 * a)
		ye = (a*xe+b)*xe + h1
		disc := b*b - 4*a*h1

		roots := 0
		var x1, x2 float64
		if disc >= 0 {
			dx := math.Sqrt(disc) / (math.Abs(a) * 2)
			x1 = xe - dx
			x2 = xe + dx
			if math.Abs(x1) <= 1 {
				roots++
			}
			if math.Abs(x2) <= 1 {
				roots++
			}
			if x1 < -1 {
				x1 = x2
			}
		}

		switch roots {
		case 1:
			if h0 < 0 {
				rise = i + x1
			} else {
				set = i + x1
			}
		case 2:
			if ye < 0 {
				rise = i + x2
				set = i + x1
			} else {
				rise = i + x1
				set = i + x2
			}
		}

		if rise != 0 && set != 0 {
			break
		}
		h0 = h2
	}

	var mt MoonTimes
	if rise != 0 {
		mt.Rise = ShiftByHours(start, rise)
		mt.HasRise = true
	}
	if set != 0 {
		mt.Set = ShiftByHours(start, set)
		mt.HasSet = true
	}
	if !mt.HasRise && !mt.HasSet {
		if ye > 0 {
			mt.AlwaysUp = true
		} else {
			mt.AlwaysDown = true
		}
	}
	return mt
}
