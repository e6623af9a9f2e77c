package astro

import "math"

// Sign is a zodiac sign name.
type Sign string

// The twelve signs in ecliptic order.
const (
	SignAries       Sign = "Aries"
	SignTaurus      Sign = "Taurus"
	SignGemini      Sign = "Gemini"
	SignCancer      Sign = "Cancer"
	SignLeo         Sign = "Leo"
	SignVirgo       Sign = "Virgo"
	SignLibra       Sign = "Libra"
	SignScorpio     Sign = "Scorpio"
	SignSagittarius Sign = "Sagittarius"
	SignCapricorn   Sign = "Capricorn"
	SignAquarius    Sign = "Aquarius"
	SignPisces      Sign = "Pisces"
)

// signTable maps 30°-wide ecliptic longitude buckets to signs, starting at
// Aries 0°.
var signTable = []struct {
	From float64
	Sign Sign
}{
	{0, SignAries},
	{30, SignTaurus},
	{60, SignGemini},
	{90, SignCancer},
	{120, SignLeo},
	{150, SignVirgo},
	{180, SignLibra},
	{210, SignScorpio},
	{240, SignSagittarius},
	{270, SignCapricorn},
	{300, SignAquarius},
	{330, SignPisces},
}

// SignForLongitude returns the zodiac sign for an ecliptic longitude in
// degrees. The longitude is normalized to [0,360) first.
func SignForLongitude(lonDeg float64) Sign {
	lon := math.Mod(lonDeg, 360)
	if lon < 0 {
		lon += 360
	}
	sign := signTable[0].Sign
	for _, entry := range signTable {
		if lon < entry.From {
			break
		}
		sign = entry.Sign
	}
	return sign
}

// Mean lunar cycle lengths in days, and the Julian Dates of a reference
// zero point for each cycle.
const (
	synodicMonth     = 29.530588853  // new moon to new moon
	anomalisticMonth = 27.55454988   // perigee to perigee
	draconicMonth    = 27.212220817  // node to node
	tropicalMonth    = 27.321582241  // equinox to equinox

	epochNewMoon = 2451550.1
	epochPerigee = 2451562.2
	epochNode    = 2451565.2
	epochEquinox = 2451555.8
)

// cycleFraction returns the fractional position of jdn within a cycle of the
// given length anchored at epoch, in [0,1).
func cycleFraction(jdn int, epoch, length float64) float64 {
	f := (float64(jdn) - epoch) / length
	f -= math.Floor(f)
	return f
}

// zodiacLongitude returns the moon's astrologically-normalized ecliptic
// longitude in degrees [0,360) for an integer Julian Day Number.
//
// This is a deliberately separate model from moonCoords: it sums periodic
// terms over the synodic, anomalistic, and tropical cycles evaluated on the
// discrete civil-date JDN, matching the traditional zodiac reckoning rather
// than the continuous ephemeris longitude. The two are close but not equal;
// do not unify them.
func zodiacLongitude(jdn int) float64 {
	ip := 2 * math.Pi * cycleFraction(jdn, epochNewMoon, synodicMonth) // synodic phase
	dp := 2 * math.Pi * cycleFraction(jdn, epochPerigee, anomalisticMonth)
	rp := cycleFraction(jdn, epochEquinox, tropicalMonth)

	lon := 360*rp + 6.3*math.Sin(dp) + 1.3*math.Sin(2*ip-dp) + 0.7*math.Sin(2*ip)
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

// zodiacLatitude returns the moon's ecliptic latitude in degrees from the
// draconic cycle, companion term of the zodiac longitude model.
func zodiacLatitude(jdn int) float64 {
	np := 2 * math.Pi * cycleFraction(jdn, epochNode, draconicMonth)
	return 5.1 * math.Sin(np)
}
