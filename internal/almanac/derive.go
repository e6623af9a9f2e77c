package almanac

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// PhaseBucket is a named eighth of the lunation.
type PhaseBucket string

const (
	PhaseNewMoon        PhaseBucket = "New Moon"
	PhaseWaxingCrescent PhaseBucket = "Waxing Crescent"
	PhaseFirstQuarter   PhaseBucket = "First Quarter"
	PhaseWaxingGibbous  PhaseBucket = "Waxing Gibbous"
	PhaseFullMoon       PhaseBucket = "Full Moon"
	PhaseWaningGibbous  PhaseBucket = "Waning Gibbous"
	PhaseLastQuarter    PhaseBucket = "Last Quarter"
	PhaseWaningCrescent PhaseBucket = "Waning Crescent"
)

// phaseTable maps lunation fractions to buckets. Each principal phase owns a
// narrow band around its exact fraction; the crescent and gibbous ranges fill
// the gaps.
var phaseTable = []struct {
	UpTo   float64
	Bucket PhaseBucket
}{
	{0.0375, PhaseNewMoon},
	{0.2125, PhaseWaxingCrescent},
	{0.2875, PhaseFirstQuarter},
	{0.4625, PhaseWaxingGibbous},
	{0.5375, PhaseFullMoon},
	{0.7125, PhaseWaningGibbous},
	{0.7875, PhaseLastQuarter},
	{0.9625, PhaseWaningCrescent},
	{1.0001, PhaseNewMoon},
}

// PhaseName classifies a lunation phase in [0,1] into one of the eight
// traditional buckets.
func PhaseName(phase float64) PhaseBucket {
	p := phase - math.Floor(phase)
	for _, e := range phaseTable {
		if p < e.UpTo {
			return e.Bucket
		}
	}
	return PhaseNewMoon
}

// phaseGlyphs holds the northern-hemisphere moon glyphs in bucket order.
var phaseGlyphs = map[PhaseBucket]string{
	PhaseNewMoon:        "🌑",
	PhaseWaxingCrescent: "🌒",
	PhaseFirstQuarter:   "🌓",
	PhaseWaxingGibbous:  "🌔",
	PhaseFullMoon:       "🌕",
	PhaseWaningGibbous:  "🌖",
	PhaseLastQuarter:    "🌗",
	PhaseWaningCrescent: "🌘",
}

// PhaseGlyph returns the moon glyph for a lunation phase.
func PhaseGlyph(phase float64) string {
	return phaseGlyphs[PhaseName(phase)]
}

// compassPoints are the sixteen wind names, clockwise from north.
var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassPoint returns the sixteen-wind name for a compass bearing in
// degrees (0 = north).
func CompassPoint(deg float64) string {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Round(deg/22.5)) % 16
	return compassPoints[idx]
}

// TwilightTier classifies the sky darkness from the sun's altitude.
type TwilightTier string

const (
	TierDay          TwilightTier = "DAY"
	TierCivil        TwilightTier = "CIVIL"
	TierNautical     TwilightTier = "NAUTICAL"
	TierAstronomical TwilightTier = "ASTRO"
	TierNight        TwilightTier = "NIGHT"
)

// ClassifyTwilight maps a sun altitude in radians to a twilight tier using
// the standard -6/-12/-18 degree boundaries.
func ClassifyTwilight(sunAltRad float64) TwilightTier {
	deg := sunAltRad * 180 / math.Pi
	switch {
	case deg >= -0.83:
		return TierDay
	case deg >= -6:
		return TierCivil
	case deg >= -12:
		return TierNautical
	case deg >= -18:
		return TierAstronomical
	default:
		return TierNight
	}
}

// FormatAngle renders a radian angle as signed degrees, e.g. "-12.4°".
func FormatAngle(rad float64) string {
	return fmt.Sprintf("%+.1f°", rad*180/math.Pi)
}

// FormatBearing renders an engine azimuth as a compass bearing with its wind
// name, e.g. "223° SW".
func FormatBearing(az float64) string {
	deg := astro.CompassAzimuth(az)
	return fmt.Sprintf("%3.0f° %s", deg, CompassPoint(deg))
}

// FormatDistance returns a human-readable lunar distance string.
func FormatDistance(km float64) string {
	if km <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.0f km", km)
}

// FormatClock renders an instant as HH:MM:SS UTC, or a dash when absent.
func FormatClock(t time.Time, ok bool) string {
	if !ok || t.IsZero() {
		return "--:--:--"
	}
	return t.UTC().Format("15:04:05")
}

// FormatSpan renders a time span as "HH:MM:SS to HH:MM:SS", or a dash when
// the span never occurs.
func FormatSpan(s astro.TimeSpan) string {
	if !s.Valid {
		return "N/A"
	}
	return s.Start.UTC().Format("15:04:05") + " to " + s.End.UTC().Format("15:04:05")
}

// FormatDuration renders a duration as "HhMMm".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%02dm", h, m)
}

// FormatIllumination renders an illuminated fraction as a percentage.
func FormatIllumination(fraction float64) string {
	return fmt.Sprintf("%.0f%%", clamp(fraction, 0, 1)*100)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
