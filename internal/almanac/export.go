package almanac

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// ReportExport is the JSON-serializable representation of an almanac report.
type ReportExport struct {
	Timestamp time.Time      `json:"timestamp"`
	Observer  ObserverExport `json:"observer"`
	Sun       SunExport      `json:"sun"`
	Moon      MoonExport     `json:"moon"`
}

// ObserverExport is a JSON-friendly observer representation.
type ObserverExport struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SunExport carries the sun's position and day timeline.
type SunExport struct {
	AzimuthDeg  float64 `json:"azimuth_deg"`
	AltitudeDeg float64 `json:"altitude_deg"`
	Twilight    string  `json:"twilight"`

	Transit          time.Time   `json:"transit"`
	Sunrise          *SpanExport `json:"sunrise,omitempty"`
	Sunset           *SpanExport `json:"sunset,omitempty"`
	CivilDawn        *SpanExport `json:"civil_dawn,omitempty"`
	CivilDusk        *SpanExport `json:"civil_dusk,omitempty"`
	NauticalDawn     *SpanExport `json:"nautical_dawn,omitempty"`
	NauticalDusk     *SpanExport `json:"nautical_dusk,omitempty"`
	AstronomicalDawn *SpanExport `json:"astronomical_dawn,omitempty"`
	AstronomicalDusk *SpanExport `json:"astronomical_dusk,omitempty"`
	Dawn             *time.Time  `json:"dawn,omitempty"`
	Dusk             *time.Time  `json:"dusk,omitempty"`
	DayLengthMinutes float64     `json:"day_length_minutes,omitempty"`
}

// SpanExport is a JSON-friendly time span.
type SpanExport struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MoonExport carries the moon's position, phase, and horizon crossings.
type MoonExport struct {
	AzimuthDeg     float64 `json:"azimuth_deg"`
	AltitudeDeg    float64 `json:"altitude_deg"`
	DistanceKm     float64 `json:"distance_km"`
	ParallacticDeg float64 `json:"parallactic_angle_deg"`
	Sign           string  `json:"zodiac_sign"`
	Fraction       float64 `json:"illuminated_fraction"`
	Phase          float64 `json:"phase"`
	PhaseName      string  `json:"phase_name"`
	Waxing         bool    `json:"waxing"`

	Rise       *time.Time `json:"rise,omitempty"`
	Set        *time.Time `json:"set,omitempty"`
	AlwaysUp   bool       `json:"always_up,omitempty"`
	AlwaysDown bool       `json:"always_down,omitempty"`
}

const degPerRad = 180 / math.Pi

// ExportReport converts a report to the exportable format.
func ExportReport(r *Report) *ReportExport {
	if r == nil {
		return &ReportExport{}
	}

	export := &ReportExport{
		Timestamp: r.Timestamp,
		Observer: ObserverExport{
			Name:      r.Observer.Name,
			Latitude:  r.Observer.LatDeg,
			Longitude: r.Observer.LonDeg,
		},
		Sun: SunExport{
			AzimuthDeg:       astro.CompassAzimuth(r.SunPosition.Azimuth),
			AltitudeDeg:      r.SunPosition.Altitude * degPerRad,
			Twilight:         string(ClassifyTwilight(r.SunPosition.Altitude)),
			Transit:          r.SunTimes.Transit,
			Sunrise:          spanExport(r.SunTimes.Sunrise),
			Sunset:           spanExport(r.SunTimes.Sunset),
			CivilDawn:        spanExport(r.SunTimes.CivilDawn),
			CivilDusk:        spanExport(r.SunTimes.CivilDusk),
			NauticalDawn:     spanExport(r.SunTimes.NauticalDawn),
			NauticalDusk:     spanExport(r.SunTimes.NauticalDusk),
			AstronomicalDawn: spanExport(r.SunTimes.AstronomicalDawn),
			AstronomicalDusk: spanExport(r.SunTimes.AstronomicalDusk),
		},
		Moon: MoonExport{
			AzimuthDeg:     astro.CompassAzimuth(r.MoonPosition.Azimuth),
			AltitudeDeg:    r.MoonPosition.Altitude * degPerRad,
			DistanceKm:     r.MoonPosition.DistanceKm,
			ParallacticDeg: r.MoonPosition.ParallacticAngle * degPerRad,
			Sign:           string(r.MoonPosition.Sign),
			Fraction:       r.MoonPhase.Fraction,
			Phase:          r.MoonPhase.Phase,
			PhaseName:      string(PhaseName(r.MoonPhase.Phase)),
			Waxing:         r.MoonPhase.Waxing(),
			AlwaysUp:       r.MoonTimes.AlwaysUp,
			AlwaysDown:     r.MoonTimes.AlwaysDown,
		},
	}

	if r.SunTimes.HasDawn {
		d := r.SunTimes.Dawn
		export.Sun.Dawn = &d
	}
	if r.SunTimes.HasDusk {
		d := r.SunTimes.Dusk
		export.Sun.Dusk = &d
	}
	if dl, ok := r.DayLength(); ok {
		export.Sun.DayLengthMinutes = dl.Minutes()
	}
	if r.MoonTimes.HasRise {
		t := r.MoonTimes.Rise
		export.Moon.Rise = &t
	}
	if r.MoonTimes.HasSet {
		t := r.MoonTimes.Set
		export.Moon.Set = &t
	}

	return export
}

func spanExport(s astro.TimeSpan) *SpanExport {
	if !s.Valid {
		return nil
	}
	return &SpanExport{Start: s.Start, End: s.End}
}

// WriteJSON writes the report as indented JSON to the given writer.
func (e *ReportExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteSummaryTable writes the day's sun timeline as a text table.
func WriteSummaryTable(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Almanac for %s @ %s\n", observerLabel(r.Observer), r.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 62))

	rows := []struct {
		name string
		val  string
	}{
		{"Astronomical dawn", FormatSpan(r.SunTimes.AstronomicalDawn)},
		{"Nautical dawn", FormatSpan(r.SunTimes.NauticalDawn)},
		{"Civil dawn", FormatSpan(r.SunTimes.CivilDawn)},
		{"Sunrise", FormatSpan(r.SunTimes.Sunrise)},
		{"Solar transit", FormatClock(r.SunTimes.Transit, true)},
		{"Sunset", FormatSpan(r.SunTimes.Sunset)},
		{"Civil dusk", FormatSpan(r.SunTimes.CivilDusk)},
		{"Nautical dusk", FormatSpan(r.SunTimes.NauticalDusk)},
		{"Astronomical dusk", FormatSpan(r.SunTimes.AstronomicalDusk)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-20s %s\n", row.name, row.val)
	}

	if dl, ok := r.DayLength(); ok {
		fmt.Fprintf(w, "\nDay length: %s\n", FormatDuration(dl))
	} else {
		fmt.Fprintln(w, "\nDay length: N/A (no horizon crossing)")
	}
}

// WriteMoonCard writes the moon's phase and track as a compact text card.
func WriteMoonCard(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Moon @ %s %s\n", r.Timestamp.UTC().Format(time.RFC3339), observerLabel(r.Observer))
	fmt.Fprintln(w, strings.Repeat("─", 62))

	fmt.Fprintf(w, "%-20s %s %s\n", "Phase", PhaseGlyph(r.MoonPhase.Phase), PhaseName(r.MoonPhase.Phase))
	fmt.Fprintf(w, "%-20s %s\n", "Illuminated", FormatIllumination(r.MoonPhase.Fraction))
	fmt.Fprintf(w, "%-20s %s\n", "Zodiac", r.MoonPosition.Sign)
	fmt.Fprintf(w, "%-20s %s\n", "Distance", FormatDistance(r.MoonPosition.DistanceKm))
	fmt.Fprintf(w, "%-20s %s\n", "Azimuth", FormatBearing(r.MoonPosition.Azimuth))
	fmt.Fprintf(w, "%-20s %s\n", "Altitude", FormatAngle(r.MoonPosition.Altitude))

	switch {
	case r.MoonTimes.AlwaysUp:
		fmt.Fprintf(w, "%-20s above horizon all day\n", "Rise/Set")
	case r.MoonTimes.AlwaysDown:
		fmt.Fprintf(w, "%-20s below horizon all day\n", "Rise/Set")
	default:
		fmt.Fprintf(w, "%-20s %s\n", "Moonrise", FormatClock(r.MoonTimes.Rise, r.MoonTimes.HasRise))
		fmt.Fprintf(w, "%-20s %s\n", "Moonset", FormatClock(r.MoonTimes.Set, r.MoonTimes.HasSet))
	}
}

// WriteNowLine writes a one-line current-conditions summary.
func WriteNowLine(w io.Writer, r *Report) {
	fmt.Fprintf(w, "%s  sun %s alt %s (%s)  moon %s alt %s %s %s\n",
		r.Timestamp.UTC().Format("15:04:05"),
		FormatBearing(r.SunPosition.Azimuth),
		FormatAngle(r.SunPosition.Altitude),
		ClassifyTwilight(r.SunPosition.Altitude),
		FormatBearing(r.MoonPosition.Azimuth),
		FormatAngle(r.MoonPosition.Altitude),
		PhaseGlyph(r.MoonPhase.Phase),
		FormatIllumination(r.MoonPhase.Fraction),
	)
}

func observerLabel(o astro.Observer) string {
	if o.Name != "" {
		return o.Name
	}
	return fmt.Sprintf("%.4f, %.4f", o.LatDeg, o.LonDeg)
}
