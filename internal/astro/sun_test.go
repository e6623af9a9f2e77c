package astro

import (
	"math"
	"testing"
	"time"
)

// refObserver and refTime match the documented reference scenario used
// across the engine tests.
var (
	refObserver = Observer{LatDeg: 40.74, LonDeg: 74.00}
	refTime     = time.Date(2019, 2, 9, 18, 0, 0, 0, time.UTC)
)

func TestSunPositionReference(t *testing.T) {
	pos := SunPositionAt(refTime, refObserver)

	const tol = 0.01
	if math.Abs(pos.Azimuth-2.46) > tol {
		t.Errorf("SunPositionAt() azimuth = %.4f rad, want 2.46 ±%.2f", pos.Azimuth, tol)
	}
	if math.Abs(pos.Altitude-(-1.03)) > tol {
		t.Errorf("SunPositionAt() altitude = %.4f rad, want -1.03 ±%.2f", pos.Altitude, tol)
	}
}

func TestSunPositionSeasons(t *testing.T) {
	// At local solar noon on the equator the sun's altitude tracks the
	// declination: near zenith at the equinoxes, ~23.4° off at solstices.
	equator := Observer{LatDeg: 0, LonDeg: 0}

	tests := []struct {
		name       string
		time       time.Time
		wantAltMin float64 // degrees
		wantAltMax float64
	}{
		{"March equinox noon", time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC), 85, 90},
		{"June solstice noon", time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC), 64, 69},
		{"December solstice noon", time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC), 64, 69},
		{"Equinox midnight", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), -90, -80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := SunPositionAt(tt.time, equator)
			altDeg := pos.Altitude / rad
			if altDeg < tt.wantAltMin || altDeg > tt.wantAltMax {
				t.Errorf("altitude = %.2f°, want between %.0f° and %.0f°", altDeg, tt.wantAltMin, tt.wantAltMax)
			}
		})
	}
}

func TestSunTimesReference(t *testing.T) {
	st := SunTimesAt(refTime, refObserver)

	wantDawn := time.Date(2019, 2, 9, 1, 39, 11, 0, time.UTC)
	wantDusk := time.Date(2019, 2, 9, 12, 59, 55, 0, time.UTC)
	const tol = 2 * time.Second

	if !st.HasDawn {
		t.Fatal("SunTimesAt() HasDawn = false, want dawn at mid latitude")
	}
	if d := st.Dawn.Sub(wantDawn); d < -tol || d > tol {
		t.Errorf("dawn = %v, want %v ±%v", st.Dawn, wantDawn, tol)
	}
	if !st.HasDusk {
		t.Fatal("SunTimesAt() HasDusk = false, want dusk at mid latitude")
	}
	if d := st.Dusk.Sub(wantDusk); d < -tol || d > tol {
		t.Errorf("dusk = %v, want %v ±%v", st.Dusk, wantDusk, tol)
	}
}

func TestSunTimesOrdering(t *testing.T) {
	st := SunTimesAt(refTime, refObserver)

	// All bands exist at mid latitude in February and chain in order
	// through the morning, then mirror through the evening.
	spans := []struct {
		name string
		span TimeSpan
	}{
		{"AstronomicalDawn", st.AstronomicalDawn},
		{"NauticalDawn", st.NauticalDawn},
		{"CivilDawn", st.CivilDawn},
		{"Sunrise", st.Sunrise},
		{"Sunset", st.Sunset},
		{"CivilDusk", st.CivilDusk},
		{"NauticalDusk", st.NauticalDusk},
		{"AstronomicalDusk", st.AstronomicalDusk},
	}

	var prev time.Time
	for _, s := range spans {
		if !s.span.Valid {
			t.Fatalf("%s invalid, want valid at mid latitude", s.name)
		}
		if s.span.End.Before(s.span.Start) {
			t.Errorf("%s: End %v before Start %v", s.name, s.span.End, s.span.Start)
		}
		if !prev.IsZero() && s.span.Start.Before(prev) {
			t.Errorf("%s starts at %v, before previous band end %v", s.name, s.span.Start, prev)
		}
		prev = s.span.End
	}

	if !st.Transit.After(st.Sunrise.End) || !st.Transit.Before(st.Sunset.Start) {
		t.Errorf("transit %v not between sunrise %v and sunset %v", st.Transit, st.Sunrise.End, st.Sunset.Start)
	}
}

func TestSunTimesPolarNight(t *testing.T) {
	// Deep polar winter: the sun never reaches the horizon bands but the
	// astronomical band can still occur. No NaN times may leak out.
	st := SunTimesAt(time.Date(2019, 12, 21, 12, 0, 0, 0, time.UTC), Observer{LatDeg: 80, LonDeg: 0})

	if st.Sunrise.Valid {
		t.Error("Sunrise.Valid = true during polar night")
	}
	if st.Sunset.Valid {
		t.Error("Sunset.Valid = true during polar night")
	}
	if st.HasDawn || st.HasDusk {
		t.Errorf("HasDawn/HasDusk = %v/%v during polar night, want false", st.HasDawn, st.HasDusk)
	}
	if !st.Sunrise.Start.IsZero() || !st.Sunrise.End.IsZero() {
		t.Error("invalid span carries non-zero endpoints")
	}
	if st.Transit.IsZero() {
		t.Error("transit should be defined even in polar night")
	}
}

func TestSunTimesPolarDay(t *testing.T) {
	st := SunTimesAt(time.Date(2019, 6, 21, 12, 0, 0, 0, time.UTC), Observer{LatDeg: 80, LonDeg: 0})

	if st.Sunrise.Valid || st.Sunset.Valid {
		t.Error("sunrise/sunset valid during polar day")
	}
	if st.CivilDawn.Valid || st.CivilDusk.Valid {
		t.Error("civil twilight valid during polar day")
	}
}

func TestTimeSpanDuration(t *testing.T) {
	start := time.Date(2019, 2, 9, 6, 0, 0, 0, time.UTC)
	s := TimeSpan{Start: start, End: start.Add(3 * time.Minute), Valid: true}
	if s.Duration() != 3*time.Minute {
		t.Errorf("Duration() = %v, want 3m", s.Duration())
	}
	if (TimeSpan{}).Duration() != 0 {
		t.Error("invalid span Duration() != 0")
	}
}
