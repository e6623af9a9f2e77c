package almanac

import (
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

var (
	testObserver = astro.Observer{LatDeg: 40.74, LonDeg: 74.00, Name: "Reference"}
	testTime     = time.Date(2019, 2, 9, 18, 0, 0, 0, time.UTC)
)

func TestCompute(t *testing.T) {
	r := Compute(testTime, testObserver)

	if !r.Timestamp.Equal(testTime) {
		t.Errorf("timestamp = %v, want %v", r.Timestamp, testTime)
	}
	if r.Observer.Name != "Reference" {
		t.Errorf("observer name = %q", r.Observer.Name)
	}
	if r.SunPosition.Azimuth == 0 && r.SunPosition.Altitude == 0 {
		t.Error("sun position not populated")
	}
	if r.MoonPosition.DistanceKm < 356000 || r.MoonPosition.DistanceKm > 407000 {
		t.Errorf("moon distance %.0f km outside orbital range", r.MoonPosition.DistanceKm)
	}
	if r.MoonPhase.Fraction < 0 || r.MoonPhase.Fraction > 1 {
		t.Errorf("illuminated fraction %.3f out of [0,1]", r.MoonPhase.Fraction)
	}
	if !r.SunTimes.Sunrise.Valid {
		t.Error("sunrise missing at mid latitude")
	}
	if !r.MoonTimes.HasRise || !r.MoonTimes.HasSet {
		t.Errorf("moon crossings missing: %+v", r.MoonTimes)
	}
}

func TestDayLength(t *testing.T) {
	r := Compute(testTime, testObserver)
	dl, ok := r.DayLength()
	if !ok {
		t.Fatal("DayLength() not available at mid latitude")
	}
	// Early February at 40°N: roughly ten hours of daylight.
	if dl < 9*time.Hour || dl > 11*time.Hour {
		t.Errorf("day length = %v, want ~10h", dl)
	}

	polar := Compute(time.Date(2019, 12, 21, 12, 0, 0, 0, time.UTC), astro.Observer{LatDeg: 80})
	if _, ok := polar.DayLength(); ok {
		t.Error("DayLength() available during polar night")
	}
}

func TestSunUpMoonUp(t *testing.T) {
	r := Compute(testTime, testObserver)
	// 18:00 UTC at 74°E is near local midnight; both bodies are down.
	if r.SunUp() {
		t.Errorf("SunUp() = true with altitude %.3f", r.SunPosition.Altitude)
	}
	if r.MoonUp() {
		t.Errorf("MoonUp() = true with altitude %.3f", r.MoonPosition.Altitude)
	}
}

func TestAltitudeTrack(t *testing.T) {
	samples := AltitudeTrack(testTime, testObserver, time.Hour)
	if len(samples) != 25 {
		t.Fatalf("sample count = %d, want 25 hourly points including both midnights", len(samples))
	}
	if !samples[0].Time.Equal(time.Date(2019, 2, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("track starts at %v, want UTC midnight", samples[0].Time)
	}

	// The sun must be up for part of the day and down for part of it.
	up, down := 0, 0
	for _, s := range samples {
		if s.SunAlt > 0 {
			up++
		} else {
			down++
		}
	}
	if up == 0 || down == 0 {
		t.Errorf("sun track never crosses horizon: %d up, %d down", up, down)
	}
}

func TestAltitudeTrackDefaultStep(t *testing.T) {
	samples := AltitudeTrack(testTime, testObserver, 0)
	if len(samples) != 49 {
		t.Errorf("sample count with default step = %d, want 49", len(samples))
	}
}
