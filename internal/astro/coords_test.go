package astro

import (
	"math"
	"testing"
	"time"
)

func TestCompassAzimuth(t *testing.T) {
	tests := []struct {
		name string
		az   float64 // engine azimuth, radians from south
		want float64 // compass degrees
	}{
		{"due south", 0, 180},
		{"due west", math.Pi / 2, 270},
		{"due north", math.Pi, 0},
		{"due east", -math.Pi / 2, 90},
		{"wrap positive", 3 * math.Pi / 2, 90},
		{"wrap negative", -math.Pi, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompassAzimuth(tt.az)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CompassAzimuth(%.4f) = %.4f°, want %.4f°", tt.az, got, tt.want)
			}
		})
	}
}

func TestHorizontalPole(t *testing.T) {
	// Polaris sits within a degree of the north celestial pole, so its
	// altitude approximates the observer latitude anywhere in the northern
	// hemisphere, at any time.
	polaris := EquatorialCoord{RA: rad * 37.954, Dec: rad * 89.264}

	for _, lat := range []float64{15, 40.74, 70} {
		obs := Observer{LatDeg: lat, LonDeg: -100}
		for h := 0; h < 24; h += 8 {
			at := time.Date(2024, 5, 1, h, 0, 0, 0, time.UTC)
			_, alt := Horizontal(polaris, obs, at)
			if math.Abs(alt/rad-lat) > 1 {
				t.Errorf("lat %.2f at %v: Polaris altitude = %.2f°, want ~latitude", lat, at, alt/rad)
			}
		}
	}
}

func TestHorizontalOppositePoints(t *testing.T) {
	// Diametrically opposite equatorial points have opposite altitudes.
	obs := Observer{LatDeg: 40.74, LonDeg: 74.00}
	at := refTime

	eq := EquatorialCoord{RA: rad * 120, Dec: rad * 15}
	anti := EquatorialCoord{RA: eq.RA + math.Pi, Dec: -eq.Dec}

	_, alt := Horizontal(eq, obs, at)
	_, altAnti := Horizontal(anti, obs, at)
	if math.Abs(alt+altAnti) > 1e-9 {
		t.Errorf("antipodal altitudes %.6f and %.6f do not cancel", alt, altAnti)
	}
}

func TestRefraction(t *testing.T) {
	// Roughly 34 arcminutes at the horizon, falling off with altitude, and
	// no blow-up for slightly negative apparent altitudes.
	atHorizon := refraction(0) / rad * 60
	if atHorizon < 28 || atHorizon > 36 {
		t.Errorf("refraction at horizon = %.1f arcmin, want ~34", atHorizon)
	}
	if refraction(rad*45) >= refraction(rad*5) {
		t.Error("refraction does not decrease with altitude")
	}
	if v := refraction(-0.05); math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		t.Errorf("refraction(-0.05) = %v, want clamped finite value", v)
	}
}

func TestObserverPhiLw(t *testing.T) {
	phi, lw := Observer{LatDeg: 40.74, LonDeg: 74.00}.phiLw()
	if math.Abs(phi-rad*40.74) > 1e-12 {
		t.Errorf("phi = %v, want %v", phi, rad*40.74)
	}
	if math.Abs(lw-rad*-74.00) > 1e-12 {
		t.Errorf("lw = %v, want %v (west positive)", lw, rad*-74.00)
	}
}
