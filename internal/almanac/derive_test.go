package almanac

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

func TestPhaseName(t *testing.T) {
	tests := []struct {
		phase float64
		want  PhaseBucket
	}{
		{0.0, PhaseNewMoon},
		{0.02, PhaseNewMoon},
		{0.10, PhaseWaxingCrescent},
		{0.25, PhaseFirstQuarter},
		{0.35, PhaseWaxingGibbous},
		{0.50, PhaseFullMoon},
		{0.62, PhaseWaningGibbous},
		{0.75, PhaseLastQuarter},
		{0.88, PhaseWaningCrescent},
		{0.99, PhaseNewMoon},
		{1.0, PhaseNewMoon}, // wraps
		{1.25, PhaseFirstQuarter},
	}

	for _, tt := range tests {
		if got := PhaseName(tt.phase); got != tt.want {
			t.Errorf("PhaseName(%.2f) = %s, want %s", tt.phase, got, tt.want)
		}
	}
}

func TestPhaseGlyph(t *testing.T) {
	if g := PhaseGlyph(0.5); g != "🌕" {
		t.Errorf("PhaseGlyph(0.5) = %q, want full moon", g)
	}
	if g := PhaseGlyph(0.0); g != "🌑" {
		t.Errorf("PhaseGlyph(0.0) = %q, want new moon", g)
	}
	for p := 0.0; p < 1; p += 0.05 {
		if PhaseGlyph(p) == "" {
			t.Fatalf("PhaseGlyph(%.2f) empty", p)
		}
	}
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{11, "N"},
		{12, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{348, "NNW"},
		{355, "N"},
		{360, "N"},
		{-90, "W"},
	}

	for _, tt := range tests {
		if got := CompassPoint(tt.deg); got != tt.want {
			t.Errorf("CompassPoint(%.0f) = %s, want %s", tt.deg, got, tt.want)
		}
	}
}

func TestClassifyTwilight(t *testing.T) {
	deg := func(d float64) float64 { return d * math.Pi / 180 }

	tests := []struct {
		altDeg float64
		want   TwilightTier
	}{
		{30, TierDay},
		{0, TierDay},
		{-0.5, TierDay},
		{-3, TierCivil},
		{-9, TierNautical},
		{-15, TierAstronomical},
		{-25, TierNight},
	}

	for _, tt := range tests {
		if got := ClassifyTwilight(deg(tt.altDeg)); got != tt.want {
			t.Errorf("ClassifyTwilight(%.1f°) = %s, want %s", tt.altDeg, got, tt.want)
		}
	}
}

func TestFormatters(t *testing.T) {
	if s := FormatAngle(math.Pi / 2); s != "+90.0°" {
		t.Errorf("FormatAngle(π/2) = %q", s)
	}
	if s := FormatAngle(-math.Pi / 4); s != "-45.0°" {
		t.Errorf("FormatAngle(-π/4) = %q", s)
	}
	if s := FormatDistance(0); s != "N/A" {
		t.Errorf("FormatDistance(0) = %q", s)
	}
	if s := FormatDistance(384400); s != "384400 km" {
		t.Errorf("FormatDistance(384400) = %q", s)
	}
	if s := FormatClock(time.Time{}, false); s != "--:--:--" {
		t.Errorf("FormatClock(absent) = %q", s)
	}
	at := time.Date(2019, 2, 9, 4, 29, 37, 0, time.UTC)
	if s := FormatClock(at, true); s != "04:29:37" {
		t.Errorf("FormatClock() = %q", s)
	}
	if s := FormatSpan(astro.TimeSpan{}); s != "N/A" {
		t.Errorf("FormatSpan(invalid) = %q", s)
	}
	if s := FormatDuration(10*time.Hour + 5*time.Minute); s != "10h05m" {
		t.Errorf("FormatDuration() = %q", s)
	}
	if s := FormatIllumination(0.214); s != "21%" {
		t.Errorf("FormatIllumination(0.214) = %q", s)
	}
	if s := FormatIllumination(1.7); s != "100%" {
		t.Errorf("FormatIllumination clamps: %q", s)
	}
}
