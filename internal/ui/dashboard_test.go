package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/state"
)

func TestDashboardRender(t *testing.T) {
	m := NewDashboardModel()
	m = m.SetSize(100, 40)
	m = m.UpdateData(testSnapshot(t))

	out := m.View()
	for _, want := range []string{"Sun", "Moon", "Sunrise", "Transit", "Moonrise", "Phase", "Zodiac", "Altitude (recent)", "Events"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboardWaiting(t *testing.T) {
	m := NewDashboardModel()
	m = m.SetSize(100, 40)
	if !strings.Contains(m.View(), "Waiting") {
		t.Error("waiting notice missing before first report")
	}
}

func TestDashboardError(t *testing.T) {
	m := NewDashboardModel()
	m = m.SetSize(100, 40)
	m = m.SetError(errors.New("clock skew detected"))
	if !strings.Contains(m.View(), "clock skew detected") {
		t.Error("error banner missing")
	}
}

func TestSparkline(t *testing.T) {
	if got := sparkline(nil, 8); got != "░░░░░░░░" {
		t.Errorf("empty sparkline = %q", got)
	}

	series := []state.TimeSeries{
		{Timestamp: time.Now(), Value: -1.5},
		{Timestamp: time.Now(), Value: 0},
		{Timestamp: time.Now(), Value: 1.5},
	}
	got := sparkline(series, 8)
	runes := []rune(got)
	if len(runes) != 3 {
		t.Fatalf("sparkline length = %d, want 3", len(runes))
	}
	if runes[0] != '▁' {
		t.Errorf("low altitude glyph = %q, want lowest block", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("high altitude glyph = %q, want full block", runes[2])
	}
	if runes[0] == runes[1] || runes[1] == runes[2] {
		t.Errorf("sparkline does not grade: %q", got)
	}

	// Longer than width keeps only the most recent points.
	long := make([]state.TimeSeries, 20)
	for i := range long {
		long[i] = state.TimeSeries{Timestamp: time.Now(), Value: 0}
	}
	if got := sparkline(long, 8); len([]rune(got)) != 8 {
		t.Errorf("capped sparkline length = %d, want 8", len([]rune(got)))
	}
}
