package state

import (
	"errors"
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
)

var testObserver = astro.Observer{LatDeg: 40.74, LonDeg: 74.00}

func reportAt(t time.Time) *almanac.Report {
	return almanac.Compute(t, testObserver)
}

func TestManagerUpdateAndSnapshot(t *testing.T) {
	m := NewManager(DefaultConfig())

	if m.HasData() {
		t.Error("HasData() = true before first update")
	}

	at := time.Date(2019, 2, 9, 18, 0, 0, 0, time.UTC)
	m.Update(reportAt(at), 5*time.Millisecond, nil)

	if !m.HasData() {
		t.Fatal("HasData() = false after update")
	}

	snap := m.Snapshot()
	if snap.Report == nil {
		t.Fatal("snapshot report is nil")
	}
	if !snap.Report.Timestamp.Equal(at) {
		t.Errorf("report timestamp = %v", snap.Report.Timestamp)
	}
	if snap.ComputeDuration != 5*time.Millisecond {
		t.Errorf("compute duration = %v", snap.ComputeDuration)
	}
	if len(snap.SunAltHistory) != 1 || len(snap.MoonAltHistory) != 1 {
		t.Errorf("history lengths = %d/%d, want 1/1", len(snap.SunAltHistory), len(snap.MoonAltHistory))
	}
	if snap.NextRefresh.IsZero() {
		t.Error("NextRefresh not set")
	}
}

func TestManagerNilReport(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.Update(nil, 0, errors.New("clock skew"))

	snap := m.Snapshot()
	if snap.Report != nil {
		t.Error("nil update produced a report")
	}
	if snap.LastError == nil {
		t.Error("error not recorded")
	}
	if len(snap.SunAltHistory) != 0 {
		t.Error("nil update extended history")
	}
}

func TestHistoryCapped(t *testing.T) {
	m := NewManager(Config{MaxHistoryLen: 3, MaxEvents: 10, RefreshInterval: time.Second})

	base := time.Date(2019, 2, 9, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		m.Update(reportAt(base.Add(time.Duration(i)*time.Hour)), 0, nil)
	}

	snap := m.Snapshot()
	if len(snap.SunAltHistory) != 3 {
		t.Fatalf("history length = %d, want 3", len(snap.SunAltHistory))
	}
	// Oldest entries were dropped.
	if !snap.SunAltHistory[0].Timestamp.Equal(base.Add(3 * time.Hour)) {
		t.Errorf("oldest history point = %v", snap.SunAltHistory[0].Timestamp)
	}
}

func TestSunriseEventDetected(t *testing.T) {
	m := NewManager(DefaultConfig())

	// 2019-02-09 at 40.74N 74.00E the sun rises shortly after 02:00 UTC.
	m.Update(reportAt(time.Date(2019, 2, 9, 1, 30, 0, 0, time.UTC)), 0, nil)
	m.Update(reportAt(time.Date(2019, 2, 9, 3, 0, 0, 0, time.UTC)), 0, nil)

	var sawSunrise bool
	for _, e := range m.RecentEvents(10) {
		if e.Type == EventSunrise {
			sawSunrise = true
		}
	}
	if !sawSunrise {
		t.Errorf("no sunrise event across the horizon crossing: %+v", m.RecentEvents(10))
	}
}

func TestTierChangeEventDetected(t *testing.T) {
	m := NewManager(DefaultConfig())

	// Midday to deep night crosses at least one twilight boundary.
	m.Update(reportAt(time.Date(2019, 2, 9, 9, 0, 0, 0, time.UTC)), 0, nil)
	m.Update(reportAt(time.Date(2019, 2, 9, 18, 0, 0, 0, time.UTC)), 0, nil)

	var sawTier bool
	for _, e := range m.RecentEvents(10) {
		if e.Type == EventTierChange {
			sawTier = true
		}
	}
	if !sawTier {
		t.Error("no twilight tier event between midday and night")
	}
}

func TestEventRingBuffer(t *testing.T) {
	m := NewManager(Config{MaxEvents: 4, MaxHistoryLen: 10, RefreshInterval: time.Second})

	base := time.Date(2019, 2, 9, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		m.addEvent(Event{Type: EventTierChange, Timestamp: base.Add(time.Duration(i) * time.Minute)})
	}

	events := m.Snapshot().Events
	if len(events) != 4 {
		t.Fatalf("event count = %d, want ring capacity 4", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Errorf("events out of order at %d: %v after %v", i, events[i].Timestamp, events[i-1].Timestamp)
		}
	}
	// Newest retained event is the last one added.
	if !events[len(events)-1].Timestamp.Equal(base.Add(9 * time.Minute)) {
		t.Errorf("newest event = %v", events[len(events)-1].Timestamp)
	}
}

func TestRecentEventsLimit(t *testing.T) {
	m := NewManager(DefaultConfig())
	for i := 0; i < 8; i++ {
		m.addEvent(Event{Type: EventMoonrise})
	}
	if got := len(m.RecentEvents(3)); got != 3 {
		t.Errorf("RecentEvents(3) returned %d", got)
	}
}

func TestRefreshInterval(t *testing.T) {
	m := NewManager(DefaultConfig())
	m.SetRefreshInterval(42 * time.Second)
	if m.RefreshInterval() != 42*time.Second {
		t.Errorf("RefreshInterval() = %v", m.RefreshInterval())
	}
}
