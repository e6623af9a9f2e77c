// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-almanac/internal/almanac"
)

// EventType represents the type of almanac event.
type EventType string

const (
	EventSunrise     EventType = "SUNRISE"
	EventSunset      EventType = "SUNSET"
	EventMoonrise    EventType = "MOONRISE"
	EventMoonset     EventType = "MOONSET"
	EventPhaseChange EventType = "PHASE_CHANGE"
	EventTierChange  EventType = "TIER_CHANGE"
)

// Event represents an observed sky transition between two refreshes.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"body,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// TimeSeries is a single data point with timestamp.
type TimeSeries struct {
	Timestamp time.Time
	Value     float64
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current         *almanac.Report
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration

	// Previous report for event detection
	prev *almanac.Report

	// Altitude history buffers
	sunAltHistory  []TimeSeries
	moonAltHistory []TimeSeries
	maxHistoryLen  int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen   int
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen:   240, // 4 hours at one refresh per minute
		MaxEvents:       50,
		RefreshInterval: 10 * time.Second,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	maxHistory := cfg.MaxHistoryLen
	if maxHistory <= 0 {
		maxHistory = 240
	}
	return &Manager{
		maxHistoryLen:   maxHistory,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
	}
}

// Update atomically updates the state with a new report.
func (m *Manager) Update(r *almanac.Report, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.lastError = err
	m.computeDuration = computeDuration

	if r == nil {
		return
	}

	// Detect transitions before replacing current state
	m.detectEvents(r)

	m.prev = m.current
	m.current = r

	m.sunAltHistory = appendCapped(m.sunAltHistory, TimeSeries{r.Timestamp, r.SunPosition.Altitude}, m.maxHistoryLen)
	m.moonAltHistory = appendCapped(m.moonAltHistory, TimeSeries{r.Timestamp, r.MoonPosition.Altitude}, m.maxHistoryLen)
}

func appendCapped(s []TimeSeries, p TimeSeries, max int) []TimeSeries {
	s = append(s, p)
	if len(s) > max {
		s = s[1:]
	}
	return s
}

// detectEvents compares the incoming report against the current one and
// records horizon, phase, and twilight transitions.
func (m *Manager) detectEvents(next *almanac.Report) {
	if m.current == nil {
		return
	}
	prev := m.current
	ts := next.Timestamp

	if !prev.SunUp() && next.SunUp() {
		m.addEvent(Event{Type: EventSunrise, Timestamp: ts, Body: "sun"})
	}
	if prev.SunUp() && !next.SunUp() {
		m.addEvent(Event{Type: EventSunset, Timestamp: ts, Body: "sun"})
	}
	if !prev.MoonUp() && next.MoonUp() {
		m.addEvent(Event{Type: EventMoonrise, Timestamp: ts, Body: "moon"})
	}
	if prev.MoonUp() && !next.MoonUp() {
		m.addEvent(Event{Type: EventMoonset, Timestamp: ts, Body: "moon"})
	}

	prevPhase := almanac.PhaseName(prev.MoonPhase.Phase)
	nextPhase := almanac.PhaseName(next.MoonPhase.Phase)
	if prevPhase != nextPhase {
		m.addEvent(Event{Type: EventPhaseChange, Timestamp: ts, Body: "moon", Detail: string(nextPhase)})
	}

	prevTier := almanac.ClassifyTwilight(prev.SunPosition.Altitude)
	nextTier := almanac.ClassifyTwilight(next.SunPosition.Altitude)
	if prevTier != nextTier {
		m.addEvent(Event{Type: EventTierChange, Timestamp: ts, Body: "sun", Detail: string(nextTier)})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Report          *almanac.Report
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	NextRefresh     time.Time
	SunAltHistory   []TimeSeries
	MoonAltHistory  []TimeSeries
	Events          []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sun := make([]TimeSeries, len(m.sunAltHistory))
	copy(sun, m.sunAltHistory)
	moon := make([]TimeSeries, len(m.moonAltHistory))
	copy(moon, m.moonAltHistory)

	var next time.Time
	if !m.lastCompute.IsZero() && m.refreshInterval > 0 {
		next = m.lastCompute.Add(m.refreshInterval)
	}

	return Snapshot{
		Report:          m.current,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		NextRefresh:     next,
		SunAltHistory:   sun,
		MoonAltHistory:  moon,
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one report has been computed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
