package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/state"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	sunStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	moonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("153"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("108"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// DashboardModel is the main almanac dashboard view.
type DashboardModel struct {
	width     int
	height    int
	eventsOff int
	snapshot  state.Snapshot
	lastErr   error
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// Init implements the Bubble Tea model interface.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DashboardModel) UpdateData(snapshot state.Snapshot) DashboardModel {
	m.snapshot = snapshot
	return m
}

// SetError sets the last error for display.
func (m DashboardModel) SetError(err error) DashboardModel {
	m.lastErr = err
	return m
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.eventsOff > 0 {
				m.eventsOff--
			}
		case "down", "j":
			if m.eventsOff < len(m.snapshot.Events)-1 {
				m.eventsOff++
			}
		case "home":
			m.eventsOff = 0
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if m.snapshot.Report == nil {
		if m.lastErr == nil {
			b.WriteString("Waiting for first almanac report...\n")
		}
		return b.String()
	}

	left := m.renderSunPanel()
	right := m.renderMoonPanel()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))
	b.WriteString("\n")

	b.WriteString(m.renderSparkline())
	b.WriteString("\n")

	b.WriteString(m.renderEvents())

	return b.String()
}

func (m DashboardModel) renderSunPanel() string {
	r := m.snapshot.Report
	var b strings.Builder

	b.WriteString(titleStyle.Render("☀ Sun"))
	b.WriteString("\n")

	tier := almanac.ClassifyTwilight(r.SunPosition.Altitude)
	b.WriteString(row("Azimuth", sunStyle.Render(almanac.FormatBearing(r.SunPosition.Azimuth))))
	b.WriteString(row("Altitude", sunStyle.Render(almanac.FormatAngle(r.SunPosition.Altitude))))
	b.WriteString(row("Sky", valueStyle.Render(string(tier))))
	b.WriteString("\n")

	b.WriteString(row("Astro dawn", valueStyle.Render(almanac.FormatSpan(r.SunTimes.AstronomicalDawn))))
	b.WriteString(row("Nautical dawn", valueStyle.Render(almanac.FormatSpan(r.SunTimes.NauticalDawn))))
	b.WriteString(row("Civil dawn", valueStyle.Render(almanac.FormatSpan(r.SunTimes.CivilDawn))))
	b.WriteString(row("Sunrise", sunStyle.Render(almanac.FormatSpan(r.SunTimes.Sunrise))))
	b.WriteString(row("Transit", valueStyle.Render(almanac.FormatClock(r.SunTimes.Transit, true))))
	b.WriteString(row("Sunset", sunStyle.Render(almanac.FormatSpan(r.SunTimes.Sunset))))
	b.WriteString(row("Civil dusk", valueStyle.Render(almanac.FormatSpan(r.SunTimes.CivilDusk))))
	b.WriteString(row("Nautical dusk", valueStyle.Render(almanac.FormatSpan(r.SunTimes.NauticalDusk))))
	b.WriteString(row("Astro dusk", valueStyle.Render(almanac.FormatSpan(r.SunTimes.AstronomicalDusk))))

	if dl, ok := r.DayLength(); ok {
		b.WriteString(row("Day length", valueStyle.Render(almanac.FormatDuration(dl))))
	} else {
		b.WriteString(row("Day length", labelStyle.Render("N/A")))
	}

	return b.String()
}

func (m DashboardModel) renderMoonPanel() string {
	r := m.snapshot.Report
	var b strings.Builder

	b.WriteString(titleStyle.Render("☾ Moon"))
	b.WriteString("\n")

	phase := almanac.PhaseName(r.MoonPhase.Phase)
	b.WriteString(row("Phase", moonStyle.Render(almanac.PhaseGlyph(r.MoonPhase.Phase)+" "+string(phase))))
	b.WriteString(row("Illuminated", moonStyle.Render(almanac.FormatIllumination(r.MoonPhase.Fraction))))
	b.WriteString(row("Zodiac", valueStyle.Render(string(r.MoonPosition.Sign))))
	b.WriteString("\n")

	b.WriteString(row("Azimuth", moonStyle.Render(almanac.FormatBearing(r.MoonPosition.Azimuth))))
	b.WriteString(row("Altitude", moonStyle.Render(almanac.FormatAngle(r.MoonPosition.Altitude))))
	b.WriteString(row("Distance", valueStyle.Render(almanac.FormatDistance(r.MoonPosition.DistanceKm))))
	b.WriteString(row("Parallactic", valueStyle.Render(almanac.FormatAngle(r.MoonPosition.ParallacticAngle))))
	b.WriteString("\n")

	switch {
	case r.MoonTimes.AlwaysUp:
		b.WriteString(row("Rise/Set", labelStyle.Render("above horizon all day")))
	case r.MoonTimes.AlwaysDown:
		b.WriteString(row("Rise/Set", labelStyle.Render("below horizon all day")))
	default:
		b.WriteString(row("Moonrise", moonStyle.Render(almanac.FormatClock(r.MoonTimes.Rise, r.MoonTimes.HasRise))))
		b.WriteString(row("Moonset", moonStyle.Render(almanac.FormatClock(r.MoonTimes.Set, r.MoonTimes.HasSet))))
	}

	return b.String()
}

func row(label, value string) string {
	return fmt.Sprintf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label)), value)
}

// renderSparkline draws the recent sun and moon altitude history as two
// block-character tracks.
func (m DashboardModel) renderSparkline() string {
	var b strings.Builder

	width := m.width - 14
	if width < 10 {
		width = 10
	}
	if width > 60 {
		width = 60
	}

	b.WriteString(titleStyle.Render("Altitude (recent)"))
	b.WriteString("\n")
	b.WriteString("  " + labelStyle.Render("sun  ") + sunStyle.Render(sparkline(m.snapshot.SunAltHistory, width)) + "\n")
	b.WriteString("  " + labelStyle.Render("moon ") + moonStyle.Render(sparkline(m.snapshot.MoonAltHistory, width)) + "\n")

	return b.String()
}

// sparkline maps altitude samples to eight block levels. The horizon sits at
// the middle of the scale so above/below is visible at a glance.
func sparkline(series []state.TimeSeries, width int) string {
	if len(series) == 0 {
		return strings.Repeat("░", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	start := 0
	if len(series) > width {
		start = len(series) - width
	}

	var b strings.Builder
	for _, p := range series[start:] {
		// Map -π/2..π/2 to 0..7
		frac := (p.Value + math.Pi/2) / math.Pi
		idx := int(frac * float64(len(chars)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

// renderEvents draws the recent event log.
func (m DashboardModel) renderEvents() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Events"))
	b.WriteString("\n")

	events := m.snapshot.Events
	if len(events) == 0 {
		b.WriteString(labelStyle.Render("  none yet") + "\n")
		return b.String()
	}

	maxRows := m.height - 22
	if maxRows < 3 {
		maxRows = 3
	}

	// Newest last; scroll offset counts back from the tail.
	end := len(events) - m.eventsOff
	if end < 1 {
		end = 1
	}
	startIdx := end - maxRows
	if startIdx < 0 {
		startIdx = 0
	}

	for _, e := range events[startIdx:end] {
		line := fmt.Sprintf("  %s %s %s",
			labelStyle.Render(e.Timestamp.UTC().Format("15:04:05")),
			eventStyle.Render(string(e.Type)),
			valueStyle.Render(e.Detail),
		)
		b.WriteString(line + "\n")
	}

	if len(events) > maxRows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %d-%d of %d", startIdx+1, end, len(events))) + "\n")
	}

	return b.String()
}
