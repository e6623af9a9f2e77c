package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/state"
)

const (
	// Field of view in degrees
	fovAz = 120.0 // horizontal FOV
	fovEl = 60.0  // vertical FOV

	panStepAz = 15.0
	panStepEl = 5.0

	// Body glyphs
	glyphSun  = '☀'
	glyphMoon = '☽'

	colorSun  = "220" // warm yellow
	colorMoon = "153" // pale blue

	// Star glyphs by magnitude
	glyphStarBright = '✶' // mag < 1.5
	glyphStarMedium = '✸' // mag 1.5-3.0
	glyphStarDim    = '·' // mag > 3.0

	// Star colors (grayscale to not compete with the sun and moon)
	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "244"
)

// SkyViewModel renders the sky dome with the sun, moon, and bright stars.
type SkyViewModel struct {
	width  int
	height int

	// Camera position (center of view)
	camAz float64
	camEl float64

	// Show constellation names next to bright stars
	showLabels bool

	snapshot state.Snapshot

	// Star catalog (loaded once)
	stars []astro.Star
}

// NewSkyViewModel creates a new sky view model.
func NewSkyViewModel() SkyViewModel {
	return SkyViewModel{
		camAz: 180,
		camEl: 25,
		stars: astro.BrightStars(),
	}
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with new data snapshot.
func (m SkyViewModel) UpdateData(snapshot state.Snapshot) SkyViewModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.camAz = wrapDeg(m.camAz - panStepAz)
		case "right", "l":
			m.camAz = wrapDeg(m.camAz + panStepAz)
		case "up", "k":
			m.camEl = clampDeg(m.camEl+panStepEl, 0, 80)
		case "down", "j":
			m.camEl = clampDeg(m.camEl-panStepEl, 0, 80)
		case "c":
			m = m.recenter()
		case "L":
			m.showLabels = !m.showLabels
		}
	}

	return m, nil
}

// recenter points the camera at the sun when it is up, otherwise at the moon.
func (m SkyViewModel) recenter() SkyViewModel {
	r := m.snapshot.Report
	if r == nil {
		return m
	}
	if r.SunUp() || !r.MoonUp() {
		m.camAz = astro.CompassAzimuth(r.SunPosition.Azimuth)
		m.camEl = clampDeg(r.SunPosition.Altitude*180/math.Pi, 0, 80)
	} else {
		m.camAz = astro.CompassAzimuth(r.MoonPosition.Azimuth)
		m.camEl = clampDeg(r.MoonPosition.Altitude*180/math.Pi, 0, 80)
	}
	return m
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky view requires larger terminal"
	}

	if m.snapshot.Report == nil {
		return "Waiting for first almanac report..."
	}

	viewHeight := m.height - 4
	viewWidth := m.width

	canvas := m.renderSkyCanvas(viewWidth, viewHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m SkyViewModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorMoon))

	title := titleStyle.Render("Sky View")

	obs := m.snapshot.Report.Observer
	site := obs.Name
	if site == "" {
		site = fmt.Sprintf("%.2f, %.2f", obs.LatDeg, obs.LonDeg)
	}

	labels := dimStyle.Render("Labels: off")
	if m.showLabels {
		labels = accentStyle.Render("Labels: on")
	}

	compass := dimStyle.Render(fmt.Sprintf("Az:%.0f° El:%.0f°", m.camAz, m.camEl))

	return fmt.Sprintf("%s | %s | %s | %s", title, accentStyle.Render(site), labels, compass)
}

func (m SkyViewModel) renderStatus() string {
	r := m.snapshot.Report
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorSun))
	moonAccent := lipgloss.NewStyle().Foreground(lipgloss.Color(colorMoon))

	sunLine := fmt.Sprintf(">>> sun %s alt %s (%s)",
		almanac.FormatBearing(r.SunPosition.Azimuth),
		almanac.FormatAngle(r.SunPosition.Altitude),
		almanac.ClassifyTwilight(r.SunPosition.Altitude),
	)
	moonLine := fmt.Sprintf("    moon %s alt %s %s %s in %s",
		almanac.FormatBearing(r.MoonPosition.Azimuth),
		almanac.FormatAngle(r.MoonPosition.Altitude),
		almanac.PhaseGlyph(r.MoonPhase.Phase),
		almanac.FormatIllumination(r.MoonPhase.Fraction),
		r.MoonPosition.Sign,
	)

	return accentStyle.Render(sunLine) + "\n" + moonAccent.Render(moonLine)
}

func (m SkyViewModel) renderSkyCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236" // very dark background
		}
	}

	horizonY := height - 2
	r := m.snapshot.Report
	obs := r.Observer
	at := r.Timestamp

	// Draw real stars from the catalog
	for _, star := range m.stars {
		az, alt := astro.Horizontal(star.Equatorial(), obs, at)
		elDeg := alt * 180 / math.Pi
		if elDeg <= 0 {
			continue
		}

		x, y, visible := m.projectToScreen(astro.CompassAzimuth(az), elDeg, width, height)
		if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		glyph, color := starGlyph(star.Mag)
		canvas[y][x] = glyph
		colors[y][x] = color

		if m.showLabels && star.Mag < 0.5 {
			drawLabel(canvas, colors, width, horizonY, x+2, y, star.Name, colorStarDim)
		}
	}

	// Draw horizon line
	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = "60"
	}

	// Cardinal directions on the horizon
	m.drawCardinal(canvas, colors, width, height, "N", 0)
	m.drawCardinal(canvas, colors, width, height, "E", 90)
	m.drawCardinal(canvas, colors, width, height, "S", 180)
	m.drawCardinal(canvas, colors, width, height, "W", 270)

	// Sun and moon, drawn last so they sit on top of stars
	m.drawBody(canvas, colors, width, horizonY, r.SunPosition.Azimuth, r.SunPosition.Altitude, glyphSun, colorSun, "Sun")
	m.drawBody(canvas, colors, width, horizonY, r.MoonPosition.Azimuth, r.MoonPosition.Altitude, glyphMoon, colorMoon, "Moon")

	// Observer marker at bottom center
	stationX := width / 2
	stationY := height - 1
	if stationY >= 0 && stationX >= 0 && stationX < width {
		canvas[stationY][stationX] = '▲'
		colors[stationY][stationX] = "108"
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m SkyViewModel) drawBody(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, az, alt float64, glyph rune, color lipgloss.Color, name string) {
	elDeg := alt * 180 / math.Pi
	if elDeg <= 0 {
		return
	}

	x, y, visible := m.projectToScreen(astro.CompassAzimuth(az), elDeg, width, horizonY+2)
	if !visible || x < 0 || x >= width || y < 0 || y >= horizonY {
		return
	}

	canvas[y][x] = glyph
	colors[y][x] = color

	if m.showLabels {
		drawLabel(canvas, colors, width, horizonY, x+2, y, name, color)
	}
}

// drawLabel writes a short label, clipped to the canvas above the horizon.
func drawLabel(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY, startX, y int, text string, color lipgloss.Color) {
	if y < 0 || y >= horizonY {
		return
	}
	for i, r := range []rune(text) {
		x := startX + i
		if x < 0 || x >= width {
			continue
		}
		canvas[y][x] = r
		colors[y][x] = color
	}
}

// starGlyph returns the appropriate glyph and color for a star based on its
// magnitude. Brighter stars get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

func (m SkyViewModel) drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label string, az float64) {
	x, _, visible := m.projectToScreen(az, 0, width, height)
	if !visible {
		return
	}
	y := height - 2 // horizon line

	if x >= 0 && x < width && y >= 0 && y < height {
		canvas[y][x] = rune(label[0])
		colors[y][x] = "252"
	}
}

// projectToScreen converts compass az / el degrees to screen coordinates
// relative to the camera.
func (m SkyViewModel) projectToScreen(az, el float64, width, height int) (int, int, bool) {
	dAz := normalizeAngle(az - m.camAz)
	dEl := el - m.camEl

	if dAz < -fovAz/2 || dAz > fovAz/2 {
		return 0, 0, false
	}
	if dEl < -fovEl/2 || dEl > fovEl/2 {
		return 0, 0, false
	}

	// X: -fovAz/2..+fovAz/2 -> 0..width
	// Y: +fovEl/2..-fovEl/2 -> 0..height (inverted, higher el = higher on screen)
	horizonY := height - 2

	x := int((dAz + fovAz/2) / fovAz * float64(width))
	y := int((fovEl/2 - dEl) / fovEl * float64(horizonY))

	return x, y, true
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

func wrapDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func clampDeg(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
