// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Altitude sparkline in Dashboard view, twilight tier events
// 0.3.0 - Moonrise/moonset solver, zodiac sign tracking, moon card mode
// 0.2.0 - Real star catalog, astronomical projection, full twilight ladder
// 0.1.0 - Initial release: TUI dashboard, sky view, headless modes, built-in sites
