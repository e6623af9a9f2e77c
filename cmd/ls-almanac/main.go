// Command ls-almanac is a terminal sun and moon almanac.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/state"
	"github.com/litescript/ls-almanac/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	moonMode      bool
	nowMode       bool
	watchInterval time.Duration
	snapshotPath  string
	beepMode      bool
)

const (
	defaultRefresh = 10 * time.Second
	minRefresh     = 1 * time.Second
	maxRefresh     = 10 * time.Minute
)

func main() {
	lat := flag.String("lat", "", "Observer latitude in degrees, north positive")
	lon := flag.String("lon", "", "Observer longitude in degrees, east positive")
	site := flag.String("site", "", "Built-in site name (e.g. greenwich, tokyo)")
	atFlag := flag.String("time", "", "Evaluate at a fixed instant (RFC 3339) instead of now")
	refresh := flag.Duration("refresh", defaultRefresh, "Recompute interval (e.g., 10s, 1m)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print the day's sun timeline instead of TUI")
	flag.BoolVar(&moonMode, "moon", false, "Print the moon card instead of TUI")
	flag.BoolVar(&nowMode, "now", false, "Single-line current-conditions mode")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON report to file (use - for stdout)")
	flag.BoolVar(&beepMode, "beep", false, "Beep on sky events (TTY only)")
	flag.Parse()

	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	obs, err := resolveObserver(*lat, *lon, *site)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fixedTime, err := resolveTime(*atFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = *refresh
	stateMgr := state.NewManager(stateCfg)

	headless := summaryMode || moonMode || nowMode || snapshotPath != ""
	if headless {
		runHeadless(ctx, obs, fixedTime, stateMgr, logger)
		return
	}

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runComputeLoop(ctx, obs, fixedTime, stateMgr, p, logger.Named("compute"))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveObserver picks the observer from -site or -lat/-lon, defaulting to
// Greenwich when nothing is given.
func resolveObserver(lat, lon, site string) (astro.Observer, error) {
	if site != "" {
		if lat != "" || lon != "" {
			return astro.Observer{}, fmt.Errorf("-site and -lat/-lon are mutually exclusive")
		}
		return almanac.ObserverForSite(almanac.Site(site))
	}

	if lat == "" && lon == "" {
		return almanac.ObserverForSite(almanac.SiteGreenwich)
	}
	if lat == "" || lon == "" {
		return astro.Observer{}, fmt.Errorf("-lat and -lon must be given together")
	}

	latDeg, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return astro.Observer{}, fmt.Errorf("parse -lat: %w", err)
	}
	lonDeg, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return astro.Observer{}, fmt.Errorf("parse -lon: %w", err)
	}
	if latDeg < -90 || latDeg > 90 {
		return astro.Observer{}, fmt.Errorf("latitude %.4f out of range [-90, 90]", latDeg)
	}
	if lonDeg < -180 || lonDeg > 180 {
		return astro.Observer{}, fmt.Errorf("longitude %.4f out of range [-180, 180]", lonDeg)
	}

	return astro.Observer{LatDeg: latDeg, LonDeg: lonDeg}, nil
}

// resolveTime parses the -time flag. A zero return means "use the clock".
func resolveTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse -time: %w", err)
	}
	return t, nil
}

func evalTime(fixed time.Time) time.Time {
	if !fixed.IsZero() {
		return fixed
	}
	return time.Now().UTC()
}

func runComputeLoop(ctx context.Context, obs astro.Observer, fixed time.Time, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	doCompute(obs, fixed, stateMgr, p, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Compute loop shutting down")
			return
		case <-ticker.C:
			doCompute(obs, fixed, stateMgr, p, logger)
		}
	}
}

func doCompute(obs astro.Observer, fixed time.Time, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	started := time.Now()
	report := almanac.Compute(evalTime(fixed), obs)
	elapsed := time.Since(started)

	logger.Debug("Report for %.4f,%.4f in %v", obs.LatDeg, obs.LonDeg, elapsed)

	stateMgr.Update(report, elapsed, nil)
	p.Send(ui.DataUpdateMsg{Snapshot: stateMgr.Snapshot()})
}

// runHeadless handles all headless modes without starting TUI.
func runHeadless(ctx context.Context, obs astro.Observer, fixed time.Time, stateMgr *state.Manager, logger *logging.Logger) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	outputOnce := func() error {
		started := time.Now()
		report := almanac.Compute(evalTime(fixed), obs)
		stateMgr.Update(report, time.Since(started), nil)
		snap := stateMgr.Snapshot()

		if nowMode {
			almanac.WriteNowLine(os.Stdout, report)
			return nil
		}

		if snapshotPath != "" {
			export := almanac.ExportReport(report)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			almanac.WriteSummaryTable(os.Stdout, report)
		}

		if moonMode {
			if summaryMode {
				fmt.Println()
			}
			almanac.WriteMoonCard(os.Stdout, report)
		}

		if beepMode && isTTY {
			for _, e := range snap.Events {
				if time.Since(e.Timestamp) < watchInterval+time.Second {
					fmt.Print("\a")
					break
				}
			}
		}

		return nil
	}

	// Single run
	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !nowMode {
				fmt.Println() // Blank line between outputs
			}
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
