// Command skytrackr is a terminal night-sky viewer: stars and planets
// over your horizon, on a clock you control.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/EthanLiu015/SkyTrackr/internal/astro"
	"github.com/EthanLiu015/SkyTrackr/internal/catalog"
	"github.com/EthanLiu015/SkyTrackr/internal/clock"
	"github.com/EthanLiu015/SkyTrackr/internal/config"
	"github.com/EthanLiu015/SkyTrackr/internal/export"
	"github.com/EthanLiu015/SkyTrackr/internal/geoloc"
	"github.com/EthanLiu015/SkyTrackr/internal/locate"
	"github.com/EthanLiu015/SkyTrackr/internal/logging"
	"github.com/EthanLiu015/SkyTrackr/internal/state"
	"github.com/EthanLiu015/SkyTrackr/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	scenePath     string
	targetName    string
	watchInterval time.Duration
)

func main() {
	configPath := flag.String("config", "", "Path to skytrackr.toml (default: search standard locations)")
	lat := flag.Float64("lat", 91, "Observer latitude in degrees")
	lon := flag.Float64("lon", 181, "Observer longitude in degrees")
	catalogPath := flag.String("catalog", "", "Path to star catalog CSV")
	catalogURL := flag.String("catalog-url", "", "URL of star catalog CSV")
	rate := flag.Float64("rate", 0, "Initial time rate multiplier")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print visible-objects table instead of TUI")
	flag.StringVar(&scenePath, "scene", "", "Export scene JSON to file (use - for stdout)")
	flag.StringVar(&targetName, "target", "", "Print where to find the named object")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Source != "" {
		logger.Debug("Loaded config from %s", cfg.Source)
	}

	obs := resolveObserver(ctx, cfg, *lat, *lon, logger.With("geoloc"))
	cat := resolveCatalog(ctx, cfg, *catalogPath, *catalogURL, logger.With("catalog"))

	clk := clock.New()
	if *rate != 0 {
		clk.SetRate(*rate)
	} else if cfg.TimeRate != 0 {
		clk.SetRate(cfg.TimeRate)
	}

	stateMgr := state.NewManager(obs, cat, clk)

	headless := summaryMode || scenePath != "" || targetName != ""
	if headless {
		runHeadless(ctx, stateMgr, logger)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal; use -summary, -scene, or -target for headless output")
		os.Exit(1)
	}

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveObserver picks the observer position: flags beat the config
// file, which beats IP geolocation, which falls back to the default.
func resolveObserver(ctx context.Context, cfg config.Config, lat, lon float64, logger *logging.Logger) astro.Observer {
	if lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180 {
		return astro.Observer{LatDeg: lat, LonDeg: lon, Name: "configured"}
	}
	if cfg.ObserverSet {
		name := cfg.ObserverName
		if name == "" {
			name = "configured"
		}
		return astro.Observer{LatDeg: cfg.LatDeg, LonDeg: cfg.LonDeg, Name: name}
	}

	obs, err := geoloc.NewClient().Locate(ctx)
	if err != nil {
		logger.Warn("Geolocation failed (%v), using %s", err, geoloc.DefaultObserver.Name)
		return geoloc.DefaultObserver
	}
	logger.Info("Located observer near %s (%.4f, %.4f)", obs.Name, obs.LatDeg, obs.LonDeg)
	return obs
}

// resolveCatalog loads the star catalog: an explicit file beats a URL,
// and any failure falls back to the builtin bright-star table.
func resolveCatalog(ctx context.Context, cfg config.Config, path, url string, logger *logging.Logger) catalog.Snapshot {
	if path == "" {
		path = cfg.CatalogPath
	}
	if url == "" {
		url = cfg.CatalogURL
	}

	if path != "" {
		snap, err := catalog.LoadCSVFile(path, time.Now())
		if err == nil {
			logger.Info("Loaded %d stars from %s", len(snap.Stars), path)
			return snap
		}
		logger.Warn("Catalog file %s failed (%v), trying next source", path, err)
	}

	if url != "" {
		snap, err := catalog.NewFetcher(url).Fetch(ctx)
		if err == nil {
			logger.Info("Loaded %d stars from %s", len(snap.Stars), url)
			return snap
		}
		logger.Warn("Catalog URL %s failed (%v), using builtin catalog", url, err)
	}

	snap := catalog.Builtin(time.Now())
	logger.Info("Using builtin catalog (%d stars)", len(snap.Stars))
	return snap
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, stateMgr *state.Manager, logger *logging.Logger) {
	outputOnce := func() error {
		snap := stateMgr.Snapshot()

		if targetName != "" {
			return printTarget(os.Stdout, stateMgr, targetName)
		}

		scene := export.BuildScene(snap.Observer, snap.Catalog.Stars, snap.SimTime, export.DefaultSceneRadius)

		if scenePath != "" {
			if scenePath == "-" {
				if err := scene.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(scenePath)
				if err != nil {
					return fmt.Errorf("create scene file: %w", err)
				}
				defer f.Close()
				if err := scene.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			export.WriteSummaryTable(os.Stdout, scene)
		}

		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch loop shutting down")
			return
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

// printTarget resolves a single object and prints where to point.
func printTarget(w *os.File, stateMgr *state.Manager, name string) error {
	aim, err := stateMgr.Search(name)
	if err != nil {
		switch e := err.(type) {
		case *locate.BelowHorizonError:
			fmt.Fprintln(w, e.Error())
			return nil
		case *locate.NotFoundError:
			return e
		default:
			return err
		}
	}

	fmt.Fprintf(w, "%s (%s): look %s, azimuth %.1f°, altitude %.1f°\n",
		aim.Name, aim.Kind, export.CompassPoint(aim.Horizontal.AzDeg),
		aim.Horizontal.AzDeg, aim.Horizontal.AltDeg)
	return nil
}
