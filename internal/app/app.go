package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/tzsync/internal/anchor"
	"github.com/five82/tzsync/internal/catalog"
	"github.com/five82/tzsync/internal/clock"
	"github.com/five82/tzsync/internal/config"
	"github.com/five82/tzsync/internal/logging"
	"github.com/five82/tzsync/internal/prefs"
	"github.com/five82/tzsync/internal/state"
	"github.com/five82/tzsync/internal/timemath"
	"github.com/five82/tzsync/internal/ui"
	"github.com/five82/tzsync/internal/zone"
)

// Options configure the tzsync application.
type Options struct {
	ConfigPath  string
	PrefsPath   string        // empty uses default ~/.config/tzsync/prefs.toml
	LogFile     string        // overrides log_file from the config
	Verbose     bool          // force debug logging
	FollowEvery time.Duration // zero uses default
}

// Engine bundles the pieces every command needs.
type Engine struct {
	Config    config.Config
	Sync      *anchor.Synchronizer
	Locations []catalog.Location
}

// NewEngine builds the zone database, calculator and synchronizer from cfg
// and resolves the configured location slugs.
func NewEngine(cfg config.Config, c clock.Clock, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	policy, err := anchor.ParseDayPolicy(cfg.ReferenceDay)
	if err != nil {
		return nil, fmt.Errorf("config reference_day: %w", err)
	}

	zones := zone.New(zone.WithLogger(logging.WithComponent(logger, "zone")))
	calc := timemath.New(zones, logging.WithComponent(logger, "timemath"))

	opts := []anchor.Option{
		anchor.WithLogger(logging.WithComponent(logger, "anchor")),
		anchor.WithDayPolicy(policy),
	}
	if c != nil {
		opts = append(opts, anchor.WithClock(c))
	}

	return &Engine{
		Config:    cfg,
		Sync:      anchor.New(calc, opts...),
		Locations: ResolveLocations(cfg.Locations, logger),
	}, nil
}

// ResolveLocations maps catalog slugs to fresh locations in order. Unknown
// slugs are logged and skipped.
func ResolveLocations(slugs []string, logger *slog.Logger) []catalog.Location {
	if logger == nil {
		logger = logging.Discard()
	}
	locs := make([]catalog.Location, 0, len(slugs))
	for _, slug := range slugs {
		entry, ok := catalog.BySlug(slug)
		if !ok {
			logger.Warn("unknown location in config", "slug", slug)
			continue
		}
		locs = append(locs, catalog.NewLocation(entry))
	}
	return locs
}

// Run boots the tzsync TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logFile := cfg.LogFile
	if opts.LogFile != "" {
		logFile = opts.LogFile
	}
	logger, closeLog, err := fileLogger(logFile, cfg.LogLevel, opts.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	engine, err := NewEngine(cfg, nil, logger)
	if err != nil {
		return err
	}
	logger.Info("starting", "locations", len(engine.Locations), "reference_day", cfg.ReferenceDay)

	store := state.NewStore(engine.Sync.Initialize(engine.Locations))

	if cfg.FollowNow {
		StartFollower(ctx, store, engine.Sync, opts.FollowEvery, logging.WithComponent(logger, "follow"))
	}

	uiOpts := ui.Options{
		Context:        ctx,
		Store:          store,
		Sync:           engine.Sync,
		Logger:         logging.WithComponent(logger, "ui"),
		ThemeName:      userPrefs.Theme,
		TwentyFourHour: userPrefs.TwentyFourHour,
		PrefsPath:      opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// fileLogger opens the log file the TUI writes to. The returned func closes it.
func fileLogger(path, level string, verbose bool) (*slog.Logger, func(), error) {
	lvl := logging.ParseLevel(level)
	if verbose {
		lvl = slog.LevelDebug
	}
	file, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := logging.New(logging.Config{Level: lvl, Output: file})
	return logger, func() { _ = file.Close() }, nil
}
