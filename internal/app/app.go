package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/five82/floorboard/internal/chart"
	"github.com/five82/floorboard/internal/config"
	"github.com/five82/floorboard/internal/floor"
	"github.com/five82/floorboard/internal/logging"
	"github.com/five82/floorboard/internal/logsink"
	"github.com/five82/floorboard/internal/nav"
	"github.com/five82/floorboard/internal/plans"
	"github.com/five82/floorboard/internal/prefs"
	"github.com/five82/floorboard/internal/state"
	"github.com/five82/floorboard/internal/telemetry"
	"github.com/five82/floorboard/internal/theme"
	"github.com/five82/floorboard/internal/ui"
)

// Options configure the floorboard application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/floorboard/prefs.toml
	LogLevel   string // overrides the config file when set
}

// Run boots the floorboard TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	store := prefs.Open(opts.PrefsPath)
	logger.Info("floorboard starting", "log", logger.Path(), "prefs", store.Path(), "menu_entries", len(cfg.Menu))

	d, err := build(cfg, store, logger, time.Now)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := d.sim.Start(ctx)
	defer sched.StopAll()

	err = ui.Run(d.uiOptions(ctx))
	logger.Info("floorboard stopped", "plans", d.plans.Len(), "log_entries", d.panel.Len())
	return err
}

// dashboard is the wired component graph behind one UI session.
type dashboard struct {
	cfg   config.Config
	board *state.Board
	panel *logsink.Panel
	plans *plans.Registry
	chart *chart.Line
	nav   *nav.Navigator
	theme *theme.Preference
	sim   *telemetry.Simulator
	diag  *logging.Logger
	now   func() time.Time
}

// build wires every component onto a fresh board and brings it to its
// initial state: fixtures rendered, theme applied and the first view active.
func build(cfg config.Config, store prefs.Store, logger *logging.Logger, now func() time.Time) (*dashboard, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	board := state.NewBoard(ui.ViewIDs()...)
	panel := logsink.NewPanel(
		logsink.WithClock(now),
		logsink.WithDiagnostics(logger.WithComponent("syslog")),
	)

	registry := plans.NewRegistry(board, panel)
	registry.Seed(plans.Fixtures()...)
	floor.RenderLines(board, floor.Lines())

	items := make([]nav.MenuItem, 0, len(cfg.Menu))
	for _, e := range cfg.Menu {
		items = append(items, nav.MenuItem{Label: e.Label, Target: e.Target})
	}
	navigator := nav.New(board, panel, items)
	// Containers outside the menu are never shown.
	for _, id := range ui.ViewIDs() {
		if !slices.Contains(navigator.Views(), id) {
			board.SetVisible(id, false)
		}
	}

	pref := theme.New(board, store, panel, logger.WithComponent("theme"))
	pref.Initialize()

	sim := telemetry.NewSimulator(board, panel, simulatorConfig(cfg.Telemetry),
		telemetry.WithClock(now),
		telemetry.WithRand(newRand(cfg.Telemetry.Seed, now)),
	)
	sim.Prime()

	if err := navigator.Start(); err != nil {
		return nil, fmt.Errorf("start navigation: %w", err)
	}

	return &dashboard{
		cfg:   cfg,
		board: board,
		panel: panel,
		plans: registry,
		chart: chart.ProductionTrend(),
		nav:   navigator,
		theme: pref,
		sim:   sim,
		diag:  logger,
		now:   now,
	}, nil
}

func (d *dashboard) uiOptions(ctx context.Context) ui.Options {
	return ui.Options{
		Context:   ctx,
		Board:     d.board,
		Navigator: d.nav,
		Plans:     d.plans,
		Theme:     d.theme,
		Log:       d.panel,
		Chart:     d.chart,
		Stations:  d.sim.Stations(),
		Refresh:   d.cfg.Refresh,
		Now:       d.now,
		Diag:      d.diag,
	}
}

func simulatorConfig(t config.Telemetry) telemetry.Config {
	c := telemetry.DefaultConfig()
	c.ClockEvery = t.ClockEvery
	c.WIPEvery = t.WIPEvery
	c.AmbientMin = t.AmbientMin
	c.AmbientMax = t.AmbientMax
	c.ProductionChance = t.ProductionChance
	return c
}

// newRand returns a PCG source. A zero seed draws one from the clock.
func newRand(seed uint64, now func() time.Time) *rand.Rand {
	if seed == 0 {
		seed = uint64(now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
