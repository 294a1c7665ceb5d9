package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/floorboard/internal/config"
	"github.com/five82/floorboard/internal/floor"
	"github.com/five82/floorboard/internal/nav"
	"github.com/five82/floorboard/internal/plans"
	"github.com/five82/floorboard/internal/prefs"
	"github.com/five82/floorboard/internal/telemetry"
	"github.com/five82/floorboard/internal/theme"
	"github.com/five82/floorboard/internal/ui"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestBuild_InitialState(t *testing.T) {
	d, err := build(config.Default(), &prefs.Memory{}, nil, clock)
	require.NoError(t, err)

	assert.Equal(t, ui.ViewDashboard, d.nav.Active())
	assert.True(t, d.board.Visible(ui.ViewDashboard))
	for _, id := range []string{ui.ViewPlans, ui.ViewProcess, ui.ViewLogs} {
		assert.False(t, d.board.Visible(id), id)
	}
	assert.Equal(t, "Dashboard", d.board.Text(nav.TitleID))

	assert.Equal(t, theme.Light, d.theme.Mode())
	assert.Equal(t, theme.NightLabel, d.board.Text(theme.ToggleID))

	assert.Equal(t, 2, d.plans.Len())
	rows, ok := d.board.Content(plans.TableID).([]plans.Row)
	require.True(t, ok)
	assert.Equal(t, "Bracket Assembly", rows[0].Item)

	lines, ok := d.board.Content(floor.LineTableID).([]floor.Line)
	require.True(t, ok)
	assert.Len(t, lines, 3)

	assert.Equal(t, "2026-03-02 09:30:00", d.board.Text(telemetry.ClockID))
	assert.Equal(t, "1,284", d.board.Text(telemetry.ProductionID))
	assert.Equal(t, "12", d.board.Text(floor.WIPElementID("Cutting")))

	// Startup writes nothing to the system log.
	assert.Zero(t, d.panel.Len())
}

func TestBuild_RestoresDarkPreference(t *testing.T) {
	store := &prefs.Memory{}
	require.NoError(t, store.Set(theme.PrefKey, "dark"))

	d, err := build(config.Default(), store, nil, clock)
	require.NoError(t, err)

	assert.Equal(t, theme.Dark, d.theme.Mode())
	assert.True(t, d.board.HasClass(theme.BodyID, theme.DarkClass))
	assert.Equal(t, theme.DayLabel, d.board.Text(theme.ToggleID))
}

func TestBuild_CustomMenu(t *testing.T) {
	cfg := config.Default()
	cfg.Menu = []config.MenuEntry{
		{Label: "Orders", Target: ui.ViewPlans},
		{Label: "Quality", Target: "view-quality"},
		{Label: "Home", Target: ui.ViewDashboard},
	}

	d, err := build(cfg, &prefs.Memory{}, nil, clock)
	require.NoError(t, err)

	// First known view in menu order.
	assert.Equal(t, ui.ViewPlans, d.nav.Active())
	assert.Equal(t, "Orders", d.board.Text(nav.TitleID))
	assert.Equal(t, []string{ui.ViewPlans, ui.ViewDashboard}, d.nav.Views())
	assert.False(t, d.board.Visible(ui.ViewProcess))
	assert.False(t, d.board.Visible(ui.ViewLogs))

	err = d.nav.Select("view-quality")
	assert.True(t, errors.Is(err, nav.ErrViewNotFound))
	assert.Equal(t, ui.ViewPlans, d.nav.Active())
}

func TestBuild_NoKnownViews(t *testing.T) {
	cfg := config.Default()
	cfg.Menu = []config.MenuEntry{{Label: "Quality", Target: "view-quality"}}

	_, err := build(cfg, &prefs.Memory{}, nil, clock)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nav.ErrViewNotFound))
}

func TestBuild_SeedIsReproducible(t *testing.T) {
	cfg := config.Default()
	cfg.Telemetry.Seed = 42

	a, err := build(cfg, &prefs.Memory{}, nil, clock)
	require.NoError(t, err)
	b, err := build(cfg, &prefs.Memory{}, nil, clock)
	require.NoError(t, err)

	for range 5 {
		a.sim.TickAmbient()
		b.sim.TickAmbient()
		a.sim.TickWIP()
		b.sim.TickWIP()
	}
	assert.Equal(t, a.sim.CPU(), b.sim.CPU())
	assert.Equal(t, a.sim.Stations(), b.sim.Stations())

	ea, eb := a.panel.Entries(), b.panel.Entries()
	require.Len(t, ea, 5)
	for i := range ea {
		assert.Equal(t, ea[i].Message, eb[i].Message)
	}
}

func TestSimulatorConfig_MapsTelemetry(t *testing.T) {
	got := simulatorConfig(config.Telemetry{
		ClockEvery:       500 * time.Millisecond,
		WIPEvery:         2 * time.Second,
		AmbientMin:       time.Second,
		AmbientMax:       5 * time.Second,
		ProductionChance: 0,
	})

	assert.Equal(t, 500*time.Millisecond, got.ClockEvery)
	assert.Equal(t, 2*time.Second, got.WIPEvery)
	assert.Equal(t, time.Second, got.AmbientMin)
	assert.Equal(t, 5*time.Second, got.AmbientMax)
	assert.Zero(t, got.ProductionChance)
	assert.Equal(t, int64(1284), got.InitialProduction)
	assert.Len(t, got.Stations, len(floor.Stations()))
}

func TestUIOptions_CarriesComponents(t *testing.T) {
	d, err := build(config.Default(), &prefs.Memory{}, nil, clock)
	require.NoError(t, err)

	opts := d.uiOptions(context.Background())
	assert.Same(t, d.board, opts.Board)
	assert.Same(t, d.nav, opts.Navigator)
	assert.Same(t, d.panel, opts.Log)
	assert.Equal(t, d.cfg.Refresh, opts.Refresh)
	assert.Len(t, opts.Stations, 5)
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = [broken"), 0o644))

	err := Run(context.Background(), Options{ConfigPath: path})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "load config:"), err.Error())
}
