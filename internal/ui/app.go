package ui

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/floorboard/internal/chart"
	"github.com/five82/floorboard/internal/floor"
	"github.com/five82/floorboard/internal/logging"
	"github.com/five82/floorboard/internal/logsink"
	"github.com/five82/floorboard/internal/nav"
	"github.com/five82/floorboard/internal/plans"
	"github.com/five82/floorboard/internal/state"
	"github.com/five82/floorboard/internal/theme"
)

// View container ids the terminal knows how to draw.
const (
	ViewDashboard = "view-dashboard"
	ViewPlans     = "view-plans"
	ViewProcess   = "view-process"
	ViewLogs      = "view-logs"
)

// ViewIDs returns the containers drawn by the UI, in default menu order.
func ViewIDs() []string {
	return []string{ViewDashboard, ViewPlans, ViewProcess, ViewLogs}
}

// Options configures the UI. Navigator and Theme are required; every other
// field has a default or is optional.
type Options struct {
	Context   context.Context
	Board     *state.Board
	Navigator *nav.Navigator
	Plans     *plans.Registry
	Theme     *theme.Preference
	Log       *logsink.Panel
	Chart     *chart.Line
	Stations  []floor.Station
	Notices   []string
	Refresh   time.Duration
	Now       func() time.Time
	Diag      *logging.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx       context.Context
	board     *state.Board
	nav       *nav.Navigator
	plans     *plans.Registry
	themePref *theme.Preference
	panel     *logsink.Panel
	chart     *chart.Line
	stations  []floor.Station
	refresh   time.Duration
	now       func() time.Time
	diag      *logging.Logger

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot

	// Widgets
	banner      marquee
	cpuBar      progress.Model
	logViewport viewport.Model
	logFollow   bool
	logCount    int

	// Overlays
	form     *planForm
	showHelp bool

	// Shared with the dashboard reflow hook.
	chartWidth *atomic.Int64
}

// New creates a new Bubble Tea model. The navigator's dashboard hook is wired
// to resize the chart to the content width. New panics when a required option
// is missing.
func New(opts Options) Model {
	if opts.Navigator == nil || opts.Theme == nil {
		panic("ui: Options.Navigator and Options.Theme are required")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = DefaultUIInterval
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	diag := opts.Diag
	if diag == nil {
		diag = logging.NopLogger()
	}
	notices := opts.Notices
	if notices == nil {
		notices = DefaultNotices
	}
	stations := opts.Stations
	if stations == nil {
		stations = floor.Stations()
	}

	m := Model{
		ctx:        ctx,
		board:      opts.Board,
		nav:        opts.Navigator,
		plans:      opts.Plans,
		themePref:  opts.Theme,
		panel:      opts.Log,
		chart:      opts.Chart,
		stations:   stations,
		refresh:    refresh,
		now:        now,
		diag:       diag.WithComponent("ui"),
		keys:       DefaultKeyMap(),
		theme:      ThemeFor(opts.Theme.Mode()),
		banner:     newMarquee(notices),
		cpuBar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		logFollow:  true,
		chartWidth: &atomic.Int64{},
	}
	if m.board != nil {
		m.snapshot = m.board.Snapshot()
	}

	if m.chart != nil {
		c, w := m.chart, m.chartWidth
		m.nav.OnActivate(ViewDashboard, nav.ReflowFunc(func() {
			if width := int(w.Load()); width > 0 {
				c.Resize(width)
			}
		}))
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.refresh),
		marqueeTickCmd(),
	}
	if m.board != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.board))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.logViewport = viewport.New(m.contentWidth(), m.logViewportHeight())
		}
		m.ready = true
		m.logViewport.Width = m.contentWidth()
		m.logViewport.Height = m.logViewportHeight()
		m.cpuBar.Width = max(min(m.contentWidth()-30, 40), 10)
		m.chartWidth.Store(int64(m.contentWidth()))
		m.nav.Reflow()
		m.logCount = -1 // force re-render at the new width
		m.syncSnapshot()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.updateLogViewport()
		return m, nil

	case marqueeTickMsg:
		m.banner.step()
		return m, marqueeTickCmd()

	case planSubmittedMsg:
		m.form = nil
		m.submitPlan(msg.form)
		m.syncSnapshot()
		return m, nil

	case planCancelledMsg:
		m.form = nil
		return m, nil
	}

	// Form internals (cursor blinks, field focus) go to the open form.
	if m.form != nil {
		return m, m.form.Update(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// The open form owns the keyboard.
	if m.form != nil {
		return m, m.form.Update(msg)
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		mode := m.themePref.Toggle()
		m.theme = ThemeFor(mode)
		m.logCount = -1 // restyle log lines
		m.syncSnapshot()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.navigate(m.nav.Next())
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.navigate(m.nav.Prev())
		return m, nil

	case key.Matches(msg, m.keys.SelectView):
		idx := int(msg.Runes[0] - '1')
		items := m.nav.Items()
		if idx < len(items) {
			m.navigate(m.nav.Select(items[idx].Target))
		}
		return m, nil

	case key.Matches(msg, m.keys.NewPlan):
		return m.openPlanForm()
	}

	if m.activeView() == ViewLogs {
		return m.handleLogsKey(msg)
	}
	return m, nil
}

// navigate records a navigation result. Failures are already on the system
// log; the snapshot is refreshed either way.
func (m *Model) navigate(err error) {
	if err != nil {
		m.diag.Debug("navigation rejected", "error", err)
	}
	m.syncSnapshot()
}

func (m Model) openPlanForm() (tea.Model, tea.Cmd) {
	m.navigate(m.nav.Select(ViewPlans))
	m.form = newPlanForm(m.theme, m.now())
	return m, m.form.Init()
}

func (m *Model) submitPlan(form plans.Form) {
	rec, err := form.Build(m.now())
	if err != nil {
		m.panel.Warn("Production order rejected: " + err.Error())
		return
	}
	m.plans.Insert(rec)
	m.diag.Info("plan registered", "id", rec.ID, "qty", rec.Qty, "priority", string(rec.Priority))
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.board != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.board))
	}
	cmds = append(cmds, tickCmd(m.refresh))
	return m, tea.Batch(cmds...)
}

// syncSnapshot re-reads the board after a local mutation so the next frame
// reflects it without waiting for the tick.
func (m *Model) syncSnapshot() {
	if m.board != nil {
		m.snapshot = m.board.Snapshot()
	}
	m.updateLogViewport()
}

// activeView returns the visible view container, or "" when none is.
func (m Model) activeView() string {
	for _, id := range m.nav.Views() {
		if m.snapshot.Visible(id) {
			return id
		}
	}
	return ""
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(board *state.Board) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(board.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	return err
}
