package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tzsync/internal/anchor"
	"github.com/five82/tzsync/internal/catalog"
	"github.com/five82/tzsync/internal/prefs"
	"github.com/five82/tzsync/internal/state"
	"github.com/five82/tzsync/internal/timemath"
)

// Options configures the UI.
type Options struct {
	Context        context.Context // cancelling it stops the program
	Store          *state.Store
	Sync           *anchor.Synchronizer
	Logger         *slog.Logger
	ThemeName      string
	TwentyFourHour bool
	PrefsPath      string
	Tick           time.Duration // header clock refresh; zero uses one second
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	sync      *anchor.Synchronizer
	logger    *slog.Logger
	prefsPath string
	tick      time.Duration
	keys      keyMap

	// UI state
	theme  Theme
	format timemath.DisplayFormat
	width  int
	height int
	ready  bool
	now    time.Time
	status string

	// Data state
	snapshot state.Snapshot
	rows     []anchor.Row

	// List state
	selected int
	list     viewport.Model

	// Search state
	searching bool
	search    textinput.Model
	results   []catalog.Entry
	resultIdx int

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	tick := opts.Tick
	if tick == 0 {
		tick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	input := textinput.New()
	input.Placeholder = "Search for a city (e.g. London, Tokyo)"
	input.Prompt = "/ "
	input.CharLimit = 64

	m := Model{
		store:     opts.Store,
		sync:      opts.Sync,
		logger:    logger,
		prefsPath: prefsPath,
		tick:      tick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		format:    timemath.FormatFor(opts.TwentyFourHour),
		search:    input,
		now:       time.Now(),
	}
	if m.store != nil {
		m.setSnapshot(m.store.Snapshot())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.tick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.list = viewport.New(msg.Width, m.listHeight())
		}
		m.ready = true
		m.updateList()
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tea.Batch(tickCmd(m.tick), fetchSnapshotCmd(m.store))

	case snapshotMsg:
		if state.Snapshot(msg).Revision >= m.snapshot.Revision {
			m.setSnapshot(state.Snapshot(msg))
			m.updateList()
		}
		return m, nil
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
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.ToggleFormat):
		if m.format == timemath.Format24Hour {
			m.format = timemath.Format12Hour
		} else {
			m.format = timemath.Format24Hour
		}
		m.savePrefs()
		m.refreshRows()

	case key.Matches(msg, m.keys.MoveUp):
		m.moveSelected(-1)

	case key.Matches(msg, m.keys.MoveDown):
		m.moveSelected(1)

	case key.Matches(msg, m.keys.Up):
		m.selectRow(m.selected - 1)

	case key.Matches(msg, m.keys.Down):
		m.selectRow(m.selected + 1)

	case key.Matches(msg, m.keys.MakeHome):
		if id, ok := m.selectedID(); ok {
			m.apply(func(st anchor.State) anchor.State { return m.sync.Promote(st, id) })
			m.selected = 0
		}

	case key.Matches(msg, m.keys.Remove):
		m.removeSelected()

	case key.Matches(msg, m.keys.Earlier):
		m.stepSelected(-timemath.GridMinutes)

	case key.Matches(msg, m.keys.Later):
		m.stepSelected(timemath.GridMinutes)

	case key.Matches(msg, m.keys.HomeEarlier):
		m.stepHome(-timemath.GridMinutes)

	case key.Matches(msg, m.keys.HomeLater):
		m.stepHome(timemath.GridMinutes)

	case key.Matches(msg, m.keys.Now):
		m.apply(func(st anchor.State) anchor.State { return m.sync.Initialize(st.Locations) })

	case key.Matches(msg, m.keys.Add):
		m.openSearch()
		return m, textinput.Blink
	}

	m.updateList()
	return m, nil
}

// apply runs a synchronizer transition through the store.
func (m *Model) apply(fn state.Transition) {
	if m.store == nil || m.sync == nil {
		return
	}
	m.setSnapshot(m.store.Apply(fn))
}

func (m *Model) setSnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.refreshRows()
}

func (m *Model) refreshRows() {
	if m.sync == nil {
		m.rows = nil
		return
	}
	m.rows = m.sync.Rows(m.snapshot.State, m.format)
	m.selectRow(m.selected)
}

func (m *Model) selectRow(i int) {
	if i >= len(m.rows) {
		i = len(m.rows) - 1
	}
	if i < 0 {
		i = 0
	}
	m.selected = i
}

func (m Model) selectedID() (string, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return "", false
	}
	return m.rows[m.selected].Location.ID, true
}

// moveSelected reorders the selected row by delta and keeps it selected.
func (m *Model) moveSelected(delta int) {
	from := m.selected
	to := from + delta
	if to < 0 || to >= len(m.rows) {
		return
	}
	m.apply(func(st anchor.State) anchor.State { return m.sync.Reorder(st, from, to) })
	m.selected = to
}

// stepSelected moves the selected row's wall clock by delta minutes. Home
// steps from its grid slot as an authoritative edit. Other rows step from
// their actual wall clock, since the edit already rounds through home and
// zones off the half-hour grid would otherwise be rounded twice.
func (m *Model) stepSelected(delta int) {
	id, ok := m.selectedID()
	if !ok {
		return
	}
	calc := m.sync.Calculator()
	m.apply(func(st anchor.State) anchor.State {
		idx := st.Index(id)
		if idx < 0 {
			return st
		}
		current := calc.LocalMinutes(st.Instant, st.Locations[idx].TimeZone)
		if idx == 0 {
			current = timemath.RoundToGrid(current)
			return m.sync.EditAuthoritativeTime(st, timemath.NormalizeMinutes(current+delta))
		}
		return m.sync.EditNonAuthoritativeTime(st, id, timemath.NormalizeMinutes(current+delta))
	})
}

func (m *Model) stepHome(delta int) {
	if len(m.rows) == 0 {
		return
	}
	calc := m.sync.Calculator()
	m.apply(func(st anchor.State) anchor.State {
		home, ok := st.Home()
		if !ok {
			return st
		}
		current := timemath.RoundToGrid(calc.LocalMinutes(st.Instant, home.TimeZone))
		return m.sync.EditAuthoritativeTime(st, timemath.NormalizeMinutes(current+delta))
	})
}

func (m *Model) removeSelected() {
	id, ok := m.selectedID()
	if !ok {
		return
	}
	if m.selected == 0 {
		m.status = "Home cannot be removed; make another location home first"
		return
	}
	m.apply(func(st anchor.State) anchor.State { return m.sync.Remove(st, id) })
	m.logger.Info("location removed", "id", id)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, TwentyFourHour: m.format == timemath.Format24Hour}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
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

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
