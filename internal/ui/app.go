package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/genpozi/poziverse/internal/catalog"
	"github.com/genpozi/poziverse/internal/config"
	"github.com/genpozi/poziverse/internal/prefs"
	"github.com/genpozi/poziverse/internal/state"
	"github.com/genpozi/poziverse/internal/workspace"
)

// inputMode selects which handler receives key presses.
type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modeConfirmDelete
	modeNewProject
	modeForm
)

// pendingDelete is the entity awaiting delete confirmation.
type pendingDelete struct {
	target workspace.Target
	domain workspace.Domain
	id     string
	title  string
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Logger      *zap.Logger
	Layout      config.Layout
	ThemeName   string
	PrefsPath   string
	RefreshTick time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	store       *state.Store
	logger      *zap.Logger
	layout      config.Layout
	prefsPath   string
	refreshTick time.Duration
	keys        keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Workspace registers
	ws    workspace.State
	views map[workspace.Target]contentView

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time
	lastError   string

	// Per-target list state
	cursor  map[workspace.Target]int
	queries map[workspace.Target]string

	// Prompts
	mode     inputMode
	search   textinput.Model
	prompt   textinput.Model
	pending  pendingDelete
	form     entityForm
	revealed map[string]bool

	// Output panel
	output     []string
	outputView viewport.Model

	// Help overlay
	showHelp bool
}

var emptyCatalog = &catalog.Catalog{}

// New creates a new Bubble Tea model and applies the store's current snapshot.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refreshTick := opts.RefreshTick
	if refreshTick <= 0 {
		refreshTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	layout := opts.Layout
	if layout == "" {
		layout = config.LayoutAuto
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	search.CharLimit = 64

	prompt := textinput.New()
	prompt.Prompt = "New project: "
	prompt.Placeholder = "title"
	prompt.CharLimit = 80

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		logger:      logger,
		layout:      layout,
		prefsPath:   prefsPath,
		refreshTick: refreshTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		ws:          workspace.New(layout != config.LayoutCompact),
		views:       newViewTable(),
		cursor:      make(map[workspace.Target]int),
		queries:     make(map[workspace.Target]string),
		search:      search,
		prompt:      prompt,
		revealed:    make(map[string]bool),
		outputView:  viewport.New(0, 0),
	}
	if m.store != nil {
		m.applySnapshot(m.store.Snapshot())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refreshTick)}
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
		m.ready = true
		m.dispatch(workspace.SetLayout{Desktop: m.desktopFor(msg.Width)})
		m.syncOutputView()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
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
	if m.mode == modeForm {
		return m.renderForm()
	}
	return m.renderMain()
}

// State returns the current workspace registers.
func (m Model) State() workspace.State {
	return m.ws
}

// desktopFor resolves the layout for a terminal width.
func (m Model) desktopFor(width int) bool {
	switch m.layout {
	case config.LayoutDesktop:
		return true
	case config.LayoutCompact:
		return false
	default:
		return width >= LayoutDesktopWidth
	}
}

// dispatch runs one workspace action through the reducer.
func (m *Model) dispatch(a workspace.Action) {
	m.ws = workspace.Reduce(m.ws, a)
}

// cat returns the catalog being displayed, never nil.
func (m Model) cat() *catalog.Catalog {
	if m.snapshot.Catalog == nil {
		return emptyCatalog
	}
	return m.snapshot.Catalog
}

// applySnapshot installs a new snapshot and drops a selection whose entity
// no longer exists.
func (m *Model) applySnapshot(snap state.Snapshot) {
	prevVersion := m.snapshot.Version
	m.snapshot = snap
	m.lastUpdated = time.Now()

	if snap.LastError != nil {
		if msg := snap.LastError.Error(); msg != m.lastError {
			m.lastError = msg
			m.logf("catalog reload failed: %s", msg)
		}
	} else {
		m.lastError = ""
	}

	if !snap.HasCatalog() || snap.Version == prevVersion {
		return
	}
	if prevVersion != 0 {
		m.logf("catalog updated (version %d)", snap.Version)
	}

	if sel := m.ws.Selection; !sel.Empty() && !m.exists(sel) {
		m.dispatch(workspace.Forget{Domain: sel.Domain, ID: sel.ID})
		m.logf("%s %s no longer exists; selection cleared", sel.Domain, sel.ID)
	}
	for id := range m.revealed {
		if _, ok := m.cat().Resource(id); !ok {
			delete(m.revealed, id)
		}
	}
}

// exists reports whether the selected entity is in the current catalog.
func (m Model) exists(sel workspace.Selection) bool {
	cat := m.cat()
	var ok bool
	switch sel.Domain {
	case workspace.DomainProject:
		_, ok = cat.Project(sel.ID)
	case workspace.DomainLaunchpad:
		_, ok = cat.LaunchpadItem(sel.ID)
	case workspace.DomainUser:
		_, ok = cat.User(sel.ID)
	case workspace.DomainResource:
		_, ok = cat.Resource(sel.ID)
	default:
		ok = true
	}
	return ok
}

// logf appends a timestamped line to the output panel and the debug log.
func (m *Model) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	m.logger.Debug("workspace event", zap.String("event", line))
	m.output = append(m.output, time.Now().Format("15:04:05")+"  "+line)
	if extra := len(m.output) - OutputBufferLimit; extra > 0 {
		m.output = append([]string(nil), m.output[extra:]...)
	}
	m.syncOutputView()
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctx.Err() != nil {
		return m, tea.Quit
	}
	cmds := []tea.Cmd{tickCmd(m.refreshTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
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
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a catalog store")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
