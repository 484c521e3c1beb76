package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/folio/internal/logtail"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewWelcome View = iota
	ViewList
	ViewDetail
	ViewFavorites
	ViewLogs
)

// Controller is the view state the UI drives. *state.Session implements it.
type Controller interface {
	LoadAll(ctx context.Context) error
	LoadByID(ctx context.Context, id int) error
	ToggleFavorite(ctx context.Context, id int) error
	SetQuery(text string)
	SetCategory(genre string)
	SetFavoritesOnly(on bool)
	SetFavoritesQuery(text string)
	ClearError()
	Snapshot() state.Snapshot
	Subscribe(fn func(state.Snapshot)) func()
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Session   Controller
	LogPath   string
	ThemeName string
	Compact   bool
	PrefsPath string
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	session   Controller
	log       *slog.Logger
	logPath   string
	prefsPath string
	setters   *setters

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	view     View
	backTo   View
	width    int
	height   int
	ready    bool
	showHelp bool
	compact  bool

	// Data state
	snapshot state.Snapshot

	// List state
	cursor        int
	category      string
	favoritesOnly bool
	search        textinput.Model

	// Favorites state
	favCursor int
	favSearch textinput.Model

	// Detail state
	detailID       int
	detailViewport viewport.Model

	// Log state
	logViewport viewport.Model
	logLines    []logtail.Line
	logMinLevel slog.Level
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "title, author or genre"
	search.CharLimit = 64

	favSearch := textinput.New()
	favSearch.Prompt = "/ "
	favSearch.Placeholder = "search favorites"
	favSearch.CharLimit = 64

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctx:         ctx,
		session:     opts.Session,
		log:         log,
		logPath:     opts.LogPath,
		prefsPath:   prefsPath,
		setters:     newSetters(),
		theme:       GetTheme(opts.ThemeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     spin,
		view:        ViewWelcome,
		backTo:      ViewList,
		compact:     opts.Compact,
		search:      search,
		favSearch:   favSearch,
		logMinLevel: slog.LevelDebug,
	}
	m.applyTheme()
	if m.session != nil {
		m.snapshot = m.session.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		tickCmd(logRefreshInterval),
	}
	if m.session != nil {
		cmds = append(cmds, loadAllCmd(m.ctx, m.session))
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
		m.help.Width = msg.Width
		m.search.Width = max(10, msg.Width/2)
		m.favSearch.Width = max(10, msg.Width/2)
		m.resizeViewports()
		m.updateDetailViewport()
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(logRefreshInterval)}
		if m.view == ViewLogs {
			cmds = append(cmds, readLogsCmd(m.logPath))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.log.Debug("session call finished with error", "op", msg.op, "book_id", msg.id, "error", msg.err)
		}
		if m.session != nil {
			return m, snapshotCmd(m.session)
		}
		return m, nil

	case logLinesMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil

	case prefsSavedMsg:
		if msg.err != nil {
			m.log.Warn("save preferences failed", "error", msg.err)
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

// applySnapshot stores a new snapshot and keeps cursors and panes in range.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.cursor = clampCursor(m.cursor, len(snap.Display))
	m.favCursor = clampCursor(m.favCursor, len(snap.Favorites))
	m.updateDetailViewport()
}

// currentBook returns the book under the cursor of the active view.
func (m Model) currentBook() (int, bool) {
	switch m.view {
	case ViewList:
		if m.cursor < len(m.snapshot.Display) {
			return m.snapshot.Display[m.cursor].ID, true
		}
	case ViewFavorites:
		if m.favCursor < len(m.snapshot.Favorites) {
			return m.snapshot.Favorites[m.favCursor].ID, true
		}
	case ViewDetail:
		if m.detailID != 0 {
			return m.detailID, true
		}
	}
	return 0, false
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg, &m.search, "query", m.session.SetQuery)
	}
	if m.favSearch.Focused() {
		return m.handleSearchKey(msg, &m.favSearch, "favorites query", m.session.SetFavoritesQuery)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		return m, m.savePrefs()

	case key.Matches(msg, m.keys.Compact):
		m.compact = !m.compact
		return m, m.savePrefs()

	case key.Matches(msg, m.keys.ClearError):
		return m, clearErrorCmd(m.session)

	case key.Matches(msg, m.keys.Reload):
		return m, loadAllCmd(m.ctx, m.session)

	case key.Matches(msg, m.keys.ViewLogs):
		if m.view != ViewLogs {
			m.backTo = m.view
		}
		m.view = ViewLogs
		return m, readLogsCmd(m.logPath)

	case key.Matches(msg, m.keys.ViewFavorites):
		m.view = ViewFavorites
		return m, nil

	case key.Matches(msg, m.keys.Back):
		return m.handleBack()
	}

	switch m.view {
	case ViewWelcome:
		return m.handleWelcomeKey(msg)
	case ViewList:
		return m.handleListKey(msg)
	case ViewFavorites:
		return m.handleFavoritesKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}
	return m, nil
}

// handleSearchKey routes keys to a focused search box and pushes every edit
// to the session.
func (m Model) handleSearchKey(msg tea.KeyMsg, input *textinput.Model, field string, set func(string)) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input.Blur()
		return m, nil
	case tea.KeyEsc:
		input.Blur()
		input.SetValue("")
		return m, m.setters.cmd(m.session, field, func() { set("") })
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if value := input.Value(); value != before {
		return m, tea.Batch(cmd, m.setters.cmd(m.session, field, func() { set(value) }))
	}
	return m, cmd
}

// handleBack leaves the current view.
func (m Model) handleBack() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewDetail, ViewLogs:
		m.view = m.backTo
	case ViewFavorites:
		m.view = ViewList
	case ViewList:
		if m.search.Value() != "" {
			m.search.SetValue("")
			return m, m.setters.cmd(m.session, "query", func() { m.session.SetQuery("") })
		}
	}
	return m, nil
}

func (m Model) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Open) {
		m.view = ViewList
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextCategory), key.Matches(msg, m.keys.PrevCategory):
		step := 1
		if key.Matches(msg, m.keys.PrevCategory) {
			step = -1
		}
		m.category = cycleCategory(m.snapshot.Categories, m.category, step)
		m.cursor = 0
		genre := m.category
		return m, m.setters.cmd(m.session, "category", func() { m.session.SetCategory(genre) })

	case key.Matches(msg, m.keys.FavoritesOnly):
		m.favoritesOnly = !m.favoritesOnly
		m.cursor = 0
		on := m.favoritesOnly
		return m, m.setters.cmd(m.session, "favorites only", func() { m.session.SetFavoritesOnly(on) })

	case key.Matches(msg, m.keys.ToggleFavorite):
		if id, ok := m.currentBook(); ok {
			return m, toggleFavoriteCmd(m.ctx, m.session, id)
		}

	case key.Matches(msg, m.keys.Open):
		if id, ok := m.currentBook(); ok {
			return m.openDetail(id)
		}

	default:
		m.cursor = moveCursor(m.keys, msg, m.cursor, len(m.snapshot.Display), m.pageSize())
	}
	return m, nil
}

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.favSearch.Focus()

	case key.Matches(msg, m.keys.ToggleFavorite):
		if id, ok := m.currentBook(); ok {
			return m, toggleFavoriteCmd(m.ctx, m.session, id)
		}

	case key.Matches(msg, m.keys.Open):
		if id, ok := m.currentBook(); ok {
			return m.openDetail(id)
		}

	default:
		m.favCursor = moveCursor(m.keys, msg, m.favCursor, len(m.snapshot.Favorites), m.pageSize())
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ToggleFavorite) && m.detailID != 0 {
		return m, toggleFavoriteCmd(m.ctx, m.session, m.detailID)
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.CycleLevel) {
		m.logMinLevel = nextLogLevel(m.logMinLevel)
		m.updateLogViewport()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// openDetail switches to the detail view and loads book id.
func (m Model) openDetail(id int) (tea.Model, tea.Cmd) {
	m.backTo = m.view
	m.view = ViewDetail
	m.detailID = id
	m.updateDetailViewport()
	m.detailViewport.GotoTop()
	return m, loadBookCmd(m.ctx, m.session, id)
}

// savePrefs persists the theme and list density in the background.
func (m Model) savePrefs() tea.Cmd {
	path := m.prefsPath
	p := prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save(path, p)}
	}
}

// applyTheme restyles the bubbles that carry their own styles.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.Key
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.Key
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
	m.search.PromptStyle = styles.AccentText
	m.favSearch.PromptStyle = styles.AccentText
}

// Run starts the Bubble Tea program and feeds it session snapshots until the
// user quits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))

	if opts.Session != nil {
		unsubscribe := opts.Session.Subscribe(func(s state.Snapshot) {
			p.Send(snapshotMsg(s))
		})
		defer unsubscribe()
	}

	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		// Cancelled by a signal; not a UI failure.
		return nil
	}
	return err
}
