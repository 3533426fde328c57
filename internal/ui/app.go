package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atalayahq/atalaya/internal/display"
	"github.com/atalayahq/atalaya/internal/prefs"
	"github.com/atalayahq/atalaya/internal/scanner"
	"github.com/atalayahq/atalaya/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *scanner.Client
	Store     *state.Store
	PollTick  time.Duration // snapshot refresh cadence; zero means one second
	ThemeName string
	Filter    string // persisted filter encoding ("darwinex" or a threshold)
	PrefsPath string
	LogPath   string // diagnostic log read by the log overlay
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *scanner.Client
	store     *state.Store
	prefsPath string
	uiTick    time.Duration

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool

	// Poll state
	snapshot    state.Snapshot
	lastUpdated time.Time
	spin        spinner.Model

	// Grid state
	results       []scanner.StockSummary
	opportunities int
	selectedRow   int
	gridOffset    int
	scanSeq       uint64
	scanLoading   bool

	// Filter state
	filter          scanFilter
	showFilterInput bool
	filterInput     textinput.Model
	filterErr       string

	// Detail modal
	modal modalState

	// Help overlay
	showHelp bool

	// Diagnostic log overlay
	showLogs bool
	logPath  string
	logLines []string
	logErr   error

	// Transient header notice
	notice      string
	noticeUntil time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	uiTick := opts.PollTick
	if uiTick == 0 {
		uiTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot

	input := textinput.New()
	input.Placeholder = "0-100"
	input.CharLimit = 3
	input.Width = 12

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		prefsPath:   prefsPath,
		uiTick:      uiTick,
		keys:        defaultKeyMap(),
		theme:       GetTheme(themeName),
		spin:        spin,
		filter:      parseFilter(opts.Filter),
		filterInput: input,
		logPath:     opts.LogPath,
		scanSeq:     1,
		scanLoading: opts.Client != nil,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.uiTick),
		m.spin.Tick,
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	// First scan with the persisted filter; seq 1 is already claimed by
	// the model so a late arrival after a filter change is discarded.
	if m.client != nil {
		cmds = append(cmds, fetchScanCmd(m.client, m.scanSeq, m.filter))
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
		m.ready = true
		m.ensureVisible()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case spinner.TickMsg:
		if !m.spinnerActive() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scanLoadedMsg:
		return m.handleScanLoaded(msg)

	case analysisLoadedMsg:
		return m.handleAnalysisLoaded(msg)

	case logLinesMsg:
		if !m.showLogs {
			return m, nil
		}
		m.logLines = msg.lines
		m.logErr = msg.err
		return m, nil

	case updateAckMsg:
		if msg.err != nil {
			m.setNotice("Actualización fallida (" + classifyConnectionError(msg.err) + ")")
		} else {
			m.setNotice(msg.message)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Iniciando..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showLogs {
		return m.overlay(m.renderLogsBox())
	}

	if m.showFilterInput {
		return m.overlay(m.renderFilterBox())
	}

	if m.modal.open {
		return m.overlay(m.renderModalBox())
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	if m.showFilterInput {
		return m.handleFilterInputKey(msg)
	}

	if m.modal.open {
		return m.handleModalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.persistPrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		cmd := m.handleFilterChange(m.filter.next())
		return m, cmd

	case key.Matches(msg, m.keys.CustomFilter):
		m.openFilterPrompt()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Rescan):
		cmd := m.handleRefreshRequested()
		return m, cmd

	case key.Matches(msg, m.keys.UpdateDB):
		if m.client == nil {
			return m, nil
		}
		return m, triggerUpdateCmd(m.client)

	case key.Matches(msg, m.keys.Logs):
		cmd := m.openLogs()
		return m, cmd

	case key.Matches(msg, m.keys.Open):
		if len(m.results) == 0 {
			return m, nil
		}
		cmd := m.handleCardSelect(m.selectedRow)
		return m, cmd

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(m.results)-1 {
			m.selectedRow++
		}
		m.ensureVisible()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		m.ensureVisible()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		m.ensureVisible()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if len(m.results) > 0 {
			m.selectedRow = len(m.results) - 1
		}
		m.ensureVisible()
		return m, nil
	}

	return m, nil
}

// handleMouse processes mouse input. Only left-button presses matter:
// rows select and open, modal backdrops dismiss.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		if !m.insideBox(m.renderLogsBox(), msg.X, msg.Y) {
			m.showLogs = false
		}
		return m, nil
	}

	if m.showFilterInput {
		if !m.insideBox(m.renderFilterBox(), msg.X, msg.Y) {
			m.closeFilterPrompt()
		}
		return m, nil
	}

	if m.modal.open {
		if !m.insideBox(m.renderModalBox(), msg.X, msg.Y) {
			m.handleModalDismissed()
		}
		return m, nil
	}

	if row, ok := m.rowAt(msg.Y); ok {
		cmd := m.handleCardSelect(row)
		return m, cmd
	}
	return m, nil
}

// handleTick refreshes the poll snapshot and expires stale notices.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.uiTick)}

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Re-arm the spinner in case its frame chain ended while inactive
	if m.spinnerActive() {
		cmds = append(cmds, m.spin.Tick)
	}

	// Live-tail the diagnostic log while its overlay is open
	if m.showLogs {
		cmds = append(cmds, readLogCmd(m.logPath))
	}

	if m.notice != "" && time.Now().After(m.noticeUntil) {
		m.notice = ""
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleScanLoaded(msg scanLoadedMsg) (tea.Model, tea.Cmd) {
	// A response for a superseded request; the newer one owns the grid.
	if msg.seq != m.scanSeq {
		return m, nil
	}
	m.scanLoading = false
	if msg.err != nil {
		m.setNotice("Escaneo fallido (" + classifyConnectionError(msg.err) + ")")
		return m, nil
	}
	m.results = msg.results
	m.opportunities = display.CountOpportunities(msg.results)
	if m.selectedRow >= len(m.results) {
		m.selectedRow = len(m.results) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	m.ensureVisible()
	return m, nil
}

func (m Model) handleAnalysisLoaded(msg analysisLoadedMsg) (tea.Model, tea.Cmd) {
	// Arrivals for a symbol other than the open one are stale.
	if !m.modal.open || msg.symbol != m.modal.symbol {
		return m, nil
	}
	if msg.err != nil {
		m.modal.phase = modalFailed
		m.modal.err = msg.err
		return m, nil
	}
	m.modal.phase = modalPopulated
	m.modal.detail = display.Detail(*msg.analysis)
	return m, nil
}

// Named event handlers. The key and mouse dispatchers route through
// these so bindings stay decoupled from component logic.

// handleFilterChange applies a new scan filter, persists it, and
// refetches the grid.
func (m *Model) handleFilterChange(next scanFilter) tea.Cmd {
	m.filter = next
	m.persistPrefs()
	return m.startScan()
}

// handleCardSelect selects a result row and opens its detail modal.
func (m *Model) handleCardSelect(row int) tea.Cmd {
	if row < 0 || row >= len(m.results) {
		return nil
	}
	m.selectedRow = row
	m.ensureVisible()
	symbol := m.results[row].Symbol
	m.modal = modalState{open: true, phase: modalLoading, symbol: symbol}
	if m.client == nil {
		return nil
	}
	return tea.Batch(m.spin.Tick, fetchAnalysisCmd(m.client, symbol))
}

// handleRefreshRequested refetches the scan under the current filter.
func (m *Model) handleRefreshRequested() tea.Cmd {
	return m.startScan()
}

// handleModalDismissed closes the detail modal.
func (m *Model) handleModalDismissed() {
	m.modal = modalState{}
}

// startScan claims a new request sequence and dispatches the fetch.
// Responses carrying an older sequence are dropped on arrival.
func (m *Model) startScan() tea.Cmd {
	if m.client == nil {
		return nil
	}
	m.scanSeq++
	m.scanLoading = true
	return tea.Batch(m.spin.Tick, fetchScanCmd(m.client, m.scanSeq, m.filter))
}

func (m *Model) persistPrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:  m.theme.Name,
		Filter: m.filter.encode(),
	})
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeUntil = time.Now().Add(noticeTTL)
}

// spinnerActive reports whether any spinner consumer is live: a scan in
// flight, a modal loading, or the backend worker mid-scan.
func (m Model) spinnerActive() bool {
	if m.scanLoading {
		return true
	}
	if m.modal.open && m.modal.phase == modalLoading {
		return true
	}
	return m.snapshot.HasStatus && m.snapshot.Status.Worker.IsRunning
}

// renderMain renders the full dashboard: status header, command bar and
// the result grid.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// scanLoadedMsg carries one scan result set tagged with the request
// sequence it answers.
type scanLoadedMsg struct {
	seq     uint64
	results []scanner.StockSummary
	err     error
}

// analysisLoadedMsg carries one full analysis record tagged with its
// symbol.
type analysisLoadedMsg struct {
	symbol   string
	analysis *scanner.StockAnalysis
	err      error
}

// updateAckMsg carries the backend's acknowledgement of an update-db
// request.
type updateAckMsg struct {
	message string
	err     error
}

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

// Fetch commands run on context.Background, not the app context: an
// in-flight request is never aborted by UI activity, it resolves or
// times out on its own.

func fetchScanCmd(client *scanner.Client, seq uint64, filter scanFilter) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.FetchScan(context.Background(), filter.request())
		if err != nil {
			return scanLoadedMsg{seq: seq, err: err}
		}
		return scanLoadedMsg{seq: seq, results: resp.Results}
	}
}

func fetchAnalysisCmd(client *scanner.Client, symbol string) tea.Cmd {
	return func() tea.Msg {
		analysis, err := client.FetchAnalysis(context.Background(), symbol)
		if err != nil {
			return analysisLoadedMsg{symbol: symbol, err: err}
		}
		return analysisLoadedMsg{symbol: symbol, analysis: analysis}
	}
}

func triggerUpdateCmd(client *scanner.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.TriggerUpdate(context.Background())
		if err != nil {
			return updateAckMsg{err: err}
		}
		return updateAckMsg{message: resp.Message}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
