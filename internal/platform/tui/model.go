package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

// Game is the contract the model drives. Games contain pure logic with no
// Bubble Tea dependency; the model handles input mapping, timing and output.
type Game interface {
	// ID is used for screenshot names.
	ID() string
	Title() string

	// Reset starts a fresh session with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize relayouts for a new screen size without resetting play.
	Resize(w, h int)

	// Step advances the simulation by one fixed tick. Actions in the frame
	// arrive in the order the keys were pressed.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// ResultSaver persists finished games. *storage.Store implements it.
type ResultSaver interface {
	SaveGame(rec storage.GameRecord) (storage.GameRecord, error)
}

// Options configures a game session.
type Options struct {
	Keys   KeyMap
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      ResultSaver
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	saved      int // games written to the store this session
	quitting   bool
	goingBack  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case results are not recorded.
func NewModel(game Game, store ResultSaver, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := opts.Keys
	if len(keys.Start.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		keys:       keys,
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())

	// Reset here rather than in Init: Init has a value receiver and the
	// first View may run before the first tick.
	m.config.ScreenH = m.gameHeight()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == config.ScreenshotKey:
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.goingBack = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize relayouts without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

func (m *Model) relayout() {
	h := m.gameHeight()
	m.config.ScreenW = m.width
	m.config.ScreenH = h
	m.screen.Resize(m.width, h)
	m.game.Resize(m.width, h)
}

// gameHeight is the terminal height minus the help footer.
func (m Model) gameHeight() int {
	footer := 1
	if m.help.ShowAll {
		footer = len(m.keys.FullHelp()[0])
	}
	return core.Max(m.height-footer, 0)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Type == core.EventGameOver {
			m.recordGame(ev)
		}
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordGame saves a finished game. Failures are logged and play continues.
func (m *Model) recordGame(ev core.Event) {
	if m.store == nil {
		return
	}
	rec, err := m.store.SaveGame(storage.GameRecord{
		Score:    ev.Score,
		Reason:   ev.Reason,
		Duration: ev.Duration,
	})
	if err != nil {
		m.logger.Warn("cannot save game", "error", err)
		return
	}
	m.saved++
	m.logger.Debug("game saved", "record", rec.RecordID, "score", rec.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".simon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Saved returns how many games were recorded this session.
func (m Model) Saved() int {
	return m.saved
}

// IsGoingBack returns true if the user asked to return to the menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// RunResult tells the caller how a session ended.
type RunResult struct {
	Config core.RuntimeConfig // last screen size
	Back   bool               // back to menu rather than quit
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, store ResultSaver, cfg core.RuntimeConfig, opts Options) (RunResult, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{Config: cfg}, nil
	}

	out := m.config
	out.ScreenH = m.height
	return RunResult{Config: out, Back: m.IsGoingBack()}, nil
}
