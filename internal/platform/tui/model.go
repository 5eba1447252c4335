package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfaller/internal/core"
	"github.com/vovakirdan/skyfaller/internal/games/skyfaller"
	"github.com/vovakirdan/skyfaller/internal/storage"
)

// Options tune a terminal session.
type Options struct {
	Player     string      // Name recorded with finished runs
	Difficulty string      // Preset name recorded with finished runs
	HoldTicks  int         // Held-key window, 0 for DefaultHoldTicks
	Logger     *log.Logger // nil discards
}

// Model is the Bubble Tea model for running Skyfaller.
type Model struct {
	game       *skyfaller.Game
	screen     *core.Screen
	renderer   *CubeRenderer
	store      *storage.Store
	keys       *KeyMapper
	held       *HeldKeys
	logger     *log.Logger
	config     core.RuntimeConfig
	opts       Options
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool // Back was requested on a finished or paused game
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *skyfaller.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:       game,
		screen:     screen,
		renderer:   NewCubeRenderer(screen),
		store:      store,
		keys:       NewKeyMapper(),
		held:       NewHeldKeys(opts.HoldTicks),
		logger:     logger,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsSteering(action):
		m.held.Press(action)
	case action == core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.back = true
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The session keeps running; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a fresh session with a new seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.back = false
	m.held.Reset()
	m.inputFrame.Clear()
}

// saveRun records the finished run. A failing store never stops play.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	s := m.game.Session()
	run := storage.Run{
		Player:     m.opts.Player,
		Score:      m.gameState.Score,
		Elapsed:    s.Elapsed(),
		Hits:       s.Hits(),
		Seed:       s.Seed(),
		Difficulty: m.opts.Difficulty,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "player", run.Player, "score", run.Score)
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".skyfaller", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	m.renderer.Begin()
	m.game.Render(m.renderer)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if the user asked to leave a finished or paused game.
func (m Model) WantsBack() bool {
	return m.back
}

// ClearBack acknowledges a back request.
func (m *Model) ClearBack() {
	m.back = false
}

// Run plays the game in the current terminal until the user quits.
func Run(game *skyfaller.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewSessionModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
