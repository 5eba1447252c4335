package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfaller/internal/core"
	"github.com/vovakirdan/skyfaller/internal/games/skyfaller"
	"github.com/vovakirdan/skyfaller/internal/storage"
)

// SessionModel is the top-level model for one player: the game, plus the
// scoreboard opened with Tab or B once the game is over or paused.
type SessionModel struct {
	game     Model
	board    *ScoreboardModel
	store    *storage.Store
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session for a single game.
func NewSessionModel(game *skyfaller.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		game:   NewModel(game, store, cfg, opts),
		store:  store,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the game or the scoreboard.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.board != nil {
			m.updateBoard(msg)
		}
		return m.updateGame(msg)

	case TickMsg:
		// The game keeps ticking behind the scoreboard; it is paused or over.
		return m.updateGame(msg)
	}

	if m.board != nil {
		cmd := m.updateBoard(msg)
		if m.board.IsQuitting() {
			m.quitting = true
			return m, tea.Quit
		}
		if m.board.IsGoingBack() {
			m.board = nil
		}
		return m, cmd
	}

	model, cmd := m.updateGame(msg)
	m = model.(SessionModel)
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.WantsBack() {
		m.game.ClearBack()
		board := NewScoreboardModel(m.store, m.width, m.height)
		m.board = &board
	}
	return m, cmd
}

func (m *SessionModel) updateBoard(msg tea.Msg) tea.Cmd {
	newBoard, cmd := m.board.Update(msg)
	if b, ok := newBoard.(ScoreboardModel); ok {
		m.board = &b
	}
	return cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := m.game.Update(msg)
	if g, ok := newGame.(Model); ok {
		m.game = g
	}
	return m, cmd
}

// View renders whichever screen is active.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	return m.game.View()
}

// InScoreboard reports whether the scoreboard is showing.
func (m SessionModel) InScoreboard() bool {
	return m.board != nil
}
