package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/herrkaefer/signal-vault-game/internal/audio"
	"github.com/herrkaefer/signal-vault-game/internal/config"
	"github.com/herrkaefer/signal-vault-game/internal/feed"
	"github.com/herrkaefer/signal-vault-game/internal/stats"
)

// SessionModel manages the full session flow: menu -> run -> menu, with
// the stats board reachable from both. This is the top-level model for
// interactive local play and for SSH sessions.
type SessionModel struct {
	base           config.Config
	store          *stats.Store
	sound          *audio.Engine
	events         *feed.Server
	cfg            RunConfig
	seedUsed       bool
	lastDifficulty string
	lastPersona    string
	menu           MenuModel
	gameModel      *GameModel
	board          *ScoreboardModel
	inGame         bool
	inStats        bool
	quitting       bool
}

// NewSessionModel creates a session starting at the menu, with the
// cursors preset from the configured defaults.
func NewSessionModel(base config.Config, store *stats.Store, sound *audio.Engine, events *feed.Server, cfg RunConfig) SessionModel {
	return SessionModel{
		base:           base,
		store:          store,
		sound:          sound,
		events:         events,
		cfg:            cfg,
		lastDifficulty: base.Game.Difficulty,
		lastPersona:    base.Narrator.Persona,
		menu:           NewMenuModel(store, base.Game.Difficulty, base.Narrator.Persona, cfg.Width, cfg.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so every screen change starts current.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Width = wsm.Width
		m.cfg.Height = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	if m.inStats && m.board != nil {
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsStats() {
		board := NewScoreboardModel(m.store, m.cfg.Width, m.cfg.Height)
		m.board = &board
		m.inStats = true
		return m, m.board.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		diff := selected.Difficulty
		// Config overrides may retune the preset the menu showed.
		if tuned, err := m.base.Difficulty(diff.Name); err == nil {
			diff = tuned
		}

		gameModel, err := NewGameModel(diff, selected.Persona, m.store, m.sound, m.events, m.runConfig())
		if err != nil {
			// No walkable board with these parameters; stay in the menu.
			m.menu = m.freshMenu()
			return m, nil
		}

		m.gameModel = &gameModel
		m.inGame = true
		m.lastDifficulty = diff.Name
		m.lastPersona = selected.Persona.Key
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when a run is on screen.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.lastPersona = m.gameModel.Persona().Key
		m.inGame = false
		m.gameModel = nil
		m.menu = m.freshMenu()
		return m, m.menu.Init()
	}

	if m.gameModel.WantsStats() {
		m.lastPersona = m.gameModel.Persona().Key
		m.inGame = false
		m.gameModel = nil
		board := NewScoreboardModel(m.store, m.cfg.Width, m.cfg.Height)
		m.board = &board
		m.inStats = true
		return m, m.board.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateStats handles updates when the stats board is on screen.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if board, ok := newModel.(ScoreboardModel); ok {
		m.board = &board
	}

	if m.board.IsGoingBack() {
		m.inStats = false
		m.board = nil
		m.menu = m.freshMenu()
		return m, m.menu.Init()
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// runConfig builds the per-run config. An explicit session seed applies
// to the first run only; later runs roll fresh boards.
func (m *SessionModel) runConfig() RunConfig {
	cfg := RunConfig{Width: m.cfg.Width, Height: m.cfg.Height}
	if !m.seedUsed {
		cfg.Seed = m.cfg.Seed
		m.seedUsed = true
	}
	return cfg
}

// freshMenu rebuilds the menu with the cursors on the last-used picks.
func (m SessionModel) freshMenu() MenuModel {
	return NewMenuModel(m.store, m.lastDifficulty, m.lastPersona, m.cfg.Width, m.cfg.Height)
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}
	if m.inStats && m.board != nil {
		return m.board.View()
	}
	return m.menu.View()
}

// RunSession starts the full interactive session program: difficulty and
// narrator pickers, runs, and the stats board.
func RunSession(base config.Config, store *stats.Store, sound *audio.Engine, events *feed.Server, cfg RunConfig) error {
	p := tea.NewProgram(
		NewSessionModel(base, store, sound, events, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
