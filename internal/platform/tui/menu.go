package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/herrkaefer/signal-vault-game/internal/game"
	"github.com/herrkaefer/signal-vault-game/internal/narrator"
	"github.com/herrkaefer/signal-vault-game/internal/stats"
)

// difficultyBlurbs are the one-line descriptions shown next to each preset.
var difficultyBlurbs = map[string]string{
	"easy":   "Compact map, extra health, single drone.",
	"normal": "Original balance: 2 drones, moderate hazards.",
	"hard":   "Bigger map, more walls and traps, extra drone.",
}

// menuStage tracks which picker the menu is currently showing.
type menuStage int

const (
	stageDifficulty menuStage = iota
	stagePersona
)

// MenuSelection holds the user's picks from the menu.
type MenuSelection struct {
	Difficulty game.Difficulty
	Persona    narrator.Persona
}

// MenuModel is the Bubble Tea model for the run setup menu: first the
// difficulty picker, then the narrator picker.
type MenuModel struct {
	stage         menuStage
	diffs         []game.Difficulty
	personas      []narrator.Persona
	diffCursor    int
	personaCursor int
	store         *stats.Store
	statsLines    map[string]string
	width         int
	height        int
	keyMapper     *KeyMapper
	quitting      bool
	wantsStats    bool
	selection     *MenuSelection
}

// NewMenuModel creates a menu with the cursors preset to the configured
// default difficulty and persona.
func NewMenuModel(store *stats.Store, defaultDifficulty, defaultPersona string, width, height int) MenuModel {
	m := MenuModel{
		stage:      stageDifficulty,
		diffs:      game.Difficulties(),
		personas:   narrator.Personas(),
		store:      store,
		statsLines: make(map[string]string),
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
	}

	for i, d := range m.diffs {
		if d.Name == defaultDifficulty {
			m.diffCursor = i
		}
	}
	for i, p := range m.personas {
		if p.Key == defaultPersona {
			m.personaCursor = i
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.stage == stagePersona {
		return m.handlePersonaKey(action)
	}
	return m.handleDifficultyKey(action)
}

func (m MenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}

	case MenuActionDown:
		if m.diffCursor < len(m.diffs)-1 {
			m.diffCursor++
		}

	case MenuActionSelect:
		m.stage = stagePersona

	case MenuActionStats:
		m.wantsStats = true
		return m, tea.Quit // Exit menu to show the stats board
	}

	return m, nil
}

func (m MenuModel) handlePersonaKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.personaCursor > 0 {
			m.personaCursor--
		}

	case MenuActionDown:
		if m.personaCursor < len(m.personas)-1 {
			m.personaCursor++
		}

	case MenuActionSelect:
		m.selection = &MenuSelection{
			Difficulty: m.diffs[m.diffCursor],
			Persona:    m.personas[m.personaCursor],
		}
		return m, tea.Quit // Exit menu to start the run

	case MenuActionBack:
		m.stage = stageDifficulty
	}

	return m, nil
}

// View renders the current menu stage.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.stage == stagePersona {
		return m.viewPersona()
	}
	return m.viewDifficulty()
}

func (m MenuModel) viewDifficulty() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("S I G N A L   V A U L T", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Slip through the vault, dodge the drones, reach the exit.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your vault run:", m.width))
	b.WriteString("\n\n")

	for i, d := range m.diffs {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-8s %s", cursor, d.Label, difficultyBlurbs[d.Name])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hovered := m.diffs[m.diffCursor]
	b.WriteString(headerStyle.Render(centerText(
		fmt.Sprintf("Stats [%s]: %s", hovered.Label, m.statsLine(hovered.Name)), m.width)))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Stats  |  Q: Quit"
	b.WriteString(faintStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewPersona() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("S I G N A L   V A U L T", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your narrator:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.personas {
		cursor := "  "
		if i == m.personaCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-28s %s", cursor, p.Label, p.Style)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Enter: Start run  |  Esc: Back  |  Q: Quit"
	b.WriteString(faintStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// statsLine returns the cached lifetime summary line for a difficulty.
func (m MenuModel) statsLine(name string) string {
	if line, ok := m.statsLines[name]; ok {
		return line
	}

	line := "No data yet."
	if m.store != nil {
		if summary, err := m.store.Summary(name); err == nil && summary.Runs > 0 {
			line = summary.Line()
		}
	}
	m.statsLines[name] = line
	return line
}

// Selected returns the completed selection, or nil while still choosing.
func (m MenuModel) Selected() *MenuSelection {
	return m.selection
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the stats board.
func (m MenuModel) WantsStats() bool {
	return m.wantsStats
}
