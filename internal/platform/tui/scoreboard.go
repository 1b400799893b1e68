package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/herrkaefer/signal-vault-game/internal/game"
	"github.com/herrkaefer/signal-vault-game/internal/stats"
)

// maxRecentRuns caps how much run history the board loads.
const maxRecentRuns = 100

// ScoreboardKeyMap defines the key bindings for the stats board.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "summary/history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the stats board. It shows
// the lifetime record per difficulty, and the recent run history when
// toggled with tab.
type ScoreboardModel struct {
	store       *stats.Store
	summaries   []stats.Summary
	recent      []stats.RunEntry
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	showHistory bool
	quitting    bool
	goingBack   bool
}

// NewScoreboardModel creates a new stats board model.
func NewScoreboardModel(store *stats.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}

	m.loadData()
	m.table = m.createTable()
	m.updateTableRows()

	return m
}

// loadData pulls both views from the store up front; the board is small.
func (m *ScoreboardModel) loadData() {
	if m.store == nil {
		return
	}

	diffs := game.Difficulties()
	names := make([]string, len(diffs))
	for i, d := range diffs {
		names[i] = d.Name
	}

	if summaries, err := m.store.Summaries(names...); err == nil {
		m.summaries = summaries
	}
	if recent, err := m.store.RecentRuns(maxRecentRuns); err == nil {
		m.recent = recent
	}
}

// createTable creates a table with the active view's columns.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	if m.showHistory {
		columns = []table.Column{
			{Title: "When", Width: 14},
			{Title: "Difficulty", Width: 12},
			{Title: "Result", Width: 9},
			{Title: "Turns", Width: 7},
		}
	} else {
		columns = []table.Column{
			{Title: "Difficulty", Width: 12},
			{Title: "Runs", Width: 6},
			{Title: "Wins", Width: 6},
			{Title: "Win %", Width: 7},
			{Title: "Best", Width: 6},
			{Title: "Streak", Width: 8},
			{Title: "Top streak", Width: 11},
		}
	}

	height := m.height - 8 // Leave room for title, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the active view.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row

	if m.showHistory {
		rows = make([]table.Row, len(m.recent))
		for i, r := range m.recent {
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				difficultyLabel(r.Difficulty),
				string(r.Result),
				fmt.Sprintf("%d", r.Turns),
			}
		}
	} else {
		rows = make([]table.Row, len(m.summaries))
		for i, s := range m.summaries {
			rate := 0.0
			if s.Runs > 0 {
				rate = float64(s.Wins) / float64(s.Runs) * 100
			}
			best := "n/a"
			if s.HasBest {
				best = fmt.Sprintf("%d", s.BestTurns)
			}
			rows[i] = table.Row{
				difficultyLabel(s.Difficulty),
				fmt.Sprintf("%d", s.Runs),
				fmt.Sprintf("%d", s.Wins),
				fmt.Sprintf("%.0f%%", rate),
				best,
				fmt.Sprintf("%d", s.WinStreak),
				fmt.Sprintf("%d", s.BestStreak),
			}
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// difficultyLabel maps a stored difficulty name to its display label.
func difficultyLabel(name string) string {
	if d, ok := game.DifficultyByName(name); ok {
		return d.Label
	}
	return name
}

// Init initializes the stats board model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats board.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.showHistory = !m.showHistory
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats board.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	boardTitleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "VAULT RECORDS - Lifetime"
	if m.showHistory {
		title = "VAULT RECORDS - Recent runs"
	}

	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or the empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := m.store == nil ||
		(m.showHistory && len(m.recent) == 0) ||
		(!m.showHistory && len(m.summaries) == 0)
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to put it on the board!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the stats board as a standalone screen.
// Returns true if user backed out rather than quitting.
func RunScoreboard(store *stats.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
