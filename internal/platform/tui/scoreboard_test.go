package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/herrkaefer/signal-vault-game/internal/stats"
)

func pressBoard(t *testing.T, m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(ScoreboardModel)
	if !ok {
		t.Fatalf("Expected ScoreboardModel from Update, got %T", updated)
	}
	return next
}

func newTestStore(t *testing.T) *stats.Store {
	t.Helper()
	store, err := stats.Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardEmptyWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	view := m.View()
	if !strings.Contains(view, "VAULT RECORDS - Lifetime") {
		t.Error("Expected lifetime title")
	}
	if !strings.Contains(view, "No runs recorded yet.") {
		t.Error("Expected empty-board message without a store")
	}
}

func TestScoreboardLoadsBothViews(t *testing.T) {
	store := newTestStore(t)
	mustRecord(t, store, "normal", stats.ResultVictory, 12)
	mustRecord(t, store, "normal", stats.ResultQuit, 3)
	mustRecord(t, store, "hard", stats.ResultDefeat, 7)

	m := NewScoreboardModel(store, 80, 30)

	if len(m.summaries) != 3 {
		t.Fatalf("Expected a summary per difficulty, got %d", len(m.summaries))
	}
	normal := m.summaries[1]
	if normal.Difficulty != "normal" || normal.Runs != 2 || normal.Wins != 1 {
		t.Errorf("Expected normal summary with 2 runs / 1 win, got %+v", normal)
	}
	if len(m.recent) != 3 {
		t.Errorf("Expected 3 recent runs, got %d", len(m.recent))
	}

	view := m.View()
	if !strings.Contains(view, "Normal") {
		t.Error("Expected difficulty label in the summary table")
	}
}

func TestScoreboardToggleHistory(t *testing.T) {
	store := newTestStore(t)
	mustRecord(t, store, "easy", stats.ResultVictory, 9)

	m := NewScoreboardModel(store, 80, 30)
	if got := len(m.table.Rows()); got != 3 {
		t.Fatalf("Expected 3 summary rows, got %d", got)
	}

	m = pressBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showHistory {
		t.Fatal("Expected tab to switch to the history view")
	}
	if got := len(m.table.Rows()); got != 1 {
		t.Errorf("Expected 1 history row, got %d", got)
	}
	if !strings.Contains(m.View(), "VAULT RECORDS - Recent runs") {
		t.Error("Expected history title after toggle")
	}

	m = pressBoard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showHistory {
		t.Error("Expected a second tab to switch back to the summary view")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := pressBoard(t, NewScoreboardModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() {
		t.Error("Expected esc to go back")
	}

	m = pressBoard(t, NewScoreboardModel(nil, 80, 24), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("Expected q to quit")
	}
}

func mustRecord(t *testing.T, store *stats.Store, difficulty string, result stats.Result, turns int) {
	t.Helper()
	if _, err := store.RecordRun(difficulty, result, turns); err != nil {
		t.Fatalf("RecordRun returned error: %v", err)
	}
}
