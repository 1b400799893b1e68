package stats

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesNestedDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestRecordRunAggregates(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		result Result
		turns  int
	}{
		{ResultDefeat, 14},
		{ResultVictory, 30},
		{ResultVictory, 22},
		{ResultQuit, 5},
	}
	for _, r := range runs {
		if _, err := store.RecordRun("normal", r.result, r.turns); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	sum, err := store.Summary("normal")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}

	if sum.Runs != 4 {
		t.Errorf("Expected 4 runs, got %d", sum.Runs)
	}
	if sum.Wins != 2 {
		t.Errorf("Expected 2 wins, got %d", sum.Wins)
	}
	if sum.Defeats != 1 {
		t.Errorf("Expected 1 defeat, got %d", sum.Defeats)
	}
	if sum.Quits != 1 {
		t.Errorf("Expected 1 quit, got %d", sum.Quits)
	}
	if !sum.HasBest || sum.BestTurns != 22 {
		t.Errorf("Expected best of 22 turns, got %d (has=%v)", sum.BestTurns, sum.HasBest)
	}
}

func TestRecordRunReportsNewBest(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.RecordRun("easy", ResultVictory, 30)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if !rec.NewBest {
		t.Error("First victory should be a new best")
	}

	rec, _ = store.RecordRun("easy", ResultVictory, 25)
	if !rec.NewBest {
		t.Error("Faster victory should be a new best")
	}

	rec, _ = store.RecordRun("easy", ResultVictory, 28)
	if rec.NewBest {
		t.Error("Slower victory should not be a new best")
	}

	rec, _ = store.RecordRun("easy", ResultDefeat, 3)
	if rec.NewBest {
		t.Error("Defeat should never be a new best")
	}
}

func TestStreaksResetOnLoss(t *testing.T) {
	store := openTestStore(t)

	seq := []Result{ResultVictory, ResultVictory, ResultDefeat, ResultVictory}
	for _, r := range seq {
		if _, err := store.RecordRun("hard", r, 10); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	sum, err := store.Summary("hard")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.WinStreak != 1 {
		t.Errorf("Expected current streak of 1, got %d", sum.WinStreak)
	}
	if sum.BestStreak != 2 {
		t.Errorf("Expected best streak of 2, got %d", sum.BestStreak)
	}

	// Quitting breaks the streak just like a defeat
	store.RecordRun("hard", ResultQuit, 2)
	sum, _ = store.Summary("hard")
	if sum.WinStreak != 0 {
		t.Errorf("Expected streak reset after quit, got %d", sum.WinStreak)
	}
	if sum.BestStreak != 2 {
		t.Errorf("Best streak should survive the quit, got %d", sum.BestStreak)
	}
}

func TestRecordRunReturnsStreaks(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("normal", ResultVictory, 20)
	store.RecordRun("normal", ResultVictory, 19)
	rec, err := store.RecordRun("normal", ResultVictory, 18)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	if rec.WinStreak != 3 {
		t.Errorf("Expected streak of 3, got %d", rec.WinStreak)
	}
	if rec.BestStreak != 3 {
		t.Errorf("Expected best streak of 3, got %d", rec.BestStreak)
	}
}

func TestSummaryEmptyDifficulty(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary("normal")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}

	if sum.Runs != 0 || sum.Wins != 0 || sum.Defeats != 0 || sum.Quits != 0 {
		t.Errorf("Expected zeroed summary, got %+v", sum)
	}
	if sum.HasBest {
		t.Error("Empty difficulty should not report a best")
	}
}

func TestSummaryKeepsDifficultiesApart(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("easy", ResultVictory, 12)
	store.RecordRun("hard", ResultDefeat, 7)

	easy, err := store.Summary("easy")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if easy.Runs != 1 || easy.Wins != 1 {
		t.Errorf("Easy should only count its own runs, got %+v", easy)
	}

	hard, _ := store.Summary("hard")
	if hard.Runs != 1 || hard.Defeats != 1 || hard.Wins != 0 {
		t.Errorf("Hard should only count its own runs, got %+v", hard)
	}
}

func TestSummariesPreserveOrder(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("normal", ResultVictory, 15)

	sums, err := store.Summaries("easy", "normal", "hard")
	if err != nil {
		t.Fatalf("Summaries() failed: %v", err)
	}

	if len(sums) != 3 {
		t.Fatalf("Expected 3 summaries, got %d", len(sums))
	}
	if sums[0].Difficulty != "easy" || sums[1].Difficulty != "normal" || sums[2].Difficulty != "hard" {
		t.Errorf("Summaries out of order: %v %v %v",
			sums[0].Difficulty, sums[1].Difficulty, sums[2].Difficulty)
	}
	if sums[1].Wins != 1 {
		t.Errorf("Expected 1 win on normal, got %d", sums[1].Wins)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("easy", ResultDefeat, 4)
	store.RecordRun("normal", ResultVictory, 21)
	store.RecordRun("hard", ResultQuit, 9)

	entries, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries with limit, got %d", len(entries))
	}
	if entries[0].Difficulty != "hard" || entries[0].Result != ResultQuit {
		t.Errorf("Expected latest run first, got %+v", entries[0])
	}
	if entries[1].Difficulty != "normal" {
		t.Errorf("Expected second-latest run next, got %+v", entries[1])
	}
}

func TestSummaryLineFormat(t *testing.T) {
	sum := Summary{
		Difficulty: "normal",
		Runs:       12,
		Wins:       7,
		BestTurns:  23,
		HasBest:    true,
		WinStreak:  2,
		BestStreak: 4,
	}

	want := "runs 12, wins 7 (58% rate), best 23 turns, streak 2 (best 4)"
	if got := sum.Line(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	empty := Summary{Difficulty: "easy"}
	want = "runs 0, wins 0 (0% rate), best n/a turns, streak 0 (best 0)"
	if got := empty.Line(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
