// Package stats persists per-difficulty lifetime records in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Result is how a run ended.
type Result string

const (
	ResultVictory Result = "victory"
	ResultDefeat  Result = "defeat"
	ResultQuit    Result = "quit"
)

// RunEntry is one recorded run.
type RunEntry struct {
	ID         int64
	Difficulty string
	Result     Result
	Turns      int
	CreatedAt  time.Time
}

// Summary aggregates a difficulty's lifetime record. Streaks follow the
// insertion order of runs: every victory extends the current streak,
// any defeat or quit resets it.
type Summary struct {
	Difficulty string
	Runs       int
	Wins       int
	Defeats    int
	Quits      int
	BestTurns  int // fastest victory; meaningful only when HasBest
	HasBest    bool
	WinStreak  int
	BestStreak int
}

// Line renders the one-line summary used by the end-of-run screen.
func (s Summary) Line() string {
	rate := 0.0
	if s.Runs > 0 {
		rate = float64(s.Wins) / float64(s.Runs) * 100
	}
	best := "n/a"
	if s.HasBest {
		best = fmt.Sprintf("%d", s.BestTurns)
	}
	return fmt.Sprintf("runs %d, wins %d (%.0f%% rate), best %s turns, streak %d (best %d)",
		s.Runs, s.Wins, rate, best, s.WinStreak, s.BestStreak)
}

// RunRecord reports what recording a run changed, for the end-of-run
// narration.
type RunRecord struct {
	NewBest    bool
	WinStreak  int
	BestStreak int
}

// Store manages the SQLite database holding run history.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("stats: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("stats: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("stats: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("stats: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("stats: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			result TEXT NOT NULL,
			turns INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty);
		CREATE INDEX IF NOT EXISTS idx_runs_victories ON runs(difficulty, result, turns);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun appends a finished run and reports the updated streaks and
// whether a victory set a new fastest-turns record.
func (s *Store) RecordRun(difficulty string, result Result, turns int) (RunRecord, error) {
	var prevBest sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MIN(turns) FROM runs WHERE difficulty = ? AND result = ?`,
		difficulty, ResultVictory,
	).Scan(&prevBest)
	if err != nil {
		return RunRecord{}, fmt.Errorf("stats: cannot query best turns: %w", err)
	}

	if _, err := s.db.Exec(
		"INSERT INTO runs (difficulty, result, turns) VALUES (?, ?, ?)",
		difficulty, result, turns,
	); err != nil {
		return RunRecord{}, fmt.Errorf("stats: cannot record run: %w", err)
	}

	summary, err := s.Summary(difficulty)
	if err != nil {
		return RunRecord{}, err
	}

	newBest := result == ResultVictory && (!prevBest.Valid || turns < int(prevBest.Int64))
	return RunRecord{
		NewBest:    newBest,
		WinStreak:  summary.WinStreak,
		BestStreak: summary.BestStreak,
	}, nil
}

// Summary aggregates the lifetime record for one difficulty.
func (s *Store) Summary(difficulty string) (Summary, error) {
	sum := Summary{Difficulty: difficulty}

	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN result = 'victory' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN result = 'defeat' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN result = 'quit' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN result = 'victory' THEN turns END)
		 FROM runs WHERE difficulty = ?`,
		difficulty,
	).Scan(&sum.Runs, &sum.Wins, &sum.Defeats, &sum.Quits, &best)
	if err != nil {
		return Summary{}, fmt.Errorf("stats: cannot aggregate runs: %w", err)
	}
	if best.Valid {
		sum.BestTurns = int(best.Int64)
		sum.HasBest = true
	}

	sum.WinStreak, sum.BestStreak, err = s.streaks(difficulty)
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// streaks walks the run history in insertion order and folds it into the
// current and best victory streaks.
func (s *Store) streaks(difficulty string) (current, best int, err error) {
	rows, err := s.db.Query(
		`SELECT result FROM runs WHERE difficulty = ? ORDER BY id`,
		difficulty,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("stats: cannot query run history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var result Result
		if err := rows.Scan(&result); err != nil {
			return 0, 0, fmt.Errorf("stats: cannot scan run: %w", err)
		}
		if result == ResultVictory {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("stats: row iteration error: %w", err)
	}
	return current, best, nil
}

// Summaries aggregates the given difficulties in order, including ones
// with no recorded runs yet.
func (s *Store) Summaries(difficulties ...string) ([]Summary, error) {
	out := make([]Summary, 0, len(difficulties))
	for _, name := range difficulties {
		sum, err := s.Summary(name)
		if err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, nil
}

// RecentRuns returns the latest runs across all difficulties, newest
// first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, result, turns, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("stats: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Result, &e.Turns, &createdAt); err != nil {
			return nil, fmt.Errorf("stats: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats: row iteration error: %w", err)
	}

	return entries, nil
}
