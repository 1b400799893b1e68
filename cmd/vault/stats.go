package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/herrkaefer/signal-vault-game/internal/config"
	"github.com/herrkaefer/signal-vault-game/internal/game"
	"github.com/herrkaefer/signal-vault-game/internal/platform/tui"
	"github.com/herrkaefer/signal-vault-game/internal/stats"
)

var (
	flagRecent int
	flagBoard  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [difficulty]",
	Short: "Show lifetime records",
	Long: `Display the lifetime record for each difficulty, or for a single one.

Examples:
  vault stats
  vault stats normal
  vault stats --recent 20
  vault stats --board`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the last N runs instead of the summary")
	statsCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive stats board")
}

func runStats(cmd *cobra.Command, args []string) {
	base := loadBaseConfig()

	store, err := stats.Open(config.ExpandPath(statsDBPath(base)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, boardErr := tui.RunScoreboard(store, width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	if flagRecent > 0 {
		printRecent(store, flagRecent)
		return
	}

	if len(args) > 0 {
		printDifficulty(store, args[0])
		return
	}

	printSummaries(store)
}

// printSummaries renders the lifetime table across all difficulties.
func printSummaries(store *stats.Store) {
	diffs := game.Difficulties()
	names := make([]string, len(diffs))
	labelWidth := len("Difficulty")
	for i, d := range diffs {
		names[i] = d.Name
		if len(d.Label) > labelWidth {
			labelWidth = len(d.Label)
		}
	}

	summaries, err := store.Summaries(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	total := 0
	for _, s := range summaries {
		total += s.Runs
	}

	fmt.Println("Vault Records")
	fmt.Println()

	if total == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'vault play' to put the first run on the board!")
		return
	}

	fmt.Printf("  %-*s  %5s  %5s  %6s  %5s  %7s  %10s\n",
		labelWidth, "Difficulty", "Runs", "Wins", "Win %", "Best", "Streak", "Top streak")
	fmt.Printf("  %-*s  %5s  %5s  %6s  %5s  %7s  %10s\n",
		labelWidth, "----------", "----", "----", "-----", "----", "------", "----------")

	for i, s := range summaries {
		rate := 0.0
		if s.Runs > 0 {
			rate = float64(s.Wins) / float64(s.Runs) * 100
		}
		best := "n/a"
		if s.HasBest {
			best = fmt.Sprintf("%d", s.BestTurns)
		}
		fmt.Printf("  %-*s  %5d  %5d  %5.0f%%  %5s  %7d  %10d\n",
			labelWidth, diffs[i].Label, s.Runs, s.Wins, rate, best, s.WinStreak, s.BestStreak)
	}
}

// printDifficulty renders one preset's record plus its recent runs.
func printDifficulty(store *stats.Store, name string) {
	diff, ok := game.DifficultyByName(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", name)
		fmt.Fprintln(os.Stderr, "Difficulties: easy, normal, hard.")
		os.Exit(1)
	}

	summary, err := store.Summary(diff.Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Vault Records - %s\n", diff.Label)
	fmt.Println()

	if summary.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'vault play %s' to put the first run on the board!\n", diff.Name)
		return
	}

	fmt.Println(summary.Line())

	runs, err := store.RecentRuns(100)
	if err != nil {
		return
	}
	shown := 0
	for _, r := range runs {
		if r.Difficulty != diff.Name {
			continue
		}
		if shown == 0 {
			fmt.Println()
			fmt.Printf("  %-16s  %-9s  %s\n", "When", "Result", "Turns")
			fmt.Printf("  %-16s  %-9s  %s\n", "----", "------", "-----")
		}
		fmt.Printf("  %-16s  %-9s  %d\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Result, r.Turns)
		shown++
		if shown == 10 {
			break
		}
	}
}

// printRecent renders the last n runs across all difficulties.
func printRecent(store *stats.Store, n int) {
	runs, err := store.RecentRuns(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-9s  %s\n", "When", "Difficulty", "Result", "Turns")
	fmt.Printf("  %-16s  %-10s  %-9s  %s\n", "----", "----------", "------", "-----")
	for _, r := range runs {
		label := r.Difficulty
		if d, ok := game.DifficultyByName(r.Difficulty); ok {
			label = d.Label
		}
		fmt.Printf("  %-16s  %-10s  %-9s  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), label, r.Result, r.Turns)
	}
}
