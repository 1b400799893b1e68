package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/herrkaefer/signal-vault-game/internal/audio"
	"github.com/herrkaefer/signal-vault-game/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the vault with the interactive pickers",
	Long: `Start the vault in interactive menu mode.

Pick a difficulty, then a narrator voice. After a run ends you can start
a fresh board, check the records, or head back to the pickers.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Stats board
  Q            - Quit

Examples:
  vault menu
  vault menu --seed 1234
  vault menu --db ./stats.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagFeed, "feed", false, "Publish run events over WebSocket")
	menuCmd.Flags().StringVar(&flagFeedAddr, "feed-addr", "", "Feed listen address (defaults to the configured one)")
}

func runMenu(_ *cobra.Command, _ []string) {
	base := loadBaseConfig()

	// Open stats storage; the menu shows placeholders without it
	store := openStore(base)

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	sound := audio.NewEngine(base.Audio.Enabled && !flagMute, base.Audio.CacheDir)
	defer sound.StopAll()

	events := startFeed(base)
	defer stopFeed(events)

	// The session model hosts the whole loop: pickers, runs, stats board
	err := tui.RunSession(base, store, sound, events, tui.RunConfig{
		Width:  width,
		Height: height,
		Seed:   flagSeed,
	})

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
