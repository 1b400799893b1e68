package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/herrkaefer/signal-vault-game/internal/game"
	"github.com/herrkaefer/signal-vault-game/internal/narrator"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the narrator voices",
	Long:  `Shows every narrator voice the vault can run with, with a sample line.`,
	Run:   runPersonas,
}

func runPersonas(cmd *cobra.Command, args []string) {
	personas := narrator.Personas()

	fmt.Println("Narrator voices:")
	fmt.Println()

	// Calculate column widths
	maxKeyLen := len("Key")
	maxLabelLen := len("Voice")
	for _, p := range personas {
		if len(p.Key) > maxKeyLen {
			maxKeyLen = len(p.Key)
		}
		if len(p.Label) > maxLabelLen {
			maxLabelLen = len(p.Label)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxKeyLen, "Key", maxLabelLen, "Voice", "Style")
	fmt.Printf("  %-*s  %-*s  %s\n", maxKeyLen, "---", maxLabelLen, "-----", "-----")

	// Print personas
	for _, p := range personas {
		fmt.Printf("  %-*s  %-*s  %s\n", maxKeyLen, p.Key, maxLabelLen, p.Label, p.Style)
	}

	fmt.Println()
	fmt.Println("Samples:")
	ctx := narrator.Context{Health: 4, MaxHealth: 5}
	for _, p := range personas {
		voice := narrator.New(p, rand.New(rand.NewSource(1)))
		if line, ok := voice.Describe(narrator.EventStart, game.MoodLow, ctx); ok {
			fmt.Printf("  %-*s  %q\n", maxKeyLen, p.Key, line)
		}
	}

	fmt.Println()
	fmt.Println("Run 'vault play --persona <key>' to pick a voice.")
}
