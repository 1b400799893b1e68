package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/herrkaefer/signal-vault-game/internal/audio"
	"github.com/herrkaefer/signal-vault-game/internal/config"
	"github.com/herrkaefer/signal-vault-game/internal/feed"
	"github.com/herrkaefer/signal-vault-game/internal/narrator"
	"github.com/herrkaefer/signal-vault-game/internal/platform/tui"
)

var (
	flagPersona  string
	flagFeed     bool
	flagFeedAddr string
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Jack into a vault run",
	Long: `Start a run directly, skipping the menu. The difficulty argument
falls back to the config default (normal out of the box).

Difficulty presets:
  easy   - Compact map, extra health, single drone
  normal - The original balance: 2 drones, moderate hazards
  hard   - Bigger map, more walls and traps, extra drone

Controls:
  WASD/Arrows - Move
  P           - Cycle narrator voice
  M           - Mute/unmute
  Q           - Abandon run
  N           - New run (after the run ends)

Examples:
  vault play
  vault play hard
  vault play easy --persona humorous
  vault play --seed 1234
  vault play --feed`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPersona, "persona", "", "Narrator voice (see 'vault personas')")
	playCmd.Flags().BoolVar(&flagFeed, "feed", false, "Publish run events over WebSocket")
	playCmd.Flags().StringVar(&flagFeedAddr, "feed-addr", "", "Feed listen address (defaults to the configured one)")
}

func runPlay(cmd *cobra.Command, args []string) {
	base := loadBaseConfig()

	// Resolve the difficulty with config tuning applied
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	diff, err := base.Difficulty(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Difficulties: easy, normal, hard.")
		os.Exit(1)
	}

	persona, err := resolvePersona(base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'vault personas' to see available voices.")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open stats storage; the run still works without it
	store := openStore(base)

	sound := audio.NewEngine(base.Audio.Enabled && !flagMute, base.Audio.CacheDir)
	defer sound.StopAll()

	events := startFeed(base)
	defer stopFeed(events)

	runErr := tui.Run(diff, persona, store, sound, events, tui.RunConfig{
		Width:  width,
		Height: height,
		Seed:   flagSeed,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolvePersona picks the narrator voice: --persona wins over the
// config file. Unknown keys are an error rather than a silent fallback.
func resolvePersona(base config.Config) (narrator.Persona, error) {
	key := base.Narrator.Persona
	if flagPersona != "" {
		key = flagPersona
	}
	if key == "" {
		return narrator.ByKey(""), nil
	}
	for _, p := range narrator.Personas() {
		if p.Key == key {
			return p, nil
		}
	}
	return narrator.Persona{}, fmt.Errorf("unknown persona %q", key)
}

// startFeed brings up the WebSocket event feed when enabled by flag or
// config. Returns nil when the feed stays off.
func startFeed(base config.Config) *feed.Server {
	if !flagFeed && !base.Feed.Enabled {
		return nil
	}

	addr := flagFeedAddr
	if addr == "" {
		addr = base.Feed.Address
	}

	events := feed.NewServer(addr)
	if err := events.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not start event feed: %v\n", err)
		return nil
	}
	fmt.Printf("Event feed: ws://%s/events\n", events.Addr())
	return events
}

func stopFeed(events *feed.Server) {
	if events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	events.Shutdown(ctx)
}
