// vault is the Signal Vault heist game for the terminal.
//
// Usage:
//
//	vault                     - Interactive difficulty and narrator pickers
//	vault play [difficulty]   - Jack into a run directly
//	vault menu                - Same pickers, spelled out
//	vault serve               - Host runs over SSH
//	vault stats [difficulty]  - Show lifetime records
//	vault personas            - List narrator voices
//	vault config init         - Write the annotated sample config
//	vault version             - Show the build version
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.signal-vault/config.yaml)
//	--db <path>      - Stats database path (overrides config)
//	--seed <value>   - Board seed for reproducible runs (0 = random)
//	--mute           - Start with audio off
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/herrkaefer/signal-vault-game/internal/config"
	"github.com/herrkaefer/signal-vault-game/internal/stats"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vault",
	Short: "Signal Vault - a turn-based heist in your terminal",
	Long: `Signal Vault drops you into a procedurally generated vault: reach the
exit before the patrol drones wear you down, with a narrator of your
choice calling the run.

Run it bare for the interactive menu, or use a subcommand:
  play      - Jack into a run directly
  menu      - Interactive difficulty and narrator pickers
  serve     - Host runs over SSH
  stats     - View lifetime records
  personas  - List narrator voices
  config    - Manage the config file
  version   - Show the build version

Examples:
  vault
  vault play hard --persona humorous
  vault serve --ssh :2222
  vault stats normal`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.signal-vault/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to stats database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Board seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with audio off")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(personasCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadBaseConfig loads the layered config, falling back to the defaults
// with a warning when the file is broken.
func loadBaseConfig() config.Config {
	base, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return base
}

// statsDBPath resolves the stats database location: --db wins over the
// config file.
func statsDBPath(base config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return base.Storage.Path
}

// openStore opens the stats database, or returns nil so the game can
// still run without record keeping.
func openStore(base config.Config) *stats.Store {
	store, err := stats.Open(config.ExpandPath(statsDBPath(base)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open stats database: %v\n", err)
		return nil
	}
	return store
}
