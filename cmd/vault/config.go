package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/herrkaefer/signal-vault-game/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
	Long: `Work with the vault config file.

The config layers over the built-in defaults. Search order:
  1. --config <path>
  2. ~/.signal-vault/config.yaml
  3. ./signal-vault.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the annotated sample config",
	Long: `Seed a config file with the annotated defaults, ready to edit.
Refuses to overwrite an existing file.

Examples:
  vault config init
  vault config init --config ./signal-vault.yaml`,
	Run: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := flagConfig
	if path == "" {
		path = config.DefaultConfigPath
	}

	if err := config.WriteDefault(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote config to %s\n", config.ExpandPath(path))
	fmt.Println("Edit it and run 'vault play' to try your tuning.")
}
