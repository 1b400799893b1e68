package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Signal Vault"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s\n", AppName, Version)
	},
}
