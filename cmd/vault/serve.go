package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/herrkaefer/signal-vault-game/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host vault runs over SSH",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the difficulty and
narrator pickers. Stats are stored per-server, so all users share the
same records. Remote sessions are always silent; audio stays on the
server's speakers otherwise.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.signal-vault/ssh_host_key

Examples:
  vault serve                            # Listen on 127.0.0.1:23234
  vault serve --ssh :2222                # Listen on port 2222
  vault serve --host-key ./my_host_key   # Use specific host key
  vault serve --db ./stats.db            # Use specific database
  vault serve --feed                     # Also publish the event feed

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (defaults to the configured one)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagFeed, "feed", false, "Publish run events over WebSocket")
	serveCmd.Flags().StringVar(&flagFeedAddr, "feed-addr", "", "Feed listen address (defaults to the configured one)")
}

func runServe(cmd *cobra.Command, _ []string) {
	base := loadBaseConfig()

	// Layer the server config: defaults, then the config file, then flags.
	cfg := tui.DefaultSSHServerConfig()
	if base.SSH.Address != "" {
		cfg.Address = base.SSH.Address
	}
	if base.SSH.HostKeyPath != "" {
		cfg.HostKeyPath = base.SSH.HostKeyPath
	}
	if base.SSH.IdleTimeoutSeconds > 0 {
		cfg.IdleTimeout = time.Duration(base.SSH.IdleTimeoutSeconds) * time.Second
	}
	cfg.DBPath = statsDBPath(base)

	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	events := startFeed(base)
	defer stopFeed(events)

	server, err := tui.NewSSHServer(cfg, base, events)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting vault SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
