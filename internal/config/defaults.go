package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfigPath is where Load looks for the user's config file.
const DefaultConfigPath = "~/.signal-vault/config.yaml"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Difficulty: "normal",
		},
		Narrator: NarratorConfig{
			Persona: "dramatic",
		},
		Audio: AudioConfig{
			Enabled:  true,
			CacheDir: "~/.signal-vault/audio",
		},
		Storage: StorageConfig{
			Path: "~/.signal-vault/stats.db",
		},
		Feed: FeedConfig{
			Enabled: false,
			Address: "127.0.0.1:7700",
		},
		SSH: SSHConfig{
			Address:     "127.0.0.1:23234",
			HostKeyPath: "~/.signal-vault/ssh_host_key",
		},
	}
}

// DefaultYAML returns the annotated sample config, suitable for seeding
// a user config file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultConfigYAML))
	copy(out, defaultConfigYAML)
	return out
}
