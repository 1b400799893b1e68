// Package config provides YAML-based configuration loading for the
// vault: difficulty tuning, narrator persona, audio, storage and the
// network surfaces.
package config

// Config is the full runtime configuration.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Narrator NarratorConfig `yaml:"narrator"`
	Audio    AudioConfig    `yaml:"audio"`
	Storage  StorageConfig  `yaml:"storage"`
	Feed     FeedConfig     `yaml:"feed"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// GameConfig selects the default difficulty and optional per-preset
// tuning.
type GameConfig struct {
	Difficulty string                      `yaml:"difficulty"`
	Overrides  map[string]DifficultyTuning `yaml:"overrides"`
}

// DifficultyTuning overrides individual fields of a difficulty preset.
// Zero values keep the preset's value.
type DifficultyTuning struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Health    int `yaml:"health"`
	MaxHealth int `yaml:"max_health"`
	Walls     int `yaml:"walls"`
	Traps     int `yaml:"traps"`
	Medkits   int `yaml:"medkits"`
	Helpers   int `yaml:"helpers"`
	Drones    int `yaml:"drones"`
}

// NarratorConfig selects the default persona.
type NarratorConfig struct {
	Persona string `yaml:"persona"`
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CacheDir string `yaml:"cache_dir"`
}

// StorageConfig locates the stats database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// FeedConfig controls the WebSocket run event feed.
type FeedConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// SSHConfig controls the SSH game server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutSeconds int    `yaml:"idle_timeout_seconds"`
}
