package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Game.Difficulty != "normal" {
		t.Errorf("Expected default difficulty normal, got %s", cfg.Game.Difficulty)
	}
	if cfg.Narrator.Persona != "dramatic" {
		t.Errorf("Expected default persona dramatic, got %s", cfg.Narrator.Persona)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.Storage.Path == "" {
		t.Error("Expected a default stats database path")
	}
	if cfg.Feed.Enabled {
		t.Error("Expected feed disabled by default")
	}
}

func TestDefaultYAMLStaysInSync(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded sample config does not parse: %v", err)
	}

	want := Default()
	if cfg.Game.Difficulty != want.Game.Difficulty {
		t.Errorf("Sample difficulty %s drifted from default %s", cfg.Game.Difficulty, want.Game.Difficulty)
	}
	if cfg.Narrator.Persona != want.Narrator.Persona {
		t.Errorf("Sample persona %s drifted from default %s", cfg.Narrator.Persona, want.Narrator.Persona)
	}
	if cfg.Feed.Address != want.Feed.Address {
		t.Errorf("Sample feed address %s drifted from default %s", cfg.Feed.Address, want.Feed.Address)
	}
}

func TestLoadWithoutAnyFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.Difficulty != "normal" {
		t.Errorf("Expected defaults when no file exists, got difficulty %s", cfg.Game.Difficulty)
	}
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.yaml")
	body := "narrator:\n  persona: mentor\naudio:\n  enabled: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Narrator.Persona != "mentor" {
		t.Errorf("Expected persona mentor, got %s", cfg.Narrator.Persona)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by the file")
	}
	// Keys the file does not mention keep their defaults
	if cfg.Game.Difficulty != "normal" {
		t.Errorf("Expected default difficulty to survive, got %s", cfg.Game.Difficulty)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected an error for a missing custom config")
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("game: [unclosed"), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}

func TestUserConfigPicksUp(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".signal-vault")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("cannot create config dir: %v", err)
	}
	body := "game:\n  difficulty: hard\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("cannot write user config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.Difficulty != "hard" {
		t.Errorf("Expected difficulty hard from user config, got %s", cfg.Game.Difficulty)
	}
}

func TestDifficultyResolvesConfiguredDefault(t *testing.T) {
	cfg := Default()
	cfg.Game.Difficulty = "hard"

	diff, err := cfg.Difficulty("")
	if err != nil {
		t.Fatalf("Difficulty() failed: %v", err)
	}
	if diff.Name != "hard" || diff.Width != 10 {
		t.Errorf("Expected hard preset, got %s %dx%d", diff.Name, diff.Width, diff.Height)
	}
}

func TestDifficultyUnknownName(t *testing.T) {
	cfg := Default()

	if _, err := cfg.Difficulty("nightmare"); err == nil {
		t.Error("Expected an error for unknown difficulty")
	}
}

func TestDifficultyAppliesOverrides(t *testing.T) {
	cfg := Default()
	cfg.Game.Overrides = map[string]DifficultyTuning{
		"normal": {Drones: 4, Width: 12},
	}

	diff, err := cfg.Difficulty("normal")
	if err != nil {
		t.Fatalf("Difficulty() failed: %v", err)
	}

	if diff.Drones != 4 {
		t.Errorf("Expected 4 drones from override, got %d", diff.Drones)
	}
	if diff.Width != 12 {
		t.Errorf("Expected width 12 from override, got %d", diff.Width)
	}
	// Untouched fields keep the preset values
	if diff.Height != 9 || diff.Traps != 8 {
		t.Errorf("Expected preset height/traps to survive, got %d/%d", diff.Height, diff.Traps)
	}
}

func TestDifficultyRejectsInvalidOverride(t *testing.T) {
	cfg := Default()
	cfg.Game.Overrides = map[string]DifficultyTuning{
		"normal": {Walls: 200},
	}

	if _, err := cfg.Difficulty("normal"); err == nil {
		t.Error("Expected an error for an overfull override")
	}
}

func TestWriteDefaultRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read written config: %v", err)
	}
	if len(data) == 0 {
		t.Error("Written config is empty")
	}

	if err := WriteDefault(path); err == nil {
		t.Error("Expected an error overwriting an existing config")
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/runner")

	if got := ExpandPath("~/.signal-vault/stats.db"); got != "/home/runner/.signal-vault/stats.db" {
		t.Errorf("Expected expanded path, got %s", got)
	}
	if got := ExpandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("Absolute path should pass through, got %s", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("Empty path should pass through, got %s", got)
	}
}
