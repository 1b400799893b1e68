package config

import (
	"fmt"

	"github.com/herrkaefer/signal-vault-game/internal/game"
)

// Difficulty resolves a named preset with this config's tuning applied.
// An empty name falls back to the configured default difficulty.
func (c Config) Difficulty(name string) (game.Difficulty, error) {
	if name == "" {
		name = c.Game.Difficulty
	}

	diff, ok := game.DifficultyByName(name)
	if !ok {
		return game.Difficulty{}, fmt.Errorf("config: unknown difficulty %q", name)
	}

	if tuning, ok := c.Game.Overrides[name]; ok {
		applyTuning(&diff, tuning)
		if err := diff.Validate(); err != nil {
			return game.Difficulty{}, fmt.Errorf("config: invalid override for %s: %w", name, err)
		}
	}
	return diff, nil
}

func applyTuning(diff *game.Difficulty, t DifficultyTuning) {
	if t.Width > 0 {
		diff.Width = t.Width
	}
	if t.Height > 0 {
		diff.Height = t.Height
	}
	if t.Health > 0 {
		diff.StartHealth = t.Health
	}
	if t.MaxHealth > 0 {
		diff.MaxHealth = t.MaxHealth
	}
	if t.Walls > 0 {
		diff.Walls = t.Walls
	}
	if t.Traps > 0 {
		diff.Traps = t.Traps
	}
	if t.Medkits > 0 {
		diff.Medkits = t.Medkits
	}
	if t.Helpers > 0 {
		diff.Helpers = t.Helpers
	}
	if t.Drones > 0 {
		diff.Drones = t.Drones
	}
}
