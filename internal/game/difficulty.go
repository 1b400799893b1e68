package game

import "fmt"

// HelperFreezeTurns is how long every drone stays frozen after the player
// picks up a helper beacon.
const HelperFreezeTurns = 2

// Difficulty bundles the board and player parameters for one run.
type Difficulty struct {
	Name        string
	Label       string
	Width       int
	Height      int
	StartHealth int
	MaxHealth   int
	Walls       int
	Traps       int
	Medkits     int
	Helpers     int
	Drones      int
}

// Built-in presets, in menu order.
var difficulties = []Difficulty{
	{
		Name:        "easy",
		Label:       "Easy",
		Width:       7,
		Height:      7,
		StartHealth: 6,
		MaxHealth:   6,
		Walls:       7,
		Traps:       5,
		Medkits:     5,
		Helpers:     1,
		Drones:      1,
	},
	{
		Name:        "normal",
		Label:       "Normal",
		Width:       9,
		Height:      9,
		StartHealth: 4,
		MaxHealth:   5,
		Walls:       11,
		Traps:       8,
		Medkits:     3,
		Helpers:     1,
		Drones:      2,
	},
	{
		Name:        "hard",
		Label:       "Hard",
		Width:       10,
		Height:      10,
		StartHealth: 4,
		MaxHealth:   5,
		Walls:       16,
		Traps:       14,
		Medkits:     3,
		Helpers:     1,
		Drones:      3,
	},
}

// Difficulties returns the built-in presets in menu order.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// DifficultyByName returns the built-in preset with the given name.
func DifficultyByName(name string) (Difficulty, bool) {
	for _, d := range difficulties {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Validate checks that the parameters can produce a playable board.
func (d Difficulty) Validate() error {
	if d.Width < 2 || d.Height < 2 {
		return &InvalidConfigurationError{
			Difficulty: d.Name,
			Detail:     fmt.Sprintf("grid %dx%d is too small", d.Width, d.Height),
		}
	}
	if d.StartHealth < 1 || d.MaxHealth < d.StartHealth {
		return &InvalidConfigurationError{
			Difficulty: d.Name,
			Detail:     fmt.Sprintf("health %d/%d is not playable", d.StartHealth, d.MaxHealth),
		}
	}
	if d.Walls < 0 || d.Traps < 0 || d.Medkits < 0 || d.Helpers < 0 || d.Drones < 0 {
		return &InvalidConfigurationError{
			Difficulty: d.Name,
			Detail:     "feature counts must not be negative",
		}
	}
	// Start and exit cells never hold features.
	usable := d.Width*d.Height - 2
	features := d.Walls + d.Traps + d.Medkits + d.Helpers + d.Drones
	if features > usable {
		return &InvalidConfigurationError{
			Difficulty: d.Name,
			Detail:     fmt.Sprintf("%d features exceed %d usable cells", features, usable),
		}
	}
	return nil
}
