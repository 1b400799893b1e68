package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/herrkaefer/signal-vault-game/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToDirection translates a movement key to a board direction.
// Both WASD and the arrow keys work.
func (km *KeyMapper) MapKeyToDirection(msg tea.KeyMsg) (game.Direction, bool) {
	switch msg.String() {
	case "w", "up":
		return game.DirUp, true
	case "s", "down":
		return game.DirDown, true
	case "a", "left":
		return game.DirLeft, true
	case "d", "right":
		return game.DirRight, true
	}

	return game.DirUp, false
}

// GameAction represents a non-movement action on the run screen.
type GameAction int

const (
	GameActionNone GameAction = iota
	GameActionQuit
	GameActionAbandon
	GameActionNewRun
	GameActionMenu
	GameActionStats
	GameActionMute
	GameActionPersona
)

// MapKeyToGameAction translates a key to a run-screen action. Movement
// keys are handled separately by MapKeyToDirection; the model decides
// which actions apply while a run is still live.
func (km *KeyMapper) MapKeyToGameAction(msg tea.KeyMsg) GameAction {
	switch msg.String() {
	case "ctrl+c":
		return GameActionQuit
	case "q":
		return GameActionAbandon
	case "b", "esc":
		return GameActionMenu
	case "n", "r":
		return GameActionNewRun
	case "tab":
		return GameActionStats
	case "m":
		return GameActionMute
	case "p":
		return GameActionPersona
	}

	return GameActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionStats
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionStats
	}

	return MenuActionNone
}
