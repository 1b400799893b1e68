package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/herrkaefer/signal-vault-game/internal/game"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyToDirection(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want game.Direction
		ok   bool
	}{
		{runeKey("w"), game.DirUp, true},
		{runeKey("s"), game.DirDown, true},
		{runeKey("a"), game.DirLeft, true},
		{runeKey("d"), game.DirRight, true},
		{tea.KeyMsg{Type: tea.KeyUp}, game.DirUp, true},
		{tea.KeyMsg{Type: tea.KeyDown}, game.DirDown, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, game.DirLeft, true},
		{tea.KeyMsg{Type: tea.KeyRight}, game.DirRight, true},
		{runeKey("x"), game.DirUp, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, game.DirUp, false},
	}

	for _, tt := range tests {
		got, ok := km.MapKeyToDirection(tt.msg)
		if ok != tt.ok {
			t.Errorf("MapKeyToDirection(%q): expected ok=%v, got %v", tt.msg.String(), tt.ok, ok)
		}
		if ok && got != tt.want {
			t.Errorf("MapKeyToDirection(%q): expected %v, got %v", tt.msg.String(), tt.want, got)
		}
	}
}

func TestMapKeyToGameAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want GameAction
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, GameActionQuit},
		{runeKey("q"), GameActionAbandon},
		{tea.KeyMsg{Type: tea.KeyEsc}, GameActionMenu},
		{runeKey("b"), GameActionMenu},
		{runeKey("n"), GameActionNewRun},
		{runeKey("r"), GameActionNewRun},
		{tea.KeyMsg{Type: tea.KeyTab}, GameActionStats},
		{runeKey("m"), GameActionMute},
		{runeKey("p"), GameActionPersona},
		{runeKey("z"), GameActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToGameAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToGameAction(%q): expected %v, got %v", tt.msg.String(), tt.want, got)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey("w"), MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("s"), MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("b"), MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionStats},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q): expected %v, got %v", tt.msg.String(), tt.want, got)
		}
	}
}
