package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/runic/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"down", core.ActionDown, false},
		{"j", core.ActionDown, false},
		{"left", core.ActionLeft, false},
		{"h", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"l", core.ActionRight, false},
		{"enter", core.ActionConfirm, false},
		{" ", core.ActionConfirm, false},
		{"x", core.ActionDiscard, false},
		{"f", core.ActionShuffle, false},
		{"?", core.ActionHint, false},
		{"tab", core.ActionLedger, false},
		{"esc", core.ActionBack, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, want %v", tt.key, action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tt.key, quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("x"), &frame) {
		t.Error("x should not quit")
	}
	km.MapKeyToFrame(keyMsg("z"), &frame)

	if !frame.Has(core.ActionDiscard) {
		t.Error("frame should carry the discard action")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unmapped keys should not be recorded")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
