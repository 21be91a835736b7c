package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ferris-dodger/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	held := NewHeldKeys(180 * time.Millisecond)

	frameAt := func(at time.Time) core.InputFrame {
		f := core.NewInputFrame()
		held.Apply(&f, at)
		return f
	}

	if f := frameAt(now); f.Has(core.ActionLeft) || f.Has(core.ActionRight) {
		t.Error("nothing should be held before any press")
	}

	held.Press(core.ActionLeft, now)
	if f := frameAt(now.Add(100 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("left should be held inside the window")
	}
	if f := frameAt(now.Add(180 * time.Millisecond)); f.Has(core.ActionLeft) {
		t.Error("left should be released once the window passes")
	}

	// Repeat presses extend the hold
	held.Press(core.ActionLeft, now.Add(150*time.Millisecond))
	if f := frameAt(now.Add(300 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("a repeated press should extend the hold")
	}

	// Opposite direction releases the other
	held.Press(core.ActionRight, now.Add(200*time.Millisecond))
	f := frameAt(now.Add(250 * time.Millisecond))
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Error("pressing right should release left")
	}

	held.Release()
	if f := frameAt(now.Add(250 * time.Millisecond)); f.Has(core.ActionRight) {
		t.Error("Release should drop every direction")
	}

	// Non-direction actions are ignored
	held.Press(core.ActionRestart, now)
	if f := frameAt(now); len(f.Actions) != 0 {
		t.Errorf("unexpected actions held: %v", f.Actions)
	}
}
