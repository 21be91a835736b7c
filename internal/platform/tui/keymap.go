package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ferris-dodger/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Restart     key.Binding
	Leaderboard key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Leaderboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Restart},
		{k.Leaderboard, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "restart"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leaderboard"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HeldKeys emulates held direction keys. Terminals report presses and
// auto-repeat but never releases, so a direction counts as held until its
// hold window passes without another press.
type HeldKeys struct {
	hold       time.Duration
	leftUntil  time.Time
	rightUntil time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) HeldKeys {
	return HeldKeys{hold: hold}
}

// Press records a direction press at now. Pressing one direction releases
// the other, matching how a player switches keys.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.leftUntil = now.Add(h.hold)
		h.rightUntil = time.Time{}
	case core.ActionRight:
		h.rightUntil = now.Add(h.hold)
		h.leftUntil = time.Time{}
	}
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	h.leftUntil = time.Time{}
	h.rightUntil = time.Time{}
}

// Apply sets the directions still held at now on the frame.
func (h HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	if now.Before(h.leftUntil) {
		frame.Set(core.ActionLeft)
	}
	if now.Before(h.rightUntil) {
		frame.Set(core.ActionRight)
	}
}
