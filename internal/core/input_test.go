package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionRestart)
	if !f.Has(ActionLeft) || !f.Has(ActionRestart) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionRestart) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionLeft:    "Left",
		ActionRight:   "Right",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
