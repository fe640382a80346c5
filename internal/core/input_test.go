package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as active")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionConfirm) {
		t.Error("Clear should drop every action")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:       "None",
		ActionLeft:       "Left",
		ActionRight:      "Right",
		ActionConfirm:    "Confirm",
		ActionScoreboard: "Scoreboard",
		ActionBack:       "Back",
		ActionRestart:    "Restart",
		ActionQuit:       "Quit",
		Action(99):       "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
