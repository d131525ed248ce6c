package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionRight)
	f.AddClick(3, 4)

	if !f.Has(ActionUp) || !f.Has(ActionRight) || f.Has(ActionDown) {
		t.Errorf("unexpected actions: %v", f.Actions)
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Click{X: 3, Y: 4}) {
		t.Errorf("unexpected clicks: %v", f.Clicks)
	}

	f.Clear()
	if f.Has(ActionUp) || len(f.Clicks) != 0 {
		t.Error("Clear should drop actions and clicks")
	}
}

func TestActionString(t *testing.T) {
	if ActionPickShield.String() != "PickShield" {
		t.Errorf("ActionPickShield.String() = %q", ActionPickShield.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

func TestInputFramePresses(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionLeft)
	f.Press(ActionUp)
	f.Press(ActionLeft)

	if got := f.PressCount(ActionLeft); got != 2 {
		t.Errorf("PressCount(Left) = %d, expected 2", got)
	}
	if got := f.PressCount(ActionDown); got != 0 {
		t.Errorf("PressCount(Down) = %d, expected 0", got)
	}
	if f.Has(ActionLeft) {
		t.Error("a press should not mark the action as held")
	}

	f.Clear()
	if len(f.Presses) != 0 {
		t.Error("Clear should drop presses")
	}
}
