package core

import "testing"

func TestInputFramePressedImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHop)

	if !f.Pressed(ActionHop) {
		t.Error("Set action should be pressed")
	}
	if !f.Held(ActionHop) {
		t.Error("Pressed action should also be held")
	}
	if f.Pressed(ActionQuit) || f.Held(ActionQuit) {
		t.Error("Untouched action should be neither pressed nor held")
	}
}

func TestInputFrameHeldOnly(t *testing.T) {
	f := NewInputFrame()
	f.SetHeld(ActionConfirm)

	if f.Pressed(ActionConfirm) {
		t.Error("Held-only action should not count as pressed")
	}
	if !f.Held(ActionConfirm) {
		t.Error("Held-only action should be held")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Pressed(ActionHop) || f.Held(ActionHop) {
		t.Error("Zero frame should report nothing")
	}
	f.Set(ActionHop)
	if !f.Has(ActionHop) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHop)
	f.SetHeld(ActionConfirm)

	clone := f.Clone()
	f.Clear()

	if f.Held(ActionHop) || f.Held(ActionConfirm) {
		t.Error("Clear should drop pressed and held actions")
	}
	if !clone.Pressed(ActionHop) || !clone.Held(ActionConfirm) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionHop:     "Hop",
		ActionConfirm: "Confirm",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), want)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("bright_red"); !ok || c != ColorBrightRed {
		t.Errorf("ParseColor(bright_red) = %v, %v", c, ok)
	}
	if c, ok := ParseColor(""); !ok || c != ColorDefault {
		t.Errorf("ParseColor(\"\") = %v, %v", c, ok)
	}
	if _, ok := ParseColor("ultraviolet"); ok {
		t.Error("Unknown color name should not parse")
	}
}
