package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUndo) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionUndo)
	f.Set(ActionLeft)
	if !f.Has(ActionUndo) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionHint) {
		t.Error("Has(ActionHint) should be false")
	}

	f.SetClick(12, 3)
	p, ok := f.Click()
	if !ok || p != (Point{X: 12, Y: 3}) {
		t.Errorf("Click() = (%v, %v), expected (12,3)", p, ok)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUndo) {
		t.Error("Clear should remove actions")
	}
	if _, ok := f.Click(); ok {
		t.Error("Clear should remove the click")
	}
	if !clone.Has(ActionUndo) {
		t.Error("clone should not share actions with the original")
	}
	if _, ok := clone.Click(); !ok {
		t.Error("clone should keep the click")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionLeft:  "Left",
		ActionUndo:  "Undo",
		ActionHint:  "Hint",
		Action(999): "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
