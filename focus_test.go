package textfield

import "testing"

func TestFocusTabWrapsAroundGroup(t *testing.T) {
	fm := NewFocusManager()
	ids := []FieldID{10, 20, 30}
	for _, id := range ids {
		fm.AddField("login", id)
	}
	fm.Focus(10)

	want := []FieldID{20, 30, 10}
	for i, w := range want {
		got, ok := fm.Next()
		if !ok || got != w {
			t.Fatalf("Next() #%d = (%d, %v), want (%d, true)", i+1, got, ok, w)
		}
	}
}

func TestFocusShiftTabWrapsBackward(t *testing.T) {
	fm := NewFocusManager()
	for _, id := range []FieldID{10, 20, 30} {
		fm.AddField("login", id)
	}
	fm.Focus(10)

	got, ok := fm.Prev()
	if !ok || got != 30 {
		t.Fatalf("Prev() from first field = (%d, %v), want (30, true)", got, ok)
	}
}

func TestFocusCycleStaysInGroup(t *testing.T) {
	fm := NewFocusManager()
	fm.AddField("login", 1)
	fm.AddField("login", 2)
	fm.AddField("search", 3)
	fm.Focus(1)

	for i := 0; i < 5; i++ {
		got, ok := fm.Next()
		if !ok {
			t.Fatal("Next() reported no focus")
		}
		if got == 3 {
			t.Fatal("Next() crossed into another group")
		}
	}
}

func TestFocusCycleSingleFieldGroup(t *testing.T) {
	fm := NewFocusManager()
	fm.AddField("lone", 7)
	fm.Focus(7)

	if got, ok := fm.Next(); !ok || got != 7 {
		t.Errorf("Next() = (%d, %v), want the same field back", got, ok)
	}
	if got, ok := fm.Prev(); !ok || got != 7 {
		t.Errorf("Prev() = (%d, %v), want the same field back", got, ok)
	}
}

func TestFocusCycleWithoutFocusIsNoOp(t *testing.T) {
	fm := NewFocusManager()
	fm.AddField("login", 1)

	if _, ok := fm.Next(); ok {
		t.Error("Next() moved focus with nothing focused")
	}
	if _, ok := fm.Focused(); ok {
		t.Error("Focused() reports focus after a no-op cycle")
	}
}

func TestFocusIsExclusive(t *testing.T) {
	fm := NewFocusManager()
	fm.AddField("a", 1)
	fm.AddField("b", 2)

	fm.Focus(1)
	prev, hadPrev, changed := fm.Focus(2)
	if !changed || !hadPrev || prev != 1 {
		t.Errorf("Focus(2) = (%d, %v, %v), want previous field 1 reported", prev, hadPrev, changed)
	}
	if fm.IsFocused(1) {
		t.Error("field 1 still focused after focus moved")
	}
	if !fm.IsFocused(2) {
		t.Error("field 2 not focused")
	}
}

func TestFocusRefocusIsNotAChange(t *testing.T) {
	fm := NewFocusManager()
	fm.AddField("a", 1)
	fm.Focus(1)

	if _, _, changed := fm.Focus(1); changed {
		t.Error("re-focusing the focused field reported a change")
	}
}

func TestFocusUnknownFieldIgnored(t *testing.T) {
	fm := NewFocusManager()
	fm.AddField("a", 1)
	fm.Focus(1)

	if _, _, changed := fm.Focus(99); changed {
		t.Error("focusing an unregistered field reported a change")
	}
	if !fm.IsFocused(1) {
		t.Error("existing focus lost after focusing an unknown field")
	}
}

func TestBlur(t *testing.T) {
	fm := NewFocusManager()
	fm.AddField("a", 1)
	fm.Focus(1)

	id, ok := fm.Blur()
	if !ok || id != 1 {
		t.Errorf("Blur() = (%d, %v), want (1, true)", id, ok)
	}
	if _, ok := fm.Focused(); ok {
		t.Error("still focused after Blur")
	}
	if _, ok := fm.Blur(); ok {
		t.Error("second Blur reported a field")
	}
}

func TestRemoveFieldBlursAndClosesGap(t *testing.T) {
	fm := NewFocusManager()
	for _, id := range []FieldID{1, 2, 3} {
		fm.AddField("g", id)
	}
	fm.Focus(2)
	fm.RemoveField(2)

	if _, ok := fm.Focused(); ok {
		t.Error("removed field still focused")
	}

	fm.Focus(1)
	if got, ok := fm.Next(); !ok || got != 3 {
		t.Errorf("Next() = (%d, %v), want tab order to skip the removed field", got, ok)
	}
}

func TestAddFieldAtPosition(t *testing.T) {
	fm := NewFocusManager()
	fm.AddField("g", 1)
	fm.AddField("g", 3)
	fm.AddFieldAt("g", 2, 1)

	fm.Focus(1)
	got, _ := fm.Next()
	if got != 2 {
		t.Errorf("Next() = %d, want the inserted field", got)
	}
	got, _ = fm.Next()
	if got != 3 {
		t.Errorf("Next() = %d, want 3", got)
	}
}

func TestReAddMovesFieldBetweenGroups(t *testing.T) {
	fm := NewFocusManager()
	fm.AddField("a", 1)
	fm.AddField("b", 1)

	if g, _ := fm.Group(1); g != "b" {
		t.Errorf("Group(1) = %q, want %q", g, "b")
	}
}
