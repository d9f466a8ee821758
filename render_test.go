package textfield

import (
	"strings"
	"testing"
	"time"
)

func TestRenderPasswordMasking(t *testing.T) {
	buf := NewBuffer("secret", 0)
	buf.SetPassword(true)
	buf.SelectAll()

	state := Render(buf, true, true)
	if state.Text != strings.Repeat("•", 6) {
		t.Errorf("Text = %q, want six mask glyphs", state.Text)
	}
	if !state.Masked {
		t.Error("Masked = false")
	}
	if buf.Text() != "secret" {
		t.Errorf("content = %q, masking must not touch the buffer", buf.Text())
	}
	if state.SelStart != 0 || state.SelEnd != 6 {
		t.Errorf("selection = (%d, %d), want (0, 6)", state.SelStart, state.SelEnd)
	}
}

func TestRenderCustomMaskRune(t *testing.T) {
	buf := NewBuffer("abc", 0)
	buf.SetPassword(true)
	buf.SetMaskRune('*')

	if state := Render(buf, false, true); state.Text != "***" {
		t.Errorf("Text = %q, want %q", state.Text, "***")
	}
}

func TestRenderPlaceholder(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		edited      bool
		focused     bool
		placeholder bool
	}{
		{"empty unfocused", "", false, false, true},
		{"empty focused never edited", "", false, true, true},
		{"empty focused after editing", "", true, true, false},
		{"non-empty", "x", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer(tt.content, 0)
			buf.SetPlaceholder("Enter name...")
			if tt.edited {
				buf.edited = true
			}
			state := Render(buf, tt.focused, true)
			if state.Placeholder != tt.placeholder {
				t.Errorf("Placeholder = %v, want %v", state.Placeholder, tt.placeholder)
			}
			if tt.placeholder && state.Text != "Enter name..." {
				t.Errorf("Text = %q, want the placeholder", state.Text)
			}
		})
	}
}

func TestRenderCursorVisibility(t *testing.T) {
	buf := NewBuffer("ab", 0)

	if state := Render(buf, true, true); !state.CursorVisible {
		t.Error("focused + blink visible should show the cursor")
	}
	if state := Render(buf, true, false); state.CursorVisible {
		t.Error("blink-hidden phase should hide the cursor")
	}
	if state := Render(buf, false, true); state.CursorVisible {
		t.Error("unfocused field should never show the cursor")
	}
}

func TestRenderIsPure(t *testing.T) {
	buf := NewBuffer("hello", 0)
	buf.SetSelection(1, 3)

	a := Render(buf, true, true)
	b := Render(buf, true, true)
	if a != b {
		t.Errorf("Render not idempotent: %+v vs %+v", a, b)
	}
}

func TestRenderWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
	}{
		{"hello", 5},
		{"héllo", 5},
		{"日本", 4}, // wide runes take two cells
		{"", 0},
	}
	for _, tt := range tests {
		buf := NewBuffer(tt.text, 0)
		if state := Render(buf, false, true); state.Width != tt.width {
			t.Errorf("Width(%q) = %d, want %d", tt.text, state.Width, tt.width)
		}
	}
}

func TestBlinkAdvance(t *testing.T) {
	var b BlinkState
	if !b.Visible() {
		t.Fatal("fresh blink state should be visible")
	}

	if changed := b.Advance(BlinkInterval / 2); changed || !b.Visible() {
		t.Error("half interval should not toggle")
	}
	if changed := b.Advance(BlinkInterval / 2); !changed || b.Visible() {
		t.Error("full interval should hide the cursor")
	}
	if changed := b.Advance(BlinkInterval); !changed || !b.Visible() {
		t.Error("next interval should show it again")
	}

	// A long frame spanning two intervals toggles twice, landing back where
	// it started.
	if changed := b.Advance(2 * BlinkInterval); changed || !b.Visible() {
		t.Error("even number of toggles should report no net change")
	}
}

func TestBlinkReset(t *testing.T) {
	var b BlinkState
	b.Advance(BlinkInterval)
	if b.Visible() {
		t.Fatal("setup: cursor should be hidden")
	}

	b.Reset()
	if !b.Visible() {
		t.Error("Reset should make the cursor visible")
	}
	if b.Advance(BlinkInterval - time.Millisecond) {
		t.Error("Reset should restart the full interval")
	}
}
