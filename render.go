package textfield

import (
	"time"

	"github.com/rivo/uniseg"
)

// BlinkInterval is the cursor blink half-period.
const BlinkInterval = 530 * time.Millisecond

// BlinkState is a per-field cursor blink timer, advanced by the host's
// per-frame delta. It resets to visible on every keystroke, cursor motion,
// and focus change so the cursor never appears to vanish right after typing.
type BlinkState struct {
	hidden  bool
	elapsed time.Duration
}

// Advance accumulates frame time and toggles visibility each BlinkInterval.
// Reports whether visibility changed.
func (b *BlinkState) Advance(delta time.Duration) bool {
	b.elapsed += delta
	changed := false
	for b.elapsed >= BlinkInterval {
		b.elapsed -= BlinkInterval
		b.hidden = !b.hidden
		changed = !changed
	}
	return changed
}

// Reset makes the cursor visible and restarts the interval.
func (b *BlinkState) Reset() {
	b.hidden = false
	b.elapsed = 0
}

// Visible reports whether the cursor glyph should currently be drawn.
func (b *BlinkState) Visible() bool { return !b.hidden }

// DisplayState is the render-ready projection of one field: everything the
// host needs to draw it, with no pixel layout. Mapping rune indices to
// screen coordinates stays a host concern.
type DisplayState struct {
	// Text is the run to draw: the content, a mask glyph per rune in
	// password mode, or the placeholder.
	Text string

	// Placeholder reports that Text is the placeholder, typically drawn
	// muted.
	Placeholder bool

	// Masked reports that Text is the password projection of the content.
	Masked bool

	// SelStart and SelEnd are the selection span as rune indices into Text;
	// equal when nothing is selected. Always zero while the placeholder
	// shows.
	SelStart, SelEnd int

	// Cursor is the caret position as a rune index into Text.
	Cursor int

	// CursorVisible gates the caret glyph on focus and blink phase.
	CursorVisible bool

	// Width is the monospace display width of Text in cells, for hosts that
	// lay out on a character grid.
	Width int
}

// Render projects buffer, focus, and blink state into a DisplayState. Pure
// and idempotent: rendering twice with the same inputs yields the same
// value.
func Render(buf *Buffer, focused bool, blinkVisible bool) DisplayState {
	state := DisplayState{
		Cursor:        buf.Cursor(),
		CursorVisible: focused && blinkVisible,
	}

	switch {
	case buf.Len() == 0 && buf.Placeholder() != "" && (!focused || !buf.Edited()):
		state.Text = buf.Placeholder()
		state.Placeholder = true
		state.Cursor = 0
	case buf.Password():
		masked := make([]rune, buf.Len())
		for i := range masked {
			masked[i] = buf.maskRune
		}
		state.Text = string(masked)
		state.Masked = true
		state.SelStart, state.SelEnd = buf.Selection()
	default:
		state.Text = buf.Text()
		state.SelStart, state.SelEnd = buf.Selection()
	}

	state.Width = uniseg.StringWidth(state.Text)
	return state
}
