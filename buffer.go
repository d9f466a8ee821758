package textfield

// Buffer holds the authoritative content and cursor/selection state for one
// input field. Content is stored as runes so cursor arithmetic stays
// codepoint-safe. Buffers are mutated only through an Editor; the engine
// processes one event at a time, so Buffer itself carries no lock.
type Buffer struct {
	content []rune

	// cursor is an index into content, 0 = before the first rune.
	cursor int

	// anchor is where the selection started. anchor == cursor means no
	// selection; the selected span is [min(anchor,cursor), max(anchor,cursor)).
	anchor int

	maxLength   int // 0 = no limit
	password    bool
	maskRune    rune
	placeholder string

	// edited flips once the user changes content and never resets.
	// Placeholder display depends on it.
	edited bool
}

// NewBuffer creates a buffer with the given initial content. Initial content
// longer than maxLength is truncated rather than rejected.
func NewBuffer(initial string, maxLength int) *Buffer {
	content := []rune(initial)
	if maxLength > 0 && len(content) > maxLength {
		content = content[:maxLength]
	}
	return &Buffer{
		content:   content,
		maxLength: maxLength,
		maskRune:  defaultMaskRune,
	}
}

const defaultMaskRune = '•'

// Text returns the current content.
func (b *Buffer) Text() string {
	return string(b.content)
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return len(b.content)
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamping to [0, Len()] and collapsing any
// selection.
func (b *Buffer) SetCursor(pos int) {
	b.cursor = b.clamp(pos)
	b.anchor = b.cursor
}

// Selection returns the ordered selection bounds (start <= end).
// Both equal the cursor position when nothing is selected.
func (b *Buffer) Selection() (start, end int) {
	if b.anchor < b.cursor {
		return b.anchor, b.cursor
	}
	return b.cursor, b.anchor
}

// HasSelection reports whether a non-empty span is selected.
func (b *Buffer) HasSelection() bool {
	return b.anchor != b.cursor
}

// SelectedText returns the selected span, or "" without a selection.
func (b *Buffer) SelectedText() string {
	start, end := b.Selection()
	return string(b.content[start:end])
}

// SelectAll selects the whole content, cursor at the end.
func (b *Buffer) SelectAll() {
	b.anchor = 0
	b.cursor = len(b.content)
}

// ClearSelection collapses the selection to the cursor without moving it.
func (b *Buffer) ClearSelection() {
	b.anchor = b.cursor
}

// SetSelection sets anchor and cursor directly, clamped to valid range.
func (b *Buffer) SetSelection(anchor, cursor int) {
	b.anchor = b.clamp(anchor)
	b.cursor = b.clamp(cursor)
}

// Placeholder returns the placeholder text.
func (b *Buffer) Placeholder() string {
	return b.placeholder
}

// SetPlaceholder sets the placeholder shown while the buffer is empty.
func (b *Buffer) SetPlaceholder(s string) {
	b.placeholder = s
}

// Password reports whether display masking is enabled. The content itself is
// never masked.
func (b *Buffer) Password() bool {
	return b.password
}

// SetPassword enables or disables display masking.
func (b *Buffer) SetPassword(enabled bool) {
	b.password = enabled
}

// SetMaskRune overrides the glyph used to mask password content.
func (b *Buffer) SetMaskRune(r rune) {
	if r != 0 {
		b.maskRune = r
	}
}

// MaxLength returns the rune cap, 0 meaning unlimited.
func (b *Buffer) MaxLength() int {
	return b.maxLength
}

// Edited reports whether the user has ever changed the content.
func (b *Buffer) Edited() bool {
	return b.edited
}

// snapshot captures content, cursor, and anchor for undo history.
func (b *Buffer) snapshot() Snapshot {
	content := make([]rune, len(b.content))
	copy(content, b.content)
	return Snapshot{content: content, cursor: b.cursor, anchor: b.anchor}
}

// restore replaces the buffer state from an undo snapshot.
func (b *Buffer) restore(s Snapshot) {
	b.content = make([]rune, len(s.content))
	copy(b.content, s.content)
	b.cursor = b.clamp(s.cursor)
	b.anchor = b.clamp(s.anchor)
}

// replaceRange splices text into [start, end), leaving cursor and anchor
// collapsed after the inserted text.
func (b *Buffer) replaceRange(start, end int, text []rune) {
	start = b.clamp(start)
	end = b.clamp(end)
	if end < start {
		start, end = end, start
	}
	next := make([]rune, 0, len(b.content)-(end-start)+len(text))
	next = append(next, b.content[:start]...)
	next = append(next, text...)
	next = append(next, b.content[end:]...)
	b.content = next
	b.cursor = start + len(text)
	b.anchor = b.cursor
	b.edited = true
}

// setText replaces content wholesale, clamping cursor and anchor. It does not
// set the edited flag; programmatic resets keep placeholder behavior intact.
func (b *Buffer) setText(s string) {
	content := []rune(s)
	if b.maxLength > 0 && len(content) > b.maxLength {
		content = content[:b.maxLength]
	}
	b.content = content
	b.cursor = b.clamp(b.cursor)
	b.anchor = b.clamp(b.anchor)
}

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}
