package textfield

import "strings"

// Motion is a cursor movement direction for MoveCursor.
type Motion uint8

const (
	MotionLeft Motion = iota
	MotionRight
	MotionStart
	MotionEnd
	MotionWordLeft
	MotionWordRight
)

// Editor applies discrete edit commands to one Buffer, consulting the field's
// Filter and Rules and recording to its History. Every command is synchronous
// and returns normally on the silent-rejection cases (filtered characters,
// boundary deletes, empty stacks, missing clipboard): interactive editing
// treats those as expected, not as errors.
type Editor struct {
	buf       *Buffer
	filter    Filter
	transform Transform
	rules     []Rule
	history   *History
	clip      Clipboard
	readOnly  bool

	// dirty marks "changed this frame"; render sync clears it.
	dirty      bool
	validation ValidationState

	onChange func(text string)
}

// NewEditor builds an editor over a fresh buffer configured by cfg.
func NewEditor(cfg Config) *Editor {
	buf := NewBuffer(cfg.Value, cfg.MaxLength)
	buf.SetPlaceholder(cfg.Placeholder)
	buf.SetPassword(cfg.Password)
	buf.SetMaskRune(cfg.MaskRune)
	ed := &Editor{
		buf:       buf,
		filter:    cfg.Filter,
		transform: cfg.Transform,
		rules:     cfg.Rules,
		history:   NewHistory(),
		clip:      NullClipboard{},
		readOnly:  cfg.ReadOnly,
		onChange:  cfg.OnChange,
	}
	ed.validation = Validate(buf.Text(), ed.rules)
	return ed
}

// Buffer exposes the underlying buffer state.
func (e *Editor) Buffer() *Buffer { return e.buf }

// Text returns the current content.
func (e *Editor) Text() string { return e.buf.Text() }

// Validation returns the outcome of the field's rule list against the
// current content.
func (e *Editor) Validation() ValidationState { return e.validation }

// Dirty reports whether state changed since the last TakeDirty.
func (e *Editor) Dirty() bool { return e.dirty }

// TakeDirty returns the dirty flag and clears it.
func (e *Editor) TakeDirty() bool {
	d := e.dirty
	e.dirty = false
	return d
}

// SetClipboard replaces the clipboard adapter.
func (e *Editor) SetClipboard(c Clipboard) {
	if c == nil {
		c = NullClipboard{}
	}
	e.clip = c
}

// ReadOnly reports whether edits are rejected.
func (e *Editor) ReadOnly() bool { return e.readOnly }

// InsertText inserts s at the cursor, replacing the selection if one is
// active. Characters rejected by the filter are dropped, newlines are
// stripped, and the insertion is truncated to the remaining capacity. A
// single surviving character coalesces into the open undo run; anything else
// starts a new entry.
func (e *Editor) InsertText(s string) {
	e.insertText(s, true)
}

func (e *Editor) insertText(s string, coalesce bool) {
	if e.readOnly {
		return
	}
	s = strings.NewReplacer("\n", "", "\r", "").Replace(s)

	selStart, selEnd := e.buf.Selection()
	hadSelection := selStart != selEnd

	// Admission context is the prospective value: current content minus the
	// selection, extended by each already-accepted rune.
	ctx := make([]rune, 0, e.buf.Len())
	ctx = append(ctx, e.buf.content[:selStart]...)
	ctx = append(ctx, e.buf.content[selEnd:]...)

	accepted := make([]rune, 0, len(s))
	prev := rune(0)
	if selStart > 0 {
		prev = e.buf.content[selStart-1]
	}
	for _, r := range s {
		r = e.transform.apply(r, prev)
		if !e.filter.Allow(r, string(ctx)) {
			continue
		}
		accepted = append(accepted, r)
		ctx = append(ctx, r)
		prev = r
	}

	if max := e.buf.MaxLength(); max > 0 {
		available := max - (e.buf.Len() - (selEnd - selStart))
		if available < 0 {
			available = 0
		}
		if len(accepted) > available {
			accepted = accepted[:available]
		}
	}

	if len(accepted) == 0 && !hadSelection {
		return
	}

	before := e.buf.snapshot()
	if coalesce && len(accepted) == 1 && !hadSelection {
		e.history.RecordInsert(before)
	} else {
		e.history.Record(before)
	}

	e.buf.replaceRange(selStart, selEnd, accepted)
	e.contentChanged()
}

// DeleteBackward deletes the selection, or the rune before the cursor.
// A no-op at the start of the buffer.
func (e *Editor) DeleteBackward() {
	e.deleteRelative(-1)
}

// DeleteForward deletes the selection, or the rune after the cursor.
// A no-op at the end of the buffer.
func (e *Editor) DeleteForward() {
	e.deleteRelative(1)
}

func (e *Editor) deleteRelative(dir int) {
	if e.readOnly {
		return
	}
	if e.deleteSelection() {
		return
	}
	start, end := e.buf.cursor, e.buf.cursor
	if dir < 0 {
		start--
	} else {
		end++
	}
	if start < 0 || end > e.buf.Len() {
		return
	}
	e.history.Record(e.buf.snapshot())
	e.buf.replaceRange(start, end, nil)
	e.contentChanged()
}

// DeleteWordBackward deletes the selection, or back to the previous word
// boundary.
func (e *Editor) DeleteWordBackward() {
	if e.readOnly {
		return
	}
	if e.deleteSelection() {
		return
	}
	start := wordBoundaryLeft(e.buf.content, e.buf.cursor)
	if start == e.buf.cursor {
		return
	}
	e.history.Record(e.buf.snapshot())
	e.buf.replaceRange(start, e.buf.cursor, nil)
	e.contentChanged()
}

// DeleteWordForward deletes the selection, or forward to the next word
// boundary.
func (e *Editor) DeleteWordForward() {
	if e.readOnly {
		return
	}
	if e.deleteSelection() {
		return
	}
	end := wordBoundaryRight(e.buf.content, e.buf.cursor)
	if end == e.buf.cursor {
		return
	}
	e.history.Record(e.buf.snapshot())
	e.buf.replaceRange(e.buf.cursor, end, nil)
	e.contentChanged()
}

// deleteSelection removes the selected span when one exists, recording an
// atomic undo entry.
func (e *Editor) deleteSelection() bool {
	start, end := e.buf.Selection()
	if start == end {
		return false
	}
	e.history.Record(e.buf.snapshot())
	e.buf.replaceRange(start, end, nil)
	e.contentChanged()
	return true
}

// MoveCursor applies a motion. With extend the anchor stays put and only the
// cursor moves; without it any selection collapses. Left/right collapse to
// the matching selection edge without travelling further, matching platform
// convention.
func (e *Editor) MoveCursor(m Motion, extend bool) {
	e.history.CloseRun()

	if !extend && e.buf.HasSelection() && (m == MotionLeft || m == MotionRight) {
		start, end := e.buf.Selection()
		if m == MotionLeft {
			e.buf.SetCursor(start)
		} else {
			e.buf.SetCursor(end)
		}
		e.dirty = true
		return
	}

	pos := e.buf.cursor
	switch m {
	case MotionLeft:
		pos--
	case MotionRight:
		pos++
	case MotionStart:
		pos = 0
	case MotionEnd:
		pos = e.buf.Len()
	case MotionWordLeft:
		pos = wordBoundaryLeft(e.buf.content, pos)
	case MotionWordRight:
		pos = wordBoundaryRight(e.buf.content, pos)
	}

	pos = e.buf.clamp(pos)
	e.buf.cursor = pos
	if !extend {
		e.buf.anchor = pos
	}
	e.dirty = true
}

// SelectAll selects the whole content.
func (e *Editor) SelectAll() {
	e.history.CloseRun()
	e.buf.SelectAll()
	e.dirty = true
}

// ClearSelection collapses the selection to the cursor. Idempotent.
func (e *Editor) ClearSelection() {
	e.history.CloseRun()
	e.buf.ClearSelection()
	e.dirty = true
}

// SelectWordAt selects the word containing pos, for double-click.
func (e *Editor) SelectWordAt(pos int) {
	e.history.CloseRun()
	start, end := wordRangeAt(e.buf.content, pos)
	e.buf.SetSelection(start, end)
	e.dirty = true
}

// Copy writes the selection to the clipboard. Password fields never export
// their content.
func (e *Editor) Copy() {
	if e.buf.Password() || !e.buf.HasSelection() {
		return
	}
	e.clip.WriteText(e.buf.SelectedText())
}

// Cut copies the selection (except in password mode, where the delete still
// happens but nothing is exported) and deletes it.
func (e *Editor) Cut() {
	if !e.buf.HasSelection() {
		return
	}
	if !e.buf.Password() {
		e.clip.WriteText(e.buf.SelectedText())
	}
	if e.readOnly {
		return
	}
	e.deleteSelection()
}

// Paste inserts clipboard text through the same filter and capacity gates as
// typing. Always an atomic undo entry. A no-op when the clipboard is
// unavailable or empty.
func (e *Editor) Paste() {
	text := e.clip.ReadText()
	if text == "" {
		return
	}
	e.insertText(text, false)
}

// Undo restores the newest undo snapshot, pushing the current state onto the
// redo stack. A no-op when the stack is empty.
func (e *Editor) Undo() {
	before, ok := e.history.Undo(e.buf.snapshot())
	if !ok {
		return
	}
	e.buf.restore(before)
	e.contentChanged()
}

// Redo restores the newest redo snapshot. A no-op when the stack is empty.
func (e *Editor) Redo() {
	after, ok := e.history.Redo(e.buf.snapshot())
	if !ok {
		return
	}
	e.buf.restore(after)
	e.contentChanged()
}

// SetText replaces the content programmatically, bypassing filter and
// history: the host resetting a field should not leave the old value one
// Ctrl+Z away.
func (e *Editor) SetText(s string) {
	e.buf.setText(strings.NewReplacer("\n", "", "\r", "").Replace(s))
	e.history.Reset()
	e.contentChanged()
}

func (e *Editor) contentChanged() {
	e.dirty = true
	e.validation = Validate(e.buf.Text(), e.rules)
	if e.onChange != nil {
		e.onChange(e.buf.Text())
	}
}
