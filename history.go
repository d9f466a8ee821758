package textfield

import "time"

// Snapshot is the undo unit: content, cursor, and selection anchor captured
// immediately before a content-changing command.
type Snapshot struct {
	content []rune
	cursor  int
	anchor  int
}

// Coalescing policy: consecutive single-rune insertions merge into the top
// undo entry while no other command intervenes, the previous insert happened
// within coalesceWindow, and the open entry covers fewer than
// coalesceRunLimit runes. Everything else (deletes, pastes, cuts, cursor
// motion, selection changes, focus changes, undo/redo) closes the window.
const (
	coalesceWindow   = 750 * time.Millisecond
	coalesceRunLimit = 32
)

// maxHistoryDepth caps the undo stack; the oldest entry is dropped beyond it.
const maxHistoryDepth = 100

// History is the per-buffer two-stack undo/redo store.
type History struct {
	undo []Snapshot
	redo []Snapshot

	// open coalescing window for plain character insertion
	coalescing bool
	lastInsert time.Time
	runLength  int

	now func() time.Time // test hook
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{now: time.Now}
}

// Record pushes a pre-command snapshot as a new atomic entry and clears the
// redo stack.
func (h *History) Record(before Snapshot) {
	h.closeRun()
	h.push(before)
}

// RecordInsert pushes a pre-insert snapshot for a plain character insertion,
// coalescing into the open entry when the window allows. Clears the redo
// stack either way.
func (h *History) RecordInsert(before Snapshot) {
	now := h.now()
	if h.coalescing && h.runLength < coalesceRunLimit && now.Sub(h.lastInsert) <= coalesceWindow {
		h.runLength++
		h.lastInsert = now
		h.redo = nil
		return
	}
	h.push(before)
	h.coalescing = true
	h.runLength = 1
	h.lastInsert = now
}

// CloseRun ends the current coalescing window so the next insertion starts a
// fresh undo entry. Called on cursor motion, selection changes, and focus
// changes.
func (h *History) CloseRun() {
	h.closeRun()
}

// Undo pops the undo stack, pushing the current state onto the redo stack.
// Reports false with a zero Snapshot when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	h.closeRun()
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return top, true
}

// Redo pops the redo stack, pushing the current state onto the undo stack.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	h.closeRun()
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return top, true
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Reset drops both stacks, for programmatic content replacement.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
	h.closeRun()
}

func (h *History) push(s Snapshot) {
	h.undo = append(h.undo, s)
	if len(h.undo) > maxHistoryDepth {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

func (h *History) closeRun() {
	h.coalescing = false
	h.runLength = 0
}
