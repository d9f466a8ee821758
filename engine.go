package textfield

import (
	"sync"
	"time"

	"github.com/rivo/uniseg"
)

// MeasureFunc returns the horizontal offset, in host units, of the caret
// slot before rune index i of text. The host supplies one backed by its text
// shaper so pointer positions resolve against real glyph metrics; without
// one the engine falls back to a monospace approximation using display
// widths.
type MeasureFunc func(text string, i int) float64

// Engine is the host-facing entry point: a registry of fields keyed by
// FieldID, a focus manager, a keymap, and a clipboard. The host calls
// ProcessEvent once per input event and Tick once per frame, then reads
// Display per field. Calls are serialized by an internal mutex, preserving
// the per-field event ordering the host delivers.
type Engine struct {
	mu sync.Mutex

	fields  map[FieldID]*field
	focus   *FocusManager
	keymap  Keymap
	clip    Clipboard
	measure MeasureFunc
	nextID  FieldID
}

type field struct {
	id FieldID
	ed *Editor

	blink BlinkState

	display      DisplayState
	displayValid bool

	onSubmit      func(string)
	clearOnSubmit bool

	dragging bool
}

// NewEngine creates an engine with the default keymap and no clipboard
// (clipboard operations degrade to no-ops until SetClipboard).
func NewEngine() *Engine {
	return &Engine{
		fields: make(map[FieldID]*field),
		focus:  NewFocusManager(),
		keymap: DefaultKeymap(),
		clip:   NullClipboard{},
	}
}

// SetClipboard wires a clipboard adapter into every field.
func (en *Engine) SetClipboard(c Clipboard) *Engine {
	en.mu.Lock()
	defer en.mu.Unlock()
	if c == nil {
		c = NullClipboard{}
	}
	en.clip = c
	for _, f := range en.fields {
		f.ed.SetClipboard(c)
	}
	return en
}

// SetKeymap replaces the binding table.
func (en *Engine) SetKeymap(km Keymap) *Engine {
	en.mu.Lock()
	defer en.mu.Unlock()
	if km != nil {
		en.keymap = km
	}
	return en
}

// SetMeasureFunc wires the host's text measurement for pointer resolution.
func (en *Engine) SetMeasureFunc(fn MeasureFunc) *Engine {
	en.mu.Lock()
	defer en.mu.Unlock()
	en.measure = fn
	return en
}

// AddField constructs a field from cfg and registers it in group's tab
// order. The returned FieldID is stable for the field's lifetime.
func (en *Engine) AddField(group string, cfg Config) FieldID {
	en.mu.Lock()
	defer en.mu.Unlock()

	en.nextID++
	id := en.nextID
	f := &field{
		id:            id,
		ed:            NewEditor(cfg),
		onSubmit:      cfg.OnSubmit,
		clearOnSubmit: cfg.ClearOnSubmit,
	}
	f.ed.SetClipboard(en.clip)
	f.blink.Reset()
	en.fields[id] = f
	en.focus.AddFieldAt(group, id, cfg.Position-1)
	return id
}

// RemoveField destroys a field and removes it from its focus group.
func (en *Engine) RemoveField(id FieldID) {
	en.mu.Lock()
	defer en.mu.Unlock()
	delete(en.fields, id)
	en.focus.RemoveField(id)
}

// Focused returns the focused field, if any.
func (en *Engine) Focused() (FieldID, bool) {
	en.mu.Lock()
	defer en.mu.Unlock()
	return en.focus.Focused()
}

// Text returns a field's content.
func (en *Engine) Text(id FieldID) string {
	en.mu.Lock()
	defer en.mu.Unlock()
	if f := en.fields[id]; f != nil {
		return f.ed.Text()
	}
	return ""
}

// SetText replaces a field's content programmatically, resetting its undo
// history.
func (en *Engine) SetText(id FieldID, text string) {
	en.mu.Lock()
	defer en.mu.Unlock()
	if f := en.fields[id]; f != nil {
		f.ed.SetText(text)
		f.displayValid = false
	}
}

// Validation returns a field's current validation outcome.
func (en *Engine) Validation(id FieldID) ValidationState {
	en.mu.Lock()
	defer en.mu.Unlock()
	if f := en.fields[id]; f != nil {
		return f.ed.Validation()
	}
	return ValidationState{Valid: true}
}

// Display returns the render-ready representation of a field, recomputed
// only when the field changed since the last call.
func (en *Engine) Display(id FieldID) DisplayState {
	en.mu.Lock()
	defer en.mu.Unlock()
	f := en.fields[id]
	if f == nil {
		return DisplayState{}
	}
	en.refreshDisplay(f)
	return f.display
}

// Tick advances blink timers by the host frame delta. Call once per frame.
func (en *Engine) Tick(delta time.Duration) {
	en.mu.Lock()
	defer en.mu.Unlock()
	id, ok := en.focus.Focused()
	if !ok {
		return
	}
	if f := en.fields[id]; f != nil && f.blink.Advance(delta) {
		f.displayValid = false
	}
}

// ProcessEvent routes one host input event. Reports whether the event was
// consumed by the editing core.
func (en *Engine) ProcessEvent(ev Event) bool {
	en.mu.Lock()
	defer en.mu.Unlock()

	switch ev := ev.(type) {
	case FocusEvent:
		if ev.Blur {
			return en.blur()
		}
		return en.focusField(ev.Field)

	case CharEvent:
		f := en.focusedField()
		if f == nil || ev.Mods.Ctrl() || ev.Mods.Super() {
			return false
		}
		f.ed.InsertText(string(ev.Rune))
		en.touch(f)
		return true

	case KeyEvent:
		return en.handleKey(ev)

	case PasteEvent:
		f := en.focusedField()
		if f == nil {
			return false
		}
		f.ed.Paste()
		en.touch(f)
		return true

	case PointerEvent:
		return en.handlePointer(ev)
	}
	return false
}

func (en *Engine) focusedField() *field {
	id, ok := en.focus.Focused()
	if !ok {
		return nil
	}
	return en.fields[id]
}

// focusField moves focus, flushing the previous field's coalescing window so
// a later undo there stays scoped to what was typed before the switch.
func (en *Engine) focusField(id FieldID) bool {
	prev, hadPrev, changed := en.focus.Focus(id)
	if !changed {
		return hadPrev
	}
	if hadPrev {
		if pf := en.fields[prev]; pf != nil {
			pf.ed.history.CloseRun()
			pf.ed.ClearSelection()
			pf.displayValid = false
		}
	}
	if f := en.fields[id]; f != nil {
		en.touch(f)
	}
	return true
}

func (en *Engine) blur() bool {
	id, ok := en.focus.Blur()
	if !ok {
		return false
	}
	if f := en.fields[id]; f != nil {
		f.ed.history.CloseRun()
		f.ed.ClearSelection()
		f.displayValid = false
	}
	return true
}

func (en *Engine) handleKey(ev KeyEvent) bool {
	f := en.focusedField()
	if f == nil {
		return false
	}
	cmd, shiftFell, ok := en.keymap.Resolve(ev.Key, ev.Mods)
	if !ok {
		return false
	}
	extend := shiftFell && ev.Mods.Shift()

	switch cmd {
	case CmdMoveLeft:
		f.ed.MoveCursor(MotionLeft, extend)
	case CmdMoveRight:
		f.ed.MoveCursor(MotionRight, extend)
	case CmdMoveStart:
		f.ed.MoveCursor(MotionStart, extend)
	case CmdMoveEnd:
		f.ed.MoveCursor(MotionEnd, extend)
	case CmdMoveWordLeft:
		f.ed.MoveCursor(MotionWordLeft, extend)
	case CmdMoveWordRight:
		f.ed.MoveCursor(MotionWordRight, extend)
	case CmdDeleteBackward:
		f.ed.DeleteBackward()
	case CmdDeleteForward:
		f.ed.DeleteForward()
	case CmdDeleteWordBackward:
		f.ed.DeleteWordBackward()
	case CmdDeleteWordForward:
		f.ed.DeleteWordForward()
	case CmdSelectAll:
		f.ed.SelectAll()
	case CmdClearSelection:
		f.ed.ClearSelection()
	case CmdCopy:
		f.ed.Copy()
	case CmdCut:
		f.ed.Cut()
	case CmdPaste:
		f.ed.Paste()
	case CmdUndo:
		f.ed.Undo()
	case CmdRedo:
		f.ed.Redo()
	case CmdFocusNext:
		if next, ok := en.focus.Next(); ok && next != f.id {
			return en.moveFocusTo(f, next)
		}
	case CmdFocusPrev:
		if prev, ok := en.focus.Prev(); ok && prev != f.id {
			return en.moveFocusTo(f, prev)
		}
	case CmdSubmit:
		text := f.ed.Text()
		if f.onSubmit != nil {
			f.onSubmit(text)
		}
		if f.clearOnSubmit {
			f.ed.SetText("")
		}
	default:
		return false
	}
	en.touch(f)
	return true
}

// moveFocusTo finalizes a Tab/Shift+Tab cycle the focus manager already
// performed.
func (en *Engine) moveFocusTo(from *field, to FieldID) bool {
	from.ed.history.CloseRun()
	from.ed.ClearSelection()
	from.displayValid = false
	if f := en.fields[to]; f != nil {
		en.touch(f)
	}
	return true
}

func (en *Engine) handlePointer(ev PointerEvent) bool {
	f := en.fields[ev.Field]
	if f == nil {
		return false
	}

	switch ev.Kind {
	case PointerDown:
		en.focusField(ev.Field)
		pos := en.runeIndexAt(f, ev.X)
		if ev.Mods.Shift() {
			f.ed.Buffer().SetSelection(f.ed.Buffer().anchor, pos)
		} else {
			f.ed.Buffer().SetCursor(pos)
		}
		f.ed.history.CloseRun()
		f.dragging = true

	case PointerDrag:
		if !f.dragging {
			return false
		}
		pos := en.runeIndexAt(f, ev.X)
		f.ed.Buffer().SetSelection(f.ed.Buffer().anchor, pos)

	case PointerUp:
		f.dragging = false

	case PointerDoubleClick:
		en.focusField(ev.Field)
		f.ed.SelectWordAt(en.runeIndexAt(f, ev.X))
	}

	en.touch(f)
	return true
}

// runeIndexAt resolves a pointer X offset to the nearest caret slot in the
// field's display run.
func (en *Engine) runeIndexAt(f *field, x float64) int {
	buf := f.ed.Buffer()
	n := buf.Len()
	if n == 0 || x <= 0 {
		return 0
	}
	text := Render(buf, true, true).Text
	measure := en.measure
	if measure == nil {
		measure = monospaceMeasure
	}
	prev := 0.0
	for i := 1; i <= n; i++ {
		at := measure(text, i)
		if x < at {
			if x-prev < at-x {
				return i - 1
			}
			return i
		}
		prev = at
	}
	return n
}

// monospaceMeasure approximates caret offsets as one unit per display cell.
func monospaceMeasure(text string, i int) float64 {
	runes := []rune(text)
	if i > len(runes) {
		i = len(runes)
	}
	return float64(uniseg.StringWidth(string(runes[:i])))
}

// touch resets a field's blink to visible and invalidates its cached
// display.
func (en *Engine) touch(f *field) {
	f.blink.Reset()
	f.displayValid = false
}

func (en *Engine) refreshDisplay(f *field) {
	if f.displayValid && !f.ed.Dirty() {
		return
	}
	f.ed.TakeDirty()
	f.display = Render(f.ed.Buffer(), en.focus.IsFocused(f.id), f.blink.Visible())
	f.displayValid = true
}
