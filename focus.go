package textfield

// FocusManager tracks which field, among an ordered set partitioned into
// named groups, currently holds keyboard focus. Tab and Shift+Tab cycling is
// strictly confined to the focused field's own group and wraps around at the
// group's ends. At most one field across all groups is focused at a time.
//
// The manager knows nothing about buffers or editors; the engine routes
// events to the focused field and flushes its pending undo run on focus
// changes.
type FocusManager struct {
	groups map[string]*focusGroup
	byID   map[FieldID]string // field -> owning group

	focused  FieldID
	hasFocus bool
}

type focusGroup struct {
	name   string
	fields []FieldID
}

// NewFocusManager creates an empty focus manager.
func NewFocusManager() *FocusManager {
	return &FocusManager{
		groups: make(map[string]*focusGroup),
		byID:   make(map[FieldID]string),
	}
}

// AddField appends a field to a group's tab order, creating the group on
// first use. A field belongs to exactly one group; re-adding moves it to the
// end of the new group.
func (fm *FocusManager) AddField(group string, id FieldID) {
	fm.AddFieldAt(group, id, -1)
}

// AddFieldAt inserts a field at position pos in the group's tab order.
// Out-of-range positions append.
func (fm *FocusManager) AddFieldAt(group string, id FieldID, pos int) {
	fm.RemoveField(id)
	g, ok := fm.groups[group]
	if !ok {
		g = &focusGroup{name: group}
		fm.groups[group] = g
	}
	if pos < 0 || pos >= len(g.fields) {
		g.fields = append(g.fields, id)
	} else {
		g.fields = append(g.fields[:pos], append([]FieldID{id}, g.fields[pos:]...)...)
	}
	fm.byID[id] = group
}

// RemoveField drops a field from its group, blurring it if focused. Empty
// groups are removed.
func (fm *FocusManager) RemoveField(id FieldID) {
	group, ok := fm.byID[id]
	if !ok {
		return
	}
	if fm.hasFocus && fm.focused == id {
		fm.hasFocus = false
	}
	g := fm.groups[group]
	for i, f := range g.fields {
		if f == id {
			g.fields = append(g.fields[:i], g.fields[i+1:]...)
			break
		}
	}
	if len(g.fields) == 0 {
		delete(fm.groups, group)
	}
	delete(fm.byID, id)
}

// Focused returns the focused field, if any.
func (fm *FocusManager) Focused() (FieldID, bool) {
	return fm.focused, fm.hasFocus
}

// IsFocused reports whether id holds focus.
func (fm *FocusManager) IsFocused(id FieldID) bool {
	return fm.hasFocus && fm.focused == id
}

// Group returns the group a field was registered in.
func (fm *FocusManager) Group(id FieldID) (string, bool) {
	g, ok := fm.byID[id]
	return g, ok
}

// Focus moves focus to id, implicitly blurring the previous field. Reports
// the previously focused field and whether focus actually changed. Unknown
// fields are ignored.
func (fm *FocusManager) Focus(id FieldID) (prev FieldID, hadPrev, changed bool) {
	if _, ok := fm.byID[id]; !ok {
		return 0, false, false
	}
	if fm.hasFocus && fm.focused == id {
		return id, true, false
	}
	prev, hadPrev = fm.focused, fm.hasFocus
	fm.focused = id
	fm.hasFocus = true
	return prev, hadPrev, true
}

// Blur clears focus (click outside all fields, or an explicit blur request).
// Reports the field that lost focus.
func (fm *FocusManager) Blur() (FieldID, bool) {
	if !fm.hasFocus {
		return 0, false
	}
	fm.hasFocus = false
	return fm.focused, true
}

// Next moves focus to the next field in the focused field's group, wrapping
// at the end. Without a focused field there is no group to cycle in, so this
// is a no-op.
func (fm *FocusManager) Next() (FieldID, bool) {
	return fm.cycle(1)
}

// Prev moves focus to the previous field in the group, wrapping at the start.
func (fm *FocusManager) Prev() (FieldID, bool) {
	return fm.cycle(-1)
}

func (fm *FocusManager) cycle(dir int) (FieldID, bool) {
	if !fm.hasFocus {
		return 0, false
	}
	g := fm.groups[fm.byID[fm.focused]]
	n := len(g.fields)
	for i, f := range g.fields {
		if f == fm.focused {
			fm.focused = g.fields[(i+dir+n)%n]
			return fm.focused, true
		}
	}
	return 0, false
}
