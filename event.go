package textfield

// FieldID is the stable identifier the host uses to address a field.
type FieldID uint32

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on macOS, Win key elsewhere
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Key identifies a non-character key the editing core reacts to. The host
// maps its own keycodes onto these before delivery.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape

	// Letter keys, contiguous so KeyA + (r - 'a') addresses any of them.
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// PointerKind discriminates pointer event stages.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerDrag
	PointerUp
	PointerDoubleClick
)

// Event is a raw host input event addressed to a field.
type Event interface {
	// Target returns the field the host addressed the event to.
	Target() FieldID
}

// KeyEvent is a navigation or editing key press.
type KeyEvent struct {
	Field FieldID
	Key   Key
	Mods  Modifiers
}

func (e KeyEvent) Target() FieldID { return e.Field }

// CharEvent is a typed printable character.
type CharEvent struct {
	Field FieldID
	Rune  rune
	Mods  Modifiers
}

func (e CharEvent) Target() FieldID { return e.Field }

// PointerEvent is a click or drag. X is the horizontal offset, in host
// units, from the left edge of the field's text run; the engine resolves it
// to a rune index through the host's MeasureFunc.
type PointerEvent struct {
	Field FieldID
	Kind  PointerKind
	X     float64
	Mods  Modifiers
}

func (e PointerEvent) Target() FieldID { return e.Field }

// PasteEvent is an explicit paste request (menu action, middle click).
type PasteEvent struct {
	Field FieldID
}

func (e PasteEvent) Target() FieldID { return e.Field }

// FocusEvent is an explicit focus or blur request for a field.
type FocusEvent struct {
	Field FieldID
	Blur  bool
}

func (e FocusEvent) Target() FieldID { return e.Field }
