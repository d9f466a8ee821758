package textfield

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Command is a logical editing action a key chord resolves to.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveStart
	CmdMoveEnd
	CmdMoveWordLeft
	CmdMoveWordRight
	CmdDeleteBackward
	CmdDeleteForward
	CmdDeleteWordBackward
	CmdDeleteWordForward
	CmdSelectAll
	CmdClearSelection
	CmdCopy
	CmdCut
	CmdPaste
	CmdUndo
	CmdRedo
	CmdFocusNext
	CmdFocusPrev
	CmdSubmit
)

// Chord is a key plus the modifiers held with it. Shift is part of the chord
// only when a binding names it explicitly; otherwise it falls through to the
// shiftless binding and extends the selection for motion commands.
type Chord struct {
	Key  Key
	Mods Modifiers
}

// Keymap maps chords to commands.
type Keymap map[Chord]Command

// DefaultKeymap returns the stock bindings: arrows with Alt for word motion
// and Ctrl/Super for line ends, Home/End, Backspace/Delete with Alt word
// variants, Ctrl/Super+A/C/X/V/Z, Ctrl+Shift+Z and Ctrl+Y for redo, Tab and
// Shift+Tab for group navigation, Enter to submit, Escape to drop the
// selection.
func DefaultKeymap() Keymap {
	km := Keymap{
		{KeyLeft, 0}:           CmdMoveLeft,
		{KeyRight, 0}:          CmdMoveRight,
		{KeyLeft, ModAlt}:      CmdMoveWordLeft,
		{KeyRight, ModAlt}:     CmdMoveWordRight,
		{KeyHome, 0}:           CmdMoveStart,
		{KeyEnd, 0}:            CmdMoveEnd,
		{KeyBackspace, 0}:      CmdDeleteBackward,
		{KeyBackspace, ModAlt}: CmdDeleteWordBackward,
		{KeyDelete, 0}:         CmdDeleteForward,
		{KeyDelete, ModAlt}:    CmdDeleteWordForward,
		{KeyTab, 0}:            CmdFocusNext,
		{KeyTab, ModShift}:     CmdFocusPrev,
		{KeyEnter, 0}:          CmdSubmit,
		{KeyEscape, 0}:         CmdClearSelection,
	}
	// Ctrl on most platforms, Super on macOS; bind both.
	for _, mod := range []Modifiers{ModCtrl, ModSuper} {
		km[Chord{KeyLeft, mod}] = CmdMoveStart
		km[Chord{KeyRight, mod}] = CmdMoveEnd
		km[Chord{KeyA, mod}] = CmdSelectAll
		km[Chord{KeyC, mod}] = CmdCopy
		km[Chord{KeyX, mod}] = CmdCut
		km[Chord{KeyV, mod}] = CmdPaste
		km[Chord{KeyZ, mod}] = CmdUndo
		km[Chord{KeyZ, mod | ModShift}] = CmdRedo
	}
	km[Chord{KeyY, ModCtrl}] = CmdRedo
	return km
}

// Resolve looks up a chord, falling back to the binding without Shift so
// Shift+motion extends the selection without needing its own entries.
// Reports whether the shiftless fallback was taken.
func (k Keymap) Resolve(key Key, mods Modifiers) (cmd Command, shiftFallthrough bool, ok bool) {
	if cmd, ok := k[Chord{key, mods}]; ok {
		return cmd, false, true
	}
	if mods.Shift() {
		if cmd, ok := k[Chord{key, mods &^ ModShift}]; ok {
			return cmd, true, true
		}
	}
	return CmdNone, false, false
}

// commandNames is the canonical action-name registry used by TOML keymaps.
// "none" unbinds a chord.
var commandNames = map[string]Command{
	"none":                 CmdNone,
	"move_left":            CmdMoveLeft,
	"move_right":           CmdMoveRight,
	"move_start":           CmdMoveStart,
	"move_end":             CmdMoveEnd,
	"move_word_left":       CmdMoveWordLeft,
	"move_word_right":      CmdMoveWordRight,
	"delete_backward":      CmdDeleteBackward,
	"delete_forward":       CmdDeleteForward,
	"delete_word_backward": CmdDeleteWordBackward,
	"delete_word_forward":  CmdDeleteWordForward,
	"select_all":           CmdSelectAll,
	"clear_selection":      CmdClearSelection,
	"copy":                 CmdCopy,
	"cut":                  CmdCut,
	"paste":                CmdPaste,
	"undo":                 CmdUndo,
	"redo":                 CmdRedo,
	"focus_next":           CmdFocusNext,
	"focus_prev":           CmdFocusPrev,
	"submit":               CmdSubmit,
}

var keyNames = map[string]Key{
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"escape":    KeyEscape,
}

func init() {
	for r := 'a'; r <= 'z'; r++ {
		keyNames[string(r)] = KeyA + Key(r-'a')
	}
}

// keymapFile is the TOML shape:
//
//	[bindings]
//	"ctrl+shift+z" = "redo"
//	"alt+backspace" = "delete_word_backward"
//	"ctrl+y" = "none"
type keymapFile struct {
	Bindings map[string]string `toml:"bindings"`
}

// ParseKeymap decodes TOML keymap overrides applied on top of the default
// bindings. Unknown keys or action names are config errors.
func ParseKeymap(data []byte) (Keymap, error) {
	var file keymapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	km := DefaultKeymap()
	for chordSpec, action := range file.Bindings {
		chord, err := parseChord(chordSpec)
		if err != nil {
			return nil, err
		}
		cmd, ok := commandNames[action]
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", action)
		}
		if cmd == CmdNone {
			delete(km, chord)
			continue
		}
		km[chord] = cmd
	}
	return km, nil
}

// LoadKeymap reads a TOML keymap file from disk.
func LoadKeymap(path string) (Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return ParseKeymap(data)
}

// parseChord parses "ctrl+shift+z" style chord specs. Modifier names:
// shift, ctrl, alt (option), super (cmd).
func parseChord(spec string) (Chord, error) {
	var chord Chord
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	for i, part := range parts {
		last := i == len(parts)-1
		switch part {
		case "shift":
			chord.Mods |= ModShift
		case "ctrl", "control":
			chord.Mods |= ModCtrl
		case "alt", "option":
			chord.Mods |= ModAlt
		case "super", "cmd", "meta":
			chord.Mods |= ModSuper
		default:
			key, ok := keyNames[part]
			if !ok || !last {
				return Chord{}, fmt.Errorf("keymap: bad chord %q", spec)
			}
			chord.Key = key
		}
	}
	if chord.Key == KeyNone {
		return Chord{}, fmt.Errorf("keymap: chord %q names no key", spec)
	}
	return chord, nil
}
