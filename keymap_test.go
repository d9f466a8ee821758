package textfield

import "testing"

func TestDefaultKeymapBindings(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		name string
		key  Key
		mods Modifiers
		want Command
	}{
		{"left", KeyLeft, 0, CmdMoveLeft},
		{"alt+left word", KeyLeft, ModAlt, CmdMoveWordLeft},
		{"ctrl+left line start", KeyLeft, ModCtrl, CmdMoveStart},
		{"super+right line end", KeyRight, ModSuper, CmdMoveEnd},
		{"home", KeyHome, 0, CmdMoveStart},
		{"backspace", KeyBackspace, 0, CmdDeleteBackward},
		{"alt+backspace word", KeyBackspace, ModAlt, CmdDeleteWordBackward},
		{"ctrl+a", KeyA, ModCtrl, CmdSelectAll},
		{"super+v", KeyV, ModSuper, CmdPaste},
		{"ctrl+z undo", KeyZ, ModCtrl, CmdUndo},
		{"ctrl+shift+z redo", KeyZ, ModCtrl | ModShift, CmdRedo},
		{"ctrl+y redo", KeyY, ModCtrl, CmdRedo},
		{"tab", KeyTab, 0, CmdFocusNext},
		{"shift+tab", KeyTab, ModShift, CmdFocusPrev},
		{"enter", KeyEnter, 0, CmdSubmit},
		{"escape", KeyEscape, 0, CmdClearSelection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, ok := km.Resolve(tt.key, tt.mods)
			if !ok || cmd != tt.want {
				t.Errorf("Resolve(%v, %v) = (%v, %v), want %v", tt.key, tt.mods, cmd, ok, tt.want)
			}
		})
	}
}

func TestResolveShiftFallthrough(t *testing.T) {
	km := DefaultKeymap()

	// Shift+Left has no explicit binding, so it falls through to Left and
	// reports the fallthrough for selection extension.
	cmd, fell, ok := km.Resolve(KeyLeft, ModShift)
	if !ok || cmd != CmdMoveLeft || !fell {
		t.Errorf("Resolve(left, shift) = (%v, %v, %v), want fallthrough to CmdMoveLeft", cmd, fell, ok)
	}

	// Shift+Tab is bound explicitly; no fallthrough.
	cmd, fell, ok = km.Resolve(KeyTab, ModShift)
	if !ok || cmd != CmdFocusPrev || fell {
		t.Errorf("Resolve(tab, shift) = (%v, %v, %v), want the explicit binding", cmd, fell, ok)
	}

	if _, _, ok := km.Resolve(KeyB, 0); ok {
		t.Error("unbound chord resolved")
	}
}

func TestParseKeymapOverrides(t *testing.T) {
	km, err := ParseKeymap([]byte(`
[bindings]
"ctrl+h" = "delete_backward"
"ctrl+y" = "none"
`))
	if err != nil {
		t.Fatalf("ParseKeymap: %v", err)
	}

	if cmd, _, ok := km.Resolve(KeyH, ModCtrl); !ok || cmd != CmdDeleteBackward {
		t.Errorf("Resolve(ctrl+h) = (%v, %v), want the override", cmd, ok)
	}
	if _, _, ok := km.Resolve(KeyY, ModCtrl); ok {
		t.Error("ctrl+y still bound after \"none\"")
	}
	// defaults survive underneath the overrides
	if cmd, _, ok := km.Resolve(KeyZ, ModCtrl); !ok || cmd != CmdUndo {
		t.Errorf("Resolve(ctrl+z) = (%v, %v), want the default binding", cmd, ok)
	}
}

func TestParseKeymapErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown action", "[bindings]\n\"ctrl+z\" = \"explode\"\n"},
		{"unknown key", "[bindings]\n\"ctrl+f13\" = \"undo\"\n"},
		{"modifiers only", "[bindings]\n\"ctrl+shift\" = \"undo\"\n"},
		{"key before modifier", "[bindings]\n\"z+ctrl\" = \"undo\"\n"},
		{"bad toml", "bindings = [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseKeymap([]byte(tt.toml)); err == nil {
				t.Error("ParseKeymap accepted a bad keymap")
			}
		})
	}
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		spec string
		want Chord
	}{
		{"z", Chord{KeyZ, 0}},
		{"ctrl+z", Chord{KeyZ, ModCtrl}},
		{"Ctrl+Shift+Z", Chord{KeyZ, ModCtrl | ModShift}},
		{"cmd+a", Chord{KeyA, ModSuper}},
		{"option+backspace", Chord{KeyBackspace, ModAlt}},
	}
	for _, tt := range tests {
		got, err := parseChord(tt.spec)
		if err != nil {
			t.Errorf("parseChord(%q): %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseChord(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}
