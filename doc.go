// Package textfield is the native text-editing engine behind a single-line
// text-input widget. It owns buffer, cursor, and selection state, input
// filtering and validation, undo/redo history, clipboard integration,
// password masking, and keyboard focus navigation across named field groups.
//
// The package does not draw anything. A host UI engine delivers input events
// (typed characters, navigation keys, pointer clicks and drags, paste
// requests) and a per-frame time delta to an Engine, and reads back a
// DisplayState per field: the text run to draw, the selection span, and
// whether the cursor glyph is currently visible. Text measurement stays on
// the host side through a MeasureFunc.
//
// Typical wiring:
//
//	eng := textfield.NewEngine().SetClipboard(textfield.SystemClipboard{})
//	user := eng.AddField("login", textfield.Config{
//	    Placeholder: "User name",
//	    Filter:      textfield.AlphanumericFilter(),
//	    Rules:       []textfield.Rule{textfield.Required(), textfield.MinLength(3)},
//	})
//	pass := eng.AddField("login", textfield.Config{
//	    Placeholder: "Password",
//	    Password:    true,
//	})
//
//	// per host input event:
//	eng.ProcessEvent(textfield.CharEvent{Field: user, Rune: 'a'})
//	// per host frame:
//	eng.Tick(frameDelta)
//	state := eng.Display(pass)
//
// All operations are synchronous and non-blocking. User input never produces
// an error: filtered characters, inserts past the length cap, deletes at the
// buffer edges, undo on an empty stack, and clipboard access without a
// clipboard all degrade to silent no-ops.
package textfield
