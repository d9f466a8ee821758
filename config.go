package textfield

// Config is the construction surface for one text-input field. The zero
// value is a plain unbounded text field.
type Config struct {
	// Value is the initial content. Longer than MaxLength, it is truncated
	// at construction rather than rejected.
	Value string

	// Placeholder shows while the content is empty and the field is
	// unfocused or has never been edited.
	Placeholder string

	// MaxLength caps the content in runes; 0 means unlimited.
	MaxLength int

	// Filter gates which characters may be inserted. The zero value admits
	// everything.
	Filter Filter

	// Transform rewrites admitted characters (upper/lower/capitalize).
	Transform Transform

	// Rules are evaluated in order against the whole content on every
	// change; the first failure supplies the validation message.
	Rules []Rule

	// Password masks the display run; the content itself stays clear.
	Password bool

	// MaskRune overrides the password mask glyph, '•' when zero.
	MaskRune rune

	// ReadOnly allows selection and copy but rejects edits.
	ReadOnly bool

	// ClearOnSubmit empties the field after Enter fires OnSubmit.
	ClearOnSubmit bool

	// Position is the 1-based slot in the focus group's tab order;
	// 0 (or out of range) appends.
	Position int

	// OnChange fires after every content change with the new text.
	OnChange func(text string)

	// OnSubmit fires when Enter is pressed while the field is focused.
	OnSubmit func(text string)
}
