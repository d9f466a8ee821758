package textfield

import "github.com/atotto/clipboard"

// Clipboard abstracts system clipboard access for cut/copy/paste. The
// editing core never distinguishes "clipboard denied" from "clipboard
// empty": both present as empty text, and writes to an unavailable clipboard
// are silently discarded. Implementations must not block or panic.
type Clipboard interface {
	// ReadText retrieves text from the clipboard, "" when unavailable or empty.
	ReadText() string

	// WriteText copies text to the clipboard, a no-op when unavailable.
	WriteText(text string)
}

// SystemClipboard is the OS-backed clipboard. On platforms without clipboard
// access (or when the underlying call fails) it degrades to the empty-read /
// discarded-write behavior the Clipboard contract requires.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() string {
	if clipboard.Unsupported {
		return ""
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return text
}

func (SystemClipboard) WriteText(text string) {
	if clipboard.Unsupported {
		return
	}
	_ = clipboard.WriteAll(text)
}

// NullClipboard is the no-op clipboard used when the host declares clipboard
// access unavailable.
type NullClipboard struct{}

func (NullClipboard) ReadText() string   { return "" }
func (NullClipboard) WriteText(_ string) {}
