package textfield

import "unicode"

// Word boundaries distinguish three character classes: whitespace,
// alphanumeric, and everything else (punctuation). A run of punctuation is
// its own word, so word motion over "foo.." stops between "foo" and "..".

// wordBoundaryLeft returns the position of the start of the word left of pos.
func wordBoundaryLeft(content []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(content) {
		pos = len(content)
	}
	for pos > 0 && unicode.IsSpace(content[pos-1]) {
		pos--
	}
	if pos == 0 {
		return 0
	}
	if isWordRune(content[pos-1]) {
		for pos > 0 && isWordRune(content[pos-1]) {
			pos--
		}
	} else {
		for pos > 0 && !unicode.IsSpace(content[pos-1]) && !isWordRune(content[pos-1]) {
			pos--
		}
	}
	return pos
}

// wordBoundaryRight returns the position just past the word right of pos,
// including any trailing whitespace, landing at the start of the next word.
func wordBoundaryRight(content []rune, pos int) int {
	n := len(content)
	if pos >= n {
		return n
	}
	if pos < 0 {
		pos = 0
	}
	switch {
	case isWordRune(content[pos]):
		for pos < n && isWordRune(content[pos]) {
			pos++
		}
	case !unicode.IsSpace(content[pos]):
		for pos < n && !unicode.IsSpace(content[pos]) && !isWordRune(content[pos]) {
			pos++
		}
	}
	for pos < n && unicode.IsSpace(content[pos]) {
		pos++
	}
	return pos
}

// wordRangeAt returns the span of the word containing pos, for double-click
// selection. On whitespace it selects the whitespace run.
func wordRangeAt(content []rune, pos int) (start, end int) {
	n := len(content)
	if n == 0 {
		return 0, 0
	}
	if pos >= n {
		pos = n - 1
	}
	if pos < 0 {
		pos = 0
	}
	class := runeClass(content[pos])
	start, end = pos, pos+1
	for start > 0 && runeClass(content[start-1]) == class {
		start--
	}
	for end < n && runeClass(content[end]) == class {
		end++
	}
	return start, end
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func runeClass(r rune) int {
	switch {
	case unicode.IsSpace(r):
		return 0
	case isWordRune(r):
		return 1
	default:
		return 2
	}
}
