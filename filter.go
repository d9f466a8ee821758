package textfield

import (
	"regexp"
	"strings"
	"unicode"
)

// FilterKind discriminates the built-in input filters.
type FilterKind uint8

const (
	FilterNone FilterKind = iota
	FilterNumeric
	FilterInteger
	FilterDecimal
	FilterAlphabetic
	FilterAlphanumeric
	FilterHexadecimal
	FilterPattern
	FilterCustom
)

// Filter is a per-character admission gate evaluated at insertion time,
// before a character reaches the buffer. Characters it rejects are silently
// dropped, which constrains the alphabet a field accepts; whole-value
// semantics belong to Rules instead. The zero Filter admits everything.
//
// Some filters are context-sensitive: Integer admits '-' only as the first
// character of an empty value, Decimal admits a single '.'.
type Filter struct {
	kind    FilterKind
	pattern *regexp.Regexp
	custom  func(r rune, current string) bool
}

// NumericFilter admits ASCII digits only.
func NumericFilter() Filter { return Filter{kind: FilterNumeric} }

// IntegerFilter admits digits plus a leading minus sign.
func IntegerFilter() Filter { return Filter{kind: FilterInteger} }

// DecimalFilter admits digits, a leading minus sign, and one decimal point.
func DecimalFilter() Filter { return Filter{kind: FilterDecimal} }

// AlphabeticFilter admits letters.
func AlphabeticFilter() Filter { return Filter{kind: FilterAlphabetic} }

// AlphanumericFilter admits letters and digits.
func AlphanumericFilter() Filter { return Filter{kind: FilterAlphanumeric} }

// HexFilter admits ASCII hexadecimal digits.
func HexFilter() Filter { return Filter{kind: FilterHexadecimal} }

// PatternFilter admits a character when the prospective value still matches
// the pattern.
func PatternFilter(expr string) (Filter, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Filter{}, err
	}
	return Filter{kind: FilterPattern, pattern: re}, nil
}

// CustomFilter admits characters the predicate accepts. The predicate
// receives the candidate rune and the current value.
func CustomFilter(fn func(r rune, current string) bool) Filter {
	return Filter{kind: FilterCustom, custom: fn}
}

// Kind returns the filter variant.
func (f Filter) Kind() FilterKind { return f.kind }

// Allow reports whether r may be appended to the current value.
func (f Filter) Allow(r rune, current string) bool {
	switch f.kind {
	case FilterNone:
		return true
	case FilterNumeric:
		return r >= '0' && r <= '9'
	case FilterInteger:
		return (r >= '0' && r <= '9') || (r == '-' && current == "")
	case FilterDecimal:
		return (r >= '0' && r <= '9') ||
			(r == '.' && !strings.ContainsRune(current, '.')) ||
			(r == '-' && current == "")
	case FilterAlphabetic:
		return unicode.IsLetter(r)
	case FilterAlphanumeric:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	case FilterHexadecimal:
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	case FilterPattern:
		return f.pattern == nil || f.pattern.MatchString(current+string(r))
	case FilterCustom:
		return f.custom == nil || f.custom(r, current)
	}
	return true
}

// FilterString drops every rune of s the filter rejects, building up the
// admitted prefix as context for the context-sensitive filters.
func (f Filter) FilterString(s string) string {
	if f.kind == FilterNone {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if f.Allow(r, b.String()) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Transform rewrites admitted characters before insertion.
type Transform uint8

const (
	TransformNone Transform = iota
	TransformUpper
	TransformLower
	// TransformCapitalize uppercases the first letter of each word and
	// lowercases the rest.
	TransformCapitalize
)

// apply transforms r given the rune that will precede it (0 at the start of
// the value).
func (t Transform) apply(r, prev rune) rune {
	switch t {
	case TransformUpper:
		return unicode.ToUpper(r)
	case TransformLower:
		return unicode.ToLower(r)
	case TransformCapitalize:
		if prev == 0 || unicode.IsSpace(prev) {
			return unicode.ToUpper(r)
		}
		return unicode.ToLower(r)
	}
	return r
}
