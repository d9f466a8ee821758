package textfield

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Rule is a whole-value correctness check run over the content after every
// change. Returns nil when the value passes.
type Rule func(value string) error

// ValidationState is the aggregate outcome of a field's rule list. Message
// carries the first failing rule's error in declaration order.
type ValidationState struct {
	Valid   bool
	Message string
}

// Validate evaluates rules in order and stops at the first failure.
func Validate(value string, rules []Rule) ValidationState {
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if err := rule(value); err != nil {
			return ValidationState{Message: err.Error()}
		}
	}
	return ValidationState{Valid: true}
}

// Required fails on empty or whitespace-only values.
func Required(message ...string) Rule {
	msg := "This field is required"
	if len(message) > 0 {
		msg = message[0]
	}
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// MinLength fails on values shorter than min runes.
func MinLength(min int, message ...string) Rule {
	return func(value string) error {
		if utf8.RuneCountInString(value) < min {
			if len(message) > 0 {
				return fmt.Errorf("%s", message[0])
			}
			return fmt.Errorf("Minimum %d characters required", min)
		}
		return nil
	}
}

// MaxLength fails on values longer than max runes.
func MaxLength(max int, message ...string) Rule {
	return func(value string) error {
		if utf8.RuneCountInString(value) > max {
			if len(message) > 0 {
				return fmt.Errorf("%s", message[0])
			}
			return fmt.Errorf("Maximum %d characters allowed", max)
		}
		return nil
	}
}

// Range parses the value as a number and fails outside [min, max].
// Unparseable values fail; pair with Required when empty should fail first
// with its own message.
func Range(min, max float64) Rule {
	return func(value string) error {
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("Must be a number")
		}
		if n < min {
			return fmt.Errorf("Must be at least %v", min)
		}
		if n > max {
			return fmt.Errorf("Must be at most %v", max)
		}
		return nil
	}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email fails on values that are not shaped like an email address. Empty
// values pass; pair with Required to also reject those.
func Email(message ...string) Rule {
	msg := "Invalid email address"
	if len(message) > 0 {
		msg = message[0]
	}
	return func(value string) error {
		if value != "" && !emailPattern.MatchString(value) {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// Pattern fails on non-empty values that do not match the expression.
// The expression must compile.
func Pattern(expr string, message ...string) Rule {
	msg := "Invalid format"
	if len(message) > 0 {
		msg = message[0]
	}
	re := regexp.MustCompile(expr)
	return func(value string) error {
		if value != "" && !re.MatchString(value) {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// Custom wraps an arbitrary check as a Rule.
func Custom(fn func(value string) error) Rule {
	return fn
}
