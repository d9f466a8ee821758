package textfield

import (
	"fmt"
	"testing"
)

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name    string
		rules   []Rule
		value   string
		valid   bool
		message string
	}{
		{"no rules", nil, "", true, ""},
		{"required empty", []Rule{Required()}, "", false, "This field is required"},
		{"required whitespace", []Rule{Required()}, "   ", false, "This field is required"},
		{"required ok", []Rule{Required()}, "x", true, ""},
		{"min length short", []Rule{MinLength(5)}, "abcd", false, "Minimum 5 characters required"},
		{"min length counts runes", []Rule{MinLength(5)}, "héllo", true, ""},
		{"max length long", []Rule{MaxLength(3)}, "abcd", false, "Maximum 3 characters allowed"},
		{"range inside", []Rule{Range(1, 10)}, "5", true, ""},
		{"range below", []Rule{Range(1, 10)}, "0", false, "Must be at least 1"},
		{"range above", []Rule{Range(1, 10)}, "11", false, "Must be at most 10"},
		{"range not a number", []Rule{Range(1, 10)}, "abc", false, "Must be a number"},
		{"email ok", []Rule{Email()}, "a@b.co", true, ""},
		{"email bad", []Rule{Email()}, "nope", false, "Invalid email address"},
		{"email empty passes", []Rule{Email()}, "", true, ""},
		{"pattern", []Rule{Pattern(`^\d{4}$`)}, "123", false, "Invalid format"},
		{"custom message", []Rule{Required("need a value")}, "", false, "need a value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Validate(tt.value, tt.rules)
			if state.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (message %q)", state.Valid, tt.valid, state.Message)
			}
			if !tt.valid && state.Message != tt.message {
				t.Errorf("Message = %q, want %q", state.Message, tt.message)
			}
		})
	}
}

func TestValidateShortCircuitsInOrder(t *testing.T) {
	state := Validate("", []Rule{Required(), MinLength(5)})
	if state.Valid {
		t.Fatal("empty value should be invalid")
	}
	if state.Message != "This field is required" {
		t.Errorf("Message = %q, want the Required failure first", state.Message)
	}

	// Same rules, reversed: the declaration order decides.
	state = Validate("", []Rule{MinLength(5), Required()})
	if state.Message != "Minimum 5 characters required" {
		t.Errorf("Message = %q, want the MinLength failure first", state.Message)
	}
}

func TestCustomRule(t *testing.T) {
	noAdmin := Custom(func(value string) error {
		if value == "admin" {
			return fmt.Errorf("reserved name")
		}
		return nil
	})
	if state := Validate("admin", []Rule{noAdmin}); state.Valid || state.Message != "reserved name" {
		t.Errorf("got %+v, want invalid with %q", state, "reserved name")
	}
	if state := Validate("alice", []Rule{noAdmin}); !state.Valid {
		t.Errorf("got %+v, want valid", state)
	}
}
