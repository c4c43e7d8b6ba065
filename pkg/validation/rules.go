package validation

import "github.com/go-playground/validator/v10"

// standalone instance for field checks outside of request binding
var rules = validator.New()

// ValidUsername reports whether s is at least 5 characters, alphanumeric only.
func ValidUsername(s string) bool {
	return rules.Var(s, "min=5,alphanum") == nil
}

// ValidEmail reports whether s has valid email syntax.
func ValidEmail(s string) bool {
	return rules.Var(s, "required,email") == nil
}
