// Package rules provides an explicit, composable validation rule chain.
// Each rule is a pure function from a raw field value to an error message,
// evaluated independently so that every violation is collected.
package rules

import (
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Rule checks a single raw value and returns a human-readable message,
// or the empty string when the value passes.
type Rule func(value string) string

// FieldErrors maps a field name to every message its rules produced.
type FieldErrors map[string][]string

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "fields validation failed"
}

// Field pairs a named raw value with its rule chain.
type Field struct {
	Name  string
	Value string
	Rules []Rule
}

// Collect runs every rule of every field and aggregates all messages.
// A nil result means the whole set passed.
func Collect(fields ...Field) FieldErrors {
	var out FieldErrors
	for _, f := range fields {
		for _, rule := range f.Rules {
			if msg := rule(f.Value); msg != "" {
				if out == nil {
					out = FieldErrors{}
				}
				out[f.Name] = append(out[f.Name], msg)
			}
		}
	}
	return out
}

func Required(msg string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return msg
		}
		return ""
	}
}

// Optional skips the wrapped rule when the value is empty.
func Optional(rule Rule) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return rule(value)
	}
}

func TimeLayout(layout, msg string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if _, err := time.Parse(layout, value); err != nil {
			return msg
		}
		return ""
	}
}

func OneOf(allowed []string, msg string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		for _, a := range allowed {
			if value == a {
				return ""
			}
		}
		return msg
	}
}

func MaxLen(n int, msg string) Rule {
	return func(value string) string {
		if len(value) > n {
			return msg
		}
		return ""
	}
}

func Numeric(msg string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		for _, r := range value {
			if !unicode.IsDigit(r) {
				return msg
			}
		}
		return ""
	}
}

func MinLen(n int, msg string) Rule {
	return func(value string) string {
		if value != "" && len(value) < n {
			return msg
		}
		return ""
	}
}

var validate = validator.New()

func Email(msg string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if err := validate.Var(value, "email"); err != nil {
			return msg
		}
		return ""
	}
}
