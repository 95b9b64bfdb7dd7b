// Package forms implements the validation layer: a declarative per-field rule
// schema consumed by one generic validator. Validation is pure; callers get a
// typed value or a field→message map, never a partially applied record.
package forms

import (
	"regexp"
	"strings"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
)

// Errors maps a field name to its human-readable messages.
type Errors map[string][]string

// Add appends a message for a field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether the field failed validation.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// First returns the first message for a field, or "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Separators tolerated in a WhatsApp number before the digits check.
	phoneSeparatorsRe = regexp.MustCompile(`[\s\-\(\)\+]`)
	digitsRe          = regexp.MustCompile(`^[0-9]+$`)
)

// Field declares the rule set of one form field.
type Field struct {
	Name     string
	Label    string
	Required bool
	MinLen   int
	MaxLen   int
	Email    bool
	Digits   bool            // digits-only after stripping phone separators
	Choices  []models.Choice // closed value set; empty placeholder rejected

	RequiredMessage string
	LengthMessage   string
	InvalidMessage  string
}

// Validate runs a schema against raw submitted values and collects every
// failure. Values are trimmed before any rule applies.
func Validate(schema []Field, values func(name string) string) Errors {
	errs := Errors{}
	for _, f := range schema {
		validateField(f, strings.TrimSpace(values(f.Name)), errs)
	}
	return errs
}

func validateField(f Field, value string, errs Errors) {
	if value == "" {
		if f.Required {
			errs.Add(f.Name, f.RequiredMessage)
		}
		return
	}

	if f.MinLen > 0 || f.MaxLen > 0 {
		n := len([]rune(value))
		if (f.MinLen > 0 && n < f.MinLen) || (f.MaxLen > 0 && n > f.MaxLen) {
			errs.Add(f.Name, f.LengthMessage)
		}
	}

	if f.Email && !emailRe.MatchString(value) {
		errs.Add(f.Name, f.InvalidMessage)
	}

	if f.Digits {
		stripped := phoneSeparatorsRe.ReplaceAllString(value, "")
		if !digitsRe.MatchString(stripped) {
			errs.Add(f.Name, f.InvalidMessage)
		}
	}

	if len(f.Choices) > 0 && !models.HasChoice(f.Choices, value) {
		errs.Add(f.Name, f.InvalidMessage)
	}
}
