// Package validator provides client-side form validation for the auth and
// registration screens, producing the same field-error shape the transport
// layer extracts from server validation failures.
package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError is a single validation failure for a named form field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is a collection of validation failures implementing error.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the given field failed validation.
func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the first message for a field, empty when the field passed.
func (fe FieldErrors) Get(field string) string {
	for _, err := range fe {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Rule is a single validation check.
type Rule struct {
	Check func() bool
	Error FieldError
}

// Apply runs the rules in order and returns the collected failures, or nil
// when everything passed.
func Apply(rules ...Rule) error {
	var errs FieldErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Required fails when value is empty.
func Required(field, value, label string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: FieldError{Field: field, Message: label + " is required"},
	}
}

// Email fails when value is not a plausible email address. Empty values
// pass; combine with Required.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool { return value == "" || emailPattern.MatchString(value) },
		Error: FieldError{Field: field, Message: "Email is invalid"},
	}
}

// Password enforces the account password policy: at least six characters
// with a lowercase letter, an uppercase letter and a digit. Empty values
// pass; combine with Required.
func Password(field, value string) Rule {
	return Rule{
		Check: func() bool { return value == "" || passwordIssues(value) == nil },
		Error: FieldError{Field: field, Message: passwordMessage(value)},
	}
}

func passwordIssues(value string) []string {
	var issues []string
	if len(value) < 6 {
		issues = append(issues, "be at least 6 characters long")
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		issues = append(issues, "contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		issues = append(issues, "contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= '0' && r <= '9' }) {
		issues = append(issues, "contain at least one number")
	}
	return issues
}

func passwordMessage(value string) string {
	issues := passwordIssues(value)
	if len(issues) == 0 {
		return ""
	}
	return "Password must " + strings.Join(issues, ", ")
}
