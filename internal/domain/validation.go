package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError names a single failing field on a submission. Validation always
// reports every failing field, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the full set of validation failures for one submission.
type FieldErrors []FieldError

// Error implements error. Messages are joined in field order.
func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the names of all failing fields.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for _, e := range fe {
		out = append(out, e.Field)
	}
	return out
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// RequireField appends a "<field> is required" error when value is blank.
func RequireField(errs FieldErrors, field, value string) FieldErrors {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("%s is required", field)})
	}
	return errs
}
