// Package validation checks resume documents and settings patches before
// they reach the store or the database.
package validation

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string
	Message string
}

// Error aggregates every failing field of one validation pass.
type Error struct {
	Errors []FieldError
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

func (e *Error) add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// orNil returns the error when it has entries, nil otherwise.
func (e *Error) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}
