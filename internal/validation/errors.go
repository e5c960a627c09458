// Package validation provides field validators for CV entries.
package validation

import (
	"fmt"
	"strings"
)

// ValidationError carries every message produced for a rejected entry.
//
//nolint:revive // ValidationError reads better at call sites than validation.Error
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	switch len(e.Messages) {
	case 0:
		return "validation error"
	case 1:
		return fmt.Sprintf("validation error: %s", e.Messages[0])
	default:
		return fmt.Sprintf("validation error: %s", strings.Join(e.Messages, "; "))
	}
}

// AsError returns nil for an empty result and a *ValidationError otherwise.
func AsError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
