package rendering

import "fmt"

// GuidanceMissingName is shown instead of a preview or export when no name has
// been entered.
const GuidanceMissingName = "Please complete your personal information before previewing or exporting."

// TemplateError represents an error building or executing the HTML template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a recoverable rendering failure. Message is safe to show
// to the user.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// ErrMissingName is returned when rendering is attempted before a name exists.
var ErrMissingName = &RenderError{Message: GuidanceMissingName}
