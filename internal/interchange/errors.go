package interchange

import "fmt"

// ImportError reports why a document could not be imported. Details holds
// per-field schema messages when there are any.
type ImportError struct {
	Message string
	Details []string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("import error: %s", e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
