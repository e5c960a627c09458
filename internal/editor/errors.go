package editor

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned when a key does not name an entry in the section.
var ErrEntryNotFound = errors.New("entry not found")

// SectionError reports a section name that is not one of the list sections.
type SectionError struct {
	Section string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("unknown section %q", e.Section)
}
