// Package interchange converts CV documents to and from their JSON form.
package interchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
	rootschemas "github.com/jonathan/cv-builder/schemas"
)

// MIMEType of exported documents.
const MIMEType = "application/json"

// Export serializes every field of doc, empty ones included, as indented JSON.
// Lists are always arrays and an absent photo is null.
func Export(doc *types.CVDocument) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("export: nil document")
	}
	c := doc.Clone()
	c.Normalize()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return append(data, '\n'), nil
}

// Import parses data into a new document. The input must be JSON, satisfy the
// interchange schema and hold only known enum values and well-formed dates.
// Every failure is an *ImportError; the caller's current document is untouched
// because a fresh one is returned.
func Import(data []byte) (*types.CVDocument, error) {
	if !json.Valid(data) {
		return nil, &ImportError{Message: "file is not valid JSON"}
	}

	if err := schemas.Validate(rootschemas.CVDocument, data); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			return nil, &ImportError{
				Message: "file does not match the CV data format",
				Details: ve.Messages(),
				Cause:   err,
			}
		}
		return nil, &ImportError{Message: "could not check the CV data format", Cause: err}
	}

	doc := &types.CVDocument{}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(doc); err != nil {
		return nil, &ImportError{Message: "file contains invalid values", Cause: err}
	}
	doc.Normalize()
	return doc, nil
}

// SuggestedFilename returns "<Full_Name>_CV_data.json", or "CV_data.json" when
// no name has been entered.
func SuggestedFilename(fullName string) string {
	name := strings.ReplaceAll(strings.TrimSpace(fullName), " ", "_")
	if name == "" {
		return "CV_data.json"
	}
	return name + "_CV_data.json"
}
