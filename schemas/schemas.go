// Package schemas embeds the JSON Schemas for the interchange format.
package schemas

import _ "embed"

// CVDocumentFile is the file name of the interchange schema.
const CVDocumentFile = "cv_document.schema.json"

// CVDocument is the JSON Schema every imported document must satisfy.
//
//go:embed cv_document.schema.json
var CVDocument []byte
