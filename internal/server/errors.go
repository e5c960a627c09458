// Package server provides the HTTP REST API for the CV builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/interchange"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/session"
	"github.com/jonathan/cv-builder/internal/validation"
)

// ErrBadRequest indicates a malformed request body or parameter
type ErrBadRequest struct {
	Field   string
	Message string
}

func (e *ErrBadRequest) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("bad request: %s", e.Message)
	}
	return fmt.Sprintf("bad request: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		badRequest *ErrBadRequest
		invalid    *validation.ValidationError
		importErr  *interchange.ImportError
		sectionErr *editor.SectionError
		renderErr  *rendering.RenderError
	)
	switch {
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, editor.ErrEntryNotFound),
		errors.As(err, &sectionErr):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &importErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, rendering.ErrMissingName):
		return http.StatusUnprocessableEntity
	case errors.As(err, &renderErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

// newErrorBody builds the user-facing message and details for err.
func newErrorBody(err error) errorBody {
	var (
		invalid   *validation.ValidationError
		importErr *interchange.ImportError
		renderErr *rendering.RenderError
	)
	switch {
	case errors.As(err, &invalid):
		return errorBody{Error: "validation failed", Errors: invalid.Messages}
	case errors.As(err, &importErr):
		return errorBody{Error: importErr.Message, Errors: importErr.Details}
	case errors.As(err, &renderErr):
		return errorBody{Error: renderErr.Message}
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return errorBody{Error: "internal error"}
	}
	return errorBody{Error: err.Error()}
}
