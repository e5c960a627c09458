package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/interchange"
	"github.com/jonathan/cv-builder/internal/preview"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/types"
)

// snapshot copies the session's document so rendering runs without the lock.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (*types.CVDocument, bool) {
	var doc *types.CVDocument
	ok := s.withEditor(w, r, func(e *editor.Editor) error {
		doc = e.Snapshot()
		return nil
	})
	return doc, ok
}

// handlePreview returns the read-only preview with statistics.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	pv, err := preview.Build(doc)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, pv)
}

// handleExportPDF renders the document as a PDF attachment.
// Query parameters template and format override the server defaults.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.snapshot(w, r)
	if !ok {
		return
	}

	template := r.URL.Query().Get("template")
	if template == "" {
		template = s.cfg.DefaultTemplate
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = s.cfg.DefaultFormat
	}

	pdf, err := s.renderer.Render(r.Context(), doc, template, format)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	filename := rendering.SuggestedFilename(doc.PersonalInfo.FullName, template)
	s.attachment(w, rendering.MIMEType, filename, pdf)
}

// handleExportJSON returns the interchange document as an attachment.
func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	data, err := interchange.Export(doc)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.attachment(w, interchange.MIMEType, interchange.SuggestedFilename(doc.PersonalInfo.FullName), data)
}

// handleImport replaces the session's document with an uploaded interchange file.
// A rejected file leaves the session untouched.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, r, &ErrBadRequest{Message: "failed to read request body: " + err.Error()})
		return
	}
	doc, err := interchange.Import(data)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	var out *types.CVDocument
	if s.withEditor(w, r, func(e *editor.Editor) error {
		e.Replace(doc)
		out = e.Snapshot()
		return nil
	}) {
		s.jsonResponse(w, http.StatusOK, out)
	}
}

func (s *Server) attachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("failed to write attachment", "filename", filename, "error", err)
	}
}
