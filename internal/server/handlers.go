package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/session"
	"github.com/jonathan/cv-builder/internal/types"
)

// SessionResponse describes a session and, when requested, its document.
type SessionResponse struct {
	ID         string            `json:"id"`
	CreatedAt  time.Time         `json:"created_at"`
	LastAccess time.Time         `json:"last_access"`
	Document   *types.CVDocument `json:"document,omitempty"`
}

// TemplatesResponse lists the export templates.
type TemplatesResponse struct {
	Default   string               `json:"default"`
	Templates []rendering.Template `json:"templates"`
}

// SkillCategoryRequest carries one category as newline-separated text.
type SkillCategoryRequest struct {
	Text string `json:"text"`
}

// AddEntryResponse returns the key of a new entry.
type AddEntryResponse struct {
	Key string `json:"key"`
}

// ListSectionResponse lists one section's entries in display order.
type ListSectionResponse struct {
	Section editor.Section `json:"section"`
	Items   []editor.Item  `json:"items"`
}

// allowedPhotoTypes are the image types the photo upload accepts.
var allowedPhotoTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

// handleTemplates lists the export templates.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{
		Default:   s.cfg.DefaultTemplate,
		Templates: rendering.Templates(),
	})
}

// handleCreateSession starts a session over an empty document.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.store.Create()
	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		ID:         sess.ID,
		CreatedAt:  sess.CreatedAt,
		LastAccess: sess.LastAccess(),
	})
}

// session looks up the {id} path parameter.
func (s *Server) session(r *http.Request) (*session.Session, error) {
	return s.store.Get(chi.URLParam(r, "id"))
}

// withEditor runs fn against the request's session, writing any error.
// It reports whether fn succeeded.
func (s *Server) withEditor(w http.ResponseWriter, r *http.Request, fn func(*editor.Editor) error) bool {
	sess, err := s.session(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return false
	}
	if err := sess.Do(fn); err != nil {
		s.errorResponse(w, r, err)
		return false
	}
	return true
}

// handleGetSession returns the session with a snapshot of its document.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	var doc *types.CVDocument
	_ = sess.Do(func(e *editor.Editor) error {
		doc = e.Snapshot()
		return nil
	})
	s.jsonResponse(w, http.StatusOK, SessionResponse{
		ID:         sess.ID,
		CreatedAt:  sess.CreatedAt,
		LastAccess: sess.LastAccess(),
		Document:   doc,
	})
}

// handleDeleteSession ends a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(chi.URLParam(r, "id")); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetPersonalInfo validates and replaces the header record.
func (s *Server) handleSetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	var info types.PersonalInfo
	if err := decodeJSON(w, r, &info); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if s.withEditor(w, r, func(e *editor.Editor) error { return e.SetPersonalInfo(info) }) {
		s.jsonResponse(w, http.StatusOK, info)
	}
}

// handleSetPhoto stores the profile picture, replacing any previous one.
func (s *Server) handleSetPhoto(w http.ResponseWriter, r *http.Request) {
	var photo types.Photo
	if err := decodeJSON(w, r, &photo); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if !allowedPhotoTypes[photo.MIMEType] {
		s.errorResponse(w, r, &ErrBadRequest{Field: "mime_type", Message: "photo must be image/png or image/jpeg"})
		return
	}
	if len(photo.Data) == 0 {
		s.errorResponse(w, r, &ErrBadRequest{Field: "data", Message: "photo data is empty"})
		return
	}
	if s.withEditor(w, r, func(e *editor.Editor) error {
		e.SetPhoto(photo)
		return nil
	}) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleClearPhoto removes the profile picture.
func (s *Server) handleClearPhoto(w http.ResponseWriter, r *http.Request) {
	if s.withEditor(w, r, func(e *editor.Editor) error {
		e.ClearPhoto()
		return nil
	}) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleSetSkills replaces every skill list.
func (s *Server) handleSetSkills(w http.ResponseWriter, r *http.Request) {
	var skills types.SkillSet
	if err := decodeJSON(w, r, &skills); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	var out types.SkillSet
	if s.withEditor(w, r, func(e *editor.Editor) error {
		e.SetSkills(skills)
		out = e.Document().Skills.Clone()
		return nil
	}) {
		s.jsonResponse(w, http.StatusOK, out)
	}
}

// handleSetSkillCategory replaces one category from free text, one skill per line.
func (s *Server) handleSetSkillCategory(w http.ResponseWriter, r *http.Request) {
	category, err := types.ParseSkillCategory(chi.URLParam(r, "category"))
	if err != nil {
		s.errorResponse(w, r, &ErrBadRequest{Field: "category", Message: err.Error()})
		return
	}
	var req SkillCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	var out types.SkillSet
	if s.withEditor(w, r, func(e *editor.Editor) error {
		e.SetSkillCategory(category, req.Text)
		out = e.Document().Skills.Clone()
		return nil
	}) {
		s.jsonResponse(w, http.StatusOK, out)
	}
}

// handleListSection lists a section's entries with their keys.
func (s *Server) handleListSection(w http.ResponseWriter, r *http.Request) {
	section, err := editor.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	var items []editor.Item
	if s.withEditor(w, r, func(e *editor.Editor) error {
		items, err = e.List(section)
		return err
	}) {
		s.jsonResponse(w, http.StatusOK, ListSectionResponse{Section: section, Items: items})
	}
}

// handleAddEntry validates and appends one entry to a section.
func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	section, err := editor.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	entry, err := editor.NewEntry(section)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if err := decodeJSON(w, r, entry); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	var key string
	if s.withEditor(w, r, func(e *editor.Editor) error {
		key, err = e.Add(entry)
		return err
	}) {
		s.jsonResponse(w, http.StatusCreated, AddEntryResponse{Key: key})
	}
}

// handleRemoveEntry deletes the entry stored under {key}.
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	section, err := editor.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	key := chi.URLParam(r, "key")
	if s.withEditor(w, r, func(e *editor.Editor) error { return e.Remove(section, key) }) {
		w.WriteHeader(http.StatusNoContent)
	}
}
