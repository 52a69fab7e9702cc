package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// CreateResumeRequest is the optional body for POST /resumes
type CreateResumeRequest struct {
	Title    string `json:"title,omitempty"`
	Template string `json:"template,omitempty"`
}

// ResumeResponse is the editing view of one resume: the document plus the
// wizard position of its session
type ResumeResponse struct {
	Resume types.ResumeData `json:"resume"`
	Step   types.WizardStep `json:"step"`
}

// StepStatus reports one wizard section with its completion state
type StepStatus struct {
	Key      types.WizardStep `json:"key"`
	Label    string           `json:"label"`
	Complete bool             `json:"complete"`
	Current  bool             `json:"current"`
}

// resumeID parses the {id} path value. Writes a 400 response and returns
// false when it is not a UUID.
func (s *Server) resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return uuid.Nil, false
	}
	return id, true
}

// openSession returns the live editing session for a resume, loading the
// document from storage and opening one when needed. Writes the error
// response and returns false when the resume does not exist.
func (s *Server) openSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return nil, false
	}

	if sess := s.sessions.Get(id); sess != nil {
		return sess, true
	}

	rec, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return nil, false
	}

	sess, _ := s.sessions.Open(id, rec.ToResumeData())
	return sess, true
}

// resumeResponse builds the standard editing view for a session
func resumeResponse(sess *session.Session) ResumeResponse {
	return ResumeResponse{
		Resume: sess.Store.Snapshot(),
		Step:   sess.Store.Step(),
	}
}

// handleCatalog handles GET /catalog: the fixed option sets clients build
// pickers from (templates, theme color presets, font families, and the
// wizard step list).
func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates":    types.Templates,
		"themeColors":  types.ThemeColors,
		"fontFamilies": types.FontFamilies,
		"steps":        types.WizardSteps,
	})
}

// handleListResumes handles GET /resumes
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.db.ListResumes(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": summaries,
		"count":   len(summaries),
	})
}

// handleCreateResume handles POST /resumes
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req CreateResumeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
			return
		}
	}

	d := types.Initial()
	if req.Title != "" {
		d.Title = req.Title
	}
	if req.Template != "" {
		tmpl := types.TemplateType(req.Template)
		if !tmpl.Valid() {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Unknown template %q", req.Template))
			return
		}
		d.Template = tmpl
	}

	rec, err := s.db.CreateResume(r.Context(), d)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	sess, _ := s.sessions.Open(rec.ID, rec.ToResumeData())
	s.jsonResponse(w, http.StatusCreated, resumeResponse(sess))
}

// handleGetResume handles GET /resumes/{id}. Opens an editing session for
// the resume when none is live yet.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// handleReplaceResume handles PUT /resumes/{id}: full document replacement.
// The body is validated against the JSON schema and the semantic rules
// before any state changes.
func (s *Server) handleReplaceResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateResumeJSON(string(body)); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Schema validation failed: "+err.Error())
		return
	}

	var d types.ResumeData
	if err := json.Unmarshal(body, &d); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if err := validation.ValidateResume(d); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// The document keeps its identity regardless of what the body carried
	d.ID = sess.ID.String()
	sess.Store.ReplaceAll(d)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// handlePatchResume handles PATCH /resumes/{id}: top-level partial update.
// Set fields replace their target wholesale; absent fields are untouched.
func (s *Server) handlePatchResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	var p store.Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if err := validation.ValidatePatch(p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.Store.Apply(p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// handleDeleteResume handles DELETE /resumes/{id}
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	// Drop the live session first so a pending autosave cannot recreate
	// state for a deleted row.
	if err := s.sessions.Close(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to close session: "+err.Error())
		return
	}

	if err := s.db.DeleteResume(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleResetResume handles POST /resumes/{id}/reset: returns the document
// to initial defaults and the wizard to its first step.
func (s *Server) handleResetResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	sess.Store.Reset()
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// handleCloseResume handles POST /resumes/{id}/close: flushes pending
// edits and ends the editing session. Closing an already-closed resume
// succeeds.
func (s *Server) handleCloseResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	if err := s.sessions.Close(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "closed"})
}

// handlePatchPersonalInfo handles PATCH /resumes/{id}/personal-info. The
// body is a flat object of personal info fields; unknown fields are
// ignored.
func (s *Server) handlePatchPersonalInfo(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	for field, value := range fields {
		sess.Store.PatchPersonalInfo(field, value)
	}

	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// handlePatchSettings handles PATCH /resumes/{id}/settings
func (s *Server) handlePatchSettings(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	var p store.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if err := validation.ValidateSettingsPatch(p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.Store.PatchSettings(p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// handleListSteps handles GET /resumes/{id}/steps: the wizard sections in
// display order with completion state for the progress indicator.
func (s *Server) handleListSteps(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	d := sess.Store.Snapshot()
	current := sess.Store.Step()

	steps := make([]StepStatus, 0, len(types.WizardSteps))
	for _, info := range types.WizardSteps {
		steps = append(steps, StepStatus{
			Key:      info.Key,
			Label:    info.Label,
			Complete: d.StepComplete(info.Key),
			Current:  info.Key == current,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"steps": steps})
}

// handleSetStep handles PUT /resumes/{id}/step. Navigation is free-form;
// completion state never gates it.
func (s *Server) handleSetStep(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Step types.WizardStep `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if !types.ValidStep(req.Step) {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Unknown step %q", req.Step))
		return
	}

	sess.Store.SetStep(req.Step)
	s.jsonResponse(w, http.StatusOK, map[string]any{"step": req.Step})
}
