package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/resume-builder/internal/ai"
	"github.com/jonathan/resume-builder/internal/types"
)

// GenerateRequest is the body for POST /ai: the same contract the remote
// proxy client speaks, so the server can stand in as the endpoint.
type GenerateRequest struct {
	Type       string           `json:"type"`
	ResumeData types.ResumeData `json:"resumeData"`
}

// GenerateResponse carries the field matching the request type
type GenerateResponse struct {
	Objective string            `json:"objective,omitempty"`
	Skills    []string          `json:"skills,omitempty"`
	Feedback  *types.AIFeedback `json:"feedback,omitempty"`
}

// requireGenerator writes a 503 and returns false when no generation
// backend is configured.
func (s *Server) requireGenerator(w http.ResponseWriter) bool {
	if s.generator == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Content generation is not configured")
		return false
	}
	return true
}

// aiErrorResponse maps generation failures to HTTP statuses. Quota errors
// keep their distinct codes so clients can tell throttling from an
// exhausted plan.
func (s *Server) aiErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
	case errors.Is(err, ai.ErrPaymentRequired):
		s.errorResponse(w, http.StatusPaymentRequired, "Payment required")
	default:
		s.errorResponse(w, http.StatusInternalServerError, "Generation failed: "+err.Error())
	}
}

// handleAIGenerate handles POST /ai: stateless generation against a
// caller-supplied document. This is the endpoint the proxy client calls.
func (s *Server) handleAIGenerate(w http.ResponseWriter, r *http.Request) {
	if !s.requireGenerator(w) {
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	var resp GenerateResponse
	switch req.Type {
	case ai.TypeGenerateObjective:
		objective, err := s.generator.GenerateObjective(r.Context(), req.ResumeData)
		if err != nil {
			s.aiErrorResponse(w, err)
			return
		}
		resp.Objective = objective

	case ai.TypeSuggestSkills:
		skills, err := s.generator.SuggestSkills(r.Context(), req.ResumeData)
		if err != nil {
			s.aiErrorResponse(w, err)
			return
		}
		if skills == nil {
			skills = []string{}
		}
		resp.Skills = skills

	case ai.TypeFeedback:
		feedback, err := s.generator.Feedback(r.Context(), req.ResumeData)
		if err != nil {
			s.aiErrorResponse(w, err)
			return
		}
		resp.Feedback = &feedback

	default:
		s.errorResponse(w, http.StatusBadRequest, "Unknown generation type")
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAIObjective handles POST /resumes/{id}/ai/objective: generates a
// career objective from the current snapshot and writes it into the
// document. The document is untouched when generation fails.
func (s *Server) handleAIObjective(w http.ResponseWriter, r *http.Request) {
	if !s.requireGenerator(w) {
		return
	}
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	objective, err := s.generator.GenerateObjective(r.Context(), sess.Store.Snapshot())
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}

	ai.ApplyObjective(sess.Store, objective)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// handleAISkills handles POST /resumes/{id}/ai/skills: suggests skills and
// appends them to the skills list as technical skills.
func (s *Server) handleAISkills(w http.ResponseWriter, r *http.Request) {
	if !s.requireGenerator(w) {
		return
	}
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	skills, err := s.generator.SuggestSkills(r.Context(), sess.Store.Snapshot())
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}

	ai.ApplySkills(sess.Store, skills)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// handleAIFeedback handles POST /resumes/{id}/ai/feedback: scores the
// resume and stores the stamped result on the document.
func (s *Server) handleAIFeedback(w http.ResponseWriter, r *http.Request) {
	if !s.requireGenerator(w) {
		return
	}
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	feedback, err := s.generator.Feedback(r.Context(), sess.Store.Snapshot())
	if err != nil {
		s.aiErrorResponse(w, err)
		return
	}

	ai.ApplyFeedback(sess.Store, feedback)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}
