package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// EntryResponse is the result of adding a list entry: the new entry's ID
// plus the updated document
type EntryResponse struct {
	ID     string           `json:"id"`
	Resume types.ResumeData `json:"resume"`
	Step   types.WizardStep `json:"step"`
}

func entryResponse(id string, sess *session.Session) EntryResponse {
	return EntryResponse{
		ID:     id,
		Resume: sess.Store.Snapshot(),
		Step:   sess.Store.Step(),
	}
}

// decodeBody decodes an optional JSON body into v. An empty body is fine;
// malformed JSON writes a 400 and returns false.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return false
	}
	return true
}

// listIndex parses the {index} path value for sub-list removals
func (s *Server) listIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid list index")
		return 0, false
	}
	return index, true
}

// --- Education ---

func (s *Server) handleAddEducation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	var p store.EducationPatch
	if !s.decodeBody(w, r, &p) {
		return
	}
	id := sess.Store.AddEducation()
	sess.Store.UpdateEducation(id, p)
	s.jsonResponse(w, http.StatusCreated, entryResponse(id, sess))
}

func (s *Server) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return educationExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Education entry not found")
		return
	}
	var p store.EducationPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	sess.Store.UpdateEducation(entryID, p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveEducation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveEducation(r.PathValue("entryID"))
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// --- Skills ---

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	var req struct {
		Name     string              `json:"name"`
		Category types.SkillCategory `json:"category,omitempty"`
	}
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Category != "" && req.Category != types.SkillTechnical && req.Category != types.SkillSoft {
		s.errorResponse(w, http.StatusBadRequest, "Unknown skill category")
		return
	}
	id := sess.Store.AddSkill(req.Name, req.Category)
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Skill name is required")
		return
	}
	s.jsonResponse(w, http.StatusCreated, entryResponse(id, sess))
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return skillExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Skill not found")
		return
	}
	var p store.SkillPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if p.Category != nil && *p.Category != types.SkillTechnical && *p.Category != types.SkillSoft {
		s.errorResponse(w, http.StatusBadRequest, "Unknown skill category")
		return
	}
	sess.Store.UpdateSkill(entryID, p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveSkill(r.PathValue("entryID"))
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// --- Projects ---

func (s *Server) handleAddProject(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	var p store.ProjectPatch
	if !s.decodeBody(w, r, &p) {
		return
	}
	id := sess.Store.AddProject()
	sess.Store.UpdateProject(id, p)
	s.jsonResponse(w, http.StatusCreated, entryResponse(id, sess))
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return projectExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	var p store.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	sess.Store.UpdateProject(entryID, p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveProject(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveProject(r.PathValue("entryID"))
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleAddTechnology(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return projectExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	var req struct {
		Technology string `json:"technology"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if req.Technology == "" {
		s.errorResponse(w, http.StatusBadRequest, "Technology is required")
		return
	}
	sess.Store.AddTechnology(entryID, req.Technology)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveTechnology(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	index, ok := s.listIndex(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveTechnology(r.PathValue("entryID"), index)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// --- Experience ---

func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	var p store.ExperiencePatch
	if !s.decodeBody(w, r, &p) {
		return
	}
	id := sess.Store.AddExperience()
	sess.Store.UpdateExperience(id, p)
	s.jsonResponse(w, http.StatusCreated, entryResponse(id, sess))
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return experienceExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Experience entry not found")
		return
	}
	var p store.ExperiencePatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	sess.Store.UpdateExperience(entryID, p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveExperience(r.PathValue("entryID"))
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleAddResponsibility(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return experienceExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Experience entry not found")
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "Responsibility text is required")
		return
	}
	sess.Store.AddResponsibility(entryID, req.Text)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveResponsibility(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	index, ok := s.listIndex(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveResponsibility(r.PathValue("entryID"), index)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// --- Certifications ---

func (s *Server) handleAddCertification(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	var p store.CertificationPatch
	if !s.decodeBody(w, r, &p) {
		return
	}
	id := sess.Store.AddCertification()
	sess.Store.UpdateCertification(id, p)
	s.jsonResponse(w, http.StatusCreated, entryResponse(id, sess))
}

func (s *Server) handleUpdateCertification(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return certificationExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Certification not found")
		return
	}
	var p store.CertificationPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	sess.Store.UpdateCertification(entryID, p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveCertification(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveCertification(r.PathValue("entryID"))
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// --- Languages ---

func (s *Server) handleAddLanguage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	var p store.LanguagePatch
	if !s.decodeBody(w, r, &p) {
		return
	}
	if p.Proficiency != nil && !validProficiency(*p.Proficiency) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown proficiency level")
		return
	}
	id := sess.Store.AddLanguage()
	sess.Store.UpdateLanguage(id, p)
	s.jsonResponse(w, http.StatusCreated, entryResponse(id, sess))
}

func (s *Server) handleUpdateLanguage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return languageExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Language not found")
		return
	}
	var p store.LanguagePatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if p.Proficiency != nil && !validProficiency(*p.Proficiency) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown proficiency level")
		return
	}
	sess.Store.UpdateLanguage(entryID, p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveLanguage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveLanguage(r.PathValue("entryID"))
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// --- Achievements ---

func (s *Server) handleAddAchievement(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	var p store.AchievementPatch
	if !s.decodeBody(w, r, &p) {
		return
	}
	id := sess.Store.AddAchievement()
	sess.Store.UpdateAchievement(id, p)
	s.jsonResponse(w, http.StatusCreated, entryResponse(id, sess))
}

func (s *Server) handleUpdateAchievement(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return achievementExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Achievement not found")
		return
	}
	var p store.AchievementPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	sess.Store.UpdateAchievement(entryID, p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveAchievement(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveAchievement(r.PathValue("entryID"))
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// --- Interests ---

func (s *Server) handleAddInterest(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	var p store.InterestPatch
	if !s.decodeBody(w, r, &p) {
		return
	}
	if p.Category != nil && !validInterestCategory(*p.Category) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown interest category")
		return
	}
	id := sess.Store.AddInterest()
	sess.Store.UpdateInterest(id, p)
	s.jsonResponse(w, http.StatusCreated, entryResponse(id, sess))
}

func (s *Server) handleUpdateInterest(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	entryID := r.PathValue("entryID")
	if !hasEntry(sess, func(d types.ResumeData) bool { return interestExists(d, entryID) }) {
		s.errorResponse(w, http.StatusNotFound, "Interest not found")
		return
	}
	var p store.InterestPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if p.Category != nil && !validInterestCategory(*p.Category) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown interest category")
		return
	}
	sess.Store.UpdateInterest(entryID, p)
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

func (s *Server) handleRemoveInterest(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}
	sess.Store.RemoveInterest(r.PathValue("entryID"))
	s.jsonResponse(w, http.StatusOK, resumeResponse(sess))
}

// --- Entry lookup helpers ---

func hasEntry(sess *session.Session, find func(types.ResumeData) bool) bool {
	return find(sess.Store.Snapshot())
}

func educationExists(d types.ResumeData, id string) bool {
	for _, e := range d.Education {
		if e.ID == id {
			return true
		}
	}
	return false
}

func skillExists(d types.ResumeData, id string) bool {
	for _, e := range d.Skills {
		if e.ID == id {
			return true
		}
	}
	return false
}

func projectExists(d types.ResumeData, id string) bool {
	for _, e := range d.Projects {
		if e.ID == id {
			return true
		}
	}
	return false
}

func experienceExists(d types.ResumeData, id string) bool {
	for _, e := range d.Experience {
		if e.ID == id {
			return true
		}
	}
	return false
}

func certificationExists(d types.ResumeData, id string) bool {
	for _, e := range d.Certifications {
		if e.ID == id {
			return true
		}
	}
	return false
}

func languageExists(d types.ResumeData, id string) bool {
	for _, e := range d.Languages {
		if e.ID == id {
			return true
		}
	}
	return false
}

func achievementExists(d types.ResumeData, id string) bool {
	for _, e := range d.Achievements {
		if e.ID == id {
			return true
		}
	}
	return false
}

func interestExists(d types.ResumeData, id string) bool {
	for _, e := range d.Interests {
		if e.ID == id {
			return true
		}
	}
	return false
}

func validProficiency(p types.Proficiency) bool {
	switch p {
	case types.ProficiencyBasic, types.ProficiencyConversational, types.ProficiencyProfessional, types.ProficiencyNative:
		return true
	}
	return false
}

func validInterestCategory(c types.InterestCategory) bool {
	switch c {
	case types.InterestHobby, types.InterestSport, types.InterestArt, types.InterestTechnology, types.InterestOther:
		return true
	}
	return false
}
