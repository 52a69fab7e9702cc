package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section controllers: one add/update/remove triple per list-backed resume
// section. Adds return the generated id so the caller can focus the new entry.
// Updates and removes against an unknown id leave the list unchanged; that is
// the contract, not an error.

// EducationPatch is a partial update of one education entry
type EducationPatch struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	GPA         *string `json:"gpa,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AddEducation appends an empty education entry and returns its id
func (s *Store) AddEducation() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	id := uuid.New().String()
	data.Education = append(data.Education, types.Education{ID: id})
	s.commit(data)
	return id
}

// UpdateEducation shallow-merges the patch into the entry with the given id
func (s *Store) UpdateEducation(id string, p EducationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Education {
		if data.Education[i].ID != id {
			continue
		}
		e := &data.Education[i]
		if p.Institution != nil {
			e.Institution = *p.Institution
		}
		if p.Degree != nil {
			e.Degree = *p.Degree
		}
		if p.Field != nil {
			e.Field = *p.Field
		}
		if p.StartDate != nil {
			e.StartDate = *p.StartDate
		}
		if p.EndDate != nil {
			e.EndDate = *p.EndDate
		}
		if p.GPA != nil {
			e.GPA = *p.GPA
		}
		if p.Description != nil {
			e.Description = *p.Description
		}
		s.commit(data)
		return
	}
}

// RemoveEducation filters the entry with the given id out of the list
func (s *Store) RemoveEducation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	kept := data.Education[:0]
	for _, e := range data.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(data.Education) {
		return
	}
	data.Education = kept
	s.commit(data)
}

// SkillPatch is a partial update of one skill entry
type SkillPatch struct {
	Name     *string              `json:"name,omitempty"`
	Category *types.SkillCategory `json:"category,omitempty"`
}

// AddSkill appends a named skill and returns its id. A blank name is rejected
// and the list is left unchanged.
func (s *Store) AddSkill(name string, category types.SkillCategory) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if category == "" {
		category = types.SkillTechnical
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	id := uuid.New().String()
	data.Skills = append(data.Skills, types.Skill{ID: id, Name: name, Category: category})
	s.commit(data)
	return id
}

// UpdateSkill shallow-merges the patch into the entry with the given id
func (s *Store) UpdateSkill(id string, p SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Skills {
		if data.Skills[i].ID != id {
			continue
		}
		if p.Name != nil {
			data.Skills[i].Name = *p.Name
		}
		if p.Category != nil {
			data.Skills[i].Category = *p.Category
		}
		s.commit(data)
		return
	}
}

// RemoveSkill filters the entry with the given id out of the list
func (s *Store) RemoveSkill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	kept := data.Skills[:0]
	for _, e := range data.Skills {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(data.Skills) {
		return
	}
	data.Skills = kept
	s.commit(data)
}

// AppendSkills appends one skill per name, all with the given category.
// Blank names are skipped. Existing skills are never replaced.
func (s *Store) AppendSkills(names []string, category types.SkillCategory) {
	if category == "" {
		category = types.SkillTechnical
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	added := false
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		data.Skills = append(data.Skills, types.Skill{ID: uuid.New().String(), Name: name, Category: category})
		added = true
	}
	if !added {
		return
	}
	s.commit(data)
}

// ProjectPatch is a partial update of one project entry
type ProjectPatch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Link         *string   `json:"link,omitempty"`
	StartDate    *string   `json:"startDate,omitempty"`
	EndDate      *string   `json:"endDate,omitempty"`
}

// AddProject appends an empty project entry and returns its id
func (s *Store) AddProject() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	id := uuid.New().String()
	data.Projects = append(data.Projects, types.Project{ID: id, Technologies: []string{}})
	s.commit(data)
	return id
}

// UpdateProject shallow-merges the patch into the entry with the given id
func (s *Store) UpdateProject(id string, p ProjectPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Projects {
		if data.Projects[i].ID != id {
			continue
		}
		pr := &data.Projects[i]
		if p.Title != nil {
			pr.Title = *p.Title
		}
		if p.Description != nil {
			pr.Description = *p.Description
		}
		if p.Technologies != nil {
			pr.Technologies = append([]string{}, *p.Technologies...)
		}
		if p.Link != nil {
			pr.Link = *p.Link
		}
		if p.StartDate != nil {
			pr.StartDate = *p.StartDate
		}
		if p.EndDate != nil {
			pr.EndDate = *p.EndDate
		}
		s.commit(data)
		return
	}
}

// RemoveProject filters the entry with the given id out of the list
func (s *Store) RemoveProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	kept := data.Projects[:0]
	for _, e := range data.Projects {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(data.Projects) {
		return
	}
	data.Projects = kept
	s.commit(data)
}

// AddTechnology appends a technology tag to the given project. Blank tags are
// rejected; an unknown project id is a no-op. Duplicate tags are allowed.
func (s *Store) AddTechnology(projectID, tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Projects {
		if data.Projects[i].ID != projectID {
			continue
		}
		data.Projects[i].Technologies = append(data.Projects[i].Technologies, tag)
		s.commit(data)
		return
	}
}

// RemoveTechnology removes the tag at index from the given project.
// Out-of-range indexes and unknown project ids are no-ops.
func (s *Store) RemoveTechnology(projectID string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Projects {
		if data.Projects[i].ID != projectID {
			continue
		}
		techs := data.Projects[i].Technologies
		if index < 0 || index >= len(techs) {
			return
		}
		data.Projects[i].Technologies = append(techs[:index], techs[index+1:]...)
		s.commit(data)
		return
	}
}

// ExperiencePatch is a partial update of one experience entry
type ExperiencePatch struct {
	Company          *string   `json:"company,omitempty"`
	Role             *string   `json:"role,omitempty"`
	Location         *string   `json:"location,omitempty"`
	StartDate        *string   `json:"startDate,omitempty"`
	EndDate          *string   `json:"endDate,omitempty"`
	Current          *bool     `json:"current,omitempty"`
	Responsibilities *[]string `json:"responsibilities,omitempty"`
}

// AddExperience appends an empty experience entry and returns its id
func (s *Store) AddExperience() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	id := uuid.New().String()
	data.Experience = append(data.Experience, types.Experience{ID: id, Responsibilities: []string{}})
	s.commit(data)
	return id
}

// UpdateExperience shallow-merges the patch into the entry with the given id
func (s *Store) UpdateExperience(id string, p ExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Experience {
		if data.Experience[i].ID != id {
			continue
		}
		e := &data.Experience[i]
		if p.Company != nil {
			e.Company = *p.Company
		}
		if p.Role != nil {
			e.Role = *p.Role
		}
		if p.Location != nil {
			e.Location = *p.Location
		}
		if p.StartDate != nil {
			e.StartDate = *p.StartDate
		}
		if p.EndDate != nil {
			e.EndDate = *p.EndDate
		}
		if p.Current != nil {
			e.Current = *p.Current
		}
		if p.Responsibilities != nil {
			e.Responsibilities = append([]string{}, *p.Responsibilities...)
		}
		s.commit(data)
		return
	}
}

// RemoveExperience filters the entry with the given id out of the list
func (s *Store) RemoveExperience(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	kept := data.Experience[:0]
	for _, e := range data.Experience {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(data.Experience) {
		return
	}
	data.Experience = kept
	s.commit(data)
}

// AddResponsibility appends a responsibility line to the given experience.
// Blank lines are rejected; an unknown experience id is a no-op.
func (s *Store) AddResponsibility(experienceID, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Experience {
		if data.Experience[i].ID != experienceID {
			continue
		}
		data.Experience[i].Responsibilities = append(data.Experience[i].Responsibilities, text)
		s.commit(data)
		return
	}
}

// RemoveResponsibility removes the line at index from the given experience.
// Out-of-range indexes and unknown experience ids are no-ops.
func (s *Store) RemoveResponsibility(experienceID string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Experience {
		if data.Experience[i].ID != experienceID {
			continue
		}
		resp := data.Experience[i].Responsibilities
		if index < 0 || index >= len(resp) {
			return
		}
		data.Experience[i].Responsibilities = append(resp[:index], resp[index+1:]...)
		s.commit(data)
		return
	}
}

// CertificationPatch is a partial update of one certification entry
type CertificationPatch struct {
	Name   *string `json:"name,omitempty"`
	Issuer *string `json:"issuer,omitempty"`
	Date   *string `json:"date,omitempty"`
	Link   *string `json:"link,omitempty"`
}

// AddCertification appends an empty certification entry and returns its id
func (s *Store) AddCertification() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	id := uuid.New().String()
	data.Certifications = append(data.Certifications, types.Certification{ID: id})
	s.commit(data)
	return id
}

// UpdateCertification shallow-merges the patch into the entry with the given id
func (s *Store) UpdateCertification(id string, p CertificationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Certifications {
		if data.Certifications[i].ID != id {
			continue
		}
		c := &data.Certifications[i]
		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.Issuer != nil {
			c.Issuer = *p.Issuer
		}
		if p.Date != nil {
			c.Date = *p.Date
		}
		if p.Link != nil {
			c.Link = *p.Link
		}
		s.commit(data)
		return
	}
}

// RemoveCertification filters the entry with the given id out of the list
func (s *Store) RemoveCertification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	kept := data.Certifications[:0]
	for _, e := range data.Certifications {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(data.Certifications) {
		return
	}
	data.Certifications = kept
	s.commit(data)
}

// LanguagePatch is a partial update of one language entry
type LanguagePatch struct {
	Name        *string            `json:"name,omitempty"`
	Proficiency *types.Proficiency `json:"proficiency,omitempty"`
}

// AddLanguage appends a language entry with the default proficiency and
// returns its id
func (s *Store) AddLanguage() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	id := uuid.New().String()
	data.Languages = append(data.Languages, types.Language{ID: id, Proficiency: types.ProficiencyConversational})
	s.commit(data)
	return id
}

// UpdateLanguage shallow-merges the patch into the entry with the given id
func (s *Store) UpdateLanguage(id string, p LanguagePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Languages {
		if data.Languages[i].ID != id {
			continue
		}
		if p.Name != nil {
			data.Languages[i].Name = *p.Name
		}
		if p.Proficiency != nil {
			data.Languages[i].Proficiency = *p.Proficiency
		}
		s.commit(data)
		return
	}
}

// RemoveLanguage filters the entry with the given id out of the list
func (s *Store) RemoveLanguage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	kept := data.Languages[:0]
	for _, e := range data.Languages {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(data.Languages) {
		return
	}
	data.Languages = kept
	s.commit(data)
}

// AchievementPatch is a partial update of one achievement entry
type AchievementPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// AddAchievement appends an empty achievement entry and returns its id
func (s *Store) AddAchievement() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	id := uuid.New().String()
	data.Achievements = append(data.Achievements, types.Achievement{ID: id})
	s.commit(data)
	return id
}

// UpdateAchievement shallow-merges the patch into the entry with the given id
func (s *Store) UpdateAchievement(id string, p AchievementPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Achievements {
		if data.Achievements[i].ID != id {
			continue
		}
		a := &data.Achievements[i]
		if p.Title != nil {
			a.Title = *p.Title
		}
		if p.Description != nil {
			a.Description = *p.Description
		}
		if p.Date != nil {
			a.Date = *p.Date
		}
		s.commit(data)
		return
	}
}

// RemoveAchievement filters the entry with the given id out of the list
func (s *Store) RemoveAchievement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	kept := data.Achievements[:0]
	for _, e := range data.Achievements {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(data.Achievements) {
		return
	}
	data.Achievements = kept
	s.commit(data)
}

// InterestPatch is a partial update of one interest entry
type InterestPatch struct {
	Name     *string                 `json:"name,omitempty"`
	Category *types.InterestCategory `json:"category,omitempty"`
}

// AddInterest appends an interest entry with the default category and returns
// its id
func (s *Store) AddInterest() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	id := uuid.New().String()
	data.Interests = append(data.Interests, types.Interest{ID: id, Category: types.InterestOther})
	s.commit(data)
	return id
}

// UpdateInterest shallow-merges the patch into the entry with the given id
func (s *Store) UpdateInterest(id string, p InterestPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	for i := range data.Interests {
		if data.Interests[i].ID != id {
			continue
		}
		if p.Name != nil {
			data.Interests[i].Name = *p.Name
		}
		if p.Category != nil {
			data.Interests[i].Category = *p.Category
		}
		s.commit(data)
		return
	}
}

// RemoveInterest filters the entry with the given id out of the list
func (s *Store) RemoveInterest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	kept := data.Interests[:0]
	for _, e := range data.Interests {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(data.Interests) {
		return
	}
	data.Interests = kept
	s.commit(data)
}
