package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Resume is one stored resume document. Sections live in jsonb columns
// so the document round-trips without a schema migration per section
// tweak, while title and template stay queryable for listings.
type Resume struct {
	ID              uuid.UUID             `json:"id"`
	Title           string                `json:"title"`
	Template        string                `json:"template"`
	Settings        types.ResumeSettings  `json:"settings"`
	PersonalInfo    types.PersonalInfo    `json:"personalInfo"`
	CareerObjective string                `json:"careerObjective"`
	Education       []types.Education     `json:"education"`
	Skills          []types.Skill         `json:"skills"`
	Projects        []types.Project       `json:"projects"`
	Experience      []types.Experience    `json:"experience"`
	Certifications  []types.Certification `json:"certifications"`
	Languages       []types.Language      `json:"languages"`
	Achievements    []types.Achievement   `json:"achievements"`
	Interests       []types.Interest      `json:"interests"`
	AIFeedback      *types.AIFeedback     `json:"aiFeedback,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ResumeSummary is the listing projection: enough to render a picker
// without loading section payloads.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResumeData converts a stored record into the in-memory document,
// backfilling anything a partial write left nil.
func (r *Resume) ToResumeData() types.ResumeData {
	d := types.ResumeData{
		ID:              r.ID.String(),
		Title:           r.Title,
		Template:        types.TemplateType(r.Template),
		Settings:        r.Settings,
		PersonalInfo:    r.PersonalInfo,
		CareerObjective: r.CareerObjective,
		Education:       r.Education,
		Skills:          r.Skills,
		Projects:        r.Projects,
		Experience:      r.Experience,
		Certifications:  r.Certifications,
		Languages:       r.Languages,
		Achievements:    r.Achievements,
		Interests:       r.Interests,
		AIFeedback:      r.AIFeedback,
	}
	return d.Normalize()
}

// FromResumeData builds a record for the given document.
func FromResumeData(id uuid.UUID, d types.ResumeData) Resume {
	return Resume{
		ID:              id,
		Title:           d.Title,
		Template:        string(d.Template),
		Settings:        d.Settings,
		PersonalInfo:    d.PersonalInfo,
		CareerObjective: d.CareerObjective,
		Education:       d.Education,
		Skills:          d.Skills,
		Projects:        d.Projects,
		Experience:      d.Experience,
		Certifications:  d.Certifications,
		Languages:       d.Languages,
		Achievements:    d.Achievements,
		Interests:       d.Interests,
		AIFeedback:      d.AIFeedback,
	}
}
