// Package store holds the in-memory resume snapshot for one editing session
// and provides the controlled mutation operations the wizard edits through.
package store

import (
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

// Store is the single source of truth for one resume during an editing
// session. Every mutation produces a new snapshot and notifies subscribers
// synchronously; handed-out snapshots are deep copies and can never alias the
// current value.
type Store struct {
	mu   sync.Mutex
	data types.ResumeData
	step types.WizardStep
	subs []func(types.ResumeData)
}

// New creates a store holding the all-empty initial resume
func New() *Store {
	return &Store{
		data: types.Initial(),
		step: types.FirstStep(),
	}
}

// Load creates a store holding the given resume, backfilling defaults for any
// missing fields
func Load(data types.ResumeData) *Store {
	return &Store{
		data: data.Normalize(),
		step: types.FirstStep(),
	}
}

// Snapshot returns a deep copy of the current resume
func (s *Store) Snapshot() types.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Subscribe registers fn to be called synchronously with the new snapshot
// after every mutation. Subscribers must not call back into the store.
func (s *Store) Subscribe(fn func(types.ResumeData)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// commit installs the new snapshot and notifies subscribers. Callers must
// hold s.mu.
func (s *Store) commit(data types.ResumeData) {
	s.data = data
	for _, fn := range s.subs {
		fn(data.Clone())
	}
}

// ReplaceAll atomically swaps the entire snapshot, backfilling any missing
// field from defaults. Used when loading an existing resume.
func (s *Store) ReplaceAll(data types.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(data.Normalize())
}

// Reset returns the snapshot to initial defaults and the wizard to its first
// step
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = types.FirstStep()
	s.commit(types.Initial())
}

// Step returns the wizard's current step
func (s *Store) Step() types.WizardStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// SetStep moves the wizard to the given step. Navigation is unrestricted;
// completion state never gates it.
func (s *Store) SetStep(step types.WizardStep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = step
}

// Patch is a top-level partial update of the resume. Nil fields are left
// untouched; set fields replace their target wholesale (lists included).
// This is a replace-at-top-level merge, not a deep merge.
type Patch struct {
	Title           *string                `json:"title,omitempty"`
	Template        *types.TemplateType    `json:"template,omitempty"`
	Settings        *types.ResumeSettings  `json:"settings,omitempty"`
	PersonalInfo    *types.PersonalInfo    `json:"personalInfo,omitempty"`
	CareerObjective *string                `json:"careerObjective,omitempty"`
	Education       *[]types.Education     `json:"education,omitempty"`
	Skills          *[]types.Skill         `json:"skills,omitempty"`
	Projects        *[]types.Project       `json:"projects,omitempty"`
	Experience      *[]types.Experience    `json:"experience,omitempty"`
	Certifications  *[]types.Certification `json:"certifications,omitempty"`
	Languages       *[]types.Language      `json:"languages,omitempty"`
	Achievements    *[]types.Achievement   `json:"achievements,omitempty"`
	Interests       *[]types.Interest      `json:"interests,omitempty"`
	AIFeedback      *types.AIFeedback      `json:"aiFeedback,omitempty"`
}

// Apply shallow-merges the patch into the snapshot
func (s *Store) Apply(p Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	if p.Title != nil {
		data.Title = *p.Title
	}
	if p.Template != nil {
		data.Template = *p.Template
	}
	if p.Settings != nil {
		data.Settings = *p.Settings
	}
	if p.PersonalInfo != nil {
		data.PersonalInfo = *p.PersonalInfo
	}
	if p.CareerObjective != nil {
		data.CareerObjective = *p.CareerObjective
	}
	if p.Education != nil {
		data.Education = append([]types.Education{}, *p.Education...)
	}
	if p.Skills != nil {
		data.Skills = append([]types.Skill{}, *p.Skills...)
	}
	if p.Projects != nil {
		data.Projects = append([]types.Project{}, *p.Projects...)
	}
	if p.Experience != nil {
		data.Experience = append([]types.Experience{}, *p.Experience...)
	}
	if p.Certifications != nil {
		data.Certifications = append([]types.Certification{}, *p.Certifications...)
	}
	if p.Languages != nil {
		data.Languages = append([]types.Language{}, *p.Languages...)
	}
	if p.Achievements != nil {
		data.Achievements = append([]types.Achievement{}, *p.Achievements...)
	}
	if p.Interests != nil {
		data.Interests = append([]types.Interest{}, *p.Interests...)
	}
	if p.AIFeedback != nil {
		fb := *p.AIFeedback
		data.AIFeedback = &fb
	}
	s.commit(data)
}

// PatchPersonalInfo merges one field into the personal info block. Unknown
// field names are a silent no-op.
func (s *Store) PatchPersonalInfo(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	switch field {
	case "fullName":
		data.PersonalInfo.FullName = value
	case "email":
		data.PersonalInfo.Email = value
	case "phone":
		data.PersonalInfo.Phone = value
	case "location":
		data.PersonalInfo.Location = value
	case "linkedin":
		data.PersonalInfo.LinkedIn = value
	case "website":
		data.PersonalInfo.Website = value
	case "image":
		data.PersonalInfo.Image = value
	case "github":
		data.PersonalInfo.GitHub = value
	case "code":
		data.PersonalInfo.Code = value
	default:
		return
	}
	s.commit(data)
}

// SettingsPatch is a partial update of the presentation settings. The store
// performs no clamping; callers validate ranges before applying (see the
// validation package).
type SettingsPatch struct {
	ThemeColor   *string  `json:"themeColor,omitempty"`
	FontSize     *float64 `json:"fontSize,omitempty"`
	FontFamily   *string  `json:"fontFamily,omitempty"`
	FontSubset   *string  `json:"fontSubset,omitempty"`
	FontVariants *string  `json:"fontVariants,omitempty"`
	LineHeight   *float64 `json:"lineHeight,omitempty"`
	HideIcons    *bool    `json:"hideIcons,omitempty"`
}

// PatchSettings merges the patch into the settings block
func (s *Store) PatchSettings(p SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	if p.ThemeColor != nil {
		data.Settings.ThemeColor = *p.ThemeColor
	}
	if p.FontSize != nil {
		data.Settings.FontSize = *p.FontSize
	}
	if p.FontFamily != nil {
		data.Settings.FontFamily = *p.FontFamily
	}
	if p.FontSubset != nil {
		data.Settings.FontSubset = *p.FontSubset
	}
	if p.FontVariants != nil {
		data.Settings.FontVariants = *p.FontVariants
	}
	if p.LineHeight != nil {
		data.Settings.LineHeight = *p.LineHeight
	}
	if p.HideIcons != nil {
		data.Settings.HideIcons = *p.HideIcons
	}
	s.commit(data)
}

// SetFeedback wholly replaces the stored AI feedback
func (s *Store) SetFeedback(fb types.AIFeedback) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.data.Clone()
	data.AIFeedback = &fb
	s.commit(data)
}
