package ai

import (
	"time"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// ApplyObjective writes a generated objective into the resume, replacing
// whatever was there.
func ApplyObjective(s *store.Store, objective string) {
	s.Apply(store.Patch{CareerObjective: &objective})
}

// ApplySkills appends suggested skills as technical entries. Existing
// skills are kept; blank suggestions are dropped.
func ApplySkills(s *store.Store, names []string) {
	s.AppendSkills(names, types.SkillTechnical)
}

// ApplyFeedback stamps the feedback with the current time and stores it,
// replacing any previous review.
func ApplyFeedback(s *store.Store, fb types.AIFeedback) {
	fb.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	s.SetFeedback(fb)
}
