package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestEducation_AddUpdateRemove(t *testing.T) {
	s := New()

	id1 := s.AddEducation()
	id2 := s.AddEducation()
	require.NotEmpty(t, id1)
	require.NotEqual(t, id1, id2)

	s.UpdateEducation(id1, EducationPatch{Institution: strPtr("MIT"), Degree: strPtr("BSc")})

	edu := s.Snapshot().Education
	require.Len(t, edu, 2)
	assert.Equal(t, id1, edu[0].ID, "insertion order is preserved")
	assert.Equal(t, "MIT", edu[0].Institution)
	assert.Equal(t, "BSc", edu[0].Degree)
	assert.Equal(t, "", edu[0].Field, "unpatched fields stay at defaults")
	assert.Equal(t, "", edu[1].Institution)

	s.RemoveEducation(id1)
	edu = s.Snapshot().Education
	require.Len(t, edu, 1)
	assert.Equal(t, id2, edu[0].ID)
}

func TestEducation_MissingIDIsNoop(t *testing.T) {
	s := New()
	s.AddEducation()
	before := s.Snapshot()

	s.UpdateEducation("nope", EducationPatch{Institution: strPtr("X")})
	assert.Equal(t, before, s.Snapshot())

	s.RemoveEducation("nope")
	assert.Equal(t, before, s.Snapshot())
}

func TestSections_AddRemoveSequencePreservesSurvivors(t *testing.T) {
	s := New()

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, s.AddCertification())
	}
	s.RemoveCertification(ids[1])
	s.RemoveCertification(ids[3])

	certs := s.Snapshot().Certifications
	require.Len(t, certs, 3)
	assert.Equal(t, ids[0], certs[0].ID)
	assert.Equal(t, ids[2], certs[1].ID)
	assert.Equal(t, ids[4], certs[2].ID)
}

func TestSkills_AddRejectsBlankName(t *testing.T) {
	s := New()
	assert.Empty(t, s.AddSkill("   ", types.SkillTechnical))
	assert.Empty(t, s.Snapshot().Skills)
}

func TestSkills_AddDefaultsToTechnical(t *testing.T) {
	s := New()
	s.AddSkill("Go", "")
	skills := s.Snapshot().Skills
	require.Len(t, skills, 1)
	assert.Equal(t, types.SkillTechnical, skills[0].Category)
}

func TestSkills_AppendNeverReplaces(t *testing.T) {
	s := New()
	s.AddSkill("Java", types.SkillTechnical)
	s.AppendSkills([]string{"Python", "SQL"}, types.SkillTechnical)

	skills := s.Snapshot().Skills
	require.Len(t, skills, 3)
	assert.Equal(t, "Java", skills[0].Name)
	assert.Equal(t, "Python", skills[1].Name)
	assert.Equal(t, "SQL", skills[2].Name)
	for _, sk := range skills {
		assert.Equal(t, types.SkillTechnical, sk.Category)
	}
}

func TestResponsibilities(t *testing.T) {
	s := New()
	id := s.AddExperience()

	s.AddResponsibility(id, "Led migrations")
	s.AddResponsibility(id, "  ")        // blank rejected
	s.AddResponsibility("nope", "lost")  // unknown id rejected
	s.AddResponsibility(id, "Mentored juniors")

	exp := s.Snapshot().Experience[0]
	require.Equal(t, []string{"Led migrations", "Mentored juniors"}, exp.Responsibilities)

	s.RemoveResponsibility(id, 5) // out of range: no-op
	s.RemoveResponsibility(id, 0)
	exp = s.Snapshot().Experience[0]
	assert.Equal(t, []string{"Mentored juniors"}, exp.Responsibilities)
}

func TestTechnologies_DuplicatesAllowed(t *testing.T) {
	s := New()
	id := s.AddProject()

	s.AddTechnology(id, "Go")
	s.AddTechnology(id, "Go")
	s.AddTechnology(id, "")

	proj := s.Snapshot().Projects[0]
	assert.Equal(t, []string{"Go", "Go"}, proj.Technologies)

	s.RemoveTechnology(id, -1)
	s.RemoveTechnology(id, 1)
	assert.Equal(t, []string{"Go"}, s.Snapshot().Projects[0].Technologies)
}

func TestLanguage_DefaultProficiency(t *testing.T) {
	s := New()
	id := s.AddLanguage()

	langs := s.Snapshot().Languages
	require.Len(t, langs, 1)
	assert.Equal(t, types.ProficiencyConversational, langs[0].Proficiency)

	s.UpdateLanguage(id, LanguagePatch{Name: strPtr("French"), Proficiency: profPtr(types.ProficiencyNative)})
	langs = s.Snapshot().Languages
	assert.Equal(t, "French", langs[0].Name)
	assert.Equal(t, types.ProficiencyNative, langs[0].Proficiency)
}

func TestInterest_DefaultCategory(t *testing.T) {
	s := New()
	s.AddInterest()
	assert.Equal(t, types.InterestOther, s.Snapshot().Interests[0].Category)
}

func TestExperience_UpdateCurrentFlag(t *testing.T) {
	s := New()
	id := s.AddExperience()
	s.UpdateExperience(id, ExperiencePatch{
		Company:   strPtr("Acme"),
		Role:      strPtr("Engineer"),
		StartDate: strPtr("2022-03"),
		EndDate:   strPtr("2024-01"),
		Current:   boolPtr(true),
	})

	exp := s.Snapshot().Experience[0]
	assert.True(t, exp.Current)
	assert.Equal(t, "2024-01", exp.EndDate, "stored end date is kept even while current")
}

func TestAchievement_AddUpdateRemove(t *testing.T) {
	s := New()
	id := s.AddAchievement()
	s.UpdateAchievement(id, AchievementPatch{Title: strPtr("Dean's List"), Date: strPtr("2023-05")})

	ach := s.Snapshot().Achievements
	require.Len(t, ach, 1)
	assert.Equal(t, "Dean's List", ach[0].Title)

	s.RemoveAchievement(id)
	assert.Empty(t, s.Snapshot().Achievements)
}

func profPtr(p types.Proficiency) *types.Proficiency { return &p }
