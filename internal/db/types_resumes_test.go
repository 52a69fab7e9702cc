package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestResumeRoundTrip(t *testing.T) {
	id := uuid.New()
	d := types.Initial()
	d.Title = "Backend role"
	d.Template = types.TemplateClassic
	d.PersonalInfo.FullName = "Ada Lovelace"
	d.Skills = []types.Skill{{ID: "sk-1", Name: "Go", Category: types.SkillTechnical}}
	d.AIFeedback = &types.AIFeedback{OverallScore: 80}

	rec := FromResumeData(id, d)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "classic", rec.Template)

	back := rec.ToResumeData()
	assert.Equal(t, id.String(), back.ID)
	assert.Equal(t, "Backend role", back.Title)
	assert.Equal(t, types.TemplateClassic, back.Template)
	assert.Equal(t, d.Skills, back.Skills)
	require.NotNil(t, back.AIFeedback)
	assert.Equal(t, 80, back.AIFeedback.OverallScore)
}

func TestToResumeDataBackfillsNilSections(t *testing.T) {
	rec := Resume{
		ID:       uuid.New(),
		Title:    "Sparse",
		Template: "modern",
	}

	d := rec.ToResumeData()
	assert.NotNil(t, d.Education)
	assert.NotNil(t, d.Skills)
	assert.NotNil(t, d.Interests)
	assert.Empty(t, d.Education)
	assert.Nil(t, d.AIFeedback)
}
