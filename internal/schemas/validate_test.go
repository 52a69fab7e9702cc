package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func validResumeJSON(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(types.Initial())
	require.NoError(t, err)
	return string(b)
}

func TestValidateResumeJSON_InitialDocument(t *testing.T) {
	err := ValidateResumeJSON(validResumeJSON(t))
	assert.NoError(t, err)
}

func TestValidateResumeJSON_PopulatedDocument(t *testing.T) {
	d := types.Initial()
	d.PersonalInfo.FullName = "Ada Lovelace"
	d.Education = []types.Education{{ID: "e1", Institution: "MIT", Degree: "BSc", StartDate: "2020-09", EndDate: "2024-05"}}
	d.Skills = []types.Skill{{ID: "s1", Name: "Go", Category: types.SkillTechnical}}
	d.AIFeedback = &types.AIFeedback{OverallScore: 85, Suggestions: []string{"add metrics"}}

	b, err := json.Marshal(d)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeJSON(string(b)))
}

func TestValidateResumeJSON_MissingRequiredField(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(validResumeJSON(t)), &doc))
	delete(doc, "personalInfo")
	b, err := json.Marshal(doc)
	require.NoError(t, err)

	valErr := ValidateResumeJSON(string(b))
	require.Error(t, valErr)

	validationErr, ok := valErr.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateResumeJSON_UnknownTemplate(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(validResumeJSON(t)), &doc))
	doc["template"] = "holographic"
	b, err := json.Marshal(doc)
	require.NoError(t, err)

	valErr := ValidateResumeJSON(string(b))
	require.Error(t, valErr)

	validationErr, ok := valErr.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "template", validationErr.Errors[0].Field)
}

func TestValidateResumeJSON_SettingsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		patch map[string]any
	}{
		{name: "fontSize too small", patch: map[string]any{"fontSize": 8}},
		{name: "fontSize too large", patch: map[string]any{"fontSize": 19}},
		{name: "lineHeight too small", patch: map[string]any{"lineHeight": 0.5}},
		{name: "lineHeight too large", patch: map[string]any{"lineHeight": 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]any
			require.NoError(t, json.Unmarshal([]byte(validResumeJSON(t)), &doc))
			settings := doc["settings"].(map[string]any)
			for k, v := range tt.patch {
				settings[k] = v
			}
			b, err := json.Marshal(doc)
			require.NoError(t, err)

			valErr := ValidateResumeJSON(string(b))
			require.Error(t, valErr)
			_, ok := valErr.(*ValidationError)
			assert.True(t, ok)
		})
	}
}

func TestValidateResumeJSON_MalformedJSON(t *testing.T) {
	err := ValidateResumeJSON("{ invalid json }")
	require.Error(t, err)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "ok"}`))

	err := ValidateJSONString(schema, `{}`)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestResolveSchemaPath(t *testing.T) {
	// The resume schema lives two levels up from this package.
	path := ResolveSchemaPath(ResumeSchemaFile)
	assert.NotEmpty(t, path)

	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}
