package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/ai"
	"github.com/jonathan/resume-builder/internal/types"
)

// fakeGenerator returns canned content or a configured error
type fakeGenerator struct {
	objective string
	skills    []string
	feedback  types.AIFeedback
	err       error
}

func (f *fakeGenerator) GenerateObjective(_ context.Context, _ types.ResumeData) (string, error) {
	return f.objective, f.err
}

func (f *fakeGenerator) SuggestSkills(_ context.Context, _ types.ResumeData) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.skills, nil
}

func (f *fakeGenerator) Feedback(_ context.Context, _ types.ResumeData) (types.AIFeedback, error) {
	return f.feedback, f.err
}

func TestAIGenerate_Objective(t *testing.T) {
	ts := newTestServer()
	ts.generator = &fakeGenerator{objective: "Seasoned engineer seeking impact."}

	w := ts.do(t, http.MethodPost, "/ai", GenerateRequest{
		Type:       ai.TypeGenerateObjective,
		ResumeData: types.Initial(),
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Seasoned engineer seeking impact.", resp.Objective)
}

func TestAIGenerate_Skills(t *testing.T) {
	ts := newTestServer()
	ts.generator = &fakeGenerator{skills: []string{"Go", "PostgreSQL"}}

	w := ts.do(t, http.MethodPost, "/ai", GenerateRequest{
		Type:       ai.TypeSuggestSkills,
		ResumeData: types.Initial(),
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Go", "PostgreSQL"}, resp.Skills)
}

func TestAIGenerate_Feedback(t *testing.T) {
	ts := newTestServer()
	ts.generator = &fakeGenerator{feedback: types.AIFeedback{
		OverallScore:      85,
		GrammarScore:      90,
		ProfessionalScore: 80,
		CompletenessScore: 75,
		Strengths:         []string{"Clear history"},
		Suggestions:       []string{"Quantify results"},
		Weaknesses:        []string{},
	}}

	w := ts.do(t, http.MethodPost, "/ai", GenerateRequest{
		Type:       ai.TypeFeedback,
		ResumeData: types.Initial(),
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Feedback)
	assert.Equal(t, 85, resp.Feedback.OverallScore)
}

func TestAIGenerate_UnknownType(t *testing.T) {
	ts := newTestServer()
	ts.generator = &fakeGenerator{}

	w := ts.do(t, http.MethodPost, "/ai", GenerateRequest{Type: "summarize"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAIGenerate_NotConfigured(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, http.MethodPost, "/ai", GenerateRequest{Type: ai.TypeGenerateObjective})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAIGenerate_QuotaErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "rate limited", err: ai.ErrRateLimited, wantStatus: http.StatusTooManyRequests},
		{name: "payment required", err: ai.ErrPaymentRequired, wantStatus: http.StatusPaymentRequired},
		{name: "other failure", err: errors.New("model unavailable"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			ts.generator = &fakeGenerator{err: tt.err}

			w := ts.do(t, http.MethodPost, "/ai", GenerateRequest{
				Type:       ai.TypeGenerateObjective,
				ResumeData: types.Initial(),
			})

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAIObjective_AppliedToDocument(t *testing.T) {
	ts := newTestServer()
	ts.generator = &fakeGenerator{objective: "Ship reliable systems."}
	id := ts.seed(t, seededResume())

	w := ts.do(t, http.MethodPost, "/resumes/"+id.String()+"/ai/objective", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResume(t, w)
	assert.Equal(t, "Ship reliable systems.", resp.Resume.CareerObjective)
}

func TestAISkills_AppendedToExistingList(t *testing.T) {
	ts := newTestServer()
	ts.generator = &fakeGenerator{skills: []string{"Go", "Docker"}}
	id := ts.seed(t, seededResume())

	ts.do(t, http.MethodPost, "/resumes/"+id.String()+"/skills", map[string]string{"name": "SQL"})

	w := ts.do(t, http.MethodPost, "/resumes/"+id.String()+"/ai/skills", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResume(t, w)
	names := make([]string, 0, len(resp.Resume.Skills))
	for _, sk := range resp.Resume.Skills {
		names = append(names, sk.Name)
	}
	assert.Equal(t, []string{"SQL", "Go", "Docker"}, names)
	// Suggestions land as technical skills
	assert.Equal(t, types.SkillTechnical, resp.Resume.Skills[2].Category)
}

func TestAIFeedback_StampedAndStored(t *testing.T) {
	ts := newTestServer()
	ts.generator = &fakeGenerator{feedback: types.AIFeedback{
		OverallScore: 72,
		Strengths:    []string{},
		Suggestions:  []string{},
		Weaknesses:   []string{},
	}}
	id := ts.seed(t, seededResume())

	w := ts.do(t, http.MethodPost, "/resumes/"+id.String()+"/ai/feedback", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResume(t, w)
	require.NotNil(t, resp.Resume.AIFeedback)
	assert.Equal(t, 72, resp.Resume.AIFeedback.OverallScore)
	assert.NotEmpty(t, resp.Resume.AIFeedback.GeneratedAt)
}

func TestAIObjective_FailureLeavesDocumentUntouched(t *testing.T) {
	ts := newTestServer()
	ts.generator = &fakeGenerator{err: ai.ErrRateLimited}
	id := ts.seed(t, seededResume())

	w := ts.do(t, http.MethodPost, "/resumes/"+id.String()+"/ai/objective", nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	sess := ts.sessions.Get(id)
	require.NotNil(t, sess)
	assert.Empty(t, sess.Store.Snapshot().CareerObjective)
}
