package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
)

// Service generates resume content directly against the model, backing
// the proxy endpoint this application exposes.
type Service struct {
	client llm.Client
}

// NewService wraps an LLM client.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// feedbackSchema is the output contract for resume reviews.
var feedbackSchema = llm.ExtractionSchema{
	Name:        "ResumeFeedback",
	Description: "You are a professional resume reviewer. Analyze the resume and provide scores and feedback.",
	Fields: []llm.SchemaField{
		{Name: "overallScore", Type: "number", Description: "0-100", Required: true},
		{Name: "grammarScore", Type: "number", Description: "0-100", Required: true},
		{Name: "professionalScore", Type: "number", Description: "0-100", Required: true},
		{Name: "completenessScore", Type: "number", Description: "0-100", Required: true},
		{Name: "strengths", Type: "[]string", Description: "what the resume does well"},
		{Name: "suggestions", Type: "[]string", Description: "concrete improvements"},
		{Name: "weaknesses", Type: "[]string", Description: "gaps holding the resume back"},
	},
}

// GenerateObjective produces a 2-3 sentence career objective from the
// candidate's personal info, education, and skills.
func (s *Service) GenerateObjective(ctx context.Context, d types.ResumeData) (string, error) {
	personal, _ := json.Marshal(d.PersonalInfo)
	education, _ := json.Marshal(d.Education)
	skills, _ := json.Marshal(d.Skills)

	prompt := fmt.Sprintf(
		"You are an expert resume writer. Generate a concise, professional career objective (2-3 sentences) for a student/fresher based on their information.\n\n"+
			"Generate a career objective for: %s. Education: %s. Skills: %s\n\n"+
			"Return only the objective text, no preamble.",
		personal, education, skills,
	)

	text, err := s.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", mapQuotaError(err)
	}
	return strings.TrimSpace(text), nil
}

// SuggestSkills proposes 5 technical skills from the candidate's
// education and projects.
func (s *Service) SuggestSkills(ctx context.Context, d types.ResumeData) ([]string, error) {
	education, _ := json.Marshal(d.Education)
	projects, _ := json.Marshal(d.Projects)

	prompt := fmt.Sprintf(
		"You are a career advisor. Suggest 5 relevant technical skills based on the user's education and projects. Return only skill names as a JSON array.\n\n"+
			"Suggest skills for: Education: %s. Projects: %s",
		education, projects,
	)

	text, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, mapQuotaError(err)
	}

	var skills []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(text)), &skills); err != nil {
		return []string{}, nil
	}
	return skills, nil
}

// Feedback scores the whole resume. A response that cannot be parsed
// degrades to neutral scores instead of failing the review.
func (s *Service) Feedback(ctx context.Context, d types.ResumeData) (types.AIFeedback, error) {
	resume, err := json.Marshal(d)
	if err != nil {
		return types.AIFeedback{}, fmt.Errorf("failed to encode resume for review: %w", err)
	}

	prompt := llm.BuildExtractionPrompt(feedbackSchema, string(resume))

	text, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return types.AIFeedback{}, mapQuotaError(err)
	}

	var fb types.AIFeedback
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(text)), &fb); err != nil {
		return fallbackFeedback(), nil
	}
	return fb, nil
}

// mapQuotaError translates provider quota failures into the package's
// sentinel errors.
func mapQuotaError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return ErrRateLimited
		case 402:
			return ErrPaymentRequired
		}
	}
	return err
}
