// Package ai generates resume content: career objectives, skill
// suggestions, and scored feedback. The same operations are available
// through a remote proxy (Client) or directly against the model
// (Service); both honor the request contract used by the proxy endpoint.
package ai

import (
	"context"
	"errors"

	"github.com/jonathan/resume-builder/internal/types"
)

// Request types accepted by the generation endpoint.
const (
	TypeGenerateObjective = "generate-objective"
	TypeSuggestSkills     = "suggest-skills"
	TypeFeedback          = "feedback"
)

// Quota errors surfaced to callers so the UI can distinguish retryable
// throttling from an exhausted plan.
var (
	ErrRateLimited     = errors.New("rate limit exceeded")
	ErrPaymentRequired = errors.New("payment required")
)

// Generator is the surface shared by the remote client and the local
// service.
type Generator interface {
	GenerateObjective(ctx context.Context, d types.ResumeData) (string, error)
	SuggestSkills(ctx context.Context, d types.ResumeData) ([]string, error)
	Feedback(ctx context.Context, d types.ResumeData) (types.AIFeedback, error)
}

// fallbackFeedback is returned when the model's feedback response cannot
// be parsed, so the review flow always completes.
func fallbackFeedback() types.AIFeedback {
	return types.AIFeedback{
		OverallScore:      70,
		GrammarScore:      70,
		ProfessionalScore: 70,
		CompletenessScore: 70,
		Strengths:         []string{},
		Suggestions:       []string{"Add more details"},
		Weaknesses:        []string{},
	}
}
