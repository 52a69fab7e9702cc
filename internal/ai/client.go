package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// Client calls a remote generation endpoint that accepts
// {"type": ..., "resumeData": ...} and answers with the field matching
// the request type.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Type       string           `json:"type"`
	ResumeData types.ResumeData `json:"resumeData"`
}

type generateResponse struct {
	Objective string            `json:"objective"`
	Skills    []string          `json:"skills"`
	Feedback  *types.AIFeedback `json:"feedback"`
	Error     string            `json:"error"`
}

func (c *Client) post(ctx context.Context, reqType string, d types.ResumeData) (*generateResponse, error) {
	body, err := json.Marshal(generateRequest{Type: reqType, ResumeData: d})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", reqType, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", reqType, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusPaymentRequired:
		return nil, ErrPaymentRequired
	default:
		var failure generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return nil, fmt.Errorf("generation endpoint returned %d: %s", resp.StatusCode, failure.Error)
		}
		return nil, fmt.Errorf("generation endpoint returned %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", reqType, err)
	}
	return &out, nil
}

// GenerateObjective asks the endpoint for a career objective.
func (c *Client) GenerateObjective(ctx context.Context, d types.ResumeData) (string, error) {
	resp, err := c.post(ctx, TypeGenerateObjective, d)
	if err != nil {
		return "", err
	}
	return resp.Objective, nil
}

// SuggestSkills asks the endpoint for skill suggestions.
func (c *Client) SuggestSkills(ctx context.Context, d types.ResumeData) ([]string, error) {
	resp, err := c.post(ctx, TypeSuggestSkills, d)
	if err != nil {
		return nil, err
	}
	return resp.Skills, nil
}

// Feedback asks the endpoint for a scored review of the resume.
func (c *Client) Feedback(ctx context.Context, d types.ResumeData) (types.AIFeedback, error) {
	resp, err := c.post(ctx, TypeFeedback, d)
	if err != nil {
		return types.AIFeedback{}, err
	}
	if resp.Feedback == nil {
		return fallbackFeedback(), nil
	}
	return *resp.Feedback, nil
}
