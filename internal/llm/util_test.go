package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"objective\": \"Ship reliable backends.\"}\n```",
			expected: `{"objective": "Ship reliable backends."}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"objective\": \"Ship reliable backends.\"}\n```",
			expected: `{"objective": "Ship reliable backends."}`,
		},
		{
			name:     "code block with wrong language tag",
			input:    "```javascript\n{\"objective\": \"Ship reliable backends.\"}\n```",
			expected: `{"objective": "Ship reliable backends."}`,
		},
		{
			name:     "plain JSON",
			input:    `{"objective": "Ship reliable backends."}`,
			expected: `{"objective": "Ship reliable backends."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_PreambleText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preamble before JSON object",
			input:    "As requested, here is the objective:\n{\"objective\": \"Lead platform work.\"}",
			expected: `{"objective": "Lead platform work."}`,
		},
		{
			name:     "conversational preamble",
			input:    "Based on the experience listed, I've drafted a career objective. Here's the structured output:\n\n{\"objective\": \"Grow into a staff role\", \"tone\": \"professional\"}",
			expected: `{"objective": "Grow into a staff role", "tone": "professional"}`,
		},
		{
			name:     "preamble with multiple sentences",
			input:    "I reviewed the resume. The experience section is strong. Here is the result: {\"strengths\": [\"clear progression\"]}",
			expected: `{"strengths": ["clear progression"]}`,
		},
		{
			name:     "preamble before skill array",
			input:    "Here are the suggested skills:\n[\"Go\", \"PostgreSQL\"]",
			expected: `["Go", "PostgreSQL"]`,
		},
		{
			name:     "JSON with trailing text",
			input:    "{\"objective\": \"Build things.\"}\n\nLet me know if you'd like a different tone!",
			expected: `{"objective": "Build things."}`,
		},
		{
			name:     "nested objects",
			input:    "Output:\n{\"feedback\": {\"score\": 82}}",
			expected: `{"feedback": {"score": 82}}`,
		},
		{
			name:     "JSON with escaped quotes",
			input:    "Result: {\"suggestion\": \"Quantify \\\"impact\\\" with numbers\"}",
			expected: `{"suggestion": "Quantify \"impact\" with numbers"}`,
		},
		{
			name:     "deeply nested",
			input:    "Here: {\"feedback\": {\"sections\": {\"experience\": {\"score\": 90}}}}",
			expected: `{"feedback": {"sections": {"experience": {"score": 90}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple object",
			input:    `{"objective": "Build things."}`,
			expected: `{"objective": "Build things."}`,
		},
		{
			name:     "nested objects",
			input:    `{"feedback": {"score": 82}}`,
			expected: `{"feedback": {"score": 82}}`,
		},
		{
			name:     "object with array",
			input:    `{"skills": ["Go", "SQL", "Docker"]}`,
			expected: `{"skills": ["Go", "SQL", "Docker"]}`,
		},
		{
			name:     "object with trailing text",
			input:    `{"objective": "Build things."} and some more text`,
			expected: `{"objective": "Build things."}`,
		},
		{
			name:     "string with braces inside",
			input:    `{"template": "Dear {company} team"}`,
			expected: `{"template": "Dear {company} team"}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "not starting with brace",
			input:    "not json",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple array",
			input:    `["Go", "SQL", "Docker"]`,
			expected: `["Go", "SQL", "Docker"]`,
		},
		{
			name:     "nested arrays",
			input:    `[["Go", "SQL"], ["Figma"]]`,
			expected: `[["Go", "SQL"], ["Figma"]]`,
		},
		{
			name:     "array of objects",
			input:    `[{"name": "Go"}, {"name": "SQL"}]`,
			expected: `[{"name": "Go"}, {"name": "SQL"}]`,
		},
		{
			name:     "array with trailing text",
			input:    `["Go", "SQL"] extra stuff`,
			expected: `["Go", "SQL"]`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "not starting with bracket",
			input:    "not an array",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONArray(tt.input))
		})
	}
}
