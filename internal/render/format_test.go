package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestFormatYearMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty input", input: "", expected: ""},
		{name: "valid year-month", input: "2024-06", expected: "June 2024"},
		{name: "january", input: "2023-01", expected: "January 2023"},
		{name: "december", input: "2025-12", expected: "December 2025"},
		{name: "unparseable passes through", input: "June 2024", expected: "June 2024"},
		{name: "year only passes through", input: "2024", expected: "2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatYearMonth(tt.input))
		})
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		current  bool
		expected string
	}{
		{name: "both dates", start: "2020-09", end: "2024-05", expected: "September 2020 - May 2024"},
		{name: "current position", start: "2022-03", end: "2023-01", current: true, expected: "March 2022 - Present"},
		{name: "current with empty end", start: "2022-03", current: true, expected: "March 2022 - Present"},
		{name: "no end date", start: "2022-03", expected: "March 2022"},
		{name: "all empty", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateRange(tt.start, tt.end, tt.current))
		})
	}
}

func TestHSL(t *testing.T) {
	assert.Equal(t, "hsl(217 91% 60%)", HSL("217 91% 60%"))
	assert.Equal(t, "hsl(0 84% 60%)", HSL("0 84% 60%"))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a | b", JoinNonEmpty(" | ", "a", "", "b"))
	assert.Equal(t, "", JoinNonEmpty(", "))
	assert.Equal(t, "solo", JoinNonEmpty(", ", "", "solo", ""))
}

func TestSkillNames(t *testing.T) {
	skills := []types.Skill{
		{ID: "1", Name: "Go", Category: types.SkillTechnical},
		{ID: "2", Name: "Communication", Category: types.SkillSoft},
	}
	assert.Equal(t, "Go, Communication", SkillNames(skills))
	assert.Equal(t, "", SkillNames(nil))
}

func TestLanguageList(t *testing.T) {
	langs := []types.Language{
		{ID: "1", Name: "English", Proficiency: types.ProficiencyNative},
		{ID: "2", Name: "Spanish", Proficiency: types.ProficiencyConversational},
	}
	assert.Equal(t, "English (native), Spanish (conversational)", LanguageList(langs))
}
