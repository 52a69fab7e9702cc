// Package llm - extractor.go builds prompts for structured JSON generation.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes the JSON object a generation prompt must
// produce. Features define their output contract once and reuse it across
// prompts.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeFeedback")
	Description string        // Prompt preamble describing the task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the generation output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "number"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Base your answer only on the provided resume content.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Resume content:\n")
	sb.WriteString(inputText)

	return sb.String()
}
