// Package schemas validates external generator payloads before they reach
// the anchoring pipeline. The generator is a black box; its output is not
// trusted until it passes the embedded JSON Schema.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// generatorSuggestionsSchema is the contract for the external free-text
// suggestion generator: an array of original/replacement pairs.
const generatorSuggestionsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "GeneratorSuggestions",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["original_text", "suggested_text"],
    "properties": {
      "original_text": {"type": "string", "minLength": 1},
      "suggested_text": {"type": "string", "minLength": 1},
      "reasoning": {"type": "string"},
      "category": {"type": "string"},
      "severity": {"type": "string", "enum": ["critical", "warning", "info"]},
      "type": {"type": "string"}
    },
    "additionalProperties": false
  }
}`

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("generator payload validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ParseGeneratorSuggestions validates raw generator JSON against the
// embedded schema and decodes it. Invalid payloads return a typed
// ValidationError; nothing partially decoded is ever returned.
func ParseGeneratorSuggestions(payload []byte) ([]types.GeneratorSuggestion, error) {
	schemaLoader := gojsonschema.NewStringLoader(generatorSuggestionsSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate generator payload: %w", err)
	}

	if !result.Valid() {
		validationErr := &ValidationError{
			Errors: make([]FieldError, 0, len(result.Errors())),
		}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			validationErr.Errors = append(validationErr.Errors, FieldError{
				Field:   field,
				Message: desc.Description(),
			})
		}
		return nil, validationErr
	}

	var suggestions []types.GeneratorSuggestion
	if err := json.Unmarshal(payload, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode generator payload: %w", err)
	}

	return suggestions, nil
}
