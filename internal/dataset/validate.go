package dataset

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dataset failed validation: %s", strings.Join(e.Problems, "; "))
}

var numericField = map[string]any{
	"type": []string{"string", "number", "null"},
}

// documentSchema describes an export: an array of typed sections, where a
// section's data (when present) is an array of result rows.
var documentSchema = map[string]any{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type":    "array",
	"items": map[string]any{
		"type":     "object",
		"required": []string{"type"},
		"properties": map[string]any{
			"type": map[string]any{"type": "string"},
			"data": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":         map[string]any{"type": "string"},
						"family":       map[string]any{"type": "string"},
						"status":       map[string]any{"type": "string"},
						"time":         numericField,
						"nb_variables": numericField,
					},
				},
			},
		},
	},
}

// Validate checks raw JSON against the export schema. It returns nil when
// the document is valid and a *ValidationError when it is not.
func Validate(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(documentSchema)
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &ValidationError{Problems: problems}
}
