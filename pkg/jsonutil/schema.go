package jsonutil

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a single validation error with context
type ValidationError struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// ValidationResult contains the result of a schema validation
type ValidationResult struct {
	Valid   bool              `json:"valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
	Details string            `json:"details,omitempty"`
}

// Schema is a compiled JSON schema ready for repeated validation
type Schema struct {
	compiled *gojsonschema.Schema
}

// CompileSchema compiles a JSON schema document for later validation
func CompileSchema(schemaJSON []byte) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Schema{compiled: compiled}, nil
}

// Validate validates a JSON document against the compiled schema
func (s *Schema) Validate(data []byte) (*ValidationResult, error) {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	vr := &ValidationResult{
		Valid:  result.Valid(),
		Errors: make([]ValidationError, 0),
	}
	if !result.Valid() {
		for _, desc := range result.Errors() {
			vr.Errors = append(vr.Errors, ValidationError{
				Field:       desc.Field(),
				Type:        desc.Type(),
				Description: desc.Description(),
				Message:     fmt.Sprintf("%s: %s", desc.Field(), desc.Description()),
			})
		}
		vr.Details = fmt.Sprintf("validation failed with %d error(s)", len(vr.Errors))
	}
	return vr, nil
}
