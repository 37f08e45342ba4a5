// Package schemas validates pipeline payloads against embedded JSON Schemas.
// Validation here is advisory: a schema miss is reported so callers can log
// it, but the pipeline is free to continue with the decoded value.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchemaJSON string

var (
	profileSchemaOnce sync.Once
	profileSchema     *gojsonschema.Schema
	profileSchemaErr  error
)

// FieldError is a single validation error at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema validation errors with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s;", i+1, err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateProfileJSON checks a candidate-profile JSON document against the
// embedded schema. Returns nil when the document conforms, a
// *ValidationError listing the mismatched fields otherwise.
func ValidateProfileJSON(document []byte) error {
	profileSchemaOnce.Do(func() {
		profileSchema, profileSchemaErr = gojsonschema.NewSchema(
			gojsonschema.NewStringLoader(profileSchemaJSON))
	})
	if profileSchemaErr != nil {
		return fmt.Errorf("failed to compile profile schema: %w", profileSchemaErr)
	}

	result, err := profileSchema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to validate profile document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, resErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resErr.Field(),
			Message: resErr.Description(),
		})
	}
	return ve
}
