// Package schemas compiles personality JSON Schemas and validates decoded records against them.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ResolveSchemaPath finds a schema file. An absolute path must exist as given. A
// relative path is tried against the working directory first and then against
// each base directory in order, so a collection can ship its own schemas/ folder.
// The result is absolute.
func ResolveSchemaPath(path string, bases ...string) (string, error) {
	if path == "" {
		return "", &SchemaLoadError{Path: path, Message: "no schema path given"}
	}

	candidates := []string{path}
	if !filepath.IsAbs(path) {
		for _, base := range bases {
			if base != "" {
				candidates = append(candidates, filepath.Join(base, path))
			}
		}
	}

	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && !info.IsDir() {
			return abs, nil
		}
	}
	return "", &SchemaLoadError{Path: path, Message: "schema file not found"}
}

// Schema is a compiled schema that can validate many documents.
type Schema struct {
	source string
	schema *gojsonschema.Schema
}

// Source names where the schema came from: a file path, or "(embedded)".
func (s *Schema) Source() string {
	return s.source
}

// Compile parses schema content once for repeated use.
func Compile(schemaContent string) (*Schema, error) {
	return compile(gojsonschema.NewStringLoader(schemaContent), "(embedded)")
}

// Load resolves a schema file with ResolveSchemaPath and compiles it. Relative
// $ref entries inside the file resolve against its directory.
func Load(path string, bases ...string) (*Schema, error) {
	abs, err := ResolveSchemaPath(path, bases...)
	if err != nil {
		return nil, err
	}
	return compile(gojsonschema.NewReferenceLoader("file://"+filepath.ToSlash(abs)), abs)
}

func compile(loader gojsonschema.JSONLoader, source string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    source,
			Message: "schema compilation failed",
			Cause:   err,
		}
	}
	return &Schema{source: source, schema: s}, nil
}

// Validate checks a decoded document against the compiled schema. A nil error
// means the document is valid; a failing document yields a *ValidationError.
func (s *Schema) Validate(doc any) error {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	if result.Valid() {
		return nil
	}

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
	return validationErr
}
