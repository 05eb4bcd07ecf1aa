package validation

import (
	"errors"
	"fmt"
	"slices"

	schemafiles "github.com/zeekay/persona/schemas"

	"github.com/zeekay/persona/internal/schemas"
	"github.com/zeekay/persona/internal/types"
)

// Options tunes which rules run.
type Options struct {
	// RequirePersonality adds personality to the required fields.
	RequirePersonality bool
	// SchemaCheck additionally validates records against the embedded JSON Schema.
	SchemaCheck bool
	// SchemaPath replaces the embedded schema with a schema file and implies
	// SchemaCheck. Relative paths resolve as in schemas.ResolveSchemaPath.
	SchemaPath string
}

// DefaultOptions returns the strict rule set.
func DefaultOptions() Options {
	return Options{RequirePersonality: true}
}

// Validator applies a fixed set of rules to records.
type Validator struct {
	opts  Options
	rules []Rule
}

var defaultValidator = &Validator{opts: DefaultOptions(), rules: RuleRegistry}

// New creates a Validator for the given options.
func New(opts Options) (*Validator, error) {
	v := &Validator{opts: opts, rules: RuleRegistry}
	if !opts.SchemaCheck && opts.SchemaPath == "" {
		return v, nil
	}

	var (
		schema *schemas.Schema
		err    error
	)
	if opts.SchemaPath != "" {
		schema, err = schemas.Load(opts.SchemaPath)
	} else {
		schema, err = schemas.Compile(schemafiles.Personality)
	}
	if err != nil {
		return nil, &Error{Message: "failed to compile personality schema", Cause: err}
	}
	v.opts.SchemaCheck = true
	v.rules = append(slices.Clone(RuleRegistry), schemaRule(schema))
	return v, nil
}

// Options returns the options the validator was built with.
func (v *Validator) Options() Options {
	return v.opts
}

// ValidateRecord runs the default rule set against one record.
func ValidateRecord(doc types.Document, filename string) types.ValidationResult {
	return defaultValidator.ValidateRecord(doc, filename)
}

// ValidateRecord runs every rule against one record. An empty filename skips the
// filename check, which is useful for records that have not been written yet.
func (v *Validator) ValidateRecord(doc types.Document, filename string) types.ValidationResult {
	result := types.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}
	r := record{doc: doc, filename: filename}

	for _, rule := range v.rules {
		msgs := rule.Check(r, v.opts)
		if len(msgs) == 0 {
			continue
		}
		if rule.Severity == SeverityError {
			result.Errors = append(result.Errors, msgs...)
		} else {
			result.Warnings = append(result.Warnings, msgs...)
		}
	}

	return result
}

// ValidatePersonality validates a typed record.
func (v *Validator) ValidatePersonality(p *types.Personality, filename string) (types.ValidationResult, error) {
	doc, err := p.Document()
	if err != nil {
		return types.ValidationResult{}, &Error{Message: "failed to encode record", Cause: err}
	}
	return v.ValidateRecord(doc, filename), nil
}

func schemaRule(schema *schemas.Schema) Rule {
	return Rule{
		Name:        "json_schema",
		Severity:    SeverityError,
		Description: "record must satisfy the personality JSON Schema",
		Check: func(r record, _ Options) []string {
			err := schema.Validate(map[string]any(r.doc))
			if err == nil {
				return nil
			}
			var validationErr *schemas.ValidationError
			if !errors.As(err, &validationErr) {
				return []string{fmt.Sprintf("Schema: %v", err)}
			}
			msgs := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				msgs = append(msgs, fmt.Sprintf("Schema: %s: %s", fe.Field, fe.Message))
			}
			return msgs
		},
	}
}
