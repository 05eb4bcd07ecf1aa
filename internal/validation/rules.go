// Package validation checks personality records individually and as a collection.
package validation

import (
	"github.com/zeekay/persona/internal/types"
)

// Severity classifies the findings of a rule.
type Severity string

const (
	// SeverityError findings make a record invalid.
	SeverityError Severity = "error"
	// SeverityWarning findings are reported but do not affect validity.
	SeverityWarning Severity = "warning"
)

// record is what every check sees: the raw document and the file it was read from.
type record struct {
	doc      types.Document
	filename string
}

// Check inspects one record and returns zero or more messages.
type Check func(r record, opts Options) []string

// Rule is a named, independent check with a fixed severity.
type Rule struct {
	Name        string
	Severity    Severity
	Description string
	Check       Check
}

// RuleRegistry lists every record rule in evaluation order. Rules do not depend on
// each other, so messages come out in this order regardless of which rules fire.
var RuleRegistry = []Rule{
	{
		Name:        "required_fields",
		Severity:    SeverityError,
		Description: "id, name, category, ocean and personality must be present",
		Check:       checkRequiredFields,
	},
	{
		Name:        "id_format",
		Severity:    SeverityError,
		Description: "id must be lowercase alphanumeric with - or _",
		Check:       checkIDFormat,
	},
	{
		Name:        "filename_match",
		Severity:    SeverityError,
		Description: "file must be named {id}.json",
		Check:       checkFilenameMatch,
	},
	{
		Name:        "ocean_scores",
		Severity:    SeverityError,
		Description: "all five OCEAN traits must be numbers between 0 and 100",
		Check:       checkOceanScores,
	},
	{
		Name:        "ocean_degenerate",
		Severity:    SeverityError,
		Description: "OCEAN scores must not all be 0 or all be 100",
		Check:       checkOceanDegenerate,
	},
	{
		Name:        "category_known",
		Severity:    SeverityWarning,
		Description: "category should be one of the known categories",
		Check:       checkCategoryKnown,
	},
	{
		Name:        "personality_fields",
		Severity:    SeverityWarning,
		Description: "personality should have a summary and a philosophy",
		Check:       checkPersonalityFields,
	},
	{
		Name:        "tags_present",
		Severity:    SeverityWarning,
		Description: "record should define tags",
		Check:       checkTagsPresent,
	},
	{
		Name:        "quotes_present",
		Severity:    SeverityWarning,
		Description: "record should define quotes",
		Check:       checkQuotesPresent,
	},
	{
		Name:        "technical_info",
		Severity:    SeverityWarning,
		Description: "programmers and tech leaders should have technical info",
		Check:       checkTechnicalInfo,
	},
	{
		Name:        "unknown_fields",
		Severity:    SeverityWarning,
		Description: "top-level keys should be canonical fields",
		Check:       checkUnknownFields,
	},
	{
		Name:        "ocean_low_variance",
		Severity:    SeverityWarning,
		Description: "OCEAN scores should not be nearly identical",
		Check:       checkOceanVariance,
	},
	{
		Name:        "ocean_contradiction",
		Severity:    SeverityWarning,
		Description: "OCEAN scores should not combine unusual extremes",
		Check:       checkOceanContradictions,
	},
}

// RuleNames returns the names of the registered rules in order.
func RuleNames() []string {
	names := make([]string, len(RuleRegistry))
	for i, rule := range RuleRegistry {
		names[i] = rule.Name
	}
	return names
}
