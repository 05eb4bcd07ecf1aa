package validation

import (
	"fmt"
	"sort"

	"github.com/zeekay/persona/internal/types"
)

// knownFields are the top-level keys a canonical record may carry.
var knownFields = map[string]bool{
	"$schema":     true,
	"id":          true,
	"name":        true,
	"fullName":    true,
	"category":    true,
	"subcategory": true,
	"tags":        true,
	"metadata":    true,
	"ocean":       true,
	"personality": true,
	"technical":   true,
	"quotes":      true,
	"behavioral":  true,
}

func checkRequiredFields(r record, opts Options) []string {
	required := []string{"id", "name", "category", "ocean"}
	if opts.RequirePersonality {
		required = append(required, "personality")
	}

	var msgs []string
	for _, field := range required {
		if !types.Truthy(r.doc[field]) {
			msgs = append(msgs, fmt.Sprintf("Missing required field: %s", field))
		}
	}
	return msgs
}

func checkIDFormat(r record, _ Options) []string {
	raw := r.doc["id"]
	if !types.Truthy(raw) {
		return []string{"Missing ID"}
	}
	id, ok := raw.(string)
	if !ok || !types.ValidID(id) {
		return []string{fmt.Sprintf("Invalid ID format: %v (must be lowercase alphanumeric with - or _)", raw)}
	}
	return nil
}

// checkFilenameMatch only applies to records read from a file that declare an id.
func checkFilenameMatch(r record, _ Options) []string {
	id, ok := r.doc.String("id")
	if !ok || id == "" || r.filename == "" {
		return nil
	}
	expected := id + ".json"
	if r.filename != expected {
		return []string{fmt.Sprintf("Filename mismatch: expected %s, got %s", expected, r.filename)}
	}
	return nil
}

func checkCategoryKnown(r record, _ Options) []string {
	raw := r.doc["category"]
	if !types.Truthy(raw) {
		return nil
	}
	if category, ok := raw.(string); ok && types.IsKnownCategory(category) {
		return nil
	}
	return []string{fmt.Sprintf("Unknown category: %v", raw)}
}

func checkPersonalityFields(r record, _ Options) []string {
	raw := r.doc["personality"]
	if !types.Truthy(raw) {
		return nil
	}
	info, _ := raw.(map[string]any)

	var msgs []string
	if !types.Truthy(info["summary"]) {
		msgs = append(msgs, "Missing personality.summary")
	}
	if !types.Truthy(info["philosophy"]) {
		msgs = append(msgs, "Missing personality.philosophy")
	}
	return msgs
}

func checkTagsPresent(r record, _ Options) []string {
	if isEmptyList(r.doc["tags"]) {
		return []string{"No tags defined"}
	}
	return nil
}

func checkQuotesPresent(r record, _ Options) []string {
	if isEmptyList(r.doc["quotes"]) {
		return []string{"No quotes defined"}
	}
	return nil
}

func checkTechnicalInfo(r record, _ Options) []string {
	category, _ := r.doc.String("category")
	if (category == "programmer" || category == "tech_leader") && !types.Truthy(r.doc["technical"]) {
		return []string{"Programmer/tech_leader without technical info"}
	}
	return nil
}

func checkUnknownFields(r record, _ Options) []string {
	var unknown []string
	for key := range r.doc {
		if !knownFields[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	msgs := make([]string, 0, len(unknown))
	for _, key := range unknown {
		msgs = append(msgs, fmt.Sprintf("Unknown field: %s", key))
	}
	return msgs
}

// isEmptyList treats a missing, falsy or zero-length sequence as empty.
func isEmptyList(v any) bool {
	if !types.Truthy(v) {
		return true
	}
	if list, ok := v.([]any); ok {
		return len(list) == 0
	}
	return false
}
