package convert

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/zeekay/persona/internal/types"
)

var roleSeparators = regexp.MustCompile(`[&,\s]+`)

// minRoleTokenLength is the shortest role word kept as a tag.
const minRoleTokenLength = 3

// buildTags returns the explicit tags when the record has any tags value, otherwise
// tags synthesized from category, primary technologies and role words.
func buildTags(rec types.LegacyRecord, category string) []string {
	if v, ok := first(rec, tagSources); ok {
		return dedupe(asStrings(v))
	}

	tags := []string{category}
	if v, ok := first(rec, []string{"primary_tech"}); ok {
		for _, tech := range asStrings(v) {
			tags = append(tags, strings.ToLower(tech))
		}
	}
	if role, ok := rec["role"].(string); ok {
		for _, token := range roleSeparators.Split(strings.ToLower(role), -1) {
			if utf8.RuneCountInString(token) >= minRoleTokenLength {
				tags = append(tags, token)
			}
		}
	}
	return dedupe(tags)
}

// dedupe removes repeated and empty entries, keeping first-occurrence order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
