package convert

import (
	"strconv"
	"strings"

	"github.com/zeekay/persona/internal/types"
)

// Fallback chains for canonical fields. Each entry lists source paths in precedence
// order; the first truthy value wins. Nested canonical paths come last so that an
// already canonical record converts to itself.
var (
	idSources          = []string{"id"}
	nameSources        = []string{"name", "display_name"}
	categorySources    = []string{"category"}
	fullNameSources    = []string{"fullName", "programmer"}
	subcategorySources = []string{"subcategory"}
	tagSources         = []string{"tags"}
	quoteSources       = []string{"quote"}

	bornSources         = []string{"born", "lived", "metadata.born"}
	diedSources         = []string{"died", "metadata.died"}
	nationalitySources  = []string{"nationality", "metadata.nationality"}
	companySources      = []string{"company", "metadata.company"}
	achievementsSources = []string{"achievements", "metadata.achievements"}
	activeSources       = []string{"active", "metadata.active"}

	summarySources       = []string{"description", "summary", "personality.summary"}
	philosophySources    = []string{"philosophy", "quote", "personality.philosophy"}
	approachSources      = []string{"approach", "personality.approach"}
	communicationSources = []string{"communication", "style.communication", "personality.communication"}
	valuesSources        = []string{"values", "principles", "personality.values"}

	languagesSources = []string{"languages", "primary_tech", "technical.languages"}
	domainsSources   = []string{"domains", "tools.domains", "technical.domains"}
	essentialSources = []string{"tools.essential", "technical.tools.essential"}
	preferredSources = []string{"style.tools", "tools.preferred", "technical.tools.preferred"}
	createdSources   = []string{"tools.created", "technical.tools.created"}
	quotesSources    = []string{"quotes"}

	codeStyleSources     = []string{"behavioral.codeStyle", "style.code"}
	reviewStyleSources   = []string{"behavioral.reviewStyle", "contribution_style.review"}
	workStyleSources     = []string{"behavioral.workStyle", "style.approach"}
	collaborationSources = []string{"behavioral.collaboration"}
)

// first returns the first truthy value found along the chain.
func first(rec types.LegacyRecord, chain []string) (any, bool) {
	for _, path := range chain {
		if v, ok := rec.Lookup(path); ok && types.Truthy(v) {
			return v, true
		}
	}
	return nil, false
}

// firstString resolves a chain to a string. Values that cannot be rendered as text
// are skipped in favour of the next source.
func firstString(rec types.LegacyRecord, chain []string) string {
	for _, path := range chain {
		v, ok := rec.Lookup(path)
		if !ok || !types.Truthy(v) {
			continue
		}
		if s, ok := asString(v); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstStrings resolves a chain to a list of strings. A single string becomes a one-element list.
func firstStrings(rec types.LegacyRecord, chain []string) []string {
	for _, path := range chain {
		v, ok := rec.Lookup(path)
		if !ok || !types.Truthy(v) {
			continue
		}
		if list := asStrings(v); len(list) > 0 {
			return list
		}
	}
	return nil
}

// firstBool resolves a chain to a boolean, returning nil when no source holds one.
// Unlike the other chains, false is a present value here.
func firstBool(rec types.LegacyRecord, chain []string) *bool {
	for _, path := range chain {
		if v, ok := rec.Lookup(path); ok {
			if b, ok := v.(bool); ok {
				return &b
			}
		}
	}
	return nil
}

func asString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case []any:
		parts := asStrings(x)
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	default:
		return "", false
	}
}

func asStrings(v any) []string {
	switch x := v.(type) {
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if _, nested := item.([]any); nested {
				continue
			}
			if s, ok := asString(item); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return x
	default:
		if s, ok := asString(v); ok && s != "" {
			return []string{s}
		}
		return nil
	}
}
