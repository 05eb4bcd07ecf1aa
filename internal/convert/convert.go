package convert

import (
	"fmt"

	"github.com/zeekay/persona/internal/types"
)

// technicalCategories always receive a technical block.
var technicalCategories = map[string]bool{
	"programmer":  true,
	"tech_leader": true,
}

// Convert maps a legacy record onto the canonical schema. Missing optional data is
// filled with defaults; the only failure is a record without a usable name or id.
// The input is never modified.
func Convert(rec types.LegacyRecord) (*types.Personality, error) {
	name := firstString(rec, nameSources)
	if name == "" {
		return nil, &ConversionError{Message: "record has no name or display_name"}
	}

	id := firstString(rec, idSources)
	if id == "" {
		id = GenerateID(name)
	}
	if id == "" {
		return nil, &ConversionError{Message: fmt.Sprintf("cannot derive an id from name %q", name)}
	}

	category := firstString(rec, categorySources)
	if category == "" {
		category = types.DefaultCategory
	}

	p := &types.Personality{
		ID:          id,
		Name:        name,
		FullName:    firstString(rec, fullNameSources),
		Category:    category,
		Subcategory: firstString(rec, subcategorySources),
		Tags:        buildTags(rec, category),
		Metadata:    buildMetadata(rec),
		Ocean:       DefaultOcean,
		Personality: buildPersonalityInfo(rec, category),
		Technical:   buildTechnical(rec, category),
		Quotes:      buildQuotes(rec),
		Behavioral:  buildBehavioral(rec),
	}

	if raw, ok := oceanSource(rec); ok {
		p.Ocean = NormalizeOcean(raw)
	}

	return p, nil
}

func buildMetadata(rec types.LegacyRecord) *types.Metadata {
	m := &types.Metadata{
		Born:         firstString(rec, bornSources),
		Died:         firstString(rec, diedSources),
		Nationality:  firstString(rec, nationalitySources),
		Company:      firstString(rec, companySources),
		Achievements: firstStrings(rec, achievementsSources),
		Active:       firstBool(rec, activeSources),
	}
	if m.IsEmpty() {
		return nil
	}
	return m
}

func buildPersonalityInfo(rec types.LegacyRecord, category string) types.PersonalityInfo {
	info := types.PersonalityInfo{
		Summary:       firstString(rec, summarySources),
		Philosophy:    firstString(rec, philosophySources),
		Approach:      firstString(rec, approachSources),
		Communication: firstString(rec, communicationSources),
		Values:        firstStrings(rec, valuesSources),
	}
	if info.Summary == "" {
		info.Summary = category + " personality"
	}
	if info.Philosophy == "" {
		info.Philosophy = "No philosophy recorded"
	}
	return info
}

func buildTechnical(rec types.LegacyRecord, category string) *types.Technical {
	_, hasPrimaryTech := first(rec, []string{"primary_tech"})
	_, hasTechnical := rec["technical"].(map[string]any)
	if !technicalCategories[category] && !hasPrimaryTech && !hasTechnical {
		return nil
	}

	t := &types.Technical{
		Languages: firstStrings(rec, languagesSources),
		Domains:   firstStrings(rec, domainsSources),
	}

	_, hasTools := rec["tools"].(map[string]any)
	canonicalTools, _ := rec.Lookup("technical.tools")
	_, hasCanonicalTools := canonicalTools.(map[string]any)
	if hasTools || hasCanonicalTools {
		tools := &types.Tools{
			Essential: firstStrings(rec, essentialSources),
			Preferred: firstStrings(rec, preferredSources),
			Created:   firstStrings(rec, createdSources),
		}
		if !tools.IsEmpty() {
			t.Tools = tools
		}
	}

	if t.IsEmpty() {
		return nil
	}
	return t
}

func buildQuotes(rec types.LegacyRecord) []string {
	if quotes := firstStrings(rec, quotesSources); len(quotes) > 0 {
		return quotes
	}
	if quote := firstString(rec, quoteSources); quote != "" {
		return []string{quote}
	}
	return nil
}

func buildBehavioral(rec types.LegacyRecord) *types.Behavioral {
	b := &types.Behavioral{
		CodeStyle:     firstString(rec, codeStyleSources),
		ReviewStyle:   firstString(rec, reviewStyleSources),
		WorkStyle:     firstString(rec, workStyleSources),
		Collaboration: firstString(rec, collaborationSources),
	}
	if b.IsEmpty() {
		return nil
	}
	return b
}
