package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeekay/persona/internal/types"
)

func legacy(t *testing.T, raw string) types.LegacyRecord {
	t.Helper()
	var rec types.LegacyRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return rec
}

func TestConvert_Minimal(t *testing.T) {
	p, err := Convert(types.LegacyRecord{"name": "Marcus Aurelius"})
	require.NoError(t, err)

	assert.Equal(t, "marcus_aurelius", p.ID)
	assert.Equal(t, "Marcus Aurelius", p.Name)
	assert.Equal(t, "special", p.Category)
	assert.Equal(t, []string{"special"}, p.Tags)
	assert.Equal(t, DefaultOcean, p.Ocean)
	assert.Equal(t, "special personality", p.Personality.Summary)
	assert.Equal(t, "No philosophy recorded", p.Personality.Philosophy)
	assert.Nil(t, p.Metadata)
	assert.Nil(t, p.Technical)
	assert.Nil(t, p.Behavioral)
	assert.Nil(t, p.Quotes)
	assert.Empty(t, p.Schema)
}

func TestConvert_LegacyProgrammer(t *testing.T) {
	rec := legacy(t, `{
		"display_name": "Linus",
		"programmer": "Linus Torvalds",
		"category": "programmer",
		"role": "Kernel Creator & Maintainer, Git author",
		"primary_tech": ["C", "Git"],
		"lived": "1969",
		"company": "Linux Foundation",
		"active": false,
		"personality": {"openness": 850, "conscientiousness": 90, "extraversion": 40, "agreeableness": 200, "neuroticism": 50},
		"description": "Pragmatic kernel hacker",
		"quote": "Talk is cheap. Show me the code.",
		"style": {"communication": "blunt", "code": "readable C", "approach": "incremental", "tools": ["vim"]},
		"communication": "direct",
		"principles": ["good taste"],
		"tools": {"essential": ["gcc"], "preferred": ["emacs"], "domains": ["kernels"]},
		"contribution_style": {"review": "harsh but fair"}
	}`)

	p, err := Convert(rec)
	require.NoError(t, err)

	assert.Equal(t, "linus", p.ID)
	assert.Equal(t, "Linus", p.Name)
	assert.Equal(t, "Linus Torvalds", p.FullName)
	assert.Equal(t, []string{"programmer", "c", "git", "kernel", "creator", "maintainer", "author"}, p.Tags)

	require.NotNil(t, p.Metadata)
	assert.Equal(t, "1969", p.Metadata.Born)
	assert.Equal(t, "Linux Foundation", p.Metadata.Company)
	require.NotNil(t, p.Metadata.Active)
	assert.False(t, *p.Metadata.Active)

	assert.Equal(t, types.Ocean{Openness: 85, Conscientiousness: 90, Extraversion: 40, Agreeableness: 20, Neuroticism: 50}, p.Ocean)

	assert.Equal(t, "Pragmatic kernel hacker", p.Personality.Summary)
	assert.Equal(t, "Talk is cheap. Show me the code.", p.Personality.Philosophy)
	assert.Equal(t, "direct", p.Personality.Communication)
	assert.Equal(t, []string{"good taste"}, p.Personality.Values)

	require.NotNil(t, p.Technical)
	assert.Equal(t, []string{"C", "Git"}, p.Technical.Languages)
	assert.Equal(t, []string{"kernels"}, p.Technical.Domains)
	require.NotNil(t, p.Technical.Tools)
	assert.Equal(t, []string{"gcc"}, p.Technical.Tools.Essential)
	assert.Equal(t, []string{"vim"}, p.Technical.Tools.Preferred, "style.tools overrides tools.preferred")

	assert.Equal(t, []string{"Talk is cheap. Show me the code."}, p.Quotes)

	require.NotNil(t, p.Behavioral)
	assert.Equal(t, "readable C", p.Behavioral.CodeStyle)
	assert.Equal(t, "harsh but fair", p.Behavioral.ReviewStyle)
	assert.Equal(t, "incremental", p.Behavioral.WorkStyle)
}

func TestConvert_FallbackPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		rec   types.LegacyRecord
		check func(t *testing.T, p *types.Personality)
	}{
		{
			name: "communication before style.communication",
			rec:  types.LegacyRecord{"name": "A", "communication": "plain", "style": map[string]any{"communication": "styled"}},
			check: func(t *testing.T, p *types.Personality) {
				assert.Equal(t, "plain", p.Personality.Communication)
			},
		},
		{
			name: "style.communication when communication absent",
			rec:  types.LegacyRecord{"name": "A", "style": map[string]any{"communication": "styled"}},
			check: func(t *testing.T, p *types.Personality) {
				assert.Equal(t, "styled", p.Personality.Communication)
			},
		},
		{
			name: "values before principles",
			rec:  types.LegacyRecord{"name": "A", "values": []any{"honesty"}, "principles": []any{"rigor"}},
			check: func(t *testing.T, p *types.Personality) {
				assert.Equal(t, []string{"honesty"}, p.Personality.Values)
			},
		},
		{
			name: "summary used when description absent",
			rec:  types.LegacyRecord{"name": "A", "summary": "short"},
			check: func(t *testing.T, p *types.Personality) {
				assert.Equal(t, "short", p.Personality.Summary)
			},
		},
		{
			name: "empty string falls through",
			rec:  types.LegacyRecord{"name": "A", "description": "", "summary": "fallback"},
			check: func(t *testing.T, p *types.Personality) {
				assert.Equal(t, "fallback", p.Personality.Summary)
			},
		},
		{
			name: "explicit id wins over slug",
			rec:  types.LegacyRecord{"id": "custom", "name": "Some Name"},
			check: func(t *testing.T, p *types.Personality) {
				assert.Equal(t, "custom", p.ID)
			},
		},
		{
			name: "explicit tags are deduplicated",
			rec:  types.LegacyRecord{"name": "A", "tags": []any{"x", "y", "x"}},
			check: func(t *testing.T, p *types.Personality) {
				assert.Equal(t, []string{"x", "y"}, p.Tags)
			},
		},
		{
			name: "explicit empty tags suppress synthesis",
			rec:  types.LegacyRecord{"name": "A", "tags": []any{}, "role": "Great Leader"},
			check: func(t *testing.T, p *types.Personality) {
				assert.Nil(t, p.Tags)
			},
		},
		{
			name: "numeric born year becomes text",
			rec:  types.LegacyRecord{"name": "A", "born": float64(1955)},
			check: func(t *testing.T, p *types.Personality) {
				require.NotNil(t, p.Metadata)
				assert.Equal(t, "1955", p.Metadata.Born)
			},
		},
		{
			name: "primary_tech triggers technical for any category",
			rec:  types.LegacyRecord{"name": "A", "category": "musician", "primary_tech": []any{"Ableton"}},
			check: func(t *testing.T, p *types.Personality) {
				require.NotNil(t, p.Technical)
				assert.Equal(t, []string{"Ableton"}, p.Technical.Languages)
			},
		},
		{
			name: "languages ignored outside technical categories",
			rec:  types.LegacyRecord{"name": "A", "category": "poet", "languages": []any{"Latin"}},
			check: func(t *testing.T, p *types.Personality) {
				assert.Nil(t, p.Technical)
			},
		},
		{
			name: "programmer with nothing technical omits the block",
			rec:  types.LegacyRecord{"name": "A", "category": "programmer"},
			check: func(t *testing.T, p *types.Personality) {
				assert.Nil(t, p.Technical)
			},
		},
		{
			name: "explicit ocean wins over personality scores",
			rec: types.LegacyRecord{
				"name":        "A",
				"ocean":       map[string]any{"openness": float64(10), "conscientiousness": float64(20), "extraversion": float64(30), "agreeableness": float64(40), "neuroticism": float64(50)},
				"personality": map[string]any{"openness": float64(99)},
			},
			check: func(t *testing.T, p *types.Personality) {
				assert.Equal(t, float64(10), p.Ocean.Openness)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Convert(tt.rec)
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestConvert_DoesNotMutateInput(t *testing.T) {
	rec := legacy(t, `{"name": "Ada", "ocean": {"openness": 900}, "tags": ["a", "a"]}`)
	before, err := json.Marshal(rec)
	require.NoError(t, err)

	_, err = Convert(rec)
	require.NoError(t, err)

	after, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestConvert_Unusable(t *testing.T) {
	_, err := Convert(types.LegacyRecord{"category": "poet"})
	require.Error(t, err)
	var convErr *ConversionError
	assert.True(t, errors.As(err, &convErr))
	assert.Contains(t, err.Error(), "no name")

	_, err = Convert(types.LegacyRecord{"name": "!!!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot derive an id")
}

func TestConvert_AlwaysProducesIdentity(t *testing.T) {
	for i := 0; i < 50; i++ {
		rec := types.LegacyRecord{"name": fmt.Sprintf("Person Number %d", i)}
		if i%3 == 0 {
			rec["personality"] = map[string]any{"openness": float64(i * 20), "neuroticism": float64(i)}
		}
		p, err := Convert(rec)
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		for _, v := range p.Ocean.Values() {
			assert.GreaterOrEqual(t, v, float64(0))
			assert.LessOrEqual(t, v, float64(100))
		}
	}
}

func TestConvert_CanonicalIsFixedPoint(t *testing.T) {
	active := true
	canonical := &types.Personality{
		ID:          "grace_hopper",
		Name:        "Grace Hopper",
		FullName:    "Grace Brewster Murray Hopper",
		Category:    "programmer",
		Subcategory: "language-creator",
		Tags:        []string{"programmer", "cobol", "navy"},
		Metadata: &types.Metadata{
			Born:         "1906",
			Died:         "1992",
			Nationality:  "American",
			Achievements: []string{"First compiler"},
			Active:       &active,
		},
		Ocean: types.Ocean{Openness: 92, Conscientiousness: 88, Extraversion: 70, Agreeableness: 55, Neuroticism: 25},
		Personality: types.PersonalityInfo{
			Summary:       "Pioneer of machine-independent languages",
			Philosophy:    "It's easier to ask forgiveness than permission",
			Approach:      "Pragmatic",
			Communication: "Storyteller",
			Values:        []string{"curiosity", "service"},
		},
		Technical: &types.Technical{
			Languages: []string{"COBOL", "FLOW-MATIC"},
			Domains:   []string{"compilers"},
			Tools:     &types.Tools{Created: []string{"A-0"}},
		},
		Quotes:     []string{"The most dangerous phrase is: we've always done it this way."},
		Behavioral: &types.Behavioral{CodeStyle: "readable", Collaboration: "mentor"},
	}

	doc, err := canonical.Document()
	require.NoError(t, err)

	got, err := Convert(types.LegacyRecord(doc))
	require.NoError(t, err)

	if diff := cmp.Diff(canonical, got); diff != "" {
		t.Errorf("Convert(canonical) mismatch (-want +got):\n%s", diff)
	}
}
