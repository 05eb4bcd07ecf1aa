package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonality_JSONFieldNames(t *testing.T) {
	active := false
	p := Personality{
		Schema:   SchemaRef,
		ID:       "ada_lovelace",
		Name:     "Ada Lovelace",
		FullName: "Augusta Ada King",
		Category: "mathematician",
		Tags:     []string{"mathematician"},
		Metadata: &Metadata{Born: "1815", Active: &active},
		Ocean:    Ocean{Openness: 95, Conscientiousness: 80, Extraversion: 40, Agreeableness: 60, Neuroticism: 55},
		Personality: PersonalityInfo{
			Summary:    "Poetical scientist",
			Philosophy: "Imagination is the discovering faculty",
		},
		Technical:  &Technical{Tools: &Tools{Created: []string{"first algorithm"}}},
		Behavioral: &Behavioral{CodeStyle: "annotated"},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, SchemaRef, raw["$schema"])
	assert.Equal(t, "Augusta Ada King", raw["fullName"])
	assert.NotContains(t, raw, "subcategory")
	assert.NotContains(t, raw, "quotes")

	metadata := raw["metadata"].(map[string]any)
	assert.Equal(t, false, metadata["active"])

	behavioral := raw["behavioral"].(map[string]any)
	assert.Equal(t, "annotated", behavioral["codeStyle"])

	ocean := raw["ocean"].(map[string]any)
	assert.Len(t, ocean, 5)
	assert.Equal(t, float64(95), ocean["openness"])
}

func TestPersonality_Document(t *testing.T) {
	p := &Personality{
		ID:       "linus_torvalds",
		Name:     "Linus Torvalds",
		Category: "programmer",
		Ocean:    Ocean{Openness: 80, Conscientiousness: 70, Extraversion: 40, Agreeableness: 30, Neuroticism: 50},
	}

	doc, err := p.Document()
	require.NoError(t, err)

	id, ok := doc.String("id")
	assert.True(t, ok)
	assert.Equal(t, "linus_torvalds", id)

	ocean, ok := doc.Map("ocean")
	require.True(t, ok)
	assert.Equal(t, float64(30), ocean["agreeableness"])
	assert.NotContains(t, doc, "technical")
}

func TestOcean_ValuesAndSet(t *testing.T) {
	var o Ocean
	for i, trait := range OceanTraits {
		o.Set(trait, float64(10*(i+1)))
	}
	o.Set("unknown", 99)

	assert.Equal(t, []float64{10, 20, 30, 40, 50}, o.Values())
}

func TestIsEmptyHelpers(t *testing.T) {
	var m *Metadata
	assert.True(t, m.IsEmpty())
	assert.True(t, (&Metadata{}).IsEmpty())
	assert.False(t, (&Metadata{Company: "Bell Labs"}).IsEmpty())

	var tech *Technical
	assert.True(t, tech.IsEmpty())
	assert.True(t, (&Technical{Tools: &Tools{}}).IsEmpty())
	assert.False(t, (&Technical{Languages: []string{"c"}}).IsEmpty())

	assert.True(t, (&Behavioral{}).IsEmpty())
	assert.False(t, (&Behavioral{WorkStyle: "async"}).IsEmpty())
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"ada_lovelace", true},
		{"jean-paul-sartre", true},
		{"r2d2", true},
		{"", false},
		{"Einstein", false},
		{"../../escaped", false},
		{"a/b", false},
		{"a b", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidID(tt.id))
		})
	}
}
