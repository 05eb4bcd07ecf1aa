// Package types provides type definitions for personality records used throughout the persona pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// SchemaRef is the $schema reference written into canonical record files.
const SchemaRef = "../schemas/personality.schema.json"

var idPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ValidID reports whether id is lowercase alphanumeric with - or _. Only such ids
// may name a record file.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Personality is the canonical personality record.
type Personality struct {
	Schema      string          `json:"$schema,omitempty"`
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	FullName    string          `json:"fullName,omitempty"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Metadata    *Metadata       `json:"metadata,omitempty"`
	Ocean       Ocean           `json:"ocean"`
	Personality PersonalityInfo `json:"personality"`
	Technical   *Technical      `json:"technical,omitempty"`
	Quotes      []string        `json:"quotes,omitempty"`
	Behavioral  *Behavioral     `json:"behavioral,omitempty"`
}

// Metadata holds biographical facts about the person behind a record.
type Metadata struct {
	Born         string   `json:"born,omitempty"`
	Died         string   `json:"died,omitempty"`
	Nationality  string   `json:"nationality,omitempty"`
	Company      string   `json:"company,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

// IsEmpty reports whether no metadata field is set.
func (m *Metadata) IsEmpty() bool {
	return m == nil || (m.Born == "" && m.Died == "" && m.Nationality == "" &&
		m.Company == "" && len(m.Achievements) == 0 && m.Active == nil)
}

// Ocean holds the five Big Five trait scores on a 0-100 scale.
type Ocean struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// OceanTraits lists the trait keys in canonical order.
var OceanTraits = []string{"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism"}

// Values returns the trait scores in OceanTraits order.
func (o Ocean) Values() []float64 {
	return []float64{o.Openness, o.Conscientiousness, o.Extraversion, o.Agreeableness, o.Neuroticism}
}

// Set assigns a trait by key. Unknown keys are ignored.
func (o *Ocean) Set(trait string, v float64) {
	switch trait {
	case "openness":
		o.Openness = v
	case "conscientiousness":
		o.Conscientiousness = v
	case "extraversion":
		o.Extraversion = v
	case "agreeableness":
		o.Agreeableness = v
	case "neuroticism":
		o.Neuroticism = v
	}
}

// PersonalityInfo is the narrative block of a record.
type PersonalityInfo struct {
	Summary       string   `json:"summary"`
	Philosophy    string   `json:"philosophy"`
	Approach      string   `json:"approach,omitempty"`
	Communication string   `json:"communication,omitempty"`
	Values        []string `json:"values,omitempty"`
}

// Technical describes the technical profile of programmers and tech leaders.
type Technical struct {
	Languages []string `json:"languages,omitempty"`
	Domains   []string `json:"domains,omitempty"`
	Tools     *Tools   `json:"tools,omitempty"`
}

// IsEmpty reports whether the technical block carries no data.
func (t *Technical) IsEmpty() bool {
	return t == nil || (len(t.Languages) == 0 && len(t.Domains) == 0 && t.Tools.IsEmpty())
}

// Tools groups the tools a person relies on, prefers, or created.
type Tools struct {
	Essential []string `json:"essential,omitempty"`
	Preferred []string `json:"preferred,omitempty"`
	Created   []string `json:"created,omitempty"`
}

// IsEmpty reports whether no tool list is populated.
func (t *Tools) IsEmpty() bool {
	return t == nil || (len(t.Essential) == 0 && len(t.Preferred) == 0 && len(t.Created) == 0)
}

// Behavioral describes working style.
type Behavioral struct {
	CodeStyle     string `json:"codeStyle,omitempty"`
	ReviewStyle   string `json:"reviewStyle,omitempty"`
	WorkStyle     string `json:"workStyle,omitempty"`
	Collaboration string `json:"collaboration,omitempty"`
}

// IsEmpty reports whether no behavioral field is set.
func (b *Behavioral) IsEmpty() bool {
	return b == nil || (b.CodeStyle == "" && b.ReviewStyle == "" && b.WorkStyle == "" && b.Collaboration == "")
}

// Document returns the record in raw document form, as it would be read back from disk.
func (p *Personality) Document() (Document, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal personality %s: %w", p.ID, err)
	}
	return DecodeDocument(data)
}
