package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeekay/persona/internal/types"
)

// validDoc returns a record that passes every rule without warnings.
func validDoc(id string) types.Document {
	return types.Document{
		"$schema":  types.SchemaRef,
		"id":       id,
		"name":     "Albert Einstein",
		"category": "scientist",
		"tags":     []any{"scientist", "physics"},
		"ocean": map[string]any{
			"openness":          float64(80),
			"conscientiousness": float64(60),
			"extraversion":      float64(45),
			"agreeableness":     float64(70),
			"neuroticism":       float64(30),
		},
		"personality": map[string]any{
			"summary":    "Theoretical physicist",
			"philosophy": "Imagination is more important than knowledge",
		},
		"quotes": []any{"God does not play dice"},
	}
}

func withOcean(doc types.Document, o, c, e, a, n float64) types.Document {
	doc["ocean"] = map[string]any{
		"openness":          o,
		"conscientiousness": c,
		"extraversion":      e,
		"agreeableness":     a,
		"neuroticism":       n,
	}
	return doc
}

func decode(t *testing.T, raw string) types.Document {
	t.Helper()
	var doc types.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}
