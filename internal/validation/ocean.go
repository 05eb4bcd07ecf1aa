package validation

import (
	"fmt"
	"strconv"

	"github.com/zeekay/persona/internal/types"
)

const (
	minScore = 0
	maxScore = 100

	// lowVarianceThreshold is the population variance below which scores look copied.
	lowVarianceThreshold = 25
)

func checkOceanScores(r record, _ Options) []string {
	raw := r.doc["ocean"]
	if !types.Truthy(raw) {
		return []string{"Missing OCEAN scores"}
	}
	// A non-object ocean has none of the traits.
	ocean, _ := raw.(map[string]any)

	var msgs []string
	for _, trait := range types.OceanTraits {
		v, ok := ocean[trait]
		if !ok {
			msgs = append(msgs, fmt.Sprintf("Missing OCEAN.%s", trait))
			continue
		}
		score, ok := v.(float64)
		if !ok {
			msgs = append(msgs, fmt.Sprintf("OCEAN.%s must be a number (got %s)", trait, types.TypeName(v)))
			continue
		}
		if score < minScore || score > maxScore {
			msgs = append(msgs, fmt.Sprintf("OCEAN.%s must be between 0-100 (got %s)", trait, formatScore(score)))
		}
	}
	return msgs
}

// checkOceanDegenerate flags scores that sum to exactly 0 or 500. Missing or
// non-numeric traits count as zero.
func checkOceanDegenerate(r record, _ Options) []string {
	ocean, ok := r.doc.Map("ocean")
	if !ok {
		return nil
	}

	var total float64
	for _, trait := range types.OceanTraits {
		if score, ok := ocean[trait].(float64); ok {
			total += score
		}
	}

	switch total {
	case 0:
		return []string{"All OCEAN scores are 0"}
	case maxScore * 5:
		return []string{"All OCEAN scores are 100"}
	}
	return nil
}

func checkOceanVariance(r record, _ Options) []string {
	scores, ok := numericScores(r.doc)
	if !ok {
		return nil
	}
	if variance(scores.Values()) < lowVarianceThreshold {
		return []string{"OCEAN scores too similar (low variance)"}
	}
	return nil
}

func checkOceanContradictions(r record, _ Options) []string {
	scores, ok := numericScores(r.doc)
	if !ok {
		return nil
	}

	var msgs []string
	if scores.Extraversion > 80 && scores.Agreeableness < 20 {
		msgs = append(msgs, "High extraversion with very low agreeableness is unusual")
	}
	if scores.Conscientiousness > 90 && scores.Openness < 10 {
		msgs = append(msgs, "Very high conscientiousness with very low openness is unusual")
	}
	return msgs
}

// numericScores returns the trait scores when all five are present and numeric.
func numericScores(doc types.Document) (types.Ocean, bool) {
	var scores types.Ocean
	ocean, ok := doc.Map("ocean")
	if !ok {
		return scores, false
	}
	for _, trait := range types.OceanTraits {
		v, ok := ocean[trait].(float64)
		if !ok {
			return scores, false
		}
		scores.Set(trait, v)
	}
	return scores, true
}

// variance returns the population variance.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return sq / float64(len(values))
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
