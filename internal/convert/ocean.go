package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/zeekay/persona/internal/types"
)

// DefaultOcean is assigned when a legacy record carries no trait scores.
var DefaultOcean = types.Ocean{
	Openness:          70,
	Conscientiousness: 70,
	Extraversion:      50,
	Agreeableness:     60,
	Neuroticism:       40,
}

// NormalizeScore maps a score above 100 onto the 0-100 scale by dividing by ten and
// rounding half up. Scores at or below 100 are returned unchanged, negatives included.
// This only corrects data authored on a 0-1000 scale; values above 1004 or below 0
// stay out of range and are left for the range rule.
func NormalizeScore(v float64) float64 {
	if v > 100 {
		return math.Floor(v/10 + 0.5)
	}
	return v
}

// NormalizeOcean builds trait scores from a raw score mapping. Numeric strings are
// accepted; a trait that is missing or not numeric takes its DefaultOcean value.
func NormalizeOcean(raw map[string]any) types.Ocean {
	ocean := DefaultOcean
	defaults := DefaultOcean.Values()
	for i, trait := range types.OceanTraits {
		v, ok := toNumber(raw[trait])
		if !ok {
			v = defaults[i]
		}
		ocean.Set(trait, NormalizeScore(v))
	}
	return ocean
}

// oceanSource picks the mapping trait scores are read from: an explicit ocean object,
// or a legacy personality object that carries openness directly.
func oceanSource(rec types.LegacyRecord) (map[string]any, bool) {
	if m, ok := rec["ocean"].(map[string]any); ok {
		return m, true
	}
	if m, ok := rec["personality"].(map[string]any); ok && types.Truthy(m["openness"]) {
		return m, true
	}
	return nil, false
}

func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
