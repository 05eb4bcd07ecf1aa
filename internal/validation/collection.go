package validation

import (
	"fmt"
	"sort"

	"github.com/zeekay/persona/internal/types"
)

// uncategorized groups records that carry no usable category.
const uncategorized = "(none)"

// Entry is one file of a collection, decoded or failed.
type Entry struct {
	Location types.Location
	Document types.Document
	// Err is set when the file could not be read or parsed.
	Err error
}

// ValidateEntry validates one collection entry. A read or parse failure becomes
// the entry's only error.
func (v *Validator) ValidateEntry(e Entry) types.FileResult {
	res := types.FileResult{Location: e.Location}
	if e.Err != nil {
		res.Errors = []string{fmt.Sprintf("Parse error: %v", e.Err)}
		res.Warnings = []string{}
		return res
	}

	result := v.ValidateRecord(e.Document, e.Location.File)
	res.ID, _ = e.Document.String("id")
	res.Name, _ = e.Document.String("name")
	res.Category, _ = e.Document.String("category")
	res.Errors = result.Errors
	res.Warnings = result.Warnings
	res.Valid = result.Valid()
	return res
}

// ValidateCollection runs the default rules over every entry and reports
// duplicates and per-category statistics.
func ValidateCollection(entries []Entry) *types.CollectionReport {
	return defaultValidator.ValidateCollection(entries)
}

// ValidateCollection validates entries sequentially.
func (v *Validator) ValidateCollection(entries []Entry) *types.CollectionReport {
	results := make([]types.FileResult, len(entries))
	for i, e := range entries {
		results[i] = v.ValidateEntry(e)
	}
	return Assemble(entries, results)
}

// Assemble builds a collection report from entries and their results, which must
// be index aligned.
func Assemble(entries []Entry, results []types.FileResult) *types.CollectionReport {
	duplicates := DuplicateIDs(entries)
	return &types.CollectionReport{
		Summary:    Summarize(results, duplicates),
		ByCategory: CategoryStatistics(results),
		Duplicates: duplicates,
		Results:    results,
	}
}

// DuplicateIDs returns every id declared by more than one entry, sorted by id,
// with locations in input order. Entries without a string id are ignored.
func DuplicateIDs(entries []Entry) []types.Duplicate {
	locations := make(map[string][]types.Location)
	for _, e := range entries {
		if e.Err != nil {
			continue
		}
		id, ok := e.Document.String("id")
		if !ok || id == "" {
			continue
		}
		locations[id] = append(locations[id], e.Location)
	}

	duplicates := []types.Duplicate{}
	for id, locs := range locations {
		if len(locs) > 1 {
			duplicates = append(duplicates, types.Duplicate{ID: id, Locations: locs})
		}
	}
	sort.Slice(duplicates, func(i, j int) bool {
		return duplicates[i].ID < duplicates[j].ID
	})
	return duplicates
}

// CategoryStatistics counts total, valid and erroring records per category.
func CategoryStatistics(results []types.FileResult) map[string]types.CategoryStats {
	stats := make(map[string]types.CategoryStats)
	for _, res := range results {
		category := res.Category
		if category == "" {
			category = uncategorized
		}
		s := stats[category]
		s.Total++
		if res.Valid {
			s.Valid++
		} else {
			s.Errors++
		}
		stats[category] = s
	}
	return stats
}

// Summarize computes the headline counts of a run.
func Summarize(results []types.FileResult, duplicates []types.Duplicate) types.Summary {
	summary := types.Summary{
		Total:      len(results),
		Duplicates: len(duplicates),
	}
	for _, res := range results {
		if res.Valid {
			summary.Valid++
		}
		if len(res.Errors) > 0 {
			summary.Errors++
		}
		if len(res.Warnings) > 0 {
			summary.Warnings++
		}
	}
	return summary
}
