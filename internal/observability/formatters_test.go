package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeekay/persona/internal/build"
	"github.com/zeekay/persona/internal/types"
)

func sampleReport() *types.CollectionReport {
	return &types.CollectionReport{
		RunID:    "run-123",
		Duration: "12ms",
		Summary:  types.Summary{Total: 3, Valid: 2, Errors: 1, Warnings: 1, Duplicates: 1},
		ByCategory: map[string]types.CategoryStats{
			"scientist": {Total: 2, Valid: 1, Errors: 1},
			"artist":    {Total: 1, Valid: 1},
		},
		Duplicates: []types.Duplicate{
			{ID: "einstein", Locations: []types.Location{
				{Partition: "scientists", File: "einstein.json"},
				{Partition: "scientists", File: "einstein-2.json"},
			}},
		},
		Results: []types.FileResult{
			{Location: types.Location{Partition: "scientists", File: "einstein.json"}, Errors: []string{"Missing OCEAN.openness"}},
			{Location: types.Location{Partition: "scientists", File: "einstein-2.json"}, Warnings: []string{"No tags defined"}, Valid: true},
			{Location: types.Location{Partition: "artists", File: "monet.json"}, Valid: true},
		},
	}
}

func TestPrintValidationReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(sampleReport(), false)
	output := buf.String()

	assert.Contains(t, output, "VALIDATION SUMMARY")
	assert.Contains(t, output, "Total files:    3")
	assert.Contains(t, output, "run-123")
	assert.Contains(t, output, "BY CATEGORY")
	assert.Contains(t, output, "FILES WITH ERRORS (1)")
	assert.Contains(t, output, "scientists/einstein.json")
	assert.Contains(t, output, "Missing OCEAN.openness")
	assert.Contains(t, output, "DUPLICATE IDS (1)")
	assert.Contains(t, output, "scientists/einstein-2.json")
	assert.Contains(t, output, "Validation failed")
	assert.NotContains(t, output, "No tags defined")
}

func TestPrintValidationReport_Warnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(sampleReport(), true)

	assert.Contains(t, buf.String(), "FILES WITH WARNINGS (1)")
	assert.Contains(t, buf.String(), "No tags defined")
}

func TestPrintValidationReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationReport(nil, true)

	assert.Empty(t, buf.String())
}

func TestPrintVerdict_AllValid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVerdict(&types.CollectionReport{Summary: types.Summary{Total: 4, Valid: 4}})

	assert.Contains(t, buf.String(), "All 4 files valid")
}

func TestPrintCategories_Sorted(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCategories(sampleReport().ByCategory)
	output := buf.String()

	assert.Less(t, strings.Index(output, "artist"), strings.Index(output, "scientist"))
}

func TestPrintFileMessages_Capped(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var results []types.FileResult
	for i := 0; i < 12; i++ {
		results = append(results, types.FileResult{
			Location: types.Location{File: fmt.Sprintf("file-%02d.json", i)},
			Errors:   []string{"Missing ID"},
		})
	}

	p.PrintFileMessages("FILES WITH ERRORS", results, func(r types.FileResult) []string { return r.Errors }, p.fail, "✗")
	output := buf.String()

	assert.Contains(t, output, "file-09.json")
	assert.NotContains(t, output, "file-10.json")
	assert.Contains(t, output, "... and 2 more files")
}

func TestPrintBox_AlignsLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("x", 80))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintMigrateReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMigrateReport(&types.MigrateReport{
		Sources:    2,
		Records:    5,
		Written:    3,
		Duplicates: 1,
		Failed:     1,
		Failures:   []string{"legacy.json[4]: missing name"},
		Manifest:   "index/manifest.json",
	})
	output := buf.String()

	assert.Contains(t, output, "MIGRATION SUMMARY")
	assert.Contains(t, output, "Written:        3")
	assert.Contains(t, output, "missing name")
	assert.Contains(t, output, "index/manifest.json")
}

func TestPrintBuildResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBuildResult(&build.Result{Total: 7, Categories: 2, Tags: 1, Files: []string{"a", "b", "c", "d"}})
	output := buf.String()

	assert.Contains(t, output, "BUILD SUMMARY")
	assert.Contains(t, output, "Records:           7")
	assert.Contains(t, output, "Files written:     4")
}

func TestPrintPersonality(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPersonality(&types.Personality{
		ID:       "ada-lovelace",
		Name:     "Ada Lovelace",
		Category: "scientist",
		Tags:     []string{"math", "computing"},
		Metadata: &types.Metadata{Born: "1815"},
		Ocean:    types.Ocean{Openness: 95, Conscientiousness: 80, Extraversion: 40, Agreeableness: 60, Neuroticism: 55},
		Quotes:   []string{"That brain of mine is something more than merely mortal."},
	})
	output := buf.String()

	assert.Contains(t, output, "ADA LOVELACE")
	assert.Contains(t, output, "ada-lovelace")
	assert.Contains(t, output, "O95 C80 E40 A60 N55")
	assert.Contains(t, output, "math, computing")
	assert.Contains(t, output, "1815")
}
