// Package observability provides formatted terminal output for the persona CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zeekay/persona/internal/build"
	"github.com/zeekay/persona/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxFilesToShow caps the per-file error and warning listings
	maxFilesToShow = 10
)

// Printer handles formatted output for the CLI
type Printer struct {
	out   io.Writer
	title lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer.
// Colour is only emitted when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:   out,
		title: r.NewStyle().Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#FFB300")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#E53935")).Bold(true),
		muted: r.NewStyle().Faint(true),
	}
}

// truncate shortens s to width runes, marking the cut with "...".
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// pad right-pads a possibly styled string to width visible cells.
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(p.title.Render(truncate(title, boxWidth-4)), boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintValidationReport outputs the summary, the per-category table, files with
// errors, optionally files with warnings, and duplicate ids.
func (p *Printer) PrintValidationReport(report *types.CollectionReport, showWarnings bool) {
	if report == nil {
		return
	}

	p.PrintSummary(report)
	p.PrintCategories(report.ByCategory)
	p.PrintFileMessages("FILES WITH ERRORS", report.FilesWithErrors(), func(r types.FileResult) []string { return r.Errors }, p.fail, "✗")
	if showWarnings {
		p.PrintFileMessages("FILES WITH WARNINGS", report.FilesWithWarnings(), func(r types.FileResult) []string { return r.Warnings }, p.warn, "⚠")
	}
	p.PrintDuplicates(report.Duplicates)
	p.PrintVerdict(report)
}

// PrintSummary outputs the headline counts of a validation run.
func (p *Printer) PrintSummary(report *types.CollectionReport) {
	if report == nil {
		return
	}

	s := report.Summary
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total files:    %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("Valid:          %d\n", s.Valid))
	sb.WriteString(fmt.Sprintf("With errors:    %d\n", s.Errors))
	sb.WriteString(fmt.Sprintf("With warnings:  %d\n", s.Warnings))
	sb.WriteString(fmt.Sprintf("Duplicate IDs:  %d", s.Duplicates))
	if report.Duration != "" {
		sb.WriteString(fmt.Sprintf("\nDuration:       %s", report.Duration))
	}
	if report.RunID != "" {
		sb.WriteString(fmt.Sprintf("\nRun:            %s", report.RunID))
	}

	p.printBox("VALIDATION SUMMARY", sb.String())
}

// PrintCategories outputs per-category totals sorted by category name.
func (p *Printer) PrintCategories(stats map[string]types.CategoryStats) {
	if len(stats) == 0 {
		return
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-24s %7s %7s %7s", "Category", "Total", "Valid", "Errors"))
	for _, name := range names {
		st := stats[name]
		sb.WriteString(fmt.Sprintf("\n%-24s %7d %7d %7d", truncate(name, 24), st.Total, st.Valid, st.Errors))
	}

	p.printBox("BY CATEGORY", sb.String())
}

// PrintFileMessages lists up to maxFilesToShow files with their messages.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFileMessages(title string, results []types.FileResult, messages func(types.FileResult) []string, style lipgloss.Style, marker string) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintf(p.out, "\n%s\n", p.title.Render(fmt.Sprintf("%s (%d)", title, len(results))))
	count := min(len(results), maxFilesToShow)
	for i := 0; i < count; i++ {
		res := results[i]
		fmt.Fprintf(p.out, "  %s\n", res.Location)
		for _, msg := range messages(res) {
			fmt.Fprintf(p.out, "    %s %s\n", style.Render(marker), msg)
		}
	}
	if len(results) > maxFilesToShow {
		fmt.Fprintf(p.out, "  %s\n", p.muted.Render(fmt.Sprintf("... and %d more files", len(results)-maxFilesToShow)))
	}
}

// PrintDuplicates outputs every duplicated id with the files declaring it.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDuplicates(dups []types.Duplicate) {
	if len(dups) == 0 {
		return
	}

	fmt.Fprintf(p.out, "\n%s\n", p.title.Render(fmt.Sprintf("DUPLICATE IDS (%d)", len(dups))))
	for _, d := range dups {
		fmt.Fprintf(p.out, "  %s %s\n", p.fail.Render("✗"), d.ID)
		for _, loc := range d.Locations {
			fmt.Fprintf(p.out, "    - %s\n", loc)
		}
	}
}

// PrintVerdict outputs the final pass/fail line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintVerdict(report *types.CollectionReport) {
	if report == nil {
		return
	}
	if report.Failed() {
		fmt.Fprintf(p.out, "\n%s\n", p.fail.Render(fmt.Sprintf("✗ Validation failed: %d files with errors, %d duplicate ids",
			report.Summary.Errors, report.Summary.Duplicates)))
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", p.ok.Render(fmt.Sprintf("✓ All %d files valid", report.Summary.Total)))
}

// PrintMigrateReport outputs the counts of a migration run and the first failures.
func (p *Printer) PrintMigrateReport(report *types.MigrateReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source files:   %d\n", report.Sources))
	sb.WriteString(fmt.Sprintf("Records found:  %d\n", report.Records))
	sb.WriteString(fmt.Sprintf("Written:        %d\n", report.Written))
	sb.WriteString(fmt.Sprintf("Duplicates:     %d\n", report.Duplicates))
	sb.WriteString(fmt.Sprintf("Failed:         %d", report.Failed))
	if report.Manifest != "" {
		sb.WriteString(fmt.Sprintf("\nManifest:       %s", report.Manifest))
	}

	if len(report.Failures) > 0 {
		sb.WriteString("\n\nFailures:")
		count := min(len(report.Failures), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("\n  • %s", report.Failures[i]))
		}
		if len(report.Failures) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more", len(report.Failures)-maxItemsToShow))
		}
	}

	p.printBox("MIGRATION SUMMARY", sb.String())
}

// PrintBuildResult outputs what a build wrote.
func (p *Printer) PrintBuildResult(result *build.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records:           %d\n", result.Total))
	sb.WriteString(fmt.Sprintf("Category bundles:  %d\n", result.Categories))
	sb.WriteString(fmt.Sprintf("Tag bundles:       %d\n", result.Tags))
	sb.WriteString(fmt.Sprintf("Files written:     %d", len(result.Files)))

	p.printBox("BUILD SUMMARY", sb.String())
}

// PrintPersonality outputs a short profile of one record.
func (p *Printer) PrintPersonality(rec *types.Personality) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:        %s\n", rec.ID))
	sb.WriteString(fmt.Sprintf("Category:  %s\n", rec.Category))
	if rec.Metadata != nil && rec.Metadata.Born != "" {
		sb.WriteString(fmt.Sprintf("Born:      %s\n", rec.Metadata.Born))
	}
	o := rec.Ocean
	sb.WriteString(fmt.Sprintf("OCEAN:     O%.0f C%.0f E%.0f A%.0f N%.0f\n",
		o.Openness, o.Conscientiousness, o.Extraversion, o.Agreeableness, o.Neuroticism))

	if len(rec.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:      %s\n", strings.Join(rec.Tags, ", ")))
	}
	if len(rec.Quotes) > 0 {
		sb.WriteString("\nQuotes:\n")
		count := min(len(rec.Quotes), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec.Quotes[i]))
		}
		if len(rec.Quotes) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Quotes)-3))
		}
	}

	p.printBox(strings.ToUpper(rec.Name), strings.TrimSuffix(sb.String(), "\n"))
}
