package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeekay/persona/internal/observability"
	"github.com/zeekay/persona/internal/pipeline"
	"github.com/zeekay/persona/internal/schemas"
	"github.com/zeekay/persona/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every record in a collection",
	Long: `Validates each record file under the collection root against the record
rules, detects duplicate ids and prints per-category statistics.

Exits non-zero when any file has errors or any id is duplicated.`,
	RunE: runValidate,
}

var (
	validateDir           string
	validateWorkers       int
	validateWarnings      bool
	validateReport        string
	validateSchemaCheck   bool
	validateSchema        string
	validateNoPersonality bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateDir, "dir", "d", "", "Collection root (default: config root_dir)")
	validateCmd.Flags().IntVarP(&validateWorkers, "workers", "w", 0, "Parallel validation batches (0 = one per CPU)")
	validateCmd.Flags().BoolVar(&validateWarnings, "warnings", false, "Also list files with warnings")
	validateCmd.Flags().StringVarP(&validateReport, "report", "r", "", "Write the JSON report to this path")
	validateCmd.Flags().BoolVar(&validateSchemaCheck, "schema-check", false, "Also validate records against the JSON Schema")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Validate against this schema file instead of the embedded one (implies --schema-check)")
	validateCmd.Flags().BoolVar(&validateNoPersonality, "no-personality", false, "Do not require the personality block")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	dir := cfg.RootDir
	if validateDir != "" {
		dir = validateDir
	}
	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = validateWorkers
	}
	reportPath := cfg.ReportPath
	if validateReport != "" {
		reportPath = validateReport
	}

	schemaPath := cfg.SchemaPath
	if validateSchema != "" {
		schemaPath = validateSchema
	}
	if schemaPath != "" {
		resolved, err := schemas.ResolveSchemaPath(schemaPath, dir)
		if err != nil {
			return err
		}
		schemaPath = resolved
	}

	report, err := pipeline.Validate(cmd.Context(), pipeline.ValidateOptions{
		RootDir:    dir,
		Workers:    workers,
		ReportPath: reportPath,
		Rules: validation.Options{
			RequirePersonality: cfg.RequirePersonalityOrDefault() && !validateNoPersonality,
			SchemaCheck:        cfg.SchemaCheck || validateSchemaCheck,
			SchemaPath:         schemaPath,
		},
		Logger:     logger,
		OnProgress: logProgress,
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintValidationReport(report, cfg.ShowWarnings || validateWarnings)
	if reportPath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report: %s\n", reportPath)
	}

	// Return error to indicate failure (exit code 1)
	if report.Failed() {
		return fmt.Errorf("validation failed: %d files with errors, %d duplicate ids",
			report.Summary.Errors, report.Summary.Duplicates)
	}
	return nil
}
