package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zeekay/persona/internal/collection"
	"github.com/zeekay/persona/internal/convert"
	"github.com/zeekay/persona/internal/types"
	"github.com/zeekay/persona/internal/validation"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one legacy file into canonical records",
	Long: `Reads a legacy personality file (a single record, or a collection under
"personalities" or "personas") and converts every record to the canonical format.

Records are printed as JSON, or written into a partitioned collection with --out.`,
	RunE: runConvert,
}

var (
	convertInput  string
	convertOutput string
	convertCheck  bool
)

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "in", "i", "", "Path to legacy JSON file (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "out", "o", "", "Collection root to write records into (default: print)")
	convertCmd.Flags().BoolVar(&convertCheck, "check", false, "Validate converted records and report problems")

	if err := convertCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	legacy, err := collection.LoadLegacyFile(convertInput)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	var converted []*types.Personality
	for i, rec := range legacy {
		p, err := convert.Convert(rec)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Warning: record %d skipped: %v\n", i, err)
			continue
		}
		converted = append(converted, p)
	}
	if len(converted) == 0 {
		return fmt.Errorf("no records converted from %s", convertInput)
	}
	logger.Info("converted legacy file", zap.String("path", convertInput), zap.Int("records", len(converted)))

	if convertCheck {
		if err := checkConverted(errOut, converted); err != nil {
			return err
		}
	}

	if convertOutput == "" {
		return printRecords(cmd.OutOrStdout(), converted)
	}

	written := 0
	for _, p := range converted {
		path, err := collection.WriteRecord(convertOutput, p)
		if errors.Is(err, collection.ErrInvalidID) {
			_, _ = fmt.Fprintf(errOut, "Warning: %v, skipped\n", err)
			continue
		}
		if errors.Is(err, collection.ErrExists) {
			_, _ = fmt.Fprintf(errOut, "Warning: %s already exists, skipped\n", path)
			continue
		}
		if err != nil {
			return err
		}
		written++
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d of %d records to %s\n", written, len(converted), convertOutput)
	return nil
}

// checkConverted reports rule violations of freshly converted records.
func checkConverted(w io.Writer, records []*types.Personality) error {
	v, err := validation.New(validation.DefaultOptions())
	if err != nil {
		return err
	}
	for _, p := range records {
		result, err := v.ValidatePersonality(p, "")
		if err != nil {
			return err
		}
		for _, msg := range result.Errors {
			_, _ = fmt.Fprintf(w, "%s: error: %s\n", p.ID, msg)
		}
		for _, msg := range result.Warnings {
			_, _ = fmt.Fprintf(w, "%s: warning: %s\n", p.ID, msg)
		}
	}
	return nil
}

// printRecords writes one record as an object, several as an array.
func printRecords(w io.Writer, records []*types.Personality) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	var v any = records
	if len(records) == 1 {
		v = records[0]
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal records to JSON: %w", err)
	}
	return nil
}
