package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zeekay/persona/internal/collection"
	"github.com/zeekay/persona/internal/types"
	"github.com/zeekay/persona/internal/validation"
)

// ValidateOptions holds configuration for validating a collection
type ValidateOptions struct {
	RootDir string
	// Workers is the number of validation batches; zero uses one per CPU.
	Workers int
	// ReportPath, when set, receives the JSON report.
	ReportPath string
	Rules      validation.Options
	Logger     *zap.Logger
	OnProgress ProgressCallback
	Now        func() time.Time
}

// Validate checks every record under RootDir and returns the collection report.
// Record problems are reported, not returned; the error is for I/O and cancellation.
func Validate(ctx context.Context, opts ValidateOptions) (*types.CollectionReport, error) {
	r := newRun("validate", opts.Logger, opts.OnProgress, opts.Now)

	if err := r.begin("discover", fmt.Sprintf("Loading records from %s", opts.RootDir)); err != nil {
		return nil, err
	}
	entries, err := collection.LoadEntries(opts.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	r.logger.Info("loaded collection", zap.String("root", opts.RootDir), zap.Int("files", len(entries)))
	r.finish("discover", fmt.Sprintf("Found %d record files", len(entries)), len(entries))

	if err := r.begin("validate_records", "Validating records"); err != nil {
		return nil, err
	}
	v, err := validation.New(opts.Rules)
	if err != nil {
		return nil, err
	}
	report, err := v.ValidateCollectionParallel(ctx, entries, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("validation interrupted: %w", err)
	}
	report.RunID = r.id
	report.Timestamp = r.timestamp()
	report.Duration = r.elapsed().String()

	r.logger.Info("validated collection",
		zap.Int("total", report.Summary.Total),
		zap.Int("valid", report.Summary.Valid),
		zap.Int("errors", report.Summary.Errors),
		zap.Int("warnings", report.Summary.Warnings),
		zap.Int("duplicates", report.Summary.Duplicates),
	)
	for _, d := range report.Duplicates {
		r.logger.Warn("duplicate id", zap.String("id", d.ID), zap.Int("files", len(d.Locations)))
		r.emit("validate_records", categoryWarning, fmt.Sprintf("Duplicate id %s", d.ID), d)
	}
	r.finish("validate_records", fmt.Sprintf("%d/%d records valid", report.Summary.Valid, report.Summary.Total), report.Summary)

	if opts.ReportPath == "" {
		return report, nil
	}
	if err := r.begin("write_report", fmt.Sprintf("Writing report to %s", opts.ReportPath)); err != nil {
		return nil, err
	}
	if err := collection.WriteJSON(opts.ReportPath, report); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	r.finish("write_report", "Report written", opts.ReportPath)

	return report, nil
}
