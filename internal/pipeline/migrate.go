package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/zeekay/persona/internal/build"
	"github.com/zeekay/persona/internal/collection"
	"github.com/zeekay/persona/internal/convert"
	"github.com/zeekay/persona/internal/types"
)

// MigrateOptions holds configuration for migrating legacy files
type MigrateOptions struct {
	// SourceDir holds legacy JSON files.
	SourceDir string
	// DestDir is the root of the partitioned collection.
	DestDir string
	// ManifestPath defaults to DestDir/index/manifest.json.
	ManifestPath string
	Logger       *zap.Logger
	OnProgress   ProgressCallback
	Now          func() time.Time
}

// legacySource is one legacy file and the records it holds.
type legacySource struct {
	path    string
	records []types.LegacyRecord
}

// Migrate converts every legacy file in SourceDir into canonical record files under
// DestDir and regenerates the manifest. Unreadable files and unconvertible records
// are counted as failures, as are records whose id cannot name a file. Records whose
// file already exists count as duplicates.
func Migrate(ctx context.Context, opts MigrateOptions) (*types.MigrateReport, error) {
	r := newRun("migrate", opts.Logger, opts.OnProgress, opts.Now)
	report := &types.MigrateReport{RunID: r.id}

	if err := r.begin("extract_legacy", fmt.Sprintf("Reading legacy files from %s", opts.SourceDir)); err != nil {
		return nil, err
	}
	paths, err := collection.LegacyFiles(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy files: %w", err)
	}

	var sources []legacySource
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records, err := collection.LoadLegacyFile(path)
		if err != nil {
			r.logger.Warn("skipping legacy file", zap.String("path", path), zap.Error(err))
			report.Failed++
			report.Failures = append(report.Failures, err.Error())
			continue
		}
		sources = append(sources, legacySource{path: path, records: records})
		report.Records += len(records)
	}
	report.Sources = len(sources)
	r.finish("extract_legacy", fmt.Sprintf("Found %d records in %d files", report.Records, report.Sources), report.Records)

	if err := r.begin("convert_records", "Converting records"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.DestDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create collection directory: %w", err)
	}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := migrateSource(r, src, opts.DestDir, report); err != nil {
			return nil, err
		}
	}
	r.logger.Info("converted records",
		zap.Int("written", report.Written),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("failed", report.Failed),
	)
	r.finish("convert_records", fmt.Sprintf("Wrote %d records", report.Written), report.Written)

	manifestPath := opts.ManifestPath
	if manifestPath == "" {
		manifestPath = filepath.Join(opts.DestDir, "index", "manifest.json")
	}
	if err := r.begin("write_manifest", fmt.Sprintf("Writing manifest to %s", manifestPath)); err != nil {
		return nil, err
	}
	loaded, err := collection.LoadRecords(opts.DestDir)
	if err != nil {
		return nil, fmt.Errorf("failed to reload collection: %w", err)
	}
	for _, f := range loaded.Failures {
		r.logger.Warn("record left out of manifest", zap.String("path", f.Path), zap.Error(f))
	}
	if err := collection.WriteJSON(manifestPath, build.GenerateManifest(loaded.Records, r.timestamp())); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}
	report.Manifest = manifestPath
	r.finish("write_manifest", "Manifest written", manifestPath)

	return report, nil
}

// migrateSource converts and stores the records of one legacy file.
func migrateSource(r *run, src legacySource, destDir string, report *types.MigrateReport) error {
	name := filepath.Base(src.path)
	for i, rec := range src.records {
		p, err := convert.Convert(rec)
		if err != nil {
			r.logger.Warn("record not converted", zap.String("file", name), zap.Int("index", i), zap.Error(err))
			report.Failed++
			report.Failures = append(report.Failures, fmt.Sprintf("%s[%d]: %v", name, i, err))
			continue
		}

		path, err := collection.WriteRecord(destDir, p)
		if errors.Is(err, collection.ErrInvalidID) {
			r.logger.Warn("record not stored", zap.String("file", name), zap.Int("index", i), zap.Error(err))
			report.Failed++
			report.Failures = append(report.Failures, fmt.Sprintf("%s[%d]: %v", name, i, err))
			continue
		}
		if errors.Is(err, collection.ErrExists) {
			r.logger.Debug("record already present", zap.String("id", p.ID), zap.String("path", path))
			report.Duplicates++
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", p.ID, err)
		}
		report.Written++
		r.emit("convert_records", categoryProgress, fmt.Sprintf("Wrote %s", p.ID), path)
	}
	return nil
}
