package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/zeekay/persona/internal/build"
	"github.com/zeekay/persona/internal/collection"
)

// BuildOptions holds configuration for building distribution bundles
type BuildOptions struct {
	RootDir string
	// DistDir defaults to RootDir/dist.
	DistDir string
	// ManifestPath defaults to RootDir/index/manifest.json.
	ManifestPath string
	MinTagCount  int
	Logger       *zap.Logger
	OnProgress   ProgressCallback
	Now          func() time.Time
}

// Build loads every record under RootDir and writes the distribution bundles and
// manifest. Files that fail to load are logged and left out.
func Build(ctx context.Context, opts BuildOptions) (*build.Result, error) {
	r := newRun("build", opts.Logger, opts.OnProgress, opts.Now)

	distDir := opts.DistDir
	if distDir == "" {
		distDir = filepath.Join(opts.RootDir, "dist")
	}
	manifestPath := opts.ManifestPath
	if manifestPath == "" {
		manifestPath = filepath.Join(opts.RootDir, "index", "manifest.json")
	}

	if err := r.begin("load_records", fmt.Sprintf("Loading records from %s", opts.RootDir)); err != nil {
		return nil, err
	}
	loaded, err := collection.LoadRecords(opts.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	for _, f := range loaded.Failures {
		r.logger.Warn("skipping unreadable record", zap.String("path", f.Path), zap.Error(f))
		r.emit("load_records", categoryWarning, f.Error(), f.Path)
	}
	r.finish("load_records", fmt.Sprintf("Loaded %d records", len(loaded.Records)), len(loaded.Records))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.begin("write_bundles", fmt.Sprintf("Writing bundles to %s", distDir)); err != nil {
		return nil, err
	}
	result, err := build.Write(loaded.Records, build.Options{
		DistDir:      distDir,
		ManifestPath: manifestPath,
		MinTagCount:  opts.MinTagCount,
		Now:          func() time.Time { return r.started },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write bundles: %w", err)
	}
	r.logger.Info("built distribution",
		zap.String("dist", distDir),
		zap.Int("records", result.Total),
		zap.Int("categories", result.Categories),
		zap.Int("tags", result.Tags),
		zap.Duration("elapsed", r.elapsed()),
	)
	r.finish("write_bundles", fmt.Sprintf("Wrote %d files", len(result.Files)), result)

	return result, nil
}
