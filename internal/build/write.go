package build

import (
	"path/filepath"
	"time"

	"github.com/zeekay/persona/internal/collection"
)

// Options controls where bundles are written.
type Options struct {
	// DistDir receives all.json, by-category/ and by-tag/.
	DistDir string
	// ManifestPath is where the manifest is written; empty skips it.
	ManifestPath string
	// MinTagCount is the record threshold for tag bundles.
	MinTagCount int
	// Now stamps generated files; defaults to time.Now.
	Now func() time.Time
}

// Result summarizes what a build wrote.
type Result struct {
	Total      int
	Categories int
	Tags       int
	Files      []string
}

// Write builds every bundle from records and writes them to disk.
func Write(records []collection.Record, opts Options) (*Result, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	generated := Timestamp(now())
	result := &Result{}

	write := func(path string, v any) error {
		if err := collection.WriteJSON(path, v); err != nil {
			return err
		}
		result.Files = append(result.Files, path)
		return nil
	}

	all := AllBundle(records, generated)
	if err := write(filepath.Join(opts.DistDir, "all.json"), all); err != nil {
		return nil, err
	}
	result.Total = all.Total

	for _, b := range CategoryBundles(records, generated) {
		if err := write(filepath.Join(opts.DistDir, "by-category", b.Category+".json"), b); err != nil {
			return nil, err
		}
		result.Categories++
	}

	tagBundles := TagBundles(records, opts.MinTagCount, generated)
	tags := make([]string, 0, len(tagBundles))
	for _, b := range tagBundles {
		tags = append(tags, b.Tag)
	}
	fileNames := TagFileNames(tags)
	for _, b := range tagBundles {
		if err := write(filepath.Join(opts.DistDir, "by-tag", fileNames[b.Tag]+".json"), b); err != nil {
			return nil, err
		}
		result.Tags++
	}

	if opts.ManifestPath != "" {
		if err := write(opts.ManifestPath, GenerateManifest(records, generated)); err != nil {
			return nil, err
		}
	}

	return result, nil
}
