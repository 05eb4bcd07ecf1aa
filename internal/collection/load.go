package collection

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/zeekay/persona/internal/convert"
	"github.com/zeekay/persona/internal/types"
	"github.com/zeekay/persona/internal/validation"
)

// LoadEntries reads every record file under root. Files that cannot be read or
// decoded are returned with Err set so validation can report them.
func LoadEntries(root string) ([]validation.Entry, error) {
	locations, err := Discover(root)
	if err != nil {
		return nil, err
	}

	entries := make([]validation.Entry, 0, len(locations))
	for _, loc := range locations {
		entry := validation.Entry{Location: loc}
		data, err := os.ReadFile(PathFor(root, loc))
		if err != nil {
			entry.Err = err
		} else if entry.Document, err = types.DecodeDocument(data); err != nil {
			entry.Err = err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LoadRecord reads one canonical record file.
func LoadRecord(path string) (*types.Personality, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read record file", Cause: err}
	}

	var p types.Personality
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse record JSON", Cause: err}
	}
	return &p, nil
}

// Record is a typed record and where it was read from.
type Record struct {
	Location    types.Location
	Personality *types.Personality
}

// LoadResult holds the records read from a collection and the files that failed.
type LoadResult struct {
	Records  []Record
	Failures []*LoadError
}

// LoadRecords reads every record under root as a typed record.
func LoadRecords(root string) (*LoadResult, error) {
	locations, err := Discover(root)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{}
	for _, loc := range locations {
		p, err := LoadRecord(PathFor(root, loc))
		if err != nil {
			var loadErr *LoadError
			if errors.As(err, &loadErr) {
				result.Failures = append(result.Failures, loadErr)
				continue
			}
			return nil, err
		}
		result.Records = append(result.Records, Record{Location: loc, Personality: p})
	}
	return result, nil
}

// LoadLegacyFile reads a legacy source file and returns the records it holds.
func LoadLegacyFile(path string) ([]types.LegacyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read legacy file", Cause: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse legacy JSON", Cause: err}
	}

	records, err := convert.ExtractRecords(doc)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "unsupported legacy file", Cause: err}
	}
	return records, nil
}
