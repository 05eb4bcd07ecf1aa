package types

import "path"

// ValidationResult holds the messages produced for one record.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Valid reports whether the record produced no errors.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Location identifies a record file within a collection tree.
type Location struct {
	Partition string
	File      string
}

// String renders the location as "partition/file", or just the file in a flat tree.
func (l Location) String() string {
	if l.Partition == "" {
		return l.File
	}
	return path.Join(l.Partition, l.File)
}

// MarshalText lets locations be used directly in JSON output.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// FileResult is the validation outcome for one file.
type FileResult struct {
	Location Location `json:"file"`
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Category string   `json:"category,omitempty"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Valid    bool     `json:"valid"`
}

// CategoryStats counts records for one category.
type CategoryStats struct {
	Total  int `json:"total"`
	Valid  int `json:"valid"`
	Errors int `json:"errors"`
}

// Duplicate lists every location that declares the same id.
type Duplicate struct {
	ID        string     `json:"id"`
	Locations []Location `json:"files"`
}

// Summary holds the headline counts of a validation run.
type Summary struct {
	Total      int `json:"total"`
	Valid      int `json:"valid"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
	Duplicates int `json:"duplicates"`
}

// CollectionReport is the result of validating a whole collection.
type CollectionReport struct {
	RunID      string                   `json:"run_id,omitempty"`
	Timestamp  string                   `json:"timestamp,omitempty"`
	Duration   string                   `json:"duration,omitempty"`
	Summary    Summary                  `json:"summary"`
	ByCategory map[string]CategoryStats `json:"byCategory"`
	Duplicates []Duplicate              `json:"duplicates"`
	Results    []FileResult             `json:"results"`
}

// Failed reports whether any file has errors or any id is duplicated.
func (r *CollectionReport) Failed() bool {
	return r.Summary.Errors > 0 || len(r.Duplicates) > 0
}

// FilesWithErrors returns the results that have at least one error.
func (r *CollectionReport) FilesWithErrors() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if len(res.Errors) > 0 {
			out = append(out, res)
		}
	}
	return out
}

// FilesWithWarnings returns the results that have at least one warning.
func (r *CollectionReport) FilesWithWarnings() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if len(res.Warnings) > 0 {
			out = append(out, res)
		}
	}
	return out
}

// MigrateReport summarizes a legacy-to-canonical migration.
type MigrateReport struct {
	RunID      string   `json:"run_id,omitempty"`
	Sources    int      `json:"sources"`
	Records    int      `json:"records"`
	Written    int      `json:"written"`
	Duplicates int      `json:"duplicates"`
	Failed     int      `json:"failed"`
	Failures   []string `json:"failures,omitempty"`
	Manifest   string   `json:"manifest,omitempty"`
}
