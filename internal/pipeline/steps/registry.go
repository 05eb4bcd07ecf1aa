// Package steps provides step definitions and dependency validation for the
// persona pipelines.
package steps

import (
	"fmt"
	"sort"
)

// Step categories, one per pipeline.
const (
	CategoryValidate = "validate"
	CategoryMigrate  = "migrate"
	CategoryBuild    = "build"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	"discover": {
		Name:     "discover",
		Category: CategoryValidate,
	},
	"validate_records": {
		Name:         "validate_records",
		Category:     CategoryValidate,
		Dependencies: []string{"discover"},
	},
	"write_report": {
		Name:         "write_report",
		Category:     CategoryValidate,
		Dependencies: []string{"validate_records"},
	},
	"extract_legacy": {
		Name:     "extract_legacy",
		Category: CategoryMigrate,
	},
	"convert_records": {
		Name:         "convert_records",
		Category:     CategoryMigrate,
		Dependencies: []string{"extract_legacy"},
	},
	"write_manifest": {
		Name:         "write_manifest",
		Category:     CategoryMigrate,
		Dependencies: []string{"convert_records"},
	},
	"load_records": {
		Name:     "load_records",
		Category: CategoryBuild,
	},
	"write_bundles": {
		Name:         "write_bundles",
		Category:     CategoryBuild,
		Dependencies: []string{"load_records"},
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks if all required dependencies for a step are completed
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// StepsFor returns the names of the steps in a category, sorted.
func StepsFor(category string) []string {
	var names []string
	for name, def := range StepRegistry {
		if def.Category == category {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Tracker records which steps of a run have completed.
type Tracker struct {
	completed map[string]bool
	order     []string
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[string]bool)}
}

// Start checks that stepName may run now.
func (t *Tracker) Start(stepName string) error {
	return ValidateDependencies(t.completed, stepName)
}

// Complete marks stepName as done.
func (t *Tracker) Complete(stepName string) {
	if t.completed[stepName] {
		return
	}
	t.completed[stepName] = true
	t.order = append(t.order, stepName)
}

// Completed returns the completed steps in completion order.
func (t *Tracker) Completed() []string {
	return append([]string(nil), t.order...)
}
