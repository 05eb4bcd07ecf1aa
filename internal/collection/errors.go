// Package collection reads and writes personality records stored as JSON files
// in per-category partition directories.
package collection

import (
	"errors"
	"fmt"
)

// ErrExists is returned when a record file is already present.
var ErrExists = errors.New("record already exists")

// ErrInvalidID is returned when a record id cannot be used as a file name.
var ErrInvalidID = errors.New("invalid record id")

// LoadError represents an error reading or decoding a collection file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// WriteError represents an error writing a collection file
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("write error: %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
