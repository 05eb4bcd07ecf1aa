// Package convert turns legacy personality records into canonical records.
package convert

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when a legacy source document holds no recognizable records.
var ErrUnknownFormat = errors.New("unknown legacy format")

// ConversionError reports a record that cannot be converted at all.
type ConversionError struct {
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conversion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("conversion error: %s", e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
