package collection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeekay/persona/internal/types"
)

// WriteJSON writes v as indented JSON, creating parent directories as needed.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return &WriteError{Path: path, Message: "failed to marshal JSON", Cause: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: path, Message: "failed to create directory", Cause: err}
	}

	if err := os.WriteFile(path, bytes.TrimRight(buf.Bytes(), "\n"), 0644); err != nil {
		return &WriteError{Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}

// RecordPath returns where a record is stored under root.
func RecordPath(root string, p *types.Personality) string {
	return filepath.Join(root, types.PartitionFor(p.Category), p.ID+".json")
}

// WriteRecord stores a record in its category partition with a $schema reference.
// An existing file is never overwritten; ErrExists is returned instead. Ids outside
// the record id format are rejected with ErrInvalidID before any path is built.
func WriteRecord(root string, p *types.Personality) (string, error) {
	if !types.ValidID(p.ID) {
		return "", &WriteError{Path: fmt.Sprintf("%q", p.ID), Message: "id must be lowercase alphanumeric with - or _", Cause: ErrInvalidID}
	}
	path := RecordPath(root, p)
	if _, err := os.Stat(path); err == nil {
		return path, &WriteError{Path: path, Message: "refusing to overwrite", Cause: ErrExists}
	} else if !errors.Is(err, os.ErrNotExist) {
		return path, &WriteError{Path: path, Message: "failed to stat record", Cause: err}
	}

	out := *p
	out.Schema = types.SchemaRef
	return path, WriteJSON(path, &out)
}
