package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document is a decoded JSON object in its raw form. Validation works on documents
// so that wrongly typed values and unexpected keys remain visible.
type Document map[string]any

// LegacyRecord is a decoded record in any of the historical source shapes.
type LegacyRecord map[string]any

// DecodeDocument parses a JSON object.
func DecodeDocument(data []byte) (Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %s", TypeName(v))
	}
	return Document(m), nil
}

// String returns the value at key when it is a string.
func (d Document) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// Map returns the value at key when it is an object.
func (d Document) Map(key string) (map[string]any, bool) {
	m, ok := d[key].(map[string]any)
	return m, ok
}

// Lookup resolves a dotted path such as "style.communication". The second result is
// false when any segment is missing or an intermediate value is not an object.
func (r LegacyRecord) Lookup(path string) (any, bool) {
	var cur any = map[string]any(r)
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Truthy applies JavaScript truthiness, which the legacy data was authored against:
// nil, false, zero and the empty string are falsy; every sequence and object is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && x == x
	case int:
		return x != 0
	case json.Number:
		return x != "" && x != "0"
	default:
		return true
	}
}

// TypeName names the JSON type of v the way JavaScript's typeof does.
func TypeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, json.Number:
		return "number"
	default:
		return "object"
	}
}
