package convert

import (
	"fmt"

	"github.com/zeekay/persona/internal/types"
)

// ExtractRecords returns the records held by a legacy source document. A document is
// either a collection under "personalities" or "personas", or a single record with a name.
func ExtractRecords(doc map[string]any) ([]types.LegacyRecord, error) {
	for _, key := range []string{"personalities", "personas"} {
		list, ok := doc[key].([]any)
		if !ok {
			continue
		}
		records := make([]types.LegacyRecord, 0, len(list))
		for i, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s[%d] is not an object: %w", key, i, ErrUnknownFormat)
			}
			records = append(records, types.LegacyRecord(m))
		}
		return records, nil
	}

	if types.Truthy(doc["name"]) {
		return []types.LegacyRecord{types.LegacyRecord(doc)}, nil
	}
	return nil, ErrUnknownFormat
}
