// Package schemas embeds the JSON Schema documents shipped with the collection.
package schemas

import _ "embed"

// PersonalityFile is the file name of the canonical record schema.
const PersonalityFile = "personality.schema.json"

// Personality is the JSON Schema for canonical personality records.
//
//go:embed personality.schema.json
var Personality string
