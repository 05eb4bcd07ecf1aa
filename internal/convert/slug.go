package convert

import (
	"regexp"
	"strings"
)

const maxIDLength = 50

var (
	// Whitespace here matches the Unicode-aware definition the legacy ids were generated with.
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s\x{0B}\p{Z}\x{FEFF}-]`)
	slugSpaces     = regexp.MustCompile(`[\s\x{0B}\p{Z}\x{FEFF}]+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// GenerateID derives a record id from a display name: lowercase, drop everything but
// letters, digits, whitespace and hyphens, turn whitespace and hyphen runs into
// underscores, and truncate to 50 characters.
func GenerateID(name string) string {
	id := strings.ToLower(name)
	id = slugDisallowed.ReplaceAllString(id, "")
	id = slugSpaces.ReplaceAllString(id, "_")
	id = slugHyphens.ReplaceAllString(id, "_")
	if len(id) > maxIDLength {
		id = id[:maxIDLength]
	}
	return id
}
