package types

// ManifestVersion is the collection format version written to manifests and bundles.
const ManifestVersion = "2.0.0"

// Manifest indexes every record of a collection.
type Manifest struct {
	Version    string                      `json:"version"`
	Generated  string                      `json:"generated"`
	Total      int                         `json:"total"`
	Categories map[string]ManifestCategory `json:"categories"`
	Index      map[string]ManifestEntry    `json:"index"`
}

// ManifestCategory lists the records stored in one partition directory.
type ManifestCategory struct {
	Count int      `json:"count"`
	Path  string   `json:"path"`
	IDs   []string `json:"ids"`
}

// ManifestEntry locates a single record.
type ManifestEntry struct {
	Path     string   `json:"path"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Bundle is a distributable collection of records.
type Bundle struct {
	Version       string         `json:"version"`
	Generated     string         `json:"generated"`
	Category      string         `json:"category,omitempty"`
	Categories    []string       `json:"categories,omitempty"`
	Tag           string         `json:"tag,omitempty"`
	Total         int            `json:"total"`
	Personalities []*Personality `json:"personalities"`
}
