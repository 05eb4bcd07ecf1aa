package build

import (
	"path"

	"github.com/zeekay/persona/internal/collection"
	"github.com/zeekay/persona/internal/types"
)

// GenerateManifest indexes records by partition and by id. Categories are keyed
// by partition directory.
func GenerateManifest(records []collection.Record, generated string) types.Manifest {
	m := types.Manifest{
		Version:    types.ManifestVersion,
		Generated:  generated,
		Categories: make(map[string]types.ManifestCategory),
		Index:      make(map[string]types.ManifestEntry),
	}

	for _, r := range records {
		p := r.Personality
		dir := r.Location.Partition
		if dir == "" {
			dir = types.PartitionFor(p.Category)
		}

		cat := m.Categories[dir]
		cat.Path = dir
		cat.IDs = append(cat.IDs, p.ID)
		cat.Count = len(cat.IDs)
		m.Categories[dir] = cat

		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		m.Index[p.ID] = types.ManifestEntry{
			Path:     path.Join(dir, r.Location.File),
			Name:     p.Name,
			Category: p.Category,
			Tags:     tags,
		}
		m.Total++
	}

	return m
}
