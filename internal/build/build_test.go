package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeekay/persona/internal/collection"
	"github.com/zeekay/persona/internal/types"
)

func rec(partition, id, name, category string, tags ...string) collection.Record {
	return collection.Record{
		Location: types.Location{Partition: partition, File: id + ".json"},
		Personality: &types.Personality{
			Schema:   types.SchemaRef,
			ID:       id,
			Name:     name,
			Category: category,
			Tags:     tags,
		},
	}
}

func sampleRecords() []collection.Record {
	return []collection.Record{
		rec("scientists", "einstein", "albert Einstein", "scientist", "physics", "genius"),
		rec("scientists", "curie", "Marie Curie", "scientist", "physics", "chemistry"),
		rec("artists", "bach", "Bach", "composer", "music", "genius"),
		rec("programmers", "ritchie", "Dennis Ritchie", "programmer", "c", "genius", "physics"),
		rec("artists", "eno", "Émile Eno", "musician", "music"),
	}
}

func names(bundle types.Bundle) []string {
	out := make([]string, 0, len(bundle.Personalities))
	for _, p := range bundle.Personalities {
		out = append(out, p.Name)
	}
	return out
}

func TestAllBundle_SortedAndStripped(t *testing.T) {
	records := sampleRecords()
	bundle := AllBundle(records, "now")

	assert.Equal(t, types.ManifestVersion, bundle.Version)
	assert.Equal(t, 5, bundle.Total)
	assert.Equal(t, []string{"albert Einstein", "Bach", "Dennis Ritchie", "Émile Eno", "Marie Curie"}, names(bundle))

	for _, p := range bundle.Personalities {
		assert.Empty(t, p.Schema)
	}
	assert.Equal(t, types.SchemaRef, records[0].Personality.Schema, "input records are not modified")
}

func TestCategoryBundles(t *testing.T) {
	bundles := CategoryBundles(sampleRecords(), "now")
	require.Len(t, bundles, 3)

	assert.Equal(t, "artists", bundles[0].Category)
	assert.Equal(t, []string{"Bach", "Émile Eno"}, names(bundles[0]))
	assert.Contains(t, bundles[0].Categories, "musician")
	assert.Contains(t, bundles[0].Categories, "composer")

	assert.Equal(t, "programmers", bundles[1].Category)
	assert.Equal(t, "scientists", bundles[2].Category)
	assert.Equal(t, 2, bundles[2].Total)
}

func TestTagBundles_Threshold(t *testing.T) {
	bundles := TagBundles(sampleRecords(), 3, "now")
	require.Len(t, bundles, 2)

	assert.Equal(t, "genius", bundles[0].Tag)
	assert.Equal(t, []string{"albert Einstein", "Bach", "Dennis Ritchie"}, names(bundles[0]))
	assert.Equal(t, "physics", bundles[1].Tag)
	assert.Equal(t, 3, bundles[1].Total)

	assert.Len(t, TagBundles(sampleRecords(), 2, "now"), 3)
	assert.Len(t, TagBundles(sampleRecords(), 0, "now"), 2, "non-positive threshold uses the default")
}

func TestSanitizeTag(t *testing.T) {
	assert.Equal(t, "c__", SanitizeTag("c++"))
	assert.Equal(t, "machine_learning", SanitizeTag("machine learning"))
	assert.Equal(t, "tech_leader-x", SanitizeTag("tech_leader-x"))
}

func TestGenerateManifest(t *testing.T) {
	m := GenerateManifest(sampleRecords(), "now")

	assert.Equal(t, 5, m.Total)
	assert.Equal(t, types.ManifestCategory{Count: 2, Path: "scientists", IDs: []string{"einstein", "curie"}}, m.Categories["scientists"])
	assert.Equal(t, types.ManifestEntry{
		Path:     "artists/bach.json",
		Name:     "Bach",
		Category: "composer",
		Tags:     []string{"music", "genius"},
	}, m.Index["bach"])
}

func TestGenerateManifest_EmptyTags(t *testing.T) {
	m := GenerateManifest([]collection.Record{rec("special", "x", "X", "special")}, "now")
	data, err := json.Marshal(m.Index["x"])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tags":[]`)
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 45, 123_000_000, time.FixedZone("X", 3600))
	assert.Equal(t, "2024-03-01T11:30:45.123Z", Timestamp(ts))
}

func TestTagFileNames(t *testing.T) {
	names := TagFileNames([]string{"c##", "c++", "c__", "Go", "go", "physics"})

	assert.Equal(t, map[string]string{
		"c##":     "c__",
		"c++":     "c__-2",
		"c__":     "c__-3",
		"Go":      "Go",
		"go":      "go-2",
		"physics": "physics",
	}, names)

	assert.Equal(t, names, TagFileNames([]string{"physics", "go", "Go", "c__", "c++", "c##"}), "assignment does not depend on input order")
}

func TestWrite_CollidingTagsGetSeparateFiles(t *testing.T) {
	dist := t.TempDir()
	records := []collection.Record{
		rec("programmers", "stroustrup", "Bjarne Stroustrup", "programmer", "c++"),
		rec("programmers", "ritchie", "Dennis Ritchie", "programmer", "c##"),
	}

	result, err := Write(records, Options{DistDir: dist, MinTagCount: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Tags)

	tagOf := func(file string) string {
		data, err := os.ReadFile(filepath.Join(dist, "by-tag", file))
		require.NoError(t, err)
		var b types.Bundle
		require.NoError(t, json.Unmarshal(data, &b))
		return b.Tag
	}
	assert.Equal(t, "c##", tagOf("c__.json"))
	assert.Equal(t, "c++", tagOf("c__-2.json"))
}

func TestWrite(t *testing.T) {
	root := t.TempDir()
	dist := filepath.Join(root, "dist")
	manifestPath := filepath.Join(root, "index", "manifest.json")
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	result, err := Write(sampleRecords(), Options{
		DistDir:      dist,
		ManifestPath: manifestPath,
		MinTagCount:  3,
		Now:          func() time.Time { return fixed },
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 3, result.Categories)
	assert.Equal(t, 2, result.Tags)
	assert.Len(t, result.Files, 1+3+2+1)

	for _, rel := range []string{"all.json", "by-category/artists.json", "by-tag/genius.json", "by-tag/physics.json"} {
		_, err := os.Stat(filepath.Join(dist, rel))
		assert.NoError(t, err, rel)
	}

	data, err := os.ReadFile(filepath.Join(dist, "all.json"))
	require.NoError(t, err)
	var all types.Bundle
	require.NoError(t, json.Unmarshal(data, &all))
	assert.Equal(t, "2024-01-02T03:04:05.000Z", all.Generated)
	assert.NotContains(t, string(data), "$schema")

	data, err = os.ReadFile(manifestPath)
	require.NoError(t, err)
	var manifest types.Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, 5, manifest.Total)
}
