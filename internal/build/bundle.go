// Package build assembles distributable bundles and the manifest of a collection.
package build

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zeekay/persona/internal/collection"
	"github.com/zeekay/persona/internal/types"
)

// DefaultMinTagCount is the number of records a tag needs before it gets a bundle.
const DefaultMinTagCount = 3

var tagFileUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Timestamp formats t the way generated timestamps are written: UTC with milliseconds.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// SanitizeTag makes a tag safe to use as a file name. Distinct tags may sanitize
// to the same name; TagFileNames resolves those collisions.
func SanitizeTag(tag string) string {
	return tagFileUnsafe.ReplaceAllString(tag, "_")
}

// TagFileNames assigns each tag a unique file name stem. Tags are taken in sorted
// order: the first keeps its sanitized name and later tags that collide with a
// name already taken, ignoring case, get a numeric suffix (c__, c__-2, ...).
func TagFileNames(tags []string) map[string]string {
	sorted := slices.Clone(tags)
	sort.Strings(sorted)

	names := make(map[string]string, len(sorted))
	used := make(map[string]bool, len(sorted))
	for _, tag := range sorted {
		if _, ok := names[tag]; ok {
			continue
		}
		base := SanitizeTag(tag)
		name := base
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		used[strings.ToLower(name)] = true
		names[tag] = name
	}
	return names
}

// SortByName orders records by name using English collation, so that case and
// accents sort the way a reader expects.
func SortByName(records []*types.Personality) {
	c := collate.New(language.English)
	sort.SliceStable(records, func(i, j int) bool {
		return c.CompareString(records[i].Name, records[j].Name) < 0
	})
}

// stripped returns copies of the records without their $schema reference.
func stripped(records []collection.Record) []*types.Personality {
	out := make([]*types.Personality, 0, len(records))
	for _, r := range records {
		p := *r.Personality
		p.Schema = ""
		out = append(out, &p)
	}
	return out
}

// AllBundle holds every record, sorted by name.
func AllBundle(records []collection.Record, generated string) types.Bundle {
	all := stripped(records)
	SortByName(all)
	return types.Bundle{
		Version:       types.ManifestVersion,
		Generated:     generated,
		Total:         len(all),
		Personalities: all,
	}
}

// CategoryBundles returns one bundle per non-empty partition directory, sorted by
// directory, with records in load order.
func CategoryBundles(records []collection.Record, generated string) []types.Bundle {
	byDir := make(map[string][]collection.Record)
	for _, r := range records {
		dir := r.Location.Partition
		if dir == "" {
			dir = types.PartitionFor(r.Personality.Category)
		}
		byDir[dir] = append(byDir[dir], r)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	bundles := make([]types.Bundle, 0, len(dirs))
	for _, dir := range dirs {
		members := stripped(byDir[dir])
		bundles = append(bundles, types.Bundle{
			Version:       types.ManifestVersion,
			Generated:     generated,
			Category:      dir,
			Categories:    categoriesIn(dir),
			Total:         len(members),
			Personalities: members,
		})
	}
	return bundles
}

// TagBundles returns one bundle for every tag carried by at least minCount records,
// sorted by tag. Records within a bundle are sorted by name.
func TagBundles(records []collection.Record, minCount int, generated string) []types.Bundle {
	if minCount <= 0 {
		minCount = DefaultMinTagCount
	}

	all := stripped(records)
	SortByName(all)

	byTag := make(map[string][]*types.Personality)
	for _, p := range all {
		for _, tag := range p.Tags {
			byTag[tag] = append(byTag[tag], p)
		}
	}

	tags := make([]string, 0, len(byTag))
	for tag, members := range byTag {
		if len(members) >= minCount {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)

	bundles := make([]types.Bundle, 0, len(tags))
	for _, tag := range tags {
		bundles = append(bundles, types.Bundle{
			Version:       types.ManifestVersion,
			Generated:     generated,
			Tag:           tag,
			Total:         len(byTag[tag]),
			Personalities: byTag[tag],
		})
	}
	return bundles
}

// categoriesIn lists the categories stored in a partition directory.
func categoriesIn(dir string) []string {
	var categories []string
	for category, d := range types.CategoryPartitions {
		if d == dir {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)
	return categories
}
