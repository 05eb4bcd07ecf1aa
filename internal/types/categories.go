package types

import "sort"

// DefaultCategory is assigned when a record carries no category.
const DefaultCategory = "special"

// Categories is the fixed set of allowed category tags.
var Categories = []string{
	"programmer", "philosopher", "scientist", "religious", "revolutionary",
	"writer", "artist", "musician", "filmmaker", "comedian", "architect",
	"athlete", "explorer", "activist", "tech_leader", "leader", "pioneer",
	"special", "systems", "master", "language-creator", "historian",
	"gaming", "blockchain", "media", "poet", "statesman", "mathematician",
	"composer",
}

var knownCategories = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Categories))
	for _, c := range Categories {
		m[c] = struct{}{}
	}
	return m
}()

// IsKnownCategory reports whether c is in the allowed category set.
func IsKnownCategory(c string) bool {
	_, ok := knownCategories[c]
	return ok
}

// CategoryPartitions maps a category to the directory its records are stored under.
var CategoryPartitions = map[string]string{
	"programmer":       "programmers",
	"philosopher":      "philosophers",
	"scientist":        "scientists",
	"religious":        "religious",
	"revolutionary":    "revolutionaries",
	"writer":           "writers",
	"artist":           "artists",
	"musician":         "artists",
	"filmmaker":        "artists",
	"comedian":         "artists",
	"composer":         "artists",
	"architect":        "architects",
	"athlete":          "athletes",
	"explorer":         "explorers",
	"activist":         "activists",
	"tech_leader":      "leaders",
	"leader":           "leaders",
	"statesman":        "leaders",
	"media":            "leaders",
	"pioneer":          "pioneers",
	"mathematician":    "scientists",
	"special":          "special",
	"systems":          "programmers",
	"master":           "programmers",
	"language-creator": "programmers",
	"gaming":           "programmers",
	"blockchain":       "programmers",
	"historian":        "writers",
	"poet":             "writers",
}

// PartitionFor returns the partition directory for a category.
func PartitionFor(category string) string {
	if dir, ok := CategoryPartitions[category]; ok {
		return dir
	}
	return CategoryPartitions[DefaultCategory]
}

// PartitionDirs returns the distinct partition directories, sorted.
func PartitionDirs() []string {
	seen := make(map[string]struct{})
	var dirs []string
	for _, dir := range CategoryPartitions {
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
