package collection

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zeekay/persona/internal/types"
)

// skippedDirs hold build output and tooling, never records.
var skippedDirs = map[string]bool{
	"dist":    true,
	"index":   true,
	"schemas": true,
	"scripts": true,
}

// skippedFiles are index files that live alongside records in a flat layout.
var skippedFiles = map[string]bool{
	"index.json":      true,
	"categories.json": true,
}

// Discover lists the record files under root. Every subdirectory except build and
// tooling directories is a partition; JSON files directly under root form the
// unnamed partition of a flat layout. Locations are sorted by partition, then file.
func Discover(root string) ([]types.Location, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, &LoadError{Path: root, Message: "failed to read collection directory", Cause: err}
	}

	var locations []types.Location
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if !de.IsDir() {
			if isRecordFile(name) && !skippedFiles[name] {
				locations = append(locations, types.Location{File: name})
			}
			continue
		}
		if skippedDirs[name] {
			continue
		}

		files, err := listRecordFiles(filepath.Join(root, name))
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			locations = append(locations, types.Location{Partition: name, File: f})
		}
	}

	sort.SliceStable(locations, func(i, j int) bool {
		if locations[i].Partition != locations[j].Partition {
			return locations[i].Partition < locations[j].Partition
		}
		return locations[i].File < locations[j].File
	})
	return locations, nil
}

func listRecordFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "failed to read partition directory", Cause: err}
	}

	var files []string
	for _, de := range dirEntries {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") || !isRecordFile(de.Name()) {
			continue
		}
		files = append(files, de.Name())
	}
	return files, nil
}

func isRecordFile(name string) bool {
	return strings.HasSuffix(name, ".json")
}

// PathFor returns the file path of a location under root.
func PathFor(root string, loc types.Location) string {
	return filepath.Join(root, loc.Partition, loc.File)
}

// LegacyFiles lists the JSON source files directly under dir, sorted by name.
func LegacyFiles(dir string) ([]string, error) {
	files, err := listRecordFiles(dir)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = filepath.Join(dir, f)
	}
	return paths, nil
}
