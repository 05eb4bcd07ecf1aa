// Package catalog provides read-only lookup over a built collection bundle.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/zeekay/persona/internal/types"
)

// Catalog indexes records by id and by name.
type Catalog struct {
	records []*types.Personality
	byID    map[string]*types.Personality
	byName  map[string]*types.Personality
}

// New builds a catalog. When two records share an id or name, the first wins.
func New(records []*types.Personality) *Catalog {
	c := &Catalog{
		records: records,
		byID:    make(map[string]*types.Personality, len(records)),
		byName:  make(map[string]*types.Personality, len(records)),
	}
	for _, p := range records {
		if _, ok := c.byID[p.ID]; !ok {
			c.byID[p.ID] = p
		}
		key := strings.ToLower(p.Name)
		if _, ok := c.byName[key]; !ok {
			c.byName[key] = p
		}
	}
	return c
}

// Load reads a bundle file such as dist/all.json.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle %s: %w", path, err)
	}

	var bundle types.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("failed to parse bundle JSON: %w", err)
	}
	return New(bundle.Personalities), nil
}

// All returns every record in bundle order.
func (c *Catalog) All() []*types.Personality {
	return c.records
}

// Count returns the number of records.
func (c *Catalog) Count() int {
	return len(c.records)
}

// Get finds a record by id, or by case-insensitive name.
func (c *Catalog) Get(key string) (*types.Personality, bool) {
	if p, ok := c.byID[key]; ok {
		return p, true
	}
	p, ok := c.byName[strings.ToLower(key)]
	return p, ok
}

// FilterByTags returns the records carrying any of the given tags.
func (c *Catalog) FilterByTags(tags ...string) []*types.Personality {
	wanted := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		wanted[t] = struct{}{}
	}

	var out []*types.Personality
	for _, p := range c.records {
		for _, t := range p.Tags {
			if _, ok := wanted[t]; ok {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Search returns records whose id or name contains query, ignoring case.
func (c *Catalog) Search(query string) []*types.Personality {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []*types.Personality
	for _, p := range c.records {
		if strings.Contains(p.ID, q) || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Names returns every record name in bundle order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.records))
	for i, p := range c.records {
		names[i] = p.Name
	}
	return names
}

// Categories returns the record count per category.
func (c *Catalog) Categories() map[string]int {
	counts := make(map[string]int)
	for _, p := range c.records {
		counts[p.Category]++
	}
	return counts
}

// CategoryNames returns the categories present, sorted.
func (c *Catalog) CategoryNames() []string {
	counts := c.Categories()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
