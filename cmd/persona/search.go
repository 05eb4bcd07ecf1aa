package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeekay/persona/internal/catalog"
	"github.com/zeekay/persona/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search a built bundle by name, id or tag",
	Long: `Lists records whose id or name contains the query. With --tags, only records
carrying at least one of the comma-separated tags are listed. Without a query or
tags, the categories in the bundle are summarized.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

var (
	searchBundle string
	searchTags   string
)

func init() {
	searchCmd.Flags().StringVarP(&searchBundle, "bundle", "b", "", "Bundle file (default: <dist>/all.json)")
	searchCmd.Flags().StringVarP(&searchTags, "tags", "t", "", "Comma-separated tags to match")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := catalog.Load(bundlePath(searchBundle))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	tags := splitTags(searchTags)

	if query == "" && len(tags) == 0 {
		_, _ = fmt.Fprintf(out, "%d records\n", c.Count())
		counts := c.Categories()
		for _, name := range c.CategoryNames() {
			_, _ = fmt.Fprintf(out, "  %-24s %d\n", name, counts[name])
		}
		return nil
	}

	var matches []*types.Personality
	switch {
	case query != "" && len(tags) > 0:
		tagged := make(map[string]bool)
		for _, p := range c.FilterByTags(tags...) {
			tagged[p.ID] = true
		}
		for _, p := range c.Search(query) {
			if tagged[p.ID] {
				matches = append(matches, p)
			}
		}
	case query != "":
		matches = c.Search(query)
	default:
		matches = c.FilterByTags(tags...)
	}

	for _, p := range matches {
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", p.ID, p.Name, p.Category)
	}
	_, _ = fmt.Fprintf(out, "%d matches\n", len(matches))
	return nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
