package main

import (
	"github.com/spf13/cobra"

	"github.com/zeekay/persona/internal/observability"
	"github.com/zeekay/persona/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build distribution bundles from a collection",
	Long: `Writes all.json, one bundle per category partition, one bundle per tag that
enough records share, and the collection manifest.`,
	RunE: runBuild,
}

var (
	buildDir         string
	buildOut         string
	buildMinTagCount int
)

func init() {
	buildCmd.Flags().StringVarP(&buildDir, "dir", "d", "", "Collection root (default: config root_dir)")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Output directory (default: <dir>/dist)")
	buildCmd.Flags().IntVar(&buildMinTagCount, "min-tag-count", 0, "Records a tag needs for its own bundle (default: config min_tag_count)")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	dir := cfg.RootDir
	if buildDir != "" {
		dir = buildDir
	}
	out := cfg.DistDir
	if buildOut != "" {
		out = buildOut
	}
	minTagCount := cfg.MinTagCount
	if cmd.Flags().Changed("min-tag-count") {
		minTagCount = buildMinTagCount
	}

	result, err := pipeline.Build(cmd.Context(), pipeline.BuildOptions{
		RootDir:     dir,
		DistDir:     out,
		MinTagCount: minTagCount,
		Logger:      logger,
		OnProgress:  logProgress,
	})
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintBuildResult(result)
	return nil
}
