package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeekay/persona/internal/observability"
	"github.com/zeekay/persona/internal/pipeline"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate a directory of legacy files into a collection",
	Long: `Converts every legacy JSON file in the source directory, stores each record in
its category partition under the destination root and regenerates the manifest.
Existing record files are never overwritten.`,
	RunE: runMigrate,
}

var (
	migrateSource   string
	migrateDest     string
	migrateManifest string
)

func init() {
	migrateCmd.Flags().StringVarP(&migrateSource, "src", "s", "", "Directory of legacy JSON files (default: config source_dir)")
	migrateCmd.Flags().StringVarP(&migrateDest, "dest", "d", "", "Collection root (default: config root_dir)")
	migrateCmd.Flags().StringVar(&migrateManifest, "manifest", "", "Manifest path (default: <dest>/index/manifest.json)")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	src := cfg.SourceDir
	if migrateSource != "" {
		src = migrateSource
	}
	if src == "" {
		return fmt.Errorf("no source directory: set --src or source_dir")
	}
	dest := cfg.RootDir
	if migrateDest != "" {
		dest = migrateDest
	}

	report, err := pipeline.Migrate(cmd.Context(), pipeline.MigrateOptions{
		SourceDir:    src,
		DestDir:      dest,
		ManifestPath: migrateManifest,
		Logger:       logger,
		OnProgress:   logProgress,
	})
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintMigrateReport(report)
	return nil
}
