// Package main provides the persona CLI for validating, migrating and building
// personality record collections.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zeekay/persona/internal/config"
	"github.com/zeekay/persona/internal/logging"
	"github.com/zeekay/persona/internal/pipeline"
)

var (
	configPath string
	verbose    bool

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "persona",
	Short: "Personality record content pipeline",
	Long: `persona converts legacy personality data into canonical records, validates
collections of records, and builds distributable bundles.

Settings are read from --config (JSON or YAML), then PERSONA_* environment
variables (a .env file is loaded if present), then command flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup resolves the configuration and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	resolved := config.Default()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		resolved = loaded.MergeWithDefaults(config.Default())
	}
	if err := resolved.ApplyEnv(); err != nil {
		return err
	}
	if err := resolved.Validate(); err != nil {
		return err
	}
	cfg = resolved

	l, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Verbose: verbose})
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// logProgress forwards pipeline progress to the debug log.
func logProgress(event pipeline.ProgressEvent) {
	logger.Debug(event.Message,
		zap.String("step", event.Step),
		zap.String("category", event.Category),
		zap.String("run_id", event.RunID),
	)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
