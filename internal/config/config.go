// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvRootDir   = "PERSONA_ROOT_DIR"
	EnvSourceDir = "PERSONA_SOURCE_DIR"
	EnvDistDir   = "PERSONA_DIST_DIR"
	EnvWorkers   = "PERSONA_WORKERS"
	EnvLogLevel  = "PERSONA_LOG_LEVEL"
	EnvLogFile   = "PERSONA_LOG_FILE"
	EnvSchema    = "PERSONA_SCHEMA_PATH"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	RootDir    string `json:"root_dir,omitempty" yaml:"root_dir,omitempty"`       // Collection root holding partition directories
	SourceDir  string `json:"source_dir,omitempty" yaml:"source_dir,omitempty"`   // Legacy source files to migrate
	DistDir    string `json:"dist_dir,omitempty" yaml:"dist_dir,omitempty"`       // Bundle output directory (default: <root>/dist)
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"` // Where to write the validation report

	// Validation
	Workers            int   `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0,lte=256"` // Parallel validation workers (0 = one per CPU)
	ShowWarnings       bool  `json:"show_warnings,omitempty" yaml:"show_warnings,omitempty"`              // Print warnings as well as errors
	RequirePersonality *bool `json:"require_personality,omitempty" yaml:"require_personality,omitempty"`  // Treat a missing personality block as an error
	SchemaCheck        bool  `json:"schema_check,omitempty" yaml:"schema_check,omitempty"`                // Also validate against the JSON Schema

	// Schema file replacing the embedded one, relative to the working directory or root_dir
	SchemaPath string `json:"schema_path,omitempty" yaml:"schema_path,omitempty"`

	// Build
	MinTagCount int `json:"min_tag_count,omitempty" yaml:"min_tag_count,omitempty" validate:"gte=0"` // Records a tag needs for its own bundle

	// Logging
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"` // Minimum log level
	LogFile  string `json:"log_file,omitempty" yaml:"log_file,omitempty"`                                                   // Rotated log file, in addition to stderr
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		RootDir:     ".",
		MinTagCount: 3,
		LogLevel:    "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from PERSONA_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvRootDir); v != "" {
		c.RootDir = v
	}
	if v := os.Getenv(EnvSourceDir); v != "" {
		c.SourceDir = v
	}
	if v := os.Getenv(EnvDistDir); v != "" {
		c.DistDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvSchema); v != "" {
		c.SchemaPath = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate directories exist (if specified)
	if c.RootDir != "" {
		if _, err := os.Stat(c.RootDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: root directory not found: %s", c.RootDir)
		}
	}
	if c.SourceDir != "" {
		if _, err := os.Stat(c.SourceDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: source directory not found: %s", c.SourceDir)
		}
	}

	return nil
}

// RequirePersonalityOrDefault resolves the optional RequirePersonality setting.
func (c *Config) RequirePersonalityOrDefault() bool {
	if c.RequirePersonality == nil {
		return true
	}
	return *c.RequirePersonality
}

// ResolvedDistDir returns DistDir, or dist under the root when unset.
func (c *Config) ResolvedDistDir() string {
	if c.DistDir != "" {
		return c.DistDir
	}
	return filepath.Join(c.RootDir, "dist")
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.RootDir == "" {
		result.RootDir = defaults.RootDir
	}
	if result.SourceDir == "" {
		result.SourceDir = defaults.SourceDir
	}
	if result.DistDir == "" {
		result.DistDir = defaults.DistDir
	}
	if result.ReportPath == "" {
		result.ReportPath = defaults.ReportPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.MinTagCount == 0 {
		result.MinTagCount = defaults.MinTagCount
	}

	if result.RequirePersonality == nil {
		result.RequirePersonality = defaults.RequirePersonality
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
