package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/zeekay/persona/internal/config"
)

const recordTemplate = `{
  "id": %q,
  "name": %q,
  "category": "scientist",
  "tags": ["scientist", "physics"],
  "ocean": {"openness": 80, "conscientiousness": 60, "extraversion": 45, "agreeableness": 70, "neuroticism": 30},
  "personality": {"summary": "Physicist", "philosophy": "Curiosity"},
  "quotes": ["Stay curious"]
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func writeRecord(t *testing.T, root, id, name string) {
	t.Helper()
	writeFile(t, filepath.Join(root, "scientists", id+".json"), fmt.Sprintf(recordTemplate, id, name))
}

// resetFlags restores every flag to its default so commands can run repeatedly
// in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command in-process and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.EnvRootDir, config.EnvSourceDir, config.EnvDistDir, config.EnvWorkers, config.EnvLogFile, config.EnvSchema} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvLogLevel, "error")

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}
