package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zeekay/persona/internal/catalog"
	"github.com/zeekay/persona/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show one record from a built bundle",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showBundle string

func init() {
	showCmd.Flags().StringVarP(&showBundle, "bundle", "b", "", "Bundle file (default: <dist>/all.json)")

	rootCmd.AddCommand(showCmd)
}

// bundlePath resolves the bundle a catalog command reads.
func bundlePath(flag string) string {
	if flag != "" {
		return flag
	}
	return filepath.Join(cfg.ResolvedDistDir(), "all.json")
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := catalog.Load(bundlePath(showBundle))
	if err != nil {
		return err
	}

	p, ok := c.Get(args[0])
	if !ok {
		return fmt.Errorf("no record with id or name %q", args[0])
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintPersonality(p)
	return nil
}
