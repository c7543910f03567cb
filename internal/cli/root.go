package cli

import (
	"github.com/spf13/cobra"

	"qasmflow/internal/config"
)

// NewRootCommand builds the qasmflow command tree.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "qasmflow",
		Short:        "Turn OpenQASM circuits into step-by-step dependency graphs",
		Long:         "qasmflow parses OpenQASM 2.0 and 3.0 source and records a dependency-graph snapshot after every gate statement, ready for JSON export or interactive playback.",
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", config.DefaultPath, "config file path")

	root.AddCommand(newGraphCommand())
	root.AddCommand(newTokensCommand())
	root.AddCommand(newPlayCommand())
	return root
}
