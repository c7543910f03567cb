package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qasmflow/internal/emit"
	"qasmflow/internal/qasm"
)

func newGraphCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Parse a circuit and emit the snapshot timeline as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGraph,
	}
	cmd.Flags().StringP("output", "o", "", "write JSON to this file instead of stdout")
	cmd.Flags().Int("indent", -1, "indentation width, 0 for compact")
	return cmd
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	timeline, err := qasm.Parse(src)
	if err != nil {
		return err
	}

	indent, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return err
	}
	if indent < 0 {
		indent = cfg.Output.Indent
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.Output.Path
	}

	if output == "" {
		return emit.WriteJSON(cmd.OutOrStdout(), timeline, indent)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", output, err)
	}
	defer f.Close()

	if err := emit.WriteJSON(f, timeline, indent); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d snapshots to %s\n", timeline.Len(), output)
	return nil
}
