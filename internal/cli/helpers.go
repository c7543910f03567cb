package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"qasmflow/internal/config"
)

// readSource returns the circuit text for a command. A missing argument or
// the literal "-" reads from the command's input stream.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", args[0], err)
	}
	return string(data), nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
