package cli

import (
	"time"

	"github.com/spf13/cobra"

	"qasmflow/internal/qasm"
	"qasmflow/internal/tui"
)

func newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Step through a circuit's snapshots in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	cmd.Flags().Int("interval", 0, "autoplay interval in milliseconds")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
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

	interval, err := cmd.Flags().GetInt("interval")
	if err != nil {
		return err
	}
	if interval <= 0 {
		interval = cfg.Player.IntervalMS
	}

	return tui.Run(timeline, time.Duration(interval)*time.Millisecond)
}
