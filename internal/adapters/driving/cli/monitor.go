package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var monitorInterval time.Duration

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Continuously process flagged principals",
	Long: `Runs the pipeline in a loop, sleeping the configured interval between
passes. Continuous execution is opt-in; use 'harvest run' for a single pass.
Stop with Ctrl-C.`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().DurationVar(&monitorInterval, "interval", 0,
		"pause between passes (default from config, 1h)")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	interval := monitorInterval
	if interval <= 0 {
		interval = a.cfg.MonitorInterval
	}

	cmd.Printf("Monitoring every %s. Press Ctrl-C to stop.\n", interval)

	err = a.ingestor.Monitor(ctx, interval)
	if errors.Is(err, context.Canceled) {
		cmd.Println("Monitor stopped.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("monitor failed: %w", err)
	}
	return nil
}
