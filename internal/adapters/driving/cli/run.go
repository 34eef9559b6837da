package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process all flagged principals once and exit",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.ingestor.ProcessAllMarked(ctx); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	cmd.Println("Pass complete.")
	return nil
}
