package cli

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge store totals and category breakdown",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	knowledge := a.store.KnowledgeStore()

	total, err := knowledge.Count(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("Entries: %d\n", total)

	categories, err := knowledge.CategoryBreakdown(ctx)
	if err != nil {
		return err
	}
	if len(categories) > 0 {
		cmd.Println("\nCategory breakdown:")
		for _, c := range categories {
			cmd.Printf("  %-20s %d\n", c.Category, c.Count)
		}
	}
	return nil
}
