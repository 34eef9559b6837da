package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show principals with their flag state and last outcome",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	principals, err := a.store.PrincipalStore().List(ctx)
	if err != nil {
		return err
	}

	if len(principals) == 0 {
		cmd.Println("No principals known yet. Use 'harvest flag <login>' to add one.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LOGIN\tFLAGGED\tSTATUS\tREPOS\tLAST PROCESSED\tMESSAGE")
	for _, p := range principals {
		flagged := "no"
		if p.ProcessingRequested {
			flagged = "yes"
		}
		repos := "-"
		if p.RepoCount != nil {
			repos = fmt.Sprintf("%d", *p.RepoCount)
		}
		last := "-"
		if p.LastProcessed != nil {
			last = p.LastProcessed.Local().Format(time.DateTime)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Login, flagged, p.Status, repos, last, p.StatusMessage)
	}
	return w.Flush()
}
