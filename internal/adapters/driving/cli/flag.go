package cli

import (
	"github.com/spf13/cobra"
)

var flagCmd = &cobra.Command{
	Use:   "flag [login]",
	Short: "Mark a principal for processing on the next pass",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlag,
}

var unflagCmd = &cobra.Command{
	Use:   "unflag [login]",
	Short: "Clear a principal's processing flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnflag,
}

func init() {
	rootCmd.AddCommand(flagCmd)
	rootCmd.AddCommand(unflagCmd)
}

func runFlag(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	login := args[0]
	if err := a.store.PrincipalStore().SetFlag(ctx, login, true); err != nil {
		return err
	}

	cmd.Printf("Principal %s flagged for processing.\n", login)
	return nil
}

func runUnflag(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	login := args[0]
	if err := a.store.PrincipalStore().SetFlag(ctx, login, false); err != nil {
		return err
	}

	cmd.Printf("Principal %s unflagged.\n", login)
	return nil
}
