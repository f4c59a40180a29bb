package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/countdrill/internal/profile"
)

func newResetCmd() *cobra.Command {
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all history and sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return errors.New("reset deletes all recorded sessions and the profile; pass --yes to confirm")
			}

			b, err := openBackend(cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			ctx := cmd.Context()
			if err := loadLedger(cmd, b.kv).Clear(ctx); err != nil {
				return err
			}
			if err := profile.Clear(ctx, b.kv); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History and profile deleted.")
			return nil
		},
	}
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all data")
	return resetCmd
}
