package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/countdrill/internal/profile"
)

func newProfileCmd() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change who is drilling",
	}

	profileCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			p, ok := profile.Load(cmd.Context(), b.kv, cmd.ErrOrStderr())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Nobody is signed in.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.DisplayName())
			return nil
		},
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "set FIRST LAST",
		Short: "Sign in with a first and last name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.New(args[0], args[1])
			if err != nil {
				return err
			}
			return saveProfile(cmd, p)
		},
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "guest",
		Short: "Sign in as the guest user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveProfile(cmd, profile.Guest())
		},
	})

	profileCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			if err := profile.Clear(cmd.Context(), b.kv); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	})

	return profileCmd
}

func saveProfile(cmd *cobra.Command, p profile.Profile) error {
	b, err := openBackend(cmd)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := profile.Save(cmd.Context(), b.kv, p); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", p.DisplayName())
	return nil
}
