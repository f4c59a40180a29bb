package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/countdrill/internal/app"
	"github.com/abhisek/countdrill/internal/taskgen"
)

func newPlayCmd() *cobra.Command {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start a drill session",
		Long: `Start a drill session. With --kind and --tier the menu is skipped
and drilling starts immediately; Esc records the session and returns to
the menu.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kindVal, _ := cmd.Flags().GetString("kind")
			tierVal, _ := cmd.Flags().GetString("tier")

			opts := app.Options{SkipSplash: true}
			if kindVal == "" {
				return runApp(cmd, opts)
			}

			kind, err := taskgen.ParseKind(kindVal)
			if err != nil {
				return err
			}
			tier, err := taskgen.ParseTier(tierVal)
			if err != nil {
				return err
			}
			opts.Kind, opts.Tier = kind, tier
			return runApp(cmd, opts)
		},
	}

	playCmd.Flags().String("kind", "", "Task kind: "+kindList())
	playCmd.Flags().String("tier", string(taskgen.TierEasy), "Difficulty tier: easy, medium or hard")

	return playCmd
}
