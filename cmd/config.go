package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/countdrill/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the config file location",
		Long: `Print the config file path. When the file does not exist a commented
template is printed; --init writes it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(cmd)
			out := cmd.OutOrStdout()

			if initCfg, _ := cmd.Flags().GetBool("init"); initCfg {
				if err := config.WriteTemplate(path); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s\n", path)
				return nil
			}

			fmt.Fprintln(out, path)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				fmt.Fprintf(out, "\n(not found; run `countdrill config --init` to create it)\n\n%s", config.Template)
			}
			return nil
		},
	}
	configCmd.Flags().Bool("init", false, "Write a commented config template")
	return configCmd
}
