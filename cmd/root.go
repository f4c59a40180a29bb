package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/countdrill/internal/app"
	"github.com/abhisek/countdrill/internal/config"
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "countdrill",
		Short:        "Terminal drills for number bases, units and mental arithmetic",
		Long:         "countdrill: timed terminal drills for numeral systems, data units, arithmetic, squares and Python output.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, app.Options{})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/countdrill/config.toml)")
	pf.String("db", "", "Path to SQLite database file (overrides COUNTDRILL_DB env var)")
	pf.String("backend", config.BackendSQLite, "Storage backend: sqlite or redis")
	pf.String("redis-addr", "", "Redis address for the redis backend")
	pf.String("redis-prefix", "", "Key prefix for the redis backend")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// configPath returns the --config flag or the default XDG path.
func configPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

// resolveSettings merges settings with the precedence flags >
// COUNTDRILL_DB env > config file > defaults.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	fileCfg, err := config.LoadConfig(configPath(cmd))
	if err != nil {
		return config.Settings{}, fmt.Errorf("load config: %w", err)
	}
	s := config.Defaults().Apply(fileCfg)

	if p := os.Getenv("COUNTDRILL_DB"); p != "" {
		s.DB = p
	}
	applyStringFlag(cmd, "db", &s.DB)
	applyStringFlag(cmd, "backend", &s.Backend)
	applyStringFlag(cmd, "redis-addr", &s.RedisAddr)
	applyStringFlag(cmd, "redis-prefix", &s.RedisPrefix)

	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

func applyStringFlag(cmd *cobra.Command, name string, target *string) {
	if !cmd.Flags().Changed(name) {
		return
	}
	if v, err := cmd.Flags().GetString(name); err == nil {
		*target = v
	}
}
