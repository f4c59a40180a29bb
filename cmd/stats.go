package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/countdrill/internal/history"
)

func newStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize recorded sessions per task kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := validFormat(format); err != nil {
				return err
			}

			b, err := openBackend(cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			summaries := history.Summarize(loadLedger(cmd, b.kv).Records())
			out := cmd.OutOrStdout()
			if format != formatTable {
				if summaries == nil {
					summaries = []history.KindSummary{}
				}
				return writeStructured(out, format, summaries)
			}

			if len(summaries) == 0 {
				fmt.Fprintln(out, "No sessions recorded yet.")
				return nil
			}
			statsTable(summaries).write(out)
			return nil
		},
	}
	statsCmd.Flags().String("format", formatTable, "Output format: table, json or yaml")
	return statsCmd
}

func statsTable(summaries []history.KindSummary) *table {
	t := &table{header: []string{"Kind", "Sessions", "Answered", "Correct", "Mean acc", "Best grade", "Avg time"}}
	for _, s := range summaries {
		t.add(
			s.Kind.Label(),
			strconv.Itoa(s.Sessions),
			strconv.Itoa(s.Attempts),
			strconv.Itoa(s.Correct),
			fmt.Sprintf("%d%%", s.MeanAccuracy),
			strconv.Itoa(s.BestGrade),
			formatMs(s.MeanTimeMs),
		)
	}
	return t
}
