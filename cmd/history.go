package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/countdrill/internal/history"
)

func newHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent drill sessions",
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

			records := loadLedger(cmd, b.kv).Records()
			out := cmd.OutOrStdout()
			if format != formatTable {
				return writeStructured(out, format, records)
			}

			if len(records) == 0 {
				fmt.Fprintln(out, "No sessions recorded yet.")
				return nil
			}
			historyTable(records).write(out)
			fmt.Fprintf(out, "\n%d sessions\n", len(records))
			return nil
		},
	}
	historyCmd.Flags().String("format", formatTable, "Output format: table, json or yaml")

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBackend(cmd)
			if err != nil {
				return err
			}
			defer b.Close()

			if err := loadLedger(cmd, b.kv).Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})

	return historyCmd
}

// historyTable lays out records newest first, as the ledger stores them.
func historyTable(records []history.Record) *table {
	t := &table{header: []string{"Date", "Kind", "Tier", "Correct", "Acc", "Grade", "Avg", "User"}}
	for _, r := range records {
		t.add(
			tableDate(r),
			r.Kind().Label(),
			r.Tier().Label(),
			fmt.Sprintf("%d/%d", r.Correct, r.Total),
			fmt.Sprintf("%d%%", r.Accuracy),
			strconv.Itoa(r.Grade),
			formatMs(r.AvgTime),
			r.UserName,
		)
	}
	return t
}

// tableDate shows a record's date in sortable form, falling back to the
// stored text when it does not parse.
func tableDate(r history.Record) string {
	if t, ok := r.Time(); ok {
		return t.Format("2006-01-02 15:04")
	}
	return r.Date
}
