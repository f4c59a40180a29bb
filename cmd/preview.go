package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/countdrill/internal/taskgen"
)

func newPreviewCmd() *cobra.Command {
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Print generated tasks for a kind and tier (no database)",
		Long: `Generate and print tasks for one kind and tier.

This is a stateless developer tool: nothing is stored and no profile is
needed. Useful for eyeballing task ranges and answers.`,
		RunE: runPreview,
	}

	previewCmd.Flags().String("kind", "", "Task kind (required): "+kindList())
	previewCmd.Flags().String("tier", string(taskgen.TierEasy), "Difficulty tier: easy, medium or hard")
	previewCmd.Flags().Int("count", 5, "Number of tasks to generate")
	previewCmd.Flags().Bool("answers", false, "Print the expected answer under each task")
	previewCmd.Flags().Uint64("seed", 0, "Random seed for reproducible output (0 picks one)")
	_ = previewCmd.MarkFlagRequired("kind")

	return previewCmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	kindVal, _ := cmd.Flags().GetString("kind")
	tierVal, _ := cmd.Flags().GetString("tier")
	count, _ := cmd.Flags().GetInt("count")
	answers, _ := cmd.Flags().GetBool("answers")
	seed, _ := cmd.Flags().GetUint64("seed")

	kind, err := taskgen.ParseKind(kindVal)
	if err != nil {
		return err
	}
	tier, err := taskgen.ParseTier(tierVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	var rnd taskgen.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewPCG(seed, seed))
	}
	gen := taskgen.New(rnd, taskgen.DefaultConfig())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s · %s (%s)\n\n", kind.Label(), tier.Label(), taskgen.Hint(kind, tier))

	for i := 1; i <= count; i++ {
		t, err := gen.Generate(kind, tier)
		if err != nil {
			fmt.Fprintf(out, "Task %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Fprintf(out, "── Task %d/%d ──\n", i, count)
		fmt.Fprintln(out, t.Text)
		if answers {
			fmt.Fprintf(out, "Answer: %s\n", t.Answer)
		}
		fmt.Fprintln(out)
	}
	return nil
}
