package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitplan/internal/cli/formatter"
	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/generation"
)

func newClassifyCmd() *cobra.Command {
	var focus []string

	cmd := &cobra.Command{
		Use:   "classify [prompt...]",
		Short: "Show the plan type a prompt and day structure resolve to",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			days := make([]domain.WorkoutDay, 0, len(focus))
			for i, f := range focus {
				days = append(days, domain.WorkoutDay{Day: i + 1, FocusArea: strings.TrimSpace(f)})
			}

			out := cmd.OutOrStdout()
			if t, ok := generation.ClassifyPrompt(prompt); ok {
				fmt.Fprintf(out, "%s %s\n", formatter.Dim("prompt keyword:"), formatter.PlanTypeStyle(t).Render(string(t)))
				return nil
			}
			tally := generation.CountVotes(days)
			fmt.Fprint(out, formatter.FormatTally(tally, generation.Classify(prompt, days)))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&focus, "days", nil, "Comma-separated focus areas of an existing structure")
	return cmd
}
