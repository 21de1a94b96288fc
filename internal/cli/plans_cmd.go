package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitplan/internal/cli/formatter"
	"github.com/alexanderramin/fitplan/internal/intelligence"
)

func newPlansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Browse generated plan history",
	}
	cmd.AddCommand(
		newPlansListCmd(app),
		newPlansShowCmd(app),
	)
	return cmd
}

func newPlansListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's plans, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := app.History.ListByUser(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(recs, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum plans to show")
	return cmd
}

func newPlansShowCmd(app *App) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rec, err := app.History.Get(ctx, args[0])
			if err != nil {
				return err
			}
			plan, err := rec.Decode()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s  %s\n\n", formatter.SourceBadge(rec.Source),
				formatter.Dim(string(rec.Kind)), formatter.Dim(formatter.HumanTimestamp(rec.CreatedAt)))
			fmt.Fprint(out, formatter.FormatPlan(plan))

			if !trace {
				return nil
			}
			events, err := app.History.Events(ctx, rec.ID)
			if err != nil {
				return err
			}
			for _, e := range events {
				var ts []intelligence.Transition
				if err := json.Unmarshal(e.Transitions, &ts); err != nil {
					return fmt.Errorf("decoding transitions for event %s: %w", e.ID, err)
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatTransitions(ts))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Show the generation state transitions")
	return cmd
}
