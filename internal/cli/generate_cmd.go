package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitplan/internal/cli/formatter"
	"github.com/alexanderramin/fitplan/internal/contract"
	"github.com/alexanderramin/fitplan/internal/domain"
)

func newGenerateCmd(app *App) *cobra.Command {
	var userID, kind, focus, existingPath string
	var asJSON, trace bool
	profile := newProfileFlags()

	cmd := &cobra.Command{
		Use:   "generate [prompt...]",
		Short: "Generate a workout plan, diet plan or single session",
		Example: `  fitplan generate --user u1 "I want a 5 day strength training plan"
  fitplan generate --user u1 --kind diet "high protein please"
  fitplan generate --kind session --focus legs --age 30 --height 180 --weight 80 --target 75 "quick home workout"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inline, err := profile.inline()
			if err != nil {
				return err
			}
			req := contract.GenerateRequest{
				PromptText: strings.Join(args, " "),
				Profile:    inline,
				UserID:     userID,
				Kind:       domain.PlanKind(kind),
				FocusArea:  focus,
			}
			if existingPath != "" {
				existing, err := readWorkoutPlan(existingPath)
				if err != nil {
					return err
				}
				req.ExistingStructure = existing
			}

			res, err := runWithProgress(cmd.Context(), app.interactive() && !asJSON, "Generating plan",
				func(ctx context.Context) (*contract.GenerationResult, error) {
					return app.Generation.Generate(ctx, "", req)
				})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprint(out, formatter.FormatResult(res, trace))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Stored profile to generate for")
	cmd.Flags().StringVar(&kind, "kind", string(domain.KindWorkout), "Plan kind: workout, diet, session")
	cmd.Flags().StringVar(&focus, "focus", "", "Focus area for a session")
	cmd.Flags().StringVar(&existingPath, "existing", "", "JSON file with a workout plan structure to keep")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw result as JSON")
	cmd.Flags().BoolVar(&trace, "trace", false, "Show the generation state transitions")
	profile.addTo(cmd.Flags())

	return cmd
}

func readWorkoutPlan(path string) (*domain.WorkoutPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading existing structure: %w", err)
	}
	var plan domain.WorkoutPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing existing structure %s: %w", path, err)
	}
	return &plan, nil
}
