package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitplan/internal/llm"
	"github.com/alexanderramin/fitplan/internal/service"
)

// App holds the services and terminal facts CLI commands depend on.
type App struct {
	Generation service.GenerationService
	Profiles   service.ProfileService
	History    service.PlanHistoryService
	Model      llm.LLMClient
	Log        zerolog.Logger

	// IsInteractive reports whether stdin is a terminal. Spinners and
	// wizards only run when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "fitplan" command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitplan",
		Short:         "Workout and diet plan generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newGenerateCmd(app),
		newProfileCmd(app),
		newPlansCmd(app),
		newClassifyCmd(),
	)
	return root
}
