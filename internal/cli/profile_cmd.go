package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitplan/internal/cli/formatter"
	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/repository"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage stored user profiles",
	}
	cmd.AddCommand(
		newProfileSetCmd(app),
		newProfileShowCmd(app),
		newProfileDeleteCmd(app),
	)
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	flags := newProfileFlags()

	cmd := &cobra.Command{
		Use:   "set <user-id>",
		Short: "Create or update a profile from flags or an interactive form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			base := domain.UserProfile{ID: id}
			existing, err := app.Profiles.Get(ctx, id)
			switch {
			case err == nil:
				base = *existing
			case !errors.Is(err, repository.ErrNotFound):
				return err
			}

			var p domain.UserProfile
			switch {
			case flags.changed():
				p = flags.apply(base)
			case app.interactive():
				answers := answersFrom(base)
				if err := profileForm(&answers).Run(); err != nil {
					return err
				}
				if p, err = answers.profile(base); err != nil {
					return err
				}
			default:
				return fmt.Errorf("no profile fields given; pass flags such as --age or run in a terminal")
			}

			p.ID = id
			if err := app.Profiles.Upsert(ctx, &p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(&p))
			return nil
		},
	}

	flags.addTo(cmd.Flags())
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
			return nil
		},
	}
}
