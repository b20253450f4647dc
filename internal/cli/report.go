package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show task counts per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.user(cmd.Context())
			if err != nil {
				return err
			}
			report, err := app.reports.Render(cmd.Context(), user)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			return nil
		},
	}
}
