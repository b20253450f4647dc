package cli

import (
	"github.com/spf13/cobra"

	"github.com/ayrabia/planpal/internal/config"
)

// New builds the planpal command tree.
func New(cfg config.Config) *cobra.Command {
	app := &App{cfg: cfg}

	root := &cobra.Command{
		Use:          "planpal",
		Short:        "Local single-user task planner",
		Long:         "planpal keeps tasks and categories in a local SQLite file and shows the most urgent work first.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
	}

	root.PersistentFlags().StringVar(&app.dbPath, "db", cfg.DatabasePath, "path to the SQLite database file")
	root.PersistentFlags().StringVar(&app.username, "user", cfg.DefaultUser, "account to operate on, created on first use")

	root.AddCommand(
		newSignupCmd(app),
		newLoginCmd(app),
		newCategoryCmd(app),
		newTaskCmd(app),
		newReportCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newRemindCmd(app),
	)
	return root
}
