package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayrabia/planpal/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Bulk-create tasks from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			user, err := app.user(cmd.Context())
			if err != nil {
				return err
			}
			count, err := importer.Import(cmd.Context(), app.tasks, user, data)
			if err != nil {
				return fmt.Errorf("imported %d task(s), then failed: %w", count, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d task(s)\n", count)
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.yaml]",
		Short: "Write all tasks as YAML, to stdout by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.user(cmd.Context())
			if err != nil {
				return err
			}
			data, err := importer.Export(cmd.Context(), app.tasks, app.categories, user)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		},
	}
}
