package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage task categories",
	}
	cmd.AddCommand(newCategoryAddCmd(app), newCategoryListCmd(app), newCategoryRmCmd(app))
	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.user(cmd.Context())
			if err != nil {
				return err
			}
			var colorPtr *string
			if color != "" {
				colorPtr = &color
			}
			category, err := app.categories.Create(cmd.Context(), user, args[0], colorPtr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %s (id %d)\n", category.Name, category.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "optional color, e.g. #ff8800")
	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.user(cmd.Context())
			if err != nil {
				return err
			}
			categories, err := app.categories.List(cmd.Context(), user)
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories yet.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOLOR")
			for _, c := range categories {
				color := ""
				if c.Color != nil {
					color = *c.Color
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, color)
			}
			return w.Flush()
		},
	}
}

func newCategoryRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category, keeping its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.categories.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %d\n", id)
			return nil
		},
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
