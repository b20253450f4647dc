package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ayrabia/planpal/internal/model"
	"github.com/ayrabia/planpal/internal/service"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskReopenCmd(app),
		newTaskRmCmd(app),
	)
	return cmd
}

// taskFlags binds the mutable task fields to command flags.
type taskFlags struct {
	description string
	category    string
	due         string
	priority    string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.description, "desc", "d", "", "task description")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category name, created on first use")
	cmd.Flags().StringVar(&f.due, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "Low, Medium or High")
}

func (f *taskFlags) input(title string) (service.TaskInput, error) {
	input := service.TaskInput{
		Title:        title,
		Description:  f.description,
		CategoryName: f.category,
		Priority:     model.Priority(f.priority),
	}
	if f.due != "" {
		due, err := model.ParseDate(f.due)
		if err != nil {
			return service.TaskInput{}, err
		}
		input.DueDate = &due
	}
	return input, nil
}

func newTaskAddCmd(app *App) *cobra.Command {
	var flags taskFlags
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.user(cmd.Context())
			if err != nil {
				return err
			}
			input, err := flags.input(args[0])
			if err != nil {
				return err
			}
			task, err := app.tasks.Create(cmd.Context(), user, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", task.ID, task.Title)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var category string
	var uncategorized bool
	var dueBy string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, most urgent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.user(ctx)
			if err != nil {
				return err
			}

			var tasks []model.Task
			switch {
			case dueBy != "":
				due, err := model.ParseDate(dueBy)
				if err != nil {
					return err
				}
				tasks, err = app.tasks.ListDueBy(ctx, user, due)
				if err != nil {
					return err
				}
			case uncategorized:
				tasks, err = app.tasks.ListByCategory(ctx, user, "")
				if err != nil {
					return err
				}
			case category != "":
				tasks, err = app.tasks.ListByCategory(ctx, user, category)
				if err != nil {
					return err
				}
			default:
				tasks, err = app.tasks.List(ctx, user)
				if err != nil {
					return err
				}
			}
			return printTasks(ctx, cmd, app, user, tasks)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only tasks in this category")
	cmd.Flags().BoolVar(&uncategorized, "uncategorized", false, "only tasks without a category")
	cmd.Flags().StringVar(&dueBy, "due-by", "", "only open tasks due on or before this date, YYYY-MM-DD")
	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			task, err := app.tasks.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Task %d: %s\n", task.ID, task.Title)
			if task.Description != "" {
				fmt.Fprintf(out, "  %s\n", task.Description)
			}
			fmt.Fprintf(out, "  priority: %s  status: %s\n", task.Priority, task.Status)
			if task.DueDate != nil {
				fmt.Fprintf(out, "  due: %s\n", task.DueDate)
			}
			fmt.Fprintf(out, "  created: %s  updated: %s\n", task.CreatedAt, task.UpdatedAt)
			if task.CompletedAt != nil {
				fmt.Fprintf(out, "  completed: %s\n", task.CompletedAt)
			}
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var flags taskFlags
	var title string
	var clearCategory, clearDue bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a task's fields",
		Long:  "Flags that are not given keep the current value. Status and timestamps are never touched here; use done/reopen.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := app.user(ctx)
			if err != nil {
				return err
			}
			current, err := app.tasks.Get(ctx, id)
			if err != nil {
				return err
			}

			input := service.TaskInput{
				Title:       current.Title,
				Description: current.Description,
				CategoryID:  current.CategoryID,
				DueDate:     current.DueDate,
				Priority:    current.Priority,
			}
			if cmd.Flags().Changed("title") {
				input.Title = title
			}
			if cmd.Flags().Changed("desc") {
				input.Description = flags.description
			}
			if cmd.Flags().Changed("priority") {
				input.Priority = model.Priority(flags.priority)
			}
			if cmd.Flags().Changed("category") {
				input.CategoryID = nil
				input.CategoryName = flags.category
			}
			if clearCategory {
				input.CategoryID = nil
				input.CategoryName = ""
			}
			if cmd.Flags().Changed("due") {
				due, err := model.ParseDate(flags.due)
				if err != nil {
					return err
				}
				input.DueDate = &due
			}
			if clearDue {
				input.DueDate = nil
			}

			task, err := app.tasks.Update(ctx, user, id, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d: %s\n", task.ID, task.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	flags.register(cmd)
	cmd.Flags().BoolVar(&clearCategory, "no-category", false, "remove the category reference")
	cmd.Flags().BoolVar(&clearDue, "no-due", false, "remove the due date")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			task, err := app.tasks.Complete(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done: %s (completed %s)\n", task.Title, task.CompletedAt)
			return nil
		},
	}
}

func newTaskReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <id>",
		Short: "Put a completed task back to Todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			task, err := app.tasks.Reopen(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reopened: %s\n", task.Title)
			return nil
		},
	}
}

func newTaskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.tasks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
			return nil
		},
	}
}

func printTasks(ctx context.Context, cmd *cobra.Command, app *App, user *model.User, tasks []model.Task) error {
	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
		return nil
	}

	categories, err := app.categories.List(ctx, user)
	if err != nil {
		return err
	}
	catNames := make(map[uint]string, len(categories))
	for _, c := range categories {
		catNames[c.ID] = c.Name
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDUE\tPRIORITY\tSTATUS")
	for _, t := range tasks {
		category := ""
		if t.CategoryID != nil {
			category = catNames[*t.CategoryID]
		}
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, category, due, t.Priority, t.Status)
	}
	return w.Flush()
}
