package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/ayrabia/planpal/internal/service"
)

func newRemindCmd(app *App) *cobra.Command {
	var at string
	var every time.Duration
	var once bool
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print overdue and due-today tasks, optionally on a schedule",
		Long:  "With --once the summary is printed and the command exits. Otherwise it keeps running and prints the summary every interval, or daily at the --at time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.user(ctx)
			if err != nil {
				return err
			}

			printSummary := func() {
				summary, err := app.reminders.DueSummary(ctx, user, time.Now())
				if err != nil {
					log.Printf("reminder: %v", err)
					return
				}
				if summary == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing due.")
					return
				}
				fmt.Fprint(cmd.OutOrStdout(), summary)
			}

			if once {
				printSummary()
				return nil
			}

			scheduler := service.NewSchedulerService(time.Local)
			if at != "" {
				if _, err := scheduler.ScheduleDaily(at, printSummary); err != nil {
					return err
				}
			} else {
				if every <= 0 {
					every = app.cfg.RemindInterval
				}
				if _, err := scheduler.ScheduleInterval(every, printSummary); err != nil {
					return err
				}
			}

			printSummary()
			scheduler.Start()
			defer scheduler.Stop()
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "run daily at this time, HH:MM")
	cmd.Flags().DurationVar(&every, "every", 0, "run every interval, e.g. 2h (default from config)")
	cmd.Flags().BoolVar(&once, "once", false, "print once and exit")
	return cmd
}
