package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayrabia/planpal/internal/repository"
)

func newSignupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <username> <password>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.auth.Signup(cmd.Context(), args[0], args[1])
			if errors.Is(err, repository.ErrDuplicateKey) {
				return fmt.Errorf("username %q is already taken", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
}

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Check a username/password pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.auth.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if user == nil {
				// Same message for unknown user and wrong password.
				return fmt.Errorf("invalid username or password")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
}
