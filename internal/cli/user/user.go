// Package user holds all cli commands related to accounts and the
// signed-in session
//
// e.g., tablero user ...
package user

import (
	"github.com/spf13/cobra"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts and the session",
	}

	cmd.AddCommand(SignUpCmd())
	cmd.AddCommand(LogInCmd())
	cmd.AddCommand(LogOutCmd())
	cmd.AddCommand(WhoAmICmd())
	cmd.AddCommand(ProfileCmd())

	return cmd
}
