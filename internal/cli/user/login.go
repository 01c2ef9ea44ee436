package user

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// LogInCmd returns the user login subcommand
func LogInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to an account",
		Long: `Sign in with an email address or username. The signed-in
account's boards replace the guest boards until logout.

Examples:
  tablero user login --user="ada@example.com" --password=secret
  tablero user login --user=ada --password=secret
`,
		RunE: runLogIn,
	}

	cmd.Flags().String("user", "", "Email address or username (required)")
	cmd.Flags().String("password", "", "Password (required)")
	if err := cmd.MarkFlagRequired("user"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	if err := cmd.MarkFlagRequired("password"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (user id only)")

	return cmd
}

func runLogIn(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	identifier, _ := cmd.Flags().GetString("user")
	password, _ := cmd.Flags().GetString("password")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	u, err := cliInstance.App.Users.LogIn(ctx, identifier, password)
	if err != nil {
		if fmtErr := formatter.Error("LOGIN_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		fmt.Println(u.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"user": map[string]interface{}{
				"id":       u.ID,
				"fullName": u.FullName,
				"username": u.Username,
			},
		})
	}

	fmt.Printf("✓ Signed in as %s\n", u.FullName)
	return nil
}
