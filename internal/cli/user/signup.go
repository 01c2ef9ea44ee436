package user

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	userservice "github.com/thenoetrevino/tablero/internal/services/user"
	sysuser "github.com/thenoetrevino/tablero/internal/user"
)

// SignUpCmd returns the user signup subcommand
func SignUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Long: `Create a local account. The new account is signed in
immediately and gets its own board data, separate from the guest boards.

Examples:
  tablero user signup --full-name="Ada Lovelace" --email="ada@example.com" --password=secret --confirm=secret
`,
		RunE: runSignUp,
	}

	cmd.Flags().String("full-name", "", "Full name (required)")
	cmd.Flags().String("username", sysuser.GetCurrentUsername(), "Username (defaults to the system username)")
	cmd.Flags().String("email", "", "Email address (required)")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("bio", "", "Short bio")
	cmd.Flags().String("password", "", "Password (required)")
	cmd.Flags().String("confirm", "", "Password confirmation (required)")
	if err := cmd.MarkFlagRequired("full-name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	if err := cmd.MarkFlagRequired("email"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	if err := cmd.MarkFlagRequired("password"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (user id only)")

	return cmd
}

func runSignUp(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fullName, _ := cmd.Flags().GetString("full-name")
	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	bio, _ := cmd.Flags().GetString("bio")
	password, _ := cmd.Flags().GetString("password")
	confirm, _ := cmd.Flags().GetString("confirm")
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

	created, err := cliInstance.App.Users.SignUp(ctx, userservice.SignUpRequest{
		FullName:        fullName,
		Username:        username,
		Email:           email,
		Phone:           phone,
		Bio:             bio,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		if fmtErr := formatter.Error("SIGNUP_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		fmt.Println(created.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"user": map[string]interface{}{
				"id":       created.ID,
				"fullName": created.FullName,
				"username": created.Username,
				"email":    created.Email,
			},
		})
	}

	fmt.Printf("✓ Account '%s' created, signed in as %s\n", created.Username, created.FullName)
	return nil
}
