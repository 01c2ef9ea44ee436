package user

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	userservice "github.com/thenoetrevino/tablero/internal/services/user"
)

// ProfileCmd returns the user profile subcommand
func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the signed-in account's profile",
		Long: `Update profile fields on the signed-in account. Only the flags
you pass are changed; the password is never touched here.

Examples:
  tablero user profile --bio="Shipping things"
  tablero user profile --full-name="Ada King" --phone="555-0100"
`,
		RunE: runProfile,
	}

	cmd.Flags().String("full-name", "", "Full name")
	cmd.Flags().String("username", "", "Username")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("bio", "", "Short bio")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runProfile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	var req userservice.UpdateProfileRequest
	if cmd.Flags().Changed("full-name") {
		v, _ := cmd.Flags().GetString("full-name")
		req.FullName = &v
	}
	if cmd.Flags().Changed("username") {
		v, _ := cmd.Flags().GetString("username")
		req.Username = &v
	}
	if cmd.Flags().Changed("email") {
		v, _ := cmd.Flags().GetString("email")
		req.Email = &v
	}
	if cmd.Flags().Changed("phone") {
		v, _ := cmd.Flags().GetString("phone")
		req.Phone = &v
	}
	if cmd.Flags().Changed("bio") {
		v, _ := cmd.Flags().GetString("bio")
		req.Bio = &v
	}

	updated, err := cliInstance.App.Users.UpdateProfile(ctx, req)
	if err != nil {
		if fmtErr := formatter.Error("PROFILE_UPDATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"user": map[string]interface{}{
				"id":       updated.ID,
				"fullName": updated.FullName,
				"username": updated.Username,
				"email":    updated.Email,
			},
		})
	}

	fmt.Printf("✓ Profile updated for %s\n", updated.Username)
	return nil
}
