package user

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// WhoAmICmd returns the user whoami subcommand
func WhoAmICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE:  runWhoAmI,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (user id only)")

	return cmd
}

func runWhoAmI(cmd *cobra.Command, args []string) error {
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

	u, err := cliInstance.App.Users.Current(ctx)
	if err != nil {
		if fmtErr := formatter.Error("SESSION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if u == nil {
		if quietMode {
			fmt.Println("guest")
			return nil
		}
		if jsonOutput {
			return formatter.Success(map[string]interface{}{"guest": true})
		}
		fmt.Println("Not signed in (guest boards)")
		return nil
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
				"email":    u.Email,
			},
		})
	}

	fmt.Printf("%s (%s)\n", u.FullName, u.Username)
	if u.Email != "" {
		fmt.Printf("  Email: %s\n", u.Email)
	}
	if u.Phone != "" {
		fmt.Printf("  Phone: %s\n", u.Phone)
	}
	if u.Bio != "" {
		fmt.Printf("  Bio:   %s\n", u.Bio)
	}
	return nil
}
