package label

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a catalog label",
		Long: `Create a new label in the shared catalog. The color must be a
6-digit hex value.

Examples:
  tablero label create --name="Urgent" --color="#ef4444"

  # Quiet mode for bash capture
  LABEL=$(tablero label create --name="Urgent" --color="#ef4444" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Label name (required)")
	cmd.Flags().String("color", "", "Label color, e.g. #ef4444 (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	if err := cmd.MarkFlagRequired("color"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (id only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")
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

	created, err := cliInstance.App.Labels.Create(ctx, name, color)
	if err != nil {
		if fmtErr := formatter.Error("LABEL_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		fmt.Println(created.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"label": created})
	}

	fmt.Printf("✓ Label '%s' created (id: %s)\n", created.Name, created.ID)
	return nil
}
