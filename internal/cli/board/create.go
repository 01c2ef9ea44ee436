package board

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board with a generated color palette.

Examples:
  # Simple board (human-readable output)
  tablero board create --name="Sprint 1"

  # JSON output for agents
  tablero board create --name="Sprint 1" --json

  # Quiet mode for bash capture
  BOARD=$(tablero board create --name="Sprint 1" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Board name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (board position only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	name, _ := cmd.Flags().GetString("name")
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

	if strings.TrimSpace(name) == "" {
		if fmtErr := formatter.Error("VALIDATION_ERROR", "board name cannot be empty"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if err := cliInstance.App.Boards.AddBoard(ctx, name); err != nil {
		if fmtErr := formatter.Error("BOARD_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	// New boards are appended, so the position is the new tail
	boards, err := cliInstance.App.Boards.Boards(ctx)
	if err != nil {
		return err
	}
	position := len(boards) - 1

	if quietMode {
		fmt.Printf("%d\n", position)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"board": map[string]interface{}{
				"position": position,
				"name":     strings.TrimSpace(name),
				"color":    boards[position].Color,
			},
		})
	}

	fmt.Printf("✓ Board '%s' created successfully (position: %d)\n", strings.TrimSpace(name), position)
	return nil
}
