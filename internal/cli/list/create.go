package list

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// CreateCmd returns the list create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new list on a board",
		Long: `Create a new list at the end of a board.

Examples:
  tablero list create --board=0 --name="To Do"

  # Quiet mode for bash capture
  LIST=$(tablero list create --board=0 --name="To Do" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().String("name", "", "List name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (list position only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
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
		if fmtErr := formatter.Error("VALIDATION_ERROR", "list name cannot be empty"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if err := cliInstance.App.Boards.AddList(ctx, boardIdx, name); err != nil {
		if fmtErr := formatter.Error("LIST_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	boards, err := cliInstance.App.Boards.Boards(ctx)
	if err != nil {
		return err
	}
	position := len(boards[boardIdx].Lists) - 1

	if quietMode {
		fmt.Printf("%d\n", position)
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"board":    boardIdx,
			"position": position,
			"name":     strings.TrimSpace(name),
		})
	}

	fmt.Printf("✓ List '%s' created on board %d (position: %d)\n", strings.TrimSpace(name), boardIdx, position)
	return nil
}
