package card

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new card",
		Long: `Create a new card at the end of a list.

Examples:
  tablero card create --board=0 --list=0 --name="Fix login bug"

  # Quiet mode for bash capture
  CARD=$(tablero card create --board=0 --list=0 --name="Fix login bug" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("list", 0, "List position (required)")
	cmd.Flags().String("name", "", "Card name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (card position only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
	listIdx, _ := cmd.Flags().GetInt("list")
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
		if fmtErr := formatter.Error("VALIDATION_ERROR", "card name cannot be empty"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if err := cliInstance.App.Boards.AddCard(ctx, boardIdx, listIdx, name); err != nil {
		if fmtErr := formatter.Error("CARD_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	boards, err := cliInstance.App.Boards.Boards(ctx)
	if err != nil {
		return err
	}
	position := len(boards[boardIdx].Lists[listIdx].Cards) - 1

	if quietMode {
		fmt.Printf("%d\n", position)
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"board":    boardIdx,
			"list":     listIdx,
			"position": position,
			"name":     strings.TrimSpace(name),
		})
	}

	fmt.Printf("✓ Card '%s' created (position: %d)\n", strings.TrimSpace(name), position)
	return nil
}
