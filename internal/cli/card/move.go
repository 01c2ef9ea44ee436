package card

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/tree"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card",
		Long: `Move a card to another position, list or board. The card is
removed first and the destination index applies to the list as it looks
after removal, matching an in-app drag.

Examples:
  # Reorder within a list
  tablero card move --board=0 --list=0 --card=2 --to-index=0

  # Move to another list on the same board
  tablero card move --board=0 --list=0 --card=2 --to-list=1 --to-index=0

  # Move to another board
  tablero card move --board=0 --list=0 --card=2 --to-board=1 --to-list=0 --to-index=0
`,
		RunE: runMove,
	}

	cmd.Flags().Int("board", 0, "Source board position (required)")
	cmd.Flags().Int("list", 0, "Source list position (required)")
	cmd.Flags().Int("card", 0, "Source card position (required)")
	cmd.Flags().Int("to-board", -1, "Destination board (defaults to source board)")
	cmd.Flags().Int("to-list", -1, "Destination list (defaults to source list)")
	cmd.Flags().Int("to-index", 0, "Destination index within the list")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
	listIdx, _ := cmd.Flags().GetInt("list")
	cardIdx, _ := cmd.Flags().GetInt("card")
	toBoard, _ := cmd.Flags().GetInt("to-board")
	toList, _ := cmd.Flags().GetInt("to-list")
	toIndex, _ := cmd.Flags().GetInt("to-index")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	if toBoard < 0 {
		toBoard = boardIdx
	}
	if toList < 0 {
		toList = listIdx
	}

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

	src := tree.Location{Board: boardIdx, List: listIdx, Index: cardIdx}
	dst := tree.Location{Board: toBoard, List: toList, Index: toIndex}
	if err := cliInstance.App.Boards.Move(ctx, tree.KindCard, src, dst); err != nil {
		if fmtErr := formatter.Error("CARD_MOVE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"from": src, "to": dst})
	}

	fmt.Printf("✓ Card moved to board %d, list %d, index %d\n", toBoard, toList, toIndex)
	return nil
}
