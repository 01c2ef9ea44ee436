package list

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/tree"
)

// MoveCmd returns the list move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder a list within its board",
		Long: `Move a list to a new position on the same board. The destination
is interpreted after the list is removed, matching an in-app drag.

Examples:
  tablero list move --board=0 --from=2 --to=0
`,
		RunE: runMove,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("from", 0, "Current list position (required)")
	cmd.Flags().Int("to", 0, "Destination position (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
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

	src := tree.Location{Board: boardIdx, Index: from}
	dst := tree.Location{Board: boardIdx, Index: to}
	if err := cliInstance.App.Boards.Move(ctx, tree.KindList, src, dst); err != nil {
		if fmtErr := formatter.Error("LIST_MOVE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"board": boardIdx, "from": from, "to": to})
	}

	fmt.Printf("✓ List moved from %d to %d on board %d\n", from, to, boardIdx)
	return nil
}
