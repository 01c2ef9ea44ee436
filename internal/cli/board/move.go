package board

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/tree"
)

// MoveCmd returns the board move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder a board",
		Long: `Move the board at one position to another. The destination is
interpreted after the board is removed, matching an in-app drag.

Examples:
  tablero board move --from=2 --to=0
`,
		RunE: runMove,
	}

	cmd.Flags().Int("from", 0, "Current board position (required)")
	cmd.Flags().Int("to", 0, "Destination position (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	src := tree.Location{Index: from}
	dst := tree.Location{Index: to}
	if err := cliInstance.App.Boards.Move(ctx, tree.KindBoard, src, dst); err != nil {
		if fmtErr := formatter.Error("BOARD_MOVE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"from": from, "to": to})
	}

	fmt.Printf("✓ Board moved from %d to %d\n", from, to)
	return nil
}
