package board

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board",
		Long: `Delete the board at the given position, including every list
and card on it. This cannot be undone.

Examples:
  tablero board delete --board=0
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
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

	if err := cliInstance.App.Boards.DeleteBoard(ctx, boardIdx); err != nil {
		if fmtErr := formatter.Error("BOARD_DELETE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"deleted": boardIdx})
	}

	fmt.Printf("✓ Board %d deleted\n", boardIdx)
	return nil
}
