package list

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// ShowCmd returns the list show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the lists of a board",
		Long:  "Show every list on a board together with its cards.",
		RunE:  runShow,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (positions only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	boards, err := cliInstance.App.Boards.Boards(ctx)
	if err != nil {
		if fmtErr := formatter.Error("BOARD_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	if boardIdx < 0 || boardIdx >= len(boards) {
		if fmtErr := formatter.Error("NOT_FOUND", fmt.Sprintf("no board at position %d", boardIdx)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	board := boards[boardIdx]

	if quietMode {
		for i := range board.Lists {
			fmt.Printf("%d\n", i)
		}
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"board":   board.Name,
			"lists":   board.Lists,
		})
	}

	if len(board.Lists) == 0 {
		fmt.Printf("Board '%s' has no lists\n", board.Name)
		return nil
	}

	fmt.Printf("%s\n\n", board.Name)
	for i, l := range board.Lists {
		fmt.Printf("  [%d] %s (%d cards)\n", i, l.Name, len(l.Cards))
		for j, c := range l.Cards {
			marker := " "
			if c.Completed {
				marker = "x"
			}
			fmt.Printf("      [%d] [%s] %s\n", j, marker, c.Name)
		}
	}

	return nil
}
