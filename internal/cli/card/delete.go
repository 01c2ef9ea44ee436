package card

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a card",
		Long: `Delete the card at the given position. This cannot be undone.

Examples:
  tablero card delete --board=0 --list=0 --card=2
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("list", 0, "List position (required)")
	cmd.Flags().Int("card", 0, "Card position (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
	listIdx, _ := cmd.Flags().GetInt("list")
	cardIdx, _ := cmd.Flags().GetInt("card")
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

	if err := cliInstance.App.Boards.DeleteCard(ctx, boardIdx, listIdx, cardIdx); err != nil {
		if fmtErr := formatter.Error("CARD_DELETE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"board": boardIdx, "list": listIdx, "deleted": cardIdx})
	}

	fmt.Printf("✓ Card %d deleted from list %d\n", cardIdx, listIdx)
	return nil
}
