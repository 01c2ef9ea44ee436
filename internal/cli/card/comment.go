package card

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// CommentCmd returns the card comment subcommand
func CommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Add a comment to a card",
		Long: `Append a timestamped comment to a card. The comment is also
recorded in the card's activity log.

Examples:
  tablero card comment --board=0 --list=0 --card=2 --text="Blocked on API review"
`,
		RunE: runComment,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("list", 0, "List position (required)")
	cmd.Flags().Int("card", 0, "Card position (required)")
	cmd.Flags().String("text", "", "Comment text (required)")
	if err := cmd.MarkFlagRequired("text"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runComment(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
	listIdx, _ := cmd.Flags().GetInt("list")
	cardIdx, _ := cmd.Flags().GetInt("card")
	text, _ := cmd.Flags().GetString("text")
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

	d, err := cliInstance.App.Cards.Open(ctx, boardIdx, listIdx, cardIdx)
	if err != nil {
		if fmtErr := formatter.Error("CARD_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if err := d.AddComment(text); err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if err := cliInstance.App.Cards.Save(ctx, boardIdx, listIdx, cardIdx, d); err != nil {
		if fmtErr := formatter.Error("CARD_UPDATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"comments": len(d.Comments)})
	}

	fmt.Printf("✓ Comment added to '%s'\n", d.Name)
	return nil
}
