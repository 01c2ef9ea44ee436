package label

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// AttachCmd returns the label attach subcommand
func AttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach a catalog label to a card",
		Long: `Attach a label to a card. A label already on the card is left
in place.

Examples:
  tablero label attach --id=1 --board=0 --list=0 --card=2
`,
		RunE: runAttach,
	}

	cmd.Flags().String("id", "", "Label id (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("list", 0, "List position (required)")
	cmd.Flags().Int("card", 0, "Card position (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runAttach(cmd *cobra.Command, args []string) error {
	return runToggle(cmd, true)
}

// runToggle drives both attach and detach: the draft's label toggle is
// symmetric, so each direction just skips the no-op case.
func runToggle(cmd *cobra.Command, attach bool) error {
	ctx := context.Background()

	id, _ := cmd.Flags().GetString("id")
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

	d, err := cliInstance.App.Cards.Open(ctx, boardIdx, listIdx, cardIdx)
	if err != nil {
		if fmtErr := formatter.Error("CARD_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if d.HasLabel(id) != attach {
		if err := cliInstance.App.Cards.ToggleLabel(ctx, d, id); err != nil {
			if fmtErr := formatter.Error("LABEL_TOGGLE_ERROR", err.Error()); fmtErr != nil {
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
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"label": id, "attached": attach})
	}

	if attach {
		fmt.Printf("✓ Label %s attached to '%s'\n", id, d.Name)
	} else {
		fmt.Printf("✓ Label %s detached from '%s'\n", id, d.Name)
	}
	return nil
}
