package card

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// AttachCmd returns the card attach subcommand
func AttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Record an attachment on a card",
		Long: `Record a file reference on a card. Only the name is stored.

Examples:
  tablero card attach --board=0 --list=0 --card=2 --name="design.png"
`,
		RunE: runAttach,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("list", 0, "List position (required)")
	cmd.Flags().Int("card", 0, "Card position (required)")
	cmd.Flags().String("name", "", "Attachment name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runAttach(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
	listIdx, _ := cmd.Flags().GetInt("list")
	cardIdx, _ := cmd.Flags().GetInt("card")
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

	d, err := cliInstance.App.Cards.Open(ctx, boardIdx, listIdx, cardIdx)
	if err != nil {
		if fmtErr := formatter.Error("CARD_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	d.AddAttachment(name)

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
		return formatter.Success(map[string]interface{}{"attachments": len(d.Attachments)})
	}

	fmt.Printf("✓ Attachment '%s' recorded on '%s'\n", name, d.Name)
	return nil
}
