package card

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update card details",
		Long: `Update the extended fields of a card. Only the flags you pass
are changed; date, location and completion changes are recorded in the
card's activity log.

Examples:
  tablero card update --board=0 --list=0 --card=2 --description="Steps to reproduce..."
  tablero card update --board=0 --list=0 --card=2 --due="3/15/2026, 9:00:00 AM"
  tablero card update --board=0 --list=0 --card=2 --completed
`,
		RunE: runUpdate,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("list", 0, "List position (required)")
	cmd.Flags().Int("card", 0, "Card position (required)")
	cmd.Flags().String("description", "", "Card description (markdown)")
	cmd.Flags().String("start", "", "Start date")
	cmd.Flags().String("due", "", "Due date")
	cmd.Flags().String("location", "", "Location")
	cmd.Flags().Bool("completed", false, "Mark the card complete")
	cmd.Flags().Bool("reopen", false, "Mark the card incomplete")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	d, err := cliInstance.App.Cards.Open(ctx, boardIdx, listIdx, cardIdx)
	if err != nil {
		if fmtErr := formatter.Error("CARD_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitCode(err))
	}

	if cmd.Flags().Changed("description") {
		text, _ := cmd.Flags().GetString("description")
		d.SetDescription(text)
	}
	if cmd.Flags().Changed("start") {
		date, _ := cmd.Flags().GetString("start")
		d.SetStartDate(date)
	}
	if cmd.Flags().Changed("due") {
		date, _ := cmd.Flags().GetString("due")
		d.SetDueDate(date)
	}
	if cmd.Flags().Changed("location") {
		loc, _ := cmd.Flags().GetString("location")
		d.SetLocation(loc)
	}
	if completed, _ := cmd.Flags().GetBool("completed"); completed {
		d.SetCompleted(true)
	}
	if reopen, _ := cmd.Flags().GetBool("reopen"); reopen {
		d.SetCompleted(false)
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
		return formatter.Success(map[string]interface{}{"board": boardIdx, "list": listIdx, "card": cardIdx})
	}

	fmt.Printf("✓ Card '%s' updated\n", d.Name)
	return nil
}
