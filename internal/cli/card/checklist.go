package card

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/detail"
)

// ChecklistCmd returns the checklist parent subcommand
func ChecklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Manage a card's checklists",
	}

	cmd.AddCommand(checklistAddCmd())
	cmd.AddCommand(checklistToggleCmd())

	return cmd
}

func checklistAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to a card's checklist",
		Long: `Append an unchecked item to a checklist.

Examples:
  tablero card checklist add --board=0 --list=0 --card=2 --text="Write tests"
`,
		RunE: runChecklistAdd,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("list", 0, "List position (required)")
	cmd.Flags().Int("card", 0, "Card position (required)")
	cmd.Flags().String("checklist", detail.DefaultChecklistID, "Checklist id")
	cmd.Flags().String("text", "", "Item text (required)")
	if err := cmd.MarkFlagRequired("text"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runChecklistAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
	listIdx, _ := cmd.Flags().GetInt("list")
	cardIdx, _ := cmd.Flags().GetInt("card")
	checklistID, _ := cmd.Flags().GetString("checklist")
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

	if err := d.AddChecklistItem(checklistID, text); err != nil {
		if fmtErr := formatter.Error("CHECKLIST_ERROR", err.Error()); fmtErr != nil {
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
		return formatter.Success(map[string]interface{}{"checklist": checklistID})
	}

	fmt.Printf("✓ Checklist item added to '%s'\n", d.Name)
	return nil
}

func checklistToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Toggle a checklist item, or the whole checklist",
		Long: `Toggle one checklist item by index. Without --item the whole
checklist flips: all items are completed unless every item is already
done, in which case all items are reopened.

Examples:
  tablero card checklist toggle --board=0 --list=0 --card=2 --item=1
  tablero card checklist toggle --board=0 --list=0 --card=2
`,
		RunE: runChecklistToggle,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("list", 0, "List position (required)")
	cmd.Flags().Int("card", 0, "Card position (required)")
	cmd.Flags().String("checklist", detail.DefaultChecklistID, "Checklist id")
	cmd.Flags().Int("item", -1, "Item index (omit to toggle the whole checklist)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runChecklistToggle(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
	listIdx, _ := cmd.Flags().GetInt("list")
	cardIdx, _ := cmd.Flags().GetInt("card")
	checklistID, _ := cmd.Flags().GetString("checklist")
	item, _ := cmd.Flags().GetInt("item")
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

	if item >= 0 {
		err = d.ToggleChecklistItem(checklistID, item)
	} else {
		err = d.ToggleChecklist(checklistID)
	}
	if err != nil {
		if fmtErr := formatter.Error("CHECKLIST_ERROR", err.Error()); fmtErr != nil {
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
		progress := 0
		for _, cl := range d.Checklists {
			if cl.ID == checklistID {
				progress = detail.Progress(cl.Items)
			}
		}
		return formatter.Success(map[string]interface{}{"checklist": checklistID, "progress": progress})
	}

	fmt.Printf("✓ Checklist updated on '%s'\n", d.Name)
	return nil
}
