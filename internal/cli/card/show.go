package card

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/detail"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show full card details",
		Long:  "Show the extended card document: labels, checklists, comments, attachments and activity.",
		RunE:  runShow,
	}

	cmd.Flags().Int("board", 0, "Board position (required)")
	cmd.Flags().Int("list", 0, "List position (required)")
	cmd.Flags().Int("card", 0, "Card position (required)")

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	boardIdx, _ := cmd.Flags().GetInt("board")
	listIdx, _ := cmd.Flags().GetInt("list")
	cardIdx, _ := cmd.Flags().GetInt("card")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

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

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"card":    d,
		})
	}

	status := " "
	if d.Completed {
		status = "x"
	}
	fmt.Printf("[%s] %s\n", status, d.Name)
	if d.Description != "" {
		fmt.Printf("\n%s\n", d.Description)
	}
	if d.StartDate != "" {
		fmt.Printf("\nStart: %s\n", d.StartDate)
	}
	if d.DueDate != "" {
		fmt.Printf("Due:   %s\n", d.DueDate)
	}
	if d.Location != "" {
		fmt.Printf("Where: %s\n", d.Location)
	}
	if len(d.Labels) > 0 {
		fmt.Printf("\nLabels:\n")
		for _, l := range d.Labels {
			fmt.Printf("  %s (%s)\n", l.Name, l.Color)
		}
	}
	for _, cl := range d.Checklists {
		fmt.Printf("\n%s (%d%%)\n", cl.Title, detail.Progress(cl.Items))
		for i, it := range cl.Items {
			marker := " "
			if it.Done {
				marker = "x"
			}
			fmt.Printf("  [%d] [%s] %s\n", i, marker, it.Text)
		}
	}
	if len(d.Attachments) > 0 {
		fmt.Printf("\nAttachments:\n")
		for _, a := range d.Attachments {
			fmt.Printf("  %s\n", a)
		}
	}
	if len(d.Comments) > 0 {
		fmt.Printf("\nComments:\n")
		for _, c := range d.Comments {
			fmt.Printf("  %s - %s\n", c.Time, c.Text)
		}
	}
	if len(d.Activity) > 0 {
		fmt.Printf("\nActivity:\n")
		for _, a := range d.Activity {
			fmt.Printf("  %s - %s\n", a.Time, a.Text)
		}
	}

	return nil
}
