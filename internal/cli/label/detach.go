package label

import (
	"log"

	"github.com/spf13/cobra"
)

// DetachCmd returns the label detach subcommand
func DetachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detach",
		Short: "Detach a catalog label from a card",
		Long: `Detach a label from a card. A label not on the card is a no-op.

Examples:
  tablero label detach --id=1 --board=0 --list=0 --card=2
`,
		RunE: runDetach,
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

func runDetach(cmd *cobra.Command, args []string) error {
	return runToggle(cmd, false)
}
