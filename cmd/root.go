package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli/board"
	"github.com/thenoetrevino/tablero/internal/cli/card"
	"github.com/thenoetrevino/tablero/internal/cli/label"
	"github.com/thenoetrevino/tablero/internal/cli/list"
	"github.com/thenoetrevino/tablero/internal/cli/user"
	"github.com/thenoetrevino/tablero/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - a terminal kanban board",
	Long: `Tablero is a local-first kanban board: boards hold lists, lists
hold cards, and every card carries its own labels, checklists, comments
and activity log. Running it with no arguments opens the board UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(list.ListCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(label.LabelCmd())
	rootCmd.AddCommand(user.UserCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
