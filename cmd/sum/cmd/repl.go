package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/sum/internal/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Add numbers interactively",
	Long: `Add numbers interactively.

Type two operands; the sum updates as you type. Press tab to switch
fields, enter to keep a result, ctrl+l to clear, esc to quit.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := tui.Run(cmd.Context()); err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
