package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pegsolitaire/engine"
	"pegsolitaire/game"
)

// solitaire solve
func (a *app) Solve() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Replay a known solution of the English board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := game.NewModel(game.Cross, 3)
			if err != nil {
				return err
			}
			solution := engine.CrossSolution()
			e := engine.Local(state, engine.Scripted(solution))
			summary, err := e.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, strings.Join(moveStrings(solution), " "))
			printSummary(cmd, summary)
			return nil
		},
	}
}
