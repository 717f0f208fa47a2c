package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"pegsolitaire/game"
)

// solitaire show
func (a *app) Show() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the starting board and its legal moves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := a.cfg.NewModel()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, state.Render())
			fmt.Fprintf(out, "%v, arm %d, pegs: %d\n", state.Shape(), state.Arm(), state.Score())
			for _, m := range moveStrings(state.LegalMoves()) {
				fmt.Fprintln(out, m)
			}
			return nil
		},
	}
}

// moveStrings writes moves in the from:to form play accepts.
func moveStrings(moves []game.Move) []string {
	return lo.Map(moves, func(m game.Move, _ int) string {
		return fmt.Sprintf("%d,%d:%d,%d", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
	})
}
