package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"pegsolitaire/engine"
	"pegsolitaire/game"
)

// solitaire play
func (a *app) Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play MOVE...",
		Short: "Play a sequence of moves",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`play applies the given moves in order to a fresh board
			and prints the board and peg count when it is done.

			Each move is written as from:to with positions in row,col
			form, for example 1,3:3,3. Play stops at the first illegal
			move and reports why it was rejected.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves := make([]game.Move, 0, len(args))
			for _, arg := range args {
				move, err := game.ParseMove(arg)
				if err != nil {
					return err
				}
				moves = append(moves, move)
			}

			state, err := a.cfg.NewModel()
			if err != nil {
				return err
			}
			e := engine.Local(state, engine.Scripted(moves))
			summary, err := e.Run(cmd.Context())
			if err != nil {
				return err
			}
			if summary.Moves < len(moves) {
				return fmt.Errorf("move %d: %w", summary.Moves+1, engine.ErrGameOver)
			}
			printSummary(cmd, summary)
			return nil
		},
	}
}

func printSummary(cmd *cobra.Command, s engine.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.Board)
	fmt.Fprintf(out, "pegs: %d, moves: %d", s.Score, s.Moves)
	if s.GameOver {
		fmt.Fprint(out, ", game over")
	}
	fmt.Fprintln(out)
}
