package cli

import (
	"fmt"
	"math"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"lukechampine.com/frand"

	"pegsolitaire/engine"
	"pegsolitaire/experiments/metrics"
	"pegsolitaire/meta"
)

// solitaire autoplay
func (a *app) Autoplay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autoplay",
		Short: "Play random games and report the scores",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`autoplay plays a batch of games where every move is
			picked at random from the legal ones, then prints the best
			and average number of pegs left.

			Game i of a batch is seeded with seed+i, so a batch run with
			an explicit --seed is reproducible. Without one a random
			seed is picked and logged.

			With --out the game and move records are written as CSV
			files into a new timestamped folder under that directory.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := a.cfg.Seed
			if seed == 0 {
				seed = frand.Uint64n(math.MaxUint64) + 1
			}
			log.Info().Uint64("seed", seed).Int("games", a.cfg.Games).Msg("autoplay")

			engines := make([]*engine.Engine, a.cfg.Games)
			summaries, err := engine.RunBatch(cmd.Context(), a.cfg.Games, func(i int) (*engine.Engine, error) {
				state, err := a.cfg.NewModel()
				if err != nil {
					return nil, err
				}
				engines[i] = engine.Local(state, engine.NewRandomPlayer(seed+uint64(i)))
				return engines[i], nil
			})
			if err != nil {
				return err
			}

			if out, _ := cmd.Flags().GetString("out"); out != "" {
				if err := writeRecords(out, seed, engines); err != nil {
					return err
				}
			}

			stats := engine.Aggregate(summaries)
			fmt.Fprintf(cmd.OutOrStdout(), "games: %d, best: %d, mean: %.2f, solved: %d\n",
				stats.Games, stats.Best, stats.Mean, stats.Solved)
			return nil
		},
	}

	cmd.Flags().IntP("games", "n", meta.DefaultGames, "Number of games to play")
	cmd.Flags().Uint64("seed", 0, "Seed of the first game, 0 for a random one")
	cmd.Flags().StringP("out", "o", "", "Write game and move records as CSV under this directory")
	return cmd
}

func writeRecords(root string, seed uint64, engines []*engine.Engine) error {
	w, err := metrics.NewWriter(root)
	if err != nil {
		return err
	}

	games := make([]metrics.GameRecord, 0, len(engines))
	moves := []metrics.MoveRecord{}
	for i, e := range engines {
		g, m := metrics.Records(i+1, seed+uint64(i), e)
		games = append(games, g)
		moves = append(moves, m...)
	}

	if err := w.WriteGameRecords(games); err != nil {
		return err
	}
	if err := w.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Str("dir", w.Dir()).Msg("stored records")
	return nil
}
