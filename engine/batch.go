package engine

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"pegsolitaire/meta"
)

// RunBatch plays n independent games concurrently. newGame builds the i-th
// engine; each game owns its own state.
func RunBatch(ctx context.Context, n int, newGame func(i int) (*Engine, error)) ([]Summary, error) {
	summaries := make([]Summary, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(meta.GoRoutines)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			e, err := newGame(i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			s, err := e.Run(ctx)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Stats aggregates a batch of finished games.
type Stats struct {
	Games  int
	Best   int
	Mean   float64
	Solved int
}

func Aggregate(summaries []Summary) Stats {
	if len(summaries) == 0 {
		return Stats{}
	}
	best := lo.MinBy(summaries, func(a, b Summary) bool {
		return a.Score < b.Score
	})
	total := lo.SumBy(summaries, func(s Summary) int {
		return s.Score
	})
	return Stats{
		Games:  len(summaries),
		Best:   best.Score,
		Mean:   float64(total) / float64(len(summaries)),
		Solved: lo.CountBy(summaries, Summary.Solved),
	}
}
