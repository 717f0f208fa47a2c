package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pegsolitaire/game"
)

const solvedCross = "    _ _ _\n" +
	"    _ _ _\n" +
	"_ _ _ _ _ _ _\n" +
	"_ _ _ O _ _ _\n" +
	"_ _ _ _ _ _ _\n" +
	"    _ _ _\n" +
	"    _ _ _"

func newCross(t *testing.T) *game.SolitaireModel {
	t.Helper()
	state, err := game.NewModel(game.Cross, 3)
	require.NoError(t, err)
	return state
}

func TestCrossSolution(t *testing.T) {
	state := newCross(t)
	e := Local(state, Scripted(CrossSolution()))

	summary, err := e.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, summary.Score, "Solution should leave one peg")
	require.True(t, summary.GameOver)
	require.True(t, summary.Solved())
	require.Equal(t, 31, summary.Moves)
	require.Equal(t, solvedCross, summary.Board)
	require.Equal(t, solvedCross, state.Render())

	start, err := game.NewModel(game.Cross, 3)
	require.NoError(t, err)
	seen := map[uint64]bool{start.Hash(): true}
	for i, u := range e.Updates {
		require.Equal(t, 31-i, u.Score)
		require.False(t, seen[u.Hash], "Positions should not repeat")
		seen[u.Hash] = true
	}
	require.Equal(t, state.Hash(), e.Updates[30].Hash)
}

func TestEnginePlay(t *testing.T) {
	t.Run("legal move is recorded", func(t *testing.T) {
		state := newCross(t)
		e := Local(state, Scripted(nil))
		move := game.Move{From: game.Position{Row: 1, Col: 3}, To: game.Position{Row: 3, Col: 3}}

		require.NoError(t, e.Play(move))
		require.Len(t, e.Updates, 1)
		require.Equal(t, move, e.Updates[0].Move)
		require.Equal(t, 31, e.Updates[0].Score)
		require.Equal(t, state.Hash(), e.Updates[0].Hash)
	})

	t.Run("illegal move is wrapped", func(t *testing.T) {
		state := newCross(t)
		e := Local(state, Scripted(nil))

		err := e.Play(game.Move{From: game.Position{Row: 0, Col: 0}, To: game.Position{Row: 0, Col: 2}})
		var moveErr *game.InvalidMoveError
		require.ErrorAs(t, err, &moveErr)
		require.Equal(t, game.SourceNotPeg, moveErr.Reason)
		require.Empty(t, e.Updates)
	})

	t.Run("no moves after game over", func(t *testing.T) {
		state, err := game.NewModel(game.Cross, 1)
		require.NoError(t, err)
		e := Local(state, Scripted(nil))

		err = e.Play(game.Move{})
		require.ErrorIs(t, err, ErrGameOver)
		require.EqualError(t, err, "game is over - no moves allowed")
	})

	t.Run("nil arguments panic", func(t *testing.T) {
		require.Panics(t, func() { Local(nil, Scripted(nil)) })
		require.Panics(t, func() { Local(newCross(t), nil) })
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("script runs out before the game ends", func(t *testing.T) {
		state := newCross(t)
		e := Local(state, Scripted(CrossSolution()[:3]))

		summary, err := e.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, summary.Moves)
		require.Equal(t, 29, summary.Score)
		require.False(t, summary.GameOver)
	})

	t.Run("illegal scripted move stops the loop", func(t *testing.T) {
		moves := CrossSolution()[:2]
		moves = append(moves, moves[0])
		e := Local(newCross(t), Scripted(moves))

		summary, err := e.Run(context.Background())
		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.ErrorContains(t, err, "move 3")
		require.Equal(t, 2, summary.Moves)
		require.Equal(t, 30, summary.Score)
	})

	t.Run("random player plays to the end", func(t *testing.T) {
		state, err := game.NewModel(game.Triangle, 5, game.WithEmpty(game.Position{Row: 2, Col: 1}))
		require.NoError(t, err)
		e := Local(state, NewRandomPlayer(7))

		summary, err := e.Run(context.Background())
		require.NoError(t, err)
		require.True(t, summary.GameOver)
		require.Equal(t, 14-summary.Moves, summary.Score)
		require.GreaterOrEqual(t, summary.Score, 1)
	})

	t.Run("random player is deterministic per seed", func(t *testing.T) {
		a := Local(newCross(t), NewRandomPlayer(99))
		b := Local(newCross(t), NewRandomPlayer(99))

		_, err := a.Run(context.Background())
		require.NoError(t, err)
		_, err = b.Run(context.Background())
		require.NoError(t, err)
		require.Equal(t, a.Updates, b.Updates)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		e := Local(newCross(t), NewRandomPlayer(1))

		summary, err := e.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 0, summary.Moves)
	})
}

func TestScriptedPlayer(t *testing.T) {
	moves := CrossSolution()[:2]
	p := Scripted(moves)

	for _, want := range moves {
		got, ok := p.NextMove(nil)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	_, ok := p.NextMove(nil)
	require.False(t, ok, "Player should be exhausted")
}
