package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pegsolitaire/game"
	"pegsolitaire/meta"
)

type Engine struct {
	State   *game.SolitaireModel
	Player  Player
	Updates []Update
}

func Local(state *game.SolitaireModel, player Player) *Engine {
	if state == nil {
		panic("engine needs a game state")
	}
	if player == nil {
		panic("engine needs a player")
	}
	return &Engine{
		State:  state,
		Player: player,
	}
}

// Play applies a single move and records it.
func (e *Engine) Play(move game.Move) error {
	if e.State.IsGameOver() {
		return ErrGameOver
	}
	if err := e.State.Play(move); err != nil {
		return fmt.Errorf("move %d: %w", len(e.Updates)+1, err)
	}
	e.Updates = append(e.Updates, Update{
		Move:  move,
		Score: e.State.Score(),
		Hash:  e.State.Hash(),
	})
	log.Debug().Stringer("move", move).Int("score", e.State.Score()).Msg("played")
	return nil
}

// Run asks the player for moves until the game is over, the player has
// nothing more to offer or the move cap is reached.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	log.Info().Msgf("starting %v game with %d pegs", e.State.Shape(), e.State.Score())

	for len(e.Updates) < meta.MaxMoves && !e.State.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return e.Summary(), err
		}
		move, ok := e.Player.NextMove(e.State)
		if !ok {
			log.Debug().Msg("player has no more moves")
			break
		}
		if err := e.Play(move); err != nil {
			return e.Summary(), err
		}
	}

	s := e.Summary()
	log.Info().
		Int("score", s.Score).
		Int("moves", s.Moves).
		Bool("game_over", s.GameOver).
		Msg("game finished")
	return s, nil
}

func (e *Engine) Summary() Summary {
	return Summary{
		Score:    e.State.Score(),
		Moves:    len(e.Updates),
		GameOver: e.State.IsGameOver(),
		Board:    e.State.Render(),
	}
}
