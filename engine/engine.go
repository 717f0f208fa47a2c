package engine

import (
	"errors"

	"pegsolitaire/game"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Update is recorded after every move the engine plays.
type Update struct {
	Move  game.Move
	Score int
	Hash  uint64
}

// Summary describes where a game loop stopped.
type Summary struct {
	Score    int
	Moves    int
	GameOver bool
	Board    string
}

// Solved reports whether a single peg is left.
func (s Summary) Solved() bool {
	return s.Score == 1
}
