package engine

import (
	"golang.org/x/exp/rand"

	"pegsolitaire/game"
)

// Player supplies the next move for a game, or false when it has none.
type Player interface {
	NextMove(state *game.SolitaireModel) (game.Move, bool)
}

// ScriptedPlayer replays a fixed list of moves.
type ScriptedPlayer struct {
	moves []game.Move
	next  int
}

func Scripted(moves []game.Move) *ScriptedPlayer {
	return &ScriptedPlayer{moves: moves}
}

func (p *ScriptedPlayer) NextMove(*game.SolitaireModel) (game.Move, bool) {
	if p.next >= len(p.moves) {
		return game.Move{}, false
	}
	m := p.moves[p.next]
	p.next++
	return m, true
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) NextMove(state *game.SolitaireModel) (game.Move, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[p.rng.Intn(len(moves))], true
}
