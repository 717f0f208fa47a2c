package game

// State is what a front-end needs from a running game.
type State interface {
	Move(from, to Position) error
	IsGameOver() bool
	Score() int
	Render() string
}

var _ State = (*SolitaireModel)(nil)
