package game

// SolitaireModel is a single game: one board and its running score. The
// score is the number of pegs left and drops by one on every legal move.
type SolitaireModel struct {
	board *Board
	score int
}

type settings struct {
	empty *Position
}

// Option customizes a new model.
type Option func(*settings)

// WithEmpty starts the game with the hole at pos instead of the shape's
// default. The default hole is filled with a peg.
func WithEmpty(pos Position) Option {
	return func(s *settings) {
		s.empty = &pos
	}
}

// NewModel starts a game on a shape of the given arm thickness.
func NewModel(shape Shape, arm int, options ...Option) (*SolitaireModel, error) {
	var s settings
	for _, option := range options {
		option(&s)
	}

	board, err := NewBoard(shape, arm)
	if err != nil {
		return nil, err
	}
	if s.empty != nil {
		if err := board.moveEmpty(*s.empty); err != nil {
			return nil, &InvalidPositionError{Position: *s.empty, Err: err}
		}
	}

	return &SolitaireModel{
		board: board,
		score: board.CountPegs(),
	}, nil
}

// Move jumps the peg at from over its neighbour into to. An illegal move
// returns an *InvalidMoveError and leaves the game unchanged.
func (m *SolitaireModel) Move(from, to Position) error {
	if err := ApplyMove(m.board, from, to); err != nil {
		return err
	}
	m.score--
	return nil
}

// Play is Move for a Move value.
func (m *SolitaireModel) Play(move Move) error {
	return m.Move(move.From, move.To)
}

func (m *SolitaireModel) IsGameOver() bool {
	return IsGameOver(m.board)
}

// Score is the number of pegs still on the board.
func (m *SolitaireModel) Score() int {
	return m.score
}

func (m *SolitaireModel) Render() string {
	return m.board.Render()
}

func (m *SolitaireModel) String() string {
	return m.Render()
}

func (m *SolitaireModel) Shape() Shape { return m.board.Shape() }
func (m *SolitaireModel) Arm() int     { return m.board.Arm() }
func (m *SolitaireModel) Length() int  { return m.board.Length() }

func (m *SolitaireModel) Cell(pos Position) (Cell, error) {
	return m.board.Cell(pos)
}

func (m *SolitaireModel) LegalMoves() []Move {
	return LegalMoves(m.board)
}

func (m *SolitaireModel) Hash() uint64 {
	return m.board.Hash()
}

// Board returns a copy of the current board.
func (m *SolitaireModel) Board() *Board {
	return m.board.Copy()
}

func (m *SolitaireModel) Copy() *SolitaireModel {
	return &SolitaireModel{
		board: m.board.Copy(),
		score: m.score,
	}
}
