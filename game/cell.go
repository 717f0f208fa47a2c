package game

// Cell is the state of a single board position.
type Cell int8

const (
	Invalid Cell = iota // outside the playable shape
	Empty
	Peg
)

// String returns the token used for the cell in a rendered board.
func (c Cell) String() string {
	switch c {
	case Peg:
		return "O"
	case Empty:
		return "_"
	default:
		return " "
	}
}

func parseCell(b byte) (Cell, bool) {
	switch b {
	case 'O':
		return Peg, true
	case '_':
		return Empty, true
	case ' ':
		return Invalid, true
	}
	return Invalid, false
}
