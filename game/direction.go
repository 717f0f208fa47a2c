package game

// Direction is a unit step on the grid.
type Direction struct {
	DRow int
	DCol int
}

var (
	Up        = Direction{DRow: -1, DCol: 0}
	Down      = Direction{DRow: 1, DCol: 0}
	Left      = Direction{DRow: 0, DCol: -1}
	Right     = Direction{DRow: 0, DCol: 1}
	UpLeft    = Direction{DRow: -1, DCol: -1}
	DownRight = Direction{DRow: 1, DCol: 1}
	UpRight   = Direction{DRow: -1, DCol: 1}
	DownLeft  = Direction{DRow: 1, DCol: -1}
)

var directionNames = map[Direction]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	UpLeft:    "up-left",
	DownRight: "down-right",
	UpRight:   "up-right",
	DownLeft:  "down-left",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "none"
}

// Jump direction sets. Order fixes the order of LegalMoves.
var (
	orthogonal = []Direction{Up, Down, Left, Right}
	triangular = []Direction{Up, Down, Left, Right, UpLeft, DownRight, UpRight, DownLeft}
)
