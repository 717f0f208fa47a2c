package engine

import "pegsolitaire/game"

// CrossSolution is a 31-move solution of the English board (arm 3, centre
// hole) that finishes with the last peg in the centre.
func CrossSolution() []game.Move {
	steps := [][4]int{
		{1, 3, 3, 3}, {2, 1, 2, 3}, {0, 2, 2, 2}, {0, 4, 0, 2},
		{2, 3, 2, 1}, {2, 0, 2, 2}, {2, 4, 0, 4}, {2, 6, 2, 4},
		{3, 2, 1, 2}, {0, 2, 2, 2}, {3, 0, 3, 2}, {3, 2, 1, 2},
		{3, 4, 1, 4}, {0, 4, 2, 4}, {3, 6, 3, 4}, {3, 4, 1, 4},
		{5, 2, 3, 2}, {4, 0, 4, 2}, {4, 2, 2, 2}, {1, 2, 3, 2},
		{3, 2, 3, 4}, {4, 4, 2, 4}, {1, 4, 3, 4}, {4, 6, 4, 4},
		{4, 3, 4, 5}, {6, 4, 4, 4}, {3, 4, 5, 4}, {6, 2, 6, 4},
		{6, 4, 4, 4}, {4, 5, 4, 3}, {5, 3, 3, 3},
	}
	moves := make([]game.Move, len(steps))
	for i, s := range steps {
		moves[i] = game.Move{
			From: game.Position{Row: s[0], Col: s[1]},
			To:   game.Position{Row: s[2], Col: s[3]},
		}
	}
	return moves
}
