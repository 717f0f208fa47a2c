package game

import (
	"iter"
	"slices"
)

// jumps yields every legal move on b in row-major order, trying the shape's
// directions in table order at each peg.
func jumps(b *Board) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		dirs := b.shape.directions()
		for row := 0; row < b.length; row++ {
			for col := 0; col < b.length; col++ {
				from := Position{Row: row, Col: col}
				if b.at(from) != Peg {
					continue
				}
				for _, d := range dirs {
					over := from.Add(d)
					to := over.Add(d)
					// over lies between from and to, so it is in bounds too
					if !b.InBounds(to) {
						continue
					}
					if b.at(over) == Peg && b.at(to) == Empty {
						if !yield(Move{From: from, To: to}) {
							return
						}
					}
				}
			}
		}
	}
}

// IsGameOver reports whether no legal move is left on b.
func IsGameOver(b *Board) bool {
	for range jumps(b) {
		return false
	}
	return true
}

// LegalMoves lists every legal move on b.
func LegalMoves(b *Board) []Move {
	return slices.Collect(jumps(b))
}
