package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a zero-indexed (row, column) pair on a board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add steps p once in direction d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Move is a request to jump the peg at From into the hole at To.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}

// ParsePosition reads a position written as "row,col".
func ParsePosition(s string) (Position, error) {
	row, col, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Position{}, fmt.Errorf("position %q: expected row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return Position{}, fmt.Errorf("position %q: bad row: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return Position{}, fmt.Errorf("position %q: bad column: %w", s, err)
	}
	return Position{Row: r, Col: c}, nil
}

// ParseMove reads a move written as "row,col:row,col".
func ParseMove(s string) (Move, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return Move{}, fmt.Errorf("move %q: expected from:to", s)
	}
	f, err := ParsePosition(from)
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	t, err := ParsePosition(to)
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	return Move{From: f, To: t}, nil
}
