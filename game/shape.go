package game

import (
	"fmt"
	"slices"
	"strings"

	"pegsolitaire/utils"
)

// Shape selects the board topology. It decides which cells are playable,
// where the first hole goes and along which directions pegs may jump.
type Shape uint8

const (
	Cross    Shape = iota // English plus-shaped board, orthogonal jumps
	Triangle              // right triangle, orthogonal and diagonal jumps
)

func (s Shape) String() string {
	switch s {
	case Cross:
		return "cross"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// ParseShape maps a shape name to its Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cross", "english":
		return Cross, nil
	case "triangle", "triangular":
		return Triangle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

func (s Shape) known() bool {
	return s == Cross || s == Triangle
}

// MinArm is the smallest arm thickness the shape accepts.
func (s Shape) MinArm() int {
	if s == Triangle {
		return 5
	}
	return 1
}

// MaxArm is the largest arm thickness the shape accepts. Either shape then
// fits a 100 by 100 grid.
func (s Shape) MaxArm() int {
	if s == Triangle {
		return 100
	}
	return 34
}

// Length is the side of the square grid holding a board of the given arm.
// For a triangle the arm is the number of rows.
func (s Shape) Length(arm int) int {
	if s == Triangle {
		return arm
	}
	return 3*arm - 2
}

// DefaultEmpty is the hole a new board starts with: the centre of a cross,
// the apex of a triangle.
func (s Shape) DefaultEmpty(arm int) Position {
	if s == Triangle {
		return Position{Row: 0, Col: 0}
	}
	center := s.Length(arm) / 2
	return Position{Row: center, Col: center}
}

// Directions lists the unit steps a jump may follow on this shape.
func (s Shape) Directions() []Direction {
	return slices.Clone(s.directions())
}

func (s Shape) directions() []Direction {
	if s == Triangle {
		return triangular
	}
	return orthogonal
}

// contains reports whether an in-bounds position is part of the playable
// region.
func (s Shape) contains(p Position, arm int) bool {
	if s == Triangle {
		return p.Col <= p.Row
	}
	corner := (s.Length(arm) - arm) / 2
	outside := func(i int) bool { return i < corner || i >= corner+arm }
	return !(outside(p.Row) && outside(p.Col))
}

// jump returns the direction of a two-cell displacement, if the shape
// allows one.
func (s Shape) jump(dRow, dCol int) (Direction, bool) {
	d := Direction{DRow: utils.Sign(dRow), DCol: utils.Sign(dCol)}
	if dRow != 2*d.DRow || dCol != 2*d.DCol {
		return Direction{}, false
	}
	if !slices.Contains(s.directions(), d) {
		return Direction{}, false
	}
	return d, true
}
