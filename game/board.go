package game

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// Board is a square grid of cells carved into a playable shape. Cells
// outside the shape are Invalid from construction on and never change.
type Board struct {
	shape  Shape
	arm    int
	length int
	cells  []Cell // row-major, length*length
}

// NewBoard builds a full board with the shape's default hole.
func NewBoard(shape Shape, arm int) (*Board, error) {
	if !shape.known() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
	if arm < shape.MinArm() || arm > shape.MaxArm() {
		return nil, &ConfigurationError{Shape: shape, Arm: arm, MinArm: shape.MinArm(), MaxArm: shape.MaxArm()}
	}

	length := shape.Length(arm)
	b := &Board{
		shape:  shape,
		arm:    arm,
		length: length,
		cells:  make([]Cell, length*length),
	}
	for i := range b.cells {
		b.cells[i] = Peg
	}
	b.set(shape.DefaultEmpty(arm), Empty)
	b.carve()
	return b, nil
}

// carve marks every cell outside the shape Invalid.
func (b *Board) carve() {
	for row := 0; row < b.length; row++ {
		for col := 0; col < b.length; col++ {
			p := Position{Row: row, Col: col}
			if !b.shape.contains(p, b.arm) {
				b.set(p, Invalid)
			}
		}
	}
}

func (b *Board) Shape() Shape { return b.shape }
func (b *Board) Arm() int     { return b.arm }
func (b *Board) Length() int  { return b.length }

// InBounds reports whether p lies on the square grid.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.length && p.Col >= 0 && p.Col < b.length
}

func (b *Board) index(p Position) int {
	return p.Row*b.length + p.Col
}

// at and set skip bounds checks; callers check first.
func (b *Board) at(p Position) Cell {
	return b.cells[b.index(p)]
}

func (b *Board) set(p Position, c Cell) {
	b.cells[b.index(p)] = c
}

// Cell returns the state at p.
func (b *Board) Cell(p Position) (Cell, error) {
	if !b.InBounds(p) {
		return Invalid, fmt.Errorf("cell %v: %w", p, ErrOutOfBounds)
	}
	return b.at(p), nil
}

// SetCell overwrites the state at p. Only Empty and Peg may be written, and
// only onto playable cells.
func (b *Board) SetCell(p Position, c Cell) error {
	if !b.InBounds(p) {
		return fmt.Errorf("cell %v: %w", p, ErrOutOfBounds)
	}
	if c == Invalid || b.at(p) == Invalid {
		return fmt.Errorf("cell %v: %w", p, ErrInvalidCell)
	}
	b.set(p, c)
	return nil
}

// CountPegs scans the whole grid.
func (b *Board) CountPegs() int {
	count := 0
	for _, c := range b.cells {
		if c == Peg {
			count++
		}
	}
	return count
}

// moveEmpty relocates the starting hole from the shape default to p.
func (b *Board) moveEmpty(p Position) error {
	if !b.InBounds(p) {
		return ErrOutOfBounds
	}
	if b.at(p) == Invalid {
		return ErrInvalidCell
	}
	b.set(b.shape.DefaultEmpty(b.arm), Peg)
	b.set(p, Empty)
	return nil
}

func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		shape:  b.shape,
		arm:    b.arm,
		length: b.length,
		cells:  cells,
	}
}

// Hash identifies the position: shape, size and every cell.
func (b *Board) Hash() uint64 {
	buf := make([]byte, 0, len(b.cells)+2)
	buf = append(buf, byte(b.shape), byte(b.arm))
	for _, c := range b.cells {
		buf = append(buf, byte(c))
	}
	return xxhash.Sum64(buf)
}

// lastPlayable is the column of the last non-Invalid cell in a row, or -1.
func (b *Board) lastPlayable(row int) int {
	for col := b.length - 1; col >= 0; col-- {
		if b.at(Position{Row: row, Col: col}) != Invalid {
			return col
		}
	}
	return -1
}

// Render writes the board one row per line with tokens separated by a
// single space. Invalid cells left of a row's last playable cell print as a
// blank, the rest of the row is dropped. There is no trailing newline.
func (b *Board) Render() string {
	var sb strings.Builder
	for row := 0; row < b.length; row++ {
		last := b.lastPlayable(row)
		for col := 0; col <= last; col++ {
			if col != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.at(Position{Row: row, Col: col}).String())
		}
		if row != b.length-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render()
}

// ParseBoard loads a board in the Render format. The text must describe
// exactly the playable cells of the given shape and arm.
func ParseBoard(shape Shape, arm int, text string) (*Board, error) {
	b, err := NewBoard(shape, arm)
	if err != nil {
		return nil, err
	}
	rows := strings.Split(text, "\n")
	if len(rows) != b.length {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrMalformedBoard, len(rows), b.length)
	}
	for row, line := range rows {
		if len(line) > 2*b.length-1 || (len(line) > 0 && len(line)%2 == 0) {
			return nil, fmt.Errorf("%w: row %d has bad width %d", ErrMalformedBoard, row, len(line))
		}
		for col := 0; col < b.length; col++ {
			p := Position{Row: row, Col: col}
			cell := Invalid
			if i := 2 * col; i < len(line) {
				if col > 0 && line[i-1] != ' ' {
					return nil, fmt.Errorf("%w: missing separator before %v", ErrMalformedBoard, p)
				}
				var ok bool
				if cell, ok = parseCell(line[i]); !ok {
					return nil, fmt.Errorf("%w: unknown token %q at %v", ErrMalformedBoard, line[i], p)
				}
			}
			if (cell != Invalid) != shape.contains(p, arm) {
				return nil, fmt.Errorf("%w: %v does not match the %v shape", ErrMalformedBoard, p, shape)
			}
			b.set(p, cell)
		}
	}
	return b, nil
}
