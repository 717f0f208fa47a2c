package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds    = errors.New("position out of bounds")
	ErrInvalidCell    = errors.New("cell is outside the playable shape")
	ErrUnknownShape   = errors.New("unknown board shape")
	ErrMalformedBoard = errors.New("malformed board text")

	// ErrInvalidMove matches every *InvalidMoveError under errors.Is.
	ErrInvalidMove = errors.New("invalid move")
)

// ConfigurationError reports an arm thickness the shape cannot build.
type ConfigurationError struct {
	Shape  Shape
	Arm    int
	MinArm int
	MaxArm int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid arm thickness %d for %v board: need %d to %d", e.Arm, e.Shape, e.MinArm, e.MaxArm)
}

// InvalidPositionError reports a requested starting hole that is off the
// board or outside its shape.
type InvalidPositionError struct {
	Position Position
	Err      error
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid empty cell position %v: %v", e.Position, e.Err)
}

func (e *InvalidPositionError) Unwrap() error {
	return e.Err
}

// MoveFault names the first rule a rejected move broke.
type MoveFault uint8

const (
	OutOfBounds MoveFault = iota + 1
	SourceNotPeg
	DestinationNotEmpty
	BadDirectionOrDistance
	MidpointNotPeg
)

func (f MoveFault) String() string {
	switch f {
	case OutOfBounds:
		return "position out of bounds"
	case SourceNotPeg:
		return "no peg at source"
	case DestinationNotEmpty:
		return "destination is not empty"
	case BadDirectionOrDistance:
		return "not a two-cell jump along an allowed direction"
	case MidpointNotPeg:
		return "no peg to jump over"
	default:
		return "unknown fault"
	}
}

// InvalidMoveError is returned for a rejected move. The board is untouched.
type InvalidMoveError struct {
	Reason MoveFault
	From   Position
	To     Position
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %v -> %v: %v", e.From, e.To, e.Reason)
}

func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
