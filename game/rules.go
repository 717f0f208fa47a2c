package game

// ValidateMove checks a jump from -> to against b without changing it and
// returns the position of the peg that would be captured. Checks run in a
// fixed order and the first failure is reported.
func ValidateMove(b *Board, from, to Position) (Position, error) {
	fail := func(reason MoveFault) (Position, error) {
		return Position{}, &InvalidMoveError{Reason: reason, From: from, To: to}
	}

	if !b.InBounds(from) || !b.InBounds(to) {
		return fail(OutOfBounds)
	}
	if b.at(from) != Peg {
		return fail(SourceNotPeg)
	}
	if b.at(to) != Empty {
		return fail(DestinationNotEmpty)
	}
	d, ok := b.shape.jump(to.Row-from.Row, to.Col-from.Col)
	if !ok {
		return fail(BadDirectionOrDistance)
	}
	mid := from.Add(d)
	if !b.InBounds(mid) {
		return fail(OutOfBounds)
	}
	if b.at(mid) != Peg {
		return fail(MidpointNotPeg)
	}
	return mid, nil
}

// ApplyMove validates the jump and, only if it is legal, empties the source
// and the captured cell and fills the destination.
func ApplyMove(b *Board, from, to Position) error {
	mid, err := ValidateMove(b, from, to)
	if err != nil {
		return err
	}
	b.set(from, Empty)
	b.set(mid, Empty)
	b.set(to, Peg)
	return nil
}
