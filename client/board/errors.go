package board

import "fmt"

// ErrInvalidPosition is returned when a position is outside the board.
type ErrInvalidPosition struct {
	Row int
	Col int
}

func (e *ErrInvalidPosition) Error() string {
	return fmt.Sprintf("invalid position (%d,%d)", e.Row, e.Col)
}

func IsInvalidPosition(err error) bool {
	_, ok := err.(*ErrInvalidPosition)
	return ok
}

// ErrLengthMismatch is returned when a flat board does not match the grid size.
type ErrLengthMismatch struct {
	Got  int
	Want int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("flat board has %d cells, expected %d", e.Got, e.Want)
}

func IsLengthMismatch(err error) bool {
	_, ok := err.(*ErrLengthMismatch)
	return ok
}
