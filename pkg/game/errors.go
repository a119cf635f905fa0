package game

// ErrGameOver is returned for moves after the game has ended.
type ErrGameOver struct{}

func (e *ErrGameOver) Error() string {
	return "Game is over"
}

func IsGameOver(err error) bool {
	_, ok := err.(*ErrGameOver)
	return ok
}

// ErrInvalidColumn is returned for a missing or out of range column.
type ErrInvalidColumn struct{}

func (e *ErrInvalidColumn) Error() string {
	return "Invalid column"
}

func IsInvalidColumn(err error) bool {
	_, ok := err.(*ErrInvalidColumn)
	return ok
}

// ErrColumnFull is returned for a move in a full column.
type ErrColumnFull struct{}

func (e *ErrColumnFull) Error() string {
	return "Column is full"
}

func IsColumnFull(err error) bool {
	_, ok := err.(*ErrColumnFull)
	return ok
}

// IsIllegalMove reports whether err is one of the move rule violations.
func IsIllegalMove(err error) bool {
	return IsGameOver(err) || IsInvalidColumn(err) || IsColumnFull(err)
}
