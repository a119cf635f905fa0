package reconcile

import "fmt"

// ErrInconsistentMoveResult is returned when a move result cannot be reconciled with the local board.
type ErrInconsistentMoveResult struct {
	Reason string
}

func (e *ErrInconsistentMoveResult) Error() string {
	return fmt.Sprintf("inconsistent move result: %s", e.Reason)
}

func IsInconsistentMoveResult(err error) bool {
	_, ok := err.(*ErrInconsistentMoveResult)
	return ok
}

func inconsistent(format string, args ...interface{}) error {
	return &ErrInconsistentMoveResult{Reason: fmt.Sprintf(format, args...)}
}
