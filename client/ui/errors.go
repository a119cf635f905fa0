package ui

// ActionableError is an error whose message can be shown to the player as is.
type ActionableError struct {
	Message string
	// Hint tells the player what they can do about it.
	Hint string
}

func (e *ActionableError) Error() string {
	return e.Message
}

func IsActionable(err error) bool {
	_, ok := err.(*ActionableError)
	return ok
}
