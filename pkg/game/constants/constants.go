package constants

import "time"

const (
	// Rows is the number of rows on the standard board
	Rows int = 6
	// Cols is the number of columns on the standard board
	Cols int = 7
	// ConnectLength is the number of aligned pieces needed to win
	ConnectLength int = 4

	// MovePause is the pause between the human and the automated placement
	MovePause time.Duration = 300 * time.Millisecond

	// EventQueueSize is the capacity of the client's render event queue
	EventQueueSize int = 1024
)
