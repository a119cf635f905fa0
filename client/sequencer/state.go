package sequencer

import (
	"time"

	"github.com/cbodonnell/connectfour/pkg/game/types"
)

// State is the sequencer's position in the move flow.
type State int

const (
	StateIdle State = iota
	StateAwaitingResponse
	StateApplyingHuman
	StatePausingForAutomated
	StateApplyingAutomated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingResponse:
		return "AwaitingResponse"
	case StateApplyingHuman:
		return "ApplyingHuman"
	case StatePausingForAutomated:
		return "PausingForAutomated"
	case StateApplyingAutomated:
		return "ApplyingAutomated"
	}
	return "Unknown"
}

type EventType int

const (
	// EventStateChanged is emitted on every state transition.
	EventStateChanged EventType = iota
	// EventBoardReplaced is emitted after a full snapshot load (initial load or reset).
	EventBoardReplaced
	// EventHumanApplied is emitted after the human move cell is set.
	EventHumanApplied
	// EventAutomatedApplied is emitted after the automated move cell is set.
	EventAutomatedApplied
	// EventGameOver is emitted once when the game ends and the win highlight is applied.
	EventGameOver
	// EventMoveFailed is emitted when a move or reset fails.
	EventMoveFailed
)

func (t EventType) String() string {
	switch t {
	case EventStateChanged:
		return "StateChanged"
	case EventBoardReplaced:
		return "BoardReplaced"
	case EventHumanApplied:
		return "HumanApplied"
	case EventAutomatedApplied:
		return "AutomatedApplied"
	case EventGameOver:
		return "GameOver"
	case EventMoveFailed:
		return "MoveFailed"
	}
	return "Unknown"
}

// Event describes one step of the sequencer for renderers.
type Event struct {
	ID        string
	Type      EventType
	State     State
	Timestamp time.Time
	// Position and Cell are set for applied move cells.
	Position types.Position
	Cell     types.Cell
	// Winner is set for game over events.
	Winner types.Winner
	// Err is set for failure events.
	Err error
}
