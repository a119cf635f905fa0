package types

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the complete authoritative board state reported by the service.
type Snapshot struct {
	// Board is the row-major flat board, Rows*Cols long.
	Board []Cell
	// Rows and Cols are zero when the payload omits the dimensions.
	Rows int
	Cols int
	// GameOver is true once the game reached a terminal state.
	GameOver bool
	// Winner is set iff GameOver is true.
	Winner Winner
	// WinningPositions is the connecting line, non-empty iff Winner is a player.
	WinningPositions []Position
	// Mode is ModeUnspecified when the payload omits it.
	Mode Mode
	// Message is the service's human-readable status, if any.
	Message string
}

type snapshotWire struct {
	Board            []Cell     `json:"board"`
	Rows             int        `json:"rows,omitempty"`
	Cols             int        `json:"cols,omitempty"`
	GameOver         bool       `json:"gameOver"`
	Winner           Winner     `json:"winner"`
	WinningPositions []Position `json:"winningPositions"`
	PlayerVsComputer *bool      `json:"playerVsComputer,omitempty"`
	Message          string     `json:"message,omitempty"`
}

func (s *Snapshot) toWire() snapshotWire {
	w := snapshotWire{
		Board:            s.Board,
		Rows:             s.Rows,
		Cols:             s.Cols,
		GameOver:         s.GameOver,
		Winner:           s.Winner,
		WinningPositions: s.WinningPositions,
		Message:          s.Message,
	}
	if w.WinningPositions == nil {
		w.WinningPositions = []Position{}
	}
	if s.Mode != ModeUnspecified {
		vsComputer := s.Mode == ModeVsAutomated
		w.PlayerVsComputer = &vsComputer
	}
	return w
}

func (s *Snapshot) fromWire(w snapshotWire) {
	s.Board = w.Board
	s.Rows = w.Rows
	s.Cols = w.Cols
	s.GameOver = w.GameOver
	s.Winner = w.Winner
	s.WinningPositions = w.WinningPositions
	s.Message = w.Message
	s.Mode = ModeUnspecified
	if w.PlayerVsComputer != nil {
		if *w.PlayerVsComputer {
			s.Mode = ModeVsAutomated
		} else {
			s.Mode = ModeVsHuman
		}
	}
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toWire())
}

func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var w snapshotWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	s.fromWire(w)
	return nil
}

// Validate checks the snapshot's internal consistency.
// Snapshots without dimensions are checked against the board length only.
func (s *Snapshot) Validate() error {
	if s.Rows != 0 || s.Cols != 0 {
		if s.Rows <= 0 || s.Cols <= 0 {
			return &ErrInvalidSnapshot{Reason: fmt.Sprintf("invalid dimensions %dx%d", s.Rows, s.Cols)}
		}
		if len(s.Board) != s.Rows*s.Cols {
			return &ErrInvalidSnapshot{Reason: fmt.Sprintf("board has %d cells, expected %d", len(s.Board), s.Rows*s.Cols)}
		}
	}
	if len(s.Board) == 0 {
		return &ErrInvalidSnapshot{Reason: "board is empty"}
	}
	if s.GameOver != (s.Winner != WinnerNone) {
		return &ErrInvalidSnapshot{Reason: fmt.Sprintf("gameOver=%t with winner %s", s.GameOver, s.Winner)}
	}
	if s.Winner.IsPlayer() != (len(s.WinningPositions) > 0) {
		return &ErrInvalidSnapshot{Reason: fmt.Sprintf("winner %s with %d winning positions", s.Winner, len(s.WinningPositions))}
	}
	return nil
}

// CellAt returns the snapshot value at p. The caller must have checked p against the dimensions.
func (s *Snapshot) CellAt(p Position) Cell {
	return s.Board[p.Row*s.Cols+p.Col]
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	c.Board = append([]Cell(nil), s.Board...)
	c.WinningPositions = append([]Position(nil), s.WinningPositions...)
	return &c
}

// MoveResult is a snapshot annotated with the cells changed by the triggering action.
type MoveResult struct {
	Snapshot
	// HumanMove is the cell placed by the requesting player, if any.
	HumanMove *Position
	// AutomatedMove is the cell placed by the automated opponent, if any.
	AutomatedMove *Position
}

type moveResultWire struct {
	snapshotWire
	PlayerMoveRow   *int `json:"playerMoveRow,omitempty"`
	PlayerMoveCol   *int `json:"playerMoveCol,omitempty"`
	ComputerMoved   bool `json:"computerMoved"`
	ComputerMoveRow *int `json:"computerMoveRow,omitempty"`
	ComputerMoveCol *int `json:"computerMoveCol,omitempty"`
}

func (m MoveResult) MarshalJSON() ([]byte, error) {
	w := moveResultWire{
		snapshotWire: m.Snapshot.toWire(),
	}
	if m.HumanMove != nil {
		row, col := m.HumanMove.Row, m.HumanMove.Col
		w.PlayerMoveRow, w.PlayerMoveCol = &row, &col
	}
	if m.AutomatedMove != nil {
		row, col := m.AutomatedMove.Row, m.AutomatedMove.Col
		w.ComputerMoved = true
		w.ComputerMoveRow, w.ComputerMoveCol = &row, &col
	}
	return json.Marshal(w)
}

func (m *MoveResult) UnmarshalJSON(b []byte) error {
	var w moveResultWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	m.Snapshot.fromWire(w.snapshotWire)
	m.HumanMove = nil
	m.AutomatedMove = nil
	if w.PlayerMoveRow != nil && w.PlayerMoveCol != nil {
		m.HumanMove = &Position{Row: *w.PlayerMoveRow, Col: *w.PlayerMoveCol}
	}
	if w.ComputerMoved && w.ComputerMoveRow != nil && w.ComputerMoveCol != nil {
		m.AutomatedMove = &Position{Row: *w.ComputerMoveRow, Col: *w.ComputerMoveCol}
	}
	return nil
}

// ErrInvalidSnapshot is returned when a snapshot violates its own invariants.
type ErrInvalidSnapshot struct {
	Reason string
}

func (e *ErrInvalidSnapshot) Error() string {
	return fmt.Sprintf("invalid snapshot: %s", e.Reason)
}

func IsInvalidSnapshot(err error) bool {
	_, ok := err.(*ErrInvalidSnapshot)
	return ok
}
