package types

import (
	"encoding/json"
	"fmt"
)

// Cell is the value of a single board cell.
type Cell int

const (
	CellEmpty Cell = iota
	CellPlayerA
	CellPlayerB
)

// Wire symbols used by the move-processing service.
const (
	SymbolEmpty   = ""
	SymbolPlayerA = "R"
	SymbolPlayerB = "Y"
	SymbolDraw    = "Draw"
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellPlayerA:
		return "PlayerA"
	case CellPlayerB:
		return "PlayerB"
	}
	return "Unknown"
}

// Symbol returns the wire symbol of the cell.
func (c Cell) Symbol() string {
	switch c {
	case CellPlayerA:
		return SymbolPlayerA
	case CellPlayerB:
		return SymbolPlayerB
	}
	return SymbolEmpty
}

// IsPlayer reports whether the cell holds a piece.
func (c Cell) IsPlayer() bool {
	return c == CellPlayerA || c == CellPlayerB
}

// Opponent returns the other player's piece. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case CellPlayerA:
		return CellPlayerB
	case CellPlayerB:
		return CellPlayerA
	}
	return CellEmpty
}

func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Symbol())
}

func (c *Cell) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("failed to unmarshal cell: %v", err)
	}
	if s == nil {
		*c = CellEmpty
		return nil
	}
	switch *s {
	case SymbolEmpty:
		*c = CellEmpty
	case SymbolPlayerA:
		*c = CellPlayerA
	case SymbolPlayerB:
		*c = CellPlayerB
	default:
		return fmt.Errorf("unknown cell value %q", *s)
	}
	return nil
}

// Winner is the terminal outcome of a game.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayerA
	WinnerPlayerB
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "None"
	case WinnerPlayerA:
		return SymbolPlayerA
	case WinnerPlayerB:
		return SymbolPlayerB
	case WinnerDraw:
		return SymbolDraw
	}
	return "Unknown"
}

// IsPlayer reports whether the game was won by one of the players.
func (w Winner) IsPlayer() bool {
	return w == WinnerPlayerA || w == WinnerPlayerB
}

// Cell returns the piece of the winning player, or CellEmpty for a draw or no winner.
func (w Winner) Cell() Cell {
	switch w {
	case WinnerPlayerA:
		return CellPlayerA
	case WinnerPlayerB:
		return CellPlayerB
	}
	return CellEmpty
}

// WinnerFromCell returns the winner owning the given piece.
func WinnerFromCell(c Cell) Winner {
	switch c {
	case CellPlayerA:
		return WinnerPlayerA
	case CellPlayerB:
		return WinnerPlayerB
	}
	return WinnerNone
}

func (w Winner) MarshalJSON() ([]byte, error) {
	if w == WinnerNone {
		return []byte("null"), nil
	}
	return json.Marshal(w.String())
}

func (w *Winner) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("failed to unmarshal winner: %v", err)
	}
	if s == nil {
		*w = WinnerNone
		return nil
	}
	switch *s {
	case "":
		*w = WinnerNone
	case SymbolPlayerA:
		*w = WinnerPlayerA
	case SymbolPlayerB:
		*w = WinnerPlayerB
	case SymbolDraw:
		*w = WinnerDraw
	default:
		return fmt.Errorf("unknown winner %q", *s)
	}
	return nil
}

// Position addresses a cell. Row 0 is the top row.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// MarshalJSON encodes the position as a [row, col] pair.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

func (p *Position) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("failed to unmarshal position: %v", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("position must have 2 elements, got %d", len(pair))
	}
	p.Row, p.Col = pair[0], pair[1]
	return nil
}

// Mode is the session mode.
type Mode int

const (
	// ModeUnspecified is used when a payload does not carry the mode.
	ModeUnspecified Mode = iota
	ModeVsAutomated
	ModeVsHuman
)

func (m Mode) String() string {
	switch m {
	case ModeUnspecified:
		return "Unspecified"
	case ModeVsAutomated:
		return "VsAutomated"
	case ModeVsHuman:
		return "VsHuman"
	}
	return "Unknown"
}
