package session

import (
	"github.com/cbodonnell/connectfour/client/highlight"
	"github.com/cbodonnell/connectfour/client/sequencer"
	"github.com/cbodonnell/connectfour/pkg/game/types"
)

// View is a copy of everything a renderer needs for one frame.
type View struct {
	Rows             int
	Cols             int
	Cells            []types.Cell
	Appearances      []highlight.Appearance
	EnabledColumns   []bool
	ResetEnabled     bool
	State            sequencer.State
	Status           string
	Mode             types.Mode
	GameOver         bool
	Winner           types.Winner
	WinningPositions []types.Position
	Loaded           bool
}

func (v View) Cell(row, col int) types.Cell {
	return v.Cells[row*v.Cols+col]
}

func (v View) Appearance(row, col int) highlight.Appearance {
	return v.Appearances[row*v.Cols+col]
}

// ColumnEnabled reports whether a move in col would currently be accepted.
func (v View) ColumnEnabled(col int) bool {
	return col >= 0 && col < len(v.EnabledColumns) && v.EnabledColumns[col]
}
