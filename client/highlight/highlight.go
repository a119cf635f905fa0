// Package highlight keeps the terminal "winning cell" overlay that sits on top of the board values.
package highlight

import (
	"github.com/cbodonnell/connectfour/client/board"
	"github.com/cbodonnell/connectfour/pkg/game/types"
)

// Appearance is what a renderer should paint for a cell.
type Appearance int

const (
	AppearanceEmpty Appearance = iota
	AppearancePlayerA
	AppearancePlayerB
	AppearanceWinning
)

func (a Appearance) String() string {
	switch a {
	case AppearanceEmpty:
		return "Empty"
	case AppearancePlayerA:
		return "PlayerA"
	case AppearancePlayerB:
		return "PlayerB"
	case AppearanceWinning:
		return "Winning"
	}
	return "Unknown"
}

// AppearanceOf maps a cell value to its plain appearance.
func AppearanceOf(c types.Cell) Appearance {
	switch c {
	case types.CellPlayerA:
		return AppearancePlayerA
	case types.CellPlayerB:
		return AppearancePlayerB
	}
	return AppearanceEmpty
}

// Engine flags cells as winning without touching their values.
type Engine struct {
	board   *board.Board
	flagged map[types.Position]struct{}
	order   []types.Position
}

func New(b *board.Board) *Engine {
	return &Engine{
		board:   b,
		flagged: make(map[types.Position]struct{}),
	}
}

// ApplyWinHighlight flags every position. Either all positions are flagged or none are.
func (e *Engine) ApplyWinHighlight(positions []types.Position) error {
	for _, p := range positions {
		if !e.board.InBounds(p.Row, p.Col) {
			return &board.ErrInvalidPosition{Row: p.Row, Col: p.Col}
		}
	}
	for _, p := range positions {
		if _, ok := e.flagged[p]; ok {
			continue
		}
		e.flagged[p] = struct{}{}
		e.order = append(e.order, p)
	}
	return nil
}

func (e *Engine) ClearWinHighlight() {
	e.flagged = make(map[types.Position]struct{})
	e.order = nil
}

func (e *Engine) IsWinning(row, col int) bool {
	_, ok := e.flagged[types.Position{Row: row, Col: col}]
	return ok
}

// Positions returns the flagged positions in the order they were first applied.
func (e *Engine) Positions() []types.Position {
	return append([]types.Position(nil), e.order...)
}

// Appearance resolves the appearance of one cell.
func (e *Engine) Appearance(row, col int) (Appearance, error) {
	c, err := e.board.Cell(row, col)
	if err != nil {
		return AppearanceEmpty, err
	}
	if e.IsWinning(row, col) {
		return AppearanceWinning, nil
	}
	return AppearanceOf(c), nil
}
