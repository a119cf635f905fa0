package game

import (
	"fmt"

	"github.com/cbodonnell/connectfour/pkg/game/constants"
	"github.com/cbodonnell/connectfour/pkg/game/types"
)

// Game holds the authoritative board and applies the rules.
// It is not safe for concurrent use; see the state package.
type Game struct {
	rows             int
	cols             int
	board            [][]types.Cell
	mode             types.Mode
	turn             types.Cell
	gameOver         bool
	winner           types.Winner
	winningPositions []types.Position
}

type NewGameOptions struct {
	Rows int
	Cols int
	Mode types.Mode
}

func New(opts NewGameOptions) *Game {
	g := &Game{
		rows: opts.Rows,
		cols: opts.Cols,
		mode: opts.Mode,
	}
	if g.rows <= 0 {
		g.rows = constants.Rows
	}
	if g.cols <= 0 {
		g.cols = constants.Cols
	}
	if g.mode == types.ModeUnspecified {
		g.mode = types.ModeVsAutomated
	}
	g.Reset()
	return g
}

// Reset clears the board. PlayerA moves first.
func (g *Game) Reset() {
	g.board = make([][]types.Cell, g.rows)
	for r := range g.board {
		g.board[r] = make([]types.Cell, g.cols)
	}
	g.turn = types.CellPlayerA
	g.gameOver = false
	g.winner = types.WinnerNone
	g.winningPositions = nil
}

func (g *Game) Rows() int {
	return g.rows
}

func (g *Game) Cols() int {
	return g.cols
}

func (g *Game) Mode() types.Mode {
	return g.mode
}

// Turn is the piece that moves next.
func (g *Game) Turn() types.Cell {
	return g.turn
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

func (g *Game) Winner() types.Winner {
	return g.winner
}

func (g *Game) Cell(row, col int) types.Cell {
	return g.board[row][col]
}

// IsValidMove reports whether a piece can be dropped in col.
func (g *Game) IsValidMove(col int) bool {
	return col >= 0 && col < g.cols && g.board[0][col] == types.CellEmpty
}

// ValidColumns lists the columns that are not full, left to right.
func (g *Game) ValidColumns() []int {
	cols := make([]int, 0, g.cols)
	for c := 0; c < g.cols; c++ {
		if g.IsValidMove(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Drop places the piece whose turn it is in col and returns the row it landed in.
func (g *Game) Drop(col int) (int, error) {
	if g.gameOver {
		return -1, &ErrGameOver{}
	}
	if col < 0 || col >= g.cols {
		return -1, &ErrInvalidColumn{}
	}
	row := g.nextOpenRow(col)
	if row < 0 {
		return -1, &ErrColumnFull{}
	}
	g.board[row][col] = g.turn
	g.turn = g.turn.Opponent()
	g.checkWinner()
	return row, nil
}

func (g *Game) nextOpenRow(col int) int {
	for r := g.rows - 1; r >= 0; r-- {
		if g.board[r][col] == types.CellEmpty {
			return r
		}
	}
	return -1
}

// checkWinner scans for a line in the order horizontal, vertical, rising and falling
// diagonal, then for a full top row.
func (g *Game) checkWinner() {
	g.winningPositions = nil
	directions := [][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}
	for _, d := range directions {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if line := g.lineFrom(r, c, d[0], d[1]); line != nil {
					g.gameOver = true
					g.winner = types.WinnerFromCell(g.board[r][c])
					g.winningPositions = line
					return
				}
			}
		}
	}

	for c := 0; c < g.cols; c++ {
		if g.board[0][c] == types.CellEmpty {
			return
		}
	}
	g.gameOver = true
	g.winner = types.WinnerDraw
}

func (g *Game) lineFrom(row, col, dr, dc int) []types.Position {
	first := g.board[row][col]
	if first == types.CellEmpty {
		return nil
	}
	line := make([]types.Position, 0, constants.ConnectLength)
	for i := 0; i < constants.ConnectLength; i++ {
		r, c := row+i*dr, col+i*dc
		if r < 0 || r >= g.rows || c < 0 || c >= g.cols || g.board[r][c] != first {
			return nil
		}
		line = append(line, types.Position{Row: r, Col: c})
	}
	return line
}

// Snapshot returns the authoritative state in wire form.
func (g *Game) Snapshot() *types.Snapshot {
	flat := make([]types.Cell, 0, g.rows*g.cols)
	for _, row := range g.board {
		flat = append(flat, row...)
	}
	return &types.Snapshot{
		Board:            flat,
		Rows:             g.rows,
		Cols:             g.cols,
		GameOver:         g.gameOver,
		Winner:           g.winner,
		WinningPositions: append([]types.Position{}, g.winningPositions...),
		Mode:             g.mode,
	}
}

// Clone returns a deep copy, for opponents that want to look ahead.
func (g *Game) Clone() *Game {
	clone := *g
	clone.board = make([][]types.Cell, g.rows)
	for r, row := range g.board {
		clone.board[r] = append([]types.Cell(nil), row...)
	}
	clone.winningPositions = append([]types.Position(nil), g.winningPositions...)
	return &clone
}

// StatusMessage is the message sent with a move result.
func (g *Game) StatusMessage() string {
	if !g.gameOver {
		if g.mode == types.ModeVsHuman {
			return fmt.Sprintf("Player %s's turn.", g.turn.Symbol())
		}
		return "Your turn."
	}
	switch {
	case g.winner == types.WinnerDraw:
		return "It's a draw!"
	case g.mode == types.ModeVsHuman:
		return fmt.Sprintf("Player %s wins!", g.winner)
	case g.winner == types.WinnerPlayerA:
		return "You win!"
	default:
		return "Computer wins!"
	}
}

// ResetMessage is the message sent with a reset snapshot.
func (g *Game) ResetMessage() string {
	return "Game reset. " + g.StatusMessage()
}
