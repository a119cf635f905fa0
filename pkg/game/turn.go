package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/connectfour/pkg/game/types"
)

// PlayTurnOptions configures the automated reply of a turn.
type PlayTurnOptions struct {
	Opponent Opponent
	// ThinkTime delays the automated reply.
	ThinkTime time.Duration
}

// PlayTurn drops the mover's piece in column and, when playing against the automated
// opponent and the game goes on, the opponent's reply. The turn is all or nothing: when
// the reply cannot be played the mover's piece is taken back.
func (g *Game) PlayTurn(ctx context.Context, column int, opts PlayTurnOptions) (*types.MoveResult, error) {
	if g.mode == types.ModeVsAutomated && opts.Opponent == nil {
		return nil, fmt.Errorf("no opponent configured")
	}

	row, err := g.Drop(column)
	if err != nil {
		return nil, err
	}
	result := &types.MoveResult{
		HumanMove: &types.Position{Row: row, Col: column},
	}

	if !g.gameOver && g.mode == types.ModeVsAutomated {
		if opts.ThinkTime > 0 {
			timer := time.NewTimer(opts.ThinkTime)
			select {
			case <-ctx.Done():
				timer.Stop()
			case <-timer.C:
			}
		}
		reply, err := g.playOpponent(ctx, opts.Opponent)
		if err != nil {
			g.takeBack(row, column)
			return nil, err
		}
		result.AutomatedMove = reply
	}

	result.Snapshot = *g.Snapshot()
	result.Message = g.StatusMessage()
	return result, nil
}

func (g *Game) playOpponent(ctx context.Context, opponent Opponent) (*types.Position, error) {
	col, err := opponent.ChooseColumn(ctx, g.Clone())
	if err != nil {
		return nil, fmt.Errorf("failed to choose opponent column: %v", err)
	}
	row, err := g.Drop(col)
	if err != nil {
		return nil, fmt.Errorf("failed to drop opponent piece in column %d: %v", col, err)
	}
	return &types.Position{Row: row, Col: col}, nil
}

// takeBack empties a cell filled by the last Drop of a game that is still going on.
func (g *Game) takeBack(row, col int) {
	g.board[row][col] = types.CellEmpty
	g.turn = g.turn.Opponent()
}
