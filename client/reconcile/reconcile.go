// Package reconcile merges authoritative snapshots into the local board.
package reconcile

import (
	"fmt"

	"github.com/cbodonnell/connectfour/client/board"
	"github.com/cbodonnell/connectfour/client/highlight"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
)

type Reconciler struct {
	board     *board.Board
	highlight *highlight.Engine
	logger    *log.Logger
}

type NewReconcilerOptions struct {
	Board     *board.Board
	Highlight *highlight.Engine
	Logger    *log.Logger
}

func New(opts NewReconcilerOptions) *Reconciler {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{
		board:     opts.Board,
		highlight: opts.Highlight,
		logger:    logger.WithComponent("reconcile"),
	}
}

// Replace discards the local grid and overlay and loads the snapshot as is.
// Snapshots without dimensions keep the current ones.
func (r *Reconciler) Replace(snapshot *types.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	rows, cols := snapshot.Rows, snapshot.Cols
	if rows == 0 && cols == 0 {
		rows, cols = r.board.Rows(), r.board.Cols()
	}
	if len(snapshot.Board) != rows*cols {
		return &board.ErrLengthMismatch{Got: len(snapshot.Board), Want: rows * cols}
	}
	if rows != r.board.Rows() || cols != r.board.Cols() {
		r.logger.Debug("resizing board from %dx%d to %dx%d", r.board.Rows(), r.board.Cols(), rows, cols)
		if err := r.board.Initialize(rows, cols); err != nil {
			return fmt.Errorf("failed to initialize board: %v", err)
		}
	}
	if err := r.board.ReplaceFromFlat(snapshot.Board); err != nil {
		return fmt.Errorf("failed to replace board: %v", err)
	}
	r.highlight.ClearWinHighlight()
	r.logger.Trace("replaced board from snapshot (gameOver=%t winner=%s)", snapshot.GameOver, snapshot.Winner)
	return nil
}

// Stage checks a move result against the local board and writes everything except the
// two move cells, which the returned plan applies one at a time.
// Nothing is written when an error is returned.
func (r *Reconciler) Stage(result *types.MoveResult, mode types.Mode) (*Plan, error) {
	if err := r.check(result, mode); err != nil {
		return nil, err
	}

	cols := r.board.Cols()
	staged := append([]types.Cell(nil), result.Board...)
	staged[result.HumanMove.Row*cols+result.HumanMove.Col] = types.CellEmpty
	if result.AutomatedMove != nil {
		staged[result.AutomatedMove.Row*cols+result.AutomatedMove.Col] = types.CellEmpty
	}
	if err := r.board.ReplaceFromFlat(staged); err != nil {
		return nil, fmt.Errorf("failed to stage board: %v", err)
	}
	if !result.GameOver {
		r.highlight.ClearWinHighlight()
	}

	plan := &Plan{
		board:  r.board,
		result: result,
		human:  result.Board[result.HumanMove.Row*cols+result.HumanMove.Col],
	}
	if result.AutomatedMove != nil {
		plan.automated = result.Board[result.AutomatedMove.Row*cols+result.AutomatedMove.Col]
	}
	r.logger.Trace("staged move result (human=%s automated=%v)", result.HumanMove, result.AutomatedMove)
	return plan, nil
}

func (r *Reconciler) check(result *types.MoveResult, mode types.Mode) error {
	rows, cols := r.board.Rows(), r.board.Cols()
	if (result.Rows != 0 || result.Cols != 0) && (result.Rows != rows || result.Cols != cols) {
		return inconsistent("dimensions %dx%d do not match board %dx%d", result.Rows, result.Cols, rows, cols)
	}
	if len(result.Board) != rows*cols {
		return inconsistent("board has %d cells, expected %d", len(result.Board), rows*cols)
	}
	if result.GameOver != (result.Winner != types.WinnerNone) {
		return inconsistent("gameOver=%t with winner %s", result.GameOver, result.Winner)
	}
	if result.Winner.IsPlayer() != (len(result.WinningPositions) > 0) {
		return inconsistent("winner %s with %d winning positions", result.Winner, len(result.WinningPositions))
	}
	for _, p := range result.WinningPositions {
		if !r.board.InBounds(p.Row, p.Col) {
			return inconsistent("winning position %s is out of bounds", p)
		}
	}

	human := result.HumanMove
	if human == nil {
		return inconsistent("no human move reported")
	}
	if !r.board.InBounds(human.Row, human.Col) {
		return inconsistent("human move %s is out of bounds", human)
	}
	humanValue := result.Board[human.Row*cols+human.Col]
	switch {
	case mode == types.ModeVsAutomated && humanValue != types.CellPlayerA:
		return inconsistent("human move %s holds %s", human, humanValue)
	case !humanValue.IsPlayer():
		return inconsistent("human move %s is empty", human)
	}

	automated := result.AutomatedMove
	if automated != nil {
		if !r.board.InBounds(automated.Row, automated.Col) {
			return inconsistent("automated move %s is out of bounds", automated)
		}
		if *automated == *human {
			return inconsistent("human and automated moves both name %s", human)
		}
		if v := result.Board[automated.Row*cols+automated.Col]; v != humanValue.Opponent() {
			return inconsistent("automated move %s holds %s", automated, v)
		}
	}

	current := r.board.Flat()
	for i, v := range result.Board {
		row, col := i/cols, i%cols
		named := (row == human.Row && col == human.Col) ||
			(automated != nil && row == automated.Row && col == automated.Col)
		if named {
			if current[i] != types.CellEmpty {
				return inconsistent("move cell (%d,%d) is already %s", row, col, current[i])
			}
			continue
		}
		if current[i] != v {
			return inconsistent("cell (%d,%d) changed from %s to %s", row, col, current[i], v)
		}
	}
	return nil
}

// Plan applies the held move cells of a staged result.
type Plan struct {
	board     *board.Board
	result    *types.MoveResult
	human     types.Cell
	automated types.Cell
}

func (p *Plan) HumanMove() types.Position {
	return *p.result.HumanMove
}

// AutomatedMove returns the automated move cell, if one was reported.
func (p *Plan) AutomatedMove() (types.Position, bool) {
	if p.result.AutomatedMove == nil {
		return types.Position{}, false
	}
	return *p.result.AutomatedMove, true
}

// EndsOnHumanMove reports whether the game ended with the human move.
func (p *Plan) EndsOnHumanMove() bool {
	return p.result.GameOver && p.result.AutomatedMove == nil
}

func (p *Plan) Result() *types.MoveResult {
	return p.result
}

func (p *Plan) ApplyHuman() error {
	h := p.result.HumanMove
	return p.board.SetCell(h.Row, h.Col, p.human)
}

// ApplyAutomated is a no-op when no automated move was reported.
func (p *Plan) ApplyAutomated() error {
	a := p.result.AutomatedMove
	if a == nil {
		return nil
	}
	return p.board.SetCell(a.Row, a.Col, p.automated)
}
