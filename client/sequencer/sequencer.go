// Package sequencer drives a move from request to the two-step presentation of its result.
package sequencer

import (
	"context"
	"sync"
	"time"

	"github.com/cbodonnell/connectfour/client/board"
	"github.com/cbodonnell/connectfour/client/highlight"
	"github.com/cbodonnell/connectfour/client/network"
	"github.com/cbodonnell/connectfour/client/reconcile"
	"github.com/cbodonnell/connectfour/pkg/game/constants"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/queue"
	"github.com/google/uuid"
)

// DelayFunc waits for d or until ctx is done.
type DelayFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default DelayFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Sequencer serializes moves and resets against the service and the local board.
//
// Every exported method that mutates state takes the shared lock. The read accessors
// (State, GameOver, Winner, Mode, LastError, EnabledColumns) expect the caller to hold it.
type Sequencer struct {
	mu         sync.Locker
	service    network.Service
	board      *board.Board
	reconciler *reconcile.Reconciler
	highlight  *highlight.Engine
	events     queue.Queue
	pause      time.Duration
	delay      DelayFunc
	now        func() time.Time
	logger     *log.Logger

	state      State
	gameOver   bool
	winner     types.Winner
	mode       types.Mode
	lastErr    error
	generation uint64
	// stale is set when the board may be behind the service, after a reset failed
	// and the board could not be reloaded. The next move reloads it first.
	stale bool
}

type NewSequencerOptions struct {
	// Lock guards the board and the sequencer. It is shared with whoever reads them.
	Lock       sync.Locker
	Service    network.Service
	Board      *board.Board
	Reconciler *reconcile.Reconciler
	Highlight  *highlight.Engine
	Events     queue.Queue
	// Pause between the human and automated cells. Defaults to constants.MovePause.
	Pause  time.Duration
	Delay  DelayFunc
	Now    func() time.Time
	Logger *log.Logger
}

func New(opts NewSequencerOptions) *Sequencer {
	s := &Sequencer{
		mu:         opts.Lock,
		service:    opts.Service,
		board:      opts.Board,
		reconciler: opts.Reconciler,
		highlight:  opts.Highlight,
		events:     opts.Events,
		pause:      opts.Pause,
		delay:      opts.Delay,
		now:        opts.Now,
		logger:     opts.Logger,
	}
	if s.mu == nil {
		s.mu = &sync.Mutex{}
	}
	if s.pause == 0 {
		s.pause = constants.MovePause
	}
	if s.delay == nil {
		s.delay = Sleep
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	s.logger = s.logger.WithComponent("sequencer")
	return s
}

// Load replaces the board with an authoritative snapshot and returns to Idle.
// Any in-flight move is discarded when its response arrives.
func (s *Sequencer) Load(snapshot *types.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.load(snapshot)
}

// Move submits a move in column. It returns false without error when the move is
// not allowed right now: a move is in progress, the game is over or the column is full.
// A column outside the board is an error and no request is sent.
func (s *Sequencer) Move(ctx context.Context, column int) (bool, error) {
	s.mu.Lock()
	stale := s.stale && s.state == StateIdle
	s.mu.Unlock()
	if stale {
		if err := s.resync(ctx); err != nil {
			return true, err
		}
	}

	s.mu.Lock()
	if s.state != StateIdle || s.gameOver {
		s.logger.Debug("Rejected move in column %d (state=%s gameOver=%t)", column, s.state, s.gameOver)
		s.mu.Unlock()
		return false, nil
	}
	full, err := s.board.IsColumnFull(column)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	if full {
		s.logger.Debug("Rejected move in full column %d", column)
		s.mu.Unlock()
		return false, nil
	}
	generation := s.generation
	mode := s.mode
	s.setState(StateAwaitingResponse)
	s.mu.Unlock()

	s.logger.Debug("Submitting move in column %d", column)
	result, err := s.service.Move(ctx, column)

	s.mu.Lock()
	if generation != s.generation {
		s.logger.Debug("Discarding stale move response for column %d", column)
		s.mu.Unlock()
		return true, nil
	}
	if err != nil {
		s.fail("submit move", err)
		s.mu.Unlock()
		return true, err
	}

	plan, err := s.reconciler.Stage(result, mode)
	if err != nil {
		s.fail("reconcile move", err)
		s.mu.Unlock()
		return true, err
	}
	if result.Mode != types.ModeUnspecified {
		s.mode = result.Mode
	}
	s.lastErr = nil

	s.setState(StateApplyingHuman)
	if err := plan.ApplyHuman(); err != nil {
		s.fail("apply human move", err)
		s.mu.Unlock()
		return true, err
	}
	s.emitApplied(EventHumanApplied, plan.HumanMove())

	automated, ok := plan.AutomatedMove()
	if plan.EndsOnHumanMove() || !ok {
		s.finish(result)
		s.mu.Unlock()
		return true, nil
	}

	s.setState(StatePausingForAutomated)
	s.mu.Unlock()

	if err := s.delay(ctx, s.pause); err != nil {
		s.logger.Debug("Pause interrupted: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		s.logger.Debug("Discarding automated move after reset")
		return true, nil
	}
	s.setState(StateApplyingAutomated)
	if err := plan.ApplyAutomated(); err != nil {
		s.fail("apply automated move", err)
		return true, err
	}
	s.emitApplied(EventAutomatedApplied, automated)
	s.finish(result)
	return true, nil
}

// Reset asks the service for a new game. It is accepted in every state.
func (s *Sequencer) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.setState(StateAwaitingResponse)
	s.mu.Unlock()

	s.logger.Debug("Requesting reset")
	snapshot, err := s.service.Reset(ctx)

	s.mu.Lock()
	if generation != s.generation {
		s.logger.Debug("Discarding superseded reset response")
		s.mu.Unlock()
		return nil
	}
	if err == nil {
		defer s.mu.Unlock()
		return s.load(snapshot)
	}
	// the service may have applied a move whose response this reset discarded
	s.stale = true
	s.mu.Unlock()

	if rerr := s.resync(ctx); rerr != nil {
		s.logger.Warn("Failed to reload board after failed reset: %v", rerr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return err
	}
	s.fail("reset game", err)
	return err
}

// resync replaces the board with the service's current state.
func (s *Sequencer) resync(ctx context.Context) error {
	s.mu.Lock()
	generation := s.generation
	s.setState(StateAwaitingResponse)
	s.mu.Unlock()

	s.logger.Debug("Reloading board from the service")
	snapshot, err := s.service.State(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return nil
	}
	if err != nil {
		s.fail("reload board", err)
		return err
	}
	return s.load(snapshot)
}

func (s *Sequencer) load(snapshot *types.Snapshot) error {
	if err := s.reconciler.Replace(snapshot); err != nil {
		s.fail("load snapshot", err)
		return err
	}
	if snapshot.Mode != types.ModeUnspecified {
		s.mode = snapshot.Mode
	}
	s.gameOver = snapshot.GameOver
	s.winner = snapshot.Winner
	s.lastErr = nil
	s.stale = false
	s.emit(Event{Type: EventBoardReplaced})
	if s.gameOver {
		s.enterGameOver(snapshot.WinningPositions)
	}
	s.setState(StateIdle)
	return nil
}

func (s *Sequencer) finish(result *types.MoveResult) {
	s.gameOver = result.GameOver
	s.winner = result.Winner
	if s.gameOver {
		s.enterGameOver(result.WinningPositions)
	}
	s.setState(StateIdle)
}

func (s *Sequencer) enterGameOver(positions []types.Position) {
	if err := s.highlight.ApplyWinHighlight(positions); err != nil {
		s.logger.Error("Failed to highlight winning positions: %v", err)
	}
	s.logger.Info("Game over (winner=%s)", s.winner)
	s.emit(Event{Type: EventGameOver, Winner: s.winner})
}

// fail records err for the status line and returns to Idle. Applied cells are kept.
func (s *Sequencer) fail(op string, err error) {
	s.logger.Error("Failed to %s: %v", op, err)
	s.lastErr = err
	s.emit(Event{Type: EventMoveFailed, Err: err})
	s.setState(StateIdle)
}

func (s *Sequencer) setState(state State) {
	if s.state == state {
		return
	}
	s.logger.Trace("State %s -> %s", s.state, state)
	s.state = state
	s.emit(Event{Type: EventStateChanged})
}

func (s *Sequencer) emitApplied(t EventType, p types.Position) {
	c, err := s.board.Cell(p.Row, p.Col)
	if err != nil {
		s.logger.Error("Failed to read applied cell %s: %v", p, err)
	}
	s.emit(Event{Type: t, Position: p, Cell: c})
}

func (s *Sequencer) emit(e Event) {
	if s.events == nil {
		return
	}
	e.ID = uuid.New().String()
	e.State = s.state
	e.Timestamp = s.now()
	if err := s.events.Enqueue(e); err != nil {
		s.logger.Warn("Failed to enqueue %s event: %v", e.Type, err)
	}
}

func (s *Sequencer) State() State {
	return s.state
}

func (s *Sequencer) GameOver() bool {
	return s.gameOver
}

func (s *Sequencer) Winner() types.Winner {
	return s.winner
}

func (s *Sequencer) Mode() types.Mode {
	return s.mode
}

// LastError is the failure of the most recent move or reset, cleared by the next success.
func (s *Sequencer) LastError() error {
	return s.lastErr
}

// EnabledColumns reports which columns currently accept a move.
func (s *Sequencer) EnabledColumns() []bool {
	enabled := make([]bool, s.board.Cols())
	if s.state != StateIdle || s.gameOver {
		return enabled
	}
	for c := range enabled {
		full, err := s.board.IsColumnFull(c)
		enabled[c] = err == nil && !full
	}
	return enabled
}
