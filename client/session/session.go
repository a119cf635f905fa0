// Package session wires the board, reconciler, highlight engine and sequencer behind the
// entry points used by renderers.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/connectfour/client/board"
	"github.com/cbodonnell/connectfour/client/highlight"
	"github.com/cbodonnell/connectfour/client/network"
	"github.com/cbodonnell/connectfour/client/reconcile"
	"github.com/cbodonnell/connectfour/client/sequencer"
	"github.com/cbodonnell/connectfour/pkg/game/constants"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/queue"
)

// Session is a single game session against the service.
// It is safe for concurrent use; board mutation and views are serialized by one lock.
type Session struct {
	mu        sync.Mutex
	service   network.Service
	board     *board.Board
	highlight *highlight.Engine
	sequencer *sequencer.Sequencer
	events    queue.Queue
	logger    *log.Logger

	loaded        bool
	connectFailed bool
}

type NewSessionOptions struct {
	Service network.Service
	// Rows and Cols size the board until the first snapshot arrives.
	Rows int
	Cols int
	// Pause between the human and automated cells.
	Pause time.Duration
	Delay sequencer.DelayFunc
	Now   func() time.Time
	// EventQueueSize bounds the renderer event queue.
	EventQueueSize int
	Logger         *log.Logger
}

func New(opts NewSessionOptions) (*Session, error) {
	if opts.Service == nil {
		return nil, fmt.Errorf("service is required")
	}
	rows, cols := opts.Rows, opts.Cols
	if rows == 0 && cols == 0 {
		rows, cols = constants.Rows, constants.Cols
	}
	queueSize := opts.EventQueueSize
	if queueSize == 0 {
		queueSize = constants.EventQueueSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	b, err := board.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %v", err)
	}
	h := highlight.New(b)

	s := &Session{
		service:   opts.Service,
		board:     b,
		highlight: h,
		events:    queue.NewInMemoryQueue(queueSize),
		logger:    logger.WithComponent("session"),
	}
	s.sequencer = sequencer.New(sequencer.NewSequencerOptions{
		Lock:    &s.mu,
		Service: opts.Service,
		Board:   b,
		Reconciler: reconcile.New(reconcile.NewReconcilerOptions{
			Board:     b,
			Highlight: h,
			Logger:    logger,
		}),
		Highlight: h,
		Events:    s.events,
		Pause:     opts.Pause,
		Delay:     opts.Delay,
		Now:       opts.Now,
		Logger:    logger,
	})
	return s, nil
}

// Initialize loads an authoritative snapshot, replacing whatever was shown.
func (s *Session) Initialize(snapshot *types.Snapshot) error {
	if err := s.sequencer.Load(snapshot); err != nil {
		return fmt.Errorf("failed to initialize session: %v", err)
	}
	s.mu.Lock()
	s.loaded = true
	s.connectFailed = false
	s.mu.Unlock()
	return nil
}

// Connect fetches the current state from the service and initializes the session with it.
func (s *Session) Connect(ctx context.Context) error {
	s.logger.Debug("Fetching game state")
	snapshot, err := s.service.State(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch game state: %v", err)
		s.mu.Lock()
		s.connectFailed = true
		s.mu.Unlock()
		return fmt.Errorf("failed to fetch game state: %w", err)
	}
	return s.Initialize(snapshot)
}

// Move requests a move in column. See sequencer.Sequencer.Move for the return values.
// Moves are rejected until the session has been initialized.
func (s *Session) Move(ctx context.Context, column int) (bool, error) {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if !loaded {
		return false, nil
	}
	return s.sequencer.Move(ctx, column)
}

// Reset starts a new game.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.sequencer.Reset(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.loaded = true
	s.connectFailed = false
	s.mu.Unlock()
	return nil
}

// Status returns the status line.
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

func (s *Session) status() string {
	return statusText(s.loaded, s.connectFailed, s.sequencer.LastError(), s.sequencer.GameOver(), s.sequencer.Winner(), s.sequencer.Mode(), s.board.Flat())
}

// View returns a consistent copy of the session for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, cols := s.board.Rows(), s.board.Cols()
	v := View{
		Rows:             rows,
		Cols:             cols,
		Cells:            s.board.Flat(),
		Appearances:      make([]highlight.Appearance, 0, rows*cols),
		EnabledColumns:   s.sequencer.EnabledColumns(),
		ResetEnabled:     true,
		State:            s.sequencer.State(),
		Status:           s.status(),
		Mode:             s.sequencer.Mode(),
		GameOver:         s.sequencer.GameOver(),
		Winner:           s.sequencer.Winner(),
		WinningPositions: s.highlight.Positions(),
		Loaded:           s.loaded,
	}
	if !s.loaded {
		v.EnabledColumns = make([]bool, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a, err := s.highlight.Appearance(r, c)
			if err != nil {
				s.logger.Error("Failed to resolve appearance of (%d,%d): %v", r, c, err)
			}
			v.Appearances = append(v.Appearances, a)
		}
	}
	return v
}

// Events returns the queue of sequencer events for renderers to drain.
func (s *Session) Events() queue.Queue {
	return s.events
}
