package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/cbodonnell/connectfour/client/highlight"
	"github.com/cbodonnell/connectfour/client/network"
	"github.com/cbodonnell/connectfour/client/reconcile"
	"github.com/cbodonnell/connectfour/client/sequencer"
	mocks "github.com/cbodonnell/connectfour/mocks/github.com/cbodonnell/connectfour/client/network"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func noDelay(ctx context.Context, d time.Duration) error {
	return nil
}

func newTestSession(t *testing.T) (*Session, *mocks.Service) {
	t.Helper()
	service := mocks.NewService(t)
	s, err := New(NewSessionOptions{
		Service: service,
		Delay:   noDelay,
		Logger:  log.New(io.Discard, "", 0, log.LogLevelError),
	})
	require.NoError(t, err)
	return s, service
}

func flat(set map[types.Position]types.Cell) []types.Cell {
	cells := make([]types.Cell, 6*7)
	for p, c := range set {
		cells[p.Row*7+p.Col] = c
	}
	return cells
}

func emptySnapshot(mode types.Mode) *types.Snapshot {
	return &types.Snapshot{Board: flat(nil), Rows: 6, Cols: 7, Mode: mode}
}

func nonEmpty(cells []types.Cell) []int {
	out := []int{}
	for i, c := range cells {
		if c != types.CellEmpty {
			out = append(out, i)
		}
	}
	return out
}

func TestNew_requiresService(t *testing.T) {
	_, err := New(NewSessionOptions{})
	assert.Error(t, err)
}

func TestSession_beforeConnect(t *testing.T) {
	s, _ := newTestSession(t)

	view := s.View()
	assert.False(t, view.Loaded)
	assert.Equal(t, StatusLoading, view.Status)
	for c := 0; c < view.Cols; c++ {
		assert.False(t, view.ColumnEnabled(c))
	}

	accepted, err := s.Move(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestSession_Connect(t *testing.T) {
	s, service := newTestSession(t)
	service.EXPECT().State(mock.Anything).Return(emptySnapshot(types.ModeVsAutomated), nil).Once()

	require.NoError(t, s.Connect(context.Background()))

	view := s.View()
	assert.True(t, view.Loaded)
	assert.Equal(t, 6, view.Rows)
	assert.Equal(t, 7, view.Cols)
	assert.Equal(t, StatusYourTurn, view.Status)
	assert.Equal(t, types.ModeVsAutomated, view.Mode)
	for c := 0; c < view.Cols; c++ {
		assert.True(t, view.ColumnEnabled(c))
	}
	assert.True(t, view.ResetEnabled)
}

func TestSession_Connect_failure(t *testing.T) {
	s, service := newTestSession(t)
	service.EXPECT().State(mock.Anything).Return(nil, &network.ErrTransport{Message: "failed to reach server"}).Once()

	err := s.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*network.ErrTransport)))
	assert.Equal(t, StatusConnectionError, s.Status())
}

func TestSession_moveInProgress(t *testing.T) {
	s, service := newTestSession(t)
	require.NoError(t, s.Initialize(emptySnapshot(types.ModeVsAutomated)))

	service.EXPECT().Move(mock.Anything, 3).Return(&types.MoveResult{
		Snapshot:  types.Snapshot{Board: flat(map[types.Position]types.Cell{{Row: 5, Col: 3}: types.CellPlayerA})},
		HumanMove: &types.Position{Row: 5, Col: 3},
	}, nil).Once()

	accepted, err := s.Move(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, accepted)

	view := s.View()
	assert.Equal(t, []int{5*7 + 3}, nonEmpty(view.Cells))
	assert.Equal(t, types.CellPlayerA, view.Cell(5, 3))
	assert.Equal(t, highlight.AppearancePlayerA, view.Appearance(5, 3))
	assert.False(t, view.GameOver)
	assert.Equal(t, StatusYourTurn, view.Status)
	assert.Equal(t, sequencer.StateIdle, view.State)
}

func TestSession_winHighlightAndRejection(t *testing.T) {
	s, service := newTestSession(t)
	start := map[types.Position]types.Cell{
		{Row: 5, Col: 0}: types.CellPlayerA, {Row: 5, Col: 1}: types.CellPlayerA, {Row: 5, Col: 2}: types.CellPlayerA,
		{Row: 4, Col: 0}: types.CellPlayerB, {Row: 4, Col: 1}: types.CellPlayerB, {Row: 4, Col: 2}: types.CellPlayerB,
	}
	snapshot := emptySnapshot(types.ModeVsAutomated)
	snapshot.Board = flat(start)
	require.NoError(t, s.Initialize(snapshot))

	end := map[types.Position]types.Cell{{Row: 5, Col: 3}: types.CellPlayerA}
	for p, c := range start {
		end[p] = c
	}
	winning := []types.Position{{Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 5, Col: 2}, {Row: 5, Col: 3}}
	service.EXPECT().Move(mock.Anything, 3).Return(&types.MoveResult{
		Snapshot: types.Snapshot{
			Board:            flat(end),
			GameOver:         true,
			Winner:           types.WinnerPlayerA,
			WinningPositions: winning,
		},
		HumanMove: &types.Position{Row: 5, Col: 3},
	}, nil).Once()

	accepted, err := s.Move(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, accepted)

	view := s.View()
	assert.Equal(t, StatusYouWin, view.Status)
	assert.Equal(t, winning, view.WinningPositions)
	highlighted := 0
	for r := 0; r < view.Rows; r++ {
		for c := 0; c < view.Cols; c++ {
			if view.Appearance(r, c) == highlight.AppearanceWinning {
				highlighted++
			}
		}
	}
	assert.Equal(t, 4, highlighted)

	before := view.Cells
	for c := 0; c < view.Cols; c++ {
		accepted, err := s.Move(context.Background(), c)
		require.NoError(t, err)
		assert.False(t, accepted, "column %d", c)
	}
	assert.Equal(t, before, s.View().Cells)
	assert.Equal(t, StatusYouWin, s.Status())
}

func TestSession_fullColumnRejected(t *testing.T) {
	s, _ := newTestSession(t)
	column := map[types.Position]types.Cell{}
	for r := 0; r < 6; r++ {
		if r%2 == 0 {
			column[types.Position{Row: r, Col: 2}] = types.CellPlayerA
		} else {
			column[types.Position{Row: r, Col: 2}] = types.CellPlayerB
		}
	}
	snapshot := emptySnapshot(types.ModeVsAutomated)
	snapshot.Board = flat(column)
	require.NoError(t, s.Initialize(snapshot))

	before := s.View()
	accepted, err := s.Move(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, before.Cells, s.View().Cells)
	assert.False(t, before.ColumnEnabled(2))
	assert.Equal(t, StatusYourTurn, s.Status(), "a rejected move never changes the status")
}

func TestSession_errorStatus(t *testing.T) {
	s, service := newTestSession(t)
	require.NoError(t, s.Initialize(emptySnapshot(types.ModeVsAutomated)))

	service.EXPECT().Move(mock.Anything, 1).Return(nil, &network.ErrTransport{Status: 400, Message: "Game is over"}).Once()
	_, err := s.Move(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "Error: Game is over", s.Status())

	service.EXPECT().Move(mock.Anything, 1).Return(&types.MoveResult{
		Snapshot: types.Snapshot{Board: flat(map[types.Position]types.Cell{
			{Row: 5, Col: 1}: types.CellPlayerA,
			{Row: 5, Col: 0}: types.CellPlayerB,
		})},
		HumanMove: &types.Position{Row: 5, Col: 1},
	}, nil).Once()
	_, err = s.Move(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, reconcile.IsInconsistentMoveResult(err))
	assert.Contains(t, s.Status(), "Error: inconsistent move result")
	assert.Empty(t, nonEmpty(s.View().Cells))

	service.EXPECT().Move(mock.Anything, 1).Return(&types.MoveResult{
		Snapshot:  types.Snapshot{Board: flat(map[types.Position]types.Cell{{Row: 5, Col: 1}: types.CellPlayerA})},
		HumanMove: &types.Position{Row: 5, Col: 1},
	}, nil).Once()
	_, err = s.Move(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, StatusYourTurn, s.Status())
}

func TestSession_Reset(t *testing.T) {
	s, service := newTestSession(t)
	snapshot := emptySnapshot(types.ModeVsAutomated)
	snapshot.Board = flat(map[types.Position]types.Cell{
		{Row: 5, Col: 0}: types.CellPlayerA, {Row: 5, Col: 1}: types.CellPlayerA,
		{Row: 5, Col: 2}: types.CellPlayerA, {Row: 5, Col: 3}: types.CellPlayerA,
		{Row: 5, Col: 6}: types.CellPlayerB, {Row: 4, Col: 6}: types.CellPlayerB, {Row: 3, Col: 6}: types.CellPlayerB,
	})
	snapshot.GameOver = true
	snapshot.Winner = types.WinnerPlayerA
	snapshot.WinningPositions = []types.Position{{Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 5, Col: 2}, {Row: 5, Col: 3}}
	require.NoError(t, s.Initialize(snapshot))
	assert.Equal(t, StatusYouWin, s.Status())

	reset := emptySnapshot(types.ModeVsAutomated)
	reset.Message = "Game reset. Your turn."
	service.EXPECT().Reset(mock.Anything).Return(reset, nil).Once()
	require.NoError(t, s.Reset(context.Background()))

	view := s.View()
	assert.Empty(t, nonEmpty(view.Cells))
	assert.Empty(t, view.WinningPositions)
	for r := 0; r < view.Rows; r++ {
		for c := 0; c < view.Cols; c++ {
			assert.NotEqual(t, highlight.AppearanceWinning, view.Appearance(r, c))
		}
	}
	for c := 0; c < view.Cols; c++ {
		assert.True(t, view.ColumnEnabled(c))
	}
	assert.Equal(t, StatusYourTurn, view.Status)
}

func TestSession_Reset_afterConnectFailure(t *testing.T) {
	s, service := newTestSession(t)
	service.EXPECT().State(mock.Anything).Return(nil, &network.ErrTransport{Message: "failed to reach server"}).Once()
	require.Error(t, s.Connect(context.Background()))

	service.EXPECT().Reset(mock.Anything).Return(emptySnapshot(types.ModeVsAutomated), nil).Once()
	require.NoError(t, s.Reset(context.Background()))
	assert.Equal(t, StatusYourTurn, s.Status())
	assert.True(t, s.View().Loaded)
}

func TestSession_Events(t *testing.T) {
	s, service := newTestSession(t)
	require.NoError(t, s.Initialize(emptySnapshot(types.ModeVsAutomated)))

	service.EXPECT().Move(mock.Anything, 4).Return(&types.MoveResult{
		Snapshot: types.Snapshot{Board: flat(map[types.Position]types.Cell{
			{Row: 5, Col: 4}: types.CellPlayerA,
			{Row: 4, Col: 4}: types.CellPlayerB,
		})},
		HumanMove:     &types.Position{Row: 5, Col: 4},
		AutomatedMove: &types.Position{Row: 4, Col: 4},
	}, nil).Once()
	_, err := s.Move(context.Background(), 4)
	require.NoError(t, err)

	items, err := s.Events().ReadAllMessages()
	require.NoError(t, err)
	applied := []types.Position{}
	for _, item := range items {
		e := item.(sequencer.Event)
		if e.Type == sequencer.EventHumanApplied || e.Type == sequencer.EventAutomatedApplied {
			applied = append(applied, e.Position)
		}
	}
	assert.Equal(t, []types.Position{{Row: 5, Col: 4}, {Row: 4, Col: 4}}, applied)
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name          string
		loaded        bool
		connectFailed bool
		lastErr       error
		gameOver      bool
		winner        types.Winner
		mode          types.Mode
		cells         []types.Cell
		want          string
	}{
		{name: "loading", want: StatusLoading},
		{name: "connection error", connectFailed: true, want: StatusConnectionError},
		{name: "your turn", loaded: true, mode: types.ModeVsAutomated, want: "Your turn"},
		{name: "unspecified mode", loaded: true, want: "Your turn"},
		{name: "you win", loaded: true, gameOver: true, winner: types.WinnerPlayerA, mode: types.ModeVsAutomated, want: "You win!"},
		{name: "computer wins", loaded: true, gameOver: true, winner: types.WinnerPlayerB, mode: types.ModeVsAutomated, want: "Computer wins!"},
		{name: "draw", loaded: true, gameOver: true, winner: types.WinnerDraw, mode: types.ModeVsAutomated, want: "It's a draw!"},
		{name: "versus draw", loaded: true, gameOver: true, winner: types.WinnerDraw, mode: types.ModeVsHuman, want: "It's a draw!"},
		{name: "player wins", loaded: true, gameOver: true, winner: types.WinnerPlayerB, mode: types.ModeVsHuman, want: "Player Y wins!"},
		{name: "player R turn", loaded: true, mode: types.ModeVsHuman, cells: []types.Cell{types.CellPlayerA, types.CellPlayerB}, want: "Player R's turn"},
		{name: "player Y turn", loaded: true, mode: types.ModeVsHuman, cells: []types.Cell{types.CellPlayerA, types.CellEmpty}, want: "Player Y's turn"},
		{name: "transport error", loaded: true, lastErr: &network.ErrTransport{Status: 400, Message: "Column is full"}, want: "Error: Column is full"},
		{name: "other error", loaded: true, lastErr: errors.New("boom"), want: "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusText(tt.loaded, tt.connectFailed, tt.lastErr, tt.gameOver, tt.winner, tt.mode, tt.cells))
		})
	}
}
