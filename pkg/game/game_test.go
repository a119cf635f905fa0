package game

import (
	"context"
	"errors"
	"testing"

	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dropAll(t *testing.T, g *Game, cols ...int) {
	t.Helper()
	for _, c := range cols {
		_, err := g.Drop(c)
		require.NoError(t, err, "drop in column %d", c)
	}
}

func TestGame_Drop_gravity(t *testing.T) {
	g := New(NewGameOptions{})
	assert.Equal(t, 6, g.Rows())
	assert.Equal(t, 7, g.Cols())
	assert.Equal(t, types.ModeVsAutomated, g.Mode())

	for want := 5; want >= 0; want-- {
		row, err := g.Drop(2)
		require.NoError(t, err)
		assert.Equal(t, want, row)
	}
	assert.Equal(t, types.CellPlayerA, g.Cell(5, 2))
	assert.Equal(t, types.CellPlayerB, g.Cell(4, 2))
	assert.False(t, g.IsValidMove(2))

	_, err := g.Drop(2)
	assert.True(t, IsColumnFull(err))
	_, err = g.Drop(7)
	assert.True(t, IsInvalidColumn(err))
	_, err = g.Drop(-1)
	assert.True(t, IsInvalidColumn(err))
	assert.Equal(t, []int{0, 1, 3, 4, 5, 6}, g.ValidColumns())
}

func TestGame_winner(t *testing.T) {
	tests := []struct {
		name    string
		drops   []int
		winner  types.Winner
		winning []types.Position
	}{
		{
			name:    "horizontal",
			drops:   []int{0, 0, 1, 1, 2, 2, 3},
			winner:  types.WinnerPlayerA,
			winning: []types.Position{{Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 5, Col: 2}, {Row: 5, Col: 3}},
		},
		{
			name:    "vertical",
			drops:   []int{6, 0, 6, 0, 6, 0, 5, 0},
			winner:  types.WinnerPlayerB,
			winning: []types.Position{{Row: 2, Col: 0}, {Row: 3, Col: 0}, {Row: 4, Col: 0}, {Row: 5, Col: 0}},
		},
		{
			name:    "rising diagonal",
			drops:   []int{0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3},
			winner:  types.WinnerPlayerA,
			winning: []types.Position{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 1}, {Row: 5, Col: 0}},
		},
		{
			name:    "falling diagonal",
			drops:   []int{3, 2, 2, 1, 1, 0, 1, 0, 0, 6, 0},
			winner:  types.WinnerPlayerA,
			winning: []types.Position{{Row: 2, Col: 0}, {Row: 3, Col: 1}, {Row: 4, Col: 2}, {Row: 5, Col: 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(NewGameOptions{Mode: types.ModeVsHuman})
			dropAll(t, g, tt.drops...)

			assert.True(t, g.GameOver())
			assert.Equal(t, tt.winner, g.Winner())
			snapshot := g.Snapshot()
			assert.ElementsMatch(t, tt.winning, snapshot.WinningPositions)
			assert.NoError(t, snapshot.Validate())

			_, err := g.Drop(4)
			assert.True(t, IsGameOver(err))
		})
	}
}

func TestGame_draw(t *testing.T) {
	g := New(NewGameOptions{Rows: 2, Cols: 2, Mode: types.ModeVsHuman})
	dropAll(t, g, 0, 1, 0, 1)

	assert.True(t, g.GameOver())
	assert.Equal(t, types.WinnerDraw, g.Winner())
	assert.Empty(t, g.Snapshot().WinningPositions)
	assert.Equal(t, "It's a draw!", g.StatusMessage())
}

func TestGame_ResetAndSnapshot(t *testing.T) {
	g := New(NewGameOptions{})
	dropAll(t, g, 0, 0, 1, 1, 2, 2, 3)
	require.True(t, g.GameOver())

	g.Reset()
	snapshot := g.Snapshot()
	assert.False(t, snapshot.GameOver)
	assert.Equal(t, types.WinnerNone, snapshot.Winner)
	assert.Len(t, snapshot.Board, 42)
	for _, c := range snapshot.Board {
		assert.Equal(t, types.CellEmpty, c)
	}
	assert.Equal(t, types.CellPlayerA, g.Turn())
	assert.Equal(t, "Game reset. Your turn.", g.ResetMessage())
}

func TestGame_Clone(t *testing.T) {
	g := New(NewGameOptions{})
	dropAll(t, g, 3)

	clone := g.Clone()
	dropAll(t, clone, 3)

	assert.Equal(t, types.CellEmpty, g.Cell(4, 3))
	assert.Equal(t, types.CellPlayerB, clone.Cell(4, 3))
}

func TestGame_PlayTurn(t *testing.T) {
	g := New(NewGameOptions{})

	result, err := g.PlayTurn(context.Background(), 3, PlayTurnOptions{Opponent: FirstAvailableOpponent{}})
	require.NoError(t, err)
	require.NotNil(t, result.HumanMove)
	require.NotNil(t, result.AutomatedMove)
	assert.Equal(t, types.Position{Row: 5, Col: 3}, *result.HumanMove)
	assert.Equal(t, types.Position{Row: 5, Col: 0}, *result.AutomatedMove)
	assert.Equal(t, "Your turn.", result.Message)
	assert.Equal(t, types.CellPlayerA, result.CellAt(*result.HumanMove))
	assert.Equal(t, types.CellPlayerB, result.CellAt(*result.AutomatedMove))
}

func TestGame_PlayTurn_winEndsTurn(t *testing.T) {
	g := New(NewGameOptions{})
	// the first-available opponent stacks column 0 while the human builds row 5
	for _, c := range []int{1, 2, 3} {
		_, err := g.PlayTurn(context.Background(), c, PlayTurnOptions{Opponent: FirstAvailableOpponent{}})
		require.NoError(t, err)
	}

	result, err := g.PlayTurn(context.Background(), 4, PlayTurnOptions{Opponent: FirstAvailableOpponent{}})
	require.NoError(t, err)
	assert.Nil(t, result.AutomatedMove)
	assert.True(t, result.GameOver)
	assert.Equal(t, types.WinnerPlayerA, result.Winner)
	assert.Equal(t, "You win!", result.Message)
}

func TestGame_PlayTurn_vsHuman(t *testing.T) {
	g := New(NewGameOptions{Mode: types.ModeVsHuman})

	result, err := g.PlayTurn(context.Background(), 0, PlayTurnOptions{})
	require.NoError(t, err)
	assert.Nil(t, result.AutomatedMove)
	assert.Equal(t, "Player Y's turn.", result.Message)

	result, err = g.PlayTurn(context.Background(), 0, PlayTurnOptions{})
	require.NoError(t, err)
	assert.Equal(t, types.CellPlayerB, result.CellAt(*result.HumanMove))
}

func TestGame_PlayTurn_illegal(t *testing.T) {
	g := New(NewGameOptions{})
	_, err := g.PlayTurn(context.Background(), 9, PlayTurnOptions{Opponent: FirstAvailableOpponent{}})
	assert.True(t, IsIllegalMove(err))
	assert.Empty(t, nonEmpty(g))
}

type opponentFunc func(ctx context.Context, g *Game) (int, error)

func (f opponentFunc) ChooseColumn(ctx context.Context, g *Game) (int, error) {
	return f(ctx, g)
}

func TestGame_PlayTurn_opponentCannotReply(t *testing.T) {
	tests := []struct {
		name     string
		opponent Opponent
	}{
		{name: "no opponent"},
		{
			name: "opponent error",
			opponent: opponentFunc(func(ctx context.Context, g *Game) (int, error) {
				return -1, errors.New("no reply")
			}),
		},
		{
			name: "opponent picks an invalid column",
			opponent: opponentFunc(func(ctx context.Context, g *Game) (int, error) {
				return 99, nil
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(NewGameOptions{})
			dropAll(t, g, 0, 6)

			_, err := g.PlayTurn(context.Background(), 3, PlayTurnOptions{Opponent: tt.opponent})
			require.Error(t, err)
			assert.False(t, IsIllegalMove(err))
			assert.Equal(t, []types.Position{{Row: 5, Col: 0}, {Row: 5, Col: 6}}, nonEmpty(g), "the mover's piece is taken back")
			assert.Equal(t, types.CellPlayerA, g.Turn())
			assert.False(t, g.GameOver())

			result, err := g.PlayTurn(context.Background(), 3, PlayTurnOptions{Opponent: FirstAvailableOpponent{}})
			require.NoError(t, err)
			assert.Equal(t, types.Position{Row: 5, Col: 3}, *result.HumanMove)
		})
	}
}

func nonEmpty(g *Game) []types.Position {
	out := []types.Position{}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Cell(r, c) != types.CellEmpty {
				out = append(out, types.Position{Row: r, Col: c})
			}
		}
	}
	return out
}

func TestRandomOpponent(t *testing.T) {
	g := New(NewGameOptions{Rows: 1, Cols: 3, Mode: types.ModeVsHuman})
	dropAll(t, g, 0, 2)

	o := NewRandomOpponent(42)
	for i := 0; i < 10; i++ {
		col, err := o.ChooseColumn(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, 1, col)
	}

	dropAll(t, g, 1)
	_, err := o.ChooseColumn(context.Background(), g)
	assert.Error(t, err)
}

func TestParseOpponent(t *testing.T) {
	o, err := ParseOpponent("first", 1)
	require.NoError(t, err)
	assert.IsType(t, FirstAvailableOpponent{}, o)

	o, err = ParseOpponent("random", 1)
	require.NoError(t, err)
	assert.IsType(t, &RandomOpponent{}, o)

	_, err = ParseOpponent("minimax", 1)
	assert.Error(t, err)
}
