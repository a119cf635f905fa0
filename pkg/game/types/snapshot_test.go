package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_UnmarshalJSON_stateResponse(t *testing.T) {
	payload := `{
		"board": ["", "R", "Y", "", "", "", ""],
		"rows": 1,
		"cols": 7,
		"gameOver": false,
		"winner": null,
		"winningPositions": [],
		"playerVsComputer": true
	}`

	var s Snapshot
	require.NoError(t, json.Unmarshal([]byte(payload), &s))

	assert.Equal(t, []Cell{CellEmpty, CellPlayerA, CellPlayerB, CellEmpty, CellEmpty, CellEmpty, CellEmpty}, s.Board)
	assert.Equal(t, 1, s.Rows)
	assert.Equal(t, 7, s.Cols)
	assert.False(t, s.GameOver)
	assert.Equal(t, WinnerNone, s.Winner)
	assert.Equal(t, ModeVsAutomated, s.Mode)
	assert.NoError(t, s.Validate())
}

func TestMoveResult_UnmarshalJSON_moveResponse(t *testing.T) {
	payload := `{
		"playerMoveRow": 5,
		"playerMoveCol": 3,
		"computerMoved": true,
		"computerMoveCol": 2,
		"computerMoveRow": 5,
		"board": ["R", "R", "R", "R", "Y", "Y", "Y", "", "", "", "", "", "", ""],
		"gameOver": true,
		"winner": "R",
		"winningPositions": [[0, 0], [0, 1], [0, 2], [0, 3]],
		"message": "You win!"
	}`

	var m MoveResult
	require.NoError(t, json.Unmarshal([]byte(payload), &m))

	require.NotNil(t, m.HumanMove)
	assert.Equal(t, Position{Row: 5, Col: 3}, *m.HumanMove)
	require.NotNil(t, m.AutomatedMove)
	assert.Equal(t, Position{Row: 5, Col: 2}, *m.AutomatedMove)
	assert.Equal(t, WinnerPlayerA, m.Winner)
	assert.Equal(t, ModeUnspecified, m.Mode)
	assert.Equal(t, 0, m.Rows)
	assert.Len(t, m.Board, 14)
	assert.Equal(t, []Position{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, m.WinningPositions)
	assert.Equal(t, "You win!", m.Message)
}

func TestMoveResult_UnmarshalJSON_noComputerMove(t *testing.T) {
	payload := `{"playerMoveRow": 5, "playerMoveCol": 0, "computerMoved": false, "board": [""], "gameOver": false, "winner": null, "winningPositions": []}`

	var m MoveResult
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	assert.NotNil(t, m.HumanMove)
	assert.Nil(t, m.AutomatedMove)
}

func TestMoveResult_MarshalJSON(t *testing.T) {
	m := MoveResult{
		Snapshot: Snapshot{
			Board:    []Cell{CellEmpty, CellPlayerA},
			Rows:     1,
			Cols:     2,
			Winner:   WinnerNone,
			Mode:     ModeVsHuman,
			Message:  "Your turn.",
			GameOver: false,
		},
		HumanMove: &Position{Row: 0, Col: 1},
	}

	b, err := json.Marshal(m)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, []interface{}{"", "R"}, raw["board"])
	assert.Equal(t, float64(0), raw["playerMoveRow"])
	assert.Equal(t, float64(1), raw["playerMoveCol"])
	assert.Equal(t, false, raw["computerMoved"])
	assert.Equal(t, false, raw["playerVsComputer"])
	assert.Nil(t, raw["winner"])
	assert.Equal(t, []interface{}{}, raw["winningPositions"])
	assert.NotContains(t, raw, "computerMoveRow")
}

func TestCell_UnmarshalJSON_unknown(t *testing.T) {
	var c Cell
	assert.Error(t, json.Unmarshal([]byte(`"X"`), &c))
}

func TestSnapshot_Validate(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		wantErr  bool
	}{
		{
			name:     "in progress",
			snapshot: Snapshot{Board: make([]Cell, 4), Rows: 2, Cols: 2},
		},
		{
			name:     "length mismatch",
			snapshot: Snapshot{Board: make([]Cell, 3), Rows: 2, Cols: 2},
			wantErr:  true,
		},
		{
			name:     "negative dimensions",
			snapshot: Snapshot{Board: make([]Cell, 4), Rows: -2, Cols: -2},
			wantErr:  true,
		},
		{
			name:     "draw without positions",
			snapshot: Snapshot{Board: make([]Cell, 4), Rows: 2, Cols: 2, GameOver: true, Winner: WinnerDraw},
		},
		{
			name:     "draw with positions",
			snapshot: Snapshot{Board: make([]Cell, 4), Rows: 2, Cols: 2, GameOver: true, Winner: WinnerDraw, WinningPositions: []Position{{0, 0}}},
			wantErr:  true,
		},
		{
			name:     "win without positions",
			snapshot: Snapshot{Board: make([]Cell, 4), Rows: 2, Cols: 2, GameOver: true, Winner: WinnerPlayerA},
			wantErr:  true,
		},
		{
			name:     "winner while in progress",
			snapshot: Snapshot{Board: make([]Cell, 4), Rows: 2, Cols: 2, Winner: WinnerPlayerB, WinningPositions: []Position{{0, 0}}},
			wantErr:  true,
		},
		{
			name:     "no dimensions",
			snapshot: Snapshot{Board: make([]Cell, 42)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snapshot.Validate()
			if tt.wantErr {
				assert.True(t, IsInvalidSnapshot(err), "expected invalid snapshot error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCell_Opponent(t *testing.T) {
	assert.Equal(t, CellPlayerB, CellPlayerA.Opponent())
	assert.Equal(t, CellPlayerA, CellPlayerB.Opponent())
	assert.Equal(t, CellEmpty, CellEmpty.Opponent())
}
