package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(640, 480, 6, 7)

	assert.Equal(t, 6, l.Rows)
	assert.Equal(t, 7, l.Cols)
	// height bound: (480 - 64 - 72) / 6
	assert.Equal(t, 57.0, l.CellSize)
	assert.Equal(t, float64(StatusAreaHeight), l.OriginY)
	assert.Equal(t, 7*57.0, l.Width())
	assert.Equal(t, 6*57.0, l.Height())
	assert.InDelta(t, 640/2, l.OriginX+l.Width()/2, 1)
	assert.LessOrEqual(t, l.ControlsY(), float64(480-ControlsAreaHeight))
	assert.True(t, l.Matches(6, 7))
	assert.False(t, l.Matches(7, 6))
}

func TestLayout_CellCenter(t *testing.T) {
	l := Layout{OriginX: 100, OriginY: 50, CellSize: 60, Rows: 6, Cols: 7}

	x, y := l.CellCenter(0, 0)
	assert.Equal(t, 130.0, x)
	assert.Equal(t, 80.0, y)

	x, y = l.CellCenter(5, 6)
	assert.Equal(t, 490.0, x)
	assert.Equal(t, 380.0, y)

	assert.Equal(t, 24.0, l.DiscRadius())
	assert.Equal(t, 20.0, l.DropStartY())
}

func TestColumnSpace_ColumnAt(t *testing.T) {
	l := Layout{OriginX: 100, OriginY: 50, CellSize: 60, Rows: 6, Cols: 7}
	s := NewColumnSpace(l, 640, 480)

	tests := []struct {
		name   string
		x, y   float64
		want   int
		wantOK bool
	}{
		{name: "first column", x: 101, y: 100, want: 0, wantOK: true},
		{name: "last column", x: 519, y: 400, want: 6, wantOK: true},
		{name: "column boundary", x: 160, y: 200, want: 1, wantOK: true},
		{name: "above the board", x: 250, y: 10, want: 2, wantOK: true},
		{name: "left of the board", x: 99, y: 100, want: -1},
		{name: "right of the board", x: 520, y: 100, want: -1},
		{name: "below the board", x: 250, y: 411, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, ok := s.ColumnAt(tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, col)
		})
	}
}

func TestActionableError(t *testing.T) {
	var err error = &ActionableError{Message: "Error connecting to server.", Hint: "Click to retry"}
	assert.Equal(t, "Error connecting to server.", err.Error())
	assert.True(t, IsActionable(err))
	assert.False(t, IsActionable(assert.AnError))
}
