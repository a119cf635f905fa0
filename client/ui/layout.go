// Package ui holds the screen geometry shared by the graphical client's scenes and objects.
package ui

import "math"

const (
	// StatusAreaHeight is the space above the board reserved for the status line.
	StatusAreaHeight = 64
	// ControlsAreaHeight is the space below the board reserved for the reset button.
	ControlsAreaHeight = 72
	// SideMargin is the minimum horizontal space around the board.
	SideMargin = 24
	// DiscScale is the disc diameter relative to the cell size.
	DiscScale = 0.8
)

// Layout places a board of Rows x Cols cells on the screen.
type Layout struct {
	OriginX  float64
	OriginY  float64
	CellSize float64
	Rows     int
	Cols     int
}

// NewLayout fits the board between the status and controls areas, centered horizontally.
func NewLayout(screenWidth, screenHeight, rows, cols int) Layout {
	availableW := float64(screenWidth - 2*SideMargin)
	availableH := float64(screenHeight - StatusAreaHeight - ControlsAreaHeight)
	cell := 0.0
	if rows > 0 && cols > 0 {
		cell = math.Floor(math.Min(availableW/float64(cols), availableH/float64(rows)))
	}
	if cell < 1 {
		cell = 1
	}
	width := cell * float64(cols)
	return Layout{
		OriginX:  math.Floor((float64(screenWidth) - width) / 2),
		OriginY:  StatusAreaHeight,
		CellSize: cell,
		Rows:     rows,
		Cols:     cols,
	}
}

func (l Layout) Width() float64 {
	return l.CellSize * float64(l.Cols)
}

func (l Layout) Height() float64 {
	return l.CellSize * float64(l.Rows)
}

// CellCenter returns the screen coordinates of the center of a cell. Row 0 is the top row.
func (l Layout) CellCenter(row, col int) (float64, float64) {
	return l.OriginX + (float64(col)+0.5)*l.CellSize, l.OriginY + (float64(row)+0.5)*l.CellSize
}

func (l Layout) DiscRadius() float64 {
	return l.CellSize * DiscScale / 2
}

// DropStartY is where falling discs are released, one cell above the top row.
func (l Layout) DropStartY() float64 {
	return l.OriginY - l.CellSize/2
}

// ControlsY is the top of the area below the board.
func (l Layout) ControlsY() float64 {
	return l.OriginY + l.Height()
}

// Matches reports whether the layout was built for a board of the given size.
func (l Layout) Matches(rows, cols int) bool {
	return l.Rows == rows && l.Cols == cols
}
