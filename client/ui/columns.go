package ui

import (
	"github.com/solarlune/resolv"
)

// ColumnTag marks the hit area of a board column in a ColumnSpace.
const ColumnTag = "column"

// spaceCellSize is the size of a resolv space cell in pixels.
const spaceCellSize = 16

// ColumnSpace maps screen points to board columns.
// Each column's hit area spans its full height plus the status area above the board.
type ColumnSpace struct {
	space   *resolv.Space
	columns map[*resolv.Object]int
}

func NewColumnSpace(l Layout, screenWidth, screenHeight int) *ColumnSpace {
	space := resolv.NewSpace(screenWidth, screenHeight, spaceCellSize, spaceCellSize)
	columns := make(map[*resolv.Object]int, l.Cols)
	for c := 0; c < l.Cols; c++ {
		obj := resolv.NewObject(l.OriginX+float64(c)*l.CellSize, 0, l.CellSize, l.OriginY+l.Height(), ColumnTag)
		space.Add(obj)
		columns[obj] = c
	}
	return &ColumnSpace{
		space:   space,
		columns: columns,
	}
}

// ColumnAt returns the column whose hit area contains the point.
func (s *ColumnSpace) ColumnAt(x, y float64) (int, bool) {
	for _, obj := range s.space.Objects() {
		if !obj.HasTags(ColumnTag) {
			continue
		}
		if x < obj.Position.X || x >= obj.Position.X+obj.Size.X {
			continue
		}
		if y < obj.Position.Y || y >= obj.Position.Y+obj.Size.Y {
			continue
		}
		col, ok := s.columns[obj]
		return col, ok
	}
	return -1, false
}
