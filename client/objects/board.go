package objects

import (
	"github.com/cbodonnell/connectfour/client/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardObject draws the board frame with its empty holes and the column cursor.
type BoardObject struct {
	*BaseObject

	layout ui.Layout
	// cursor is the highlighted column, or -1.
	cursor int
}

type NewBoardObjectOptions struct {
	Layout ui.Layout
	// ZIndex is the z-index of the board.
	ZIndex int
}

func NewBoardObject(id string, opts NewBoardObjectOptions) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		layout: opts.Layout,
		cursor: -1,
	}
}

// SetCursor highlights col. A negative col hides the cursor.
func (o *BoardObject) SetCursor(col int) {
	o.cursor = col
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	l := o.layout
	if o.cursor >= 0 && o.cursor < l.Cols {
		x := float32(l.OriginX + float64(o.cursor)*l.CellSize)
		vector.DrawFilledRect(screen, x, float32(l.OriginY-l.CellSize/4), float32(l.CellSize), float32(l.Height()+l.CellSize/4), CursorColor, false)
	}
	vector.DrawFilledRect(screen, float32(l.OriginX), float32(l.OriginY), float32(l.Width()), float32(l.Height()), BoardColor, false)
	r := float32(l.DiscRadius())
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			x, y := l.CellCenter(row, col)
			vector.DrawFilledCircle(screen, float32(x), float32(y), r, HoleColor, true)
		}
	}
}
