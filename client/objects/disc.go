package objects

import (
	"github.com/cbodonnell/connectfour/client/animations"
	"github.com/cbodonnell/connectfour/client/highlight"
	"github.com/cbodonnell/connectfour/client/ui"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DiscObject draws the disc occupying one board cell, optionally falling into place.
type DiscObject struct {
	*BaseObject

	layout     ui.Layout
	position   types.Position
	cell       types.Cell
	appearance highlight.Appearance
	drop       *animations.Drop
}

type NewDiscObjectOptions struct {
	Layout   ui.Layout
	Position types.Position
	ZIndex   int
}

func NewDiscObject(id string, opts NewDiscObjectOptions) *DiscObject {
	return &DiscObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		layout:   opts.Layout,
		position: opts.Position,
	}
}

// Set updates the cell value and appearance shown by the disc.
func (o *DiscObject) Set(cell types.Cell, appearance highlight.Appearance) {
	o.cell = cell
	o.appearance = appearance
}

// StartDrop releases the disc above the board so it falls into its cell.
func (o *DiscObject) StartDrop() {
	_, y := o.layout.CellCenter(o.position.Row, o.position.Col)
	o.drop = animations.NewDrop(animations.NewDropOptions{
		From: o.layout.DropStartY(),
		To:   y,
	})
}

// StopDrop puts the disc at rest in its cell.
func (o *DiscObject) StopDrop() {
	o.drop = nil
}

func (o *DiscObject) Dropping() bool {
	return o.drop != nil
}

func (o *DiscObject) Update() error {
	if o.drop == nil {
		return nil
	}
	o.drop.Update()
	if o.drop.Done() {
		o.drop = nil
	}
	return nil
}

func (o *DiscObject) Draw(screen *ebiten.Image) {
	if o.cell == types.CellEmpty {
		return
	}
	x, y := o.layout.CellCenter(o.position.Row, o.position.Col)
	if o.drop != nil {
		y = o.drop.Y()
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(o.layout.DiscRadius()), AppearanceColor(o.appearance), true)
}
