package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextObject draws a line of text centered horizontally.
type TextObject struct {
	*BaseObject

	text  string
	face  font.Face
	color color.Color
	// y is the baseline. Zero centers the text vertically.
	y float64
}

type NewTextObjectOptions struct {
	Text  string
	Face  font.Face
	Color color.Color
	Y     float64
	// ZIndex is the z-index of the text.
	ZIndex int
}

func NewTextObject(id string, opts NewTextObjectOptions) *TextObject {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		text:  opts.Text,
		face:  opts.Face,
		color: clr,
		y:     opts.Y,
	}
}

func (o *TextObject) SetText(t string) {
	o.text = t
}

func (o *TextObject) SetColor(c color.Color) {
	o.color = c
}

func (o *TextObject) Draw(screen *ebiten.Image) {
	if o.text == "" || o.face == nil {
		return
	}
	bounds, _ := font.BoundString(o.face, o.text)
	w := float64((bounds.Max.X - bounds.Min.X).Ceil())
	y := o.y
	if y == 0 {
		h := float64((bounds.Max.Y - bounds.Min.Y).Ceil())
		y = float64(screen.Bounds().Dy())/2 + h/2
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-w/2, y)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, o.text, o.face, op)
}
