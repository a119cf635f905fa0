package objects

import (
	"image/color"

	"github.com/cbodonnell/connectfour/client/highlight"
)

var (
	BackgroundColor = color.RGBA{0x1e, 0x1e, 0x2e, 0xff}
	BoardColor      = color.RGBA{0x19, 0x4b, 0xc2, 0xff}
	HoleColor       = color.RGBA{0x10, 0x10, 0x1c, 0xff}
	CursorColor     = color.RGBA{0xff, 0xff, 0xff, 0x40}
	PlayerAColor    = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	PlayerBColor    = color.RGBA{0xfd, 0xd8, 0x35, 0xff}
	WinningColor    = color.RGBA{0x43, 0xa0, 0x47, 0xff}
	ErrorTextColor  = color.RGBA{0xff, 0x8a, 0x80, 0xff}
)

// AppearanceColor is the fill of a disc drawn with appearance a.
func AppearanceColor(a highlight.Appearance) color.Color {
	switch a {
	case highlight.AppearancePlayerA:
		return PlayerAColor
	case highlight.AppearancePlayerB:
		return PlayerBColor
	case highlight.AppearanceWinning:
		return WinningColor
	}
	return HoleColor
}
