package scenes

import (
	"fmt"

	"github.com/cbodonnell/connectfour/client/fonts"
	"github.com/cbodonnell/connectfour/client/objects"
	"github.com/cbodonnell/connectfour/client/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MessageScene shows a single message, with an optional hint below it.
type MessageScene struct {
	*BaseScene

	message *objects.TextObject
	hint    *objects.TextObject
}

var _ Scene = &MessageScene{}

func newMessageScene(id, message, hint string) *MessageScene {
	return &MessageScene{
		BaseScene: NewBaseScene(id, objects.NewSortedZIndexObject(id)),
		message: objects.NewTextObject(id+"-message", objects.NewTextObjectOptions{
			Text: message,
			Face: fonts.TTFLargeFont,
		}),
		hint: objects.NewTextObject(id+"-hint", objects.NewTextObjectOptions{
			Text:  hint,
			Face:  fonts.TTFSmallFont,
			Color: objects.CursorColor,
			Y:     320,
		}),
	}
}

// NewLoadingScene is shown while the initial state is fetched.
func NewLoadingScene(message string) (Scene, error) {
	return newMessageScene("overlay-loading", message, ""), nil
}

// NewErrorScene is shown when the client cannot continue until the player acts.
func NewErrorScene(err *ui.ActionableError) (Scene, error) {
	s := newMessageScene("overlay-error", err.Message, err.Hint)
	s.message.SetColor(objects.ErrorTextColor)
	return s, nil
}

func (s *MessageScene) Init() error {
	if err := s.BaseScene.Init(); err != nil {
		return err
	}
	root := s.Root.(*objects.SortedZIndexObject)
	if err := root.AddChild(s.message.GetID(), s.message); err != nil {
		return fmt.Errorf("failed to add message: %v", err)
	}
	if err := root.AddChild(s.hint.GetID(), s.hint); err != nil {
		return fmt.Errorf("failed to add hint: %v", err)
	}
	return nil
}

func (s *MessageScene) Draw(screen *ebiten.Image) {
	screen.Fill(objects.BackgroundColor)
	s.BaseScene.Draw(screen)
}
