package scenes

import (
	"github.com/cbodonnell/connectfour/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the graphical client: loading, error or the board.
type Scene interface {
	objects.Lifecycle

	// Name identifies the scene in logs and the debug overlay.
	Name() string
	GetRoot() objects.GameObject
}

// BaseScene drives the lifecycle of a scene's object tree.
type BaseScene struct {
	name string
	Root objects.GameObject
}

func NewBaseScene(name string, root objects.GameObject) *BaseScene {
	return &BaseScene{
		name: name,
		Root: root,
	}
}

func (s *BaseScene) Name() string {
	return s.name
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.Root
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.Root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.Root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.Root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	objects.DrawTree(s.Root, screen)
}
