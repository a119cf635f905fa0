package game

import (
	"context"
	"fmt"

	"github.com/cbodonnell/connectfour/client/flow"
	"github.com/cbodonnell/connectfour/client/input"
	"github.com/cbodonnell/connectfour/client/scenes"
	"github.com/cbodonnell/connectfour/client/session"
	"github.com/cbodonnell/connectfour/client/ui"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// ctx bounds every request started by the game.
	ctx context.Context
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// session is the game session shown on the board.
	session *session.Session
	// strategy is how applied discs reach their cells.
	strategy scenes.DropStrategy
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
	// connectResult receives the outcome of the background connection attempt.
	connectResult chan error
	logger        *log.Logger
}

type NewGameOptions struct {
	Context  context.Context
	Debug    bool
	Session  *session.Session
	Strategy scenes.DropStrategy
	Logger   *log.Logger
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		ctx:           ctx,
		debug:         opts.Debug,
		session:       opts.Session,
		strategy:      opts.Strategy,
		connectResult: make(chan error, 1),
		logger:        logger.WithComponent("game"),
	}

	if err := g.connect(); err != nil {
		return nil, fmt.Errorf("failed to start connecting: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize %s scene: %v", scene.Name(), err)
	}
	g.logger.Debug("Switched to %s scene", scene.Name())

	return nil
}

// connect shows the loading scene and fetches the game state in the background.
func (g *Game) connect() error {
	loading, err := scenes.NewLoadingScene(session.StatusLoading)
	if err != nil {
		return fmt.Errorf("failed to create loading scene: %v", err)
	}
	if err := g.SetScene(loading); err != nil {
		return fmt.Errorf("failed to set loading scene: %v", err)
	}
	g.mode = flow.GameModeLoading

	go func() {
		g.connectResult <- g.session.Connect(g.ctx)
	}()
	return nil
}

func (g *Game) loadBoard() error {
	board, err := scenes.NewBoardScene(scenes.BoardSceneOptions{
		Context:      g.ctx,
		Session:      g.session,
		Strategy:     g.strategy,
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		Logger:       g.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create board scene: %v", err)
	}
	if err := g.SetScene(board); err != nil {
		return fmt.Errorf("failed to set board scene: %v", err)
	}
	g.mode = flow.GameModePlay
	return nil
}

func (g *Game) loadConnectionError() error {
	errorScene, err := scenes.NewErrorScene(&ui.ActionableError{
		Message: session.StatusConnectionError,
		Hint:    "Click or press Enter to retry",
	})
	if err != nil {
		return fmt.Errorf("failed to create connection error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set connection error scene: %v", err)
	}
	g.mode = flow.GameModeConnectionError
	return nil
}

func (g *Game) Update() error {
	if err := g.checkConnectResult(); err != nil {
		return fmt.Errorf("failed to handle connection result: %v", err)
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return err
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) checkConnectResult() error {
	select {
	case err := <-g.connectResult:
		if err != nil {
			g.logger.Error("Failed to connect: %v", err)
			return g.loadConnectionError()
		}
		g.logger.Info("Connected")
		return g.loadBoard()
	default:
		return nil
	}
}

func (g *Game) handleInput() error {
	if input.IsNegativeJustPressed() {
		return ebiten.Termination
	}
	switch g.mode {
	case flow.GameModeConnectionError:
		if input.IsPositiveJustPressed() {
			if err := g.connect(); err != nil {
				return fmt.Errorf("failed to retry connection: %v", err)
			}
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s (%s)", g.mode, g.scene.Name()))

	if g.mode != flow.GameModePlay {
		return
	}
	view := g.session.View()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   State: %s", view.State))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Session: %s", view.Mode))
}

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
