package scenes

import (
	"context"
	"fmt"
	"image/color"

	"github.com/cbodonnell/connectfour/client/fonts"
	"github.com/cbodonnell/connectfour/client/input"
	"github.com/cbodonnell/connectfour/client/objects"
	"github.com/cbodonnell/connectfour/client/sequencer"
	"github.com/cbodonnell/connectfour/client/session"
	"github.com/cbodonnell/connectfour/client/ui"
	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// DropStrategy decides how newly applied discs appear on the board.
type DropStrategy int

const (
	// DropAnimated lets each applied disc fall into its cell.
	DropAnimated DropStrategy = iota
	// DropInstant shows applied discs in their cell immediately.
	DropInstant
)

func (d DropStrategy) String() string {
	switch d {
	case DropAnimated:
		return "Animated"
	case DropInstant:
		return "Instant"
	}
	return "Unknown"
}

const (
	zIndexBoard = iota
	zIndexDiscs
	zIndexText
)

// BoardScene renders a session and turns clicks and keys into moves.
type BoardScene struct {
	*BaseScene

	ctx          context.Context
	session      *session.Session
	strategy     DropStrategy
	screenWidth  int
	screenHeight int
	logger       *log.Logger

	root    *objects.SortedZIndexObject
	layout  ui.Layout
	columns *ui.ColumnSpace
	board   *objects.BoardObject
	discs   map[types.Position]*objects.DiscObject
	status  *objects.TextObject
	ui      *ebitenui.UI

	// view is the session view taken at the start of the current update.
	view session.View
	// cursor is the column selected with the keyboard or hovered with the mouse.
	cursor         int
	mouseX, mouseY float64
}

type BoardSceneOptions struct {
	// Context bounds the moves and resets started by the scene.
	Context      context.Context
	Session      *session.Session
	Strategy     DropStrategy
	ScreenWidth  int
	ScreenHeight int
	Logger       *log.Logger
}

var _ Scene = &BoardScene{}

func NewBoardScene(opts BoardSceneOptions) (Scene, error) {
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
	root := objects.NewSortedZIndexObject("board-root")
	return &BoardScene{
		BaseScene:    NewBaseScene("board", root),
		ctx:          ctx,
		session:      opts.Session,
		strategy:     opts.Strategy,
		screenWidth:  opts.ScreenWidth,
		screenHeight: opts.ScreenHeight,
		logger:       logger.WithComponent("board-scene"),
		root:         root,
		discs:        make(map[types.Position]*objects.DiscObject),
	}, nil
}

func (s *BoardScene) Init() error {
	if err := s.BaseScene.Init(); err != nil {
		return err
	}
	s.renderUI()
	s.view = s.session.View()
	if err := s.build(s.view.Rows, s.view.Cols); err != nil {
		return fmt.Errorf("failed to build board: %v", err)
	}
	// events up to now are already reflected in the view
	if _, err := s.session.Events().ReadAllMessages(); err != nil {
		return fmt.Errorf("failed to drain session events: %v", err)
	}
	s.sync()
	return nil
}

// build lays out a board of rows x cols, replacing whatever was shown.
func (s *BoardScene) build(rows, cols int) error {
	if err := s.root.RemoveAll(); err != nil {
		return fmt.Errorf("failed to clear scene: %v", err)
	}
	s.layout = ui.NewLayout(s.screenWidth, s.screenHeight, rows, cols)
	s.columns = ui.NewColumnSpace(s.layout, s.screenWidth, s.screenHeight)
	s.discs = make(map[types.Position]*objects.DiscObject, rows*cols)
	if s.cursor >= cols {
		s.cursor = cols - 1
	}

	s.board = objects.NewBoardObject("board", objects.NewBoardObjectOptions{
		Layout: s.layout,
		ZIndex: zIndexBoard,
	})
	if err := s.root.AddChild(s.board.GetID(), s.board); err != nil {
		return err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := types.Position{Row: r, Col: c}
			disc := objects.NewDiscObject(fmt.Sprintf("disc-%d-%d", r, c), objects.NewDiscObjectOptions{
				Layout:   s.layout,
				Position: p,
				ZIndex:   zIndexDiscs,
			})
			if err := s.root.AddChild(disc.GetID(), disc); err != nil {
				return err
			}
			s.discs[p] = disc
		}
	}
	s.status = objects.NewTextObject("status", objects.NewTextObjectOptions{
		Face:   fonts.MPlusNormalFont,
		Y:      float64(ui.StatusAreaHeight) * 0.6,
		ZIndex: zIndexText,
	})
	return s.root.AddChild(s.status.GetID(), s.status)
}

func (s *BoardScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:    image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed:  image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
		Disabled: image.NewNineSliceColor(color.NRGBA{R: 90, G: 90, B: 100, A: 255}),
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Bottom: 16}),
		)),
	)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("New Game", fonts.TTFNormalFont, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	button.ClickedEvent.AddHandler(func(args interface{}) {
		s.reset()
	})
	rootContainer.AddChild(button)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *BoardScene) Update() error {
	s.view = s.session.View()
	if !s.layout.Matches(s.view.Rows, s.view.Cols) {
		s.logger.Debug("Board resized to %dx%d", s.view.Rows, s.view.Cols)
		if err := s.build(s.view.Rows, s.view.Cols); err != nil {
			return fmt.Errorf("failed to rebuild board: %v", err)
		}
	}

	// the view was taken first, so every cell it shows has its event queued by now
	if err := s.processEvents(); err != nil {
		return fmt.Errorf("failed to process session events: %v", err)
	}
	if err := s.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}
	s.sync()

	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *BoardScene) processEvents() error {
	items, err := s.session.Events().ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read session events: %v", err)
	}
	for _, item := range items {
		event, ok := item.(sequencer.Event)
		if !ok {
			s.logger.Error("Unexpected session event type %T", item)
			continue
		}
		s.logger.Trace("Session event %s (state=%s)", event.Type, event.State)
		switch event.Type {
		case sequencer.EventHumanApplied, sequencer.EventAutomatedApplied:
			if s.strategy != DropAnimated {
				continue
			}
			if disc, ok := s.discs[event.Position]; ok {
				disc.StartDrop()
			}
		case sequencer.EventBoardReplaced:
			for _, disc := range s.discs {
				disc.StopDrop()
			}
		case sequencer.EventGameOver:
			s.logger.Info("Game over: %s", event.Winner)
		case sequencer.EventMoveFailed:
			s.logger.Warn("Move failed: %v", event.Err)
		}
	}
	return nil
}

func (s *BoardScene) handleInput() error {
	if input.IsResetJustPressed() {
		s.reset()
		return nil
	}
	if input.IsLeftJustPressed() && s.cursor > 0 {
		s.cursor--
	}
	if input.IsRightJustPressed() && s.cursor < s.view.Cols-1 {
		s.cursor++
	}
	if x, y := input.CursorPosition(); x != s.mouseX || y != s.mouseY {
		s.mouseX, s.mouseY = x, y
		if col, ok := s.columns.ColumnAt(x, y); ok {
			s.cursor = col
		}
	}
	if col, ok := input.ColumnJustPressed(); ok && col < s.view.Cols {
		s.cursor = col
		return s.move(col)
	}
	if x, y, ok := input.PointerJustPressed(); ok {
		if col, ok := s.columns.ColumnAt(x, y); ok {
			s.cursor = col
			return s.move(col)
		}
		return nil
	}
	if input.IsDropJustPressed() {
		return s.move(s.cursor)
	}
	return nil
}

// move requests a move in col without blocking the update loop.
func (s *BoardScene) move(col int) error {
	// disabled columns ignore input
	if !s.view.ColumnEnabled(col) {
		return nil
	}
	go func() {
		accepted, err := s.session.Move(s.ctx, col)
		if err != nil {
			s.logger.Debug("Move in column %d failed: %v", col, err)
			return
		}
		if !accepted {
			s.logger.Debug("Move in column %d rejected", col)
		}
	}()
	return nil
}

func (s *BoardScene) reset() {
	if !s.view.ResetEnabled {
		return
	}
	go func() {
		if err := s.session.Reset(s.ctx); err != nil {
			s.logger.Debug("Reset failed: %v", err)
		}
	}()
}

// sync copies the current view into the scene objects.
func (s *BoardScene) sync() {
	for p, disc := range s.discs {
		disc.Set(s.view.Cell(p.Row, p.Col), s.view.Appearance(p.Row, p.Col))
	}
	s.status.SetText(s.view.Status)
	if s.view.ColumnEnabled(s.cursor) {
		s.board.SetCursor(s.cursor)
	} else {
		s.board.SetCursor(-1)
	}
}

func (s *BoardScene) Draw(screen *ebiten.Image) {
	screen.Fill(objects.BackgroundColor)
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}
