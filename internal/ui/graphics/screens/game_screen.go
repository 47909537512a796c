package screens

import (
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	statusLine    *components.StatusLine
	keyboard      *input.KeyboardHandler

	state    *domain.GameState
	showGrid bool
}

func NewGameScreen(ctx types.ScreenContext, config *domain.GameConfig) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(config),
		statusLine:    components.NewStatusLine(4, 4),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) SetState(state *domain.GameState, showGrid bool) {
	s.state = state
	s.showGrid = showGrid
}

func (s *GameScreen) Update() []types.UIEvent {
	return s.keyboard.Update()
}

// Draw paints one frame: background, optional grid, food, then the snake
// head first so later segments cover it where they overlap.
func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	if s.state == nil {
		return
	}

	if s.showGrid {
		s.fieldRenderer.DrawGrid(screen, s.state.Field)
	}

	s.fieldRenderer.DrawFood(screen, s.state.Food)
	s.fieldRenderer.DrawSnake(screen, s.state.Snake)

	if s.showGrid {
		_, h := s.ctx.Size()
		s.statusLine.Y = h - types.StatusLineHeight() - 8
		s.statusLine.Draw(screen, s.state)
	}
}

func (s *GameScreen) OnEnter() {}

func (s *GameScreen) OnExit() {}
