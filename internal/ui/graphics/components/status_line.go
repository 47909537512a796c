package components

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StatusLine is the debug readout shown together with the grid overlay.
type StatusLine struct {
	X, Y int
}

func NewStatusLine(x, y int) *StatusLine {
	return &StatusLine{X: x, Y: y}
}

func (sl *StatusLine) Text(state *domain.GameState) string {
	return fmt.Sprintf("len %d  %s  step %d  eaten %d",
		state.Snake.Length(),
		state.Snake.HeadDirection,
		state.StepCount,
		state.FoodEaten)
}

func (sl *StatusLine) Draw(screen *ebiten.Image, state *domain.GameState) {
	if state == nil {
		return
	}

	msg := sl.Text(state)
	bounds := text.BoundString(types.StatusFace, msg)
	lineHeight := types.StatusLineHeight()

	vector.DrawFilledRect(screen,
		float32(sl.X), float32(sl.Y),
		float32(bounds.Dx()+8), float32(lineHeight+4),
		types.ColorStatusBg, false)

	text.Draw(screen, msg, types.StatusFace, sl.X+4, sl.Y+lineHeight, types.ColorText)
}
