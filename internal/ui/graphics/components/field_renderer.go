package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	CellWidth  int
	CellHeight int
	OffsetX    int
	OffsetY    int
}

func NewFieldRenderer(config *domain.GameConfig) *FieldRenderer {
	return &FieldRenderer{
		CellWidth:  int(config.CellWidth),
		CellHeight: int(config.CellHeight),
	}
}

func (fr *FieldRenderer) cellRect(c domain.Coord) (x, y, w, h float32) {
	x = float32(fr.OffsetX + int(c.X)*fr.CellWidth)
	y = float32(fr.OffsetY + int(c.Y)*fr.CellHeight)
	return x, y, float32(fr.CellWidth), float32(fr.CellHeight)
}

// DrawGrid outlines every cell of the field.
func (fr *FieldRenderer) DrawGrid(screen *ebiten.Image, field *domain.Field) {
	if field == nil {
		return
	}

	for cx := int32(0); cx < field.Width; cx++ {
		for cy := int32(0); cy < field.Height; cy++ {
			x, y, w, h := fr.cellRect(domain.Coord{X: cx, Y: cy})
			vector.StrokeRect(screen, x, y, w, h, 1, types.ColorGrid, false)
		}
	}
}

func (fr *FieldRenderer) DrawCell(screen *ebiten.Image, cell domain.Cell) {
	x, y, w, h := fr.cellRect(cell.Pos)
	vector.DrawFilledRect(screen, x, y, w, h, cell.DisplayColor(), false)
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Cell) {
	fr.DrawCell(screen, food)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, snake *domain.Snake) {
	if snake == nil {
		return
	}

	for _, cell := range snake.Cells() {
		fr.DrawCell(screen, cell)
	}
}
