package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"
)

// FieldRenderer draws the play field: food, snake and walls, in that order.
type FieldRenderer struct{}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

func (fr *FieldRenderer) Draw(cv types.Canvas, state *domain.GameState) {
	if state == nil {
		return
	}
	fr.DrawFood(cv, state.Food)
	fr.DrawSnake(cv, state.Snake, state.GameOver)
	fr.DrawWalls(cv, state.GameOver)
}

func (fr *FieldRenderer) DrawFood(cv types.Canvas, food domain.Coord) {
	cv.FillRect(domain.CellAt(food), types.ColorFood)
}

func (fr *FieldRenderer) DrawSnake(cv types.Canvas, snake *domain.Snake, lost bool) {
	if snake == nil {
		return
	}

	fill := types.ColorSnake
	if lost {
		fill = types.ColorLost
	}

	for i := 0; i < snake.Len(); i++ {
		cell := domain.CellAt(snake.At(i))
		cv.FillRect(cell, fill)
		cv.StrokeRect(cell, types.ColorOutline)
	}
}

func (fr *FieldRenderer) DrawWalls(cv types.Canvas, lost bool) {
	c := types.ColorWall
	if lost {
		c = types.ColorLost
	}
	for _, block := range domain.Walls() {
		cv.FillRect(block, c)
	}
}
