package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStart  = errors.New("invalid start position")
	ErrInvalidLength = errors.New("invalid start length")
)

type GameConfig struct {
	StartX       int32
	StartY       int32
	StartLength  int
	FoodAttempts int
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		StartX:       SnakeStartX,
		StartY:       SnakeStartY,
		StartLength:  StartLength,
		FoodAttempts: DefaultFoodAttempts,
	}
}

// Validate checks that the initial body fits inside the walls. The board
// itself is fixed.
func (c *GameConfig) Validate() error {
	if c.StartLength < 1 || c.StartLength > CellCount {
		return fmt.Errorf("%w: %d", ErrInvalidLength, c.StartLength)
	}

	head := Coord{X: c.StartX, Y: c.StartY}
	if !head.Aligned() || !InsideWalls(head) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, c.StartX, c.StartY)
	}

	tail := Coord{X: c.StartX - int32(c.StartLength-1)*CellWidth, Y: c.StartY}
	if !InsideWalls(tail) {
		return fmt.Errorf("%w: body of %d reaches the wall", ErrInvalidStart, c.StartLength)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		StartX:       c.StartX,
		StartY:       c.StartY,
		StartLength:  c.StartLength,
		FoodAttempts: c.FoodAttempts,
	}
}
