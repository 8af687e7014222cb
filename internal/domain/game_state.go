package domain

import (
	"math/rand"
)

// GameState is the single mutable game value. It is owned by the loop and
// is not safe for concurrent use.
type GameState struct {
	Config *GameConfig

	Snake    *Snake
	Food     Coord
	Score    int32
	Ticks    int64
	GameOver bool
	Running  bool

	food *FoodSpawner
}

func NewGameState(config *GameConfig, rng *rand.Rand) *GameState {
	return &GameState{
		Config:  config.Copy(),
		Running: true,
		food:    NewFoodSpawner(rng, config.FoodAttempts),
	}
}

// Spawn replaces the snake with a fresh one at the configured start,
// moving right.
func (gs *GameState) Spawn() {
	head := Coord{X: gs.Config.StartX, Y: gs.Config.StartY}
	gs.Snake = NewSnake(head, gs.Config.StartLength, DirectionRight)
}

// SpawnFood moves the food to a free cell. It reports false when the board
// has no free cell left.
func (gs *GameState) SpawnFood() bool {
	pos, ok := gs.food.Spawn(gs.Snake)
	if !ok {
		return false
	}
	gs.Food = pos
	return true
}

// Start resets score and game over, spawns the snake and places the food.
func (gs *GameState) Start() {
	gs.Score = 0
	gs.Ticks = 0
	gs.GameOver = false
	gs.Spawn()
	if !gs.SpawnFood() {
		gs.GameOver = true
	}
}

func (gs *GameState) ChangeDirection(dir Direction) bool {
	if gs.GameOver || gs.Snake == nil {
		return false
	}
	return gs.Snake.SetDirection(dir)
}

func (gs *GameState) Quit() {
	gs.Running = false
}
