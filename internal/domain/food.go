package domain

import (
	"math/rand"
)

const DefaultFoodAttempts = 64

// FoodSpawner picks food cells off the snake. Random candidates are tried a
// bounded number of times before falling back to a scan of the free cells.
type FoodSpawner struct {
	rng      *rand.Rand
	attempts int
}

func NewFoodSpawner(rng *rand.Rand, attempts int) *FoodSpawner {
	if attempts <= 0 {
		attempts = DefaultFoodAttempts
	}
	return &FoodSpawner{
		rng:      rng,
		attempts: attempts,
	}
}

// Candidate draws a grid-aligned cell. Values that land inside the wall
// margin are clamped to the margin, so the first row and column are slightly
// more likely than the rest.
func (fs *FoodSpawner) Candidate() Coord {
	x := fs.rng.Int31n((ScreenWidth-CellWidth-WallThickness)/CellWidth+1) * CellWidth
	y := fs.rng.Int31n((ScreenHeight-CellHeight-WallThickness)/CellHeight+1) * CellHeight

	if x < WallThickness {
		x = WallThickness
	}
	if y < WallThickness {
		y = WallThickness
	}
	return Coord{X: x, Y: y}
}

// Spawn returns a cell not covered by the snake. It reports false only when
// every interior cell is taken.
func (fs *FoodSpawner) Spawn(snake *Snake) (Coord, bool) {
	for attempt := 0; attempt < fs.attempts; attempt++ {
		pos := fs.Candidate()
		if !snake.Occupies(pos, 0) {
			return pos, true
		}
	}

	free := make([]Coord, 0, CellCount)
	for _, cell := range InteriorCells() {
		if !snake.Occupies(cell, 0) {
			free = append(free, cell)
		}
	}
	if len(free) == 0 {
		return Coord{}, false
	}
	return free[fs.rng.Intn(len(free))], true
}
