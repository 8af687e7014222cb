package domain

type TickResult struct {
	Moved     bool
	Ate       bool
	Collision Collision
	Score     int32
}

// Tick advances the simulation by one step. Nothing moves once the game is
// over.
func (gs *GameState) Tick() *TickResult {
	result := &TickResult{Score: gs.Score}

	if gs.GameOver || gs.Snake == nil {
		return result
	}

	gs.Ticks++
	result.Moved = true

	newHead, dropped := gs.Snake.Advance()

	if newHead.Equals(gs.Food) {
		result.Ate = true
		gs.Score++
		if !gs.SpawnFood() {
			gs.GameOver = true
			result.Collision = CollisionBoardFull
		}
	} else if !dropped {
		gs.Snake.TrimTail()
	}

	if collision := DetectCollision(gs.Snake); collision != CollisionNone {
		gs.GameOver = true
		result.Collision = collision
	}

	result.Score = gs.Score
	return result
}
