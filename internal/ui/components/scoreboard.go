package components

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/ui/types"
)

const (
	GameOverText = "GAME OVER - press Esc to quit"
	// basicfont advance, used to center the banner
	glyphWidth = 7
)

// Scoreboard draws the score in the top wall and a banner once the game is lost.
type Scoreboard struct {
	X, Y int32
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		X: domain.WallThickness,
		Y: 4,
	}
}

func ScoreText(score int32) string {
	return fmt.Sprintf("Score: %d", score)
}

func (sb *Scoreboard) Draw(cv types.Canvas, state *domain.GameState) {
	if state == nil {
		return
	}

	cv.DrawText(sb.X, sb.Y, ScoreText(state.Score), types.ColorText)

	if state.GameOver {
		w := int32(len(GameOverText) * glyphWidth)
		x := (domain.ScreenWidth - w) / 2
		cv.DrawText(x, domain.ScreenHeight/2, GameOverText, types.ColorTextBanner)
	}
}
