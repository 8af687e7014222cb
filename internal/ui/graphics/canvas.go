package graphics

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas draws on an ebiten image using board pixels directly; the
// engine's layout is the board size.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c *imageCanvas) Clear(col color.RGBA) {
	c.dst.Fill(col)
}

func (c *imageCanvas) FillRect(r domain.Segment, col color.RGBA) {
	vector.DrawFilledRect(c.dst,
		float32(r.X), float32(r.Y),
		float32(r.W), float32(r.H),
		col, false)
}

func (c *imageCanvas) StrokeRect(r domain.Segment, col color.RGBA) {
	vector.StrokeRect(c.dst,
		float32(r.X), float32(r.Y),
		float32(r.W), float32(r.H),
		1, col, false)
}

func (c *imageCanvas) DrawText(x, y int32, s string, col color.RGBA) {
	fonts := types.GetFonts()
	text.Draw(c.dst, s, fonts.Normal, int(x), int(y)+fonts.Ascent, col)
}
