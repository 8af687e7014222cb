package types

import (
	"image/color"

	"snake/internal/domain"
)

// Canvas is the drawing surface a backend exposes to the renderers. All
// coordinates are board pixels; (x, y) of DrawText is the top-left corner of
// the text line.
type Canvas interface {
	Clear(c color.RGBA)
	FillRect(r domain.Segment, c color.RGBA)
	StrokeRect(r domain.Segment, c color.RGBA)
	DrawText(x, y int32, s string, c color.RGBA)
}
