package types

import "image/color"

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorWall       = color.RGBA{10, 209, 205, 255}
	ColorSnake      = color.RGBA{0, 128, 0, 255}
	ColorOutline    = color.RGBA{0, 0, 0, 255}
	ColorFood       = color.RGBA{255, 0, 0, 255}
	ColorLost       = color.RGBA{255, 0, 0, 255}
	ColorText       = color.RGBA{0, 0, 0, 255}
	ColorTextBanner = color.RGBA{255, 255, 255, 255}
)
