package domain

// Board geometry in pixels. The play field is surrounded by walls of
// WallThickness on every side.
const (
	ScreenWidth  = 680
	ScreenHeight = 400

	WallThickness = 20

	CellWidth  = 20
	CellHeight = 20

	// CellCount is the number of interior cells and the snake body capacity.
	CellCount = (ScreenWidth - WallThickness*2) * (ScreenHeight - WallThickness*2) /
		(CellWidth * CellHeight)

	SnakeStartX = 200
	SnakeStartY = 200
	StartLength = 5
)

// Interior bounds for the top-left corner of a cell.
const (
	MinX = WallThickness
	MaxX = ScreenWidth - WallThickness - CellWidth
	MinY = WallThickness
	MaxY = ScreenHeight - WallThickness - CellHeight
)

// Segment is a drawable rectangle: one snake cell, the food, or a wall block.
type Segment struct {
	X, Y int32
	W, H int32
}

func CellAt(c Coord) Segment {
	return Segment{X: c.X, Y: c.Y, W: CellWidth, H: CellHeight}
}

func InsideWalls(c Coord) bool {
	return c.X >= MinX && c.X <= MaxX && c.Y >= MinY && c.Y <= MaxY
}

// InteriorCells lists every legal cell in row-major order.
func InteriorCells() []Coord {
	cells := make([]Coord, 0, CellCount)
	for y := int32(MinY); y <= MaxY; y += CellHeight {
		for x := int32(MinX); x <= MaxX; x += CellWidth {
			cells = append(cells, Coord{X: x, Y: y})
		}
	}
	return cells
}

// Walls returns the four wall blocks: left, right, top, bottom.
func Walls() []Segment {
	return []Segment{
		{X: 0, Y: 0, W: WallThickness, H: ScreenHeight},
		{X: ScreenWidth - WallThickness, Y: 0, W: WallThickness, H: ScreenHeight},
		{X: 0, Y: 0, W: ScreenWidth, H: WallThickness},
		{X: 0, Y: ScreenHeight - WallThickness, W: ScreenWidth, H: WallThickness},
	}
}
