package domain

// Coord is a pixel position on the board. Live cells are always aligned to
// the cell grid.
type Coord struct {
	X int32
	Y int32
}

func (c Coord) Add(other Coord) Coord {
	return Coord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

func (c Coord) Equals(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// Aligned reports whether c sits on the cell grid.
func (c Coord) Aligned() bool {
	return c.X%CellWidth == 0 && c.Y%CellHeight == 0
}
