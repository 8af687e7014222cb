package domain

import (
	"github.com/gammazero/deque"
)

// Snake is the player's body, head first. The body is a deque with an
// explicit length; its capacity is the number of interior cells.
type Snake struct {
	Direction Direction
	LastMoved Direction

	body     deque.Deque[Coord]
	capacity int
}

// NewSnake places the head at head and length-1 trailing segments behind it,
// opposite to dir, at one-cell intervals.
func NewSnake(head Coord, length int, dir Direction) *Snake {
	s := &Snake{
		Direction: dir,
		LastMoved: dir,
		capacity:  CellCount,
	}

	step := dir.Opposite().Delta()
	cell := head
	for i := 0; i < length; i++ {
		s.body.PushBack(cell)
		cell = cell.Add(step)
	}
	return s
}

// NewSnakeFromBody builds a snake from explicit segments, head first.
func NewSnakeFromBody(body []Coord, dir Direction) *Snake {
	s := &Snake{
		Direction: dir,
		LastMoved: dir,
		capacity:  CellCount,
	}
	for _, c := range body {
		s.body.PushBack(c)
	}
	return s
}

func (s *Snake) Head() Coord {
	if s.body.Len() == 0 {
		return Coord{}
	}
	return s.body.Front()
}

func (s *Snake) Len() int {
	return s.body.Len()
}

func (s *Snake) At(i int) Coord {
	return s.body.At(i)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Coord {
	result := make([]Coord, 0, s.body.Len())
	for i := 0; i < s.body.Len(); i++ {
		result = append(result, s.body.At(i))
	}
	return result
}

// Occupies reports whether any segment at index >= from is at c.
func (s *Snake) Occupies(c Coord, from int) bool {
	for i := from; i < s.body.Len(); i++ {
		if s.body.At(i).Equals(c) {
			return true
		}
	}
	return false
}

// SetDirection rejects the reverse of the current direction and the reverse of
// the direction the snake last moved in.
func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	if dir.IsOpposite(s.Direction) || dir.IsOpposite(s.LastMoved) {
		return false
	}
	s.Direction = dir
	return true
}

// Advance pushes a new head one step in the current direction and returns it.
// The tail is left in place unless the body is already at capacity, in which
// case the oldest segment is dropped and dropped is true. Callers trim the tail
// only when the snake neither grows nor dropped a segment.
func (s *Snake) Advance() (newHead Coord, dropped bool) {
	newHead = s.Head().Add(s.Direction.Delta())
	s.body.PushFront(newHead)
	if s.body.Len() > s.capacity {
		s.body.PopBack()
		dropped = true
	}
	s.LastMoved = s.Direction
	return newHead, dropped
}

func (s *Snake) TrimTail() {
	if s.body.Len() > 1 {
		s.body.PopBack()
	}
}
