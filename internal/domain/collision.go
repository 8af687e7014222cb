package domain

type Collision int

const (
	CollisionNone Collision = iota
	CollisionSelf
	CollisionWall
	CollisionBoardFull
)

func (c Collision) String() string {
	switch c {
	case CollisionSelf:
		return "self"
	case CollisionWall:
		return "wall"
	case CollisionBoardFull:
		return "board full"
	}
	return "none"
}

// DetectCollision checks the head against the rest of the body first and the
// walls second. The first match wins.
func DetectCollision(s *Snake) Collision {
	head := s.Head()

	if s.Occupies(head, 1) {
		return CollisionSelf
	}

	switch {
	case head.X < MinX, head.X > MaxX, head.Y < MinY, head.Y > MaxY:
		return CollisionWall
	}

	return CollisionNone
}
