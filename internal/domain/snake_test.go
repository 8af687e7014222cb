package domain

import (
	"testing"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(Coord{SnakeStartX, SnakeStartY}, StartLength, DirectionRight)

	if s.Len() != StartLength {
		t.Fatalf("Len() = %d, want %d", s.Len(), StartLength)
	}
	for i, cell := range s.Body() {
		want := Coord{X: SnakeStartX - int32(i)*CellWidth, Y: SnakeStartY}
		if !cell.Equals(want) {
			t.Errorf("segment %d = %+v, want %+v", i, cell, want)
		}
	}
	if s.Direction != DirectionRight {
		t.Errorf("Direction = %v, want right", s.Direction)
	}
}

func TestSnakeSetDirection(t *testing.T) {
	tests := []struct {
		name    string
		current Direction
		request Direction
		want    bool
	}{
		{"reverse of right", DirectionRight, DirectionLeft, false},
		{"reverse of up", DirectionUp, DirectionDown, false},
		{"turn up", DirectionRight, DirectionUp, true},
		{"turn down", DirectionRight, DirectionDown, true},
		{"same direction", DirectionRight, DirectionRight, true},
		{"invalid", DirectionRight, Direction(42), false},
		{"none", DirectionRight, DirectionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(Coord{200, 200}, 3, tt.current)
			got := s.SetDirection(tt.request)
			if got != tt.want {
				t.Fatalf("SetDirection(%v) = %v, want %v", tt.request, got, tt.want)
			}
			if !got && s.Direction != tt.current {
				t.Errorf("rejected request changed direction to %v", s.Direction)
			}
		})
	}
}

func TestSnakeNoReversalBetweenTicks(t *testing.T) {
	s := NewSnake(Coord{200, 200}, 5, DirectionRight)

	if !s.SetDirection(DirectionUp) {
		t.Fatal("turn up rejected")
	}
	// Left is not the reverse of up, but it is the reverse of the last move.
	if s.SetDirection(DirectionLeft) {
		t.Fatal("reversal against the last move was accepted")
	}

	s.Advance()
	s.TrimTail()

	if !s.SetDirection(DirectionLeft) {
		t.Fatal("left after moving up was rejected")
	}
}

func TestSnakeAdvanceAndTrim(t *testing.T) {
	s := NewSnake(Coord{200, 200}, 5, DirectionRight)
	tail := s.At(s.Len() - 1)

	head, dropped := s.Advance()
	if dropped {
		t.Fatal("Advance() dropped a segment below capacity")
	}
	if !head.Equals(Coord{220, 200}) {
		t.Fatalf("Advance() = %+v, want (220,200)", head)
	}
	if s.Len() != 6 {
		t.Fatalf("Len() after Advance = %d, want 6", s.Len())
	}

	s.TrimTail()
	if s.Len() != 5 {
		t.Fatalf("Len() after TrimTail = %d, want 5", s.Len())
	}
	if s.Occupies(tail, 0) {
		t.Errorf("old tail %+v still occupied", tail)
	}
}

func TestSnakeCapacity(t *testing.T) {
	s := NewSnake(Coord{200, 200}, 2, DirectionRight)
	s.capacity = 3

	s.Advance()
	if _, dropped := s.Advance(); !dropped {
		t.Fatal("Advance() at capacity did not report the dropped tail")
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want capacity 3", s.Len())
	}
	if !s.Head().Equals(Coord{240, 200}) {
		t.Errorf("Head() = %+v, want (240,200)", s.Head())
	}
}
