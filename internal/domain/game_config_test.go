package domain

import (
	"errors"
	"testing"
)

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *GameConfig)
		want   error
	}{
		{"default", func(c *GameConfig) {}, nil},
		{"zero length", func(c *GameConfig) { c.StartLength = 0 }, ErrInvalidLength},
		{"too long", func(c *GameConfig) { c.StartLength = CellCount + 1 }, ErrInvalidLength},
		{"off grid", func(c *GameConfig) { c.StartX = 205 }, ErrInvalidStart},
		{"in wall", func(c *GameConfig) { c.StartY = 0 }, ErrInvalidStart},
		{"tail in wall", func(c *GameConfig) { c.StartX = 60 }, ErrInvalidStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultGameConfig()
			tt.modify(c)
			err := c.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGameConfigCopy(t *testing.T) {
	c := DefaultGameConfig()
	cp := c.Copy()
	cp.StartX = 400
	if c.StartX == cp.StartX {
		t.Fatal("Copy() shares state with the original")
	}
}
