package audio

import "time"

// Cues plays the game's sound effects. Implementations must not block the
// frame loop.
type Cues interface {
	Eat()
	GameOver()
	Close() error
}

const (
	SampleRate = 44100

	EatFreq      = 880.0
	EatDuration  = 100 * time.Millisecond
	LoseFreq     = 220.0
	LoseDuration = 500 * time.Millisecond
)

// Nop is the muted implementation.
type Nop struct{}

func (Nop) Eat()         {}
func (Nop) GameOver()    {}
func (Nop) Close() error { return nil }
