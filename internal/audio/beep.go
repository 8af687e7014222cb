package audio

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// BeepCues plays tones through the beep speaker. It is used when no ebiten
// window exists.
type BeepCues struct {
	sampleRate beep.SampleRate
}

func NewBeepCues() (*BeepCues, error) {
	sr := beep.SampleRate(SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &BeepCues{sampleRate: sr}, nil
}

func (c *BeepCues) Eat() {
	c.tone(EatFreq, EatDuration)
}

func (c *BeepCues) GameOver() {
	c.tone(LoseFreq, LoseDuration)
}

func (c *BeepCues) Close() error {
	speaker.Close()
	return nil
}

func (c *BeepCues) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(c.sampleRate, freq)
	if err != nil {
		log.Printf("Tone %.0fHz failed: %v", freq, err)
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(d), sine))
}
