package audio

import (
	"log"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenCues plays tones through ebiten's audio context. Only one context may
// exist per process.
type EbitenCues struct {
	ctx  *ebitenaudio.Context
	eat  *ebitenaudio.Player
	lose *ebitenaudio.Player
}

func NewEbitenCues() *EbitenCues {
	ctx := ebitenaudio.NewContext(SampleRate)
	return &EbitenCues{
		ctx:  ctx,
		eat:  ctx.NewPlayerFromBytes(SineTone(SampleRate, EatFreq, EatDuration)),
		lose: ctx.NewPlayerFromBytes(SineTone(SampleRate, LoseFreq, LoseDuration)),
	}
}

func (c *EbitenCues) Eat() {
	play(c.eat)
}

func (c *EbitenCues) GameOver() {
	play(c.lose)
}

func (c *EbitenCues) Close() error {
	if err := c.eat.Close(); err != nil {
		return err
	}
	return c.lose.Close()
}

func play(p *ebitenaudio.Player) {
	if err := p.Rewind(); err != nil {
		log.Printf("Audio rewind failed: %v", err)
		return
	}
	p.Play()
}
