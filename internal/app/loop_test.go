package app

import (
	"context"
	"image/color"
	"testing"
	"time"

	"snake/internal/domain"
)

type fakePlatform struct {
	beforePoll func()
	inputs     [][]InputEvent
	titles     []string
	presents   int
	fills      int
	clears     int
}

func (p *fakePlatform) Clear(c color.RGBA)                          { p.clears++ }
func (p *fakePlatform) FillRect(r domain.Segment, c color.RGBA)     { p.fills++ }
func (p *fakePlatform) StrokeRect(r domain.Segment, c color.RGBA)   {}
func (p *fakePlatform) DrawText(x, y int32, s string, c color.RGBA) {}
func (p *fakePlatform) Present()                                    { p.presents++ }
func (p *fakePlatform) SetTitle(title string)                       { p.titles = append(p.titles, title) }

func (p *fakePlatform) PollEvents() []InputEvent {
	if p.beforePoll != nil {
		p.beforePoll()
	}
	if len(p.inputs) == 0 {
		return nil
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]
	return next
}

func TestLoopRunsUntilQuit(t *testing.T) {
	a, _ := newTestApp(t)
	a.State().Food = domain.Coord{X: 220, Y: 200}

	p := &fakePlatform{
		inputs: [][]InputEvent{
			nil,
			{{Type: InputSteer, Direction: domain.DirectionDown}},
			{{Type: InputQuit}},
		},
	}
	polls := 0
	p.beforePoll = func() {
		polls++
		if polls > 1 {
			// keep the respawned food off the path
			a.State().Food = domain.Coord{X: domain.MinX, Y: domain.MaxY}
		}
	}

	var delays []time.Duration
	l := NewLoop(a, p)
	l.sleep = func(d time.Duration) { delays = append(delays, d) }

	l.Run(context.Background())

	if p.presents != 3 || p.clears != 3 {
		t.Fatalf("presents=%d clears=%d, want 3 frames", p.presents, p.clears)
	}
	if len(delays) != 3 {
		t.Fatalf("slept %d times, want 3", len(delays))
	}
	if delays[0] != 150*time.Millisecond {
		t.Errorf("first delay = %v, want 150ms", delays[0])
	}
	if len(p.titles) != 2 || p.titles[0] != "Score: 0" || p.titles[1] != "Score: 1" {
		t.Errorf("titles = %v, want initial and after eating", p.titles)
	}

	// right, down, down from (200,200)
	if head := a.State().Snake.Head(); !head.Equals(domain.Coord{X: 220, Y: 240}) {
		t.Errorf("head = %+v, want (220,240)", head)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t)
	p := &fakePlatform{}

	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	l := NewLoop(a, p)
	l.sleep = func(time.Duration) {
		frames++
		if frames == 2 {
			cancel()
		}
	}

	l.Run(ctx)

	if a.Running() {
		t.Fatal("app still running after cancel")
	}
	if p.presents != 2 {
		t.Errorf("presents = %d, want 2", p.presents)
	}
}
