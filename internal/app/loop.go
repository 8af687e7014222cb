package app

import (
	"context"
	"time"

	"snake/internal/ui/components"
	"snake/internal/ui/types"
)

// Platform is a windowing/input backend that lets the caller own the frame
// loop.
type Platform interface {
	types.Canvas
	PollEvents() []InputEvent
	Present()
	SetTitle(title string)
}

// Loop drives an App on a Platform: input, step, render, present, throttle.
type Loop struct {
	app        *App
	platform   Platform
	field      *components.FieldRenderer
	scoreboard *components.Scoreboard

	sleep func(time.Duration)
}

func NewLoop(app *App, platform Platform) *Loop {
	return &Loop{
		app:        app,
		platform:   platform,
		field:      components.NewFieldRenderer(),
		scoreboard: components.NewScoreboard(),
		sleep:      time.Sleep,
	}
}

// Run blocks until the app stops running. Cancelling ctx is a quit request.
func (l *Loop) Run(ctx context.Context) {
	l.platform.SetTitle(l.app.Title())

	for l.app.Running() {
		if ctx.Err() != nil {
			l.app.HandleInput(InputEvent{Type: InputQuit})
			break
		}
		l.Frame()
		l.sleep(l.app.FrameDelay())
	}
}

// Frame runs one iteration without the trailing delay.
func (l *Loop) Frame() {
	l.platform.Clear(types.ColorBackground)

	for _, event := range l.platform.PollEvents() {
		l.app.HandleInput(event)
	}

	l.app.Step()

	Render(l.platform, l.app, l.field, l.scoreboard)
	l.platform.Present()

	for _, event := range l.app.Events() {
		if event.Type == AppEventScoreChanged {
			l.platform.SetTitle(l.app.Title())
		}
	}
}

// Render draws the current state onto any canvas.
func Render(cv types.Canvas, app *App, field *components.FieldRenderer, scoreboard *components.Scoreboard) {
	state := app.State()
	field.Draw(cv, state)
	scoreboard.Draw(cv, state)
}
