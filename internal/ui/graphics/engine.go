package graphics

import (
	"log"
	"time"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// Engine runs the game inside an ebiten window. ebiten owns the loop: Update
// gathers input every frame and advances the simulation once the current
// frame delay has elapsed; Draw renders the latest state.
type Engine struct {
	app *app.App

	keyboard   *input.KeyboardHandler
	field      *components.FieldRenderer
	scoreboard *components.Scoreboard

	lastTick time.Time
	now      func() time.Time
}

func NewEngine(a *app.App) *Engine {
	types.InitFonts()

	return &Engine{
		app:        a,
		keyboard:   input.NewKeyboardHandler(),
		field:      components.NewFieldRenderer(),
		scoreboard: components.NewScoreboard(),
		now:        time.Now,
	}
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(domain.ScreenWidth, domain.ScreenHeight)
	ebiten.SetWindowTitle(e.app.Title())
	ebiten.SetWindowClosingHandled(true)

	e.lastTick = e.now()

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	for _, event := range e.keyboard.Update() {
		e.app.HandleInput(event)
	}

	e.tick()

	for _, event := range e.app.Events() {
		e.handleEvent(event)
	}

	if !e.app.Running() {
		return ebiten.Termination
	}
	return nil
}

// tick steps the simulation at most once per frame. The deadline advances by
// exactly one frame delay so ticks do not round up to the display rate; after
// a stall longer than a delay it resyncs to now instead of catching up.
func (e *Engine) tick() {
	now := e.now()
	delay := e.app.FrameDelay()
	if now.Sub(e.lastTick) < delay {
		return
	}

	e.app.Step()

	e.lastTick = e.lastTick.Add(delay)
	if now.Sub(e.lastTick) >= delay {
		e.lastTick = now
	}
}

func (e *Engine) Draw(screen *ebiten.Image) {
	cv := &imageCanvas{dst: screen}
	cv.Clear(types.ColorBackground)
	app.Render(cv, e.app, e.field, e.scoreboard)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return domain.ScreenWidth, domain.ScreenHeight
}

func (e *Engine) handleEvent(event app.AppEvent) {
	switch event.Type {
	case app.AppEventScoreChanged:
		ebiten.SetWindowTitle(e.app.Title())

	case app.AppEventGameOver:
		if payload, ok := event.Payload.(app.GameOverPayload); ok {
			ebiten.SetWindowTitle(e.app.Title() + " - Game over")
			log.Printf("Window: game over (%s)", payload.Collision)
		}

	case app.AppEventQuit:
		log.Println("Window: quit requested")
	}
}
