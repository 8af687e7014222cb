package app

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"snake/internal/audio"
	"snake/internal/domain"
)

// App owns the game state and turns input into simulation steps. It is driven
// from a single goroutine: either Run or a backend that owns its own loop.
type App struct {
	config *Config
	state  *domain.GameState
	cues   audio.Cues

	events []AppEvent
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventScoreChanged AppEventType = iota
	AppEventGameOver
	AppEventQuit
)

type InputEvent struct {
	Type      InputEventType
	Direction domain.Direction
}

type InputEventType int

const (
	InputSteer InputEventType = iota
	InputQuit
)

type GameOverPayload struct {
	Score     int32
	Collision domain.Collision
}

func NewApp(config *Config, cues audio.Cues) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cues == nil {
		cues = audio.Nop{}
	}

	seed := config.ResolveSeed()
	state := domain.NewGameState(config.Game, rand.New(rand.NewSource(seed)))
	state.Start()

	log.Printf("Game started: seed=%d head=%+v food=%+v", seed, state.Snake.Head(), state.Food)

	return &App{
		config: config,
		state:  state,
		cues:   cues,
	}, nil
}

func (a *App) State() *domain.GameState {
	return a.state
}

func (a *App) Running() bool {
	return a.state.Running
}

func (a *App) FrameDelay() time.Duration {
	return domain.FrameDelay(a.state.Score)
}

func (a *App) Title() string {
	return fmt.Sprintf("Score: %d", a.state.Score)
}

func (a *App) HandleInput(event InputEvent) {
	switch event.Type {
	case InputSteer:
		a.state.ChangeDirection(event.Direction)

	case InputQuit:
		if a.state.Running {
			a.state.Quit()
			a.events = append(a.events, AppEvent{Type: AppEventQuit})
		}
	}
}

// Step runs one tick and queues the resulting events.
func (a *App) Step() *domain.TickResult {
	result := a.state.Tick()
	if !result.Moved {
		return result
	}

	if result.Ate {
		a.cues.Eat()
		a.events = append(a.events, AppEvent{
			Type:    AppEventScoreChanged,
			Payload: result.Score,
		})
	}

	if result.Collision != domain.CollisionNone {
		a.cues.GameOver()
		log.Printf("Game over: %s collision, score %d after %d ticks",
			result.Collision, result.Score, a.state.Ticks)
		a.events = append(a.events, AppEvent{
			Type: AppEventGameOver,
			Payload: GameOverPayload{
				Score:     result.Score,
				Collision: result.Collision,
			},
		})
	}

	return result
}

// Events returns and clears the queued events.
func (a *App) Events() []AppEvent {
	events := a.events
	a.events = nil
	return events
}

func (a *App) Close() error {
	return a.cues.Close()
}
