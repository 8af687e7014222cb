package input

import (
	"snake/internal/app"
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

var directionKeys = []struct {
	key ebiten.Key
	dir domain.Direction
}{
	{ebiten.KeyUp, domain.DirectionUp},
	{ebiten.KeyDown, domain.DirectionDown},
	{ebiten.KeyLeft, domain.DirectionLeft},
	{ebiten.KeyRight, domain.DirectionRight},
}

// Update returns the input events of the current frame in the order the
// backend reports them: steering first, quit last.
func (kh *KeyboardHandler) Update() []app.InputEvent {
	var events []app.InputEvent

	for _, dk := range directionKeys {
		if inpututil.IsKeyJustPressed(dk.key) {
			events = append(events, app.InputEvent{Type: app.InputSteer, Direction: dk.dir})
		}
	}

	if IsEscapeReleased() || ebiten.IsWindowBeingClosed() {
		events = append(events, app.InputEvent{Type: app.InputQuit})
	}

	return events
}

func IsEscapeReleased() bool {
	return inpututil.IsKeyJustReleased(ebiten.KeyEscape)
}
