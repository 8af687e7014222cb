package terminal

import (
	"snake/internal/app"
	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// TranslateKey maps a tcell key event to a game input. Only the arrow keys,
// Escape and Ctrl-C are recognised.
func TranslateKey(ev *tcell.EventKey) (app.InputEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return app.InputEvent{Type: app.InputSteer, Direction: domain.DirectionUp}, true
	case tcell.KeyDown:
		return app.InputEvent{Type: app.InputSteer, Direction: domain.DirectionDown}, true
	case tcell.KeyLeft:
		return app.InputEvent{Type: app.InputSteer, Direction: domain.DirectionLeft}, true
	case tcell.KeyRight:
		return app.InputEvent{Type: app.InputSteer, Direction: domain.DirectionRight}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.InputEvent{Type: app.InputQuit}, true
	}
	return app.InputEvent{}, false
}
