package terminal

import (
	"fmt"
	"image/color"

	"snake/internal/app"
	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// Each board cell is drawn as two terminal columns and one row so that cells
// look roughly square.
const (
	ColumnsPerCell = 2
	Columns        = domain.ScreenWidth / domain.CellWidth * ColumnsPerCell
	Rows           = domain.ScreenHeight / domain.CellHeight

	pixelsPerColumn = domain.CellWidth / ColumnsPerCell
)

// Platform renders the game with tcell and implements app.Platform.
type Platform struct {
	screen tcell.Screen
	events chan tcell.Event

	title string
}

func NewPlatform() (*Platform, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewPlatformWithScreen(screen)
}

// NewPlatformWithScreen initialises screen and starts forwarding its events.
func NewPlatformWithScreen(screen tcell.Screen) (*Platform, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()

	p := &Platform{
		screen: screen,
		events: make(chan tcell.Event, 100),
	}
	go p.forward()
	return p, nil
}

// forward runs until the screen is finalised, when PollEvent returns nil.
func (p *Platform) forward() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		default:
		}
	}
}

func (p *Platform) PollEvents() []app.InputEvent {
	var inputs []app.InputEvent
	for {
		select {
		case ev := <-p.events:
			if key, ok := ev.(*tcell.EventKey); ok {
				if input, ok := TranslateKey(key); ok {
					inputs = append(inputs, input)
				}
			}
		default:
			return inputs
		}
	}
}

func (p *Platform) Clear(c color.RGBA) {
	p.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

func (p *Platform) FillRect(r domain.Segment, c color.RGBA) {
	style := tcell.StyleDefault.Background(toColor(c))
	x0, y0, x1, y1 := cellBounds(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// StrokeRect marks the left and right edge columns with brackets, keeping the
// fill colour underneath.
func (p *Platform) StrokeRect(r domain.Segment, c color.RGBA) {
	x0, y0, x1, y1 := cellBounds(r)
	for y := y0; y < y1; y++ {
		p.setRune(x0, y, '[', c)
		p.setRune(x1-1, y, ']', c)
	}
}

func (p *Platform) DrawText(x, y int32, s string, c color.RGBA) {
	col := int(x / pixelsPerColumn)
	row := int(y / domain.CellHeight)
	for i, r := range []rune(s) {
		p.setRune(col+i, row, r, c)
	}
}

func (p *Platform) Present() {
	p.screen.Show()
}

// SetTitle only records the title: a terminal has no window title bar and the
// scoreboard already shows the score in the top wall.
func (p *Platform) SetTitle(title string) {
	p.title = title
}

func (p *Platform) Title() string {
	return p.title
}

func (p *Platform) Close() {
	p.screen.Fini()
}

func (p *Platform) setRune(x, y int, r rune, fg color.RGBA) {
	if x < 0 || y < 0 || x >= Columns || y >= Rows {
		return
	}
	_, _, style, _ := p.screen.GetContent(x, y)
	p.screen.SetContent(x, y, r, nil, style.Foreground(toColor(fg)))
}

func cellBounds(r domain.Segment) (x0, y0, x1, y1 int) {
	x0 = int(r.X / pixelsPerColumn)
	y0 = int(r.Y / domain.CellHeight)
	x1 = int((r.X + r.W + pixelsPerColumn - 1) / pixelsPerColumn)
	y1 = int((r.Y + r.H + domain.CellHeight - 1) / domain.CellHeight)
	return x0, y0, x1, y1
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
