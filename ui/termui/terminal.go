// Package termui runs the board in a terminal through tcell. Every board
// cell is two terminal columns wide so cells look roughly square.
package termui

import (
	"fmt"
	"sync"

	"grid-snake/game"
	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const eventBuffer = 64

// Terminal is both the renderer and the input source of a session.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// Open creates and initializes the process terminal.
func Open(grid types.Grid) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	return New(screen, grid)
}

// New takes ownership of screen and initializes it.
func New(screen tcell.Screen, grid types.Grid) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	w, h := screen.Size()
	if need := grid.Cols() * 2; w < need || h < grid.Rows()+1 {
		screen.Fini()
		return nil, errors.Errorf("terminal is %dx%d, board needs %dx%d", w, h, need, grid.Rows()+1)
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards terminal events until the terminal is closed. A full
// buffer stalls it rather than losing keys, a quit key among them.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

func (t *Terminal) Poll() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if e, ok := translateKey(ev); ok {
					events = append(events, e)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return events
		}
	}
}

func translateKey(ev *tcell.EventKey) (game.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit(), true
	case tcell.KeyUp:
		return game.Turn(types.Up), true
	case tcell.KeyDown:
		return game.Turn(types.Down), true
	case tcell.KeyLeft:
		return game.Turn(types.Left), true
	case tcell.KeyRight:
		return game.Turn(types.Right), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return game.Quit(), true
		case 'w', 'W':
			return game.Turn(types.Up), true
		case 's', 'S':
			return game.Turn(types.Down), true
		case 'a', 'A':
			return game.Turn(types.Left), true
		case 'd', 'D':
			return game.Turn(types.Right), true
		}
	}
	return game.Event{}, false
}

func (t *Terminal) Clear() {
	for row := 0; row < t.grid.Rows(); row++ {
		for col := 0; col < t.grid.Cols(); col++ {
			t.paint(col, row, types.BoardBackground)
		}
	}
}

func (t *Terminal) ClearCell(p types.Point) {
	col, row := t.grid.Index(p)
	t.paint(col, row, types.BoardBackground)
}

func (t *Terminal) DrawCell(p types.Point, c types.Color) {
	col, row := t.grid.Index(p)
	t.paint(col, row, c)
}

func (t *Terminal) paint(col, row int, c types.Color) {
	style := tcell.StyleDefault.Background(toColor(c))
	t.screen.SetContent(col*2, row, ' ', nil, style)
	t.screen.SetContent(col*2+1, row, ' ', nil, style)
}

func (t *Terminal) Present(hud game.HUD) {
	label := fmt.Sprintf("Length: %d  Best: %d  Rounds: %d  (arrows/WASD, q quits)", hud.Length, hud.Best, hud.Rounds)
	row := t.grid.Rows()
	width := t.grid.Cols() * 2
	style := tcell.StyleDefault.Foreground(toColor(types.CellBorder))
	i := 0
	for _, r := range label {
		if i >= width {
			break
		}
		t.screen.SetContent(i, row, r, nil, style)
		i++
	}
	for ; i < width; i++ {
		t.screen.SetContent(i, row, ' ', nil, tcell.StyleDefault)
	}
	t.screen.Show()
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
