package game

import (
	"grid-snake/game/types"
)

// EventKind tells apart the two things an input source can report.
type EventKind int

const (
	QuitEvent EventKind = iota
	DirectionEvent
)

// Event is one discrete input: a quit request or a direction key press.
type Event struct {
	Kind      EventKind
	Direction types.Direction
}

// Quit builds a quit event.
func Quit() Event {
	return Event{Kind: QuitEvent}
}

// Turn builds a direction event.
func Turn(d types.Direction) Event {
	return Event{Kind: DirectionEvent, Direction: d}
}

// InputSource is polled once at the start of every tick. Poll must not
// block; it returns whatever arrived since the previous call.
type InputSource interface {
	Poll() []Event
}

// HUD is the text overlay shown next to the board.
type HUD struct {
	Length int
	Best   int
	Rounds int
}

// Renderer paints the board one cell at a time.
type Renderer interface {
	// Clear repaints the whole board with the background color.
	Clear()
	// ClearCell repaints a single cell with the background color.
	ClearCell(p types.Point)
	DrawCell(p types.Point, c types.Color)
	// Present makes the frame visible.
	Present(hud HUD)
}

// Clock throttles the loop. Tick blocks until 1/rate seconds have passed
// since its previous call.
type Clock interface {
	Tick(rate int)
}

// Listener is told about game events, e.g. to play a sound.
type Listener interface {
	FoodEaten(length int)
	SnakeReset(length int)
}

type nopListener struct{}

func (nopListener) FoodEaten(int)  {}
func (nopListener) SnakeReset(int) {}
