package ui

import (
	"grid-snake/game"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

// Input turns raylib key presses into game events. raylib only pumps window
// events inside EndDrawing, so Poll pumps them itself: a key pressed while
// the loop sleeps between frames is seen on the very next tick.
type Input struct {
	pollEvents  func()
	keyPressed  func() int32
	shouldClose func() bool
}

func NewInput() *Input {
	return &Input{
		pollEvents:  rl.PollInputEvents,
		keyPressed:  rl.GetKeyPressed,
		shouldClose: rl.WindowShouldClose,
	}
}

func (in *Input) Poll() []game.Event {
	// The press queue is reset by every pump, so drain what the last
	// EndDrawing collected before pumping again.
	keys := in.drain(nil)
	in.pollEvents()
	keys = in.drain(keys)

	if in.shouldClose() {
		return []game.Event{game.Quit()}
	}
	var events []game.Event
	for _, key := range keys {
		if key == rl.KeyQ || key == rl.KeyEscape {
			return []game.Event{game.Quit()}
		}
		for _, kd := range keyDirections {
			if kd.key == key {
				events = append(events, game.Turn(kd.dir))
			}
		}
	}
	return events
}

func (in *Input) drain(keys []int32) []int32 {
	for key := in.keyPressed(); key != 0; key = in.keyPressed() {
		keys = append(keys, key)
	}
	return keys
}
