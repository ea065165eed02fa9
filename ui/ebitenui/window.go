// Package ebitenui runs the board in an ebiten window. Ebiten owns the main
// loop and calls Update at the session's tick rate, so each Update is one
// game tick.
package ebitenui

import (
	"fmt"
	"image/color"

	"grid-snake/game"
	"grid-snake/game/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
)

const hudHeight = 24

var keyDirections = []struct {
	key ebiten.Key
	dir types.Direction
}{
	{ebiten.KeyArrowUp, types.Up},
	{ebiten.KeyW, types.Up},
	{ebiten.KeyArrowDown, types.Down},
	{ebiten.KeyS, types.Down},
	{ebiten.KeyArrowLeft, types.Left},
	{ebiten.KeyA, types.Left},
	{ebiten.KeyArrowRight, types.Right},
	{ebiten.KeyD, types.Right},
}

// Window is the renderer and input source. The board lives on a retained
// offscreen image that Draw copies to the screen every frame.
type Window struct {
	grid   types.Grid
	canvas *ebiten.Image
	hud    game.HUD
	title  string
}

func NewWindow(grid types.Grid, title string) *Window {
	return &Window{
		grid:   grid,
		canvas: ebiten.NewImage(grid.Width, grid.Height),
		title:  title,
	}
}

// Clock satisfies game.Clock; ebiten's TPS setting does the pacing.
type Clock struct{}

func (Clock) Tick(int) {}

// Run opens the window and blocks until the session terminates.
func (w *Window) Run(g *game.Game, rate int) error {
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.grid.Width, w.grid.Height+hudHeight)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(rate)
	err := ebiten.RunGame(&driver{g: g, w: w})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (w *Window) Poll() []game.Event {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return []game.Event{game.Quit()}
	}
	var events []game.Event
	for _, kd := range keyDirections {
		if inpututil.IsKeyJustPressed(kd.key) {
			events = append(events, game.Turn(kd.dir))
		}
	}
	return events
}

func (w *Window) Clear() {
	w.canvas.Fill(toColor(types.BoardBackground))
}

func (w *Window) ClearCell(p types.Point) {
	size := float32(w.grid.CellSize)
	vector.DrawFilledRect(w.canvas, float32(p.X), float32(p.Y), size, size, toColor(types.BoardBackground), false)
}

func (w *Window) DrawCell(p types.Point, c types.Color) {
	size := float32(w.grid.CellSize)
	x, y := float32(p.X), float32(p.Y)
	vector.DrawFilledRect(w.canvas, x, y, size, size, toColor(c), false)
	vector.StrokeRect(w.canvas, x+0.5, y+0.5, size-1, size-1, 1, toColor(types.CellBorder), false)
}

func (w *Window) Present(hud game.HUD) {
	w.hud = hud
}

type driver struct {
	g *game.Game
	w *Window
}

func (d *driver) Update() error {
	if err := d.g.Step(); err != nil {
		return err
	}
	if d.g.Status() == game.Terminated {
		return ebiten.Termination
	}
	return nil
}

func (d *driver) Draw(screen *ebiten.Image) {
	screen.DrawImage(d.w.canvas, nil)
	hud := d.w.hud
	label := fmt.Sprintf("Length: %d  Best: %d  Rounds: %d", hud.Length, hud.Best, hud.Rounds)
	ebitenutil.DebugPrintAt(screen, label, 5, d.w.grid.Height+4)
}

func (d *driver) Layout(int, int) (int, int) {
	return d.w.grid.Width, d.w.grid.Height + hudHeight
}

func toColor(c types.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
