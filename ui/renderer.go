package ui

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudHeight = 30
	fontSize  = 20
	padding   = 5
)

// Renderer draws the board into a retained render texture, so a cell
// stays painted until it is explicitly cleared, and blits it every frame.
type Renderer struct {
	grid      types.Grid
	canvas    rl.RenderTexture2D
	drawing   bool
	boardW    int32
	boardH    int32
	cellSize  int32
	hudOffset int32
}

// NewRenderer opens the window; Close releases it.
func NewRenderer(grid types.Grid, title string) *Renderer {
	r := &Renderer{
		grid:     grid,
		boardW:   int32(grid.Width),
		boardH:   int32(grid.Height),
		cellSize: int32(grid.CellSize),
	}
	r.hudOffset = r.boardH
	rl.InitWindow(r.boardW, r.boardH+hudHeight, title)
	r.canvas = rl.LoadRenderTexture(r.boardW, r.boardH)
	return r
}

func (r *Renderer) Close() {
	rl.UnloadRenderTexture(r.canvas)
	rl.CloseWindow()
}

func (r *Renderer) begin() {
	if !r.drawing {
		rl.BeginTextureMode(r.canvas)
		r.drawing = true
	}
}

func (r *Renderer) Clear() {
	r.begin()
	rl.ClearBackground(toColor(types.BoardBackground))
}

func (r *Renderer) ClearCell(p types.Point) {
	r.begin()
	rl.DrawRectangle(int32(p.X), int32(p.Y), r.cellSize, r.cellSize, toColor(types.BoardBackground))
}

func (r *Renderer) DrawCell(p types.Point, c types.Color) {
	r.begin()
	rl.DrawRectangle(int32(p.X), int32(p.Y), r.cellSize, r.cellSize, toColor(c))
	rl.DrawRectangleLines(int32(p.X), int32(p.Y), r.cellSize, r.cellSize, toColor(types.CellBorder))
}

func (r *Renderer) Present(hud game.HUD) {
	if r.drawing {
		rl.EndTextureMode()
		r.drawing = false
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Render textures are stored bottom-up, flip on the way out.
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(r.boardW), Height: -float32(r.boardH)}
	rl.DrawTextureRec(r.canvas.Texture, src, rl.Vector2{X: 0, Y: 0}, rl.White)

	rl.DrawRectangle(0, r.hudOffset, r.boardW, hudHeight, rl.DarkGray)
	label := fmt.Sprintf("Length: %d   Best: %d   Rounds: %d", hud.Length, hud.Best, hud.Rounds)
	rl.DrawText(label, padding, r.hudOffset+padding, fontSize, rl.White)
	rl.EndDrawing()
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
