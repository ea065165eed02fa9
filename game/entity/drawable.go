package entity

import "grid-snake/game/types"

// Drawable is anything the renderer can paint cell by cell.
type Drawable interface {
	Cells() []types.Point
	Color() types.Color
}
