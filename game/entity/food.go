package entity

import "grid-snake/game/types"

// Food is the single apple on the board.
type Food struct {
	position types.Point
	color    types.Color
}

func NewFood(pos types.Point) *Food {
	return &Food{position: pos, color: types.AppleColor}
}

func (f *Food) Position() types.Point {
	return f.position
}

// MoveTo places the food on pos.
func (f *Food) MoveTo(pos types.Point) {
	f.position = pos
}

func (f *Food) Cells() []types.Point {
	return []types.Point{f.position}
}

func (f *Food) Color() types.Color {
	return f.color
}
