package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// CollisionManager answers every "do these touch" question on the board.
// Two things collide iff they occupy the same grid cell.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if the snake's head is on the food
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food *entity.Food) bool {
	return snake.Head() == food.Position()
}

// IsSelfCollision checks if the head landed on any other body cell
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HitsItself()
}

// ValidateSpawnPosition checks if pos is on the board and clear of body
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, body []types.Point) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	for _, part := range body {
		if pos == part {
			return false
		}
	}
	return true
}

// IsBoardFull reports whether body leaves no free cell.
func (cm *CollisionManager) IsBoardFull(body []types.Point) bool {
	return len(body) >= cm.grid.Cells()
}
