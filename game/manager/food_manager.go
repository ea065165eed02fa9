package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when the snake covers every cell and food has
// nowhere to go. The game does not support this state.
var ErrBoardFull = errors.New("no free cell left for food")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws random cells until one is clear of body.
func (fm *FoodManager) GenerateFood(body []types.Point) (types.Point, error) {
	if fm.collisionMgr.IsBoardFull(body) {
		return types.Point{}, ErrBoardFull
	}
	for {
		food := fm.grid.RandomCell(fm.rng)
		if fm.collisionMgr.ValidateSpawnPosition(food, body) {
			return food, nil
		}
	}
}

// NewFood creates the session's food on a free cell.
func (fm *FoodManager) NewFood(body []types.Point) (*entity.Food, error) {
	pos, err := fm.GenerateFood(body)
	if err != nil {
		return nil, err
	}
	return entity.NewFood(pos), nil
}

// Reposition moves food to a fresh free cell.
func (fm *FoodManager) Reposition(food *entity.Food, body []types.Point) error {
	pos, err := fm.GenerateFood(body)
	if err != nil {
		return err
	}
	food.MoveTo(pos)
	return nil
}

// EnsureClear repositions food only if it sits on body.
func (fm *FoodManager) EnsureClear(food *entity.Food, body []types.Point) (bool, error) {
	if fm.collisionMgr.ValidateSpawnPosition(food.Position(), body) {
		return false, nil
	}
	return true, fm.Reposition(food, body)
}
