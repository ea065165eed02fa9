package game

import (
	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Status is the loop's lifecycle state.
type Status int

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Deps are the collaborators a session needs from its backend.
type Deps struct {
	Input    InputSource
	Renderer Renderer
	Clock    Clock
	Listener Listener
	// Rand overrides the session random source built from the config seed.
	Rand *rand.Rand
}

// Game owns the snake and the food for one session and drives them one
// tick at a time.
type Game struct {
	UUID string
	Grid types.Grid

	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	input    InputSource
	renderer Renderer
	clock    Clock
	listener Listener

	rate      int
	status    Status
	ticks     uint64
	fullFrame bool
}

func NewGame(cfg types.Config, deps Deps) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if deps.Input == nil || deps.Renderer == nil || deps.Clock == nil {
		return nil, errors.New("input, renderer and clock are required")
	}
	rng := deps.Rand
	if rng == nil {
		rng = cfg.NewRand()
	}
	listener := deps.Listener
	if listener == nil {
		listener = nopListener{}
	}

	grid := types.NewGrid(cfg)
	collisionMgr := manager.NewCollisionManager(grid)
	foodMgr := manager.NewFoodManager(grid, rng, collisionMgr)
	snake := entity.NewSnake(grid.Center(), rng)

	food, err := foodMgr.NewFood(snake.Body)
	if err != nil {
		return nil, errors.Wrap(err, "placing initial food")
	}

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		snake:        snake,
		food:         food,
		collisionMgr: collisionMgr,
		foodMgr:      foodMgr,
		stateMgr:     manager.NewStateManager(),
		input:        deps.Input,
		renderer:     deps.Renderer,
		clock:        deps.Clock,
		listener:     listener,
		rate:         cfg.TicksPerSecond,
		status:       Running,
		fullFrame:    true,
	}
	glog.Infof("session %s: %dx%d grid, cell %dpx, %d ticks/s",
		g.UUID, grid.Cols(), grid.Rows(), grid.CellSize, g.rate)
	return g, nil
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return g.food
}

func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}

func (g *Game) Status() Status {
	return g.status
}

// Ticks returns the number of completed ticks.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Run ticks the game at the configured rate until the player quits. A
// non-nil error means the session hit a state it cannot continue from.
func (g *Game) Run() error {
	for g.status == Running {
		g.clock.Tick(g.rate)
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs exactly one tick: input, turn, move, food, self collision,
// redraw.
func (g *Game) Step() error {
	if g.status == Terminated {
		return nil
	}

	for _, ev := range g.input.Poll() {
		switch ev.Kind {
		case QuitEvent:
			g.terminate()
			return nil
		case DirectionEvent:
			if !g.snake.RequestDirection(ev.Direction) {
				glog.V(2).Infof("tick %d: rejected reversal to %s", g.ticks, ev.Direction)
			}
		}
	}

	g.snake.UpdateDirection()
	g.snake.Move(g.Grid)
	g.ticks++
	g.stateMgr.UpdateLength(g.snake.Len())

	if g.collisionMgr.IsFoodCollision(g.snake, g.food) {
		g.snake.Grow()
		if err := g.foodMgr.Reposition(g.food, g.snake.Body); err != nil {
			return errors.Wrapf(err, "tick %d", g.ticks)
		}
		glog.V(1).Infof("tick %d: ate food, length %d, food now at %v",
			g.ticks, g.snake.TargetLength(), g.food.Position())
		g.listener.FoodEaten(g.snake.TargetLength())
	}

	if g.collisionMgr.IsSelfCollision(g.snake) {
		length := g.snake.Len()
		record := g.stateMgr.EndRound(length)
		g.snake.Reset()
		if moved, err := g.foodMgr.EnsureClear(g.food, g.snake.Body); err != nil {
			return errors.Wrapf(err, "tick %d", g.ticks)
		} else if moved {
			glog.V(1).Infof("tick %d: food moved off respawned snake to %v", g.ticks, g.food.Position())
		}
		glog.V(1).Infof("tick %d: snake hit itself at length %d after %s, heading %s",
			g.ticks, length, record.Duration(), g.snake.Direction)
		g.listener.SnakeReset(length)
		g.fullFrame = true
	}

	glog.V(2).Infof("tick %d: head %v dir %s len %d", g.ticks, g.snake.Head(), g.snake.Direction, g.snake.Len())
	g.draw()
	return nil
}

func (g *Game) draw() {
	if tail, ok := g.snake.TrailingCell(); ok && !g.fullFrame {
		g.renderer.ClearCell(tail)
	} else {
		g.renderer.Clear()
	}
	g.fullFrame = false

	for _, d := range []entity.Drawable{g.food, g.snake} {
		for _, p := range d.Cells() {
			g.renderer.DrawCell(p, d.Color())
		}
	}
	g.renderer.Present(HUD{
		Length: g.snake.Len(),
		Best:   g.stateMgr.Best(),
		Rounds: g.stateMgr.Rounds(),
	})
}

func (g *Game) terminate() {
	length := g.snake.Len()
	g.stateMgr.EndRound(length)
	g.status = Terminated
	glog.Infof("session %s ended after %d ticks: %d rounds, best %d, average %.1f, median %.1f, average round %s",
		g.UUID, g.ticks, g.stateMgr.Rounds(), g.stateMgr.Best(),
		g.stateMgr.AverageLength(), g.stateMgr.MedianLength(), g.stateMgr.AverageDuration())
}
