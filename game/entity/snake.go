package entity

import (
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// Snake is an ordered run of cells, head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction

	pending      *types.Direction
	targetLength int
	trailing     *types.Point
	start        types.Point
	color        types.Color
	rng          *rand.Rand
}

// NewSnake creates a one-cell snake at startPos heading right.
func NewSnake(startPos types.Point, rng *rand.Rand) *Snake {
	return &Snake{
		Body:         []types.Point{startPos},
		Direction:    types.Right,
		targetLength: 1,
		start:        startPos,
		color:        types.SnakeColor,
		rng:          rng,
	}
}

// RequestDirection queues dir for the next move. A request that would
// reverse the snake onto itself is dropped and false is returned.
func (s *Snake) RequestDirection(dir types.Direction) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.pending = &dir
	return true
}

// PendingDirection returns the queued direction, if any.
func (s *Snake) PendingDirection() (types.Direction, bool) {
	if s.pending == nil {
		return 0, false
	}
	return *s.pending, true
}

// UpdateDirection commits the pending direction. It must run right before
// Move so a turn takes effect on the tick it was requested.
func (s *Snake) UpdateDirection() {
	if s.pending == nil {
		return
	}
	if *s.pending != s.Direction.Opposite() {
		s.Direction = *s.pending
	}
	s.pending = nil
}

// Move advances the head one cell, wrapping at the board edges, and drops
// the tail unless the snake is still growing. Self collision is left to
// the caller.
func (s *Snake) Move(grid types.Grid) {
	step := s.Direction.Vector().Scale(grid.CellSize)
	newHead := grid.Wrap(s.Head().Add(step))

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	s.trailing = nil
	if len(s.Body) > s.targetLength {
		tail := s.Body[len(s.Body)-1]
		s.Body = s.Body[:len(s.Body)-1]
		// A one-cell snake drops its previous head; there is no tail
		// segment to erase, the renderer repaints instead.
		if s.targetLength > 1 {
			s.trailing = &tail
		}
	}
}

// Grow lengthens the snake by one cell, applied over the next move.
func (s *Snake) Grow() {
	s.targetLength++
}

// Reset puts the snake back on its start cell with length one and a random
// heading.
func (s *Snake) Reset() {
	s.Body = []types.Point{s.start}
	s.targetLength = 1
	s.Direction = types.RandomDirection(s.rng)
	s.pending = nil
	s.trailing = nil
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) TargetLength() int {
	return s.targetLength
}

// TrailingCell returns the tail cell vacated by the last move. It is absent
// when the snake grew on that move or is a single cell long.
func (s *Snake) TrailingCell() (types.Point, bool) {
	if s.trailing == nil {
		return types.Point{}, false
	}
	return *s.trailing, true
}

// HitsItself reports whether the head shares a cell with the rest of the body.
func (s *Snake) HitsItself() bool {
	head := s.Head()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Contains reports whether any body cell equals p.
func (s *Snake) Contains(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

func (s *Snake) Cells() []types.Point {
	return s.Body
}

func (s *Snake) Color() types.Color {
	return s.color
}
