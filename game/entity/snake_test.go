package entity

import (
	"testing"

	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

var grid = types.Grid{Width: 640, Height: 480, CellSize: 20}

func newTestSnake(start types.Point) *Snake {
	return NewSnake(start, rand.New(rand.NewSource(1)))
}

func TestNewSnake(t *testing.T) {
	s := newTestSnake(grid.Center())
	if s.Len() != 1 || s.TargetLength() != 1 {
		t.Fatalf("new snake has len %d target %d, want 1/1", s.Len(), s.TargetLength())
	}
	if s.Direction != types.Right {
		t.Errorf("new snake heads %s, want right", s.Direction)
	}
	if _, ok := s.TrailingCell(); ok {
		t.Error("new snake reports a trailing cell")
	}
}

func TestMoveKeepsTargetLength(t *testing.T) {
	s := newTestSnake(grid.Center())
	for i := 0; i < 3; i++ {
		s.Move(grid)
		if s.Len() != 1 {
			t.Fatalf("after move %d len = %d, want 1", i+1, s.Len())
		}
		if _, ok := s.TrailingCell(); ok {
			t.Fatalf("move %d: one-cell snake reported a trailing cell", i+1)
		}
	}
	if want := (types.Point{X: 380, Y: 240}); s.Head() != want {
		t.Errorf("head = %v, want %v", s.Head(), want)
	}
}

func TestGrowKeepsTail(t *testing.T) {
	s := newTestSnake(grid.Center())
	s.Grow()
	s.Grow()
	s.Move(grid)
	s.Move(grid)
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	if _, ok := s.TrailingCell(); ok {
		t.Fatal("growing move reported a trailing cell")
	}

	s.Move(grid)
	tail, ok := s.TrailingCell()
	if !ok {
		t.Fatal("non-growing move did not report a trailing cell")
	}
	if want := grid.Center(); tail != want {
		t.Errorf("trailing cell = %v, want %v", tail, want)
	}
	want := []types.Point{{X: 380, Y: 240}, {X: 360, Y: 240}, {X: 340, Y: 240}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("Body[%d] = %v, want %v", i, s.Body[i], p)
		}
	}
}

func TestReversalRejected(t *testing.T) {
	for _, d := range types.Directions {
		s := newTestSnake(grid.Center())
		s.Direction = d
		if s.RequestDirection(d.Opposite()) {
			t.Errorf("%s: reversal to %s accepted", d, d.Opposite())
		}
		s.UpdateDirection()
		if s.Direction != d {
			t.Errorf("%s: direction changed to %s after rejected reversal", d, s.Direction)
		}
	}
}

func TestTurnAppliesOnSameTick(t *testing.T) {
	s := newTestSnake(grid.Center())
	if !s.RequestDirection(types.Up) {
		t.Fatal("turn up rejected")
	}
	s.UpdateDirection()
	s.Move(grid)
	if want := (types.Point{X: 320, Y: 220}); s.Head() != want {
		t.Errorf("head = %v, want %v", s.Head(), want)
	}
	if _, ok := s.PendingDirection(); ok {
		t.Error("pending direction not cleared")
	}
}

func TestMoveWrapsAround(t *testing.T) {
	s := newTestSnake(types.Point{X: 620, Y: 100})
	s.Move(grid)
	if want := (types.Point{X: 0, Y: 100}); s.Head() != want {
		t.Errorf("right from last column: head = %v, want %v", s.Head(), want)
	}

	s = newTestSnake(types.Point{X: 100, Y: 0})
	s.RequestDirection(types.Up)
	s.UpdateDirection()
	s.Move(grid)
	if want := (types.Point{X: 100, Y: 460}); s.Head() != want {
		t.Errorf("up from row 0: head = %v, want %v", s.Head(), want)
	}
}

func TestHitsItself(t *testing.T) {
	s := newTestSnake(grid.Center())
	for i := 0; i < 4; i++ {
		s.Grow()
	}
	for i := 0; i < 4; i++ {
		s.Move(grid)
	}
	for _, d := range []types.Direction{types.Down, types.Left} {
		s.RequestDirection(d)
		s.UpdateDirection()
		s.Move(grid)
		if s.HitsItself() {
			t.Fatalf("unexpected collision after turning %s", d)
		}
	}
	s.RequestDirection(types.Up)
	s.UpdateDirection()
	s.Move(grid)
	if !s.HitsItself() {
		t.Fatalf("expected collision, body %v", s.Body)
	}
}

func TestReset(t *testing.T) {
	start := grid.Center()
	s := newTestSnake(start)
	s.Grow()
	s.Grow()
	s.Move(grid)
	s.Move(grid)
	s.RequestDirection(types.Down)

	s.Reset()
	if s.Len() != 1 || s.TargetLength() != 1 || s.Head() != start {
		t.Errorf("after reset: body %v target %d", s.Body, s.TargetLength())
	}
	if _, ok := s.PendingDirection(); ok {
		t.Error("reset kept the pending direction")
	}
	if _, ok := s.TrailingCell(); ok {
		t.Error("reset kept the trailing cell")
	}
}

func TestResetRandomizesDirection(t *testing.T) {
	s := newTestSnake(grid.Center())
	seen := map[types.Direction]bool{}
	for i := 0; i < 200; i++ {
		s.Reset()
		seen[s.Direction] = true
	}
	if len(seen) != 4 {
		t.Errorf("reset produced %d distinct directions, want 4", len(seen))
	}
}
