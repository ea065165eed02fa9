package types

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Point is a grid-aligned cell position in pixel units.
type Point struct {
	X, Y int
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both components multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Grid represents the board: pixel dimensions and the size of one cell.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid builds the grid described by cfg.
func NewGrid(cfg Config) Grid {
	return Grid{
		Width:    cfg.Width,
		Height:   cfg.Height,
		CellSize: cfg.CellSize,
	}
}

// Cols returns the number of cells per row.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells per column.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// Center returns the grid-aligned cell closest to the middle of the board.
func (g Grid) Center() Point {
	return Point{
		X: g.Cols() / 2 * g.CellSize,
		Y: g.Rows() / 2 * g.CellSize,
	}
}

// Contains reports whether p lies inside the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps an arbitrary pixel coordinate back into [0, Width) x [0, Height).
// Each axis is reduced independently and the result is never negative.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: mod(p.X, g.Width),
		Y: mod(p.Y, g.Height),
	}
}

// RandomCell returns a uniformly distributed grid-aligned cell.
func (g Grid) RandomCell(rng *rand.Rand) Point {
	return Point{
		X: rng.Intn(g.Cols()) * g.CellSize,
		Y: rng.Intn(g.Rows()) * g.CellSize,
	}
}

// Index returns the column and row of p.
func (g Grid) Index(p Point) (col, row int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Config holds everything needed to start a session.
type Config struct {
	Width          int    // Board width in pixels
	Height         int    // Board height in pixels
	CellSize       int    // Edge of one cell in pixels
	TicksPerSecond int    // Loop rate
	Seed           uint64 // RNG seed, 0 means seed from the wall clock
}

// DefaultConfig returns the classic 640x480 board with 20px cells.
func DefaultConfig() Config {
	return Config{
		Width:          640,
		Height:         480,
		CellSize:       20,
		TicksPerSecond: 20,
		Seed:           0,
	}
}

// Validate checks that the board is made of whole cells.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("board must be non-empty, got %dx%d", c.Width, c.Height)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return errors.Errorf("board %dx%d is not a multiple of cell size %d", c.Width, c.Height, c.CellSize)
	}
	if c.TicksPerSecond < 1 {
		return errors.Errorf("ticks per second must be at least 1, got %d", c.TicksPerSecond)
	}
	return nil
}

// NewRand returns the session random source.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
