package types

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestGridDimensions(t *testing.T) {
	g := NewGrid(DefaultConfig())
	if g.Cols() != 32 || g.Rows() != 24 {
		t.Fatalf("grid is %dx%d, want 32x24", g.Cols(), g.Rows())
	}
	if g.Cells() != 768 {
		t.Errorf("Cells() = %d, want 768", g.Cells())
	}
	if c := g.Center(); c != (Point{X: 320, Y: 240}) {
		t.Errorf("Center() = %v, want (320,240)", c)
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 640, Height: 480, CellSize: 20}
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{X: 100, Y: 100}, Point{X: 100, Y: 100}},
		{"past right edge", Point{X: 640, Y: 40}, Point{X: 0, Y: 40}},
		{"past left edge", Point{X: -20, Y: 40}, Point{X: 620, Y: 40}},
		{"past top edge", Point{X: 40, Y: -20}, Point{X: 40, Y: 460}},
		{"past bottom edge", Point{X: 40, Y: 480}, Point{X: 40, Y: 0}},
		{"both axes", Point{X: -20, Y: 500}, Point{X: 620, Y: 20}},
		{"far away", Point{X: -1300, Y: 1000}, Point{X: 620, Y: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Wrap(tt.in); got != tt.want {
				t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRandomCellIsAligned(t *testing.T) {
	g := Grid{Width: 640, Height: 480, CellSize: 20}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := g.RandomCell(rng)
		if !g.Contains(p) {
			t.Fatalf("RandomCell() = %v, outside the board", p)
		}
		if p.X%20 != 0 || p.Y%20 != 0 {
			t.Fatalf("RandomCell() = %v, not grid aligned", p)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero cell", func(c *Config) { c.CellSize = 0 }, true},
		{"negative width", func(c *Config) { c.Width = -640 }, true},
		{"ragged width", func(c *Config) { c.Width = 650 }, true},
		{"ragged height", func(c *Config) { c.Height = 485 }, true},
		{"zero rate", func(c *Config) { c.TicksPerSecond = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", d, got, want)
		}
		if sum := d.Vector().Add(want.Vector()); sum != (Point{}) {
			t.Errorf("%s and %s vectors do not cancel: %v", d, want, sum)
		}
	}
}
