package types

import "golang.org/x/exp/rand"

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Vector returns the unit step for d, with Y growing downwards.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// RandomDirection picks one of the four directions uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}
