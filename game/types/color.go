package types

// Color is an opaque RGB color; backends convert it to their own type.
type Color struct {
	R, G, B uint8
}

// Board palette.
var (
	BoardBackground = Color{R: 0, G: 0, B: 0}
	CellBorder      = Color{R: 93, G: 216, B: 228}
	AppleColor      = Color{R: 255, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
)
