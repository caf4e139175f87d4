package grid

// Direction is one of the 8 canonical unit directions used for
// separation offsets, or DirNone when no direction is determinable.
type Direction string

const (
	DirNone      Direction = ""
	DirUp        Direction = "up"
	DirDown      Direction = "down"
	DirLeft      Direction = "left"
	DirRight     Direction = "right"
	DirUpLeft    Direction = "upleft"
	DirUpRight   Direction = "upright"
	DirDownLeft  Direction = "downleft"
	DirDownRight Direction = "downright"
)

// unitOffsets maps each direction to its unit offset in screen
// coordinates (y grows downward, so up is negative y).
var unitOffsets = map[Direction]Point{
	DirUp:        {X: 0, Y: -1},
	DirDown:      {X: 0, Y: 1},
	DirLeft:      {X: -1, Y: 0},
	DirRight:     {X: 1, Y: 0},
	DirUpLeft:    {X: -1, Y: -1},
	DirUpRight:   {X: 1, Y: -1},
	DirDownLeft:  {X: -1, Y: 1},
	DirDownRight: {X: 1, Y: 1},
}

// Offset returns the direction's unit offset scaled by dist.
// DirNone yields the zero point.
func (d Direction) Offset(dist float64) Point {
	return unitOffsets[d].Scale(dist)
}

// Opposite returns the reversed direction. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUpLeft:
		return DirDownRight
	case DirUpRight:
		return DirDownLeft
	case DirDownLeft:
		return DirUpRight
	case DirDownRight:
		return DirUpLeft
	}
	return DirNone
}

// outwardDirections maps each grid location to the direction pointing
// away from the grid center at that location.
var outwardDirections = map[Location]Direction{
	North:     DirUp,
	East:      DirRight,
	South:     DirDown,
	West:      DirLeft,
	Northeast: DirUpRight,
	Southeast: DirDownRight,
	Southwest: DirDownLeft,
	Northwest: DirUpLeft,
}

// Outward returns the direction pointing away from the grid center at
// location l, or DirNone for an unknown location.
func Outward(l Location) Direction {
	return outwardDirections[l]
}
