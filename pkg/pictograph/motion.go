package pictograph

import (
	"fmt"

	"github.com/pictoplace/pictoplace/pkg/grid"
)

// Category classifies a motion and determines which placement table
// family applies to it.
type Category string

const (
	Pro    Category = "pro"
	Anti   Category = "anti"
	Float  Category = "float"
	Dash   Category = "dash"
	Static Category = "static"
)

// ParseCategory converts a string to a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Pro, Anti, Float, Dash, Static:
		return Category(s), nil
	}
	return "", fmt.Errorf("invalid motion category: %q", s)
}

// IsShift reports whether the category moves the prop between two grid
// points (pro, anti, or float).
func (c Category) IsShift() bool {
	return c == Pro || c == Anti || c == Float
}

// RotationSense is the prop's nominal spin direction.
type RotationSense string

const (
	Clockwise        RotationSense = "cw"
	CounterClockwise RotationSense = "ccw"
	NoRotation       RotationSense = "none"
)

// ParseRotationSense converts a string to a RotationSense.
func ParseRotationSense(s string) (RotationSense, error) {
	switch RotationSense(s) {
	case Clockwise, CounterClockwise, NoRotation:
		return RotationSense(s), nil
	}
	return "", fmt.Errorf("invalid rotation sense: %q", s)
}

// Orientation describes which way a prop's working end faces. It only
// influences dash and static rotation and mirror math.
type Orientation string

const (
	In      Orientation = "in"
	Out     Orientation = "out"
	Clock   Orientation = "clock"
	Counter Orientation = "counter"
)

// ParseOrientation converts a string to an Orientation.
// The empty string is allowed and stays empty: orientation only matters
// for dash and static motions.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case In, Out, Clock, Counter, "":
		return Orientation(s), nil
	}
	return "", fmt.Errorf("invalid orientation: %q", s)
}

// IsRadial reports whether the orientation points along the radial
// axis of the grid (in or out).
func (o Orientation) IsRadial() bool {
	return o == In || o == Out
}

// Color identifies which of the two props of a pictograph a motion
// belongs to.
type Color string

const (
	Primary   Color = "primary"
	Secondary Color = "secondary"
)

// Other returns the opposite color.
func (c Color) Other() Color {
	if c == Primary {
		return Secondary
	}
	return Primary
}

// Motion is the abstract descriptor of one prop's movement within a
// pictograph. It is immutable: constructed once per pictograph per
// color and passed by value or pointer-to-const convention thereafter.
type Motion struct {
	Category Category      `json:"category"`
	Start    grid.Location `json:"start"`
	End      grid.Location `json:"end"`
	Sense    RotationSense `json:"sense"`
	StartOri Orientation   `json:"start_ori"`
	EndOri   Orientation   `json:"end_ori"`
	Turns    float64       `json:"turns"`
	Color    Color         `json:"color"`
}

// ZeroTurns reports whether the motion has exactly zero turns.
func (m *Motion) ZeroTurns() bool { return m.Turns == 0 }

// handPathCW lists consecutive (start, end) hops of the clockwise hand
// path: one cycle over the cardinals and one over the intercardinals.
var handPathCW = map[grid.Location]grid.Location{
	grid.North: grid.East,
	grid.East:  grid.South,
	grid.South: grid.West,
	grid.West:  grid.North,

	grid.Northeast: grid.Southeast,
	grid.Southeast: grid.Southwest,
	grid.Southwest: grid.Northwest,
	grid.Northwest: grid.Northeast,
}

// HandPath returns the direction the performer's hand travels between
// two adjacent grid points, independent of the prop's own rotation
// sense. Float motions key their rotation tables off this value.
// Returns NoRotation when the two points are not adjacent on a cycle.
func HandPath(start, end grid.Location) RotationSense {
	if handPathCW[start] == end {
		return Clockwise
	}
	if handPathCW[end] == start {
		return CounterClockwise
	}
	return NoRotation
}

// HandPath returns the hand path direction of the motion itself.
func (m *Motion) HandPath() RotationSense {
	return HandPath(m.Start, m.End)
}
