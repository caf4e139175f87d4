package placement

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// Rotation tables. All angles are octant values in degrees. The same
// absolute-location tables serve both grid modes wherever a table is
// indexed by location alone.

// proRotation keys on (rotation sense, resolved location).
var proRotation = map[senseLocKey]int{
	{pictograph.Clockwise, grid.North}:     315,
	{pictograph.Clockwise, grid.East}:      45,
	{pictograph.Clockwise, grid.South}:     135,
	{pictograph.Clockwise, grid.West}:      225,
	{pictograph.Clockwise, grid.Northeast}: 0,
	{pictograph.Clockwise, grid.Southeast}: 90,
	{pictograph.Clockwise, grid.Southwest}: 180,
	{pictograph.Clockwise, grid.Northwest}: 270,

	{pictograph.CounterClockwise, grid.North}:     45,
	{pictograph.CounterClockwise, grid.East}:      135,
	{pictograph.CounterClockwise, grid.South}:     225,
	{pictograph.CounterClockwise, grid.West}:      315,
	{pictograph.CounterClockwise, grid.Northeast}: 90,
	{pictograph.CounterClockwise, grid.Southeast}: 180,
	{pictograph.CounterClockwise, grid.Southwest}: 270,
	{pictograph.CounterClockwise, grid.Northwest}: 0,
}

// antiRegularRotation is the default anti pattern: the pro table with
// the senses exchanged.
var antiRegularRotation = map[senseLocKey]int{
	{pictograph.Clockwise, grid.North}:     45,
	{pictograph.Clockwise, grid.East}:      135,
	{pictograph.Clockwise, grid.South}:     225,
	{pictograph.Clockwise, grid.West}:      315,
	{pictograph.Clockwise, grid.Northeast}: 90,
	{pictograph.Clockwise, grid.Southeast}: 180,
	{pictograph.Clockwise, grid.Southwest}: 270,
	{pictograph.Clockwise, grid.Northwest}: 0,

	{pictograph.CounterClockwise, grid.North}:     315,
	{pictograph.CounterClockwise, grid.East}:      45,
	{pictograph.CounterClockwise, grid.South}:     135,
	{pictograph.CounterClockwise, grid.West}:      225,
	{pictograph.CounterClockwise, grid.Northeast}: 0,
	{pictograph.CounterClockwise, grid.Southeast}: 90,
	{pictograph.CounterClockwise, grid.Southwest}: 180,
	{pictograph.CounterClockwise, grid.Northwest}: 270,
}

// antiAlternateRotation matches the regular pattern on cardinals but
// swings the diagonals a further quarter turn against the spin.
var antiAlternateRotation = map[senseLocKey]int{
	{pictograph.Clockwise, grid.North}:     45,
	{pictograph.Clockwise, grid.East}:      135,
	{pictograph.Clockwise, grid.South}:     225,
	{pictograph.Clockwise, grid.West}:      315,
	{pictograph.Clockwise, grid.Northeast}: 180,
	{pictograph.Clockwise, grid.Southeast}: 270,
	{pictograph.Clockwise, grid.Southwest}: 0,
	{pictograph.Clockwise, grid.Northwest}: 90,

	{pictograph.CounterClockwise, grid.North}:     315,
	{pictograph.CounterClockwise, grid.East}:      45,
	{pictograph.CounterClockwise, grid.South}:     135,
	{pictograph.CounterClockwise, grid.West}:      225,
	{pictograph.CounterClockwise, grid.Northeast}: 90,
	{pictograph.CounterClockwise, grid.Southeast}: 180,
	{pictograph.CounterClockwise, grid.Southwest}: 270,
	{pictograph.CounterClockwise, grid.Northwest}: 0,
}

// floatRotation keys on the hand path direction, not the prop's
// nominal sense. A NoRotation hand path (non-adjacent endpoints)
// misses and resolves to 0.
var floatRotation = map[senseLocKey]int{
	{pictograph.Clockwise, grid.North}:     315,
	{pictograph.Clockwise, grid.East}:      45,
	{pictograph.Clockwise, grid.South}:     135,
	{pictograph.Clockwise, grid.West}:      225,
	{pictograph.Clockwise, grid.Northeast}: 0,
	{pictograph.Clockwise, grid.Southeast}: 90,
	{pictograph.Clockwise, grid.Southwest}: 180,
	{pictograph.Clockwise, grid.Northwest}: 270,

	{pictograph.CounterClockwise, grid.North}:     45,
	{pictograph.CounterClockwise, grid.East}:      135,
	{pictograph.CounterClockwise, grid.South}:     225,
	{pictograph.CounterClockwise, grid.West}:      315,
	{pictograph.CounterClockwise, grid.Northeast}: 90,
	{pictograph.CounterClockwise, grid.Southeast}: 180,
	{pictograph.CounterClockwise, grid.Southwest}: 270,
	{pictograph.CounterClockwise, grid.Northwest}: 0,
}

// dashNoRotation keys on the (start, end) travel pair of a
// non-turning dash: the glyph points along the travel direction.
var dashNoRotation = map[orderedPair]int{
	{grid.North, grid.South}: 180,
	{grid.East, grid.West}:   270,
	{grid.South, grid.North}: 0,
	{grid.West, grid.East}:   90,

	{grid.Northeast, grid.Southwest}: 225,
	{grid.Southeast, grid.Northwest}: 315,
	{grid.Southwest, grid.Northeast}: 45,
	{grid.Northwest, grid.Southeast}: 135,
}

// dashRadialRotation applies to turning dashes whose end orientation
// is radial (in/out).
var dashRadialRotation = map[senseLocKey]int{
	{pictograph.Clockwise, grid.North}:     270,
	{pictograph.Clockwise, grid.Northeast}: 315,
	{pictograph.Clockwise, grid.East}:      0,
	{pictograph.Clockwise, grid.Southeast}: 45,
	{pictograph.Clockwise, grid.South}:     90,
	{pictograph.Clockwise, grid.Southwest}: 135,
	{pictograph.Clockwise, grid.West}:      180,
	{pictograph.Clockwise, grid.Northwest}: 225,

	{pictograph.CounterClockwise, grid.North}:     90,
	{pictograph.CounterClockwise, grid.Northeast}: 135,
	{pictograph.CounterClockwise, grid.East}:      180,
	{pictograph.CounterClockwise, grid.Southeast}: 225,
	{pictograph.CounterClockwise, grid.South}:     270,
	{pictograph.CounterClockwise, grid.Southwest}: 315,
	{pictograph.CounterClockwise, grid.West}:      0,
	{pictograph.CounterClockwise, grid.Northwest}: 45,
}

// dashNonRadialRotation applies to turning dashes whose end
// orientation is clock/counter.
var dashNonRadialRotation = map[senseLocKey]int{
	{pictograph.Clockwise, grid.North}:     180,
	{pictograph.Clockwise, grid.Northeast}: 225,
	{pictograph.Clockwise, grid.East}:      270,
	{pictograph.Clockwise, grid.Southeast}: 315,
	{pictograph.Clockwise, grid.South}:     0,
	{pictograph.Clockwise, grid.Southwest}: 45,
	{pictograph.Clockwise, grid.West}:      90,
	{pictograph.Clockwise, grid.Northwest}: 135,

	{pictograph.CounterClockwise, grid.North}:     0,
	{pictograph.CounterClockwise, grid.Northeast}: 45,
	{pictograph.CounterClockwise, grid.East}:      90,
	{pictograph.CounterClockwise, grid.Southeast}: 135,
	{pictograph.CounterClockwise, grid.South}:     180,
	{pictograph.CounterClockwise, grid.Southwest}: 225,
	{pictograph.CounterClockwise, grid.West}:      270,
	{pictograph.CounterClockwise, grid.Northwest}: 315,
}

// Flat per-location overrides for turning dashes whose orientation
// context demands them.
var dashOverrideCW = map[grid.Location]int{
	grid.North:     90,
	grid.Northeast: 135,
	grid.East:      180,
	grid.Southeast: 225,
	grid.South:     270,
	grid.Southwest: 315,
	grid.West:      0,
	grid.Northwest: 45,
}

var dashOverrideCCW = map[grid.Location]int{
	grid.North:     270,
	grid.Northeast: 315,
	grid.East:      0,
	grid.Southeast: 45,
	grid.South:     90,
	grid.Southwest: 135,
	grid.West:      180,
	grid.Northwest: 225,
}

// staticRadialRotation applies to turning statics with in/out
// orientation.
var staticRadialRotation = map[senseLocKey]int{
	{pictograph.Clockwise, grid.North}:     0,
	{pictograph.Clockwise, grid.Northeast}: 45,
	{pictograph.Clockwise, grid.East}:      90,
	{pictograph.Clockwise, grid.Southeast}: 135,
	{pictograph.Clockwise, grid.South}:     180,
	{pictograph.Clockwise, grid.Southwest}: 225,
	{pictograph.Clockwise, grid.West}:      270,
	{pictograph.Clockwise, grid.Northwest}: 315,

	{pictograph.CounterClockwise, grid.North}:     0,
	{pictograph.CounterClockwise, grid.Northeast}: 315,
	{pictograph.CounterClockwise, grid.East}:      270,
	{pictograph.CounterClockwise, grid.Southeast}: 225,
	{pictograph.CounterClockwise, grid.South}:     180,
	{pictograph.CounterClockwise, grid.Southwest}: 135,
	{pictograph.CounterClockwise, grid.West}:      90,
	{pictograph.CounterClockwise, grid.Northwest}: 45,
}

// staticNonRadialRotation applies to turning statics with
// clock/counter orientation.
var staticNonRadialRotation = map[senseLocKey]int{
	{pictograph.Clockwise, grid.North}:     180,
	{pictograph.Clockwise, grid.Northeast}: 225,
	{pictograph.Clockwise, grid.East}:      270,
	{pictograph.Clockwise, grid.Southeast}: 315,
	{pictograph.Clockwise, grid.South}:     0,
	{pictograph.Clockwise, grid.Southwest}: 45,
	{pictograph.Clockwise, grid.West}:      90,
	{pictograph.Clockwise, grid.Northwest}: 135,

	{pictograph.CounterClockwise, grid.North}:     180,
	{pictograph.CounterClockwise, grid.Northeast}: 135,
	{pictograph.CounterClockwise, grid.East}:      90,
	{pictograph.CounterClockwise, grid.Southeast}: 45,
	{pictograph.CounterClockwise, grid.South}:     0,
	{pictograph.CounterClockwise, grid.Southwest}: 315,
	{pictograph.CounterClockwise, grid.West}:      270,
	{pictograph.CounterClockwise, grid.Northwest}: 225,
}

// staticStillRadial overrides the static tables when the prop is not
// rotating and started with a radial orientation.
var staticStillRadial = map[grid.Location]stillAngle{
	grid.North: {fixed: 180},
	grid.East:  {fixed: 270},
	grid.South: {fixed: 0},
	grid.West:  {fixed: 90},

	grid.Northeast: {bySense: map[pictograph.RotationSense]int{pictograph.Clockwise: 225, pictograph.CounterClockwise: 315}},
	grid.Southeast: {bySense: map[pictograph.RotationSense]int{pictograph.Clockwise: 315, pictograph.CounterClockwise: 45}},
	grid.Southwest: {bySense: map[pictograph.RotationSense]int{pictograph.Clockwise: 45, pictograph.CounterClockwise: 135}},
	grid.Northwest: {bySense: map[pictograph.RotationSense]int{pictograph.Clockwise: 135, pictograph.CounterClockwise: 225}},
}

// staticStillNonRadial is the counterpart for clock/counter origins.
var staticStillNonRadial = map[grid.Location]stillAngle{
	grid.North: {fixed: 0},
	grid.East:  {fixed: 90},
	grid.South: {fixed: 180},
	grid.West:  {fixed: 270},

	grid.Northeast: {bySense: map[pictograph.RotationSense]int{pictograph.Clockwise: 45, pictograph.CounterClockwise: 135}},
	grid.Southeast: {bySense: map[pictograph.RotationSense]int{pictograph.Clockwise: 135, pictograph.CounterClockwise: 225}},
	grid.Southwest: {bySense: map[pictograph.RotationSense]int{pictograph.Clockwise: 225, pictograph.CounterClockwise: 315}},
	grid.Northwest: {bySense: map[pictograph.RotationSense]int{pictograph.Clockwise: 315, pictograph.CounterClockwise: 45}},
}

// dualDashAngles is the letter-specific table for Φ- and Ψ-: one flat
// angle per color and travel pair.
var dualDashAngles = map[colorPairKey]int{
	{pictograph.Primary, grid.North, grid.South}: 90,
	{pictograph.Primary, grid.South, grid.North}: 90,
	{pictograph.Primary, grid.East, grid.West}:   0,
	{pictograph.Primary, grid.West, grid.East}:   0,

	{pictograph.Secondary, grid.North, grid.South}: 270,
	{pictograph.Secondary, grid.South, grid.North}: 270,
	{pictograph.Secondary, grid.East, grid.West}:   180,
	{pictograph.Secondary, grid.West, grid.East}:   180,

	{pictograph.Primary, grid.Northeast, grid.Southwest}: 135,
	{pictograph.Primary, grid.Southwest, grid.Northeast}: 135,
	{pictograph.Primary, grid.Southeast, grid.Northwest}: 45,
	{pictograph.Primary, grid.Northwest, grid.Southeast}: 45,

	{pictograph.Secondary, grid.Northeast, grid.Southwest}: 315,
	{pictograph.Secondary, grid.Southwest, grid.Northeast}: 315,
	{pictograph.Secondary, grid.Southeast, grid.Northwest}: 225,
	{pictograph.Secondary, grid.Northwest, grid.Southeast}: 225,
}

// diamondDashAngles is the Λ-family dash table for the diamond grid.
var diamondDashAngles = map[orderedPair]int{
	{grid.North, grid.South}: 90,
	{grid.South, grid.North}: 270,
	{grid.East, grid.West}:   180,
	{grid.West, grid.East}:   0,

	{grid.Northeast, grid.Southwest}: 135,
	{grid.Southwest, grid.Northeast}: 315,
	{grid.Southeast, grid.Northwest}: 225,
	{grid.Northwest, grid.Southeast}: 45,
}

// boxDashAngles is the Λ-family dash table for the box grid.
var boxDashAngles = map[orderedPair]int{
	{grid.Northeast, grid.Southwest}: 180,
	{grid.Southwest, grid.Northeast}: 0,
	{grid.Southeast, grid.Northwest}: 270,
	{grid.Northwest, grid.Southeast}: 90,

	{grid.North, grid.South}: 135,
	{grid.South, grid.North}: 315,
	{grid.East, grid.West}:   225,
	{grid.West, grid.East}:   45,
}
