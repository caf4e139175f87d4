package placement

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// Key types for the location tables. All are ordered: unlike the
// between-point table in pkg/grid, dash tables care which end is the
// start.
type (
	orderedPair struct {
		a, b grid.Location
	}

	senseLocKey struct {
		sense pictograph.RotationSense
		loc   grid.Location
	}

	colorPairKey struct {
		color      pictograph.Color
		start, end grid.Location
	}

	tripleKey struct {
		start, end, otherEnd grid.Location
	}
)

// dashZeroTurns places a plain zero-turn dash: the glyph sits a
// quarter turn clockwise from the travel axis, seen from the start.
var dashZeroTurns = map[orderedPair]grid.Location{
	{grid.North, grid.South}: grid.East,
	{grid.East, grid.West}:   grid.South,
	{grid.South, grid.North}: grid.West,
	{grid.West, grid.East}:   grid.North,

	{grid.Northeast, grid.Southwest}: grid.Southeast,
	{grid.Southeast, grid.Northwest}: grid.Southwest,
	{grid.Southwest, grid.Northeast}: grid.Northwest,
	{grid.Northwest, grid.Southeast}: grid.Northeast,
}

// dashRotationLoc places a turning dash: one step around the grid in
// the direction of spin, starting from the dash's start point.
var dashRotationLoc = map[senseLocKey]grid.Location{
	{pictograph.Clockwise, grid.North}:     grid.East,
	{pictograph.Clockwise, grid.East}:      grid.South,
	{pictograph.Clockwise, grid.South}:     grid.West,
	{pictograph.Clockwise, grid.West}:      grid.North,
	{pictograph.Clockwise, grid.Northeast}: grid.Southeast,
	{pictograph.Clockwise, grid.Southeast}: grid.Southwest,
	{pictograph.Clockwise, grid.Southwest}: grid.Northwest,
	{pictograph.Clockwise, grid.Northwest}: grid.Northeast,

	{pictograph.CounterClockwise, grid.North}:     grid.West,
	{pictograph.CounterClockwise, grid.West}:      grid.South,
	{pictograph.CounterClockwise, grid.South}:     grid.East,
	{pictograph.CounterClockwise, grid.East}:      grid.North,
	{pictograph.CounterClockwise, grid.Northeast}: grid.Northwest,
	{pictograph.CounterClockwise, grid.Northwest}: grid.Southwest,
	{pictograph.CounterClockwise, grid.Southwest}: grid.Southeast,
	{pictograph.CounterClockwise, grid.Southeast}: grid.Northeast,
}

// type3DiamondDash keys on (dash start, companion shift location) in
// diamond mode. The dash lands on the cardinal perpendicular to its
// own axis on the side away from the shift.
var type3DiamondDash = map[orderedPair]grid.Location{
	{grid.North, grid.Northeast}: grid.West,
	{grid.North, grid.Southeast}: grid.West,
	{grid.North, grid.Southwest}: grid.East,
	{grid.North, grid.Northwest}: grid.East,

	{grid.East, grid.Northeast}: grid.South,
	{grid.East, grid.Southeast}: grid.North,
	{grid.East, grid.Southwest}: grid.North,
	{grid.East, grid.Northwest}: grid.South,

	{grid.South, grid.Northeast}: grid.West,
	{grid.South, grid.Southeast}: grid.West,
	{grid.South, grid.Southwest}: grid.East,
	{grid.South, grid.Northwest}: grid.East,

	{grid.West, grid.Northeast}: grid.South,
	{grid.West, grid.Southeast}: grid.North,
	{grid.West, grid.Southwest}: grid.North,
	{grid.West, grid.Northwest}: grid.South,
}

// type3BoxDash is the box-mode counterpart: dash starts are
// intercardinal and shift locations cardinal.
var type3BoxDash = map[orderedPair]grid.Location{
	{grid.Northeast, grid.North}: grid.Southeast,
	{grid.Northeast, grid.East}:  grid.Northwest,
	{grid.Northeast, grid.South}: grid.Northwest,
	{grid.Northeast, grid.West}:  grid.Southeast,

	{grid.Southeast, grid.North}: grid.Southwest,
	{grid.Southeast, grid.East}:  grid.Southwest,
	{grid.Southeast, grid.South}: grid.Northeast,
	{grid.Southeast, grid.West}:  grid.Northeast,

	{grid.Southwest, grid.North}: grid.Southeast,
	{grid.Southwest, grid.East}:  grid.Northwest,
	{grid.Southwest, grid.South}: grid.Northwest,
	{grid.Southwest, grid.West}:  grid.Southeast,

	{grid.Northwest, grid.North}: grid.Southwest,
	{grid.Northwest, grid.East}:  grid.Southwest,
	{grid.Northwest, grid.South}: grid.Northeast,
	{grid.Northwest, grid.West}:  grid.Northeast,
}

// dualDashLocations places the two zero-turn dashes of Φ- and Ψ- on
// opposite sides of their shared travel axis, split by color.
var dualDashLocations = map[colorPairKey]grid.Location{
	{pictograph.Primary, grid.North, grid.South}: grid.East,
	{pictograph.Primary, grid.South, grid.North}: grid.East,
	{pictograph.Primary, grid.East, grid.West}:   grid.North,
	{pictograph.Primary, grid.West, grid.East}:   grid.North,

	{pictograph.Secondary, grid.North, grid.South}: grid.West,
	{pictograph.Secondary, grid.South, grid.North}: grid.West,
	{pictograph.Secondary, grid.East, grid.West}:   grid.South,
	{pictograph.Secondary, grid.West, grid.East}:   grid.South,

	{pictograph.Primary, grid.Northeast, grid.Southwest}: grid.Southeast,
	{pictograph.Primary, grid.Southwest, grid.Northeast}: grid.Southeast,
	{pictograph.Primary, grid.Southeast, grid.Northwest}: grid.Northeast,
	{pictograph.Primary, grid.Northwest, grid.Southeast}: grid.Northeast,

	{pictograph.Secondary, grid.Northeast, grid.Southwest}: grid.Northwest,
	{pictograph.Secondary, grid.Southwest, grid.Northeast}: grid.Northwest,
	{pictograph.Secondary, grid.Southeast, grid.Northwest}: grid.Southwest,
	{pictograph.Secondary, grid.Northwest, grid.Southeast}: grid.Southwest,
}

// lambdaZeroTurns places a zero-turn dash of Λ or Λ- on the side away
// from the paired motion's end location.
var lambdaZeroTurns = map[tripleKey]grid.Location{
	{grid.North, grid.South, grid.West}: grid.East,
	{grid.North, grid.South, grid.East}: grid.West,
	{grid.South, grid.North, grid.West}: grid.East,
	{grid.South, grid.North, grid.East}: grid.West,
	{grid.East, grid.West, grid.North}:  grid.South,
	{grid.East, grid.West, grid.South}:  grid.North,
	{grid.West, grid.East, grid.North}:  grid.South,
	{grid.West, grid.East, grid.South}:  grid.North,

	{grid.Northeast, grid.Southwest, grid.Northwest}: grid.Southeast,
	{grid.Northeast, grid.Southwest, grid.Southeast}: grid.Northwest,
	{grid.Southwest, grid.Northeast, grid.Northwest}: grid.Southeast,
	{grid.Southwest, grid.Northeast, grid.Southeast}: grid.Northwest,
	{grid.Southeast, grid.Northwest, grid.Northeast}: grid.Southwest,
	{grid.Southeast, grid.Northwest, grid.Southwest}: grid.Northeast,
	{grid.Northwest, grid.Southeast, grid.Northeast}: grid.Southwest,
	{grid.Northwest, grid.Southeast, grid.Southwest}: grid.Northeast,
}
