package grid

import "fmt"

// Location is one of the 8 fixed compass points a prop or glyph can
// occupy on the grid.
type Location string

// The 8 grid locations. Cardinals are the primary points of the
// diamond grid, intercardinals the primary points of the box grid.
const (
	North     Location = "n"
	East      Location = "e"
	South     Location = "s"
	West      Location = "w"
	Northeast Location = "ne"
	Southeast Location = "se"
	Southwest Location = "sw"
	Northwest Location = "nw"
)

// Cardinals lists the 4 cardinal locations in clockwise order starting
// at north. The order is significant: quadrant selection indexes into it.
var Cardinals = []Location{North, East, South, West}

// Intercardinals lists the 4 intercardinal locations in clockwise order
// starting at northeast. The order is significant for quadrant selection.
var Intercardinals = []Location{Northeast, Southeast, Southwest, Northwest}

// ParseLocation converts a string to a Location.
func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case North, East, South, West, Northeast, Southeast, Southwest, Northwest:
		return Location(s), nil
	}
	return "", fmt.Errorf("invalid grid location: %q", s)
}

// IsCardinal reports whether l is one of n, e, s, w.
func (l Location) IsCardinal() bool {
	switch l {
	case North, East, South, West:
		return true
	}
	return false
}

// IsIntercardinal reports whether l is one of ne, se, sw, nw.
func (l Location) IsIntercardinal() bool {
	switch l {
	case Northeast, Southeast, Southwest, Northwest:
		return true
	}
	return false
}

// opposites maps each location to the point diametrically across the grid.
var opposites = map[Location]Location{
	North:     South,
	South:     North,
	East:      West,
	West:      East,
	Northeast: Southwest,
	Southwest: Northeast,
	Southeast: Northwest,
	Northwest: Southeast,
}

// Opposite returns the location diametrically opposite l.
// Unknown locations are returned unchanged.
func (l Location) Opposite() Location {
	if opp, ok := opposites[l]; ok {
		return opp
	}
	return l
}

// pairKey is an unordered pair of locations. Always built via normPair
// so that lookup order does not matter.
type pairKey struct {
	a, b Location
}

// normPair returns the canonical ordering of a location pair.
func normPair(a, b Location) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// betweenPoints maps an unordered pair of locations to the compass point
// lying between them: 4 cardinal pairs resolving to intercardinals, and
// 4 intercardinal pairs resolving to cardinals.
var betweenPoints = map[pairKey]Location{
	normPair(North, East): Northeast,
	normPair(East, South): Southeast,
	normPair(South, West): Southwest,
	normPair(West, North): Northwest,

	normPair(Northeast, Northwest): North,
	normPair(Northeast, Southeast): East,
	normPair(Southeast, Southwest): South,
	normPair(Southwest, Northwest): West,
}

// Between returns the compass point lying between a and b. The pair is
// unordered: Between(a, b) == Between(b, a). The second result is false
// when the pair has no between point (opposite or identical locations,
// or a mixed cardinal/intercardinal pair).
func Between(a, b Location) (Location, bool) {
	loc, ok := betweenPoints[normPair(a, b)]
	return loc, ok
}

// String implements fmt.Stringer.
func (l Location) String() string { return string(l) }
