package placement

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// SeparationDistance is the fixed pixel distance each prop moves away
// from a shared end location.
const SeparationDistance = 25.0

// BetaResult carries the per-color separation offsets for a beta end
// state, plus the directions they were derived from so callers can
// log an undeterminable side.
type BetaResult struct {
	Primary, Secondary       grid.Point
	PrimaryDir, SecondaryDir grid.Direction

	// Adjusted reports that both motions derived the same direction
	// and the secondary was flipped to its opposite. Two determined
	// directions must never coincide: co-located props have to part.
	Adjusted bool
}

// BetaSeparation computes symmetric offsets for the two props of a
// pictograph whose motions end at the same location, so they do not
// visually collide. A pictograph that does not end beta yields zero
// offsets. A color whose direction cannot be determined keeps a zero
// offset; that is a degraded render, not an error.
//
// When both directions are determinable but identical (two props with
// the same spin arriving at one location), the secondary flips to the
// opposite side. The primary keeps its derived direction so the result
// stays deterministic, and Adjusted is set for caller logging.
func BetaSeparation(p *pictograph.Pictograph) BetaResult {
	if !p.EndsBeta() {
		return BetaResult{}
	}

	primary := SeparationDirection(&p.Primary)
	secondary := SeparationDirection(&p.Secondary)

	adjusted := false
	if primary != grid.DirNone && primary == secondary {
		secondary = secondary.Opposite()
		adjusted = true
	}

	return BetaResult{
		Primary:      primary.Offset(SeparationDistance),
		Secondary:    secondary.Offset(SeparationDistance),
		PrimaryDir:   primary,
		SecondaryDir: secondary,
		Adjusted:     adjusted,
	}
}

// SeparationDirection derives one of the 8 canonical unit directions
// from a motion's shape. Spinning props move along the radial axis of
// their end location: clockwise outward, counter-clockwise inward.
// Props with no spin follow their end orientation instead; a
// non-radial orientation with no spin is undeterminable and yields
// DirNone.
func SeparationDirection(m *pictograph.Motion) grid.Direction {
	outward := grid.Outward(m.End)

	switch m.Sense {
	case pictograph.Clockwise:
		return outward
	case pictograph.CounterClockwise:
		return outward.Opposite()
	}

	switch m.EndOri {
	case pictograph.Out:
		return outward
	case pictograph.In:
		return outward.Opposite()
	}
	return grid.DirNone
}
