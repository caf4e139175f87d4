package placement

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// SelectQuadrant maps a glyph's resolved location to one of 4 variant
// indices. On the diamond grid, static/dash glyphs index by cardinal
// order (n,e,s,w) and shift glyphs by intercardinal order
// (ne,se,sw,nw); on the box grid the two groupings swap roles. An
// unmatched location defensively returns 0.
func SelectQuadrant(loc grid.Location, cat pictograph.Category, mode grid.Mode) int {
	order := grid.Cardinals
	if usesIntercardinalOrder(cat, mode) {
		order = grid.Intercardinals
	}
	for i, l := range order {
		if l == loc {
			return i
		}
	}
	return 0
}

func usesIntercardinalOrder(cat pictograph.Category, mode grid.Mode) bool {
	if mode.Canonical() == grid.ModeBox {
		return !cat.IsShift()
	}
	return cat.IsShift()
}

// DirectionalVariants produces the 4 rotated/reflected variants of a
// base (x,y) adjustment, one per quadrant.
//
// When the motion has no rotation sense and is not static, a single
// universal pattern applies regardless of category. Float motions
// switch on the hand path direction instead of the prop's sense.
func DirectionalVariants(x, y float64, cat pictograph.Category, sense pictograph.RotationSense, mode grid.Mode, handPath pictograph.RotationSense) [4]grid.Point {
	if sense == pictograph.NoRotation && cat != pictograph.Static {
		return [4]grid.Point{{X: x, Y: -y}, {X: y, Y: x}, {X: -x, Y: y}, {X: -y, Y: -x}}
	}

	box := mode.Canonical() == grid.ModeBox

	switch cat {
	case pictograph.Pro:
		return proVariants(x, y, sense, box)
	case pictograph.Anti:
		// Anti spins against its sense: reuse the pro patterns with
		// the senses exchanged.
		return proVariants(x, y, oppositeSense(sense), box)
	case pictograph.Float:
		return floatVariants(x, y, handPath)
	case pictograph.Dash:
		return dashVariants(x, y, sense, box)
	case pictograph.Static:
		return staticVariants(x, y, sense, box)
	}
	return [4]grid.Point{{X: x, Y: y}, {X: x, Y: y}, {X: x, Y: y}, {X: x, Y: y}}
}

func oppositeSense(s pictograph.RotationSense) pictograph.RotationSense {
	switch s {
	case pictograph.Clockwise:
		return pictograph.CounterClockwise
	case pictograph.CounterClockwise:
		return pictograph.Clockwise
	}
	return s
}

func proVariants(x, y float64, sense pictograph.RotationSense, box bool) [4]grid.Point {
	if box {
		if sense == pictograph.Clockwise {
			return [4]grid.Point{{X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}, {X: x, Y: y}}
		}
		return [4]grid.Point{{X: x, Y: -y}, {X: y, Y: x}, {X: -x, Y: y}, {X: -y, Y: -x}}
	}
	if sense == pictograph.Clockwise {
		return [4]grid.Point{{X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}}
	}
	return [4]grid.Point{{X: -y, Y: -x}, {X: x, Y: -y}, {X: y, Y: x}, {X: -x, Y: y}}
}

func floatVariants(x, y float64, handPath pictograph.RotationSense) [4]grid.Point {
	switch handPath {
	case pictograph.Clockwise:
		return [4]grid.Point{{X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}}
	case pictograph.CounterClockwise:
		return [4]grid.Point{{X: -y, Y: -x}, {X: x, Y: -y}, {X: y, Y: x}, {X: -x, Y: y}}
	}
	// TODO: derive the hand path from start/end instead of collapsing
	// to four identical offsets when the caller supplies none.
	return [4]grid.Point{{X: x, Y: y}, {X: x, Y: y}, {X: x, Y: y}, {X: x, Y: y}}
}

func dashVariants(x, y float64, sense pictograph.RotationSense, box bool) [4]grid.Point {
	if box {
		if sense == pictograph.Clockwise {
			return [4]grid.Point{{X: y, Y: x}, {X: -x, Y: y}, {X: -y, Y: -x}, {X: x, Y: -y}}
		}
		return [4]grid.Point{{X: y, Y: -x}, {X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}}
	}
	if sense == pictograph.Clockwise {
		return [4]grid.Point{{X: x, Y: -y}, {X: y, Y: x}, {X: -x, Y: y}, {X: -y, Y: -x}}
	}
	return [4]grid.Point{{X: -x, Y: -y}, {X: y, Y: -x}, {X: x, Y: y}, {X: -y, Y: x}}
}

func staticVariants(x, y float64, sense pictograph.RotationSense, box bool) [4]grid.Point {
	if box {
		if sense == pictograph.CounterClockwise {
			return [4]grid.Point{{X: y, Y: x}, {X: -x, Y: y}, {X: -y, Y: -x}, {X: x, Y: -y}}
		}
		return [4]grid.Point{{X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}, {X: x, Y: y}}
	}
	if sense == pictograph.CounterClockwise {
		return [4]grid.Point{{X: -x, Y: y}, {X: -y, Y: -x}, {X: x, Y: -y}, {X: y, Y: x}}
	}
	return [4]grid.Point{{X: x, Y: y}, {X: -y, Y: x}, {X: -x, Y: -y}, {X: y, Y: -x}}
}

// VariantAt returns the variant at index i, or the zero point when i
// is out of range. Invalid indices are clamped to a harmless result
// rather than propagated.
func VariantAt(variants [4]grid.Point, i int) grid.Point {
	if i < 0 || i > 3 {
		return grid.Point{}
	}
	return variants[i]
}
