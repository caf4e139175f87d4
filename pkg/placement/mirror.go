package placement

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// Mirrored decides whether the glyph must be horizontally flipped.
// The default rule mirrors counter-clockwise motion; anti inverts it
// and mirrors clockwise motion instead. A motion with no rotation is
// never mirrored.
func Mirrored(cat pictograph.Category, sense pictograph.RotationSense) bool {
	switch sense {
	case pictograph.NoRotation:
		return false
	case pictograph.Clockwise:
		return cat == pictograph.Anti
	case pictograph.CounterClockwise:
		return cat != pictograph.Anti
	}
	return false
}

// ReflectAnchor reflects a glyph's local anchor point horizontally
// within its own bounding box. The renderer uses the reflected anchor
// when the glyph is mirrored; the grid coordinate itself is untouched.
func ReflectAnchor(anchor grid.Point, boundingWidth float64) grid.Point {
	return grid.Point{X: boundingWidth - anchor.X, Y: anchor.Y}
}
