package placement

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// Result is the final placement of one glyph: its pixel offset, its
// octant rotation angle, and whether the renderer must flip it
// horizontally. Produced fresh per call; the engine never caches.
type Result struct {
	Offset   grid.Point `json:"offset"`
	Rotation int        `json:"rotation"`
	Mirrored bool       `json:"mirrored"`

	// Location records how the glyph's grid location was resolved so
	// callers can log fallbacks.
	Location Resolution `json:"-"`
}

// Place combines the base adjustment with the full rule system:
// location, rotation angle, mirror flag, and the quadrant-selected
// directional variant of the base offset.
//
// The base adjustment comes from the caller's placement data (default
// or letter-specific); the engine only rotates it into position. An
// unresolved location yields a deterministic zero-offset placement
// instead of an error, so rendering always has something to draw.
func Place(m *pictograph.Motion, ctx Context, base grid.Point, opts RotationOptions) Result {
	res := ResolveLocation(m, ctx)
	mirrored := Mirrored(m.Category, m.Sense)

	if !res.Ok() {
		return Result{Mirrored: mirrored, Location: res}
	}

	rotation := ResolveRotation(m, res.Location, ctx, opts)

	variants := DirectionalVariants(base.X, base.Y, m.Category, m.Sense, ctx.Mode, m.HandPath())
	quadrant := SelectQuadrant(res.Location, m.Category, ctx.Mode)

	return Result{
		Offset:   VariantAt(variants, quadrant),
		Rotation: rotation,
		Mirrored: mirrored,
		Location: res,
	}
}
