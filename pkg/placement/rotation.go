package placement

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// AntiPattern selects which of the two anti rotation tables applies.
// The choice is driven by letter and placement-key context upstream;
// the resolver just accepts the pre-selected table id.
type AntiPattern int

const (
	AntiRegular AntiPattern = iota
	AntiAlternate
)

// RotationOptions carries the caller-supplied context the rotation
// resolver cannot derive from the motion alone.
type RotationOptions struct {
	// AntiPattern picks the regular or alternate anti table.
	AntiPattern AntiPattern

	// DashOverride forces the flat per-location dash tables when the
	// dash is turning and the orientation context requires it.
	DashOverride bool
}

// ResolveRotation computes the glyph's rotation angle in degrees.
// The result is always one of the 8 octant values; a table miss
// resolves to 0 rather than failing.
func ResolveRotation(m *pictograph.Motion, loc grid.Location, ctx Context, opts RotationOptions) int {
	switch m.Category {
	case pictograph.Pro:
		return proRotation[senseLocKey{m.Sense, loc}]
	case pictograph.Anti:
		if opts.AntiPattern == AntiAlternate {
			return antiAlternateRotation[senseLocKey{m.Sense, loc}]
		}
		return antiRegularRotation[senseLocKey{m.Sense, loc}]
	case pictograph.Float:
		// Floats spin with the performer's wrist path, not the prop's
		// nominal rotation sense.
		return floatRotation[senseLocKey{m.HandPath(), loc}]
	case pictograph.Dash:
		return resolveDashRotation(m, loc, ctx, opts)
	case pictograph.Static:
		return resolveStaticRotation(m, loc)
	}
	return 0
}

func resolveDashRotation(m *pictograph.Motion, loc grid.Location, ctx Context, opts RotationOptions) int {
	// Letter-specific dash tables take precedence over the generic
	// rules below.
	if ctx.Letter.IsDualDash() {
		if a, ok := dualDashAngles[colorPairKey{m.Color, m.Start, m.End}]; ok {
			return a
		}
	}
	if ctx.Letter.IsLambdaFamily() {
		table := diamondDashAngles
		if ctx.Mode.Canonical() == grid.ModeBox {
			table = boxDashAngles
		}
		if a, ok := table[orderedPair{m.Start, m.End}]; ok {
			return a
		}
	}

	if m.Sense == pictograph.NoRotation {
		return dashNoRotation[orderedPair{m.Start, m.End}]
	}

	if opts.DashOverride {
		if m.Sense == pictograph.Clockwise {
			return dashOverrideCW[loc]
		}
		return dashOverrideCCW[loc]
	}

	if m.EndOri.IsRadial() {
		return dashRadialRotation[senseLocKey{m.Sense, loc}]
	}
	return dashNonRadialRotation[senseLocKey{m.Sense, loc}]
}

func resolveStaticRotation(m *pictograph.Motion, loc grid.Location) int {
	if m.Sense == pictograph.NoRotation {
		table := staticStillNonRadial
		if m.StartOri.IsRadial() {
			table = staticStillRadial
		}
		return table[loc].angleFor(m.Sense)
	}

	if m.EndOri.IsRadial() {
		return staticRadialRotation[senseLocKey{m.Sense, loc}]
	}
	return staticNonRadialRotation[senseLocKey{m.Sense, loc}]
}

// stillAngle is an entry of the rotation-sense-NONE static override
// tables. Cardinal locations carry a single angle. The 4 diagonal
// locations carry per-sense entries, but the resolver only consults
// these tables for spinless statics, so every diagonal resolves to its
// clockwise value today. The counter-clockwise entries record the
// source data's angles in case turning statics ever route here.
type stillAngle struct {
	fixed   int
	bySense map[pictograph.RotationSense]int
}

func (a stillAngle) angleFor(sense pictograph.RotationSense) int {
	if a.bySense == nil {
		return a.fixed
	}
	if v, ok := a.bySense[sense]; ok {
		return v
	}
	return a.bySense[pictograph.Clockwise]
}
