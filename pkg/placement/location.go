package placement

import (
	"github.com/pictoplace/pictoplace/pkg/grid"
	"github.com/pictoplace/pictoplace/pkg/pictograph"
)

// ResolutionState classifies how a location was determined.
type ResolutionState int

const (
	// Unresolved means no table produced a confident location.
	Unresolved ResolutionState = iota

	// Resolved means the location came straight out of a rule table.
	Resolved

	// FellBack means a lookup missed and a documented fallback value
	// was substituted.
	FellBack
)

// String implements fmt.Stringer.
func (s ResolutionState) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case FellBack:
		return "fellback"
	}
	return "unresolved"
}

// Resolution is the tagged result of a location lookup. Callers can
// assert on why a fallback occurred, not just on the final value.
type Resolution struct {
	Location grid.Location
	State    ResolutionState
	Reason   string
}

// Ok reports whether the resolution carries a usable location.
func (r Resolution) Ok() bool { return r.State != Unresolved }

func resolved(loc grid.Location) Resolution {
	return Resolution{Location: loc, State: Resolved}
}

func fellBack(loc grid.Location, reason string) Resolution {
	return Resolution{Location: loc, State: FellBack, Reason: reason}
}

func unresolved(reason string) Resolution {
	return Resolution{State: Unresolved, Reason: reason}
}

// ResolveLocation computes the grid location a glyph occupies.
//
// Shift motions (pro, anti, float) resolve to the compass point
// between their start and end. Static motions stay at their start.
// Dash motions run through an ordered rule chain; see resolveDash.
func ResolveLocation(m *pictograph.Motion, ctx Context) Resolution {
	switch m.Category {
	case pictograph.Pro, pictograph.Anti, pictograph.Float:
		if loc, ok := grid.Between(m.Start, m.End); ok {
			return resolved(loc)
		}
		return unresolved("no point between " + string(m.Start) + " and " + string(m.End))
	case pictograph.Static:
		return resolved(m.Start)
	case pictograph.Dash:
		return resolveDash(m, ctx)
	}
	return unresolved("unknown motion category " + string(m.Category))
}

// =============================================================================
// Dash rule chain
// =============================================================================

// dashRule is one step of the dash location precedence chain. applies
// guards the rule; resolve returns handled=false when the rule defers
// to a later step (for example, a dual-dash motion with non-zero turns
// falls through to the rotation table).
type dashRule struct {
	name    string
	applies func(m *pictograph.Motion, ctx Context) bool
	resolve func(m *pictograph.Motion, ctx Context) (Resolution, bool)
}

// dashRules is evaluated in order; the first applicable rule that
// handles the motion wins.
var dashRules = []dashRule{
	{
		name: "type3-zero-turns",
		applies: func(m *pictograph.Motion, ctx Context) bool {
			return ctx.Letter.IsType3() && m.ZeroTurns() && ctx.shift() != nil
		},
		resolve: resolveType3Dash,
	},
	{
		name: "dual-dash",
		applies: func(m *pictograph.Motion, ctx Context) bool {
			return ctx.Letter.IsDualDash() && ctx.other(m.Color) != nil
		},
		resolve: resolveDualDash,
	},
	{
		name: "lambda-zero-turns",
		applies: func(m *pictograph.Motion, ctx Context) bool {
			return ctx.Letter.IsLambdaFamily() && m.ZeroTurns() && ctx.other(m.Color) != nil
		},
		resolve: resolveLambdaDash,
	},
	{
		name: "zero-turns",
		applies: func(m *pictograph.Motion, ctx Context) bool {
			return m.ZeroTurns()
		},
		resolve: func(m *pictograph.Motion, ctx Context) (Resolution, bool) {
			if loc, ok := dashZeroTurns[orderedPair{m.Start, m.End}]; ok {
				return resolved(loc), true
			}
			return unresolved("no zero-turn dash entry for " + string(m.Start) + "->" + string(m.End)), true
		},
	},
	{
		name: "rotating",
		applies: func(m *pictograph.Motion, ctx Context) bool {
			return true
		},
		resolve: func(m *pictograph.Motion, ctx Context) (Resolution, bool) {
			return resolveRotatingDash(m), true
		},
	},
}

func resolveDash(m *pictograph.Motion, ctx Context) Resolution {
	for _, rule := range dashRules {
		if !rule.applies(m, ctx) {
			continue
		}
		if res, handled := rule.resolve(m, ctx); handled {
			return res
		}
	}
	return unresolved("dash rule chain exhausted")
}

// resolveType3Dash places a zero-turn dash of a hybrid letter away
// from its companion shift. A miss falls back to the dash's own end
// location rather than failing the glyph.
func resolveType3Dash(m *pictograph.Motion, ctx Context) (Resolution, bool) {
	shift := ctx.shift()
	shiftLoc, ok := grid.Between(shift.Start, shift.End)
	if !ok {
		return fellBack(m.End, "companion shift has no between point"), true
	}

	table := type3DiamondDash
	if ctx.Mode.Canonical() == grid.ModeBox {
		table = type3BoxDash
	}
	if loc, ok := table[orderedPair{m.Start, shiftLoc}]; ok {
		return resolved(loc), true
	}
	return fellBack(m.End, "no hybrid dash entry for "+string(m.Start)+"/"+string(shiftLoc)), true
}

// resolveDualDash handles Φ- and Ψ-, whose two dashes resolve against
// each other. With non-zero turns on this motion the rule defers to
// the rotation table.
func resolveDualDash(m *pictograph.Motion, ctx Context) (Resolution, bool) {
	other := ctx.other(m.Color)

	switch {
	case m.ZeroTurns() && other.ZeroTurns():
		key := colorPairKey{m.Color, m.Start, m.End}
		if loc, ok := dualDashLocations[key]; ok {
			return resolved(loc), true
		}
		return unresolved("no dual-dash entry for " + string(m.Color) + " " + string(m.Start) + "->" + string(m.End)), true

	case m.ZeroTurns():
		// The paired dash is turning; sit opposite wherever it lands.
		pairRes := resolveRotatingDash(other)
		if !pairRes.Ok() {
			return unresolved("paired dash location unknown: " + pairRes.Reason), true
		}
		return resolved(pairRes.Location.Opposite()), true

	default:
		// This motion turns; the rotation table decides.
		return Resolution{}, false
	}
}

// resolveLambdaDash places a zero-turn dash of Λ or Λ- using the
// paired motion's end location as a tiebreaker.
func resolveLambdaDash(m *pictograph.Motion, ctx Context) (Resolution, bool) {
	other := ctx.other(m.Color)
	key := tripleKey{m.Start, m.End, other.End}
	if loc, ok := lambdaZeroTurns[key]; ok {
		return resolved(loc), true
	}
	return unresolved("no lambda entry for " + string(m.Start) + "->" + string(m.End) + " vs " + string(other.End)), true
}

// resolveRotatingDash is the terminal dash rule for non-zero turns:
// the location depends only on rotation sense and start point.
func resolveRotatingDash(m *pictograph.Motion) Resolution {
	if loc, ok := dashRotationLoc[senseLocKey{m.Sense, m.Start}]; ok {
		return resolved(loc)
	}
	return unresolved("no rotating dash entry for " + string(m.Sense) + " from " + string(m.Start))
}
